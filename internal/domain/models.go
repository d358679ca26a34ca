package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	UserAlex = 1
	UserIsa  = 2
)

// MaxActivities is how many journal entries a store keeps.
const MaxActivities = 50

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrValidation      = errors.New("validation failed")
	ErrNoExternalStore = errors.New("external store is not configured")
	ErrUnauthorized    = errors.New("invalid credentials")
)

type Action string

const (
	ActionCreate  Action = "CREATE"
	ActionUpdate  Action = "UPDATE"
	ActionPayment Action = "PAYMENT"
)

type Order struct {
	ID             int             `db:"id"`
	Name           string          `db:"name"`
	IsOwnMaterial  bool            `db:"is_own_material"`
	Price          decimal.Decimal `db:"price"`
	AdvancePayment decimal.Decimal `db:"advance_payment"`
	AlexPercentage decimal.Decimal `db:"alex_percentage"`
	PaidToAlex     decimal.Decimal `db:"paid_to_alex"`
	Month          int             `db:"month"`
	Year           int             `db:"year"`
	CreatedBy      int             `db:"created_by"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

// Pending is the commission still owed on the order.
func (o Order) Pending() decimal.Decimal {
	return o.AlexPercentage.Sub(o.PaidToAlex)
}

func (o Order) Settled() bool {
	return !o.Pending().IsPositive()
}

type Activity struct {
	ID           int       `db:"id"`
	OrderID      int       `db:"order_id"`
	UserID       int       `db:"user_id"`
	Action       Action    `db:"action"`
	OldValue     string    `db:"old_value"`
	NewValue     string    `db:"new_value"`
	FieldChanged string    `db:"field_changed"`
	CreatedAt    time.Time `db:"created_at"`
	OrderName    string    `db:"order_name"`
	UserName     string    `db:"user_name"`
}

// UserName maps a user id to its display name. Anything other than Alex is Isa.
func UserName(userID int) string {
	if userID == UserAlex {
		return "Alex"
	}
	return "Isa"
}

var monthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

type Session struct {
	UserID    int
	Token     string
	ExpiresAt time.Time
}
