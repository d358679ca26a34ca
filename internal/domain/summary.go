package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Totals struct {
	Orders         int
	AlexPercentage decimal.Decimal
	Paid           decimal.Decimal
	Pending        decimal.Decimal
}

type MonthPending struct {
	Month     int
	Year      int
	MonthName string
	Pending   decimal.Decimal
	Orders    int
}

type Summary struct {
	Total          Totals
	CurrentMonth   Totals
	PreviousMonths Totals
	PendingByMonth []MonthPending
	ReferenceMonth int
	ReferenceYear  int
}

type MigrationResult struct {
	MigratedOrders     int
	MigratedActivities int
}

type StorageStatus struct {
	Backend   string
	External  bool
	Healthy   bool
	Error     string
	CheckedAt time.Time
}
