package dto

import (
	"time"

	"github.com/GlebRadaev/ordertracker/internal/domain"
)

type OrderDTO struct {
	ID             int    `json:"id" example:"1"`
	Name           string `json:"name" example:"Caja 1"`
	IsOwnMaterial  bool   `json:"is_own_material" example:"false"`
	Price          Money  `json:"price" swaggertype:"number" example:"100.00"`
	AdvancePayment Money  `json:"advance_payment" swaggertype:"number" example:"0.00"`
	AlexPercentage Money  `json:"alex_percentage" swaggertype:"number" example:"10.00"`
	PaidToAlex     Money  `json:"paid_to_alex" swaggertype:"number" example:"0.00"`
	Pending        Money  `json:"pending" swaggertype:"number" example:"10.00"`
	Month          int    `json:"month" example:"6"`
	Year           int    `json:"year" example:"2025"`
	CreatedBy      int    `json:"created_by" example:"1"`
	CreatedAt      string `json:"created_at" example:"2025-06-03T09:30:00Z"`
	UpdatedAt      string `json:"updated_at" example:"2025-06-03T09:30:00Z"`
}

func NewOrderDTO(o *domain.Order) OrderDTO {
	return OrderDTO{
		ID:             o.ID,
		Name:           o.Name,
		IsOwnMaterial:  o.IsOwnMaterial,
		Price:          NewMoney(o.Price),
		AdvancePayment: NewMoney(o.AdvancePayment),
		AlexPercentage: NewMoney(o.AlexPercentage),
		PaidToAlex:     NewMoney(o.PaidToAlex),
		Pending:        NewMoney(o.Pending()),
		Month:          o.Month,
		Year:           o.Year,
		CreatedBy:      o.CreatedBy,
		CreatedAt:      o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      o.UpdatedAt.Format(time.RFC3339),
	}
}

func NewOrderDTOs(orders []domain.Order) []OrderDTO {
	resp := make([]OrderDTO, 0, len(orders))
	for i := range orders {
		resp = append(resp, NewOrderDTO(&orders[i]))
	}
	return resp
}

type CreateOrderRequestDTO struct {
	Name           string `json:"name" validate:"required,max=200" example:"Caja 1"`
	IsOwnMaterial  bool   `json:"is_own_material" example:"false"`
	Price          Money  `json:"price" validate:"gte=0" swaggertype:"number" example:"100"`
	AdvancePayment Money  `json:"advance_payment" validate:"gte=0" swaggertype:"number" example:"0"`
	AlexPercentage Money  `json:"alex_percentage" validate:"gte=0" swaggertype:"number" example:"10"`
	PaidToAlex     Money  `json:"paid_to_alex" validate:"gte=0" swaggertype:"number" example:"0"`
	Month          int    `json:"month" validate:"min=1,max=12" example:"6"`
	Year           int    `json:"year" validate:"min=1" example:"2025"`
	CreatedBy      int    `json:"created_by" validate:"omitempty,oneof=1 2" example:"1"`
}

func (r CreateOrderRequestDTO) ToDomain() domain.NewOrder {
	return domain.NewOrder{
		Name:           r.Name,
		IsOwnMaterial:  r.IsOwnMaterial,
		Price:          r.Price.Decimal,
		AdvancePayment: r.AdvancePayment.Decimal,
		AlexPercentage: r.AlexPercentage.Decimal,
		PaidToAlex:     r.PaidToAlex.Decimal,
		Month:          r.Month,
		Year:           r.Year,
		CreatedBy:      r.CreatedBy,
	}
}

type UpdateOrderRequestDTO struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,max=200" example:"Caja 1"`
	IsOwnMaterial  *bool   `json:"is_own_material,omitempty" example:"true"`
	Price          *Money  `json:"price,omitempty" validate:"omitempty,gte=0" swaggertype:"number" example:"120"`
	AdvancePayment *Money  `json:"advance_payment,omitempty" validate:"omitempty,gte=0" swaggertype:"number" example:"20"`
	AlexPercentage *Money  `json:"alex_percentage,omitempty" validate:"omitempty,gte=0" swaggertype:"number" example:"12"`
	PaidToAlex     *Money  `json:"paid_to_alex,omitempty" validate:"omitempty,gte=0" swaggertype:"number" example:"0"`
	Month          *int    `json:"month,omitempty" validate:"omitempty,min=1,max=12" example:"6"`
	Year           *int    `json:"year,omitempty" validate:"omitempty,min=1" example:"2025"`
}

func (r UpdateOrderRequestDTO) ToDomain() domain.OrderPatch {
	patch := domain.OrderPatch{
		Name:          r.Name,
		IsOwnMaterial: r.IsOwnMaterial,
		Month:         r.Month,
		Year:          r.Year,
	}
	if r.Price != nil {
		patch.Price = &r.Price.Decimal
	}
	if r.AdvancePayment != nil {
		patch.AdvancePayment = &r.AdvancePayment.Decimal
	}
	if r.AlexPercentage != nil {
		patch.AlexPercentage = &r.AlexPercentage.Decimal
	}
	if r.PaidToAlex != nil {
		patch.PaidToAlex = &r.PaidToAlex.Decimal
	}
	return patch
}

type PaymentRequestDTO struct {
	PaidToAlex    Money `json:"paid_to_alex" validate:"gte=0" swaggertype:"number" example:"10"`
	PaymentAmount Money `json:"payment_amount" validate:"gt=0" swaggertype:"number" example:"10"`
}

func (r PaymentRequestDTO) ToDomain() domain.Payment {
	return domain.Payment{
		Cumulative: r.PaidToAlex.Decimal,
		Increment:  r.PaymentAmount.Decimal,
	}
}
