package dto

import "github.com/GlebRadaev/ordertracker/internal/domain"

type TotalsDTO struct {
	Orders         int   `json:"orders" example:"3"`
	AlexPercentage Money `json:"alexPercentage" swaggertype:"number" example:"30.00"`
	Paid           Money `json:"paid" swaggertype:"number" example:"10.00"`
	Pending        Money `json:"pending" swaggertype:"number" example:"20.00"`
}

type MonthPendingDTO struct {
	Month     int    `json:"month" example:"5"`
	Year      int    `json:"year" example:"2025"`
	MonthName string `json:"monthName" example:"Mayo"`
	Pending   Money  `json:"pending" swaggertype:"number" example:"5.00"`
	Orders    int    `json:"orders" example:"1"`
}

type SummaryDTO struct {
	TotalOrders         int               `json:"totalOrders" example:"2"`
	TotalAlexPercentage Money             `json:"totalAlexPercentage" swaggertype:"number" example:"15.00"`
	TotalPaid           Money             `json:"totalPaid" swaggertype:"number" example:"0.00"`
	TotalPending        Money             `json:"totalPending" swaggertype:"number" example:"15.00"`
	CurrentMonth        TotalsDTO         `json:"currentMonth"`
	PreviousMonths      TotalsDTO         `json:"previousMonths"`
	PendingByMonth      []MonthPendingDTO `json:"pendingByMonth"`
	ReferenceMonth      int               `json:"referenceMonth" example:"6"`
	ReferenceYear       int               `json:"referenceYear" example:"2025"`
}

func newTotalsDTO(t domain.Totals) TotalsDTO {
	return TotalsDTO{
		Orders:         t.Orders,
		AlexPercentage: NewMoney(t.AlexPercentage),
		Paid:           NewMoney(t.Paid),
		Pending:        NewMoney(t.Pending),
	}
}

func NewSummaryDTO(s *domain.Summary) SummaryDTO {
	byMonth := make([]MonthPendingDTO, 0, len(s.PendingByMonth))
	for _, m := range s.PendingByMonth {
		byMonth = append(byMonth, MonthPendingDTO{
			Month:     m.Month,
			Year:      m.Year,
			MonthName: m.MonthName,
			Pending:   NewMoney(m.Pending),
			Orders:    m.Orders,
		})
	}
	return SummaryDTO{
		TotalOrders:         s.Total.Orders,
		TotalAlexPercentage: NewMoney(s.Total.AlexPercentage),
		TotalPaid:           NewMoney(s.Total.Paid),
		TotalPending:        NewMoney(s.Total.Pending),
		CurrentMonth:        newTotalsDTO(s.CurrentMonth),
		PreviousMonths:      newTotalsDTO(s.PreviousMonths),
		PendingByMonth:      byMonth,
		ReferenceMonth:      s.ReferenceMonth,
		ReferenceYear:       s.ReferenceYear,
	}
}

type DashboardDTO struct {
	Orders  []OrderDTO `json:"orders"`
	Summary SummaryDTO `json:"summary"`
}
