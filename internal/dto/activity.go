package dto

import (
	"time"

	"github.com/GlebRadaev/ordertracker/internal/domain"
)

type ActivityDTO struct {
	ID           int    `json:"id" example:"2"`
	OrderID      int    `json:"order_id" example:"1"`
	UserID       int    `json:"user_id" example:"2"`
	Action       string `json:"action" example:"PAYMENT"`
	OldValue     string `json:"old_value,omitempty" example:""`
	NewValue     string `json:"new_value,omitempty" example:"10.00"`
	FieldChanged string `json:"field_changed,omitempty" example:""`
	CreatedAt    string `json:"created_at" example:"2025-06-03T09:30:00Z"`
	OrderName    string `json:"order_name" example:"Caja 1"`
	UserName     string `json:"user_name" example:"Isa"`
}

func NewActivityDTOs(activities []domain.Activity) []ActivityDTO {
	resp := make([]ActivityDTO, 0, len(activities))
	for _, a := range activities {
		resp = append(resp, ActivityDTO{
			ID:           a.ID,
			OrderID:      a.OrderID,
			UserID:       a.UserID,
			Action:       string(a.Action),
			OldValue:     a.OldValue,
			NewValue:     a.NewValue,
			FieldChanged: a.FieldChanged,
			CreatedAt:    a.CreatedAt.Format(time.RFC3339),
			OrderName:    a.OrderName,
			UserName:     a.UserName,
		})
	}
	return resp
}
