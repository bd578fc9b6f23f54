package dto

import (
	"lodge/internal/domains/pricing/model"
)

type CalculateRequest struct {
	RoomID           string `json:"room_id"           validate:"required"`
	Date             string `json:"date"              validate:"omitempty,datetime=2006-01-02"`
	ForceRecalculate bool   `json:"force_recalculate"`
}

type BatchCalculateRequest struct {
	RoomIDs          []string `json:"room_ids"          validate:"required,min=1,max=100,dive,required"`
	Date             string   `json:"date"              validate:"omitempty,datetime=2006-01-02"`
	ForceRecalculate bool     `json:"force_recalculate"`
}

// BatchItem reports one room of a batch; a failed item never fails the batch.
type BatchItem struct {
	RoomID  string                `json:"room_id"`
	Success bool                  `json:"success"`
	Data    *model.PricingFactors `json:"data,omitempty"`
	Error   string                `json:"error,omitempty"`
}
