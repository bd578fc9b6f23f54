package dto

import (
	"database/sql"

	"lodge/internal/domains/room/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
)

// UpdatePricingRequest carries the auto pricing settings of a room. A nil bound is cleared.
type UpdatePricingRequest struct {
	AutoPricingEnabled *bool    `json:"auto_pricing_enabled" validate:"required"`
	MinAutoPrice       *float64 `json:"min_auto_price"       validate:"omitempty,gt=0"`
	MaxAutoPrice       *float64 `json:"max_auto_price"       validate:"omitempty,gt=0"`
}

func (r *UpdatePricingRequest) ToFields(user string) map[string]any {
	return map[string]any{
		model.FieldAutoPricingEnabled: *r.AutoPricingEnabled,
		model.FieldMinAutoPrice:       NullFloat(r.MinAutoPrice),
		model.FieldMaxAutoPrice:       NullFloat(r.MaxAutoPrice),
		constant.FieldModifiedBy:      user,
	}
}

// NullFloat maps an optional bound to its column value.
func NullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}

	return sql.NullFloat64{Float64: *v, Valid: true}
}

type RoomResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	BasePrice          float64  `json:"base_price"`
	Allotment          int      `json:"allotment"`
	MinAutoPrice       *float64 `json:"min_auto_price"`
	MaxAutoPrice       *float64 `json:"max_auto_price"`
	AutoPricingEnabled bool     `json:"auto_pricing_enabled"`
	// RepriceQueued is set when a settings change queued a recalculation.
	RepriceQueued bool `json:"reprice_queued,omitempty"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(m model.Room) {
	r.ID = m.ID
	r.Name = m.Name
	r.BasePrice = m.BasePrice
	r.Allotment = m.Allotment
	r.MinAutoPrice = pointer(m.MinAutoPrice)
	r.MaxAutoPrice = pointer(m.MaxAutoPrice)
	r.AutoPricingEnabled = m.AutoPricingEnabled
	r.Metadata.FromModel(m.Metadata)
}

func pointer(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}

	return &v.Float64
}
