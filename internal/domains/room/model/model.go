package model

import (
	"database/sql"

	"lodge/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID                 = "id"
	FieldName               = "name"
	FieldBasePrice          = "base_price"
	FieldAllotment          = "allotment"
	FieldMinAutoPrice       = "min_auto_price"
	FieldMaxAutoPrice       = "max_auto_price"
	FieldAutoPricingEnabled = "auto_pricing_enabled"
)

// Room is owned by the admin side of the property; pricing only reads it.
type Room struct {
	ID                 string          `db:"id"`
	Name               string          `db:"name"`
	BasePrice          float64         `db:"base_price"`
	Allotment          int             `db:"allotment"`
	MinAutoPrice       sql.NullFloat64 `db:"min_auto_price"`
	MaxAutoPrice       sql.NullFloat64 `db:"max_auto_price"`
	AutoPricingEnabled bool            `db:"auto_pricing_enabled"`
	model.Metadata
}
