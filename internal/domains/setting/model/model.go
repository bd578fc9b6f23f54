package model

import (
	"slices"
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "hotel_settings"
	EntityName = "hotel_setting"

	FieldKey   = "key"
	FieldValue = "value"
)

const (
	KeyPeakMonths        = "pricing.peak_months"
	KeyRoundingIncrement = "pricing.rounding_increment"
)

type Setting struct {
	Key   string `db:"key"`
	Value string `db:"value"`
	model.Metadata
}

// PricingPolicy holds the calendar and currency policy the calculator applies.
type PricingPolicy struct {
	PeakMonths        []int `json:"peak_months"`
	RoundingIncrement int64 `json:"rounding_increment"`
}

func (p PricingPolicy) IsPeakMonth(month time.Month) bool {
	return slices.Contains(p.PeakMonths, int(month))
}
