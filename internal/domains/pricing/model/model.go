package model

import (
	"database/sql/driver"
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "price_cache"
	EntityName = "price_cache"

	FieldRoomID     = "room_id"
	FieldDate       = "date"
	FieldFactors    = "factors"
	FieldValidUntil = "valid_until"
	FieldUpdatedAt  = "updated_at"
)

const (
	SourceCalculated     = "calculated"
	SourceManualOverride = "manual_override"
)

type OccupancyDetail struct {
	BookedUnits int `json:"booked_units"`
	Allotment   int `json:"allotment"`
}

type CompetitorSummary struct {
	Average     float64 `json:"average"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	SampleCount int     `json:"sample_count"`
}

type BoundConstraints struct {
	MinAutoPrice *float64 `json:"min_auto_price,omitempty"`
	MaxAutoPrice *float64 `json:"max_auto_price,omitempty"`
	// UnclampedPrice is the price before bounds and rounding were applied.
	UnclampedPrice float64 `json:"unclamped_price"`
	Clamped        bool    `json:"clamped"`
}

type RawInputs struct {
	Occupancy  OccupancyDetail   `json:"occupancy"`
	Competitor CompetitorSummary `json:"competitor"`
	Bounds     BoundConstraints  `json:"bounds"`
}

// PricingFactors is an immutable snapshot of one calculation for a room and night.
type PricingFactors struct {
	RoomID               string    `json:"room_id"`
	Date                 string    `json:"date"`
	BasePrice            float64   `json:"base_price"`
	OccupancyRate        float64   `json:"occupancy_rate"`
	DemandScore          float64   `json:"demand_score"`
	TimeMultiplier       float64   `json:"time_multiplier"`
	OccupancyMultiplier  float64   `json:"occupancy_multiplier"`
	CompetitorMultiplier float64   `json:"competitor_multiplier"`
	DemandMultiplier     float64   `json:"demand_multiplier"`
	FinalMultiplier      float64   `json:"final_multiplier"`
	CalculatedPrice      float64   `json:"calculated_price"`
	Source               string    `json:"source"`
	CalculatedAt         time.Time `json:"calculated_at"`
	Raw                  RawInputs `json:"raw"`
}

func (f PricingFactors) Value() (driver.Value, error) {
	return model.JSONValue(f)
}

func (f *PricingFactors) Scan(src any) error {
	return model.ScanJSON(src, f)
}

// PriceCacheEntry is keyed by (room_id, date); concurrent writers resolve last-write-wins.
type PriceCacheEntry struct {
	RoomID     string         `db:"room_id"     json:"room_id"`
	Date       time.Time      `db:"date"        json:"date"`
	Factors    PricingFactors `db:"factors"     json:"factors"`
	ValidUntil time.Time      `db:"valid_until" json:"valid_until"`
	UpdatedAt  time.Time      `db:"updated_at"  json:"updated_at"`
}

func (e PriceCacheEntry) ValidAt(now time.Time) bool {
	return e.RoomID != "" && now.Before(e.ValidUntil)
}
