package model

import (
	"database/sql"
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "pricing_metrics"
	EntityName = "pricing_metric"

	FieldID          = "id"
	FieldMetricType  = "metric_type"
	FieldMetricName  = "metric_name"
	FieldMetricValue = "metric_value"
	FieldRoomID      = "room_id"
	FieldMetadata    = "metadata"
	FieldRecordedAt  = "recorded_at"
)

const (
	TypePriceChange = "price_change"
	TypePerformance = "performance"
	TypeBusiness    = "business"
)

const (
	NamePriceChange = "price_change_percentage"

	AttrNewPrice      = "new_price"
	AttrPreviousPrice = "previous_price"
	AttrChange        = "change_percentage"
	AttrDate          = "date"
	AttrSource        = "source"
)

// MetricSample is append-only; rows are never updated.
type MetricSample struct {
	ID          string           `db:"id"`
	MetricType  string           `db:"metric_type"`
	MetricName  string           `db:"metric_name"`
	MetricValue float64          `db:"metric_value"`
	RoomID      sql.NullString   `db:"room_id"`
	Details     model.Attributes `db:"metadata"`
	RecordedAt  time.Time        `db:"recorded_at"`
}

// PriceChangeStats aggregates price_change samples over a window.
type PriceChangeStats struct {
	Updates       int     `db:"updates"`
	AvgAbsChange  float64 `db:"avg_abs_change"`
	RevenueImpact float64 `db:"revenue_impact"`
}
