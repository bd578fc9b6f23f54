package model

import (
	"database/sql"
	"database/sql/driver"
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "pricing_events"
	EntityName = "pricing_event"

	FieldID           = "id"
	FieldEventType    = "event_type"
	FieldRoomID       = "room_id"
	FieldPriority     = "priority"
	FieldPayload      = "payload"
	FieldProcessed    = "processed"
	FieldRetryCount   = "retry_count"
	FieldStatus       = "status"
	FieldErrorMessage = "error_message"
	FieldCreatedAt    = "created_at"
	FieldStartedAt    = "started_at"
	FieldCompletedAt  = "completed_at"
)

const (
	TypeBookingChange    = "booking_change"
	TypeOccupancyUpdate  = "occupancy_update"
	TypeCompetitorChange = "competitor_change"
	TypeTimeTrigger      = "time_trigger"
	TypeManualOverride   = "manual_override"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

const (
	PriorityLow    = 1
	PriorityNormal = 5
	PriorityHigh   = 10
)

// Payload carries the per-type event arguments.
type Payload struct {
	Date        string  `json:"date,omitempty"`
	NewPrice    float64 `json:"new_price,omitempty"`
	RequestedBy string  `json:"requested_by,omitempty"`
	BookingID   string  `json:"booking_id,omitempty"`
	Reason      string  `json:"reason,omitempty"`
}

func (p Payload) Value() (driver.Value, error) {
	return model.JSONValue(p)
}

func (p *Payload) Scan(src any) error {
	return model.ScanJSON(src, p)
}

// PricingEvent is never deleted; completed and failed rows remain as the audit trail.
// An empty RoomID on a time_trigger addresses every auto-pricing room.
type PricingEvent struct {
	ID           string       `db:"id"`
	EventType    string       `db:"event_type"`
	RoomID       string       `db:"room_id"`
	Priority     int          `db:"priority"`
	Payload      Payload      `db:"payload"`
	Processed    bool         `db:"processed"`
	RetryCount   int          `db:"retry_count"`
	Status       string       `db:"status"`
	ErrorMessage string       `db:"error_message"`
	CreatedAt    time.Time    `db:"created_at"`
	StartedAt    sql.NullTime `db:"started_at"`
	CompletedAt  sql.NullTime `db:"completed_at"`
}

func Recalculates(eventType string) bool {
	switch eventType {
	case TypeBookingChange, TypeOccupancyUpdate, TypeCompetitorChange, TypeTimeTrigger:
		return true
	default:
		return false
	}
}
