package model

import (
	"database/sql"
	"time"
)

const (
	TableName  = "price_approvals"
	EntityName = "price_approval"

	FieldID               = "id"
	FieldRoomID           = "room_id"
	FieldEventID          = "event_id"
	FieldDate             = "date"
	FieldOldPrice         = "old_price"
	FieldNewPrice         = "new_price"
	FieldChangePercentage = "change_percentage"
	FieldStatus           = "status"
	FieldRequestedBy      = "requested_by"
	FieldExpiresAt        = "expires_at"
	FieldRespondedAt      = "responded_at"
	FieldRespondedBy      = "responded_by"
	FieldCreatedAt        = "created_at"
)

const (
	StatusPending      = "pending"
	StatusAutoApproved = "auto_approved"
	StatusApproved     = "approved"
	StatusRejected     = "rejected"

	// ResponderExpired marks approvals rejected by the expiry sweep.
	ResponderExpired = "system:expired"
	// ResponderSystem marks approvals the gate applied on its own.
	ResponderSystem = "system"

	// ChangeScale is the number of decimals kept for change_percentage, in code and in the column.
	ChangeScale = 4
)

// PriceApproval moves from pending to approved or rejected exactly once; auto_approved rows are final on insert.
type PriceApproval struct {
	ID               string         `db:"id"`
	RoomID           string         `db:"room_id"`
	EventID          sql.NullString `db:"event_id"`
	Date             time.Time      `db:"date"`
	OldPrice         float64        `db:"old_price"`
	NewPrice         float64        `db:"new_price"`
	ChangePercentage float64        `db:"change_percentage"`
	Status           string         `db:"status"`
	RequestedBy      string         `db:"requested_by"`
	ExpiresAt        time.Time      `db:"expires_at"`
	RespondedAt      sql.NullTime   `db:"responded_at"`
	RespondedBy      sql.NullString `db:"responded_by"`
	CreatedAt        time.Time      `db:"created_at"`
}

func (a PriceApproval) Pending(now time.Time) bool {
	return a.Status == StatusPending && now.Before(a.ExpiresAt)
}
