package model

import "time"

const (
	KindApprovalRequest  = "approval_request"
	KindApprovalResolved = "approval_resolved"
	KindAlertTriggered   = "alert_triggered"
	KindAlertResolved    = "alert_resolved"
)

// Message is the envelope published to the messaging gateway.
type Message struct {
	ID        string         `json:"id"`
	Kind      string         `json:"kind"`
	Channel   string         `json:"channel"`
	Recipient string         `json:"recipient,omitempty"`
	Text      string         `json:"text"`
	Data      map[string]any `json:"data,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type ApprovalNotice struct {
	ApprovalID       string
	RoomID           string
	RoomName         string
	Date             string
	OldPrice         float64
	NewPrice         float64
	ChangePercentage float64
	ExpiresAt        time.Time
	Status           string
	RespondedBy      string
}

type AlertNotice struct {
	MetricName   string
	Severity     string
	Message      string
	CurrentValue float64
	Threshold    float64
	Operator     string
}
