package dto

import (
	"lodge/internal/domains/event/model"
	"lodge/shared"
	"lodge/shared/constant"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type EnqueueRequest struct {
	EventType string        `json:"event_type" validate:"required,oneof=booking_change occupancy_update competitor_change time_trigger manual_override"`
	RoomID    string        `json:"room_id"    validate:"required_unless=EventType time_trigger"`
	Priority  int           `json:"priority"   validate:"omitempty,gte=0,lte=10"`
	Payload   model.Payload `json:"payload"`
}

func (r *EnqueueRequest) ToModel() model.PricingEvent {
	priority := r.Priority
	if priority == 0 {
		priority = model.PriorityNormal
	}

	return model.PricingEvent{
		ID:         uuid.NewString(),
		EventType:  r.EventType,
		RoomID:     r.RoomID,
		Priority:   priority,
		Payload:    r.Payload,
		Processed:  false,
		RetryCount: 0,
		Status:     model.StatusPending,
		CreatedAt:  timezone.Now(),
	}
}

type EventResponse struct {
	ID           string        `json:"id"`
	EventType    string        `json:"event_type"`
	RoomID       string        `json:"room_id,omitempty"`
	Priority     int           `json:"priority"`
	Payload      model.Payload `json:"payload"`
	Processed    bool          `json:"processed"`
	RetryCount   int           `json:"retry_count"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
	CreatedAt    string        `json:"created_at"`
	StartedAt    string        `json:"started_at,omitempty"`
	CompletedAt  string        `json:"completed_at,omitempty"`
}

func (r *EventResponse) FromModel(model model.PricingEvent) {
	r.ID = model.ID
	r.EventType = model.EventType
	r.RoomID = model.RoomID
	r.Priority = model.Priority
	r.Payload = model.Payload
	r.Processed = model.Processed
	r.RetryCount = model.RetryCount
	r.Status = model.Status
	r.ErrorMessage = model.ErrorMessage
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)

	if model.StartedAt.Valid {
		r.StartedAt = timezone.Format(model.StartedAt.Time, constant.DateFormat)
	}

	if model.CompletedAt.Valid {
		r.CompletedAt = timezone.Format(model.CompletedAt.Time, constant.DateFormat)
	}
}

type GetEventsResponse struct {
	Events    []EventResponse `json:"events"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetEventsResponse) FromModels(models []model.PricingEvent, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Events = make([]EventResponse, len(models))
	for i, mod := range models {
		r.Events[i].FromModel(mod)
	}
}

type ProcessRequest struct {
	BatchSize int `json:"batch_size" validate:"omitempty,gte=1"`
}

type ProcessResult struct {
	EventsProcessed int `json:"events_processed"`
	Errors          int `json:"errors"`
}

// ReclaimResult counts abandoned events put back in the queue and those that ran out of retries.
type ReclaimResult struct {
	Requeued int `json:"requeued"`
	Failed   int `json:"failed"`
}
