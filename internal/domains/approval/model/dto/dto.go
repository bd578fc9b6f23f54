package dto

import (
	"database/sql"
	"time"

	"lodge/internal/domains/approval/model"
	"lodge/shared"
	"lodge/shared/constant"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

// GateRequest is a manual price change waiting for the approval gate.
type GateRequest struct {
	EventID     string
	RoomID      string
	Date        time.Time
	NewPrice    float64
	RequestedBy string
}

func (r GateRequest) ToModel(oldPrice, change float64, status string, expiresAt time.Time) model.PriceApproval {
	now := timezone.Now()

	approval := model.PriceApproval{
		ID:               uuid.NewString(),
		RoomID:           r.RoomID,
		EventID:          sql.NullString{String: r.EventID, Valid: r.EventID != constant.Empty},
		Date:             r.Date,
		OldPrice:         oldPrice,
		NewPrice:         r.NewPrice,
		ChangePercentage: change,
		Status:           status,
		RequestedBy:      r.RequestedBy,
		ExpiresAt:        expiresAt,
		CreatedAt:        now,
	}

	if status == model.StatusAutoApproved {
		approval.RespondedAt = sql.NullTime{Time: now, Valid: true}
		approval.RespondedBy = sql.NullString{String: model.ResponderSystem, Valid: true}
	}

	return approval
}

type RespondRequest struct {
	RespondedBy string `json:"responded_by" validate:"omitempty,max=100"`
}

type ApprovalResponse struct {
	ID               string  `json:"id"`
	RoomID           string  `json:"room_id"`
	EventID          string  `json:"event_id,omitempty"`
	Date             string  `json:"date"`
	OldPrice         float64 `json:"old_price"`
	NewPrice         float64 `json:"new_price"`
	ChangePercentage float64 `json:"change_percentage"`
	Status           string  `json:"status"`
	RequestedBy      string  `json:"requested_by,omitempty"`
	ExpiresAt        string  `json:"expires_at"`
	RespondedAt      string  `json:"responded_at,omitempty"`
	RespondedBy      string  `json:"responded_by,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

func (r *ApprovalResponse) FromModel(model model.PriceApproval) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.EventID = model.EventID.String
	r.Date = model.Date.Format(constant.DateOnlyFormat)
	r.OldPrice = model.OldPrice
	r.NewPrice = model.NewPrice
	r.ChangePercentage = model.ChangePercentage
	r.Status = model.Status
	r.RequestedBy = model.RequestedBy
	r.ExpiresAt = timezone.Format(model.ExpiresAt, constant.DateFormat)
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	r.RespondedBy = model.RespondedBy.String

	if model.RespondedAt.Valid {
		r.RespondedAt = timezone.Format(model.RespondedAt.Time, constant.DateFormat)
	}
}

type GetApprovalsResponse struct {
	Approvals []ApprovalResponse `json:"approvals"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetApprovalsResponse) FromModels(models []model.PriceApproval, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Approvals = make([]ApprovalResponse, len(models))
	for i, mod := range models {
		r.Approvals[i].FromModel(mod)
	}
}
