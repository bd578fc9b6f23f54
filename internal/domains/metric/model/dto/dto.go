package dto

import (
	"database/sql"

	"lodge/internal/domains/metric/model"
	"lodge/shared"
	"lodge/shared/constant"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

// NewSample builds a sample stamped now; an empty roomID stores NULL.
func NewSample(metricType, name string, value float64, roomID string, details gModel.Attributes) model.MetricSample {
	return model.MetricSample{
		ID:          uuid.NewString(),
		MetricType:  metricType,
		MetricName:  name,
		MetricValue: value,
		RoomID:      sql.NullString{String: roomID, Valid: roomID != constant.Empty},
		Details:     details,
		RecordedAt:  timezone.Now(),
	}
}

type MetricResponse struct {
	ID          string            `json:"id"`
	MetricType  string            `json:"metric_type"`
	MetricName  string            `json:"metric_name"`
	MetricValue float64           `json:"metric_value"`
	RoomID      string            `json:"room_id,omitempty"`
	Metadata    gModel.Attributes `json:"metadata,omitempty"`
	RecordedAt  string            `json:"recorded_at"`
}

func (r *MetricResponse) FromModel(model model.MetricSample) {
	r.ID = model.ID
	r.MetricType = model.MetricType
	r.MetricName = model.MetricName
	r.MetricValue = model.MetricValue
	r.RoomID = model.RoomID.String
	r.Metadata = model.Details
	r.RecordedAt = timezone.Format(model.RecordedAt, constant.DateFormat)
}

type GetMetricsResponse struct {
	Metrics   []MetricResponse `json:"metrics"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetMetricsResponse) FromModels(models []model.MetricSample, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Metrics = make([]MetricResponse, len(models))
	for i, mod := range models {
		r.Metrics[i].FromModel(mod)
	}
}
