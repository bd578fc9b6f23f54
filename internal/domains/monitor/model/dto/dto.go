package dto

import (
	"lodge/internal/domains/monitor/model"
	"lodge/shared"
	"lodge/shared/constant"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

// NewAlert opens an active alert for the breached rule.
func NewAlert(rule model.AlertRule, value float64, message string) model.Alert {
	return model.Alert{
		ID:           uuid.NewString(),
		MetricName:   rule.MetricName,
		CurrentValue: value,
		Threshold:    rule.Threshold,
		Severity:     rule.Severity,
		Message:      message,
		TriggeredAt:  timezone.Now(),
		IsActive:     true,
	}
}

type AlertResponse struct {
	ID           string  `json:"id"`
	MetricName   string  `json:"metric_name"`
	CurrentValue float64 `json:"current_value"`
	Threshold    float64 `json:"threshold"`
	Severity     string  `json:"severity"`
	Message      string  `json:"message"`
	TriggeredAt  string  `json:"triggered_at"`
	ResolvedAt   string  `json:"resolved_at,omitempty"`
	IsActive     bool    `json:"is_active"`
}

func (r *AlertResponse) FromModel(model model.Alert) {
	r.ID = model.ID
	r.MetricName = model.MetricName
	r.CurrentValue = model.CurrentValue
	r.Threshold = model.Threshold
	r.Severity = model.Severity
	r.Message = model.Message
	r.TriggeredAt = timezone.Format(model.TriggeredAt, constant.DateFormat)
	r.IsActive = model.IsActive

	if model.ResolvedAt.Valid {
		r.ResolvedAt = timezone.Format(model.ResolvedAt.Time, constant.DateFormat)
	}
}

type GetAlertsResponse struct {
	Alerts    []AlertResponse `json:"alerts"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetAlertsResponse) FromModels(models []model.Alert, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Alerts = make([]AlertResponse, len(models))
	for i, mod := range models {
		r.Alerts[i].FromModel(mod)
	}
}

type AlertCheckResult struct {
	Evaluated  int `json:"evaluated"`
	Triggered  int `json:"triggered"`
	Suppressed int `json:"suppressed"`
	Resolved   int `json:"resolved"`
}

type HealthResponse struct {
	HealthScore  float64        `json:"health_score"`
	Status       string         `json:"status"`
	ActiveAlerts map[string]int `json:"active_alerts"`
	ErrorRate    float64        `json:"error_rate"`
	CacheHitRate float64        `json:"cache_hit_rate"`
	CheckedAt    string         `json:"checked_at"`
}

type CycleResult struct {
	Performance *model.PerformanceMetrics `json:"performance,omitempty"`
	Business    *model.BusinessMetrics    `json:"business,omitempty"`
	Alerts      AlertCheckResult          `json:"alerts"`
}
