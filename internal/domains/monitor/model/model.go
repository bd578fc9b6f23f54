package model

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

const (
	AlertTableName  = "pricing_alerts"
	AlertEntityName = "pricing_alert"

	RuleTableName  = "alert_rules"
	RuleEntityName = "alert_rule"

	CooldownTableName  = "alert_cooldowns"
	CooldownEntityName = "alert_cooldown"

	FieldID              = "id"
	FieldMetricName      = "metric_name"
	FieldCurrentValue    = "current_value"
	FieldThreshold       = "threshold"
	FieldSeverity        = "severity"
	FieldMessage         = "message"
	FieldTriggeredAt     = "triggered_at"
	FieldResolvedAt      = "resolved_at"
	FieldIsActive        = "is_active"
	FieldOperator        = "operator"
	FieldCooldownMinutes = "cooldown_minutes"
	FieldEnabled         = "enabled"
	FieldLastTriggeredAt = "last_triggered_at"
)

const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

const (
	OperatorGreater      = ">"
	OperatorLess         = "<"
	OperatorGreaterEqual = ">="
	OperatorLessEqual    = "<="
	OperatorEqual        = "="
)

// Performance metric names.
const (
	MetricCalculationsPerSecond = "calculations_per_second"
	MetricAvgCalculationTime    = "avg_calculation_time_ms"
	MetricCacheHitRate          = "cache_hit_rate"
	MetricErrorRate             = "error_rate"
	MetricQueueSize             = "queue_size"
	MetricMemoryUsage           = "memory_usage_mb"
	MetricCPUUsage              = "cpu_usage_percent"
)

// Business metric names.
const (
	MetricTotalRooms          = "total_rooms"
	MetricAutoPricingRooms    = "auto_pricing_rooms"
	MetricAvgPriceChange      = "avg_price_change_percentage"
	MetricPriceUpdatesPerHour = "price_updates_per_hour"
	MetricPendingApprovalRate = "pending_approval_rate"
	MetricRevenueImpact       = "revenue_impact"
)

// Alert is keyed by metric name; the table holds at most one active row per metric.
type Alert struct {
	ID           string       `db:"id"`
	MetricName   string       `db:"metric_name"`
	CurrentValue float64      `db:"current_value"`
	Threshold    float64      `db:"threshold"`
	Severity     string       `db:"severity"`
	Message      string       `db:"message"`
	TriggeredAt  time.Time    `db:"triggered_at"`
	ResolvedAt   sql.NullTime `db:"resolved_at"`
	IsActive     bool         `db:"is_active"`
}

type AlertRule struct {
	ID              string  `db:"id"`
	MetricName      string  `db:"metric_name"`
	Threshold       float64 `db:"threshold"`
	Operator        string  `db:"operator"`
	Severity        string  `db:"severity"`
	CooldownMinutes int     `db:"cooldown_minutes"`
	Enabled         bool    `db:"enabled"`
}

// Breached reports whether value crosses the rule. Unknown operators never fire.
func (r AlertRule) Breached(value float64) bool {
	cmp := decimal.NewFromFloat(value).Cmp(decimal.NewFromFloat(r.Threshold))

	switch r.Operator {
	case OperatorGreater:
		return cmp > 0
	case OperatorLess:
		return cmp < 0
	case OperatorGreaterEqual:
		return cmp >= 0
	case OperatorLessEqual:
		return cmp <= 0
	case OperatorEqual:
		return cmp == 0
	default:
		return false
	}
}

func (r AlertRule) Cooldown() time.Duration {
	return time.Duration(r.CooldownMinutes) * time.Minute
}

type AlertCooldown struct {
	MetricName      string    `db:"metric_name"`
	LastTriggeredAt time.Time `db:"last_triggered_at"`
}

// SeverityRank orders severities from low (1) to critical (4); unknown severities rank 0.
func SeverityRank(severity string) int {
	switch severity {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

type PerformanceMetrics struct {
	CalculationsPerSecond float64 `json:"calculations_per_second"`
	AvgCalculationTimeMs  float64 `json:"avg_calculation_time_ms"`
	CacheHitRate          float64 `json:"cache_hit_rate"`
	ErrorRate             float64 `json:"error_rate"`
	QueueSize             float64 `json:"queue_size"`
	MemoryUsageMB         float64 `json:"memory_usage_mb"`
	CPUUsagePercent       float64 `json:"cpu_usage_percent"`
}

func (m PerformanceMetrics) Values() map[string]float64 {
	return map[string]float64{
		MetricCalculationsPerSecond: m.CalculationsPerSecond,
		MetricAvgCalculationTime:    m.AvgCalculationTimeMs,
		MetricCacheHitRate:          m.CacheHitRate,
		MetricErrorRate:             m.ErrorRate,
		MetricQueueSize:             m.QueueSize,
		MetricMemoryUsage:           m.MemoryUsageMB,
		MetricCPUUsage:              m.CPUUsagePercent,
	}
}

type BusinessMetrics struct {
	TotalRooms               float64 `json:"total_rooms"`
	AutoPricingRooms         float64 `json:"auto_pricing_rooms"`
	AvgPriceChangePercentage float64 `json:"avg_price_change_percentage"`
	PriceUpdatesPerHour      float64 `json:"price_updates_per_hour"`
	PendingApprovalRate      float64 `json:"pending_approval_rate"`
	RevenueImpact            float64 `json:"revenue_impact"`
}

func (m BusinessMetrics) Values() map[string]float64 {
	return map[string]float64{
		MetricTotalRooms:          m.TotalRooms,
		MetricAutoPricingRooms:    m.AutoPricingRooms,
		MetricAvgPriceChange:      m.AvgPriceChangePercentage,
		MetricPriceUpdatesPerHour: m.PriceUpdatesPerHour,
		MetricPendingApprovalRate: m.PendingApprovalRate,
		MetricRevenueImpact:       m.RevenueImpact,
	}
}
