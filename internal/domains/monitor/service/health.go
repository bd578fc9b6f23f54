package service

import (
	"lodge/internal/domains/monitor/model"
)

const (
	HealthHealthy  = "healthy"
	HealthWarning  = "warning"
	HealthCritical = "critical"

	fullHealth            = 100
	errorRatePenalty      = 20
	errorRateLimit        = 5
	cacheHitRatePenalty   = 15
	cacheHitRateFloor     = 70
	healthyScoreThreshold = 80
	warningScoreThreshold = 60
)

var severityPenalty = map[string]float64{
	model.SeverityCritical: 25,
	model.SeverityHigh:     15,
	model.SeverityMedium:   10,
	model.SeverityLow:      5,
}

// HealthScore starts at 100 and loses points per active alert and for a poor error or cache hit rate.
func HealthScore(active []model.Alert, errorRate, cacheHitRate float64) float64 {
	score := float64(fullHealth)

	for _, alert := range active {
		score -= severityPenalty[alert.Severity]
	}

	if errorRate > errorRateLimit {
		score -= errorRatePenalty
	}

	if cacheHitRate < cacheHitRateFloor {
		score -= cacheHitRatePenalty
	}

	return max(0, score)
}

func HealthStatus(score float64) string {
	switch {
	case score >= healthyScoreThreshold:
		return HealthHealthy
	case score >= warningScoreThreshold:
		return HealthWarning
	default:
		return HealthCritical
	}
}
