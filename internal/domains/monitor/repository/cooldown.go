package repository

//go:generate go run go.uber.org/mock/mockgen -source=./cooldown.go -destination=../mocks/cooldown_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/monitor/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"
)

const (
	queryStampCooldown = `
		INSERT INTO alert_cooldowns (metric_name, last_triggered_at)
		VALUES (:metric_name, :last_triggered_at)
		ON CONFLICT (metric_name) DO UPDATE SET
			last_triggered_at = EXCLUDED.last_triggered_at`
)

type Cooldown interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AlertCooldown, error)
	Stamp(ctx context.Context, metricName string, at time.Time) error
}

type cooldownRepository struct {
	gRepo.Repository[model.AlertCooldown]
	db   *postgres.Connection
	otel otel.Otel
}

func NewCooldown(db *postgres.Connection, otel otel.Otel) Cooldown {
	return &cooldownRepository{
		Repository: gRepo.NewRepository[model.AlertCooldown](model.CooldownEntityName, model.CooldownTableName, model.FieldMetricName, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *cooldownRepository) Stamp(ctx context.Context, metricName string, at time.Time) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".alert_cooldown.Stamp")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryStampCooldown)

	_, err := r.db.Write.NamedExecContext(ctx, queryStampCooldown, model.AlertCooldown{
		MetricName:      metricName,
		LastTriggeredAt: at,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to stamp cooldown (%s): %w", model.CooldownEntityName, err)
	}

	return nil
}
