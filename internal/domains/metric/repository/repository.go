package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/metric/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"
)

const (
	queryPriceChangeStats = `
		SELECT
			COUNT(id) AS updates,
			COALESCE(AVG(ABS(metric_value)), 0) AS avg_abs_change,
			COALESCE(SUM(
				CAST(metadata->>'new_price' AS DOUBLE PRECISION) -
				CAST(metadata->>'previous_price' AS DOUBLE PRECISION)
			), 0) AS revenue_impact
		FROM pricing_metrics
		WHERE metric_type = 'price_change'
			AND recorded_at >= :since`
)

type Metric interface {
	Insert(ctx context.Context, model model.MetricSample) error
	InsertBulk(ctx context.Context, models []model.MetricSample) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.MetricSample, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	PriceChangeStats(ctx context.Context, since time.Time) (model.PriceChangeStats, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.MetricSample]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Metric {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.MetricSample](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) PriceChangeStats(ctx context.Context, since time.Time) (model.PriceChangeStats, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".pricing_metric.PriceChangeStats")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryPriceChangeStats)

	var stats model.PriceChangeStats

	prepare, err := r.db.Read.PrepareNamedContext(ctx, queryPriceChangeStats)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return stats, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &stats, map[string]any{"since": since}); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return stats, fmt.Errorf("failed to aggregate price changes (%s): %w", model.EntityName, err)
	}

	return stats, nil
}
