package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/competitor/model"
	"lodge/shared/constant"
	"lodge/shared/logger"
)

const (
	querySummary = `
		SELECT
			COALESCE(AVG(cr.price), 0) AS average,
			COALESCE(MIN(cr.price), 0) AS min_price,
			COALESCE(MAX(cr.price), 0) AS max_price,
			COUNT(cr.id) AS sample_count
		FROM competitor_rooms cr
		JOIN competitor_price_surveys s ON s.id = cr.survey_id
		WHERE cr.room_id = :room_id
			AND s.survey_date >= :from
			AND s.survey_date <= :to`
)

type Competitor interface {
	Summary(ctx context.Context, roomID string, from, to time.Time) (model.Summary, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Competitor {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

// Summary aggregates surveyed prices dated within [from, to]; all zero without samples.
func (r *repositoryImpl) Summary(ctx context.Context, roomID string, from, to time.Time) (model.Summary, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".competitor.Summary")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, querySummary)

	var summary model.Summary

	prepare, err := r.db.Read.PrepareNamedContext(ctx, querySummary)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return summary, fmt.Errorf("failed to prepare statement (%s): %w", model.RoomEntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &summary, map[string]any{
		model.FieldRoomID: roomID,
		"from":            from,
		"to":              to,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return summary, fmt.Errorf("failed to summarize competitor prices (%s): %w", model.RoomEntityName, err)
	}

	return summary, nil
}
