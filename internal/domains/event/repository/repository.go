package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/event/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"
)

const (
	eventColumns = `id, event_type, room_id, priority, payload, processed, retry_count, status,
		error_message, created_at, started_at, completed_at`

	queryListPending = `
		SELECT ` + eventColumns + `
		FROM pricing_events
		WHERE processed = false AND status = 'pending'
		ORDER BY priority DESC, created_at ASC
		LIMIT :limit`

	// The status predicate makes the claim a compare-and-set: only one processor gets the row back.
	queryClaim = `
		UPDATE pricing_events
		SET status = 'processing', started_at = :started_at
		WHERE id = :id AND status = 'pending' AND processed = false
		RETURNING ` + eventColumns

	// SET expressions read the pre-update retry_count, so both branches see the same attempt number.
	queryReclaim = `
		UPDATE pricing_events
		SET retry_count = retry_count + 1,
			status = CASE WHEN retry_count + 1 >= :max_retries THEN 'failed' ELSE 'pending' END,
			error_message = :error_message
		WHERE status = 'processing' AND processed = false AND started_at < :cutoff
		RETURNING ` + eventColumns
)

type Event interface {
	Insert(ctx context.Context, model model.PricingEvent) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PricingEvent, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PricingEvent, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	ListPending(ctx context.Context, limit int) ([]model.PricingEvent, error)
	Claim(ctx context.Context, id string, startedAt time.Time) (model.PricingEvent, bool, error)
	Reclaim(ctx context.Context, cutoff time.Time, maxRetries int, reason string) ([]model.PricingEvent, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.PricingEvent]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Event {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PricingEvent](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// OutstandingFilter selects events still waiting for or undergoing processing.
func OutstandingFilter() gDto.FilterGroup {
	return gDto.And(gDto.In(model.TableName, model.FieldStatus, "statuses", []string{model.StatusPending, model.StatusProcessing}))
}

func (r *repositoryImpl) ListPending(ctx context.Context, limit int) ([]model.PricingEvent, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".pricing_event.ListPending")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryListPending)

	prepare, err := r.db.Read.PrepareNamedContext(ctx, queryListPending)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	events := []model.PricingEvent{}

	if err = prepare.SelectContext(ctx, &events, map[string]any{"limit": limit}); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list pending events (%s): %w", model.EntityName, err)
	}

	return events, nil
}

// Claim moves a pending event to processing. It reports false when another processor owns the row.
func (r *repositoryImpl) Claim(ctx context.Context, id string, startedAt time.Time) (model.PricingEvent, bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".pricing_event.Claim")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryClaim)

	var event model.PricingEvent

	prepare, err := r.db.Write.PrepareNamedContext(ctx, queryClaim)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return event, false, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &event, map[string]any{
		model.FieldID:        id,
		model.FieldStartedAt: startedAt,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return event, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return event, false, fmt.Errorf("failed to claim event (%s): %w", model.EntityName, err)
	}

	return event, true, nil
}

// Reclaim releases events stuck in processing since before cutoff. Each counts as a spent attempt:
// the row goes back to pending, or to failed once maxRetries is reached.
func (r *repositoryImpl) Reclaim(ctx context.Context, cutoff time.Time, maxRetries int, reason string) ([]model.PricingEvent, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".pricing_event.Reclaim")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryReclaim)

	prepare, err := r.db.Write.PrepareNamedContext(ctx, queryReclaim)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	events := []model.PricingEvent{}

	err = prepare.SelectContext(ctx, &events, map[string]any{
		"cutoff":                cutoff,
		"max_retries":           maxRetries,
		model.FieldErrorMessage: reason,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to reclaim stale events (%s): %w", model.EntityName, err)
	}

	return events, nil
}
