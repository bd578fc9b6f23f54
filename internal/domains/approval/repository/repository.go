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
	"lodge/internal/domains/approval/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"
)

const (
	approvalColumns = `id, room_id, event_id, date, old_price, new_price, change_percentage, status,
		requested_by, expires_at, responded_at, responded_by, created_at`

	// Resolving only matches live pending rows, so a late or repeated response changes nothing.
	queryResolve = `
		UPDATE price_approvals
		SET status = :status, responded_at = :responded_at, responded_by = :responded_by
		WHERE id = :id AND status = 'pending' AND expires_at > :responded_at
		RETURNING ` + approvalColumns

	// Reopening only undoes an approval the caller itself just resolved as approved.
	queryReopen = `
		UPDATE price_approvals
		SET status = 'pending', responded_at = NULL, responded_by = NULL
		WHERE id = :id AND status = 'approved'`

	queryExpirePending = `
		UPDATE price_approvals
		SET status = 'rejected', responded_at = :now, responded_by = :responded_by
		WHERE status = 'pending' AND expires_at <= :now
		RETURNING ` + approvalColumns
)

type Approval interface {
	Insert(ctx context.Context, model model.PriceApproval) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PriceApproval, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PriceApproval, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Resolve(ctx context.Context, id, status, respondedBy string, respondedAt time.Time) (model.PriceApproval, bool, error)
	Reopen(ctx context.Context, id string) error
	ExpirePending(ctx context.Context, now time.Time) ([]model.PriceApproval, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.PriceApproval]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Approval {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PriceApproval](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Resolve reports false when the approval is no longer pending or has already expired.
func (r *repositoryImpl) Resolve(ctx context.Context, id, status, respondedBy string, respondedAt time.Time) (model.PriceApproval, bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".price_approval.Resolve")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryResolve)

	var approval model.PriceApproval

	prepare, err := r.db.Write.PrepareNamedContext(ctx, queryResolve)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return approval, false, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &approval, map[string]any{
		model.FieldID:          id,
		model.FieldStatus:      status,
		model.FieldRespondedBy: respondedBy,
		model.FieldRespondedAt: respondedAt,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return approval, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return approval, false, fmt.Errorf("failed to resolve approval (%s): %w", model.EntityName, err)
	}

	return approval, true, nil
}

// Reopen puts an approved approval back to pending so the response can be repeated.
func (r *repositoryImpl) Reopen(ctx context.Context, id string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".price_approval.Reopen")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryReopen)

	if _, err := r.db.Write.NamedExecContext(ctx, queryReopen, map[string]any{model.FieldID: id}); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to reopen approval (%s): %w", model.EntityName, err)
	}

	return nil
}

func (r *repositoryImpl) ExpirePending(ctx context.Context, now time.Time) ([]model.PriceApproval, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".price_approval.ExpirePending")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryExpirePending)

	prepare, err := r.db.Write.PrepareNamedContext(ctx, queryExpirePending)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	expired := []model.PriceApproval{}

	err = prepare.SelectContext(ctx, &expired, map[string]any{
		"now":                  now,
		model.FieldRespondedBy: model.ResponderExpired,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to expire approvals (%s): %w", model.EntityName, err)
	}

	return expired, nil
}
