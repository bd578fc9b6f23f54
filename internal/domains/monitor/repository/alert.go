package repository

//go:generate go run go.uber.org/mock/mockgen -source=./alert.go -destination=../mocks/alert_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/monitor/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gRepo "lodge/shared/repository"

	"github.com/lib/pq"
)

type Alert interface {
	Insert(ctx context.Context, model model.Alert) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Alert, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Active(ctx context.Context) ([]model.Alert, error)
}

type alertRepository struct {
	gRepo.Repository[model.Alert]
	otel otel.Otel
}

func NewAlert(db *postgres.Connection, otel otel.Otel) Alert {
	return &alertRepository{
		Repository: gRepo.NewRepository[model.Alert](model.AlertEntityName, model.AlertTableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// ActiveFilter selects alerts that have not been resolved.
func ActiveFilter() gDto.FilterGroup {
	return gDto.And(gDto.Eq(model.AlertTableName, model.FieldIsActive, true))
}

// Insert reports a Conflict when the partial unique index already holds an active alert for the metric.
func (r *alertRepository) Insert(ctx context.Context, alert model.Alert) error {
	err := r.Repository.Insert(ctx, alert)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
		return failure.Conflict(fmt.Sprintf("alert for %s is already active", alert.MetricName))
	}

	return err //nolint:wrapcheck
}

func (r *alertRepository) Active(ctx context.Context) ([]model.Alert, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".pricing_alert.Active")
	defer scope.End()

	return r.GetAll(ctx, gDto.QueryParams{}, ActiveFilter()) //nolint:wrapcheck
}
