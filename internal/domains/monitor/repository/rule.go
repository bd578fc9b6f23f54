package repository

//go:generate go run go.uber.org/mock/mockgen -source=./rule.go -destination=../mocks/rule_mock.go -package=mocks

import (
	"context"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/monitor/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
)

type Rule interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AlertRule, error)
	Enabled(ctx context.Context) ([]model.AlertRule, error)
}

type ruleRepository struct {
	gRepo.Repository[model.AlertRule]
	otel otel.Otel
}

func NewRule(db *postgres.Connection, otel otel.Otel) Rule {
	return &ruleRepository{
		Repository: gRepo.NewRepository[model.AlertRule](model.RuleEntityName, model.RuleTableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (r *ruleRepository) Enabled(ctx context.Context) ([]model.AlertRule, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".alert_rule.Enabled")
	defer scope.End()

	return r.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldMetricName, SortDir: gDto.SortDirAsc}, gDto.And( //nolint:wrapcheck
		gDto.Eq(model.RuleTableName, model.FieldEnabled, true),
	))
}
