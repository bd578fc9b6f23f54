package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/pricing/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
)

type PriceCache interface {
	Lookup(ctx context.Context, roomID string, date time.Time) (model.PriceCacheEntry, error)
	Upsert(ctx context.Context, entry model.PriceCacheEntry) error
}

type repositoryImpl struct {
	gRepo.Repository[model.PriceCacheEntry]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) PriceCache {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PriceCacheEntry](model.EntityName, model.TableName, model.FieldRoomID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Lookup returns the stored entry regardless of validity; a zero entry means none exists.
func (r *repositoryImpl) Lookup(ctx context.Context, roomID string, date time.Time) (model.PriceCacheEntry, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".price_cache.Lookup")
	defer scope.End()

	return r.Get(ctx, gDto.And( //nolint:wrapcheck
		gDto.Eq(model.TableName, model.FieldRoomID, roomID),
		gDto.Eq(model.TableName, model.FieldDate, date),
	))
}

// Upsert replaces the stored snapshot for the room and night.
func (r *repositoryImpl) Upsert(ctx context.Context, entry model.PriceCacheEntry) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".price_cache.Upsert")
	defer scope.End()

	return r.Repository.Upsert(ctx, entry, model.FieldRoomID, model.FieldDate) //nolint:wrapcheck
}
