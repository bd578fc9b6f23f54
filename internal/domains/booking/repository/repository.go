package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/booking/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"
)

const (
	queryBookedUnits = `
		SELECT COALESCE(SUM(br.quantity), 0)
		FROM booking_rooms br
		JOIN bookings b ON b.id = br.booking_id
		WHERE br.room_id = :room_id
			AND b.status NOT IN ('cancelled', 'rejected')
			AND b.check_in <= :date
			AND b.check_out > :date`

	queryBookingRoomIDs = `
		SELECT DISTINCT room_id
		FROM booking_rooms
		WHERE booking_id = :booking_id
		ORDER BY room_id`
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	CountBookedUnits(ctx context.Context, roomID string, date time.Time) (int, error)
	RoomIDs(ctx context.Context, bookingID string) ([]string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CountBookedUnits sums the units of a room held by bookings covering the night of date.
func (r *repositoryImpl) CountBookedUnits(ctx context.Context, roomID string, date time.Time) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountBookedUnits")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryBookedUnits)

	prepare, err := r.db.Read.PrepareNamedContext(ctx, queryBookedUnits)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", model.RoomEntityName, err)
	}
	defer prepare.Close()

	var booked int

	err = prepare.GetContext(ctx, &booked, map[string]any{
		model.FieldRoomID: roomID,
		"date":            date,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count booked units (%s): %w", model.RoomEntityName, err)
	}

	return booked, nil
}

func (r *repositoryImpl) RoomIDs(ctx context.Context, bookingID string) ([]string, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.RoomIDs")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryBookingRoomIDs)

	prepare, err := r.db.Read.PrepareNamedContext(ctx, queryBookingRoomIDs)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.RoomEntityName, err)
	}
	defer prepare.Close()

	roomIDs := []string{}

	if err = prepare.SelectContext(ctx, &roomIDs, map[string]any{model.FieldBookingID: bookingID}); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list booking rooms (%s): %w", model.RoomEntityName, err)
	}

	return roomIDs, nil
}
