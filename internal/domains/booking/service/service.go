package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"time"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/repository"
	eventModel "lodge/internal/domains/event/model"
	eventDto "lodge/internal/domains/event/model/dto"
	eventService "lodge/internal/domains/event/service"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking = "booking:get"

	// maxRepricedNights bounds the fan-out of a single long stay.
	maxRepricedNights = 31
)

type Booking interface {
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	ChangeStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo   repository.Booking
	events eventService.Event
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(repo repository.Booking, events eventService.Event, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:   repo,
		events: events,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	roomIDs, err := s.repo.RoomIDs(ctx, booking.ID)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking rooms")

		return res, fmt.Errorf("failed to get booking rooms: %w", err)
	}

	res.FromModel(booking, roomIDs)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// ChangeStatus updates the booking and queues a booking_change event for every booked room and upcoming night.
func (s *serviceImpl) ChangeStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangeStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	previous := booking.Status
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	err = s.repo.Update(ctx, map[string]any{
		model.FieldStatus: req.Status,
		"modified_at":     now,
		"modified_by":     user,
	}, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = req.Status
	booking.ModifiedAt = now
	booking.ModifiedBy = user

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
		log.Warn().Err(err).Str("booking_id", id).Msg("failed to invalidate booking cache")
	}

	roomIDs, err := s.repo.RoomIDs(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking rooms")

		return res, fmt.Errorf("failed to get booking rooms: %w", err)
	}

	res.FromModel(booking, roomIDs)

	reason := fmt.Sprintf("booking %s: %s -> %s", id, previous, req.Status)

	for _, night := range Nights(booking.CheckIn, booking.CheckOut, timezone.Today()) {
		for _, roomID := range roomIDs {
			_, err := s.events.Enqueue(ctx, eventDto.EnqueueRequest{
				EventType: eventModel.TypeBookingChange,
				RoomID:    roomID,
				Priority:  eventModel.PriorityNormal,
				Payload: eventModel.Payload{
					Date:      night.Format(constant.DateOnlyFormat),
					BookingID: id,
					Reason:    reason,
				},
			})
			if err != nil {
				// the nightly recalculation still covers a night whose event was lost
				log.Warn().Err(err).Str("booking_id", id).Str("room_id", roomID).Msg("booking change event not queued")

				continue
			}

			res.EventsQueued++
		}
	}

	log.Info().
		Str("booking_id", id).
		Str("from", previous).
		Str("to", req.Status).
		Int("events_queued", res.EventsQueued).
		Msg("booking status changed")

	return res, nil
}

// Nights lists the stay nights from max(today, checkIn) up to checkOut, exclusive, capped at a month.
func Nights(checkIn, checkOut, today time.Time) []time.Time {
	start := checkIn
	if start.Before(today) {
		start = today
	}

	var nights []time.Time

	for night := start; night.Before(checkOut) && len(nights) < maxRepricedNights; night = night.AddDate(0, 0, 1) {
		nights = append(nights, night)
	}

	return nights
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}
