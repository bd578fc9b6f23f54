package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"fmt"

	"lodge/config"
	"lodge/infras/otel"
	eventModel "lodge/internal/domains/event/model"
	eventDto "lodge/internal/domains/event/model/dto"
	eventService "lodge/internal/domains/event/service"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom = "room:get"
)

type Room interface {
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	UpdatePricing(ctx context.Context, id string, req dto.UpdatePricingRequest) (dto.RoomResponse, error)
}

type serviceImpl struct {
	repo   repository.Room
	events eventService.Event
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(repo repository.Room, events eventService.Event, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:   repo,
		events: events,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

// UpdatePricing stores the auto pricing settings and queues a recalculation of today's price.
func (s *serviceImpl) UpdatePricing(ctx context.Context, id string, req dto.UpdatePricingRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePricing")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.MinAutoPrice != nil && req.MaxAutoPrice != nil && *req.MinAutoPrice > *req.MaxAutoPrice {
		return res, failure.BadRequestFromString("min_auto_price must not exceed max_auto_price") // nolint:wrapcheck
	}

	room, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	fields := req.ToFields(user)
	fields[constant.FieldModifiedAt] = now

	if err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to update room pricing settings")

		return res, fmt.Errorf("failed to update room pricing settings: %w", err)
	}

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
		log.Warn().Err(err).Str("room_id", id).Msg("failed to invalidate room cache")
	}

	room.AutoPricingEnabled = *req.AutoPricingEnabled
	room.MinAutoPrice = dto.NullFloat(req.MinAutoPrice)
	room.MaxAutoPrice = dto.NullFloat(req.MaxAutoPrice)
	room.ModifiedAt = now
	room.ModifiedBy = user

	res.FromModel(room)

	if !room.AutoPricingEnabled {
		return res, nil
	}

	_, err = s.events.Enqueue(ctx, eventDto.EnqueueRequest{
		EventType: eventModel.TypeTimeTrigger,
		RoomID:    id,
		Priority:  eventModel.PriorityNormal,
		Payload: eventModel.Payload{
			Date:        timezone.Today().Format(constant.DateOnlyFormat),
			Reason:      "room pricing settings changed",
			RequestedBy: user,
		},
	})
	if err != nil {
		// settings are saved; the scheduled recalculation picks the room up
		log.Warn().Err(err).Str("room_id", id).Msg("room reprice event not queued")

		return res, nil
	}

	res.RepriceQueued = true

	log.Info().Str("room_id", id).Bool("auto_pricing_enabled", room.AutoPricingEnabled).Msg("room pricing settings updated")

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Room, error) {
	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room, nil
}
