package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"lodge/config"
	"lodge/infras/otel/mocks"
	eventMocks "lodge/internal/domains/event/mocks"
	eventModel "lodge/internal/domains/event/model"
	eventDto "lodge/internal/domains/event/model/dto"
	roomMocks "lodge/internal/domains/room/mocks"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/service"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type roomFixture struct {
	repo   *roomMocks.MockRoom
	events *eventMocks.MockEventService
	cache  *cacheMocks.MockRedisCache
	svc    service.Room
}

func newRoomFixture(t *testing.T) *roomFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &roomFixture{
		repo:   roomMocks.NewMockRoom(ctrl),
		events: eventMocks.NewMockEventService(ctrl),
		cache:  cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(f.repo, f.events, &config.Config{}, f.cache, mocks.NewOtel())

	return f
}

func ptr[T any](v T) *T {
	return &v
}

var deluxe = model.Room{
	ID:                 "room-1",
	Name:               "Deluxe",
	BasePrice:          500000,
	Allotment:          10,
	MaxAutoPrice:       sql.NullFloat64{Float64: 1200000, Valid: true},
	AutoPricingEnabled: true,
}

func TestRoomService_Get(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		f := newRoomFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "room:get:room-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				value.(*dto.RoomResponse).ID = "room-1"

				return nil
			})

		res, err := f.svc.Get(context.Background(), "room-1")
		require.NoError(t, err)

		assert.Equal(t, "room-1", res.ID)
	})

	t.Run("maps nullable bounds", func(t *testing.T) {
		f := newRoomFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe, nil)
		f.cache.EXPECT().Save(gomock.Any(), "room:get:room-1", gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := f.svc.Get(context.Background(), "room-1")
		require.NoError(t, err)

		assert.Nil(t, res.MinAutoPrice)
		require.NotNil(t, res.MaxAutoPrice)
		assert.InDelta(t, 1200000.0, *res.MaxAutoPrice, 0.001)
	})

	t.Run("not found", func(t *testing.T) {
		f := newRoomFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		_, err := f.svc.Get(context.Background(), "room-9")

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestRoomService_UpdatePricing(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "revenue-manager")

	t.Run("saves bounds and queues today's reprice", func(t *testing.T) {
		f := newRoomFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
				assert.Equal(t, true, req[model.FieldAutoPricingEnabled])
				assert.Equal(t, sql.NullFloat64{Float64: 300000, Valid: true}, req[model.FieldMinAutoPrice])
				assert.Equal(t, sql.NullFloat64{}, req[model.FieldMaxAutoPrice])
				assert.Equal(t, "revenue-manager", req[constant.FieldModifiedBy])

				return nil
			})
		f.cache.EXPECT().Delete(gomock.Any(), "room:get:room-1").Return(nil)
		f.events.EXPECT().Enqueue(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req eventDto.EnqueueRequest) (eventDto.EventResponse, error) {
				assert.Equal(t, eventModel.TypeTimeTrigger, req.EventType)
				assert.Equal(t, "room-1", req.RoomID)
				assert.Equal(t, timezone.Today().Format(constant.DateOnlyFormat), req.Payload.Date)

				return eventDto.EventResponse{ID: "evt-1"}, nil
			})

		res, err := f.svc.UpdatePricing(ctx, "room-1", dto.UpdatePricingRequest{
			AutoPricingEnabled: ptr(true),
			MinAutoPrice:       ptr(300000.0),
		})
		require.NoError(t, err)

		assert.True(t, res.RepriceQueued)
		assert.Nil(t, res.MaxAutoPrice)
		assert.Equal(t, "revenue-manager", res.ModifiedBy)
	})

	t.Run("disabling does not queue", func(t *testing.T) {
		f := newRoomFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.UpdatePricing(ctx, "room-1", dto.UpdatePricingRequest{AutoPricingEnabled: ptr(false)})
		require.NoError(t, err)

		assert.False(t, res.AutoPricingEnabled)
		assert.False(t, res.RepriceQueued)
	})

	t.Run("lost event keeps the update", func(t *testing.T) {
		f := newRoomFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deluxe, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.events.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(eventDto.EventResponse{}, errors.New("db down"))

		res, err := f.svc.UpdatePricing(ctx, "room-1", dto.UpdatePricingRequest{AutoPricingEnabled: ptr(true)})
		require.NoError(t, err)

		assert.False(t, res.RepriceQueued)
	})

	t.Run("inverted bounds", func(t *testing.T) {
		f := newRoomFixture(t)

		_, err := f.svc.UpdatePricing(ctx, "room-1", dto.UpdatePricingRequest{
			AutoPricingEnabled: ptr(true),
			MinAutoPrice:       ptr(900000.0),
			MaxAutoPrice:       ptr(300000.0),
		})

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newRoomFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		_, err := f.svc.UpdatePricing(ctx, "room-9", dto.UpdatePricingRequest{AutoPricingEnabled: ptr(true)})

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
