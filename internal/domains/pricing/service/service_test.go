package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"lodge/config"
	"lodge/infras/otel/mocks"
	bookingMocks "lodge/internal/domains/booking/mocks"
	competitorMocks "lodge/internal/domains/competitor/mocks"
	competitorModel "lodge/internal/domains/competitor/model"
	metricMocks "lodge/internal/domains/metric/mocks"
	metricModel "lodge/internal/domains/metric/model"
	pricingMocks "lodge/internal/domains/pricing/mocks"
	"lodge/internal/domains/pricing/model"
	"lodge/internal/domains/pricing/service"
	roomMocks "lodge/internal/domains/room/mocks"
	roomModel "lodge/internal/domains/room/model"
	settingMocks "lodge/internal/domains/setting/mocks"
	"lodge/shared/cache"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	statsMocks "lodge/shared/stats/mocks"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	tuesday  = time.Date(2026, 10, 27, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2026, 10, 24, 0, 0, 0, 0, time.UTC)
)

type pricingFixture struct {
	priceRepo      *pricingMocks.MockPriceCache
	roomRepo       *roomMocks.MockRoom
	bookingRepo    *bookingMocks.MockBooking
	competitorRepo *competitorMocks.MockCompetitor
	metricRepo     *metricMocks.MockMetric
	settings       *settingMocks.MockSettingService
	recorder       *statsMocks.MockRecorder
	redis          *miniredis.Miniredis
	svc            service.Pricing
}

func newPricingFixture(t *testing.T) *pricingFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Pricing.CacheTTLMinutes = 15
	cfg.Pricing.ManualOverrideTTLMinutes = 1440
	cfg.Pricing.CompetitorWindowDays = 7
	cfg.Pricing.BatchConcurrency = 2

	f := &pricingFixture{
		priceRepo:      pricingMocks.NewMockPriceCache(ctrl),
		roomRepo:       roomMocks.NewMockRoom(ctrl),
		bookingRepo:    bookingMocks.NewMockBooking(ctrl),
		competitorRepo: competitorMocks.NewMockCompetitor(ctrl),
		metricRepo:     metricMocks.NewMockMetric(ctrl),
		settings:       settingMocks.NewMockSettingService(ctrl),
		recorder:       statsMocks.NewMockRecorder(ctrl),
		redis:          mr,
	}

	f.svc = service.New(
		f.priceRepo,
		f.roomRepo,
		f.bookingRepo,
		f.competitorRepo,
		f.metricRepo,
		f.settings,
		cache.NewRedisCache(client, mocks.NewOtel()),
		f.recorder,
		func() float64 { return 0 },
		cfg,
		mocks.NewOtel(),
	)

	return f
}

func standardRoom() roomModel.Room {
	return roomModel.Room{
		ID:                 "room-1",
		Name:               "Deluxe Garden",
		BasePrice:          500000,
		Allotment:          10,
		AutoPricingEnabled: true,
	}
}

// expectCalculation primes one full calculation for room with booked units and no competitor data.
func (f *pricingFixture) expectCalculation(room roomModel.Room, date time.Time, booked int) *metricModel.MetricSample {
	sample := &metricModel.MetricSample{}

	f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
	f.settings.EXPECT().PricingPolicy(gomock.Any()).Return(defaultPolicy, nil)
	f.bookingRepo.EXPECT().CountBookedUnits(gomock.Any(), room.ID, date).Return(booked, nil)
	f.competitorRepo.EXPECT().Summary(gomock.Any(), room.ID, date.AddDate(0, 0, -7), date).Return(competitorModel.Summary{}, nil)
	f.priceRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	f.metricRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s metricModel.MetricSample) error {
		*sample = s

		return nil
	})

	return sample
}

func TestPricingService_Calculate_BasicScenario(t *testing.T) {
	f := newPricingFixture(t)
	ctx := context.Background()

	f.priceRepo.EXPECT().Lookup(gomock.Any(), "room-1", tuesday).Return(model.PriceCacheEntry{}, nil)
	f.recorder.EXPECT().RecordCacheLookup(gomock.Any(), false)
	f.recorder.EXPECT().RecordCalculation(gomock.Any(), gomock.Any(), false)

	sample := f.expectCalculation(standardRoom(), tuesday, 8)

	res, err := f.svc.Calculate(ctx, "room-1", tuesday, false)
	require.NoError(t, err)

	assert.Equal(t, 80.0, res.OccupancyRate)
	assert.Equal(t, 1.0, res.TimeMultiplier)
	assert.Equal(t, 1.15, res.OccupancyMultiplier)
	assert.Equal(t, 1.0, res.CompetitorMultiplier)
	assert.Equal(t, 1.3, res.DemandMultiplier)
	assert.Equal(t, 1.495, res.FinalMultiplier)
	assert.Equal(t, 750000.0, res.CalculatedPrice)
	assert.Equal(t, "2026-10-27", res.Date)
	assert.Equal(t, model.SourceCalculated, res.Source)
	assert.False(t, res.Raw.Bounds.Clamped)
	assert.Equal(t, 8, res.Raw.Occupancy.BookedUnits)

	assert.Equal(t, metricModel.TypePriceChange, sample.MetricType)
	assert.Equal(t, 50.0, sample.MetricValue)
	assert.Equal(t, 500000.0, sample.Details[metricModel.AttrPreviousPrice])
	assert.Equal(t, 750000.0, sample.Details[metricModel.AttrNewPrice])
}

func TestPricingService_Calculate_WeekendClamp(t *testing.T) {
	f := newPricingFixture(t)

	room := standardRoom()
	room.MaxAutoPrice = sql.NullFloat64{Float64: 700000, Valid: true}

	f.recorder.EXPECT().RecordCalculation(gomock.Any(), gomock.Any(), false)
	f.expectCalculation(room, saturday, 8)

	res, err := f.svc.Calculate(context.Background(), "room-1", saturday, true)
	require.NoError(t, err)

	assert.Equal(t, 1.2, res.TimeMultiplier)
	assert.Equal(t, 700000.0, res.CalculatedPrice)
	assert.Equal(t, 1.4, res.FinalMultiplier)
	assert.True(t, res.Raw.Bounds.Clamped)
	assert.Equal(t, 897000.0, res.Raw.Bounds.UnclampedPrice)
}

func TestPricingService_Calculate_CachedReadIsIdempotent(t *testing.T) {
	f := newPricingFixture(t)
	ctx := context.Background()

	f.priceRepo.EXPECT().Lookup(gomock.Any(), "room-1", tuesday).Return(model.PriceCacheEntry{}, nil).Times(1)
	f.recorder.EXPECT().RecordCacheLookup(gomock.Any(), false).Times(1)
	f.recorder.EXPECT().RecordCacheLookup(gomock.Any(), true).Times(1)
	f.recorder.EXPECT().RecordCalculation(gomock.Any(), gomock.Any(), false).Times(1)

	// the metric insert is primed once, so a second sample fails the test
	f.expectCalculation(standardRoom(), tuesday, 8)

	first, err := f.svc.Calculate(ctx, "room-1", tuesday, false)
	require.NoError(t, err)

	assert.True(t, f.redis.Exists("pricing:cache:room-1:2026-10-27"))

	second, err := f.svc.Calculate(ctx, "room-1", tuesday, false)
	require.NoError(t, err)

	assert.Equal(t, first.CalculatedPrice, second.CalculatedPrice)
	assert.Equal(t, first.FinalMultiplier, second.FinalMultiplier)
	assert.Equal(t, first.TimeMultiplier, second.TimeMultiplier)
	assert.Equal(t, first.OccupancyMultiplier, second.OccupancyMultiplier)
	assert.Equal(t, first.CompetitorMultiplier, second.CompetitorMultiplier)
	assert.Equal(t, first.DemandMultiplier, second.DemandMultiplier)
}

func TestPricingService_Calculate_ServesValidDatabaseRow(t *testing.T) {
	f := newPricingFixture(t)

	entry := model.PriceCacheEntry{
		RoomID:     "room-1",
		Date:       tuesday,
		Factors:    model.PricingFactors{RoomID: "room-1", Date: "2026-10-27", CalculatedPrice: 640000},
		ValidUntil: time.Now().Add(10 * time.Minute),
	}

	f.priceRepo.EXPECT().Lookup(gomock.Any(), "room-1", tuesday).Return(entry, nil)
	f.recorder.EXPECT().RecordCacheLookup(gomock.Any(), true)

	res, err := f.svc.Calculate(context.Background(), "room-1", tuesday, false)
	require.NoError(t, err)

	assert.Equal(t, 640000.0, res.CalculatedPrice)
	assert.True(t, f.redis.Exists("pricing:cache:room-1:2026-10-27"))
}

func TestPricingService_Calculate_ExpiredRowRecalculates(t *testing.T) {
	f := newPricingFixture(t)

	stale := model.PriceCacheEntry{
		RoomID:     "room-1",
		Date:       tuesday,
		Factors:    model.PricingFactors{CalculatedPrice: 1},
		ValidUntil: time.Now().Add(-time.Minute),
	}

	f.priceRepo.EXPECT().Lookup(gomock.Any(), "room-1", tuesday).Return(stale, nil)
	f.recorder.EXPECT().RecordCacheLookup(gomock.Any(), false)
	f.recorder.EXPECT().RecordCalculation(gomock.Any(), gomock.Any(), false)
	f.expectCalculation(standardRoom(), tuesday, 8)

	res, err := f.svc.Calculate(context.Background(), "room-1", tuesday, false)
	require.NoError(t, err)

	assert.Equal(t, 750000.0, res.CalculatedPrice)
}

func TestPricingService_Calculate_Errors(t *testing.T) {
	t.Run("unknown room is not found", func(t *testing.T) {
		f := newPricingFixture(t)

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)
		f.recorder.EXPECT().RecordCalculation(gomock.Any(), gomock.Any(), true)

		_, err := f.svc.Calculate(context.Background(), "ghost", tuesday, true)

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
		assert.True(t, failure.IsPermanent(err))
	})

	t.Run("storage failure is returned wrapped", func(t *testing.T) {
		f := newPricingFixture(t)
		dbErr := errors.New("connection reset")

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(standardRoom(), nil)
		f.settings.EXPECT().PricingPolicy(gomock.Any()).Return(defaultPolicy, nil)
		f.bookingRepo.EXPECT().CountBookedUnits(gomock.Any(), "room-1", tuesday).Return(0, dbErr)
		f.recorder.EXPECT().RecordCalculation(gomock.Any(), gomock.Any(), true)

		_, err := f.svc.Calculate(context.Background(), "room-1", tuesday, true)

		require.ErrorIs(t, err, dbErr)
		assert.False(t, failure.IsPermanent(err))
	})

	t.Run("cache lookup failure", func(t *testing.T) {
		f := newPricingFixture(t)

		f.priceRepo.EXPECT().Lookup(gomock.Any(), "room-1", tuesday).Return(model.PriceCacheEntry{}, errors.New("timeout"))

		_, err := f.svc.Calculate(context.Background(), "room-1", tuesday, false)

		assert.Error(t, err)
	})
}

func TestPricingService_BatchCalculate_PartialFailure(t *testing.T) {
	f := newPricingFixture(t)

	rooms := map[string]roomModel.Room{
		"room-1": standardRoom(),
		"room-2": {ID: "room-2", Name: "Family Suite", BasePrice: 800000, Allotment: 4},
	}

	f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (roomModel.Room, error) {
		id, _ := filter.Filters[0].(gDto.Filter).Value.(string)

		return rooms[id], nil
	}).Times(3)
	f.settings.EXPECT().PricingPolicy(gomock.Any()).Return(defaultPolicy, nil).Times(2)
	f.bookingRepo.EXPECT().CountBookedUnits(gomock.Any(), gomock.Any(), tuesday).Return(2, nil).Times(2)
	f.competitorRepo.EXPECT().Summary(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(competitorModel.Summary{}, nil).Times(2)
	f.priceRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.metricRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.recorder.EXPECT().RecordCalculation(gomock.Any(), gomock.Any(), false).Times(2)
	f.recorder.EXPECT().RecordCalculation(gomock.Any(), gomock.Any(), true).Times(1)

	items := f.svc.BatchCalculate(context.Background(), []string{"room-1", "missing", "room-2"}, tuesday, true)

	require.Len(t, items, 3)

	assert.Equal(t, "room-1", items[0].RoomID)
	assert.True(t, items[0].Success)
	assert.NotNil(t, items[0].Data)

	assert.Equal(t, "missing", items[1].RoomID)
	assert.False(t, items[1].Success)
	assert.Contains(t, items[1].Error, "not found")
	assert.Nil(t, items[1].Data)

	assert.Equal(t, "room-2", items[2].RoomID)
	assert.True(t, items[2].Success)
}

func TestPricingService_ApplyPrice(t *testing.T) {
	f := newPricingFixture(t)

	var stored model.PriceCacheEntry

	f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(standardRoom(), nil)
	f.priceRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, entry model.PriceCacheEntry) error {
		stored = entry

		return nil
	})
	f.metricRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.ApplyPrice(context.Background(), "room-1", tuesday, 550000, 500000)
	require.NoError(t, err)

	assert.Equal(t, model.SourceManualOverride, res.Source)
	assert.Equal(t, 550000.0, res.CalculatedPrice)
	assert.Equal(t, 1.1, res.FinalMultiplier)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), stored.ValidUntil, time.Minute)
}

func TestPricingService_CurrentPrice(t *testing.T) {
	t.Run("falls back to base price", func(t *testing.T) {
		f := newPricingFixture(t)

		f.priceRepo.EXPECT().Lookup(gomock.Any(), "room-1", tuesday).Return(model.PriceCacheEntry{}, nil)
		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(standardRoom(), nil)

		price, err := f.svc.CurrentPrice(context.Background(), "room-1", tuesday)
		require.NoError(t, err)

		assert.Equal(t, 500000.0, price)
	})

	t.Run("uses valid cached price", func(t *testing.T) {
		f := newPricingFixture(t)

		f.priceRepo.EXPECT().Lookup(gomock.Any(), "room-1", tuesday).Return(model.PriceCacheEntry{
			RoomID:     "room-1",
			Factors:    model.PricingFactors{CalculatedPrice: 620000},
			ValidUntil: time.Now().Add(time.Hour),
		}, nil)

		price, err := f.svc.CurrentPrice(context.Background(), "room-1", tuesday)
		require.NoError(t, err)

		assert.Equal(t, 620000.0, price)
	})
}
