package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"lodge/config"
	"lodge/infras/otel"
	bookingRepo "lodge/internal/domains/booking/repository"
	competitorRepo "lodge/internal/domains/competitor/repository"
	metricModel "lodge/internal/domains/metric/model"
	metricDto "lodge/internal/domains/metric/model/dto"
	metricRepo "lodge/internal/domains/metric/repository"
	"lodge/internal/domains/pricing/model"
	"lodge/internal/domains/pricing/model/dto"
	"lodge/internal/domains/pricing/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	settingService "lodge/internal/domains/setting/service"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/stats"
	"lodge/shared/timezone"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	cacheKeyPrice = "pricing:cache"

	competitorWindowDefault = 7
	batchConcurrencyDefault = 4
)

type Pricing interface {
	Calculate(ctx context.Context, roomID string, date time.Time, force bool) (model.PricingFactors, error)
	BatchCalculate(ctx context.Context, roomIDs []string, date time.Time, force bool) []dto.BatchItem
	ApplyPrice(ctx context.Context, roomID string, date time.Time, price, previousPrice float64) (model.PricingFactors, error)
	CurrentPrice(ctx context.Context, roomID string, date time.Time) (float64, error)
}

type serviceImpl struct {
	repo           repository.PriceCache
	roomRepo       roomRepo.Room
	bookingRepo    bookingRepo.Booking
	competitorRepo competitorRepo.Competitor
	metricRepo     metricRepo.Metric
	settings       settingService.Setting
	cache          cache.RedisCache
	stats          stats.Recorder
	jitter         Jitter
	cfg            *config.Config
	otel           otel.Otel
}

func New(
	repo repository.PriceCache,
	roomRepo roomRepo.Room,
	bookingRepo bookingRepo.Booking,
	competitorRepo competitorRepo.Competitor,
	metricRepo metricRepo.Metric,
	settings settingService.Setting,
	cache cache.RedisCache,
	stats stats.Recorder,
	jitter Jitter,
	cfg *config.Config,
	otel otel.Otel,
) Pricing {
	return &serviceImpl{
		repo:           repo,
		roomRepo:       roomRepo,
		bookingRepo:    bookingRepo,
		competitorRepo: competitorRepo,
		metricRepo:     metricRepo,
		settings:       settings,
		cache:          cache,
		stats:          stats,
		jitter:         jitter,
		cfg:            cfg,
		otel:           otel,
	}
}

// ProvideJitter wires the configured demand jitter.
func ProvideJitter(cfg *config.Config) Jitter {
	return NewJitter(cfg.Pricing.DemandJitterMax)
}

func priceCacheKey(roomID string, date time.Time) string {
	return shared.BuildCacheKey(cacheKeyPrice, roomID, date.Format(constant.DateOnlyFormat))
}

// Calculate returns the cached factors while valid, otherwise computes, stores and samples a fresh price.
func (s *serviceImpl) Calculate(ctx context.Context, roomID string, date time.Time, force bool) (res model.PricingFactors, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Calculate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"pricing.room_id": roomID,
		"pricing.date":    date.Format(constant.DateOnlyFormat),
		"pricing.force":   force,
	})

	if !force {
		entry, found, err := s.validEntry(ctx, roomID, date)
		if err != nil {
			return res, err
		}

		s.stats.RecordCacheLookup(ctx, found)

		if found {
			log.Debug().Str("room_id", roomID).Str("date", entry.Factors.Date).Msg("price cache hit")

			return entry.Factors, nil
		}
	}

	started := time.Now()

	res, err = s.calculate(ctx, roomID, date)

	s.stats.RecordCalculation(ctx, time.Since(started), err != nil)

	return res, err
}

// validEntry reads Redis first and falls back to Postgres, warming Redis on a valid row.
func (s *serviceImpl) validEntry(ctx context.Context, roomID string, date time.Time) (model.PriceCacheEntry, bool, error) {
	now := timezone.Now()
	key := priceCacheKey(roomID, date)

	var entry model.PriceCacheEntry

	err := s.cache.Get(ctx, key, &entry)
	if err == nil && entry.ValidAt(now) {
		return entry, true, nil
	}

	if err != nil && !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Str("key", key).Msg("price cache unavailable, reading from database")
	}

	entry, err = s.repo.Lookup(ctx, roomID, date)
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to look up price cache")

		return entry, false, fmt.Errorf("failed to look up price cache: %w", err)
	}

	if !entry.ValidAt(now) {
		return entry, false, nil
	}

	s.warm(ctx, key, entry, now)

	return entry, true, nil
}

func (s *serviceImpl) warm(ctx context.Context, key string, entry model.PriceCacheEntry, now time.Time) {
	ttl := int(math.Ceil(entry.ValidUntil.Sub(now).Seconds()))
	if ttl <= 0 {
		return
	}

	if err := s.cache.Save(ctx, key, entry, ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to save price to cache")
	}
}

func (s *serviceImpl) calculate(ctx context.Context, roomID string, date time.Time) (res model.PricingFactors, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			log.Error().Interface("panic", recovered).Str("room_id", roomID).Msg("pricing calculation panicked")

			err = failure.InternalError(fmt.Errorf("pricing calculation failed: %v", recovered))
		}
	}()

	room, err := s.room(ctx, roomID)
	if err != nil {
		return res, err
	}

	policy, err := s.settings.PricingPolicy(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to load pricing policy: %w", err)
	}

	booked, err := s.bookingRepo.CountBookedUnits(ctx, room.ID, date)
	if err != nil {
		log.Error().Err(err).Str("room_id", room.ID).Msg("failed to count booked units")

		return res, fmt.Errorf("failed to count booked units: %w", err)
	}

	window := s.cfg.Pricing.CompetitorWindowDays
	if window <= 0 {
		window = competitorWindowDefault
	}

	competitors, err := s.competitorRepo.Summary(ctx, room.ID, date.AddDate(0, 0, -window), date)
	if err != nil {
		log.Error().Err(err).Str("room_id", room.ID).Msg("failed to summarize competitor prices")

		return res, fmt.Errorf("failed to summarize competitor prices: %w", err)
	}

	summary := model.CompetitorSummary{
		Average:     competitors.Average,
		Min:         competitors.Min,
		Max:         competitors.Max,
		SampleCount: competitors.SampleCount,
	}

	occupancyRate := OccupancyRate(booked, room.Allotment)
	demandScore := DemandScore(occupancyRate, s.jitter())

	res = model.PricingFactors{
		RoomID:               room.ID,
		Date:                 date.Format(constant.DateOnlyFormat),
		BasePrice:            room.BasePrice,
		OccupancyRate:        occupancyRate,
		DemandScore:          demandScore,
		TimeMultiplier:       TimeMultiplier(date, policy),
		OccupancyMultiplier:  OccupancyMultiplier(occupancyRate),
		CompetitorMultiplier: CompetitorMultiplier(room.BasePrice, summary),
		DemandMultiplier:     DemandMultiplier(demandScore),
		Source:               model.SourceCalculated,
		CalculatedAt:         timezone.Now(),
		Raw: model.RawInputs{
			Occupancy: model.OccupancyDetail{
				BookedUnits: booked,
				Allotment:   room.Allotment,
			},
			Competitor: summary,
			Bounds: model.BoundConstraints{
				MinAutoPrice: nullablePrice(room.MinAutoPrice.Valid, room.MinAutoPrice.Float64),
				MaxAutoPrice: nullablePrice(room.MaxAutoPrice.Valid, room.MaxAutoPrice.Float64),
			},
		},
	}

	quote := QuotePrice(
		room.BasePrice,
		[]float64{res.TimeMultiplier, res.OccupancyMultiplier, res.CompetitorMultiplier, res.DemandMultiplier},
		res.Raw.Bounds.MinAutoPrice,
		res.Raw.Bounds.MaxAutoPrice,
		policy.RoundingIncrement,
	)

	res.FinalMultiplier = quote.FinalMultiplier
	res.CalculatedPrice = quote.Price
	res.Raw.Bounds.UnclampedPrice = quote.Unclamped
	res.Raw.Bounds.Clamped = quote.Clamped

	if err = s.store(ctx, res, s.cfg.Pricing.CacheTTLMinutes); err != nil {
		return res, err
	}

	if err = s.sample(ctx, res, room.BasePrice); err != nil {
		return res, err
	}

	log.Info().
		Str("room_id", room.ID).
		Str("date", res.Date).
		Float64("price", res.CalculatedPrice).
		Float64("multiplier", res.FinalMultiplier).
		Bool("clamped", quote.Clamped).
		Msg("price calculated")

	return res, nil
}

func nullablePrice(valid bool, value float64) *float64 {
	if !valid {
		return nil
	}

	return &value
}

func (s *serviceImpl) room(ctx context.Context, roomID string) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFoundf("room %s not found", roomID) // nolint:wrapcheck
	}

	return room, nil
}

// store upserts the database row, then mirrors it to Redis. Redis failures only cost a later miss.
func (s *serviceImpl) store(ctx context.Context, factors model.PricingFactors, ttlMinutes int) error {
	date, err := timezone.ParseDate(factors.Date)
	if err != nil {
		return fmt.Errorf("failed to parse pricing date: %w", err)
	}

	now := timezone.Now()
	entry := model.PriceCacheEntry{
		RoomID:     factors.RoomID,
		Date:       date,
		Factors:    factors,
		ValidUntil: now.Add(time.Duration(ttlMinutes) * time.Minute),
		UpdatedAt:  now,
	}

	if err = s.repo.Upsert(ctx, entry); err != nil {
		log.Error().Err(err).Str("room_id", factors.RoomID).Msg("failed to store price cache")

		return fmt.Errorf("failed to store price cache: %w", err)
	}

	s.warm(ctx, priceCacheKey(factors.RoomID, date), entry, now)

	return nil
}

func (s *serviceImpl) sample(ctx context.Context, factors model.PricingFactors, previousPrice float64) error {
	change := ChangePercentage(previousPrice, factors.CalculatedPrice)

	sample := metricDto.NewSample(metricModel.TypePriceChange, metricModel.NamePriceChange, change, factors.RoomID, gModel.Attributes{
		metricModel.AttrNewPrice:      factors.CalculatedPrice,
		metricModel.AttrPreviousPrice: previousPrice,
		metricModel.AttrChange:        change,
		metricModel.AttrDate:          factors.Date,
		metricModel.AttrSource:        factors.Source,
	})

	if err := s.metricRepo.Insert(ctx, sample); err != nil {
		log.Error().Err(err).Str("room_id", factors.RoomID).Msg("failed to record price change")

		return fmt.Errorf("failed to record price change: %w", err)
	}

	return nil
}

// BatchCalculate prices every room concurrently; items keep input order and fail independently.
func (s *serviceImpl) BatchCalculate(ctx context.Context, roomIDs []string, date time.Time, force bool) []dto.BatchItem {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BatchCalculate")
	defer scope.End()

	scope.SetAttribute("pricing.batch_size", len(roomIDs))

	items := make([]dto.BatchItem, len(roomIDs))

	concurrency := s.cfg.Pricing.BatchConcurrency
	if concurrency <= 0 {
		concurrency = batchConcurrencyDefault
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)

	for i, roomID := range roomIDs {
		group.Go(func() error {
			items[i].RoomID = roomID

			factors, err := s.Calculate(groupCtx, roomID, date, force)
			if err != nil {
				log.Warn().Err(err).Str("room_id", roomID).Msg("batch item failed")

				items[i].Error = err.Error()

				return nil
			}

			items[i].Success = true
			items[i].Data = &factors

			return nil
		})
	}

	_ = group.Wait()

	return items
}

// ApplyPrice stores an operator price as a manual_override snapshot. Bounds are not enforced on operator prices.
func (s *serviceImpl) ApplyPrice(ctx context.Context, roomID string, date time.Time, price, previousPrice float64) (res model.PricingFactors, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApplyPrice")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if price <= 0 {
		return res, failure.BadRequestFromString("price must be greater than 0") // nolint:wrapcheck
	}

	room, err := s.room(ctx, roomID)
	if err != nil {
		return res, err
	}

	multiplier := neutralMultiplier
	if room.BasePrice > 0 {
		multiplier = price / room.BasePrice
	}

	res = model.PricingFactors{
		RoomID:               room.ID,
		Date:                 date.Format(constant.DateOnlyFormat),
		BasePrice:            room.BasePrice,
		TimeMultiplier:       neutralMultiplier,
		OccupancyMultiplier:  neutralMultiplier,
		CompetitorMultiplier: neutralMultiplier,
		DemandMultiplier:     neutralMultiplier,
		FinalMultiplier:      multiplier,
		CalculatedPrice:      price,
		Source:               model.SourceManualOverride,
		CalculatedAt:         timezone.Now(),
		Raw: model.RawInputs{
			Bounds: model.BoundConstraints{
				MinAutoPrice:   nullablePrice(room.MinAutoPrice.Valid, room.MinAutoPrice.Float64),
				MaxAutoPrice:   nullablePrice(room.MaxAutoPrice.Valid, room.MaxAutoPrice.Float64),
				UnclampedPrice: price,
			},
		},
	}

	if err = s.store(ctx, res, s.cfg.Pricing.ManualOverrideTTLMinutes); err != nil {
		return res, err
	}

	if err = s.sample(ctx, res, previousPrice); err != nil {
		return res, err
	}

	log.Info().Str("room_id", room.ID).Str("date", res.Date).Float64("price", price).Msg("manual price applied")

	return res, nil
}

// CurrentPrice is the valid cached price, or the base price when nothing is cached.
func (s *serviceImpl) CurrentPrice(ctx context.Context, roomID string, date time.Time) (res float64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CurrentPrice")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	entry, found, err := s.validEntry(ctx, roomID, date)
	if err != nil {
		return 0, err
	}

	if found {
		return entry.Factors.CalculatedPrice, nil
	}

	room, err := s.room(ctx, roomID)
	if err != nil {
		return 0, err
	}

	return room.BasePrice, nil
}
