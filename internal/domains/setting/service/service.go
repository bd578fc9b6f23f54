package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Setting=MockSettingService

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/setting/model"
	"lodge/internal/domains/setting/repository"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheKeyPricingPolicy = "setting:pricing_policy"

	policyCacheTTLSeconds = 300
)

type Setting interface {
	PricingPolicy(ctx context.Context) (model.PricingPolicy, error)
}

type serviceImpl struct {
	repo  repository.Setting
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Setting, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Setting {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// PricingPolicy starts from configuration and applies hotel_settings overrides on top.
func (s *serviceImpl) PricingPolicy(ctx context.Context) (res model.PricingPolicy, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PricingPolicy")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheKeyPricingPolicy, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKeyPricingPolicy).Msg("cache hit for pricing policy")

		return res, nil
	}

	res = model.PricingPolicy{
		PeakMonths:        s.cfg.Pricing.PeakMonths,
		RoundingIncrement: s.cfg.Pricing.RoundingIncrement,
	}

	settings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.And(
		gDto.In(model.TableName, model.FieldKey, "keys", []string{model.KeyPeakMonths, model.KeyRoundingIncrement}),
	))
	if err != nil {
		log.Error().Err(err).Msg("failed to get pricing settings")

		return res, fmt.Errorf("failed to get pricing settings: %w", err)
	}

	for _, setting := range settings {
		switch setting.Key {
		case model.KeyPeakMonths:
			months, err := parseMonths(setting.Value)
			if err != nil {
				log.Warn().Err(err).Str("value", setting.Value).Msg("ignoring invalid peak months setting")

				continue
			}

			res.PeakMonths = months
		case model.KeyRoundingIncrement:
			increment, err := strconv.ParseInt(strings.TrimSpace(setting.Value), 10, 64)
			if err != nil || increment <= 0 {
				log.Warn().Err(err).Str("value", setting.Value).Msg("ignoring invalid rounding increment setting")

				continue
			}

			res.RoundingIncrement = increment
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		ttl := s.cfg.Cache.TTL
		if ttl <= 0 {
			ttl = policyCacheTTLSeconds
		}

		if err := s.cache.Save(c, cacheKeyPricingPolicy, res, ttl); err != nil {
			log.Error().Err(err).Msg("failed to save pricing policy to cache")
		}
	}()

	return res, nil
}

// parseMonths accepts "6,7,12", "[6, 7, 12]" and the array literal "{6,7,12}".
func parseMonths(value string) ([]int, error) {
	value = strings.TrimSpace(value)

	var parts []string

	if strings.HasPrefix(value, "{") {
		var literal pq.Int64Array
		if err := literal.Scan([]byte(value)); err != nil {
			return nil, fmt.Errorf("invalid month array %q: %w", value, err)
		}

		for _, month := range literal {
			parts = append(parts, strconv.FormatInt(month, 10))
		}
	} else if trimmed := strings.Trim(value, "[]"); trimmed != constant.Empty {
		parts = strings.Split(trimmed, ",")
	}

	months := make([]int, 0, len(parts))

	for _, part := range parts {
		month, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid month %q: %w", part, err)
		}

		if month < 1 || month > 12 {
			return nil, fmt.Errorf("month %d out of range", month)
		}

		months = append(months, month)
	}

	return months, nil
}
