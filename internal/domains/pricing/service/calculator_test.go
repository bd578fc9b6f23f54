package service_test

import (
	"testing"
	"time"

	"lodge/internal/domains/pricing/model"
	"lodge/internal/domains/pricing/service"
	settingModel "lodge/internal/domains/setting/model"

	"github.com/stretchr/testify/assert"
)

var defaultPolicy = settingModel.PricingPolicy{PeakMonths: []int{6, 7, 12}, RoundingIncrement: 10000}

func ptr(v float64) *float64 {
	return &v
}

func TestTimeMultiplier(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want float64
	}{
		{"weekday off season", time.Date(2026, 10, 27, 0, 0, 0, 0, time.UTC), 1.0},
		{"saturday", time.Date(2026, 10, 24, 0, 0, 0, 0, time.UTC), 1.2},
		{"sunday", time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC), 1.2},
		{"peak weekday", time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC), 1.3},
		{"peak weekend prices as weekend", time.Date(2026, 7, 18, 0, 0, 0, 0, time.UTC), 1.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.TimeMultiplier(tt.date, defaultPolicy))
		})
	}
}

func TestOccupancyRate(t *testing.T) {
	assert.Equal(t, 80.0, service.OccupancyRate(8, 10))
	assert.Equal(t, 0.0, service.OccupancyRate(3, 0))
	assert.InDelta(t, 33.333, service.OccupancyRate(1, 3), 0.001)
}

func TestOccupancyMultiplier(t *testing.T) {
	tests := []struct {
		rate float64
		want float64
	}{
		{0, 0.85},
		{30, 0.85},
		{30.01, 1.0},
		{69.99, 1.0},
		{70, 1.15},
		{85, 1.3},
		{94.9, 1.3},
		{95, 1.5},
		{100, 1.5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, service.OccupancyMultiplier(tt.rate), "rate %v", tt.rate)
	}
}

func TestOccupancyMultiplier_Monotonic(t *testing.T) {
	previous := service.OccupancyMultiplier(0)

	for rate := 0.0; rate <= 100; rate += 0.5 {
		current := service.OccupancyMultiplier(rate)
		assert.GreaterOrEqual(t, current, previous, "multiplier decreased at %v", rate)

		previous = current
	}
}

func TestCompetitorMultiplier(t *testing.T) {
	tests := []struct {
		name    string
		base    float64
		summary model.CompetitorSummary
		want    float64
	}{
		{"no data", 500000, model.CompetitorSummary{}, 1.0},
		{"we are cheaper", 400000, model.CompetitorSummary{Average: 500000, SampleCount: 3}, 1.1},
		{"we are pricier", 600000, model.CompetitorSummary{Average: 500000, SampleCount: 3}, 0.95},
		{"in line", 520000, model.CompetitorSummary{Average: 500000, SampleCount: 3}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.CompetitorMultiplier(tt.base, tt.summary))
		})
	}
}

func TestDemand(t *testing.T) {
	assert.Equal(t, 100.0, service.DemandScore(95, 10))
	assert.Equal(t, 85.0, service.DemandScore(80, 5))
	assert.Equal(t, 1.3, service.DemandMultiplier(80))
	assert.Equal(t, 0.5, service.DemandMultiplier(0))
}

func TestNewJitter(t *testing.T) {
	assert.Zero(t, service.NewJitter(0)())

	jitter := service.NewJitter(10)
	for range 50 {
		value := jitter()
		assert.GreaterOrEqual(t, value, 0.0)
		assert.Less(t, value, 10.0)
	}
}

func TestRoundToIncrement(t *testing.T) {
	assert.Equal(t, 750000.0, service.RoundToIncrement(747500, 10000))
	assert.Equal(t, 750000.0, service.RoundToIncrement(745000, 10000))
	assert.Equal(t, 740000.0, service.RoundToIncrement(744999, 10000))
	assert.Equal(t, 744999.0, service.RoundToIncrement(744999, 0))
}

func TestQuotePrice(t *testing.T) {
	t.Run("rounds inside bounds", func(t *testing.T) {
		quote := service.QuotePrice(500000, []float64{1.0, 1.15, 1.0, 1.3}, nil, nil, 10000)

		assert.Equal(t, 750000.0, quote.Price)
		assert.Equal(t, 747500.0, quote.Unclamped)
		assert.Equal(t, 1.495, quote.FinalMultiplier)
		assert.False(t, quote.Clamped)
	})

	t.Run("clamps to max", func(t *testing.T) {
		quote := service.QuotePrice(500000, []float64{1.2, 1.15, 1.0, 1.3}, nil, ptr(700000), 10000)

		assert.Equal(t, 700000.0, quote.Price)
		assert.Equal(t, 1.4, quote.FinalMultiplier)
		assert.True(t, quote.Clamped)
	})

	t.Run("clamps to min", func(t *testing.T) {
		quote := service.QuotePrice(500000, []float64{1.0, 0.85, 0.95, 0.5}, ptr(300000), nil, 10000)

		assert.Equal(t, 300000.0, quote.Price)
		assert.Equal(t, 0.6, quote.FinalMultiplier)
		assert.True(t, quote.Clamped)
	})

	t.Run("rounding crossing a bound lands on the bound", func(t *testing.T) {
		quote := service.QuotePrice(100000, []float64{1.046}, nil, ptr(104700), 10000)

		assert.Equal(t, 104700.0, quote.Price)
		assert.True(t, quote.Clamped)
		assert.Equal(t, 1.047, quote.FinalMultiplier)
	})
}

func TestQuotePrice_ClampedPriceIsBound(t *testing.T) {
	base := 500000.0
	minPrice, maxPrice := 400000.0, 800000.0

	multiplierSets := [][]float64{
		{1.2, 1.5, 1.1, 1.5},
		{1.3, 1.3, 1.1, 1.4},
		{1.0, 0.85, 0.95, 0.5},
		{1.0, 0.85, 1.0, 0.7},
	}

	for _, multipliers := range multiplierSets {
		quote := service.QuotePrice(base, multipliers, &minPrice, &maxPrice, 10000)

		if quote.Unclamped < minPrice || quote.Unclamped > maxPrice {
			assert.True(t, quote.Clamped)
			assert.Contains(t, []float64{minPrice, maxPrice}, quote.Price)
			assert.Equal(t, quote.Price/base, quote.FinalMultiplier)
		}
	}
}

func TestQuotePrice_OffIncrementBoundsAreExact(t *testing.T) {
	minPrice, maxPrice := 401000.0, 795000.0

	tests := []struct {
		name       string
		multiplier float64
		price      float64
	}{
		{name: "below min", multiplier: 0.7, price: 401000},
		{name: "rounds down past min", multiplier: 0.806, price: 401000},
		{name: "rounds up past max", multiplier: 1.59, price: 795000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := service.QuotePrice(500000, []float64{tt.multiplier}, &minPrice, &maxPrice, 10000)

			assert.True(t, quote.Clamped)
			assert.Equal(t, tt.price, quote.Price)
			assert.InDelta(t, tt.price/500000, quote.FinalMultiplier, 1e-9)
		})
	}
}

func TestChangePercentage(t *testing.T) {
	assert.Equal(t, 50.0, service.ChangePercentage(500000, 750000))
	assert.Equal(t, -10.0, service.ChangePercentage(500000, 450000))
	assert.Equal(t, 0.0, service.ChangePercentage(0, 450000))
}
