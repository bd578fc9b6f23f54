package service

import (
	"math/rand/v2"
	"time"

	"lodge/internal/domains/pricing/model"
	settingModel "lodge/internal/domains/setting/model"
	"lodge/shared/constant"

	"github.com/shopspring/decimal"
)

const (
	weekendMultiplier   = 1.2
	peakMonthMultiplier = 1.3
	neutralMultiplier   = 1.0

	occupancyVeryHigh = 95
	occupancyHigh     = 85
	occupancyElevated = 70
	occupancyLow      = 30

	lowOccupancyMultiplier = 0.85

	competitorUndercut        = 0.9
	competitorOverprice       = 1.1
	competitorRaiseMultiplier = 1.1
	competitorLowerMultiplier = 0.95

	demandPivot = 50
	maxScore    = 100
)

var occupancyTiers = []struct {
	atLeast    float64
	multiplier float64
}{
	{occupancyVeryHigh, 1.5},
	{occupancyHigh, 1.3},
	{occupancyElevated, 1.15},
}

// Jitter returns the random component added to the demand score.
type Jitter func() float64

// NewJitter draws uniformly from [0, PRICING_DEMAND_JITTER_MAX).
func NewJitter(maxJitter float64) Jitter {
	if maxJitter <= 0 {
		return func() float64 { return 0 }
	}

	return func() float64 {
		return rand.Float64() * maxJitter //nolint:gosec
	}
}

// TimeMultiplier checks the weekend before the peak season, so a peak-month weekend prices as a weekend.
func TimeMultiplier(date time.Time, policy settingModel.PricingPolicy) float64 {
	switch {
	case date.Weekday() == time.Saturday || date.Weekday() == time.Sunday:
		return weekendMultiplier
	case policy.IsPeakMonth(date.Month()):
		return peakMonthMultiplier
	default:
		return neutralMultiplier
	}
}

func OccupancyRate(booked, allotment int) float64 {
	if allotment <= 0 {
		return 0
	}

	return decimal.NewFromInt(int64(booked)).
		Div(decimal.NewFromInt(int64(allotment))).
		Mul(decimal.NewFromInt(constant.Percent)).
		InexactFloat64()
}

func OccupancyMultiplier(rate float64) float64 {
	for _, tier := range occupancyTiers {
		if rate >= tier.atLeast {
			return tier.multiplier
		}
	}

	if rate <= occupancyLow {
		return lowOccupancyMultiplier
	}

	return neutralMultiplier
}

// CompetitorMultiplier compares our base price with the surveyed average.
func CompetitorMultiplier(basePrice float64, summary model.CompetitorSummary) float64 {
	if summary.SampleCount == 0 || summary.Average <= 0 {
		return neutralMultiplier
	}

	switch {
	case basePrice < summary.Average*competitorUndercut:
		return competitorRaiseMultiplier
	case basePrice > summary.Average*competitorOverprice:
		return competitorLowerMultiplier
	default:
		return neutralMultiplier
	}
}

func DemandScore(occupancyRate, jitter float64) float64 {
	return min(maxScore, occupancyRate+jitter)
}

func DemandMultiplier(score float64) float64 {
	return decimal.NewFromFloat(score).
		Sub(decimal.NewFromInt(demandPivot)).
		Div(decimal.NewFromInt(constant.Percent)).
		Add(decimal.NewFromInt(1)).
		InexactFloat64()
}

// RoundToIncrement rounds half away from zero to a multiple of increment.
func RoundToIncrement(price float64, increment int64) float64 {
	if increment <= 0 {
		return price
	}

	step := decimal.NewFromInt(increment)

	return decimal.NewFromFloat(price).Div(step).Round(0).Mul(step).InexactFloat64()
}

// Quote is the priced outcome of one multiplier set.
type Quote struct {
	Unclamped       float64
	Price           float64
	FinalMultiplier float64
	Clamped         bool
}

// QuotePrice multiplies the base price, rounds it and enforces the optional bounds.
// Bounds win over rounding: a clamped price is the bound itself and its multiplier is bound/base.
func QuotePrice(basePrice float64, multipliers []float64, minPrice, maxPrice *float64, increment int64) Quote {
	final := decimal.NewFromInt(1)
	for _, multiplier := range multipliers {
		final = final.Mul(decimal.NewFromFloat(multiplier))
	}

	base := decimal.NewFromFloat(basePrice)
	unclamped := base.Mul(final)

	quote := Quote{
		Unclamped:       unclamped.InexactFloat64(),
		FinalMultiplier: final.InexactFloat64(),
	}

	var price decimal.Decimal

	switch {
	case minPrice != nil && unclamped.LessThan(decimal.NewFromFloat(*minPrice)):
		price = decimal.NewFromFloat(*minPrice)
		quote.Clamped = true
	case maxPrice != nil && unclamped.GreaterThan(decimal.NewFromFloat(*maxPrice)):
		price = decimal.NewFromFloat(*maxPrice)
		quote.Clamped = true
	default:
		price = decimal.NewFromFloat(RoundToIncrement(unclamped.InexactFloat64(), increment))

		// rounding may step over a bound that the raw price respected
		if minPrice != nil && price.LessThan(decimal.NewFromFloat(*minPrice)) {
			price = decimal.NewFromFloat(*minPrice)
			quote.Clamped = true
		}

		if maxPrice != nil && price.GreaterThan(decimal.NewFromFloat(*maxPrice)) {
			price = decimal.NewFromFloat(*maxPrice)
			quote.Clamped = true
		}
	}

	if quote.Clamped && base.IsPositive() {
		quote.FinalMultiplier = price.Div(base).InexactFloat64()
	}

	quote.Price = price.InexactFloat64()

	return quote
}

// ChangePercentage is the signed change from previous to current, in percent.
func ChangePercentage(previous, current float64) float64 {
	if previous == 0 {
		return 0
	}

	prev := decimal.NewFromFloat(previous)

	return decimal.NewFromFloat(current).Sub(prev).Div(prev).Mul(decimal.NewFromInt(constant.Percent)).Round(4).InexactFloat64()
}
