package services

import (
	"math"

	"deliwer-loyalty-system/models"
)

// Conversion constants. Marketing copy has quoted other bottle/CO2 ratios
// over time; this is the single set the service applies everywhere.
const (
	// BottleUnitValueAED: one 500ml bottle ≈ AED 0.50 of trade value,
	// so bottlesPrevented = floor(tradeValue / 0.5) = tradeValue × 2.
	BottleUnitValueAED = 0.5
	// CO2GramsPerBottle: grams of CO2 saved per bottle prevented.
	CO2GramsPerBottle = 0.5

	BasePointsPerTrade = 100
	PointsDivisorAED   = 10

	ReferralBonusPoints = 50
)

// Per-trade level thresholds (inclusive lower bounds).
const (
	TradeLevelSilverMin = 300
	TradeLevelGoldMin   = 600
)

// Cumulative hero-profile tier thresholds. This is a separate scale from the
// per-trade one: lifetime points run into the thousands.
const (
	HeroTierSilverMin = 2500
	HeroTierGoldMin   = 10000
)

// ComputeValuation converts a (phoneModel, condition) pair into the full
// reward bundle. Pure and total: unknown models fall back to the default
// base value, unknown conditions to the lowest-tier multiplier.
func ComputeValuation(phoneModel, condition string) models.TradeValuation {
	baseValue, ok := models.DeviceCatalog[phoneModel]
	if !ok {
		baseValue = models.DefaultBaseValue
	}

	multiplier, ok := models.ConditionMultipliers[condition]
	if !ok {
		multiplier = models.DefaultConditionMultiplier
	}

	tradeValue := int64(math.Floor(float64(baseValue) * multiplier))
	bottlesPrevented := int64(math.Floor(float64(tradeValue) / BottleUnitValueAED))
	co2SavedGrams := int64(math.Floor(float64(bottlesPrevented) * CO2GramsPerBottle))
	points := int64(BasePointsPerTrade) + tradeValue/PointsDivisorAED

	return models.TradeValuation{
		PhoneModel:       phoneModel,
		PhoneCondition:   condition,
		BaseValue:        baseValue,
		TradeValue:       tradeValue,
		BottlesPrevented: bottlesPrevented,
		CO2SavedGrams:    co2SavedGrams,
		Points:           points,
		Level:            ClassifyTradeLevel(points),
	}
}

// ClassifyTradeLevel rates the points of a single trade.
func ClassifyTradeLevel(points int64) models.HeroLevel {
	switch {
	case points >= TradeLevelGoldMin:
		return models.LevelGold
	case points >= TradeLevelSilverMin:
		return models.LevelSilver
	default:
		return models.LevelBronze
	}
}

// ClassifyHeroTier rates a hero's lifetime points.
func ClassifyHeroTier(points int64) models.HeroLevel {
	switch {
	case points >= HeroTierGoldMin:
		return models.LevelGold
	case points >= HeroTierSilverMin:
		return models.LevelSilver
	default:
		return models.LevelBronze
	}
}
