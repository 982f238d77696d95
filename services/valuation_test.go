package services

import (
	"testing"

	"deliwer-loyalty-system/models"
)

func TestComputeValuationDeterministic(t *testing.T) {
	first := ComputeValuation("iPhone 13", "good")
	second := ComputeValuation("iPhone 13", "good")
	if first != second {
		t.Fatalf("expected identical output for identical input, got %+v vs %+v", first, second)
	}
}

func TestComputeValuationExcellentKeepsBaseValue(t *testing.T) {
	v := ComputeValuation("iPhone 14 Pro", "excellent")
	if v.BaseValue != 1200 {
		t.Fatalf("expected base value 1200, got %d", v.BaseValue)
	}
	if v.TradeValue != 1200 {
		t.Fatalf("expected trade value 1200, got %d", v.TradeValue)
	}
	if v.BottlesPrevented != 2400 {
		t.Fatalf("expected 2400 bottles (trade value x2), got %d", v.BottlesPrevented)
	}
	if v.CO2SavedGrams != 1200 {
		t.Fatalf("expected 1200g CO2 (half a gram per bottle), got %d", v.CO2SavedGrams)
	}
	if v.Points != 100+120 {
		t.Fatalf("expected 220 points, got %d", v.Points)
	}
}

func TestComputeValuationFairMultiplier(t *testing.T) {
	v := ComputeValuation("iPhone 13", "fair")
	if v.BaseValue != 900 {
		t.Fatalf("expected base value 900, got %d", v.BaseValue)
	}
	if v.TradeValue != 585 { // floor(900 * 0.65)
		t.Fatalf("expected trade value 585, got %d", v.TradeValue)
	}
}

func TestComputeValuationUnknownModelFallsBack(t *testing.T) {
	v := ComputeValuation("Nokia 3310", "excellent")
	if v.BaseValue != models.DefaultBaseValue {
		t.Fatalf("expected default base value %d, got %d", models.DefaultBaseValue, v.BaseValue)
	}
}

func TestComputeValuationUnknownConditionUsesLowestTier(t *testing.T) {
	unknown := ComputeValuation("iPhone 13", "smashed to bits")
	poor := ComputeValuation("iPhone 13", "poor")
	if unknown.TradeValue != poor.TradeValue {
		t.Fatalf("unknown condition should match poor tier: %d vs %d", unknown.TradeValue, poor.TradeValue)
	}
}

func TestComputeValuationNeverExceedsBase(t *testing.T) {
	for model := range models.DeviceCatalog {
		for condition := range models.ConditionMultipliers {
			v := ComputeValuation(model, condition)
			if v.TradeValue > v.BaseValue {
				t.Fatalf("%s/%s: trade value %d exceeds base %d", model, condition, v.TradeValue, v.BaseValue)
			}
			if v.TradeValue < 0 || v.BottlesPrevented < 0 || v.CO2SavedGrams < 0 || v.Points < 0 {
				t.Fatalf("%s/%s: negative output %+v", model, condition, v)
			}
		}
	}
}

func TestClassifyTradeLevelThresholds(t *testing.T) {
	cases := []struct {
		points int64
		want   models.HeroLevel
	}{
		{0, models.LevelBronze},
		{299, models.LevelBronze},
		{300, models.LevelSilver},
		{599, models.LevelSilver},
		{600, models.LevelGold},
		{5000, models.LevelGold},
	}
	for _, tc := range cases {
		if got := ClassifyTradeLevel(tc.points); got != tc.want {
			t.Fatalf("ClassifyTradeLevel(%d) = %s, want %s", tc.points, got, tc.want)
		}
	}
}

func TestClassifyHeroTierThresholds(t *testing.T) {
	cases := []struct {
		points int64
		want   models.HeroLevel
	}{
		{0, models.LevelBronze},
		{2499, models.LevelBronze},
		{2500, models.LevelSilver},
		{9999, models.LevelSilver},
		{10000, models.LevelGold},
	}
	for _, tc := range cases {
		if got := ClassifyHeroTier(tc.points); got != tc.want {
			t.Fatalf("ClassifyHeroTier(%d) = %s, want %s", tc.points, got, tc.want)
		}
	}
}

func TestClassifyLevelsMonotonic(t *testing.T) {
	prevTrade := ClassifyTradeLevel(0)
	prevTier := ClassifyHeroTier(0)
	for points := int64(1); points <= 12000; points += 7 {
		trade := ClassifyTradeLevel(points)
		tier := ClassifyHeroTier(points)
		if trade.Ord() < prevTrade.Ord() {
			t.Fatalf("trade level dropped at %d points", points)
		}
		if tier.Ord() < prevTier.Ord() {
			t.Fatalf("hero tier dropped at %d points", points)
		}
		prevTrade, prevTier = trade, tier
	}
}
