package models

// HeroLevel is the three-tier ordinal used by both point scales.
type HeroLevel string

const (
	LevelBronze HeroLevel = "Bronze"
	LevelSilver HeroLevel = "Silver"
	LevelGold   HeroLevel = "Gold"
)

// Ord gives Bronze < Silver < Gold for monotonicity checks.
func (l HeroLevel) Ord() int {
	switch l {
	case LevelGold:
		return 2
	case LevelSilver:
		return 1
	default:
		return 0
	}
}

// TradeValuation is the full reward bundle for one (model, condition) pair.
// Pure function output — never persisted, recomputed on demand.
type TradeValuation struct {
	PhoneModel       string    `json:"phone_model"`
	PhoneCondition   string    `json:"phone_condition"`
	BaseValue        int64     `json:"base_value"`        // AED
	TradeValue       int64     `json:"trade_value"`       // AED
	BottlesPrevented int64     `json:"bottles_prevented"` // 500ml bottles
	CO2SavedGrams    int64     `json:"co2_saved_grams"`
	Points           int64     `json:"points"`
	Level            HeroLevel `json:"level"` // per-trade scale
}
