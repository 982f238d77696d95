package models

// DeviceCatalog: static trade-in base values in AED, keyed by exact model
// string. Unknown models fall back to DefaultBaseValue.
var DeviceCatalog = map[string]int64{
	"iPhone 15 Pro Max": 1800,
	"iPhone 15 Pro":     1600,
	"iPhone 15 Plus":    1400,
	"iPhone 15":         1300,
	"iPhone 14 Pro Max": 1400,
	"iPhone 14 Pro":     1200,
	"iPhone 14 Plus":    1000,
	"iPhone 14":         950,
	"iPhone 13 Pro Max": 1100,
	"iPhone 13 Pro":     1000,
	"iPhone 13":         900,
	"iPhone 13 mini":    750,
	"iPhone 12 Pro Max": 850,
	"iPhone 12 Pro":     750,
	"iPhone 12":         650,
	"iPhone 12 mini":    550,
	"iPhone 11 Pro Max": 650,
	"iPhone 11 Pro":     550,
	"iPhone 11":         450,
	"iPhone XS Max":     450,
	"iPhone XS":         400,
	"iPhone XR":         350,
	"iPhone X":          300,
}

// DefaultBaseValue applies to any model not in the catalog.
const DefaultBaseValue int64 = 400

// ConditionMultipliers: fraction of base value paid per condition tier.
// Strings outside the four tiers fall back to the "poor" multiplier.
var ConditionMultipliers = map[string]float64{
	"excellent": 1.0,
	"good":      0.8,
	"fair":      0.65,
	"poor":      0.45,
}

const DefaultConditionMultiplier = 0.45
