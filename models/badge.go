package models

import (
	"time"
)

// BadgeType: static config (seeded into DB at boot)
type BadgeType struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Code        string `gorm:"uniqueIndex;not null"` // e.g., "FIRST_TRADE", "WATER_WARRIOR"
	Name        string `gorm:"not null"`
	Description string
	IconURL     string           `gorm:"type:text"` // R2 URL, uploaded via media endpoint
	Rarity      string           `gorm:"type:varchar(16);default:'common'"` // common, rare, epic, legendary
	Threshold   map[string]int64 `gorm:"type:jsonb;serializer:json"`        // e.g., {"trade_count": 1}, {"bottles_prevented": 1000}
	CreatedAt   time.Time        `gorm:"autoCreateTime"`
}

// HeroBadge: awarded instance (append-only, one per hero per badge type)
type HeroBadge struct {
	ID          string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	HeroID      string    `gorm:"index;not null"`
	BadgeTypeID string    `gorm:"index;not null"`
	AwardedAt   time.Time `gorm:"autoCreateTime"`
}

// BadgeTriggers are checked after every points mutation on a hero.
var BadgeTriggers = []BadgeType{
	{
		Code:        "FIRST_TRADE",
		Name:        "Planet Hero",
		Description: "Completed your first iPhone trade-in",
		Rarity:      "common",
		Threshold:   map[string]int64{"trade_count": 1},
	},
	{
		Code:        "REFER_5",
		Name:        "Recruiter",
		Description: "Referred 5 friends to the program",
		Rarity:      "rare",
		Threshold:   map[string]int64{"referral_count": 5},
	},
	{
		Code:        "BOTTLE_1000",
		Name:        "Water Warrior",
		Description: "Prevented 1,000 plastic bottles",
		Rarity:      "rare",
		Threshold:   map[string]int64{"bottles_prevented": 1000},
	},
	{
		Code:        "BOTTLE_10000",
		Name:        "Ocean Guardian",
		Description: "Prevented 10,000 plastic bottles",
		Rarity:      "epic",
		Threshold:   map[string]int64{"bottles_prevented": 10000},
	},
	{
		Code:        "CHALLENGE_5",
		Name:        "Mission Regular",
		Description: "Completed 5 community challenges",
		Rarity:      "rare",
		Threshold:   map[string]int64{"challenges_done": 5},
	},
	{
		Code:        "GOLD_TIER",
		Name:        "Dubai Gold",
		Description: "Reached the Gold hero tier",
		Rarity:      "legendary",
		Threshold:   map[string]int64{"points": 10000},
	},
}
