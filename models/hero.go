package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Hero is the loyalty profile created on a user's first trade-in.
// One row per unique email; counters only ever grow. Heroes are never
// hard-deleted — IsActive is the only off switch.
type Hero struct {
	ID    string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`

	// Latest trade-in snapshot
	PhoneModel     string `json:"phone_model"`
	PhoneCondition string `json:"phone_condition"`
	TradeValue     int64  `json:"trade_value" gorm:"default:0"` // cumulative, AED

	// Gamification
	Points         int64  `json:"points" gorm:"default:0"`
	Tier           string `json:"tier" gorm:"type:varchar(16);default:'Bronze'"` // cumulative scale: Bronze/Silver/Gold
	TradeCount     int64  `json:"trade_count" gorm:"default:0"`
	ReferralCount  int64  `json:"referral_count" gorm:"default:0"`
	ChallengesDone int64  `json:"challenges_done" gorm:"default:0"`
	ReferralCode   string `gorm:"uniqueIndex" json:"referral_code"`

	// Environmental impact (cumulative)
	BottlesPrevented int64 `json:"bottles_prevented" gorm:"default:0"`
	CO2SavedGrams    int64 `json:"co2_saved_grams" gorm:"default:0"`

	DubaiZone string `gorm:"index" json:"dubai_zone"`

	// Append-only claim/completion logs
	RewardsEarned       datatypes.JSON `gorm:"type:jsonb" json:"rewards_earned"`       // []string of reward IDs
	ChallengesCompleted datatypes.JSON `gorm:"type:jsonb" json:"challenges_completed"` // []string of challenge IDs

	IsActive bool `json:"is_active" gorm:"default:true"`

	Timestamps
}

// Timestamps adds GORM auto-times
type Timestamps struct {
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// Referral links a new hero to the referrer whose code they used.
// The uniqueIndex on ReferredID is what makes the bonus once-per-referee.
type Referral struct {
	ID               string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ReferrerID       string `gorm:"index;not null" json:"referrer_id"`
	ReferredID       string `gorm:"uniqueIndex;not null" json:"referred_id"`
	ReferralCodeUsed string `gorm:"not null" json:"referral_code_used"`
	PointsAwarded    int64  `json:"points_awarded" gorm:"default:0"`

	Timestamps
}
