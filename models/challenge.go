package models

// Challenge is a community mission heroes complete for Planet Points.
type Challenge struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Code        string `gorm:"uniqueIndex;not null" json:"code"` // e.g., "REFILL_WEEK"
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Points      int64  `gorm:"not null" json:"points"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	Timestamps
}

// Reward is a perk heroes redeem with Planet Points.
type Reward struct {
	ID         string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Code       string `gorm:"uniqueIndex;not null" json:"code"` // e.g., "AQUACAFE_DISCOUNT"
	Title      string `gorm:"not null" json:"title"`
	Emoji      string `gorm:"size:10" json:"emoji"`
	Excerpt    string `gorm:"type:text" json:"excerpt"`
	PointsCost int64  `gorm:"not null" json:"points_cost"`
	IsActive   bool   `gorm:"default:true" json:"is_active"`

	Timestamps
}
