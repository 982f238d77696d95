// Package storage holds the store interfaces the services depend on, plus
// their gorm/postgres implementations. Services only ever see the
// interfaces, so tests swap in stubs and a different backend can swap in
// without touching engine logic.
package storage

import (
	"log"

	"deliwer-loyalty-system/models"

	"gorm.io/gorm"
)

// Stores bundles every store for wiring in main.
type Stores struct {
	Heroes     HeroStore
	Campaigns  CampaignStore
	Segments   SegmentStore
	Admins     AdminStore
	Audit      AuditStore
	Kits       KitStore
	Challenges ChallengeStore
	Rewards    RewardStore
}

// NewStores returns gorm-backed stores over one shared DB handle.
func NewStores(db *gorm.DB) *Stores {
	return &Stores{
		Heroes:     &GormHeroStore{DB: db},
		Campaigns:  &GormCampaignStore{DB: db},
		Segments:   &GormSegmentStore{DB: db},
		Admins:     &GormAdminStore{DB: db},
		Audit:      &GormAuditStore{DB: db},
		Kits:       &GormKitStore{DB: db},
		Challenges: &GormChallengeStore{DB: db},
		Rewards:    &GormRewardStore{DB: db},
	}
}

// AutoMigrate creates/updates every table the service owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Hero{},
		&models.Referral{},
		&models.BadgeType{},
		&models.HeroBadge{},
		&models.Campaign{},
		&models.Segment{},
		&models.AdminAccount{},
		&models.AuditLog{},
		&models.Kit{},
		&models.Challenge{},
		&models.Reward{},
	)
}

// SeedBadgeTypes upserts the static badge trigger table by code.
func SeedBadgeTypes(db *gorm.DB) error {
	for _, trigger := range models.BadgeTriggers {
		var existing models.BadgeType
		err := db.Where("code = ?", trigger.Code).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			t := trigger
			if createErr := db.Create(&t).Error; createErr != nil {
				return createErr
			}
			log.Printf("🎖️ Seeded badge type: %s", t.Code)
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}
