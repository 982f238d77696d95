package storage

import (
	"errors"

	"deliwer-loyalty-system/models"

	"gorm.io/gorm"
)

// CommunityTotals aggregates the whole community's impact for the public
// stats endpoint.
type CommunityTotals struct {
	Heroes           int64 `json:"heroes"`
	Points           int64 `json:"points"`
	TradeValue       int64 `json:"trade_value"`
	BottlesPrevented int64 `json:"bottles_prevented"`
	CO2SavedGrams    int64 `json:"co2_saved_grams"`
}

// HeroStore persists heroes, referrals and badge awards.
type HeroStore interface {
	GetByID(id string) (*models.Hero, error)
	GetByEmail(email string) (*models.Hero, error)
	GetByReferralCode(code string) (*models.Hero, error)
	Create(hero *models.Hero) error
	Save(hero *models.Hero) error
	Leaderboard(limit int) ([]models.Hero, error)
	Totals() (*CommunityTotals, error)

	CreateReferral(ref *models.Referral) error
	ReferralExists(referredID string) (bool, error)

	BadgeTypeByCode(code string) (*models.BadgeType, error)
	HasBadge(heroID, badgeTypeID string) (bool, error)
	AwardBadge(badge *models.HeroBadge) error
	ListBadges(heroID string) ([]models.BadgeType, error)
}

type GormHeroStore struct {
	DB *gorm.DB
}

func (s *GormHeroStore) GetByID(id string) (*models.Hero, error) {
	var hero models.Hero
	if err := s.DB.First(&hero, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &hero, nil
}

func (s *GormHeroStore) GetByEmail(email string) (*models.Hero, error) {
	var hero models.Hero
	if err := s.DB.First(&hero, "email = ?", email).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &hero, nil
}

func (s *GormHeroStore) GetByReferralCode(code string) (*models.Hero, error) {
	var hero models.Hero
	if err := s.DB.First(&hero, "referral_code = ?", code).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &hero, nil
}

func (s *GormHeroStore) Create(hero *models.Hero) error {
	return s.DB.Create(hero).Error
}

func (s *GormHeroStore) Save(hero *models.Hero) error {
	return s.DB.Save(hero).Error
}

func (s *GormHeroStore) Leaderboard(limit int) ([]models.Hero, error) {
	var heroes []models.Hero
	err := s.DB.Where("is_active = ?", true).
		Order("points DESC").
		Limit(limit).
		Find(&heroes).Error
	return heroes, err
}

func (s *GormHeroStore) Totals() (*CommunityTotals, error) {
	var totals CommunityTotals
	err := s.DB.Model(&models.Hero{}).
		Select("COUNT(*) AS heroes, COALESCE(SUM(points),0) AS points, COALESCE(SUM(trade_value),0) AS trade_value, COALESCE(SUM(bottles_prevented),0) AS bottles_prevented, COALESCE(SUM(co2_saved_grams),0) AS co2_saved_grams").
		Where("is_active = ?", true).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

func (s *GormHeroStore) CreateReferral(ref *models.Referral) error {
	return s.DB.Create(ref).Error
}

func (s *GormHeroStore) ReferralExists(referredID string) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Referral{}).
		Where("referred_id = ?", referredID).
		Count(&count).Error
	return count > 0, err
}

func (s *GormHeroStore) BadgeTypeByCode(code string) (*models.BadgeType, error) {
	var bt models.BadgeType
	if err := s.DB.First(&bt, "code = ?", code).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &bt, nil
}

func (s *GormHeroStore) HasBadge(heroID, badgeTypeID string) (bool, error) {
	var count int64
	err := s.DB.Model(&models.HeroBadge{}).
		Where("hero_id = ? AND badge_type_id = ?", heroID, badgeTypeID).
		Count(&count).Error
	return count > 0, err
}

func (s *GormHeroStore) AwardBadge(badge *models.HeroBadge) error {
	return s.DB.Create(badge).Error
}

func (s *GormHeroStore) ListBadges(heroID string) ([]models.BadgeType, error) {
	var badges []models.BadgeType
	err := s.DB.Raw(`
		SELECT bt.* FROM badge_types bt
		INNER JOIN hero_badges hb ON hb.badge_type_id = bt.id
		WHERE hb.hero_id = ?
		ORDER BY hb.awarded_at ASC
	`, heroID).Scan(&badges).Error
	return badges, err
}

// mapNotFound translates gorm's sentinel so callers never import gorm.
func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}
	return err
}
