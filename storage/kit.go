package storage

import (
	"deliwer-loyalty-system/models"

	"gorm.io/gorm"
)

// KitStore persists the filtration kit catalog.
type KitStore interface {
	ListPublished() ([]models.Kit, error)
	GetBySlug(slug string) (*models.Kit, error)
	Create(kit *models.Kit) error
	Save(kit *models.Kit) error
}

type GormKitStore struct {
	DB *gorm.DB
}

func (s *GormKitStore) ListPublished() ([]models.Kit, error) {
	var kits []models.Kit
	err := s.DB.Where("status = ?", models.KitStatusPublished).
		Order("price_aed ASC").
		Find(&kits).Error
	return kits, err
}

func (s *GormKitStore) GetBySlug(slug string) (*models.Kit, error) {
	var kit models.Kit
	if err := s.DB.First(&kit, "slug = ?", slug).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &kit, nil
}

func (s *GormKitStore) Create(kit *models.Kit) error {
	return s.DB.Create(kit).Error
}

func (s *GormKitStore) Save(kit *models.Kit) error {
	return s.DB.Save(kit).Error
}

// ChallengeStore persists community challenges.
type ChallengeStore interface {
	GetByID(id string) (*models.Challenge, error)
	ListActive() ([]models.Challenge, error)
}

type GormChallengeStore struct {
	DB *gorm.DB
}

func (s *GormChallengeStore) GetByID(id string) (*models.Challenge, error) {
	var ch models.Challenge
	if err := s.DB.First(&ch, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &ch, nil
}

func (s *GormChallengeStore) ListActive() ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := s.DB.Where("is_active = ?", true).Find(&challenges).Error
	return challenges, err
}

// RewardStore persists redeemable rewards.
type RewardStore interface {
	GetByID(id string) (*models.Reward, error)
	ListActive() ([]models.Reward, error)
}

type GormRewardStore struct {
	DB *gorm.DB
}

func (s *GormRewardStore) GetByID(id string) (*models.Reward, error) {
	var r models.Reward
	if err := s.DB.First(&r, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &r, nil
}

func (s *GormRewardStore) ListActive() ([]models.Reward, error) {
	var rewards []models.Reward
	err := s.DB.Where("is_active = ?", true).
		Order("points_cost ASC").
		Find(&rewards).Error
	return rewards, err
}
