package storage

import (
	"time"

	"deliwer-loyalty-system/models"

	"gorm.io/gorm"
)

// CampaignStore persists campaigns, scoped by shop domain.
type CampaignStore interface {
	Create(c *models.Campaign) error
	GetByID(shopDomain, id string) (*models.Campaign, error)
	List(shopDomain string) ([]models.Campaign, error)
	Save(c *models.Campaign) error
	DueScheduled(now time.Time) ([]models.Campaign, error)
}

type GormCampaignStore struct {
	DB *gorm.DB
}

func (s *GormCampaignStore) Create(c *models.Campaign) error {
	return s.DB.Create(c).Error
}

func (s *GormCampaignStore) GetByID(shopDomain, id string) (*models.Campaign, error) {
	var c models.Campaign
	err := s.DB.First(&c, "shop_domain = ? AND id = ?", shopDomain, id).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &c, nil
}

func (s *GormCampaignStore) List(shopDomain string) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := s.DB.Where("shop_domain = ?", shopDomain).
		Order("created_at DESC").
		Find(&campaigns).Error
	return campaigns, err
}

func (s *GormCampaignStore) Save(c *models.Campaign) error {
	return s.DB.Save(c).Error
}

// DueScheduled returns scheduled campaigns whose send time has passed.
func (s *GormCampaignStore) DueScheduled(now time.Time) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := s.DB.Where("status = ? AND scheduled_at <= ?", models.CampaignScheduled, now).
		Find(&campaigns).Error
	return campaigns, err
}
