package storage

import (
	"deliwer-loyalty-system/models"

	"gorm.io/gorm"
)

// SegmentStore persists customer segments.
type SegmentStore interface {
	Create(seg *models.Segment) error
	GetByID(shopDomain, id string) (*models.Segment, error)
	List(shopDomain string) ([]models.Segment, error)
	Save(seg *models.Segment) error
	ListAll() ([]models.Segment, error)
}

type GormSegmentStore struct {
	DB *gorm.DB
}

func (s *GormSegmentStore) Create(seg *models.Segment) error {
	return s.DB.Create(seg).Error
}

func (s *GormSegmentStore) GetByID(shopDomain, id string) (*models.Segment, error) {
	var seg models.Segment
	err := s.DB.First(&seg, "shop_domain = ? AND id = ?", shopDomain, id).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &seg, nil
}

func (s *GormSegmentStore) List(shopDomain string) ([]models.Segment, error) {
	var segments []models.Segment
	err := s.DB.Where("shop_domain = ?", shopDomain).
		Order("created_at DESC").
		Find(&segments).Error
	return segments, err
}

func (s *GormSegmentStore) Save(seg *models.Segment) error {
	return s.DB.Save(seg).Error
}

// ListAll is used by the refresh worker, which walks every shop's segments.
func (s *GormSegmentStore) ListAll() ([]models.Segment, error) {
	var segments []models.Segment
	err := s.DB.Find(&segments).Error
	return segments, err
}
