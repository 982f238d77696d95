package storage

import (
	"deliwer-loyalty-system/models"

	"gorm.io/gorm"
)

// AdminStore persists the (shopDomain, email) → role registry.
type AdminStore interface {
	GetByID(id string) (*models.AdminAccount, error)
	GetByEmail(shopDomain, email string) (*models.AdminAccount, error)
	List(shopDomain string) ([]models.AdminAccount, error)
	Create(a *models.AdminAccount) error
	Save(a *models.AdminAccount) error
	CountActiveOwners(shopDomain string) (int64, error)
}

type GormAdminStore struct {
	DB *gorm.DB
}

func (s *GormAdminStore) GetByID(id string) (*models.AdminAccount, error) {
	var a models.AdminAccount
	if err := s.DB.First(&a, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &a, nil
}

func (s *GormAdminStore) GetByEmail(shopDomain, email string) (*models.AdminAccount, error) {
	var a models.AdminAccount
	err := s.DB.First(&a, "shop_domain = ? AND email = ?", shopDomain, email).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &a, nil
}

func (s *GormAdminStore) List(shopDomain string) ([]models.AdminAccount, error) {
	var admins []models.AdminAccount
	err := s.DB.Where("shop_domain = ?", shopDomain).
		Order("created_at ASC").
		Find(&admins).Error
	return admins, err
}

func (s *GormAdminStore) Create(a *models.AdminAccount) error {
	return s.DB.Create(a).Error
}

func (s *GormAdminStore) Save(a *models.AdminAccount) error {
	return s.DB.Save(a).Error
}

func (s *GormAdminStore) CountActiveOwners(shopDomain string) (int64, error) {
	var count int64
	err := s.DB.Model(&models.AdminAccount{}).
		Where("shop_domain = ? AND role = ? AND is_active = ?", shopDomain, models.RoleOwner, true).
		Count(&count).Error
	return count, err
}

// AuditStore appends gated-operation audit records.
type AuditStore interface {
	Append(entry *models.AuditLog) error
}

type GormAuditStore struct {
	DB *gorm.DB
}

func (s *GormAuditStore) Append(entry *models.AuditLog) error {
	return s.DB.Create(entry).Error
}
