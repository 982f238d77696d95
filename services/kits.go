package services

import (
	"deliwer-loyalty-system/models"
	"deliwer-loyalty-system/storage"
)

type KitService struct {
	Kits     storage.KitStore
	Checkout *CheckoutBuilder
}

func NewKitService(kits storage.KitStore, checkout *CheckoutBuilder) *KitService {
	return &KitService{Kits: kits, Checkout: checkout}
}

func (s *KitService) ListKits() ([]models.Kit, error) {
	return s.Kits.ListPublished()
}

func (s *KitService) GetKit(slug string) (*models.Kit, error) {
	kit, err := s.Kits.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if kit.Status != models.KitStatusPublished {
		return nil, models.ErrNotFound
	}
	return kit, nil
}

// CheckoutLink returns the Shopify cart permalink for a published kit.
func (s *KitService) CheckoutLink(slug string, quantity int, referralCode string) (string, error) {
	kit, err := s.GetKit(slug)
	if err != nil {
		return "", err
	}
	return s.Checkout.CartLink(kit.ShopifyVariantID, quantity, referralCode), nil
}
