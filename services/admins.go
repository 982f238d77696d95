package services

import (
	"log"
	"strings"

	"deliwer-loyalty-system/models"
	"deliwer-loyalty-system/storage"

	"github.com/google/uuid"
)

type AdminService struct {
	Admins storage.AdminStore
}

func NewAdminService(admins storage.AdminStore) *AdminService {
	return &AdminService{Admins: admins}
}

func (s *AdminService) List(identity *models.AdminIdentity) ([]models.AdminAccount, error) {
	return s.Admins.List(identity.ShopDomain)
}

// CreateAdmin registers a (shopDomain, email) → role mapping. Only an owner
// may mint another owner.
func (s *AdminService) CreateAdmin(identity *models.AdminIdentity, email string, role models.AdminRole) (*models.AdminAccount, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, &models.ValidationError{Missing: []string{"email"}}
	}
	if !validRole(role) {
		return nil, &models.ValidationError{Missing: []string{"role"}}
	}
	if role == models.RoleOwner && identity.Role != models.RoleOwner {
		return nil, &models.ForbiddenError{Reason: "only an owner can assign the owner role"}
	}

	account := &models.AdminAccount{
		ID:         uuid.NewString(),
		ShopDomain: identity.ShopDomain,
		Email:      email,
		Role:       role,
		IsActive:   true,
	}
	if err := s.Admins.Create(account); err != nil {
		return nil, err
	}
	log.Printf("👥 Admin added: %s as %s on %s (by %s)", email, role, identity.ShopDomain, identity.Email)
	return account, nil
}

// ManageRole changes an admin's role.
//
// Two guards: assigning or revoking the owner role requires the caller to be
// an owner, and no change may leave the shop with zero active owners.
func (s *AdminService) ManageRole(identity *models.AdminIdentity, targetAdminID string, newRole models.AdminRole) (*models.AdminAccount, error) {
	if !validRole(newRole) {
		return nil, &models.ValidationError{Missing: []string{"role"}}
	}

	target, err := s.Admins.GetByID(targetAdminID)
	if err != nil {
		return nil, err
	}
	if target.ShopDomain != identity.ShopDomain {
		return nil, models.ErrNotFound
	}
	if target.Role == newRole {
		return target, nil
	}

	touchesOwner := target.Role == models.RoleOwner || newRole == models.RoleOwner
	if touchesOwner && identity.Role != models.RoleOwner {
		return nil, &models.ForbiddenError{Reason: "only an owner can assign or revoke the owner role"}
	}

	if target.Role == models.RoleOwner && target.IsActive {
		owners, err := s.Admins.CountActiveOwners(identity.ShopDomain)
		if err != nil {
			return nil, err
		}
		if owners <= 1 {
			return nil, &models.InvariantViolationError{
				Invariant: "each shop must retain at least one active owner",
			}
		}
	}

	target.Role = newRole
	if err := s.Admins.Save(target); err != nil {
		return nil, err
	}
	log.Printf("👥 Role changed: %s → %s on %s (by %s)", target.Email, newRole, identity.ShopDomain, identity.Email)
	return target, nil
}

// Deactivate soft-disables an admin, subject to the same owner guards as a
// role change.
func (s *AdminService) Deactivate(identity *models.AdminIdentity, targetAdminID string) (*models.AdminAccount, error) {
	target, err := s.Admins.GetByID(targetAdminID)
	if err != nil {
		return nil, err
	}
	if target.ShopDomain != identity.ShopDomain {
		return nil, models.ErrNotFound
	}
	if !target.IsActive {
		return target, nil
	}

	if target.Role == models.RoleOwner {
		if identity.Role != models.RoleOwner {
			return nil, &models.ForbiddenError{Reason: "only an owner can deactivate an owner"}
		}
		owners, err := s.Admins.CountActiveOwners(identity.ShopDomain)
		if err != nil {
			return nil, err
		}
		if owners <= 1 {
			return nil, &models.InvariantViolationError{
				Invariant: "each shop must retain at least one active owner",
			}
		}
	}

	target.IsActive = false
	if err := s.Admins.Save(target); err != nil {
		return nil, err
	}
	log.Printf("👥 Admin deactivated: %s on %s (by %s)", target.Email, identity.ShopDomain, identity.Email)
	return target, nil
}

func validRole(role models.AdminRole) bool {
	switch role {
	case models.RoleOwner, models.RoleAdmin, models.RoleStaff:
		return true
	}
	return false
}
