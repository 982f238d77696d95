package services

import (
	"log"

	"deliwer-loyalty-system/models"
	"deliwer-loyalty-system/storage"

	"github.com/google/uuid"
)

// AccessService gates every admin-surface operation. Each call emits an
// audit record whether or not it is allowed.
type AccessService struct {
	Identity IdentityProvider
	Audit    storage.AuditStore
}

func NewAccessService(identity IdentityProvider, audit storage.AuditStore) *AccessService {
	return &AccessService{Identity: identity, Audit: audit}
}

// Authorize resolves the bearer assertion and checks the role-derived
// permission set against required. Returns the identity on success;
// ErrUnauthenticated when the assertion fails to resolve; ForbiddenError
// listing the missing permissions otherwise.
func (s *AccessService) Authorize(token, shopDomain, action string, required ...models.Permission) (*models.AdminIdentity, error) {
	identity, err := s.Identity.Resolve(token, shopDomain)
	if err != nil {
		s.audit(action, "", shopDomain, false, err.Error())
		return nil, err
	}
	if identity == nil {
		s.audit(action, "", shopDomain, false, "assertion did not resolve")
		return nil, models.ErrUnauthenticated
	}

	var missing []models.Permission
	for _, perm := range required {
		if !identity.Has(perm) {
			missing = append(missing, perm)
		}
	}
	if len(missing) > 0 {
		forbidden := &models.ForbiddenError{Missing: missing}
		s.audit(action, identity.ID, identity.ShopDomain, false, forbidden.Error())
		return nil, forbidden
	}

	s.audit(action, identity.ID, identity.ShopDomain, true, "")
	return identity, nil
}

// audit never fails the gated operation; a write error is logged and
// swallowed.
func (s *AccessService) audit(action, adminID, shopDomain string, allowed bool, detail string) {
	entry := &models.AuditLog{
		ID:         uuid.NewString(),
		Action:     action,
		AdminID:    adminID,
		ShopDomain: shopDomain,
		Allowed:    allowed,
		Detail:     detail,
	}
	if err := s.Audit.Append(entry); err != nil {
		log.Printf("⚠️ audit append failed for %s: %v", action, err)
	}
}
