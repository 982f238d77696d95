package services

import (
	"errors"
	"testing"

	"deliwer-loyalty-system/models"
)

type stubIdentityProvider struct {
	identity *models.AdminIdentity
	err      error
}

func (s *stubIdentityProvider) Resolve(token, shopDomain string) (*models.AdminIdentity, error) {
	return s.identity, s.err
}

type stubAuditStore struct {
	entries []models.AuditLog
}

func (s *stubAuditStore) Append(entry *models.AuditLog) error {
	s.entries = append(s.entries, *entry)
	return nil
}

func staffIdentity() *models.AdminIdentity {
	return &models.AdminIdentity{
		ID:          "a1",
		Email:       "staff@deliwer.com",
		Role:        models.RoleStaff,
		ShopDomain:  "deliwer.myshopify.com",
		Permissions: models.PermissionsFor(models.RoleStaff),
	}
}

func TestAuthorizeUnauthenticated(t *testing.T) {
	audit := &stubAuditStore{}
	svc := NewAccessService(&stubIdentityProvider{identity: nil}, audit)

	_, err := svc.Authorize("", "deliwer.myshopify.com", "campaign.create", models.PermManageCampaigns)
	if !errors.Is(err, models.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if len(audit.entries) != 1 || audit.entries[0].Allowed {
		t.Fatalf("expected one denied audit entry, got %+v", audit.entries)
	}
}

func TestAuthorizeForbiddenListsMissing(t *testing.T) {
	audit := &stubAuditStore{}
	svc := NewAccessService(&stubIdentityProvider{identity: staffIdentity()}, audit)

	_, err := svc.Authorize("token", "deliwer.myshopify.com", "admin.role", models.PermManageAdmins)
	var forbidden *models.ForbiddenError
	if !errors.As(err, &forbidden) {
		t.Fatalf("expected ForbiddenError, got %v", err)
	}
	if len(forbidden.Missing) != 1 || forbidden.Missing[0] != models.PermManageAdmins {
		t.Fatalf("expected missing [manage_admins], got %v", forbidden.Missing)
	}
	if len(audit.entries) != 1 || audit.entries[0].Allowed {
		t.Fatalf("expected one denied audit entry, got %+v", audit.entries)
	}
}

func TestAuthorizeSuccessStillAudits(t *testing.T) {
	audit := &stubAuditStore{}
	svc := NewAccessService(&stubIdentityProvider{identity: staffIdentity()}, audit)

	identity, err := svc.Authorize("token", "deliwer.myshopify.com", "campaign.list", models.PermViewCampaigns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.Role != models.RoleStaff {
		t.Fatalf("unexpected identity: %+v", identity)
	}
	if len(audit.entries) != 1 || !audit.entries[0].Allowed {
		t.Fatalf("expected one allowed audit entry, got %+v", audit.entries)
	}
	if audit.entries[0].Action != "campaign.list" || audit.entries[0].AdminID != "a1" {
		t.Fatalf("audit entry incomplete: %+v", audit.entries[0])
	}
}

func TestAuthorizeProviderFailure(t *testing.T) {
	audit := &stubAuditStore{}
	providerErr := &models.CollaboratorError{Collaborator: "identity provider", Err: errors.New("down")}
	svc := NewAccessService(&stubIdentityProvider{err: providerErr}, audit)

	_, err := svc.Authorize("token", "deliwer.myshopify.com", "campaign.list", models.PermViewCampaigns)
	var collab *models.CollaboratorError
	if !errors.As(err, &collab) {
		t.Fatalf("expected CollaboratorError, got %v", err)
	}
	if len(audit.entries) != 1 {
		t.Fatalf("gated call must audit even on provider failure, got %d entries", len(audit.entries))
	}
}

func TestRolePermissionsAreNested(t *testing.T) {
	owner := models.PermissionsFor(models.RoleOwner)
	admin := models.PermissionsFor(models.RoleAdmin)
	staff := models.PermissionsFor(models.RoleStaff)

	has := func(perms []models.Permission, p models.Permission) bool {
		for _, held := range perms {
			if held == p {
				return true
			}
		}
		return false
	}

	for _, p := range staff {
		if !has(admin, p) {
			t.Fatalf("staff permission %s not held by admin", p)
		}
	}
	for _, p := range admin {
		if !has(owner, p) {
			t.Fatalf("admin permission %s not held by owner", p)
		}
	}
	if has(staff, models.PermManageAdmins) {
		t.Fatal("staff must not hold manage_admins")
	}
}
