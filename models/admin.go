package models

import "time"

// AdminRole is the closed set of admin-surface roles.
type AdminRole string

const (
	RoleOwner AdminRole = "owner"
	RoleAdmin AdminRole = "admin"
	RoleStaff AdminRole = "staff"
)

// Permission names a gated capability on the admin surface.
type Permission string

const (
	PermManageCampaigns Permission = "manage_campaigns"
	PermManageSegments  Permission = "manage_segments"
	PermManageAdmins    Permission = "manage_admins"
	PermViewCampaigns   Permission = "view_campaigns"
	PermViewAnalytics   Permission = "view_analytics"
	PermUploadMedia     Permission = "upload_media"
)

// RolePermissions is the fixed role → permission table. Permission sets are
// a pure function of role; there are no per-admin overrides. owner ⊇ admin ⊇
// staff.
var RolePermissions = map[AdminRole][]Permission{
	RoleOwner: {
		PermManageCampaigns, PermManageSegments, PermManageAdmins,
		PermViewCampaigns, PermViewAnalytics, PermUploadMedia,
	},
	RoleAdmin: {
		PermManageCampaigns, PermManageSegments, PermManageAdmins,
		PermViewCampaigns, PermViewAnalytics, PermUploadMedia,
	},
	RoleStaff: {
		PermViewCampaigns, PermViewAnalytics,
	},
}

// PermissionsFor returns the permission set for a role. Unknown roles get
// nothing.
func PermissionsFor(role AdminRole) []Permission {
	perms := RolePermissions[role]
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// AdminIdentity is the per-request view of an authenticated admin. Derived
// from a bearer assertion; never persisted.
type AdminIdentity struct {
	ID          string       `json:"id"`
	Email       string       `json:"email"`
	Role        AdminRole    `json:"role"`
	ShopDomain  string       `json:"shop_domain"`
	Permissions []Permission `json:"permissions"`
}

// Has reports whether the identity holds a permission.
func (a *AdminIdentity) Has(p Permission) bool {
	for _, held := range a.Permissions {
		if held == p {
			return true
		}
	}
	return false
}

// AdminAccount is the persisted registry row mapping (shopDomain, email) to
// a role. The identity provider consults it when resolving a token.
type AdminAccount struct {
	ID         string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ShopDomain string    `gorm:"uniqueIndex:idx_admin_shop_email;not null" json:"shop_domain"`
	Email      string    `gorm:"uniqueIndex:idx_admin_shop_email;not null" json:"email"`
	Role       AdminRole `gorm:"type:varchar(16);not null" json:"role"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`

	Timestamps
}

// DataPurpose tags a customer-data request with its declared use.
type DataPurpose string

// DataPurposeCampaignTargeting is the only purpose customer data may be
// released for.
const DataPurposeCampaignTargeting DataPurpose = "campaign_targeting"

// AuditLog records every gated admin operation, allowed or not.
type AuditLog struct {
	ID         string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Action     string    `gorm:"index;not null" json:"action"`
	AdminID    string    `gorm:"index" json:"admin_id"`
	ShopDomain string    `gorm:"index" json:"shop_domain"`
	Allowed    bool      `json:"allowed"`
	Detail     string    `gorm:"type:text" json:"detail,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
