package models

import (
	"time"

	"gorm.io/datatypes"
)

// SegmentCriteria is the structured filter stored in Segment.Criteria.
// Zero-valued fields are unconstrained.
type SegmentCriteria struct {
	Tags            []string   `json:"tags,omitempty"` // matched case-insensitively
	MinOrders       *int       `json:"min_orders,omitempty"`
	MaxOrders       *int       `json:"max_orders,omitempty"`
	City            string     `json:"city,omitempty"`
	Country         string     `json:"country,omitempty"`
	LastActiveSince *time.Time `json:"last_active_since,omitempty"`
}

// Segment is a named filter over the shop's customer directory.
// ResolvedCustomerCount is a cached estimate, refreshed by the segment
// refresh worker; the authoritative list is resolved at send time.
type Segment struct {
	ID         string         `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ShopDomain string         `gorm:"index;not null" json:"shop_domain"`
	Name       string         `gorm:"not null" json:"name"`
	Criteria   datatypes.JSON `gorm:"type:jsonb;not null" json:"criteria"` // SegmentCriteria

	ResolvedCustomerCount int64      `json:"resolved_customer_count" gorm:"default:0"`
	LastResolvedAt        *time.Time `json:"last_resolved_at,omitempty"`

	CreatedBy string `json:"created_by"`

	Timestamps
}

// Customer is a directory record as exposed to campaign targeting.
// Marketing-relevant attributes only — order history and payment data must
// never appear here.
type Customer struct {
	ID               string   `json:"id"`
	Email            string   `json:"email"`
	FirstName        string   `json:"first_name,omitempty"`
	LastName         string   `json:"last_name,omitempty"`
	AcceptsMarketing bool     `json:"accepts_marketing"`
	Tags             []string `json:"tags"`
	City             string   `json:"city,omitempty"`
	Country          string   `json:"country,omitempty"`
}
