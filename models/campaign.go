package models

import (
	"time"

	"gorm.io/datatypes"
)

// CampaignStatus enumerates the lifecycle states of a campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignScheduled CampaignStatus = "scheduled"
	CampaignSent      CampaignStatus = "sent"
	CampaignCancelled CampaignStatus = "cancelled"
)

// Campaign is a bulk email send targeting one or more segments.
// draft/scheduled → sent (one-way) or → cancelled. Sent and cancelled are
// terminal; a sent campaign can never be deleted or re-sent.
type Campaign struct {
	ID         string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ShopDomain string `gorm:"index;not null" json:"shop_domain"`
	Name       string `gorm:"not null" json:"name"`
	Subject    string `gorm:"not null" json:"subject"`
	FromEmail  string `gorm:"not null" json:"from_email"`
	FromName   string `gorm:"not null" json:"from_name"`

	// Content: either a provider template or inline HTML (at least one set)
	TemplateID   string `json:"template_id,omitempty"`
	HTMLContent  string `gorm:"type:text" json:"html_content,omitempty"`
	PlainContent string `gorm:"type:text" json:"plain_content,omitempty"`
	BannerURL    string `gorm:"type:text" json:"banner_url,omitempty"`

	SegmentIDs datatypes.JSON `gorm:"type:jsonb;not null" json:"segment_ids"` // []string, non-empty

	Status      CampaignStatus `gorm:"type:varchar(16);not null;default:'draft';index" json:"status"`
	ScheduledAt *time.Time     `json:"scheduled_at,omitempty"`
	SentAt      *time.Time     `json:"sent_at,omitempty"`

	// Send outcome (populated on transition to sent)
	RecipientCount  int64          `json:"recipient_count" gorm:"default:0"`
	SentCount       int64          `json:"sent_count" gorm:"default:0"`
	FailedCount     int64          `json:"failed_count" gorm:"default:0"`
	SegmentFailures datatypes.JSON `gorm:"type:jsonb" json:"segment_failures,omitempty"` // map[segmentID]failed

	CreatedBy string `gorm:"index" json:"created_by"`

	Timestamps
}

// IsTerminal returns true once no further transitions are allowed.
func (c *Campaign) IsTerminal() bool {
	return c.Status == CampaignSent || c.Status == CampaignCancelled
}

// Sendable reports whether the send operation may run.
func (c *Campaign) Sendable() bool {
	return c.Status == CampaignDraft || c.Status == CampaignScheduled
}
