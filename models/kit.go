package models

// KitStatus indicates the publishing status of a kit
type KitStatus string

const (
	KitStatusDraft     KitStatus = "draft"
	KitStatusPublished KitStatus = "published"
	KitStatusArchived  KitStatus = "archived"
)

// Kit is a water filtration product redeemable against a trade-in.
// Checkout happens on Shopify; ShopifyVariantID is what goes into the cart
// permalink.
type Kit struct {
	ID               string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Slug             string    `gorm:"uniqueIndex;not null" json:"slug"`
	Name             string    `gorm:"not null" json:"name"`
	Excerpt          string    `gorm:"type:text" json:"excerpt"`
	PriceAED         int64     `json:"price_aed"`
	ShopifyVariantID string    `gorm:"not null" json:"shopify_variant_id"`
	ImageURL         string    `gorm:"type:text" json:"image_url"`
	Status           KitStatus `gorm:"type:varchar(16);not null;default:'draft';index" json:"status"`

	Timestamps
}
