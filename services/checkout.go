package services

import (
	"fmt"
	"net/url"
)

// CheckoutBuilder turns kit line items into Shopify cart permalinks.
// Pure pass-through: Shopify owns the cart and payment flow.
type CheckoutBuilder struct {
	ShopDomain string
}

func NewCheckoutBuilder(shopDomain string) *CheckoutBuilder {
	return &CheckoutBuilder{ShopDomain: shopDomain}
}

// CartLink builds https://{shop}/cart/{variant}:{qty}, optionally tagging
// the order with the hero's referral code as a cart attribute.
func (b *CheckoutBuilder) CartLink(variantID string, quantity int, referralCode string) string {
	if quantity < 1 {
		quantity = 1
	}
	link := fmt.Sprintf("https://%s/cart/%s:%d", b.ShopDomain, variantID, quantity)
	if referralCode != "" {
		link += "?attributes[referral]=" + url.QueryEscape(referralCode)
	}
	return link
}
