package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"deliwer-loyalty-system/models"
	"deliwer-loyalty-system/utils"

	"golang.org/x/text/cases"
)

// CustomerDirectory resolves a segment's criteria to concrete customer
// records. Callers own the marketing-consent filter.
type CustomerDirectory interface {
	Resolve(shopDomain string, criteria models.SegmentCriteria) ([]models.Customer, error)
}

// ShopifyDirectory reads customers from the Shopify Admin API and filters
// them against segment criteria locally. Only marketing-relevant fields
// leave this type — order history and payment data are never mapped.
type ShopifyDirectory struct {
	AccessToken string
	APIVersion  string
	Client      *http.Client
}

func NewShopifyDirectory(accessToken string) *ShopifyDirectory {
	return &ShopifyDirectory{
		AccessToken: accessToken,
		APIVersion:  "2024-01",
		Client:      utils.HTTPClient,
	}
}

// shopifyCustomer mirrors the subset of the Admin API payload we consume.
type shopifyCustomer struct {
	ID               int64  `json:"id"`
	Email            string `json:"email"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	AcceptsMarketing bool   `json:"accepts_marketing"`
	OrdersCount      int    `json:"orders_count"`
	Tags             string `json:"tags"` // comma-separated
	UpdatedAt        string `json:"updated_at"`
	DefaultAddress   *struct {
		City    string `json:"city"`
		Country string `json:"country"`
	} `json:"default_address"`
}

func (d *ShopifyDirectory) Resolve(shopDomain string, criteria models.SegmentCriteria) ([]models.Customer, error) {
	var matched []models.Customer
	sinceID := int64(0)

	for {
		url := fmt.Sprintf("https://%s/admin/api/%s/customers.json?limit=250&since_id=%d",
			shopDomain, d.APIVersion, sinceID)
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return nil, &models.CollaboratorError{Collaborator: "customer directory", Err: err}
		}
		req.Header.Set("X-Shopify-Access-Token", d.AccessToken)

		resp, err := d.Client.Do(req)
		if err != nil {
			return nil, &models.CollaboratorError{Collaborator: "customer directory", Err: err}
		}
		var page struct {
			Customers []shopifyCustomer `json:"customers"`
		}
		decodeErr := json.NewDecoder(resp.Body).Decode(&page)
		resp.Body.Close()
		if resp.StatusCode >= 400 {
			return nil, &models.CollaboratorError{
				Collaborator: "customer directory",
				Err:          fmt.Errorf("shopify returned %d", resp.StatusCode),
			}
		}
		if decodeErr != nil {
			return nil, &models.CollaboratorError{Collaborator: "customer directory", Err: decodeErr}
		}
		if len(page.Customers) == 0 {
			break
		}

		for _, sc := range page.Customers {
			customer := mapCustomer(sc)
			if MatchesCriteria(customer, sc.OrdersCount, parseShopifyTime(sc.UpdatedAt), criteria) {
				matched = append(matched, customer)
			}
			if sc.ID > sinceID {
				sinceID = sc.ID
			}
		}
		if len(page.Customers) < 250 {
			break
		}
	}

	return matched, nil
}

func mapCustomer(sc shopifyCustomer) models.Customer {
	customer := models.Customer{
		ID:               fmt.Sprintf("%d", sc.ID),
		Email:            sc.Email,
		FirstName:        sc.FirstName,
		LastName:         sc.LastName,
		AcceptsMarketing: sc.AcceptsMarketing,
		Tags:             splitTags(sc.Tags),
	}
	if sc.DefaultAddress != nil {
		customer.City = sc.DefaultAddress.City
		customer.Country = sc.DefaultAddress.Country
	}
	return customer
}

// MatchesCriteria applies a segment's structured filter to one customer.
// Tag and location comparisons are case-folded.
func MatchesCriteria(c models.Customer, ordersCount int, lastActive time.Time, crit models.SegmentCriteria) bool {
	fold := cases.Fold()

	for _, wanted := range crit.Tags {
		found := false
		for _, tag := range c.Tags {
			if fold.String(tag) == fold.String(wanted) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if crit.MinOrders != nil && ordersCount < *crit.MinOrders {
		return false
	}
	if crit.MaxOrders != nil && ordersCount > *crit.MaxOrders {
		return false
	}
	if crit.City != "" && fold.String(c.City) != fold.String(crit.City) {
		return false
	}
	if crit.Country != "" && fold.String(c.Country) != fold.String(crit.Country) {
		return false
	}
	if crit.LastActiveSince != nil && lastActive.Before(*crit.LastActiveSince) {
		return false
	}
	return true
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func parseShopifyTime(raw string) time.Time {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
