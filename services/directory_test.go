package services

import (
	"testing"
	"time"

	"deliwer-loyalty-system/models"
)

func TestMatchesCriteriaTagsFoldCase(t *testing.T) {
	customer := models.Customer{
		Email: "x@example.com",
		Tags:  []string{"VIP", "Trade-In"},
		City:  "Dubai",
	}

	if !MatchesCriteria(customer, 3, time.Now(), models.SegmentCriteria{Tags: []string{"vip"}}) {
		t.Fatal("tag match should be case-insensitive")
	}
	if MatchesCriteria(customer, 3, time.Now(), models.SegmentCriteria{Tags: []string{"vip", "wholesale"}}) {
		t.Fatal("all criteria tags must match")
	}
}

func TestMatchesCriteriaOrderBounds(t *testing.T) {
	customer := models.Customer{Email: "x@example.com"}
	two := 2
	five := 5

	if MatchesCriteria(customer, 1, time.Now(), models.SegmentCriteria{MinOrders: &two}) {
		t.Fatal("below min orders should not match")
	}
	if !MatchesCriteria(customer, 3, time.Now(), models.SegmentCriteria{MinOrders: &two, MaxOrders: &five}) {
		t.Fatal("in-range orders should match")
	}
	if MatchesCriteria(customer, 9, time.Now(), models.SegmentCriteria{MaxOrders: &five}) {
		t.Fatal("above max orders should not match")
	}
}

func TestMatchesCriteriaLocationAndRecency(t *testing.T) {
	customer := models.Customer{Email: "x@example.com", City: "Dubai", Country: "United Arab Emirates"}
	cutoff := time.Now().Add(-30 * 24 * time.Hour)

	if !MatchesCriteria(customer, 0, time.Now(), models.SegmentCriteria{City: "dubai", LastActiveSince: &cutoff}) {
		t.Fatal("recent Dubai customer should match")
	}
	stale := cutoff.Add(-24 * time.Hour)
	if MatchesCriteria(customer, 0, stale, models.SegmentCriteria{LastActiveSince: &cutoff}) {
		t.Fatal("stale customer should not match recency filter")
	}
	if MatchesCriteria(customer, 0, time.Now(), models.SegmentCriteria{Country: "Oman"}) {
		t.Fatal("country mismatch should not match")
	}
}
