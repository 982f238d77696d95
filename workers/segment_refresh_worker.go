package workers

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"deliwer-loyalty-system/models"
	"deliwer-loyalty-system/services"
	"deliwer-loyalty-system/storage"
)

// SegmentRefreshClient recomputes each segment's cached recipient estimate
// from the customer directory. The cache keeps the admin UI honest between
// sends; the authoritative list is always resolved at send time.
type SegmentRefreshClient struct {
	Segments  storage.SegmentStore
	Directory services.CustomerDirectory
}

func NewSegmentRefreshClient(segments storage.SegmentStore, directory services.CustomerDirectory) *SegmentRefreshClient {
	return &SegmentRefreshClient{Segments: segments, Directory: directory}
}

// RefreshAll walks every segment once. Directory failures skip the segment
// and leave the stale estimate in place.
func (c *SegmentRefreshClient) RefreshAll(ctx context.Context) {
	segments, err := c.Segments.ListAll()
	if err != nil {
		log.Printf("[SegmentRefresh] DB error: %v", err)
		return
	}

	for i := range segments {
		if ctx.Err() != nil {
			return
		}
		segment := &segments[i]

		var criteria models.SegmentCriteria
		if len(segment.Criteria) > 0 {
			if err := json.Unmarshal(segment.Criteria, &criteria); err != nil {
				log.Printf("[SegmentRefresh] bad criteria on segment %s: %v", segment.ID, err)
				continue
			}
		}

		customers, err := c.Directory.Resolve(segment.ShopDomain, criteria)
		if err != nil {
			log.Printf("[SegmentRefresh] directory failed for segment %s: %v", segment.ID, err)
			continue
		}

		consenting := int64(0)
		for _, customer := range customers {
			if customer.AcceptsMarketing {
				consenting++
			}
		}

		now := time.Now()
		segment.ResolvedCustomerCount = consenting
		segment.LastResolvedAt = &now
		if err := c.Segments.Save(segment); err != nil {
			log.Printf("[SegmentRefresh] failed to save segment %s: %v", segment.ID, err)
		}
	}
}

// PollSegments refreshes all segment estimates on a fixed interval until the
// context is cancelled.
func PollSegments(ctx context.Context, client *SegmentRefreshClient, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	client.RefreshAll(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("[SegmentRefresh] stopping")
			return
		case <-ticker.C:
			client.RefreshAll(ctx)
		}
	}
}
