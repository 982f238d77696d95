package services

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartDispatchScheduler sends scheduled campaigns once their send time
// passes. Checks every minute.
func (s *CampaignService) StartDispatchScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			due, err := s.Campaigns.DueScheduled(time.Now())
			if err != nil {
				log.Printf("[Scheduler] DB error: %v", err)
				return
			}

			for i := range due {
				campaign := &due[i]
				result, err := s.send(campaign)
				if err != nil {
					// Stays scheduled; next tick retries.
					log.Printf("[Scheduler] Failed to dispatch campaign %s: %v", campaign.ID, err)
					continue
				}
				log.Printf("✅ Auto-dispatched campaign: %s (%d sent, %d failed)",
					campaign.Name, result.Sent, result.Failed)
			}
		}),
	)
}
