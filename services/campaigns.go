package services

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"deliwer-loyalty-system/models"
	"deliwer-loyalty-system/storage"

	"github.com/google/uuid"
)

type CampaignService struct {
	Campaigns storage.CampaignStore
	Segments  storage.SegmentStore
	Directory CustomerDirectory
	Mailer    BulkMailer
}

func NewCampaignService(campaigns storage.CampaignStore, segments storage.SegmentStore, directory CustomerDirectory, mailer BulkMailer) *CampaignService {
	return &CampaignService{
		Campaigns: campaigns,
		Segments:  segments,
		Directory: directory,
		Mailer:    mailer,
	}
}

// CreateCampaignInput carries everything a draft needs.
type CreateCampaignInput struct {
	Name         string     `json:"name"`
	Subject      string     `json:"subject"`
	FromEmail    string     `json:"from_email"`
	FromName     string     `json:"from_name"`
	TemplateID   string     `json:"template_id,omitempty"`
	HTMLContent  string     `json:"html_content,omitempty"`
	PlainContent string     `json:"plain_content,omitempty"`
	BannerURL    string     `json:"banner_url,omitempty"`
	SegmentIDs   []string   `json:"segment_ids"`
	ScheduledAt  *time.Time `json:"scheduled_at,omitempty"`
}

// CreateCampaign validates the draft and stores it. Campaigns with a future
// send time start out scheduled, everything else starts as a draft.
func (s *CampaignService) CreateCampaign(identity *models.AdminIdentity, input CreateCampaignInput) (*models.Campaign, error) {
	var missing []string
	if strings.TrimSpace(input.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(input.Subject) == "" {
		missing = append(missing, "subject")
	}
	if strings.TrimSpace(input.FromEmail) == "" {
		missing = append(missing, "from_email")
	}
	if strings.TrimSpace(input.FromName) == "" {
		missing = append(missing, "from_name")
	}
	if len(input.SegmentIDs) == 0 {
		missing = append(missing, "segment_ids")
	}
	if input.TemplateID == "" && input.HTMLContent == "" {
		missing = append(missing, "template_id or html_content")
	}
	if len(missing) > 0 {
		return nil, &models.ValidationError{Missing: missing}
	}

	// Every referenced segment must exist in the caller's shop.
	for _, segmentID := range input.SegmentIDs {
		if _, err := s.Segments.GetByID(identity.ShopDomain, segmentID); err != nil {
			return nil, err
		}
	}

	status := models.CampaignDraft
	if input.ScheduledAt != nil && input.ScheduledAt.After(time.Now()) {
		status = models.CampaignScheduled
	}

	segmentIDs, _ := json.Marshal(input.SegmentIDs)
	campaign := &models.Campaign{
		ID:           uuid.NewString(),
		ShopDomain:   identity.ShopDomain,
		Name:         input.Name,
		Subject:      input.Subject,
		FromEmail:    input.FromEmail,
		FromName:     input.FromName,
		TemplateID:   input.TemplateID,
		HTMLContent:  input.HTMLContent,
		PlainContent: input.PlainContent,
		BannerURL:    input.BannerURL,
		SegmentIDs:   segmentIDs,
		Status:       status,
		ScheduledAt:  input.ScheduledAt,
		CreatedBy:    identity.ID,
	}
	if err := s.Campaigns.Create(campaign); err != nil {
		return nil, err
	}

	log.Printf("📣 Campaign created: %q (%s) by %s, status %s", campaign.Name, campaign.ID, identity.Email, campaign.Status)
	return campaign, nil
}

func (s *CampaignService) ListCampaigns(identity *models.AdminIdentity) ([]models.Campaign, error) {
	return s.Campaigns.List(identity.ShopDomain)
}

func (s *CampaignService) GetCampaign(identity *models.AdminIdentity, id string) (*models.Campaign, error) {
	return s.Campaigns.GetByID(identity.ShopDomain, id)
}

// SendResult is the aggregate tally of one campaign send.
type SendResult struct {
	Sent              int64            `json:"sent"`
	Failed            int64            `json:"failed"`
	FailuresBySegment map[string]int64 `json:"failures_by_segment,omitempty"`
}

// SendCampaign runs the bulk send for a draft or scheduled campaign and
// transitions it to sent.
func (s *CampaignService) SendCampaign(identity *models.AdminIdentity, id string) (*SendResult, error) {
	campaign, err := s.Campaigns.GetByID(identity.ShopDomain, id)
	if err != nil {
		return nil, err
	}
	return s.send(campaign)
}

// send is shared by the explicit operation and the dispatch scheduler.
//
// Failure policy: a segment that cannot be resolved or delivered is counted
// and isolated — the other segments still send. Only when every segment
// fails outright does the whole operation surface an error, leaving the
// campaign sendable for a retry.
func (s *CampaignService) send(campaign *models.Campaign) (*SendResult, error) {
	if !campaign.Sendable() {
		return nil, &models.InvalidStateError{Entity: "campaign", State: string(campaign.Status), Op: "send"}
	}

	var segmentIDs []string
	if err := json.Unmarshal(campaign.SegmentIDs, &segmentIDs); err != nil {
		return nil, err
	}

	result := &SendResult{FailuresBySegment: map[string]int64{}}
	var recipientTotal int64
	segmentsFailed := 0
	var lastErr error

	for _, segmentID := range segmentIDs {
		segment, err := s.Segments.GetByID(campaign.ShopDomain, segmentID)
		if err != nil {
			log.Printf("⚠️ [SEND] segment %s unavailable for campaign %s: %v", segmentID, campaign.ID, err)
			result.FailuresBySegment[segmentID]++
			segmentsFailed++
			lastErr = err
			continue
		}

		var criteria models.SegmentCriteria
		if len(segment.Criteria) > 0 {
			if err := json.Unmarshal(segment.Criteria, &criteria); err != nil {
				log.Printf("⚠️ [SEND] bad criteria on segment %s: %v", segmentID, err)
				result.FailuresBySegment[segmentID]++
				segmentsFailed++
				lastErr = err
				continue
			}
		}

		customers, err := s.Directory.Resolve(campaign.ShopDomain, criteria)
		if err != nil {
			log.Printf("⚠️ [SEND] directory failed for segment %s: %v", segmentID, err)
			result.FailuresBySegment[segmentID]++
			segmentsFailed++
			lastErr = err
			continue
		}

		recipients := consentingOnly(customers)
		recipientTotal += int64(len(recipients))

		for start := 0; start < len(recipients); start += MaxBatchSize {
			end := start + MaxBatchSize
			if end > len(recipients) {
				end = len(recipients)
			}
			sent, failed, err := s.Mailer.SendBatch(EmailBatch{
				FromEmail:    campaign.FromEmail,
				FromName:     campaign.FromName,
				Subject:      campaign.Subject,
				TemplateID:   campaign.TemplateID,
				HTMLContent:  campaign.HTMLContent,
				PlainContent: campaign.PlainContent,
				Recipients:   recipients[start:end],
			})
			result.Sent += int64(sent)
			result.Failed += int64(failed)
			if err != nil {
				log.Printf("⚠️ [SEND] batch failed for segment %s: %v", segmentID, err)
				result.FailuresBySegment[segmentID] += int64(failed)
			}
		}
	}

	// Total failure: nothing resolved anywhere.
	if len(segmentIDs) > 0 && segmentsFailed == len(segmentIDs) {
		return nil, &models.CollaboratorError{Collaborator: "customer directory", Err: lastErr}
	}

	now := time.Now()
	campaign.Status = models.CampaignSent
	campaign.SentAt = &now
	campaign.RecipientCount = recipientTotal
	campaign.SentCount = result.Sent
	campaign.FailedCount = result.Failed
	if len(result.FailuresBySegment) > 0 {
		failures, _ := json.Marshal(result.FailuresBySegment)
		campaign.SegmentFailures = failures
	}
	if err := s.Campaigns.Save(campaign); err != nil {
		return nil, err
	}

	log.Printf("✅ Campaign sent: %q → %d sent, %d failed (%d recipients)",
		campaign.Name, result.Sent, result.Failed, recipientTotal)
	return result, nil
}

// DeleteCampaign cancels a draft or scheduled campaign. Sent campaigns are
// immutable history and cannot be deleted.
func (s *CampaignService) DeleteCampaign(identity *models.AdminIdentity, id string) (*models.Campaign, error) {
	campaign, err := s.Campaigns.GetByID(identity.ShopDomain, id)
	if err != nil {
		return nil, err
	}
	if campaign.IsTerminal() {
		return nil, &models.InvalidStateError{Entity: "campaign", State: string(campaign.Status), Op: "delete"}
	}

	campaign.Status = models.CampaignCancelled
	if err := s.Campaigns.Save(campaign); err != nil {
		return nil, err
	}
	log.Printf("🗑️ Campaign cancelled: %q (%s)", campaign.Name, campaign.ID)
	return campaign, nil
}

// CreateSegmentInput names a structured filter over the customer directory.
type CreateSegmentInput struct {
	Name     string                 `json:"name"`
	Criteria models.SegmentCriteria `json:"criteria"`
}

func (s *CampaignService) CreateSegment(identity *models.AdminIdentity, input CreateSegmentInput) (*models.Segment, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, &models.ValidationError{Missing: []string{"name"}}
	}

	criteria, err := json.Marshal(input.Criteria)
	if err != nil {
		return nil, err
	}
	segment := &models.Segment{
		ID:         uuid.NewString(),
		ShopDomain: identity.ShopDomain,
		Name:       input.Name,
		Criteria:   criteria,
		CreatedBy:  identity.ID,
	}
	if err := s.Segments.Create(segment); err != nil {
		return nil, err
	}
	return segment, nil
}

func (s *CampaignService) ListSegments(identity *models.AdminIdentity) ([]models.Segment, error) {
	return s.Segments.List(identity.ShopDomain)
}

// GetCustomersForSegment releases a segment's resolved customers, and only
// for campaign targeting — any other declared purpose is refused.
func (s *CampaignService) GetCustomersForSegment(identity *models.AdminIdentity, segmentID string, purpose models.DataPurpose) ([]models.Customer, error) {
	if purpose != models.DataPurposeCampaignTargeting {
		return nil, &models.RestrictedDataAccessError{Purpose: purpose}
	}

	segment, err := s.Segments.GetByID(identity.ShopDomain, segmentID)
	if err != nil {
		return nil, err
	}

	var criteria models.SegmentCriteria
	if len(segment.Criteria) > 0 {
		if err := json.Unmarshal(segment.Criteria, &criteria); err != nil {
			return nil, err
		}
	}
	return s.Directory.Resolve(identity.ShopDomain, criteria)
}

func consentingOnly(customers []models.Customer) []models.Customer {
	recipients := make([]models.Customer, 0, len(customers))
	for _, c := range customers {
		if c.AcceptsMarketing && c.Email != "" {
			recipients = append(recipients, c)
		}
	}
	return recipients
}
