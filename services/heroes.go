package services

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"deliwer-loyalty-system/models"
	"deliwer-loyalty-system/storage"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/datatypes"
)

type HeroService struct {
	Heroes     storage.HeroStore
	Challenges storage.ChallengeStore
	Rewards    storage.RewardStore
}

func NewHeroService(heroes storage.HeroStore, challenges storage.ChallengeStore, rewards storage.RewardStore) *HeroService {
	return &HeroService{Heroes: heroes, Challenges: challenges, Rewards: rewards}
}

// TradeInInput is one trade-in submission from the onboarding flow.
type TradeInInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhoneModel     string `json:"phone_model"`
	PhoneCondition string `json:"phone_condition"`
	DubaiZone      string `json:"dubai_zone"`
	ReferralCode   string `json:"referral_code,omitempty"`
}

// SubmitTradeIn values the device and applies the result to the hero profile
// for the email — creating the profile on first contact, accumulating on
// repeat trades. The referrer's bonus (if a code was supplied) is applied for
// new heroes only.
func (s *HeroService) SubmitTradeIn(input TradeInInput) (*models.Hero, *models.TradeValuation, error) {
	var missing []string
	if strings.TrimSpace(input.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(input.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(input.PhoneModel) == "" {
		missing = append(missing, "phone_model")
	}
	if strings.TrimSpace(input.PhoneCondition) == "" {
		missing = append(missing, "phone_condition")
	}
	if len(missing) > 0 {
		return nil, nil, &models.ValidationError{Missing: missing}
	}

	valuation := ComputeValuation(input.PhoneModel, input.PhoneCondition)

	email := strings.ToLower(strings.TrimSpace(input.Email))
	hero, err := s.Heroes.GetByEmail(email)
	isNew := err == models.ErrNotFound
	if err != nil && !isNew {
		return nil, nil, err
	}

	if isNew {
		hero = &models.Hero{
			ID:           uuid.NewString(),
			Name:         strings.TrimSpace(input.Name),
			Email:        email,
			DubaiZone:    input.DubaiZone,
			ReferralCode: newReferralCode(input.Name),
			IsActive:     true,
		}
	}

	hero.PhoneModel = input.PhoneModel
	hero.PhoneCondition = input.PhoneCondition
	hero.TradeValue += valuation.TradeValue
	hero.Points += valuation.Points
	hero.BottlesPrevented += valuation.BottlesPrevented
	hero.CO2SavedGrams += valuation.CO2SavedGrams
	hero.TradeCount++
	hero.Tier = string(ClassifyHeroTier(hero.Points))

	if isNew {
		if err := s.Heroes.Create(hero); err != nil {
			return nil, nil, err
		}
	} else {
		if err := s.Heroes.Save(hero); err != nil {
			return nil, nil, err
		}
	}

	s.autoAwardBadges(hero)

	if isNew && input.ReferralCode != "" {
		if err := s.ApplyReferralBonus(input.ReferralCode, hero.ID); err != nil {
			// A bad code must not sink the trade-in itself.
			log.Printf("⚠️ referral bonus skipped for %s: %v", input.ReferralCode, err)
		}
	}

	log.Printf("🌊 Trade-in: %s traded %s (%s) → AED %d, %d pts, tier %s",
		hero.Email, valuation.PhoneModel, valuation.PhoneCondition,
		valuation.TradeValue, valuation.Points, hero.Tier)

	return hero, &valuation, nil
}

// ApplyReferralBonus credits the owner of referralCode for referring
// referredHeroID. At most one bonus per referee, and self-referrals are
// ignored. Recomputes the referrer's tier before persisting.
func (s *HeroService) ApplyReferralBonus(referralCode, referredHeroID string) error {
	referrer, err := s.Heroes.GetByReferralCode(referralCode)
	if err != nil {
		return err
	}
	if referrer.ID == referredHeroID {
		return nil
	}

	exists, err := s.Heroes.ReferralExists(referredHeroID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	referrer.Points += ReferralBonusPoints
	referrer.ReferralCount++
	referrer.Tier = string(ClassifyHeroTier(referrer.Points))
	if err := s.Heroes.Save(referrer); err != nil {
		return err
	}

	ref := &models.Referral{
		ID:               uuid.NewString(),
		ReferrerID:       referrer.ID,
		ReferredID:       referredHeroID,
		ReferralCodeUsed: referralCode,
		PointsAwarded:    ReferralBonusPoints,
	}
	if err := s.Heroes.CreateReferral(ref); err != nil {
		return err
	}

	s.autoAwardBadges(referrer)

	log.Printf("🤝 Referral bonus: %s +%d pts (referred %s)", referrer.Email, ReferralBonusPoints, referredHeroID)
	return nil
}

// CompleteChallenge awards a community challenge's points to the hero.
// Completions are append-only and idempotent per challenge.
func (s *HeroService) CompleteChallenge(heroID, challengeID string) (*models.Hero, error) {
	hero, err := s.Heroes.GetByID(heroID)
	if err != nil {
		return nil, err
	}

	challenge, err := s.Challenges.GetByID(challengeID)
	if err != nil {
		return nil, err
	}
	if !challenge.IsActive {
		return nil, &models.InvalidStateError{Entity: "challenge", State: "inactive", Op: "complete"}
	}

	completed := decodeIDList(hero.ChallengesCompleted)
	if containsID(completed, challengeID) {
		return hero, nil
	}

	hero.ChallengesCompleted = encodeIDList(append(completed, challengeID))
	hero.ChallengesDone++
	hero.Points += challenge.Points
	hero.Tier = string(ClassifyHeroTier(hero.Points))
	if err := s.Heroes.Save(hero); err != nil {
		return nil, err
	}

	s.autoAwardBadges(hero)

	log.Printf("🏆 Challenge complete: %s finished %s (+%d pts)", hero.Email, challenge.Code, challenge.Points)
	return hero, nil
}

// ClaimReward records a reward claim. Planet Points are a lifetime score and
// are never deducted; a reward's cost is the points balance required to
// unlock it.
func (s *HeroService) ClaimReward(heroID, rewardID string) (*models.Hero, error) {
	hero, err := s.Heroes.GetByID(heroID)
	if err != nil {
		return nil, err
	}

	reward, err := s.Rewards.GetByID(rewardID)
	if err != nil {
		return nil, err
	}
	if !reward.IsActive {
		return nil, &models.InvalidStateError{Entity: "reward", State: "inactive", Op: "claim"}
	}
	if hero.Points < reward.PointsCost {
		return nil, &models.InvalidStateError{Entity: "reward", State: "locked", Op: "claim"}
	}

	claimed := decodeIDList(hero.RewardsEarned)
	if containsID(claimed, rewardID) {
		return nil, &models.InvalidStateError{Entity: "reward", State: "claimed", Op: "claim"}
	}

	hero.RewardsEarned = encodeIDList(append(claimed, rewardID))
	if err := s.Heroes.Save(hero); err != nil {
		return nil, err
	}

	log.Printf("🎁 Reward claimed: %s claimed %s", hero.Email, reward.Code)
	return hero, nil
}

func (s *HeroService) GetHero(id string) (*models.Hero, []models.BadgeType, error) {
	hero, err := s.Heroes.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	badges, err := s.Heroes.ListBadges(id)
	if err != nil {
		return nil, nil, err
	}
	return hero, badges, nil
}

func (s *HeroService) Leaderboard(limit int) ([]models.Hero, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.Heroes.Leaderboard(limit)
}

func (s *HeroService) CommunityImpact() (*storage.CommunityTotals, error) {
	return s.Heroes.Totals()
}

// autoAwardBadges checks every badge trigger against the hero's counters.
// Fire-and-forget: a badge failure never fails the operation that earned it.
func (s *HeroService) autoAwardBadges(hero *models.Hero) {
	for _, trigger := range models.BadgeTriggers {
		if !meetsThreshold(hero, trigger.Threshold) {
			continue
		}
		bt, err := s.Heroes.BadgeTypeByCode(trigger.Code)
		if err != nil {
			continue
		}
		has, err := s.Heroes.HasBadge(hero.ID, bt.ID)
		if err != nil || has {
			continue
		}
		badge := &models.HeroBadge{
			ID:          uuid.NewString(),
			HeroID:      hero.ID,
			BadgeTypeID: bt.ID,
		}
		if err := s.Heroes.AwardBadge(badge); err != nil {
			log.Printf("⚠️ badge award failed for %s/%s: %v", hero.ID, trigger.Code, err)
			continue
		}
		log.Printf("🎖️ Badge awarded: %s → %s", trigger.Name, hero.Email)
	}
}

func meetsThreshold(hero *models.Hero, req map[string]int64) bool {
	for key, required := range req {
		switch key {
		case "trade_count":
			if hero.TradeCount < required {
				return false
			}
		case "referral_count":
			if hero.ReferralCount < required {
				return false
			}
		case "bottles_prevented":
			if hero.BottlesPrevented < required {
				return false
			}
		case "challenges_done":
			if hero.ChallengesDone < required {
				return false
			}
		case "points":
			if hero.Points < required {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// newReferralCode builds a shareable code like "sarah-al-amiri-1a2b3c".
func newReferralCode(name string) string {
	return fmt.Sprintf("%s-%s", slug.Make(name), uuid.NewString()[:6])
}

func decodeIDList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil
	}
	return ids
}

func encodeIDList(ids []string) datatypes.JSON {
	raw, _ := json.Marshal(ids)
	return raw
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
