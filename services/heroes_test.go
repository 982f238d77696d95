package services

import (
	"errors"
	"testing"

	"deliwer-loyalty-system/models"
	"deliwer-loyalty-system/storage"
)

type stubHeroStore struct {
	heroesByID    map[string]*models.Hero
	heroesByEmail map[string]*models.Hero
	heroesByCode  map[string]*models.Hero
	referrals     map[string]bool // referredID
	badgeTypes    map[string]*models.BadgeType
	badgesAwarded []models.HeroBadge
	saveCalls     int
}

func newStubHeroStore() *stubHeroStore {
	s := &stubHeroStore{
		heroesByID:    map[string]*models.Hero{},
		heroesByEmail: map[string]*models.Hero{},
		heroesByCode:  map[string]*models.Hero{},
		referrals:     map[string]bool{},
		badgeTypes:    map[string]*models.BadgeType{},
	}
	for _, trigger := range models.BadgeTriggers {
		t := trigger
		t.ID = "bt-" + t.Code
		s.badgeTypes[t.Code] = &t
	}
	return s
}

func (s *stubHeroStore) index(h *models.Hero) {
	s.heroesByID[h.ID] = h
	s.heroesByEmail[h.Email] = h
	if h.ReferralCode != "" {
		s.heroesByCode[h.ReferralCode] = h
	}
}

func (s *stubHeroStore) GetByID(id string) (*models.Hero, error) {
	if h, ok := s.heroesByID[id]; ok {
		return h, nil
	}
	return nil, models.ErrNotFound
}

func (s *stubHeroStore) GetByEmail(email string) (*models.Hero, error) {
	if h, ok := s.heroesByEmail[email]; ok {
		return h, nil
	}
	return nil, models.ErrNotFound
}

func (s *stubHeroStore) GetByReferralCode(code string) (*models.Hero, error) {
	if h, ok := s.heroesByCode[code]; ok {
		return h, nil
	}
	return nil, models.ErrNotFound
}

func (s *stubHeroStore) Create(h *models.Hero) error {
	s.index(h)
	return nil
}

func (s *stubHeroStore) Save(h *models.Hero) error {
	s.saveCalls++
	s.index(h)
	return nil
}

func (s *stubHeroStore) Leaderboard(limit int) ([]models.Hero, error) { return nil, nil }

func (s *stubHeroStore) Totals() (*storage.CommunityTotals, error) {
	return &storage.CommunityTotals{}, nil
}

func (s *stubHeroStore) CreateReferral(ref *models.Referral) error {
	s.referrals[ref.ReferredID] = true
	return nil
}

func (s *stubHeroStore) ReferralExists(referredID string) (bool, error) {
	return s.referrals[referredID], nil
}

func (s *stubHeroStore) BadgeTypeByCode(code string) (*models.BadgeType, error) {
	if bt, ok := s.badgeTypes[code]; ok {
		return bt, nil
	}
	return nil, models.ErrNotFound
}

func (s *stubHeroStore) HasBadge(heroID, badgeTypeID string) (bool, error) {
	for _, b := range s.badgesAwarded {
		if b.HeroID == heroID && b.BadgeTypeID == badgeTypeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubHeroStore) AwardBadge(badge *models.HeroBadge) error {
	s.badgesAwarded = append(s.badgesAwarded, *badge)
	return nil
}

func (s *stubHeroStore) ListBadges(heroID string) ([]models.BadgeType, error) { return nil, nil }

type stubChallengeStore struct {
	challenges map[string]*models.Challenge
}

func (s *stubChallengeStore) GetByID(id string) (*models.Challenge, error) {
	if ch, ok := s.challenges[id]; ok {
		return ch, nil
	}
	return nil, models.ErrNotFound
}

func (s *stubChallengeStore) ListActive() ([]models.Challenge, error) { return nil, nil }

type stubRewardStore struct {
	rewards map[string]*models.Reward
}

func (s *stubRewardStore) GetByID(id string) (*models.Reward, error) {
	if r, ok := s.rewards[id]; ok {
		return r, nil
	}
	return nil, models.ErrNotFound
}

func (s *stubRewardStore) ListActive() ([]models.Reward, error) { return nil, nil }

func newHeroService(store *stubHeroStore) *HeroService {
	return NewHeroService(store,
		&stubChallengeStore{challenges: map[string]*models.Challenge{}},
		&stubRewardStore{rewards: map[string]*models.Reward{}},
	)
}

func TestSubmitTradeInCreatesHero(t *testing.T) {
	store := newStubHeroStore()
	svc := newHeroService(store)

	hero, valuation, err := svc.SubmitTradeIn(TradeInInput{
		Name:           "Sarah Al Amiri",
		Email:          "Sarah@Example.com",
		PhoneModel:     "iPhone 14 Pro",
		PhoneCondition: "excellent",
		DubaiZone:      "Marina",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hero.Email != "sarah@example.com" {
		t.Fatalf("expected normalized email, got %q", hero.Email)
	}
	if hero.TradeValue != 1200 || hero.Points != 220 {
		t.Fatalf("unexpected totals: value=%d points=%d", hero.TradeValue, hero.Points)
	}
	if hero.Tier != string(models.LevelBronze) {
		t.Fatalf("expected Bronze tier at 220 points, got %s", hero.Tier)
	}
	if hero.ReferralCode == "" {
		t.Fatal("expected a referral code")
	}
	if valuation.BottlesPrevented != 2400 {
		t.Fatalf("expected 2400 bottles, got %d", valuation.BottlesPrevented)
	}
}

func TestSubmitTradeInAccumulates(t *testing.T) {
	store := newStubHeroStore()
	svc := newHeroService(store)

	input := TradeInInput{
		Name: "Omar", Email: "omar@example.com",
		PhoneModel: "iPhone 13", PhoneCondition: "fair",
	}
	first, _, err := svc.SubmitTradeIn(input)
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	second, _, err := svc.SubmitTradeIn(input)
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if second.ID != first.ID {
		t.Fatal("expected same hero for same email")
	}
	if second.TradeValue != 2*585 {
		t.Fatalf("expected cumulative trade value %d, got %d", 2*585, second.TradeValue)
	}
	if second.TradeCount != 2 {
		t.Fatalf("expected 2 trades, got %d", second.TradeCount)
	}
}

func TestSubmitTradeInValidation(t *testing.T) {
	svc := newHeroService(newStubHeroStore())

	_, _, err := svc.SubmitTradeIn(TradeInInput{Name: "  "})
	var validation *models.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(validation.Missing) != 4 {
		t.Fatalf("expected 4 missing fields, got %v", validation.Missing)
	}
}

func TestSubmitTradeInAwardsFirstTradeBadge(t *testing.T) {
	store := newStubHeroStore()
	svc := newHeroService(store)

	hero, _, err := svc.SubmitTradeIn(TradeInInput{
		Name: "Lina", Email: "lina@example.com",
		PhoneModel: "iPhone 12", PhoneCondition: "good",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, b := range store.badgesAwarded {
		if b.HeroID == hero.ID && b.BadgeTypeID == "bt-FIRST_TRADE" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected FIRST_TRADE badge on first trade-in")
	}
}

func TestApplyReferralBonusOncePerReferee(t *testing.T) {
	store := newStubHeroStore()
	svc := newHeroService(store)

	referrer := &models.Hero{ID: "h1", Email: "ref@example.com", ReferralCode: "ref-code", Points: 100}
	store.index(referrer)

	if err := svc.ApplyReferralBonus("ref-code", "new-hero"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if referrer.Points != 100+ReferralBonusPoints {
		t.Fatalf("expected %d points, got %d", 100+ReferralBonusPoints, referrer.Points)
	}
	if referrer.ReferralCount != 1 {
		t.Fatalf("expected referral count 1, got %d", referrer.ReferralCount)
	}

	// Second application for the same referee is a no-op.
	if err := svc.ApplyReferralBonus("ref-code", "new-hero"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if referrer.Points != 100+ReferralBonusPoints {
		t.Fatalf("bonus applied twice: %d points", referrer.Points)
	}
}

func TestApplyReferralBonusIgnoresSelfReferral(t *testing.T) {
	store := newStubHeroStore()
	svc := newHeroService(store)

	hero := &models.Hero{ID: "h1", Email: "self@example.com", ReferralCode: "self-code", Points: 10}
	store.index(hero)

	if err := svc.ApplyReferralBonus("self-code", "h1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hero.Points != 10 {
		t.Fatalf("self-referral must not award points, got %d", hero.Points)
	}
}

func TestCompleteChallengeIdempotent(t *testing.T) {
	store := newStubHeroStore()
	svc := newHeroService(store)
	svc.Challenges = &stubChallengeStore{challenges: map[string]*models.Challenge{
		"ch1": {ID: "ch1", Code: "REFILL_WEEK", Points: 75, IsActive: true},
	}}

	hero := &models.Hero{ID: "h1", Email: "x@example.com", Points: 0}
	store.index(hero)

	updated, err := svc.CompleteChallenge("h1", "ch1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Points != 75 || updated.ChallengesDone != 1 {
		t.Fatalf("unexpected state after completion: %+v", updated)
	}

	again, err := svc.CompleteChallenge("h1", "ch1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Points != 75 {
		t.Fatalf("repeat completion must not re-award: %d points", again.Points)
	}
}

func TestCompleteChallengeInactive(t *testing.T) {
	store := newStubHeroStore()
	svc := newHeroService(store)
	svc.Challenges = &stubChallengeStore{challenges: map[string]*models.Challenge{
		"ch1": {ID: "ch1", Points: 75, IsActive: false},
	}}
	store.index(&models.Hero{ID: "h1", Email: "x@example.com"})

	_, err := svc.CompleteChallenge("h1", "ch1")
	var invalid *models.InvalidStateError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidStateError, got %v", err)
	}
}

func TestClaimRewardRequiresPoints(t *testing.T) {
	store := newStubHeroStore()
	svc := newHeroService(store)
	svc.Rewards = &stubRewardStore{rewards: map[string]*models.Reward{
		"r1": {ID: "r1", Code: "AQUACAFE_DISCOUNT", PointsCost: 500, IsActive: true},
	}}
	store.index(&models.Hero{ID: "h1", Email: "x@example.com", Points: 100})

	_, err := svc.ClaimReward("h1", "r1")
	var invalid *models.InvalidStateError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidStateError for locked reward, got %v", err)
	}

	// Points are a lifetime score: claiming never deducts.
	store.heroesByID["h1"].Points = 600
	hero, err := svc.ClaimReward("h1", "r1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hero.Points != 600 {
		t.Fatalf("claim must not deduct points, got %d", hero.Points)
	}

	if _, err := svc.ClaimReward("h1", "r1"); err == nil {
		t.Fatal("expected error on double claim")
	}
}
