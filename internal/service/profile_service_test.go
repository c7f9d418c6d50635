package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/boplan/boplan-backend/internal/calculation"
	"github.com/boplan/boplan-backend/internal/domain"
	"github.com/boplan/boplan-backend/internal/testutil"
)

func testInput() domain.CalculationInput {
	net := decimal.NewFromInt(45000)
	return domain.CalculationInput{
		NetMonthlyIncome: &net,
		Loans: []domain.Loan{
			{
				ID:                 "loan-1",
				Name:               "Bolån",
				Principal:          decimal.NewFromInt(2000000),
				AnnualInterestRate: decimal.NewFromFloat(3.5),
				AmortizationRate:   decimal.NewFromInt(2),
				RateType:           domain.RateTypeVariable,
			},
		},
	}
}

func newTestProfileService() (*ProfileService, *testutil.MockProfileRepository, *testutil.MockEventPublisher) {
	repo := testutil.NewMockProfileRepository()
	publisher := testutil.NewMockEventPublisher()
	notifier := NewRecalcNotifierWithDelay(calculation.NewEngine(), publisher, 0)
	return NewProfileService(repo, publisher, notifier), repo, publisher
}

func TestProfileCreate_Success(t *testing.T) {
	svc, repo, publisher := newTestProfileService()
	userID := uuid.New()

	profile, err := svc.Create(userID, "  Vårt hus  ", testInput())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if profile.Name != "Vårt hus" {
		t.Errorf("Expected trimmed name 'Vårt hus', got %q", profile.Name)
	}
	if profile.ID == uuid.Nil {
		t.Error("Expected profile ID to be assigned")
	}
	if len(repo.Profiles) != 1 {
		t.Errorf("Expected 1 stored profile, got %d", len(repo.Profiles))
	}

	types := publisher.EventTypes()
	if len(types) == 0 || types[0] != "profile.created" {
		t.Errorf("Expected profile.created event, got %v", types)
	}
}

func TestProfileCreate_EmptyName(t *testing.T) {
	svc, _, _ := newTestProfileService()

	_, err := svc.Create(uuid.New(), "   ", testInput())
	if err != domain.ErrNameRequired {
		t.Errorf("Expected ErrNameRequired, got %v", err)
	}
}

func TestProfileCreate_NameTooLong(t *testing.T) {
	svc, _, _ := newTestProfileService()

	_, err := svc.Create(uuid.New(), strings.Repeat("x", domain.MaxProfileNameLength+1), testInput())
	if err != domain.ErrNameTooLong {
		t.Errorf("Expected ErrNameTooLong, got %v", err)
	}
}

func TestProfileCreate_TooManyLoans(t *testing.T) {
	svc, _, _ := newTestProfileService()

	input := testInput()
	loan := input.Loans[0]
	for i := 0; i < domain.MaxLoans; i++ {
		input.Loans = append(input.Loans, loan)
	}

	_, err := svc.Create(uuid.New(), "För många lån", input)
	if err != domain.ErrTooManyLoans {
		t.Errorf("Expected ErrTooManyLoans, got %v", err)
	}
}

func TestProfileGet_WrongUser(t *testing.T) {
	svc, repo, _ := newTestProfileService()
	owner := uuid.New()

	profile := &domain.Profile{ID: uuid.New(), UserID: owner, Name: "Privat", Input: testInput()}
	repo.AddProfile(profile)

	_, err := svc.Get(uuid.New(), profile.ID)
	if err != domain.ErrProfileNotFound {
		t.Errorf("Expected ErrProfileNotFound for non-owner, got %v", err)
	}

	got, err := svc.Get(owner, profile.ID)
	if err != nil {
		t.Fatalf("Expected no error for owner, got %v", err)
	}
	if got.Name != "Privat" {
		t.Errorf("Expected name 'Privat', got %q", got.Name)
	}
}

func TestProfileUpdate_Success(t *testing.T) {
	svc, repo, publisher := newTestProfileService()
	userID := uuid.New()

	profile := &domain.Profile{ID: uuid.New(), UserID: userID, Name: "Gammalt namn", Input: testInput()}
	repo.AddProfile(profile)

	updated, err := svc.Update(userID, profile.ID, "Nytt namn", testInput())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Name != "Nytt namn" {
		t.Errorf("Expected name 'Nytt namn', got %q", updated.Name)
	}

	types := publisher.EventTypes()
	if len(types) == 0 || types[0] != "profile.updated" {
		t.Errorf("Expected profile.updated event, got %v", types)
	}
}

func TestProfileUpdate_NotFound(t *testing.T) {
	svc, _, _ := newTestProfileService()

	_, err := svc.Update(uuid.New(), uuid.New(), "Namn", testInput())
	if err != domain.ErrProfileNotFound {
		t.Errorf("Expected ErrProfileNotFound, got %v", err)
	}
}

func TestProfileDelete_Success(t *testing.T) {
	svc, repo, publisher := newTestProfileService()
	userID := uuid.New()

	profile := &domain.Profile{ID: uuid.New(), UserID: userID, Name: "Raderas", Input: testInput()}
	repo.AddProfile(profile)

	if err := svc.Delete(userID, profile.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(repo.Profiles) != 0 {
		t.Errorf("Expected profile to be removed, %d remain", len(repo.Profiles))
	}

	types := publisher.EventTypes()
	if len(types) == 0 || types[0] != "profile.deleted" {
		t.Errorf("Expected profile.deleted event, got %v", types)
	}
}

func TestProfileDelete_NotFound(t *testing.T) {
	svc, _, _ := newTestProfileService()

	err := svc.Delete(uuid.New(), uuid.New())
	if err != domain.ErrProfileNotFound {
		t.Errorf("Expected ErrProfileNotFound, got %v", err)
	}
}
