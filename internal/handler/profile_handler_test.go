package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/boplan/boplan-backend/internal/calculation"
	"github.com/boplan/boplan-backend/internal/domain"
	"github.com/boplan/boplan-backend/internal/service"
	"github.com/boplan/boplan-backend/internal/testutil"
)

func newProfileHandler() (*ProfileHandler, *testutil.MockProfileRepository) {
	repo := testutil.NewMockProfileRepository()
	publisher := testutil.NewMockEventPublisher()
	notifier := service.NewRecalcNotifierWithDelay(calculation.NewEngine(), publisher, 0)
	return NewProfileHandler(service.NewProfileService(repo, publisher, notifier)), repo
}

func storedProfile(userID uuid.UUID) *domain.Profile {
	return &domain.Profile{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "Lägenheten",
		Input: domain.CalculationInput{
			Loans: []domain.Loan{
				{
					ID:                 "l1",
					Name:               "Bolån",
					Principal:          decimal.NewFromInt(1500000),
					AnnualInterestRate: decimal.NewFromFloat(3.9),
					AmortizationRate:   decimal.NewFromInt(2),
					RateType:           domain.RateTypeVariable,
				},
			},
		},
	}
}

func TestCreateProfile_Success(t *testing.T) {
	e := echo.New()
	handler, repo := newProfileHandler()
	userID := uuid.New()

	reqBody := `{
		"name": "Huset i Nacka",
		"input": {
			"loans": [
				{"id": "l1", "name": "Bolån", "principal": 2000000, "annualInterestRate": 3.5, "amortizationRate": 2, "rateType": "variable"}
			]
		}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|p1", "p1@example.com", "", "", userID)

	if err := handler.CreateProfile(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(repo.Profiles) != 1 {
		t.Errorf("Expected 1 stored profile, got %d", len(repo.Profiles))
	}
}

func TestCreateProfile_Unauthenticated(t *testing.T) {
	e := echo.New()
	handler, _ := newProfileHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles", strings.NewReader(`{"name": "X"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateProfile(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestCreateProfile_EmptyName(t *testing.T) {
	e := echo.New()
	handler, _ := newProfileHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles", strings.NewReader(`{"name": "  ", "input": {}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|p2", "p2@example.com", "", "", uuid.New())

	if err := handler.CreateProfile(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestGetProfiles_EmptyList(t *testing.T) {
	e := echo.New()
	handler, _ := newProfileHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, "auth0|p3", "p3@example.com", "", "", uuid.New())

	if err := handler.GetProfiles(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	// Empty list renders as [], not null
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("Expected empty JSON array, got %s", rec.Body.String())
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	e := echo.New()
	handler, _ := newProfileHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())
	setupAuthContext(c, "auth0|p4", "p4@example.com", "", "", uuid.New())

	if err := handler.GetProfile(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestGetProfile_InvalidID(t *testing.T) {
	e := echo.New()
	handler, _ := newProfileHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	setupAuthContext(c, "auth0|p5", "p5@example.com", "", "", uuid.New())

	if err := handler.GetProfile(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestUpdateProfile_Success(t *testing.T) {
	e := echo.New()
	handler, repo := newProfileHandler()
	userID := uuid.New()

	profile := storedProfile(userID)
	repo.AddProfile(profile)

	reqBody := `{
		"name": "Lägenheten (uppdaterad)",
		"input": {
			"loans": [
				{"id": "l1", "name": "Bolån", "principal": 1400000, "annualInterestRate": 3.9, "amortizationRate": 2, "rateType": "variable"}
			]
		}
	}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/profiles/"+profile.ID.String(), strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(profile.ID.String())
	setupAuthContext(c, "auth0|p6", "p6@example.com", "", "", userID)

	if err := handler.UpdateProfile(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response domain.Profile
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Name != "Lägenheten (uppdaterad)" {
		t.Errorf("Expected updated name, got %q", response.Name)
	}
}

func TestDeleteProfile_Success(t *testing.T) {
	e := echo.New()
	handler, repo := newProfileHandler()
	userID := uuid.New()

	profile := storedProfile(userID)
	repo.AddProfile(profile)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/profiles/"+profile.ID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(profile.ID.String())
	setupAuthContext(c, "auth0|p7", "p7@example.com", "", "", userID)

	if err := handler.DeleteProfile(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", rec.Code)
	}
	if len(repo.Profiles) != 0 {
		t.Errorf("Expected profile removed, %d remain", len(repo.Profiles))
	}
}

func TestDeleteProfile_WrongUser(t *testing.T) {
	e := echo.New()
	handler, repo := newProfileHandler()

	profile := storedProfile(uuid.New())
	repo.AddProfile(profile)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/profiles/"+profile.ID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(profile.ID.String())
	setupAuthContext(c, "auth0|p8", "p8@example.com", "", "", uuid.New())

	if err := handler.DeleteProfile(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for non-owner, got %d", rec.Code)
	}
	if len(repo.Profiles) != 1 {
		t.Error("Expected profile to remain for its owner")
	}
}
