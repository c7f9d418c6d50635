package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/boplan/boplan-backend/internal/calculation"
	"github.com/boplan/boplan-backend/internal/domain"
	"github.com/boplan/boplan-backend/internal/repository/storage"
)

// ExportURLExpiry is how long a generated download link stays valid
const ExportURLExpiry = 15 * time.Minute

// ExportService generates CSV exports of a profile's budget projection and
// stores them in object storage behind presigned URLs
type ExportService struct {
	profileRepo domain.ProfileRepository
	engine      *calculation.Engine
	exports     storage.ExportRepository
}

// NewExportService creates a new ExportService
func NewExportService(profileRepo domain.ProfileRepository, engine *calculation.Engine, exports storage.ExportRepository) *ExportService {
	return &ExportService{
		profileRepo: profileRepo,
		engine:      engine,
		exports:     exports,
	}
}

// ExportResult describes a generated export
type ExportResult struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ExportCSV calculates the profile's budget, renders the projection as CSV,
// uploads it, and returns a presigned download URL
func (s *ExportService) ExportCSV(ctx context.Context, userID, profileID uuid.UUID) (*ExportResult, error) {
	profile, err := s.profileRepo.GetByID(userID, profileID)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.Calculate(profile.Input)
	if err != nil {
		return nil, err
	}

	data, err := renderCSV(profile, result)
	if err != nil {
		return nil, err
	}

	objectPath := storage.GenerateObjectPath(userID, profileID, "csv")
	if _, err := s.exports.Upload(ctx, objectPath, bytes.NewReader(data), "text/csv", int64(len(data))); err != nil {
		log.Error().Err(err).Str("profile_id", profileID.String()).Msg("Failed to upload export")
		return nil, err
	}

	url, err := s.exports.GeneratePresignedURL(ctx, objectPath, ExportURLExpiry)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		URL:       url,
		ExpiresAt: time.Now().Add(ExportURLExpiry),
	}, nil
}

// renderCSV writes the monthly summary followed by the yearly projections.
// Decimal values are rendered with two decimals, the convention for SEK.
func renderCSV(profile *domain.Profile, result *domain.CalculationResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"profile", profile.Name},
		{"section", "monthly"},
		{"interest", result.Snapshot.Loans.Totals.MonthlyInterest.StringFixed(2)},
		{"amortization", result.Snapshot.Loans.Totals.MonthlyAmortization.StringFixed(2)},
		{"extra_costs", result.Snapshot.ExtraMonthlyTotal.StringFixed(2)},
		{"savings", result.Snapshot.SavingsMonthlyTotal.StringFixed(2)},
		{"combined_plan", result.Snapshot.CombinedMonthlyPlan.StringFixed(2)},
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("writing export: %w", err)
		}
	}

	if len(result.ForecastRows) > 0 {
		if err := w.Write([]string{"section", "loan_forecast"}); err != nil {
			return nil, fmt.Errorf("writing export: %w", err)
		}
		if err := w.Write([]string{"year", "remaining_principal", "loan_to_value"}); err != nil {
			return nil, fmt.Errorf("writing export: %w", err)
		}
		for _, row := range result.ForecastRows {
			ltv := ""
			if row.LoanToValue != nil {
				ltv = row.LoanToValue.StringFixed(4)
			}
			record := []string{
				fmt.Sprintf("%d", row.Year),
				row.RemainingPrincipal.StringFixed(2),
				ltv,
			}
			if err := w.Write(record); err != nil {
				return nil, fmt.Errorf("writing export: %w", err)
			}
		}
	}

	if len(result.SavingsForecastRows) > 0 {
		if err := w.Write([]string{"section", "savings_forecast"}); err != nil {
			return nil, fmt.Errorf("writing export: %w", err)
		}
		if err := w.Write([]string{"year", "balance"}); err != nil {
			return nil, fmt.Errorf("writing export: %w", err)
		}
		for _, row := range result.SavingsForecastRows {
			record := []string{
				fmt.Sprintf("%d", row.Year),
				row.Balance.StringFixed(2),
			}
			if err := w.Write(record); err != nil {
				return nil, fmt.Errorf("writing export: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("writing export: %w", err)
	}
	return buf.Bytes(), nil
}
