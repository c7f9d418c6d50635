package service

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/boplan/boplan-backend/internal/calculation"
	"github.com/boplan/boplan-backend/internal/domain"
)

// BudgetService runs budget calculations on top of the calculation engine
type BudgetService struct {
	engine *calculation.Engine
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(engine *calculation.Engine) *BudgetService {
	return &BudgetService{engine: engine}
}

// Calculate runs a full budget calculation for the given input
func (s *BudgetService) Calculate(input domain.CalculationInput) (*domain.CalculationResult, error) {
	result, err := s.engine.Calculate(input)
	if err != nil {
		if !errors.Is(err, domain.ErrInsufficientData) {
			log.Error().Err(err).Msg("Budget calculation failed")
		}
		return nil, err
	}
	return result, nil
}
