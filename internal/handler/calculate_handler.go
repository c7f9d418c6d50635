package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/boplan/boplan-backend/internal/domain"
	"github.com/boplan/boplan-backend/internal/service"
	"github.com/boplan/boplan-backend/internal/util"
)

// CalculateHandler handles budget calculation HTTP requests
type CalculateHandler struct {
	budgetService *service.BudgetService
}

// NewCalculateHandler creates a new CalculateHandler
func NewCalculateHandler(budgetService *service.BudgetService) *CalculateHandler {
	return &CalculateHandler{budgetService: budgetService}
}

// PublicLoanRequest is one loan in the public calculate request
type PublicLoanRequest struct {
	Name               string  `json:"name"`
	Principal          float64 `json:"principal"`
	AnnualInterestRate float64 `json:"annualInterestRate"`
	AmortizationRate   float64 `json:"amortizationRate"`
}

// PublicCalculateRequest is the simplified public calculate request body
type PublicCalculateRequest struct {
	Income *float64            `json:"income,omitempty"`
	Loans  []PublicLoanRequest `json:"loans"`
}

// PublicLoanResponse is one loan's monthly cost breakdown
type PublicLoanResponse struct {
	Name                string  `json:"name"`
	MonthlyInterest     float64 `json:"monthlyInterest"`
	MonthlyAmortization float64 `json:"monthlyAmortization"`
	TotalMonthlyCost    float64 `json:"totalMonthlyCost"`
}

// PublicCalculateResponse is the simplified public calculate response
type PublicCalculateResponse struct {
	Loans               []PublicLoanResponse `json:"loans"`
	MonthlyInterest     float64              `json:"monthlyInterest"`
	MonthlyAmortization float64              `json:"monthlyAmortization"`
	TotalMonthlyCost    float64              `json:"totalMonthlyCost"`
	IncomeShare         *float64             `json:"incomeShare,omitempty"`
}

// PublicCalculate godoc
// @Summary Calculate monthly mortgage costs
// @Description Simplified public calculation: loans in, monthly cost breakdown out
// @Tags calculate
// @Accept json
// @Produce json
// @Param request body PublicCalculateRequest true "Income and loans"
// @Success 200 {object} PublicCalculateResponse
// @Failure 400 {object} ProblemDetails
// @Failure 422 {object} ProblemDetails
// @Failure 429 {object} ProblemDetails
// @Router /calculate [post]
func (h *CalculateHandler) PublicCalculate(c echo.Context) error {
	var req PublicCalculateRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input := domain.CalculationInput{
		NetMonthlyIncome: util.DecimalFromFloatPtr(req.Income),
	}
	for i, loan := range req.Loans {
		name := loan.Name
		if name == "" {
			name = "Lån"
		}
		input.Loans = append(input.Loans, domain.Loan{
			ID:                 fmt.Sprintf("loan-%d", i+1),
			Name:               name,
			Principal:          decimal.NewFromFloat(loan.Principal),
			AnnualInterestRate: decimal.NewFromFloat(loan.AnnualInterestRate),
			AmortizationRate:   decimal.NewFromFloat(loan.AmortizationRate),
			RateType:           domain.RateTypeVariable,
		})
	}

	result, err := h.budgetService.Calculate(input)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientData) {
			return NewUnprocessableError(c, "At least one loan with a positive principal is required")
		}
		return NewInternalError(c, "Calculation failed")
	}

	resp := PublicCalculateResponse{
		MonthlyInterest:     result.Snapshot.Loans.Totals.MonthlyInterest.InexactFloat64(),
		MonthlyAmortization: result.Snapshot.Loans.Totals.MonthlyAmortization.InexactFloat64(),
		TotalMonthlyCost:    result.Snapshot.Loans.Totals.TotalMonthlyCost.InexactFloat64(),
		IncomeShare:         util.Float64PtrFromDecimal(result.Snapshot.IncomeShare),
	}
	for _, loan := range result.Snapshot.Loans.Loans {
		resp.Loans = append(resp.Loans, PublicLoanResponse{
			Name:                loan.Name,
			MonthlyInterest:     loan.MonthlyInterest.InexactFloat64(),
			MonthlyAmortization: loan.MonthlyAmortization.InexactFloat64(),
			TotalMonthlyCost:    loan.TotalMonthlyCost.InexactFloat64(),
		})
	}

	return c.JSON(http.StatusOK, resp)
}

// Calculate godoc
// @Summary Run a full budget calculation
// @Description Full engine input: persons, loans, costs, savings, scenario knobs
// @Tags calculate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.CalculationInput true "Full calculation input"
// @Success 200 {object} domain.CalculationResult
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 422 {object} ProblemDetails
// @Router /budget/calculate [post]
func (h *CalculateHandler) Calculate(c echo.Context) error {
	var input domain.CalculationInput
	if err := c.Bind(&input); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	if len(input.Loans) > domain.MaxLoans {
		return NewValidationError(c, "Too many loans", []ValidationError{
			{Field: "loans", Message: "At most 5 loans are supported"},
		})
	}

	result, err := h.budgetService.Calculate(input)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientData) {
			return NewUnprocessableError(c, "At least one loan with a positive principal is required")
		}
		return NewInternalError(c, "Calculation failed")
	}

	return c.JSON(http.StatusOK, result)
}
