package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boplan/boplan-backend/internal/calculation"
	"github.com/boplan/boplan-backend/internal/service"
)

func newCalculateHandler() *CalculateHandler {
	return NewCalculateHandler(service.NewBudgetService(calculation.NewEngine()))
}

func TestPublicCalculate_Success(t *testing.T) {
	e := echo.New()
	handler := newCalculateHandler()

	reqBody := `{
		"income": 35000,
		"loans": [
			{"name": "Bottenlån", "principal": 2500000, "annualInterestRate": 4.2, "amortizationRate": 2}
		]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.PublicCalculate(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var response PublicCalculateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	assert.InDelta(t, 8750.0, response.MonthlyInterest, 1e-6)
	assert.InDelta(t, 4166.666666666667, response.MonthlyAmortization, 1e-6)
	assert.InDelta(t, 12916.666666666666, response.TotalMonthlyCost, 1e-6)

	require.NotNil(t, response.IncomeShare)
	assert.InDelta(t, 0.3690476190476191, *response.IncomeShare, 1e-9)

	require.Len(t, response.Loans, 1)
	assert.Equal(t, "Bottenlån", response.Loans[0].Name)
}

func TestPublicCalculate_NoIncome(t *testing.T) {
	e := echo.New()
	handler := newCalculateHandler()

	reqBody := `{"loans": [{"principal": 1000000, "annualInterestRate": 4, "amortizationRate": 1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.PublicCalculate(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var response PublicCalculateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	// Unknown income: the share is absent, never zero
	assert.Nil(t, response.IncomeShare)
}

func TestPublicCalculate_NoLoans(t *testing.T) {
	e := echo.New()
	handler := newCalculateHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(`{"loans": []}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.PublicCalculate(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var problem ProblemDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, ErrorTypeUnprocessable, problem.Type)
}

func TestPublicCalculate_InvalidBody(t *testing.T) {
	e := echo.New()
	handler := newCalculateHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.PublicCalculate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalculate_FullInput(t *testing.T) {
	e := echo.New()
	handler := newCalculateHandler()

	reqBody := `{
		"persons": [
			{"id": "p1", "name": "Anna", "grossMonthlyIncome": 45000, "taxTable": 31}
		],
		"loans": [
			{"id": "l1", "name": "Bolån", "principal": 2500000, "annualInterestRate": 4, "amortizationRate": 2, "rateType": "variable"}
		],
		"propertyValue": 4000000,
		"forecastYears": 10
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/budget/calculate", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Calculate(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var response map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	assert.Contains(t, response, "snapshot")
	assert.Contains(t, response, "amortizationRequirement")
	assert.Contains(t, response, "forecastRows")
}

func TestCalculate_TooManyLoans(t *testing.T) {
	e := echo.New()
	handler := newCalculateHandler()

	loans := make([]string, 6)
	for i := range loans {
		loans[i] = `{"id": "l", "name": "Lån", "principal": 100000, "annualInterestRate": 3, "amortizationRate": 1, "rateType": "variable"}`
	}
	reqBody := `{"loans": [` + strings.Join(loans, ",") + `]}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/budget/calculate", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Calculate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
