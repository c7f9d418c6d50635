package service

import (
	"testing"

	"github.com/boplan/boplan-backend/internal/calculation"
	"github.com/boplan/boplan-backend/internal/domain"
)

func TestBudgetCalculate_Success(t *testing.T) {
	svc := NewBudgetService(calculation.NewEngine())

	result, err := svc.Calculate(testInput())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result == nil {
		t.Fatal("Expected a result")
	}
	if !result.Snapshot.Loans.Totals.Principal.Equal(testInput().Loans[0].Principal) {
		t.Errorf("Expected principal %s, got %s",
			testInput().Loans[0].Principal, result.Snapshot.Loans.Totals.Principal)
	}
}

func TestBudgetCalculate_InsufficientData(t *testing.T) {
	svc := NewBudgetService(calculation.NewEngine())

	_, err := svc.Calculate(domain.CalculationInput{})
	if err != domain.ErrInsufficientData {
		t.Errorf("Expected ErrInsufficientData, got %v", err)
	}
}
