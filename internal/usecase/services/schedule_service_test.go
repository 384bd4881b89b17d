package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thiagomes07/inovacamp/internal/domain"
)

func TestInstallmentAmountAnnuity(t *testing.T) {
	svc := NewScheduleService()

	// 12000 over 12 months at 24% a year: monthly rate 2%, fixed payment
	// 1134.71.
	amount := svc.InstallmentAmount(decimal.NewFromInt(12000), decimal.NewFromInt(24), 12)
	assert.Equal(t, "1134.71", amount.StringFixed(2))
}

func TestInstallmentAmountZeroRate(t *testing.T) {
	svc := NewScheduleService()

	amount := svc.InstallmentAmount(decimal.NewFromInt(2400), decimal.Zero, 12)
	assert.Equal(t, "200.00", amount.StringFixed(2))
}

func TestInstallmentAmountZeroTerm(t *testing.T) {
	svc := NewScheduleService()

	assert.True(t, svc.InstallmentAmount(decimal.NewFromInt(1000), decimal.NewFromInt(10), 0).IsZero())
}

func TestBuildScheduleCadenceAndShape(t *testing.T) {
	svc := NewScheduleService()
	disbursedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	installments := svc.Build("loan-1", decimal.NewFromInt(12000), decimal.NewFromInt(24), 12, disbursedAt)
	require.Len(t, installments, 12)

	for i, installment := range installments {
		assert.Equal(t, i+1, installment.Number)
		assert.Equal(t, "loan-1", installment.LoanID)
		assert.Equal(t, "1134.71", installment.AmountDue.StringFixed(2))
		assert.True(t, installment.AmountPaid.IsZero())
		assert.Equal(t, domain.InstallmentStatusPending, installment.Status)
		assert.Equal(t, disbursedAt.Add(time.Duration(i+1)*30*24*time.Hour), installment.DueDate)
	}
}
