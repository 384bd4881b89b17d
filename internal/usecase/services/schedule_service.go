package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/thiagomes07/inovacamp/internal/domain"
)

// ScheduleService generates annuity repayment plans: equal monthly payments
// covering interest plus principal, on a fixed 30-day cadence from
// disbursement.
type ScheduleService struct{}

func NewScheduleService() *ScheduleService {
	return &ScheduleService{}
}

const installmentInterval = 30 * 24 * time.Hour

var one = decimal.NewFromInt(1)

// InstallmentAmount computes the fixed payment
// P * i * (1+i)^n / ((1+i)^n - 1) with i the monthly rate derived from the
// annual percentage rate, rounded half away from zero to 2 places. A zero
// rate degenerates to principal / n.
func (s *ScheduleService) InstallmentAmount(principal decimal.Decimal, annualRate decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths <= 0 {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(termMonths))

	monthly := annualRate.Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(12))
	if monthly.IsZero() {
		return principal.Div(n).Round(2)
	}

	factor := one.Add(monthly).Pow(n)
	payment := principal.Mul(monthly).Mul(factor).Div(factor.Sub(one))
	return payment.Round(2)
}

// Build materializes the plan for a disbursed loan. Due dates land every 30
// days after disbursement, not on calendar-month boundaries.
func (s *ScheduleService) Build(loanID string, principal decimal.Decimal, annualRate decimal.Decimal, termMonths int, disbursedAt time.Time) []domain.Installment {
	amount := s.InstallmentAmount(principal, annualRate, termMonths)

	installments := make([]domain.Installment, 0, termMonths)
	for number := 1; number <= termMonths; number++ {
		installments = append(installments, domain.Installment{
			ID:         uuid.NewString(),
			LoanID:     loanID,
			Number:     number,
			AmountDue:  amount,
			AmountPaid: decimal.Zero,
			DueDate:    disbursedAt.Add(time.Duration(number) * installmentInterval),
			Status:     domain.InstallmentStatusPending,
		})
	}
	return installments
}
