package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/thiagomes07/inovacamp/internal/logger"
	"github.com/thiagomes07/inovacamp/internal/usecase/service_interfaces"
)

// OverdueSweep periodically flips pending installments past their due date to
// overdue.
type OverdueSweep struct {
	cron  *cron.Cron
	loans service_interfaces.LoanService
}

func NewOverdueSweep(loans service_interfaces.LoanService, spec string) (*OverdueSweep, error) {
	sweep := &OverdueSweep{
		cron:  cron.New(),
		loans: loans,
	}
	if _, err := sweep.cron.AddFunc(spec, sweep.run); err != nil {
		return nil, fmt.Errorf("schedule overdue sweep %q: %w", spec, err)
	}
	return sweep, nil
}

func (s *OverdueSweep) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := s.loans.MarkOverdue(ctx); err != nil {
		logger.Error("overdue sweep run failed", err, nil)
	}
}

func (s *OverdueSweep) Start() {
	s.cron.Start()
}

// Stop halts scheduling and returns a context that is done once any running
// sweep finishes.
func (s *OverdueSweep) Stop() context.Context {
	return s.cron.Stop()
}
