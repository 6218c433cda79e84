package payroll

import (
	"context"
	"log/slog"

	"github.com/hrmslite/hrms-backend-go/internal/domain/payroll"
)

// AutoProcess runs the monthly batch when today is the configured processing
// day. It is scheduled on a daily tick, so on any other day it is a no-op.
// Already-locked payrolls come back as per-employee errors and are left alone.
func (s *PayrollServiceImpl) AutoProcess(ctx context.Context) error {
	cfg, err := s.GetConfig(ctx)
	if err != nil {
		return err
	}

	now := s.now()
	if now.Day() != cfg.PayrollProcessingDay {
		return nil
	}

	resp, err := s.ProcessMonth(ctx, &payroll.ProcessMonthRequest{
		Month:       int(now.Month()),
		Year:        now.Year(),
		ProcessedBy: "System",
	})
	if err != nil {
		return err
	}

	slog.Info("Scheduled payroll run finished",
		"month", int(now.Month()),
		"year", now.Year(),
		"processed", len(resp.Processed),
		"errors", len(resp.Errors),
	)
	return nil
}
