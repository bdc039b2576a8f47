// Package scheduler runs periodic report generation on cron schedules.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/momentumhq/momentum-backend/internal/config"
	"github.com/momentumhq/momentum-backend/internal/logger"
	"github.com/momentumhq/momentum-backend/internal/models"
	"github.com/momentumhq/momentum-backend/internal/service"
)

// Scheduler generates weekly and monthly reports on configured cron specs.
// Generation failures are logged and the schedule keeps running.
type Scheduler struct {
	cron          *cron.Cron
	reportService service.ReportService
	cfg           config.SchedulerConfig
}

// New creates a scheduler; call Start to register jobs and begin running.
func New(cfg config.SchedulerConfig, reportService service.ReportService) *Scheduler {
	return &Scheduler{
		cron:          cron.New(),
		reportService: reportService,
		cfg:           cfg,
	}
}

// Start registers the weekly and monthly jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.WeeklySpec, func() {
		s.generate(models.PeriodWeekly)
	}); err != nil {
		return fmt.Errorf("failed to add weekly report job: %w", err)
	}

	if _, err := s.cron.AddFunc(s.cfg.MonthlySpec, func() {
		s.generate(models.PeriodMonthly)
	}); err != nil {
		return fmt.Errorf("failed to add monthly report job: %w", err)
	}

	s.cron.Start()

	logger.Default().Info("report scheduler started",
		logger.String("weekly_spec", s.cfg.WeeklySpec),
		logger.String("monthly_spec", s.cfg.MonthlySpec),
	)

	return nil
}

// Stop stops the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Default().Info("report scheduler stopped")
}

func (s *Scheduler) generate(period models.ReportPeriod) {
	ctx := context.Background()

	report, err := s.reportService.Generate(ctx, &models.GenerateReportRequest{Period: period})
	if err != nil {
		logger.Default().Error("scheduled report generation failed",
			logger.Err(err),
			logger.String("period", string(period)),
		)
		return
	}

	logger.Default().Info("scheduled report generated",
		logger.String("report_id", report.ID),
		logger.String("period", string(period)),
		logger.String("start_date", report.StartDate.String()),
		logger.String("end_date", report.EndDate.String()),
	)
}
