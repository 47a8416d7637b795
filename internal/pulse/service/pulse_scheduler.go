package service

import (
	"context"
	"errors"
	"fmt"

	"golang-overlord-pulse/internal/pulse/dto"
	"golang-overlord-pulse/pkg/logger"

	"github.com/robfig/cron/v3"
)

// PulseScheduler triggers the daily ingestion run on an internal cron
// cadence. It is optional: with an empty cron spec the service relies
// entirely on the external HTTP trigger.
type PulseScheduler interface {
	Start(ctx context.Context) error
}

// NewPulseScheduler creates a new cron-backed pulse scheduler.
func NewPulseScheduler(jobSvc PulseJobService, log *logger.Logger, cronSpec string) PulseScheduler {
	return &pulseScheduler{
		jobSvc:   jobSvc,
		logger:   log,
		cronSpec: cronSpec,
		cron:     cron.New(),
	}
}

type pulseScheduler struct {
	jobSvc   PulseJobService
	logger   *logger.Logger
	cronSpec string
	cron     *cron.Cron
}

// Start registers the cron entry and runs until the context is canceled.
func (s *pulseScheduler) Start(ctx context.Context) error {
	if s.cronSpec == "" {
		s.logger.Info("Internal pulse scheduler disabled, relying on external trigger")
		return nil
	}

	_, err := s.cron.AddFunc(s.cronSpec, func() {
		s.runOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid cron spec %q: %w", s.cronSpec, err)
	}

	s.cron.Start()
	s.logger.Info("Internal pulse scheduler started", logger.StringField("cron_spec", s.cronSpec))

	go func() {
		<-ctx.Done()
		s.logger.Info("Pulse scheduler stopping")
		<-s.cron.Stop().Done()
	}()

	return nil
}

func (s *pulseScheduler) runOnce(ctx context.Context) {
	result, err := s.jobSvc.RunExclusive(ctx)
	if errors.Is(err, dto.ErrRunInProgress) {
		s.logger.Warn("Skipping scheduled pulse run, another run is in progress")
		return
	}
	if err != nil {
		s.logger.Error("Scheduled pulse run failed", logger.ErrorField(err))
		return
	}
	s.logger.Info("Scheduled pulse run finished",
		logger.StringField("status", result.Status),
		logger.IntField("results", len(result.Results)),
		logger.IntField("errors", len(result.Errors)),
	)
}
