// services/scheduler.go
package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs the dispatch and nudge cycles on a cron timetable, mirroring
// what the HTTP job triggers do.
type Scheduler struct {
	cron     *cron.Cron
	dispatch *DispatchService
	nudge    *NudgeService
	log      *zap.Logger
}

func NewScheduler(dispatch *DispatchService, nudge *NudgeService, log *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		dispatch: dispatch,
		nudge:    nudge,
		log:      log,
	}
}

// Start registers the jobs and starts the cron loop: window dispatch every
// 5 minutes (matching the window tolerance bands), nudges daily at 09:00.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("*/5 * * * *", s.runDispatch); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 9 * * *", s.runNudge); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) runDispatch() {
	ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
	defer cancel()

	summary, err := s.dispatch.RunCycle(ctx)
	if err != nil {
		s.log.Error("scheduled dispatch failed", zap.Error(err))
		return
	}
	s.log.Info("scheduled dispatch finished",
		zap.Int("processed", summary.Processed),
		zap.Int("notifications", summary.Notifications),
	)
}

func (s *Scheduler) runNudge() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	summary, err := s.nudge.RunCycle(ctx)
	if err != nil {
		s.log.Error("scheduled nudge failed", zap.Error(err))
		return
	}
	s.log.Info("scheduled nudge finished", zap.Int("processed", summary.Processed))
}
