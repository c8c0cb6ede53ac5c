package scheduler

import (
	"context"
	"log/slog"

	"CivicConnectAPI/ent"
	"CivicConnectAPI/internal/config"
	"CivicConnectAPI/internal/scheduler/job"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cfg    *config.AppConfig
	client *ent.Client
	cron   *cron.Cron
}

func New(cfg *config.AppConfig, client *ent.Client) *Scheduler {
	return &Scheduler{
		cfg:    cfg,
		client: client,
		cron:   cron.New(),
	}
}

func (s *Scheduler) Start() {
	slog.Info("Starting Scheduler...")

	s.registerJobs()

	s.cron.Start()
	slog.Info("Scheduler started successfully")
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) registerJobs() {
	_, err := s.cron.AddFunc(s.cfg.EscalationCron, func() {
		slog.Info("Starting Stale Report Escalation Job")
		ctx := context.Background()
		if err := job.RunStaleReportEscalation(ctx, s.client, s.cfg); err != nil {
			slog.Error("Stale Report Escalation Job failed", "error", err)
		} else {
			slog.Info("Stale Report Escalation Job completed")
		}
	})
	if err != nil {
		slog.Error("Failed to register Stale Report Escalation job", "error", err)
	} else {
		slog.Info("Registered Stale Report Escalation Job", "schedule", s.cfg.EscalationCron)
	}
}
