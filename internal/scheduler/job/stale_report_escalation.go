package job

import (
	"context"
	"log/slog"
	"time"

	"CivicConnectAPI/ent"
	"CivicConnectAPI/ent/report"
	"CivicConnectAPI/internal/config"
)

// RunStaleReportEscalation bumps high-urgency reports that have sat in
// pending past the configured age to critical priority, so they float
// to the top of the admin dashboard.
func RunStaleReportEscalation(ctx context.Context, client *ent.Client, cfg *config.AppConfig) error {
	ageHours := cfg.EscalationAgeHours
	if ageHours <= 0 {
		ageHours = 72
	}
	cutoff := time.Now().UTC().Add(-time.Duration(ageHours) * time.Hour)

	slog.Info("Running Stale Report Escalation", "cutoff", cutoff)

	escalated, err := client.Report.Update().
		Where(
			report.StatusEQ(report.StatusPending),
			report.UrgencyEQ(report.UrgencyHigh),
			report.PriorityNEQ(report.PriorityCritical),
			report.CreatedAtLT(cutoff),
		).
		SetPriority(report.PriorityCritical).
		Save(ctx)
	if err != nil {
		slog.Error("Failed to escalate stale reports", "error", err)
		return err
	}

	if escalated > 0 {
		slog.Info("Escalated stale reports", "count", escalated)
	}
	return nil
}
