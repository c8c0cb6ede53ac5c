package mail

import (
	"CivicConnectAPI/ent"
	"CivicConnectAPI/internal/adapter"
	"CivicConnectAPI/internal/config"
	"CivicConnectAPI/internal/helper"
	"embed"
	"fmt"
	"log/slog"
)

//go:embed templates/*.html
var templateFS embed.FS

// Mailer dispatches notification emails. All sends are fire-and-forget
// from the caller's perspective: failures are logged here and never
// returned, so a broken SMTP relay cannot fail a report operation.
type Mailer struct {
	emailAdapter *adapter.EmailAdapter
	frontendURL  string
	async        bool
}

func NewMailer(cfg *config.AppConfig, emailAdapter *adapter.EmailAdapter) *Mailer {
	return &Mailer{
		emailAdapter: emailAdapter,
		frontendURL:  cfg.FrontendURL,
		async:        cfg.SMTPAsync,
	}
}

type welcomeData struct {
	Name        string
	FrontendURL string
}

type reportCreatedData struct {
	Name        string
	ReportID    string
	Title       string
	Category    string
	Urgency     string
	Status      string
	Location    string
	SubmittedAt string
	FrontendURL string
}

type statusChangedData struct {
	Name        string
	ReportID    string
	Title       string
	Category    string
	Status      string
	Message     string
	Notes       string
	Location    string
	SubmittedAt string
	FrontendURL string
}

var statusMessages = map[string]struct {
	Subject string
	Message string
}{
	"pending":     {"Your Report is Under Review", "is now pending review by our team"},
	"in-progress": {"Action Taken on Your Report", "is now being addressed by the concerned authorities"},
	"resolved":    {"Your Report Has Been Resolved", "has been successfully resolved"},
	"rejected":    {"Update Regarding Your Report", "has been reviewed and marked as inaccurate"},
}

func (m *Mailer) SendWelcome(email, name string) {
	m.dispatch(email, "Welcome to Civic Connect!", "templates/welcome.html", welcomeData{
		Name:        name,
		FrontendURL: m.frontendURL,
	})
}

func (m *Mailer) SendReportCreated(email, name string, report *ent.Report) {
	m.dispatch(email, "Your Civic Issue Report Has Been Submitted", "templates/report_created.html", reportCreatedData{
		Name:        name,
		ReportID:    report.ID.String(),
		Title:       report.Title,
		Category:    string(report.Category),
		Urgency:     string(report.Urgency),
		Status:      string(report.Status),
		Location:    fmt.Sprintf("%.6f, %.6f", report.Latitude, report.Longitude),
		SubmittedAt: report.CreatedAt.Format("Jan 2, 2006 15:04 MST"),
		FrontendURL: m.frontendURL,
	})
}

func (m *Mailer) SendStatusChanged(email, name string, report *ent.Report, notes string) {
	info, ok := statusMessages[string(report.Status)]
	if !ok {
		info.Subject = "Status Update on Your Report"
		info.Message = fmt.Sprintf("has been updated to %s", report.Status)
	}

	m.dispatch(email, info.Subject, "templates/status_changed.html", statusChangedData{
		Name:        name,
		ReportID:    report.ID.String(),
		Title:       report.Title,
		Category:    string(report.Category),
		Status:      string(report.Status),
		Message:     info.Message,
		Notes:       notes,
		Location:    fmt.Sprintf("%.6f, %.6f", report.Latitude, report.Longitude),
		SubmittedAt: report.CreatedAt.Format("Jan 2, 2006 15:04 MST"),
		FrontendURL: m.frontendURL,
	})
}

func (m *Mailer) dispatch(to, subject, templateName string, data any) {
	send := func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Panic while sending email", "recover", r, "to", to)
			}
		}()

		body, err := helper.GenerateEmailBody(templateFS, templateName, data)
		if err != nil {
			slog.Error("Failed to render email template", "template", templateName, "error", err)
			return
		}

		if err := m.emailAdapter.Send([]string{to}, subject, body); err != nil {
			slog.Error("Failed to send email", "to", to, "subject", subject, "error", err)
			return
		}

		slog.Info("Email sent", "to", to, "subject", subject)
	}

	if m.async {
		go send()
	} else {
		send()
	}
}
