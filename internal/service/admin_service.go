package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"CivicConnectAPI/ent"
	"CivicConnectAPI/ent/report"
	"CivicConnectAPI/ent/statuschange"
	"CivicConnectAPI/internal/config"
	"CivicConnectAPI/internal/constant"
	"CivicConnectAPI/internal/helper"
	"CivicConnectAPI/internal/mail"
	"CivicConnectAPI/internal/model"
	"CivicConnectAPI/internal/websocket"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type AdminService struct {
	client    *ent.Client
	config    *config.AppConfig
	validator *validator.Validate
	mailer    *mail.Mailer
	hub       *websocket.Hub
}

func NewAdminService(
	client *ent.Client,
	cfg *config.AppConfig,
	validate *validator.Validate,
	mailer *mail.Mailer,
	hub *websocket.Hub,
) *AdminService {
	return &AdminService{
		client:    client,
		config:    cfg,
		validator: validate,
		mailer:    mailer,
		hub:       hub,
	}
}

// ListReports pages through all reports for the dashboard. The status
// filter accepts a "!" prefix for negation, e.g. "!resolved" for every
// report that is not resolved.
func (s *AdminService) ListReports(ctx context.Context, request *model.AdminListReportsRequest) ([]model.AdminReportDTO, helper.PaginationMeta, error) {
	if err := s.validator.Struct(request); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.PaginationMeta{}, helper.NewBadRequestError("")
	}

	page := request.Page
	if page < 1 {
		page = 1
	}
	limit := request.Limit
	if limit < 1 {
		limit = constant.AdminDefaultPageSize
	}

	query := s.client.Report.Query()

	if request.Status != "" && request.Status != "all" {
		value, negated := strings.CutPrefix(request.Status, "!")
		if !isValidStatus(value) {
			return nil, helper.PaginationMeta{}, helper.NewBadRequestError("Invalid status filter")
		}
		if negated {
			query.Where(report.StatusNEQ(report.Status(value)))
		} else {
			query.Where(report.StatusEQ(report.Status(value)))
		}
	}

	if request.Category != "" {
		query.Where(report.CategoryEQ(report.Category(request.Category)))
	}

	if request.DateFrom != "" {
		from, err := parseDateParam(request.DateFrom, false)
		if err != nil {
			return nil, helper.PaginationMeta{}, helper.NewBadRequestError("Invalid dateFrom")
		}
		query.Where(report.CreatedAtGTE(from))
	}
	if request.DateTo != "" {
		to, err := parseDateParam(request.DateTo, true)
		if err != nil {
			return nil, helper.PaginationMeta{}, helper.NewBadRequestError("Invalid dateTo")
		}
		query.Where(report.CreatedAtLTE(to))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		slog.Error("Failed to count reports", "error", err)
		return nil, helper.PaginationMeta{}, helper.NewInternalServerError("")
	}

	entities, err := query.
		WithReporter().
		WithStatusChanges(func(q *ent.StatusChangeQuery) {
			q.Order(ent.Asc(statuschange.FieldChangedAt))
		}).
		Order(ent.Desc(report.FieldCreatedAt)).
		Offset((page - 1) * limit).
		Limit(limit).
		All(ctx)
	if err != nil {
		slog.Error("Failed to list reports", "error", err)
		return nil, helper.PaginationMeta{}, helper.NewInternalServerError("")
	}

	reports := make([]model.AdminReportDTO, 0, len(entities))
	for _, entity := range entities {
		reports = append(reports, toAdminReportDTO(entity))
	}
	return reports, helper.NewPaginationMeta(page, limit, total), nil
}

// UpdateStatus transitions a report and appends the audit entry in the
// same transaction. The reporter is notified after commit.
func (s *AdminService) UpdateStatus(ctx context.Context, principal *model.UserDTO, reportID uuid.UUID, request *model.UpdateStatusRequest) (*model.AdminReportDTO, error) {
	if err := s.validator.Struct(request); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.NewBadRequestError("")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		slog.Error("Failed to open transaction", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	updated, err := s.updateStatusTx(ctx, tx, principal.ID, reportID, request)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			slog.Error("Failed to rollback transaction", "error", rerr)
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		slog.Error("Failed to commit status update", "error", err, "reportID", reportID)
		return nil, helper.NewInternalServerError("")
	}

	slog.Info("Report status updated",
		"reportID", reportID,
		"status", request.Status,
		"adminID", principal.ID,
	)

	if s.mailer != nil {
		s.mailer.SendStatusChanged(updated.ReporterEmail, updated.ReporterName, updated, request.Notes)
	}
	if s.hub != nil {
		s.hub.Broadcast(websocket.EventReportStatus, toPublicReportDTO(updated))
	}

	entity, err := s.client.Report.Query().
		Where(report.IDEQ(reportID)).
		WithReporter().
		WithStatusChanges(func(q *ent.StatusChangeQuery) {
			q.Order(ent.Asc(statuschange.FieldChangedAt))
		}).
		Only(ctx)
	if err != nil {
		slog.Error("Failed to reload report", "error", err, "reportID", reportID)
		return nil, helper.NewInternalServerError("")
	}

	dto := toAdminReportDTO(entity)
	return &dto, nil
}

func (s *AdminService) updateStatusTx(ctx context.Context, tx *ent.Tx, adminID, reportID uuid.UUID, request *model.UpdateStatusRequest) (*ent.Report, error) {
	entity, err := tx.Report.Query().Where(report.IDEQ(reportID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewNotFoundError("Report not found")
		}
		slog.Error("Failed to load report", "error", err, "reportID", reportID)
		return nil, helper.NewInternalServerError("")
	}

	if _, err := tx.StatusChange.Create().
		SetReportID(reportID).
		SetStatus(statuschange.Status(request.Status)).
		SetChangedBy(adminID).
		SetNotes(request.Notes).
		Save(ctx); err != nil {
		slog.Error("Failed to record status change", "error", err, "reportID", reportID)
		return nil, helper.NewInternalServerError("")
	}

	updated, err := entity.Update().
		SetStatus(report.Status(request.Status)).
		SetUpdatedBy(adminID).
		Save(ctx)
	if err != nil {
		slog.Error("Failed to update report status", "error", err, "reportID", reportID)
		return nil, helper.NewInternalServerError("")
	}
	return updated, nil
}

// Stats aggregates dashboard counters. The aggregates run as separate
// queries without a shared snapshot; totals may be off by concurrent
// writes, which is acceptable for a dashboard.
func (s *AdminService) Stats(ctx context.Context) (*model.StatsResponse, error) {
	statusCounts, err := s.groupCount(ctx, report.FieldStatus)
	if err != nil {
		return nil, err
	}
	categoryCounts, err := s.groupCount(ctx, report.FieldCategory)
	if err != nil {
		return nil, err
	}
	urgencyCounts, err := s.groupCount(ctx, report.FieldUrgency)
	if err != nil {
		return nil, err
	}

	total, err := s.client.Report.Query().Count(ctx)
	if err != nil {
		slog.Error("Failed to count reports", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	recent, err := s.recentActivity(ctx)
	if err != nil {
		return nil, err
	}

	return &model.StatsResponse{
		StatusCounts:   statusCounts,
		CategoryCounts: categoryCounts,
		UrgencyCounts:  urgencyCounts,
		RecentActivity: recent,
		TotalReports:   total,
	}, nil
}

func (s *AdminService) groupCount(ctx context.Context, field string) (map[string]int, error) {
	var rows []struct {
		Status   string `json:"status"`
		Category string `json:"category"`
		Urgency  string `json:"urgency"`
		Count    int    `json:"count"`
	}

	err := s.client.Report.Query().
		GroupBy(field).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		slog.Error("Failed to aggregate reports", "error", err, "field", field)
		return nil, helper.NewInternalServerError("")
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		switch field {
		case report.FieldStatus:
			counts[row.Status] = row.Count
		case report.FieldCategory:
			counts[row.Category] = row.Count
		case report.FieldUrgency:
			counts[row.Urgency] = row.Count
		}
	}
	return counts, nil
}

// recentActivity buckets the last week of submissions per UTC day.
// Days with no submissions are present with a zero count.
func (s *AdminService) recentActivity(ctx context.Context) ([]model.DayCountDTO, error) {
	now := time.Now().UTC()
	windowStart := now.AddDate(0, 0, -(constant.StatsWindowDays - 1)).Truncate(24 * time.Hour)

	entities, err := s.client.Report.Query().
		Where(report.CreatedAtGTE(windowStart)).
		Select(report.FieldCreatedAt).
		All(ctx)
	if err != nil {
		slog.Error("Failed to load recent reports", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	counts := make(map[string]int, constant.StatsWindowDays)
	for _, entity := range entities {
		counts[entity.CreatedAt.UTC().Format("2006-01-02")]++
	}

	days := make([]model.DayCountDTO, 0, constant.StatsWindowDays)
	for i := 0; i < constant.StatsWindowDays; i++ {
		date := windowStart.AddDate(0, 0, i).Format("2006-01-02")
		days = append(days, model.DayCountDTO{
			Date:  date,
			Count: counts[date],
		})
	}
	return days, nil
}
