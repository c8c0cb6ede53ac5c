package service

import (
	"context"
	"log/slog"
	"time"

	"CivicConnectAPI/ent"
	"CivicConnectAPI/ent/report"
	"CivicConnectAPI/internal/config"
	"CivicConnectAPI/internal/constant"
	"CivicConnectAPI/internal/helper"
	"CivicConnectAPI/internal/model"

	"github.com/go-playground/validator/v10"
)

// ReportQueryService serves the public map view. Results are capped and
// ranked by community interest (upvotes), with recency as tiebreaker.
type ReportQueryService struct {
	client    *ent.Client
	config    *config.AppConfig
	validator *validator.Validate
}

func NewReportQueryService(client *ent.Client, cfg *config.AppConfig, validate *validator.Validate) *ReportQueryService {
	return &ReportQueryService{
		client:    client,
		config:    cfg,
		validator: validate,
	}
}

// PublicReports lists reports for the map. Without an explicit status
// filter, terminal reports (resolved, rejected) are excluded so the map
// shows open issues. Status "all" disables status filtering entirely.
func (s *ReportQueryService) PublicReports(ctx context.Context, request *model.PublicListRequest) ([]model.PublicReportDTO, error) {
	if err := s.validator.Struct(request); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.NewBadRequestError("")
	}

	query := s.client.Report.Query()

	switch request.Status {
	case "":
		query.Where(report.StatusNotIn(report.StatusResolved, report.StatusRejected))
	case "all":
	default:
		if !isValidStatus(request.Status) {
			return nil, helper.NewBadRequestError("Invalid status filter")
		}
		query.Where(report.StatusEQ(report.Status(request.Status)))
	}

	if request.Category != "" {
		query.Where(report.CategoryEQ(report.Category(request.Category)))
	}

	if request.DateFrom != "" {
		from, err := parseDateParam(request.DateFrom, false)
		if err != nil {
			return nil, helper.NewBadRequestError("Invalid dateFrom")
		}
		query.Where(report.CreatedAtGTE(from))
	}
	if request.DateTo != "" {
		to, err := parseDateParam(request.DateTo, true)
		if err != nil {
			return nil, helper.NewBadRequestError("Invalid dateTo")
		}
		query.Where(report.CreatedAtLTE(to))
	}

	if request.Latitude != nil && request.Longitude != nil {
		query.Where(
			report.LatitudeGTE(*request.Latitude-constant.BoundingBoxDelta),
			report.LatitudeLTE(*request.Latitude+constant.BoundingBoxDelta),
			report.LongitudeGTE(*request.Longitude-constant.BoundingBoxDelta),
			report.LongitudeLTE(*request.Longitude+constant.BoundingBoxDelta),
		)
	}

	entities, err := query.
		Order(ent.Desc(report.FieldUpvoteCount), ent.Desc(report.FieldCreatedAt)).
		Limit(constant.PublicListLimit).
		All(ctx)
	if err != nil {
		slog.Error("Failed to list public reports", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	reports := make([]model.PublicReportDTO, 0, len(entities))
	for _, entity := range entities {
		reports = append(reports, toPublicReportDTO(entity))
	}
	return reports, nil
}

func isValidStatus(status string) bool {
	for _, known := range constant.ReportStatuses {
		if status == known {
			return true
		}
	}
	return false
}

// parseDateParam accepts RFC 3339 timestamps or bare dates. A bare date
// used as an upper bound covers the whole day.
func parseDateParam(value string, endOfDay bool) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		parsed = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	return parsed, nil
}
