package service

import (
	"context"
	"log/slog"
	"strings"

	"CivicConnectAPI/ent"
	"CivicConnectAPI/ent/report"
	"CivicConnectAPI/ent/statuschange"
	"CivicConnectAPI/ent/upvote"
	"CivicConnectAPI/internal/adapter"
	"CivicConnectAPI/internal/config"
	"CivicConnectAPI/internal/helper"
	"CivicConnectAPI/internal/mail"
	"CivicConnectAPI/internal/model"
	"CivicConnectAPI/internal/websocket"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ReportService struct {
	client    *ent.Client
	config    *config.AppConfig
	validator *validator.Validate
	geocode   *adapter.GeocodeAdapter
	mailer    *mail.Mailer
	hub       *websocket.Hub
}

func NewReportService(
	client *ent.Client,
	cfg *config.AppConfig,
	validate *validator.Validate,
	geocode *adapter.GeocodeAdapter,
	mailer *mail.Mailer,
	hub *websocket.Hub,
) *ReportService {
	return &ReportService{
		client:    client,
		config:    cfg,
		validator: validate,
		geocode:   geocode,
		mailer:    mailer,
		hub:       hub,
	}
}

// CreateReport persists a new report for the authenticated user.
// Reporter identity is always taken from the stored user record, never
// from the request body. Address resolution and the confirmation email
// are best-effort and cannot fail the submission.
func (s *ReportService) CreateReport(ctx context.Context, principal *model.UserDTO, request *model.CreateReportRequest) (*model.ReportDTO, error) {
	if err := s.validator.Struct(request); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.NewBadRequestError("")
	}

	reporter, err := s.client.User.Get(ctx, principal.ID)
	if err != nil {
		slog.Error("Failed to load reporter", "error", err, "userID", principal.ID)
		return nil, helper.NewInternalServerError("")
	}

	var address *string
	if s.geocode != nil {
		resolved, err := s.geocode.Reverse(ctx, *request.Latitude, *request.Longitude)
		if err != nil {
			slog.Warn("Reverse geocoding failed, continuing without address", "error", err)
		} else {
			address = &resolved
		}
	}

	create := s.client.Report.Create().
		SetTitle(strings.TrimSpace(request.Title)).
		SetDescription(strings.TrimSpace(request.Description)).
		SetLatitude(*request.Latitude).
		SetLongitude(*request.Longitude).
		SetNillableAddress(address).
		SetReportedBy(reporter.ID).
		SetReporterEmail(reporter.Email).
		SetReporterName(reporter.Name)

	if request.Category != "" {
		create.SetCategory(report.Category(request.Category))
	}
	if request.Urgency != "" {
		create.SetUrgency(report.Urgency(request.Urgency))
	}
	if len(request.Photos) > 0 {
		create.SetPhotos(request.Photos)
	}

	entity, err := create.Save(ctx)
	if err != nil {
		slog.Error("Failed to create report", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	slog.Info("Report created", "reportID", entity.ID, "userID", reporter.ID, "category", entity.Category)

	if s.mailer != nil {
		s.mailer.SendReportCreated(reporter.Email, reporter.Name, entity)
	}
	if s.hub != nil {
		s.hub.Broadcast(websocket.EventReportCreated, toPublicReportDTO(entity))
	}

	dto := toReportDTO(entity, nil)
	return &dto, nil
}

// UpdateReport applies a partial edit to a report owned by the caller.
// Nil request fields keep their stored values.
func (s *ReportService) UpdateReport(ctx context.Context, principal *model.UserDTO, reportID uuid.UUID, request *model.UpdateReportRequest) (*model.ReportDTO, error) {
	if err := s.validator.Struct(request); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.NewBadRequestError("")
	}

	entity, err := s.client.Report.Get(ctx, reportID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewNotFoundError("Report not found")
		}
		slog.Error("Failed to load report", "error", err, "reportID", reportID)
		return nil, helper.NewInternalServerError("")
	}

	if entity.ReportedBy != principal.ID {
		return nil, helper.NewForbiddenError("You can only edit your own reports")
	}

	update := entity.Update()
	if request.Title != nil {
		update.SetTitle(strings.TrimSpace(*request.Title))
	}
	if request.Description != nil {
		update.SetDescription(strings.TrimSpace(*request.Description))
	}
	if request.Category != nil {
		update.SetCategory(report.Category(*request.Category))
	}
	if request.Urgency != nil {
		update.SetUrgency(report.Urgency(*request.Urgency))
	}

	updated, err := update.Save(ctx)
	if err != nil {
		slog.Error("Failed to update report", "error", err, "reportID", reportID)
		return nil, helper.NewInternalServerError("")
	}

	changes, err := s.statusHistory(ctx, reportID)
	if err != nil {
		return nil, err
	}

	dto := toReportDTO(updated, changes)
	return &dto, nil
}

// ToggleUpvote flips the caller's upvote on a report. The membership
// row and the cached count move in one transaction, so the count always
// equals the number of upvote rows.
func (s *ReportService) ToggleUpvote(ctx context.Context, principal *model.UserDTO, reportID uuid.UUID) (*model.UpvoteResponse, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		slog.Error("Failed to open transaction", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	response, err := s.toggleUpvoteTx(ctx, tx, principal.ID, reportID)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			slog.Error("Failed to rollback transaction", "error", rerr)
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		slog.Error("Failed to commit upvote toggle", "error", err, "reportID", reportID)
		return nil, helper.NewInternalServerError("")
	}
	return response, nil
}

func (s *ReportService) toggleUpvoteTx(ctx context.Context, tx *ent.Tx, userID, reportID uuid.UUID) (*model.UpvoteResponse, error) {
	exists, err := tx.Report.Query().Where(report.IDEQ(reportID)).Exist(ctx)
	if err != nil {
		slog.Error("Failed to check report existence", "error", err, "reportID", reportID)
		return nil, helper.NewInternalServerError("")
	}
	if !exists {
		return nil, helper.NewNotFoundError("Report not found")
	}

	removed, err := tx.Upvote.Delete().
		Where(upvote.ReportIDEQ(reportID), upvote.UserIDEQ(userID)).
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to remove upvote", "error", err, "reportID", reportID)
		return nil, helper.NewInternalServerError("")
	}

	upvoted := removed == 0
	if upvoted {
		if _, err := tx.Upvote.Create().
			SetReportID(reportID).
			SetUserID(userID).
			Save(ctx); err != nil {
			slog.Error("Failed to add upvote", "error", err, "reportID", reportID)
			return nil, helper.NewInternalServerError("")
		}

		if err := tx.Report.UpdateOneID(reportID).AddUpvoteCount(1).Exec(ctx); err != nil {
			slog.Error("Failed to increment upvote count", "error", err, "reportID", reportID)
			return nil, helper.NewInternalServerError("")
		}
	} else {
		// The GT(0) guard keeps the count from going negative if it ever
		// drifted below the true row count.
		if _, err := tx.Report.Update().
			Where(report.IDEQ(reportID), report.UpvoteCountGT(0)).
			AddUpvoteCount(-1).
			Save(ctx); err != nil {
			slog.Error("Failed to decrement upvote count", "error", err, "reportID", reportID)
			return nil, helper.NewInternalServerError("")
		}
	}

	entity, err := tx.Report.Get(ctx, reportID)
	if err != nil {
		slog.Error("Failed to reload report", "error", err, "reportID", reportID)
		return nil, helper.NewInternalServerError("")
	}

	return &model.UpvoteResponse{
		Upvoted:     upvoted,
		UpvoteCount: entity.UpvoteCount,
	}, nil
}

func (s *ReportService) HasUpvoted(ctx context.Context, principal *model.UserDTO, reportID uuid.UUID) (*model.UpvoteStatusResponse, error) {
	exists, err := s.client.Report.Query().Where(report.IDEQ(reportID)).Exist(ctx)
	if err != nil {
		slog.Error("Failed to check report existence", "error", err, "reportID", reportID)
		return nil, helper.NewInternalServerError("")
	}
	if !exists {
		return nil, helper.NewNotFoundError("Report not found")
	}

	upvoted, err := s.client.Upvote.Query().
		Where(upvote.ReportIDEQ(reportID), upvote.UserIDEQ(principal.ID)).
		Exist(ctx)
	if err != nil {
		slog.Error("Failed to check upvote", "error", err, "reportID", reportID)
		return nil, helper.NewInternalServerError("")
	}

	return &model.UpvoteStatusResponse{Upvoted: upvoted}, nil
}

// MyReports lists the caller's own reports, newest first, with full
// status history.
func (s *ReportService) MyReports(ctx context.Context, principal *model.UserDTO) ([]model.ReportDTO, error) {
	entities, err := s.client.Report.Query().
		Where(report.ReportedByEQ(principal.ID)).
		WithStatusChanges(func(q *ent.StatusChangeQuery) {
			q.Order(ent.Asc(statuschange.FieldChangedAt))
		}).
		Order(ent.Desc(report.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		slog.Error("Failed to list reports", "error", err, "userID", principal.ID)
		return nil, helper.NewInternalServerError("")
	}

	reports := make([]model.ReportDTO, 0, len(entities))
	for _, entity := range entities {
		reports = append(reports, toReportDTO(entity, entity.Edges.StatusChanges))
	}
	return reports, nil
}

func (s *ReportService) GetReport(ctx context.Context, reportID uuid.UUID) (*model.ReportDTO, error) {
	entity, err := s.client.Report.Query().
		Where(report.IDEQ(reportID)).
		WithStatusChanges(func(q *ent.StatusChangeQuery) {
			q.Order(ent.Asc(statuschange.FieldChangedAt))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewNotFoundError("Report not found")
		}
		slog.Error("Failed to load report", "error", err, "reportID", reportID)
		return nil, helper.NewInternalServerError("")
	}

	dto := toReportDTO(entity, entity.Edges.StatusChanges)
	return &dto, nil
}

func (s *ReportService) statusHistory(ctx context.Context, reportID uuid.UUID) ([]*ent.StatusChange, error) {
	changes, err := s.client.StatusChange.Query().
		Where(statuschange.ReportIDEQ(reportID)).
		Order(ent.Asc(statuschange.FieldChangedAt)).
		All(ctx)
	if err != nil {
		slog.Error("Failed to load status history", "error", err, "reportID", reportID)
		return nil, helper.NewInternalServerError("")
	}
	return changes, nil
}
