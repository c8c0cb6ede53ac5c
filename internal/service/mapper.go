package service

import (
	"time"

	"CivicConnectAPI/ent"
	"CivicConnectAPI/internal/model"
)

func toUserDTO(entity *ent.User) model.UserDTO {
	dto := model.UserDTO{
		ID:    entity.ID,
		Email: entity.Email,
		Name:  entity.Name,
		Role:  string(entity.Role),
	}
	if entity.Picture != nil {
		dto.Picture = *entity.Picture
	}
	return dto
}

func toStatusHistoryDTOs(changes []*ent.StatusChange) []model.StatusHistoryEntryDTO {
	history := make([]model.StatusHistoryEntryDTO, 0, len(changes))
	for _, change := range changes {
		history = append(history, model.StatusHistoryEntryDTO{
			Status:    string(change.Status),
			ChangedBy: change.ChangedBy,
			ChangedAt: change.ChangedAt.Format(time.RFC3339),
			Notes:     change.Notes,
		})
	}
	return history
}

func toReportDTO(entity *ent.Report, changes []*ent.StatusChange) model.ReportDTO {
	photos := entity.Photos
	if photos == nil {
		photos = []string{}
	}

	return model.ReportDTO{
		ID:            entity.ID,
		Title:         entity.Title,
		Description:   entity.Description,
		Category:      string(entity.Category),
		Urgency:       string(entity.Urgency),
		Priority:      string(entity.Priority),
		Latitude:      entity.Latitude,
		Longitude:     entity.Longitude,
		Address:       entity.Address,
		Photos:        photos,
		ReportedBy:    entity.ReportedBy,
		ReporterName:  entity.ReporterName,
		Status:        string(entity.Status),
		UpvoteCount:   entity.UpvoteCount,
		StatusHistory: toStatusHistoryDTOs(changes),
		CreatedAt:     entity.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     entity.UpdatedAt.Format(time.RFC3339),
	}
}

func toPublicReportDTO(entity *ent.Report) model.PublicReportDTO {
	photos := entity.Photos
	if photos == nil {
		photos = []string{}
	}

	return model.PublicReportDTO{
		ID:           entity.ID,
		Title:        entity.Title,
		Description:  entity.Description,
		Category:     string(entity.Category),
		Urgency:      string(entity.Urgency),
		Latitude:     entity.Latitude,
		Longitude:    entity.Longitude,
		Address:      entity.Address,
		Photos:       photos,
		ReporterName: entity.ReporterName,
		Status:       string(entity.Status),
		UpvoteCount:  entity.UpvoteCount,
		CreatedAt:    entity.CreatedAt.Format(time.RFC3339),
	}
}

func toAdminReportDTO(entity *ent.Report) model.AdminReportDTO {
	photos := entity.Photos
	if photos == nil {
		photos = []string{}
	}

	reporter := model.ReporterDTO{
		ID:    entity.ReportedBy,
		Name:  entity.ReporterName,
		Email: entity.ReporterEmail,
	}
	if entity.Edges.Reporter != nil {
		reporter.Name = entity.Edges.Reporter.Name
		reporter.Email = entity.Edges.Reporter.Email
	}

	return model.AdminReportDTO{
		ID:            entity.ID,
		Title:         entity.Title,
		Description:   entity.Description,
		Category:      string(entity.Category),
		Urgency:       string(entity.Urgency),
		Priority:      string(entity.Priority),
		Latitude:      entity.Latitude,
		Longitude:     entity.Longitude,
		Address:       entity.Address,
		Photos:        photos,
		Reporter:      reporter,
		Status:        string(entity.Status),
		UpvoteCount:   entity.UpvoteCount,
		StatusHistory: toStatusHistoryDTOs(entity.Edges.StatusChanges),
		UpdatedBy:     entity.UpdatedBy,
		CreatedAt:     entity.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     entity.UpdatedAt.Format(time.RFC3339),
	}
}
