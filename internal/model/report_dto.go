package model

import "github.com/google/uuid"

type CreateReportRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"omitempty,report_category"`
	Urgency     string   `json:"urgency" validate:"omitempty,report_urgency"`
	Latitude    *float64 `json:"latitude" validate:"required"`
	Longitude   *float64 `json:"longitude" validate:"required"`
	Photos      []string `json:"photos" validate:"omitempty,max=5,dive,url"`
}

// UpdateReportRequest carries the owner-editable subset. Nil fields are
// left untouched (partial update semantics).
type UpdateReportRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Category    *string `json:"category" validate:"omitempty,report_category"`
	Urgency     *string `json:"urgency" validate:"omitempty,report_urgency"`
}

type StatusHistoryEntryDTO struct {
	Status    string    `json:"status"`
	ChangedBy uuid.UUID `json:"changedBy"`
	ChangedAt string    `json:"changedAt"`
	Notes     string    `json:"notes,omitempty"`
}

type ReportDTO struct {
	ID            uuid.UUID               `json:"id"`
	Title         string                  `json:"title"`
	Description   string                  `json:"description"`
	Category      string                  `json:"category"`
	Urgency       string                  `json:"urgency"`
	Priority      string                  `json:"priority"`
	Latitude      float64                 `json:"latitude"`
	Longitude     float64                 `json:"longitude"`
	Address       *string                 `json:"address,omitempty"`
	Photos        []string                `json:"photos"`
	ReportedBy    uuid.UUID               `json:"reportedBy"`
	ReporterName  string                  `json:"reporterName"`
	Status        string                  `json:"status"`
	UpvoteCount   int                     `json:"upvoteCount"`
	StatusHistory []StatusHistoryEntryDTO `json:"statusHistory"`
	CreatedAt     string                  `json:"createdAt"`
	UpdatedAt     string                  `json:"updatedAt"`
}

// PublicReportDTO is the reduced map-view projection: no audit fields,
// no reporter email, no history.
type PublicReportDTO struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Urgency      string    `json:"urgency"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Address      *string   `json:"address,omitempty"`
	Photos       []string  `json:"photos"`
	ReporterName string    `json:"reporterName"`
	Status       string    `json:"status"`
	UpvoteCount  int       `json:"upvoteCount"`
	CreatedAt    string    `json:"createdAt"`
}

type PublicListRequest struct {
	Status    string   `json:"status" validate:"omitempty"`
	Category  string   `json:"category" validate:"omitempty,report_category"`
	DateFrom  string   `json:"dateFrom" validate:"omitempty"`
	DateTo    string   `json:"dateTo" validate:"omitempty"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type UpvoteResponse struct {
	Upvoted     bool `json:"upvoted"`
	UpvoteCount int  `json:"upvoteCount"`
}

type UpvoteStatusResponse struct {
	Upvoted bool `json:"upvoted"`
}
