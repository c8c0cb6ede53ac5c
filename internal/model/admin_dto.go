package model

import "github.com/google/uuid"

type AdminListReportsRequest struct {
	// Status accepts a plain value or a "!"-prefixed negation ("!resolved").
	Status   string `json:"status" validate:"omitempty"`
	Category string `json:"category" validate:"omitempty,report_category"`
	DateFrom string `json:"dateFrom" validate:"omitempty"`
	DateTo   string `json:"dateTo" validate:"omitempty"`
	Page     int    `json:"page" validate:"omitempty,min=1"`
	Limit    int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

type ReporterDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type AdminReportDTO struct {
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
	Reporter      ReporterDTO             `json:"reporter"`
	Status        string                  `json:"status"`
	UpvoteCount   int                     `json:"upvoteCount"`
	StatusHistory []StatusHistoryEntryDTO `json:"statusHistory"`
	UpdatedBy     *uuid.UUID              `json:"updatedBy,omitempty"`
	CreatedAt     string                  `json:"createdAt"`
	UpdatedAt     string                  `json:"updatedAt"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,report_status"`
	Notes  string `json:"notes"`
}

type DayCountDTO struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type StatsResponse struct {
	StatusCounts   map[string]int `json:"statusCounts"`
	CategoryCounts map[string]int `json:"categoryCounts"`
	UrgencyCounts  map[string]int `json:"urgencyCounts"`
	RecentActivity []DayCountDTO  `json:"recentActivity"`
	TotalReports   int            `json:"totalReports"`
}
