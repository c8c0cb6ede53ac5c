package controller

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"CivicConnectAPI/internal/helper"
	"CivicConnectAPI/internal/middleware"
	"CivicConnectAPI/internal/model"
	"CivicConnectAPI/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ReportController struct {
	reportService *service.ReportService
	queryService  *service.ReportQueryService
}

func NewReportController(reportService *service.ReportService, queryService *service.ReportQueryService) *ReportController {
	return &ReportController{
		reportService: reportService,
		queryService:  queryService,
	}
}

func (c *ReportController) Create(w http.ResponseWriter, r *http.Request) {
	userContext, ok := r.Context().Value(middleware.UserContextKey).(*model.UserDTO)
	if !ok {
		helper.WriteError(w, helper.NewUnauthorizedError(""))
		return
	}

	var req model.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("Invalid request body", "error", err)
		helper.WriteError(w, helper.NewBadRequestError(""))
		return
	}

	resp, err := c.reportService.CreateReport(r.Context(), userContext, &req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteCreated(w, resp)
}

func (c *ReportController) Update(w http.ResponseWriter, r *http.Request) {
	userContext, ok := r.Context().Value(middleware.UserContextKey).(*model.UserDTO)
	if !ok {
		helper.WriteError(w, helper.NewUnauthorizedError(""))
		return
	}

	reportID, err := uuid.Parse(chi.URLParam(r, "reportID"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid report ID"))
		return
	}

	var req model.UpdateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("Invalid request body", "error", err)
		helper.WriteError(w, helper.NewBadRequestError(""))
		return
	}

	resp, err := c.reportService.UpdateReport(r.Context(), userContext, reportID, &req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

func (c *ReportController) ToggleUpvote(w http.ResponseWriter, r *http.Request) {
	userContext, ok := r.Context().Value(middleware.UserContextKey).(*model.UserDTO)
	if !ok {
		helper.WriteError(w, helper.NewUnauthorizedError(""))
		return
	}

	reportID, err := uuid.Parse(chi.URLParam(r, "reportID"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid report ID"))
		return
	}

	resp, err := c.reportService.ToggleUpvote(r.Context(), userContext, reportID)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

func (c *ReportController) UpvoteStatus(w http.ResponseWriter, r *http.Request) {
	userContext, ok := r.Context().Value(middleware.UserContextKey).(*model.UserDTO)
	if !ok {
		helper.WriteError(w, helper.NewUnauthorizedError(""))
		return
	}

	reportID, err := uuid.Parse(chi.URLParam(r, "reportID"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid report ID"))
		return
	}

	resp, err := c.reportService.HasUpvoted(r.Context(), userContext, reportID)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

func (c *ReportController) MyReports(w http.ResponseWriter, r *http.Request) {
	userContext, ok := r.Context().Value(middleware.UserContextKey).(*model.UserDTO)
	if !ok {
		helper.WriteError(w, helper.NewUnauthorizedError(""))
		return
	}

	resp, err := c.reportService.MyReports(r.Context(), userContext)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

func (c *ReportController) Get(w http.ResponseWriter, r *http.Request) {
	reportID, err := uuid.Parse(chi.URLParam(r, "reportID"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid report ID"))
		return
	}

	resp, err := c.reportService.GetReport(r.Context(), reportID)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// PublicList serves the unauthenticated map view.
func (c *ReportController) PublicList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := model.PublicListRequest{
		Status:   query.Get("status"),
		Category: query.Get("category"),
		DateFrom: query.Get("dateFrom"),
		DateTo:   query.Get("dateTo"),
	}

	if raw := query.Get("lat"); raw != "" {
		lat, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			helper.WriteError(w, helper.NewBadRequestError("Invalid lat"))
			return
		}
		req.Latitude = &lat
	}
	if raw := query.Get("lng"); raw != "" {
		lng, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			helper.WriteError(w, helper.NewBadRequestError("Invalid lng"))
			return
		}
		req.Longitude = &lng
	}

	resp, err := c.queryService.PublicReports(r.Context(), &req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}
