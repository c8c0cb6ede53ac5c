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

type AdminController struct {
	adminService *service.AdminService
}

func NewAdminController(adminService *service.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

func (c *AdminController) ListReports(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := model.AdminListReportsRequest{
		Status:   query.Get("status"),
		Category: query.Get("category"),
		DateFrom: query.Get("dateFrom"),
		DateTo:   query.Get("dateTo"),
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			helper.WriteError(w, helper.NewBadRequestError("Invalid page"))
			return
		}
		req.Page = page
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			helper.WriteError(w, helper.NewBadRequestError("Invalid limit"))
			return
		}
		req.Limit = limit
	}

	reports, meta, err := c.adminService.ListReports(r.Context(), &req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccessWithPagination(w, reports, meta)
}

func (c *AdminController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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

	var req model.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("Invalid request body", "error", err)
		helper.WriteError(w, helper.NewBadRequestError(""))
		return
	}

	resp, err := c.adminService.UpdateStatus(r.Context(), userContext, reportID, &req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

func (c *AdminController) Stats(w http.ResponseWriter, r *http.Request) {
	resp, err := c.adminService.Stats(r.Context())
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}
