package service

import (
	"context"
	"net/http"
	"testing"

	"CivicConnectAPI/ent/statuschange"
	"CivicConnectAPI/internal/helper"
	"CivicConnectAPI/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestUpdateStatus_AppendsAuditTrail(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestAdminService()

	admin := createTestUser(ctx, "admin")
	reporter := createTestUser(ctx, "citizen")
	report := createTestReport(ctx, reporter)

	resp, err := s.UpdateStatus(ctx, principalFor(admin), report.ID, &model.UpdateStatusRequest{
		Status: "in-progress",
		Notes:  "Assigned to field team",
	})
	assert.NoError(t, err)
	assert.Equal(t, "in-progress", resp.Status)
	assert.NotNil(t, resp.UpdatedBy)
	assert.Equal(t, admin.ID, *resp.UpdatedBy)

	resp, err = s.UpdateStatus(ctx, principalFor(admin), report.ID, &model.UpdateStatusRequest{
		Status: "resolved",
	})
	assert.NoError(t, err)
	assert.Equal(t, "resolved", resp.Status)
	assert.Len(t, resp.StatusHistory, 2)
	assert.Equal(t, "in-progress", resp.StatusHistory[0].Status)
	assert.Equal(t, "resolved", resp.StatusHistory[1].Status)

	// Reopening a resolved report is allowed and audited like any
	// other transition.
	resp, err = s.UpdateStatus(ctx, principalFor(admin), report.ID, &model.UpdateStatusRequest{
		Status: "pending",
		Notes:  "Issue resurfaced",
	})
	assert.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)

	rows := testClient.StatusChange.Query().
		Where(statuschange.ReportIDEQ(report.ID)).
		CountX(ctx)
	assert.Equal(t, 3, rows)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestAdminService()

	admin := createTestUser(ctx, "admin")
	reporter := createTestUser(ctx, "citizen")
	report := createTestReport(ctx, reporter)

	_, err := s.UpdateStatus(ctx, principalFor(admin), report.ID, &model.UpdateStatusRequest{
		Status: "finished",
	})
	appErr, ok := err.(*helper.AppError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)

	rows := testClient.StatusChange.Query().CountX(ctx)
	assert.Equal(t, 0, rows)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestAdminService()

	admin := createTestUser(ctx, "admin")

	_, err := s.UpdateStatus(ctx, principalFor(admin), mustUUID(), &model.UpdateStatusRequest{
		Status: "resolved",
	})
	appErr, ok := err.(*helper.AppError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

func TestListReports_StatusNegation(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestAdminService()

	admin := createTestUser(ctx, "admin")
	reporter := createTestUser(ctx, "citizen")

	open := createTestReport(ctx, reporter)
	resolved := createTestReport(ctx, reporter)

	_, err := s.UpdateStatus(ctx, principalFor(admin), resolved.ID, &model.UpdateStatusRequest{
		Status: "resolved",
	})
	assert.NoError(t, err)

	reports, meta, err := s.ListReports(ctx, &model.AdminListReportsRequest{Status: "!resolved"})
	assert.NoError(t, err)
	assert.Equal(t, 1, meta.Total)
	assert.Len(t, reports, 1)
	assert.Equal(t, open.ID, reports[0].ID)

	reports, meta, err = s.ListReports(ctx, &model.AdminListReportsRequest{Status: "resolved"})
	assert.NoError(t, err)
	assert.Equal(t, 1, meta.Total)
	assert.Equal(t, resolved.ID, reports[0].ID)

	_, _, err = s.ListReports(ctx, &model.AdminListReportsRequest{Status: "!bogus"})
	appErr, ok := err.(*helper.AppError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}

func TestListReports_PaginationMeta(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestAdminService()

	reporter := createTestUser(ctx, "citizen")
	for i := 0; i < 5; i++ {
		createTestReport(ctx, reporter)
	}

	reports, meta, err := s.ListReports(ctx, &model.AdminListReportsRequest{Page: 2, Limit: 2})
	assert.NoError(t, err)
	assert.Len(t, reports, 2)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 2, meta.Limit)
	assert.Equal(t, 5, meta.Total)
	assert.Equal(t, 3, meta.Pages)

	// Pages past the data return an empty slice, not an error.
	reports, meta, err = s.ListReports(ctx, &model.AdminListReportsRequest{Page: 4, Limit: 2})
	assert.NoError(t, err)
	assert.Len(t, reports, 0)
	assert.Equal(t, 5, meta.Total)
}

func TestListReports_IncludesReporter(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestAdminService()

	reporter := createTestUser(ctx, "citizen")
	createTestReport(ctx, reporter)

	reports, _, err := s.ListReports(ctx, &model.AdminListReportsRequest{})
	assert.NoError(t, err)
	assert.Len(t, reports, 1)
	assert.Equal(t, reporter.ID, reports[0].Reporter.ID)
	assert.Equal(t, reporter.Email, reports[0].Reporter.Email)
	assert.Equal(t, reporter.Name, reports[0].Reporter.Name)
}

func TestStats_CountsByDimension(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestAdminService()

	admin := createTestUser(ctx, "admin")
	reporter := createTestUser(ctx, "citizen")

	createTestReport(ctx, reporter)
	createTestReport(ctx, reporter)
	resolved := createTestReport(ctx, reporter)
	_, err := s.UpdateStatus(ctx, principalFor(admin), resolved.ID, &model.UpdateStatusRequest{
		Status: "resolved",
	})
	assert.NoError(t, err)

	stats, err := s.Stats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalReports)
	assert.Equal(t, 2, stats.StatusCounts["pending"])
	assert.Equal(t, 1, stats.StatusCounts["resolved"])
	assert.Equal(t, 3, stats.CategoryCounts["streetlight"])
	assert.Equal(t, 3, stats.UrgencyCounts["medium"])

	assert.Len(t, stats.RecentActivity, 7)
	today := stats.RecentActivity[len(stats.RecentActivity)-1]
	assert.Equal(t, 3, today.Count)
}
