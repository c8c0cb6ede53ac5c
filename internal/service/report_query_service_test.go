package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"CivicConnectAPI/internal/helper"
	"CivicConnectAPI/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestPublicReports_ExcludesTerminalByDefault(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestQueryService()
	adminService := newTestAdminService()

	admin := createTestUser(ctx, "admin")
	reporter := createTestUser(ctx, "citizen")

	open := createTestReport(ctx, reporter)
	resolved := createTestReport(ctx, reporter)
	rejected := createTestReport(ctx, reporter)

	_, err := adminService.UpdateStatus(ctx, principalFor(admin), resolved.ID, &model.UpdateStatusRequest{Status: "resolved"})
	assert.NoError(t, err)
	_, err = adminService.UpdateStatus(ctx, principalFor(admin), rejected.ID, &model.UpdateStatusRequest{Status: "rejected"})
	assert.NoError(t, err)

	reports, err := s.PublicReports(ctx, &model.PublicListRequest{})
	assert.NoError(t, err)
	assert.Len(t, reports, 1)
	assert.Equal(t, open.ID, reports[0].ID)

	reports, err = s.PublicReports(ctx, &model.PublicListRequest{Status: "all"})
	assert.NoError(t, err)
	assert.Len(t, reports, 3)

	reports, err = s.PublicReports(ctx, &model.PublicListRequest{Status: "resolved"})
	assert.NoError(t, err)
	assert.Len(t, reports, 1)
	assert.Equal(t, resolved.ID, reports[0].ID)
}

func TestPublicReports_OrderedByUpvotesThenRecency(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestQueryService()
	reportService := newTestReportService()

	reporter := createTestUser(ctx, "citizen")
	older := createTestReport(ctx, reporter)
	newer := createTestReport(ctx, reporter)
	popular := createTestReport(ctx, reporter)

	for i := 0; i < 2; i++ {
		voter := createTestUser(ctx, "citizen")
		_, err := reportService.ToggleUpvote(ctx, principalFor(voter), popular.ID)
		assert.NoError(t, err)
	}

	reports, err := s.PublicReports(ctx, &model.PublicListRequest{})
	assert.NoError(t, err)
	assert.Len(t, reports, 3)
	assert.Equal(t, popular.ID, reports[0].ID)
	assert.Equal(t, newer.ID, reports[1].ID)
	assert.Equal(t, older.ID, reports[2].ID)
}

func TestPublicReports_BoundingBox(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestQueryService()

	reporter := createTestUser(ctx, "citizen")

	near := testClient.Report.Create().
		SetTitle("Near report").
		SetDescription("Inside the box").
		SetLatitude(-6.25).
		SetLongitude(106.85).
		SetReportedBy(reporter.ID).
		SetReporterEmail(reporter.Email).
		SetReporterName(reporter.Name).
		SaveX(ctx)

	testClient.Report.Create().
		SetTitle("Far report").
		SetDescription("Outside the box").
		SetLatitude(-7.5).
		SetLongitude(110.0).
		SetReportedBy(reporter.ID).
		SetReporterEmail(reporter.Email).
		SetReporterName(reporter.Name).
		SaveX(ctx)

	reports, err := s.PublicReports(ctx, &model.PublicListRequest{
		Latitude:  floatPtr(-6.2),
		Longitude: floatPtr(106.8),
	})
	assert.NoError(t, err)
	assert.Len(t, reports, 1)
	assert.Equal(t, near.ID, reports[0].ID)
}

func TestPublicReports_CategoryAndDateFilters(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestQueryService()

	reporter := createTestUser(ctx, "citizen")
	createTestReport(ctx, reporter)

	reports, err := s.PublicReports(ctx, &model.PublicListRequest{Category: "streetlight"})
	assert.NoError(t, err)
	assert.Len(t, reports, 1)

	reports, err = s.PublicReports(ctx, &model.PublicListRequest{Category: "garbage"})
	assert.NoError(t, err)
	assert.Len(t, reports, 0)

	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	reports, err = s.PublicReports(ctx, &model.PublicListRequest{DateFrom: tomorrow})
	assert.NoError(t, err)
	assert.Len(t, reports, 0)

	today := time.Now().UTC().Format("2006-01-02")
	reports, err = s.PublicReports(ctx, &model.PublicListRequest{DateFrom: today, DateTo: today})
	assert.NoError(t, err)
	assert.Len(t, reports, 1)
}

func TestPublicReports_InvalidFilters(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestQueryService()

	_, err := s.PublicReports(ctx, &model.PublicListRequest{Status: "unknown"})
	appErr, ok := err.(*helper.AppError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)

	_, err = s.PublicReports(ctx, &model.PublicListRequest{DateFrom: "not-a-date"})
	appErr, ok = err.(*helper.AppError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}

func TestPublicReports_OmitsReporterEmail(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestQueryService()

	reporter := createTestUser(ctx, "citizen")
	createTestReport(ctx, reporter)

	reports, err := s.PublicReports(ctx, &model.PublicListRequest{})
	assert.NoError(t, err)
	assert.Len(t, reports, 1)
	assert.Equal(t, reporter.Name, reports[0].ReporterName)
}
