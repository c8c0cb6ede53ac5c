package service

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"CivicConnectAPI/ent/upvote"
	"CivicConnectAPI/internal/helper"
	"CivicConnectAPI/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCreateReport_UsesStoredIdentity(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestReportService()

	reporter := createTestUser(ctx, "citizen")

	resp, err := s.CreateReport(ctx, principalFor(reporter), &model.CreateReportRequest{
		Title:       "  Pothole on main street  ",
		Description: "Deep pothole near the intersection",
		Category:    "pothole",
		Urgency:     "high",
		Latitude:    floatPtr(-6.21),
		Longitude:   floatPtr(106.81),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Pothole on main street", resp.Title)
	assert.Equal(t, "pothole", resp.Category)
	assert.Equal(t, "high", resp.Urgency)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 0, resp.UpvoteCount)
	assert.Equal(t, reporter.ID, resp.ReportedBy)
	assert.Equal(t, reporter.Name, resp.ReporterName)

	stored := testClient.Report.GetX(ctx, resp.ID)
	assert.Equal(t, reporter.Email, stored.ReporterEmail)
}

func TestCreateReport_DefaultsAndValidation(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestReportService()

	reporter := createTestUser(ctx, "citizen")

	resp, err := s.CreateReport(ctx, principalFor(reporter), &model.CreateReportRequest{
		Title:       "Overflowing bin",
		Description: "Bin has not been emptied",
		Latitude:    floatPtr(-6.2),
		Longitude:   floatPtr(106.8),
	})
	assert.NoError(t, err)
	assert.Equal(t, "other", resp.Category)
	assert.Equal(t, "medium", resp.Urgency)
	assert.Equal(t, "medium", resp.Priority)

	_, err = s.CreateReport(ctx, principalFor(reporter), &model.CreateReportRequest{
		Title:       "Missing coordinates",
		Description: "No location given",
	})
	appErr, ok := err.(*helper.AppError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)

	_, err = s.CreateReport(ctx, principalFor(reporter), &model.CreateReportRequest{
		Title:       "Bad category",
		Description: "Category outside the known set",
		Category:    "alien-invasion",
		Latitude:    floatPtr(-6.2),
		Longitude:   floatPtr(106.8),
	})
	appErr, ok = err.(*helper.AppError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}

func TestUpdateReport_OwnerOnly(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestReportService()

	owner := createTestUser(ctx, "citizen")
	stranger := createTestUser(ctx, "citizen")
	report := createTestReport(ctx, owner)

	newTitle := "Streetlight still broken"
	_, err := s.UpdateReport(ctx, principalFor(stranger), report.ID, &model.UpdateReportRequest{
		Title: &newTitle,
	})
	appErr, ok := err.(*helper.AppError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.Code)

	resp, err := s.UpdateReport(ctx, principalFor(owner), report.ID, &model.UpdateReportRequest{
		Title: &newTitle,
	})
	assert.NoError(t, err)
	assert.Equal(t, newTitle, resp.Title)
	// Untouched fields keep their values.
	assert.Equal(t, report.Description, resp.Description)
	assert.Equal(t, "streetlight", resp.Category)
}

func TestUpdateReport_NotFound(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestReportService()

	user := createTestUser(ctx, "citizen")
	title := "Anything"

	_, err := s.UpdateReport(ctx, principalFor(user), mustUUID(), &model.UpdateReportRequest{Title: &title})
	appErr, ok := err.(*helper.AppError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

func TestToggleUpvote_OnOffKeepsCountConsistent(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestReportService()

	reporter := createTestUser(ctx, "citizen")
	voter := createTestUser(ctx, "citizen")
	report := createTestReport(ctx, reporter)

	resp, err := s.ToggleUpvote(ctx, principalFor(voter), report.ID)
	assert.NoError(t, err)
	assert.True(t, resp.Upvoted)
	assert.Equal(t, 1, resp.UpvoteCount)

	status, err := s.HasUpvoted(ctx, principalFor(voter), report.ID)
	assert.NoError(t, err)
	assert.True(t, status.Upvoted)

	resp, err = s.ToggleUpvote(ctx, principalFor(voter), report.ID)
	assert.NoError(t, err)
	assert.False(t, resp.Upvoted)
	assert.Equal(t, 0, resp.UpvoteCount)

	rows := testClient.Upvote.Query().Where(upvote.ReportIDEQ(report.ID)).CountX(ctx)
	assert.Equal(t, 0, rows)

	stored := testClient.Report.GetX(ctx, report.ID)
	assert.Equal(t, rows, stored.UpvoteCount)
}

func TestToggleUpvote_ManyUsersConcurrently(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestReportService()

	reporter := createTestUser(ctx, "citizen")
	report := createTestReport(ctx, reporter)

	voterCount := 10
	voters := make([]*model.UserDTO, 0, voterCount)
	for i := 0; i < voterCount; i++ {
		voters = append(voters, principalFor(createTestUser(ctx, "citizen")))
	}

	var wg sync.WaitGroup
	wg.Add(voterCount)
	for _, voter := range voters {
		go func(p *model.UserDTO) {
			defer wg.Done()
			_, _ = s.ToggleUpvote(ctx, p, report.ID)
		}(voter)
	}
	wg.Wait()

	rows := testClient.Upvote.Query().Where(upvote.ReportIDEQ(report.ID)).CountX(ctx)
	stored := testClient.Report.GetX(ctx, report.ID)

	assert.Equal(t, voterCount, rows)
	assert.Equal(t, rows, stored.UpvoteCount)
}

func TestToggleUpvote_ReportNotFound(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestReportService()

	voter := createTestUser(ctx, "citizen")

	_, err := s.ToggleUpvote(ctx, principalFor(voter), mustUUID())
	appErr, ok := err.(*helper.AppError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

func TestMyReports_NewestFirst(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestReportService()

	mine := createTestUser(ctx, "citizen")
	other := createTestUser(ctx, "citizen")

	first := createTestReport(ctx, mine)
	second := createTestReport(ctx, mine)
	createTestReport(ctx, other)

	reports, err := s.MyReports(ctx, principalFor(mine))
	assert.NoError(t, err)
	assert.Len(t, reports, 2)
	assert.Equal(t, second.ID, reports[0].ID)
	assert.Equal(t, first.ID, reports[1].ID)
}

func TestGetReport_IncludesHistory(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestReportService()
	admin := createTestUser(ctx, "admin")

	reporter := createTestUser(ctx, "citizen")
	report := createTestReport(ctx, reporter)

	adminService := newTestAdminService()
	_, err := adminService.UpdateStatus(ctx, principalFor(admin), report.ID, &model.UpdateStatusRequest{
		Status: "in-progress",
		Notes:  "Crew dispatched",
	})
	assert.NoError(t, err)

	resp, err := s.GetReport(ctx, report.ID)
	assert.NoError(t, err)
	assert.Equal(t, "in-progress", resp.Status)
	assert.Len(t, resp.StatusHistory, 1)
	assert.Equal(t, "in-progress", resp.StatusHistory[0].Status)
	assert.Equal(t, "Crew dispatched", resp.StatusHistory[0].Notes)
	assert.Equal(t, admin.ID, resp.StatusHistory[0].ChangedBy)
}
