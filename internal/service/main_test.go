package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"CivicConnectAPI/ent"
	"CivicConnectAPI/internal/config"
	"CivicConnectAPI/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

var (
	testClient   *ent.Client
	testConfig   *config.AppConfig
	testValidate *validator.Validate
)

func TestMain(m *testing.M) {
	_, b, _, _ := runtime.Caller(0)
	basepath := filepath.Dir(b)
	if err := godotenv.Load(filepath.Join(basepath, "../../.env.test")); err != nil {
		log.Printf("Warning: Error loading .env.test file: %v", err)
	}

	if os.Getenv("APP_PORT") == "" {
		os.Setenv("APP_PORT", "8080")
	}
	if os.Getenv("APP_ENV") == "" {
		os.Setenv("APP_ENV", "test")
	}
	if os.Getenv("JWT_SECRET") == "" {
		os.Setenv("JWT_SECRET", "secret")
	}
	if os.Getenv("GOOGLE_CLIENT_ID") == "" {
		os.Setenv("GOOGLE_CLIENT_ID", "test-client-id")
	}

	os.Setenv("DB_MIGRATE", "true")
	os.Setenv("SMTP_ASYNC", "false")

	testConfig = config.LoadAppConfig()
	testClient = config.InitEnt(testConfig)

	if err := testClient.Schema.Create(context.Background()); err != nil {
		log.Fatalf("failed creating schema resources: %v", err)
	}

	testValidate = config.NewValidator()

	code := m.Run()

	if err := testClient.Close(); err != nil {
		log.Printf("Warning: error closing test client: %v", err)
	}
	os.Exit(code)
}

func clearDatabase(ctx context.Context) {
	testClient.Upvote.Delete().ExecX(ctx)
	testClient.StatusChange.Delete().ExecX(ctx)
	testClient.Report.Delete().ExecX(ctx)
	testClient.User.Delete().ExecX(ctx)
}

var userSeq int

func createTestUser(ctx context.Context, role string) *ent.User {
	userSeq++
	builder := testClient.User.Create().
		SetEmail(fmt.Sprintf("user%d-%d@test.com", userSeq, time.Now().UnixNano())).
		SetName(fmt.Sprintf("Test User %d", userSeq))
	if role == "admin" {
		builder.SetRole("admin")
	}
	return builder.SaveX(ctx)
}

func principalFor(u *ent.User) *model.UserDTO {
	return &model.UserDTO{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
	}
}

func createTestReport(ctx context.Context, reporter *ent.User) *ent.Report {
	return testClient.Report.Create().
		SetTitle("Broken streetlight").
		SetDescription("The light on 5th has been out for a week").
		SetCategory("streetlight").
		SetLatitude(-6.2).
		SetLongitude(106.8).
		SetReportedBy(reporter.ID).
		SetReporterEmail(reporter.Email).
		SetReporterName(reporter.Name).
		SaveX(ctx)
}

func newTestReportService() *ReportService {
	return NewReportService(testClient, testConfig, testValidate, nil, nil, nil)
}

func newTestAdminService() *AdminService {
	return NewAdminService(testClient, testConfig, testValidate, nil, nil)
}

func newTestQueryService() *ReportQueryService {
	return NewReportQueryService(testClient, testConfig, testValidate)
}

func floatPtr(v float64) *float64 { return &v }

func mustUUID() uuid.UUID { return uuid.New() }
