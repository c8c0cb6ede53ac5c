package bootstrap

import (
	"net/http"

	"CivicConnectAPI/ent"
	"CivicConnectAPI/internal/adapter"
	"CivicConnectAPI/internal/config"
	"CivicConnectAPI/internal/controller"
	"CivicConnectAPI/internal/mail"
	"CivicConnectAPI/internal/middleware"
	"CivicConnectAPI/internal/service"
	"CivicConnectAPI/internal/websocket"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Init wires adapters, services, and controllers and registers every
// route on the given mux.
func Init(
	appConfig *config.AppConfig,
	client *ent.Client,
	validate *validator.Validate,
	s3Client *s3.Client,
	httpClient *http.Client,
	redisAdapter *adapter.RedisAdapter,
	chiMux *chi.Mux,
) *websocket.Hub {
	emailAdapter := adapter.NewEmailAdapter(appConfig)
	storageAdapter := adapter.NewStorageAdapter(appConfig, s3Client)
	geocodeAdapter := adapter.NewGeocodeAdapter(appConfig, httpClient, redisAdapter)
	mailer := mail.NewMailer(appConfig, emailAdapter)

	hub := websocket.NewHub()
	go hub.Run()

	authService := service.NewAuthService(client, appConfig, validate, mailer)
	userService := service.NewUserService(client, appConfig)
	reportService := service.NewReportService(client, appConfig, validate, geocodeAdapter, mailer, hub)
	queryService := service.NewReportQueryService(client, appConfig, validate)
	adminService := service.NewAdminService(client, appConfig, validate, mailer, hub)
	mediaService := service.NewMediaService(appConfig, storageAdapter)

	authController := controller.NewAuthController(authService)
	userController := controller.NewUserController(userService)
	reportController := controller.NewReportController(reportService, queryService)
	adminController := controller.NewAdminController(adminService)
	mediaController := controller.NewMediaController(mediaService)
	websocketController := controller.NewWebSocketController(hub)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	rateLimiter := config.NewRateLimiter(appConfig)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(rateLimiter, appConfig)

	route := NewRoute(
		appConfig,
		chiMux,
		authMiddleware,
		rateLimitMiddleware,
		authController,
		userController,
		reportController,
		adminController,
		mediaController,
		websocketController,
	)
	route.Register()

	return hub
}
