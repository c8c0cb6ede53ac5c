package bootstrap

import (
	"net/http"

	"CivicConnectAPI/internal/config"
	"CivicConnectAPI/internal/controller"
	"CivicConnectAPI/internal/middleware"

	"github.com/go-chi/chi/v5"
)

type Route struct {
	cfg                 *config.AppConfig
	chi                 *chi.Mux
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	authController      *controller.AuthController
	userController      *controller.UserController
	reportController    *controller.ReportController
	adminController     *controller.AdminController
	mediaController     *controller.MediaController
	websocketController *controller.WebSocketController
}

func NewRoute(
	cfg *config.AppConfig,
	chiMux *chi.Mux,
	authMiddleware *middleware.AuthMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	authController *controller.AuthController,
	userController *controller.UserController,
	reportController *controller.ReportController,
	adminController *controller.AdminController,
	mediaController *controller.MediaController,
	websocketController *controller.WebSocketController,
) *Route {
	return &Route{
		cfg:                 cfg,
		chi:                 chiMux,
		authMiddleware:      authMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
		authController:      authController,
		userController:      userController,
		reportController:    reportController,
		adminController:     adminController,
		mediaController:     mediaController,
		websocketController: websocketController,
	}
}

func (route *Route) Register() {
	route.chi.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Welcome to CivicConnectAPI"))
	})

	route.chi.Route("/api", func(r chi.Router) {
		r.Post("/auth/google", route.authController.GoogleLogin)
		r.Post("/auth/logout", route.authController.Logout)

		// Public map and detail views; no session required.
		r.Get("/reports/public", route.reportController.PublicList)
		r.Get("/reports/{reportID}", route.reportController.Get)

		r.Group(func(r chi.Router) {
			r.Use(route.authMiddleware.VerifyToken)

			r.Get("/auth/me", route.userController.Me)

			r.With(route.rateLimitMiddleware.Limit("report_create")).
				Post("/reports", route.reportController.Create)
			r.Get("/reports/my-reports", route.reportController.MyReports)
			r.Put("/reports/{reportID}", route.reportController.Update)
			r.Post("/reports/{reportID}/upvote", route.reportController.ToggleUpvote)
			r.Get("/reports/{reportID}/upvote", route.reportController.UpvoteStatus)

			r.Post("/media/photos", route.mediaController.UploadPhotos)
		})

		r.Group(func(r chi.Router) {
			r.Use(route.authMiddleware.VerifyToken)
			r.Use(route.authMiddleware.RequireAdmin)

			r.Get("/admin/reports", route.adminController.ListReports)
			r.Patch("/admin/reports/{reportID}/status", route.adminController.UpdateStatus)
			r.Get("/admin/stats", route.adminController.Stats)
		})

		r.Group(func(r chi.Router) {
			r.Use(route.authMiddleware.VerifyWSToken)
			r.Get("/ws", route.websocketController.ServeWS)
		})
	})
}
