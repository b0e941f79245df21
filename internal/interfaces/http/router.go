package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/obratrack-api/internal/application/auth"
	"github.com/jhoicas/obratrack-api/internal/application/dashboard"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	DashboardUC *dashboard.UseCase
	PDF         ReportPDFGenerator
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard (protegido): el rol del token decide la forma del reporte
	dash := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.PDF)
	dash.Get("/", dashboardHandler.Get)
	dash.Get("/export", dashboardHandler.Export)
}
