package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/cooked/api/http/handlers"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	Catalog  *handlers.CatalogHandler
	Resume   *handlers.ResumeHandler
	Analysis *handlers.AnalysisHandler
}

// Register wires all HTTP routes onto the given Fiber app. adminMW guards
// the admin panel endpoints.
func Register(app *fiber.App, h Handlers, adminMW fiber.Handler) {
	v1 := app.Group("/api").Group("/v1")

	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	v1.Get("/skills/suggestions", h.Catalog.Suggestions)
	v1.Get("/fields", h.Catalog.Fields)

	rg := v1.Group("/resume")
	rg.Post("/analyze", h.Resume.Analyze)
	rg.Post("/report.csv", h.Resume.ReportCSV)

	v1.Post("/analyses", h.Analysis.Save)

	v1.Post("/admin/login", h.Auth.Login)
	admin := v1.Group("/admin/analyses", adminMW)
	admin.Get("/", h.Analysis.List)
	admin.Get("/distribution", h.Analysis.Distribution)
	admin.Get("/export.csv", h.Analysis.ExportCSV)
	admin.Get("/export.xlsx", h.Analysis.ExportXLSX)
}
