package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board-service/internal/api/http/handlers"
	"github.com/spec-kit/job-board-service/internal/auth"
	"github.com/spec-kit/job-board-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Companies      *handlers.CompaniesHandler
	Jobs           *handlers.JobsHandler
	Applications   *handlers.ApplicationsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api/v1")
	authed := cfg.AuthMiddleware.Handle

	users := api.Group("/users")
	users.Post("/register", cfg.Users.Register)
	users.Post("/login", cfg.Users.Login)
	users.Get("/logout", authed, cfg.Users.Logout)
	users.Put("/profile/update", authed, cfg.Users.UpdateProfile)

	company := api.Group("/company", authed)
	company.Post("/register", cfg.Companies.Register)
	company.Get("/getCompany", cfg.Companies.GetOwn)
	company.Get("/getCompany/:id", cfg.Companies.GetByID)
	company.Put("/update/:id", cfg.Companies.Update)

	job := api.Group("/job", authed)
	job.Post("/post", auth.RequireRole(domain.RoleAdmin), cfg.Jobs.Post)
	job.Get("/get", cfg.Jobs.Search)
	job.Get("/getAdmin", auth.RequireRole(domain.RoleAdmin), cfg.Jobs.GetAdmin)
	job.Get("/get/:id", cfg.Jobs.GetByID)

	application := api.Group("/application", authed)
	application.Post("/apply/:id", auth.RequireRole(domain.RoleSeeker), cfg.Applications.Apply)
	application.Get("/get", auth.RequireRole(domain.RoleSeeker), cfg.Applications.GetApplied)
	application.Get("/:id/applicants", auth.RequireRole(domain.RoleAdmin), cfg.Applications.GetApplicants)
	application.Put("/status/:id", auth.RequireRole(domain.RoleAdmin), cfg.Applications.UpdateStatus)
}
