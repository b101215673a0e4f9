package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/simulador-reforma/internal/application/auth"
	"github.com/jhoicas/simulador-reforma/internal/application/simulation"
	"github.com/jhoicas/simulador-reforma/internal/application/usecase"
	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	TenancyUC *usecase.TenancyUseCase
	UserUC    *usecase.UserUseCase
	TaxRateUC *usecase.TaxRateUseCase
	ImportUC  *simulation.ImportUseCase
	ViewsUC   *simulation.ViewsUseCase
	Schema    string
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Públicas
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	api.Get("/schema", SchemaHandler(deps.Schema))

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)
	platformOnly := RequireRole(entity.RolePlatform)

	tenancy := NewTenancyHandler(deps.TenancyUC)
	protected.Get("/tenants", tenancy.ListTenants)
	protected.Post("/tenants", platformOnly, tenancy.CreateTenant)
	protected.Get("/groups", tenancy.ListGroups)
	protected.Post("/groups", adminOnly, tenancy.CreateGroup)
	protected.Get("/companies", tenancy.ListCompanies)
	protected.Post("/companies", adminOnly, tenancy.CreateCompany)
	protected.Get("/branches", tenancy.ListBranches)
	protected.Post("/branches", adminOnly, tenancy.CreateBranch)

	users := NewUserHandler(deps.UserUC)
	protected.Get("/users", adminOnly, users.List)
	protected.Put("/users/:id/confirm", adminOnly, users.Confirm)

	rates := NewTaxRateHandler(deps.TaxRateUC)
	protected.Get("/tax-rates", rates.List)
	protected.Put("/tax-rates/:year", adminOnly, rates.Upsert)

	sim := NewSimulationHandler(deps.ImportUC, deps.ViewsUC)
	protected.Post("/sped/import", sim.Import)
	protected.Get("/sped/imports", sim.ListImports)

	simGroup := protected.Group("/simulation")
	simGroup.Get("/dashboard", sim.Dashboard)
	simGroup.Get("/panels/:category", sim.Panel)
	simGroup.Post("/preview", sim.Preview)
	simGroup.Get("/export.xlsx", sim.ExportExcel)
	simGroup.Get("/report.pdf", sim.ExportPDF)
}
