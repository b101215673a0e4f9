package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/simulador-reforma/internal/application/auth"
	"github.com/jhoicas/simulador-reforma/internal/application/simulation"
	"github.com/jhoicas/simulador-reforma/internal/application/usecase"
	"github.com/jhoicas/simulador-reforma/internal/infrastructure/postgres"
	"github.com/jhoicas/simulador-reforma/internal/infrastructure/report"
	httpRouter "github.com/jhoicas/simulador-reforma/internal/interfaces/http"
	"github.com/jhoicas/simulador-reforma/pkg/config"
	"github.com/jhoicas/simulador-reforma/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("default_year", cfg.Simulation.DefaultYear).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.ApplySchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("aplicar esquema")
		}
		log.Info().Msg("esquema aplicado")
	}

	tenantRepo := postgres.NewTenantRepository(pool)
	groupRepo := postgres.NewCompanyGroupRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	taxRateRepo := postgres.NewTaxRateRepository(pool)
	efdRepo := postgres.NewEfdRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, tenantRepo, groupRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	tenancyUC := usecase.NewTenancyUseCase(tenantRepo, groupRepo, companyRepo, branchRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	taxRateUC := usecase.NewTaxRateUseCase(taxRateRepo)

	importUC := simulation.NewImportUseCase(branchRepo, efdRepo, txRunner, log, cfg.Simulation.FileEncoding)
	viewsUC := simulation.NewViewsUseCase(
		efdRepo, taxRateUC, report.NewRenderer(),
		cfg.Simulation.DefaultYear, cfg.Simulation.FileEncoding,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimit(),
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Simulador Reforma Tributária API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		TenancyUC: tenancyUC,
		UserUC:    userUC,
		TaxRateUC: taxRateUC,
		ImportUC:  importUC,
		ViewsUC:   viewsUC,
		Schema:    postgres.Schema,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
