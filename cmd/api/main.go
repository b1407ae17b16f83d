package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	"github.com/jhoicas/biztime-api/internal/application/usecase"
	"github.com/jhoicas/biztime-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/biztime-api/internal/interfaces/http"
	"github.com/jhoicas/biztime-api/pkg/config"
	"github.com/jhoicas/biztime-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	repos := usecase.Repos{
		Companies:  postgres.NewCompanyRepository(pool),
		Invoices:   postgres.NewInvoiceRepository(pool),
		Industries: postgres.NewIndustryRepository(pool),
		Links:      postgres.NewCompanyIndustryRepository(pool),
	}
	txRunner := postgres.NewTxRunner(pool)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:           cfg.App.Name,
		RequestTimeout: cfg.HTTP.RequestTimeout,
	}, log)

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "BizTime API",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Service:        cfg.App.Name,
		DB:             pool,
		CompanyUC:      usecase.NewCompanyUseCase(repos),
		InvoiceUC:      usecase.NewInvoiceUseCase(repos, txRunner),
		IndustryUC:     usecase.NewIndustryUseCase(repos),
		RelationshipUC: usecase.NewRelationshipUseCase(repos, txRunner),
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
