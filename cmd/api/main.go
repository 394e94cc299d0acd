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

	appbudget "github.com/Allvasc/orcamento/internal/application/budget"
	appexport "github.com/Allvasc/orcamento/internal/application/export"
	"github.com/Allvasc/orcamento/internal/application/notify"
	"github.com/Allvasc/orcamento/internal/domain/entity"
	"github.com/Allvasc/orcamento/internal/infrastructure/assets"
	infraexcel "github.com/Allvasc/orcamento/internal/infrastructure/excel"
	infrapdf "github.com/Allvasc/orcamento/internal/infrastructure/pdf"
	infraword "github.com/Allvasc/orcamento/internal/infrastructure/word"
	httpRouter "github.com/Allvasc/orcamento/internal/interfaces/http"
	"github.com/Allvasc/orcamento/pkg/config"
	"github.com/Allvasc/orcamento/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	company := entity.CompanyInfo{
		Name:    cfg.Company.Name,
		Address: cfg.Company.Address,
		Phone:   cfg.Company.Phone,
		LogoURL: cfg.Company.LogoURL,
	}

	// Estado en memoria: un ledger por sesión, sin persistencia.
	store := appbudget.NewStore(time.Duration(cfg.Session.TTLMinutes) * time.Minute)
	notifyCenter := notify.NewCenter(time.Duration(cfg.Session.NotifyTTLSeconds) * time.Second)

	// Logo: solo se incrusta en el PDF; sin URL no se descarga nada.
	var logoFetcher appexport.LogoFetcher
	if cfg.Company.LogoURL != "" {
		logoFetcher = assets.NewHTTPLogoFetcher(cfg.Company.LogoURL)
	}

	exportUC := appexport.NewUseCase(
		company,
		logoFetcher,
		infrapdf.NewMarotoBudgetGenerator(),
		infraword.NewDocxBudgetGenerator(),
		infraexcel.NewExcelizeBudgetGenerator(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Orcamento API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:  store,
		Export: exportUC,
		Notify: notifyCenter,
		Log:    log,
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
