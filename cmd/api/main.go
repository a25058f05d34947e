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

	"github.com/inventoree/inventoree-api/internal/application/analytics"
	"github.com/inventoree/inventoree-api/internal/application/auth"
	"github.com/inventoree/inventoree-api/internal/application/chat"
	"github.com/inventoree/inventoree-api/internal/application/inventory"
	"github.com/inventoree/inventoree-api/internal/application/usecase"
	infrapdf "github.com/inventoree/inventoree-api/internal/infrastructure/pdf"
	"github.com/inventoree/inventoree-api/internal/infrastructure/storage"
	httpRouter "github.com/inventoree/inventoree-api/internal/interfaces/http"
	"github.com/inventoree/inventoree-api/pkg/config"
	"github.com/inventoree/inventoree-api/pkg/logger"
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

	kv, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Storage.Path).Msg("abrir almacenamiento local")
	}
	defer kv.Close()

	userRepo := storage.NewUserRepository(kv)
	sessionRepo := storage.NewSessionRepository(kv)
	productRepo := storage.NewProductRepository(kv)
	categoryRepo := storage.NewCategoryRepository(kv)
	supplierRepo := storage.NewSupplierRepository(kv)
	saleRepo := storage.NewSaleRepository(kv)
	messageRepo := storage.NewMessageRepository(kv)
	preferencesRepo := storage.NewPreferencesRepository(kv)
	txRunner := storage.NewTxRunner(kv)

	authUC := auth.NewAuthUseCase(userRepo, sessionRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, supplierRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, productRepo)
	preferencesUC := usecase.NewPreferencesUseCase(preferencesRepo)
	saleUC := inventory.NewSaleUseCase(txRunner, saleRepo)
	analyticsUC := analytics.NewAnalyticsUseCase(productRepo, saleRepo, categoryRepo, supplierRepo)
	chatUC := chat.NewChatUseCase(messageRepo, sessionRepo)

	// PDF: reporte de ventas descargable
	reportGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := analytics.NewReportUseCase(analyticsUC, reportGenerator, cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventoree API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProductUC:     productUC,
		CategoryUC:    categoryUC,
		SupplierUC:    supplierUC,
		PreferencesUC: preferencesUC,
		SaleUC:        saleUC,
		AnalyticsUC:   analyticsUC,
		ReportUC:      reportUC,
		ChatUC:        chatUC,
		JWTSecret:     cfg.JWT.Secret,
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
