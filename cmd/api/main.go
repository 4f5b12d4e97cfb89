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
	"github.com/tu-usuario/freelance-pro/internal/application/analytics"
	"github.com/tu-usuario/freelance-pro/internal/application/auth"
	"github.com/tu-usuario/freelance-pro/internal/application/billing"
	"github.com/tu-usuario/freelance-pro/internal/application/crm"
	appsearch "github.com/tu-usuario/freelance-pro/internal/application/search"
	"github.com/tu-usuario/freelance-pro/internal/application/tracking"
	infrapayment "github.com/tu-usuario/freelance-pro/internal/infrastructure/payment"
	infrapdf "github.com/tu-usuario/freelance-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/freelance-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/freelance-pro/internal/interfaces/http"
	"github.com/tu-usuario/freelance-pro/pkg/config"
	"github.com/tu-usuario/freelance-pro/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	timeEntryRepo := postgres.NewTimeEntryRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clientUC := crm.NewClientUseCase(clientRepo)
	projectUC := crm.NewProjectUseCase(projectRepo, clientRepo)
	invoiceUC := billing.NewInvoiceUseCase(txRunner, invoiceRepo, clientRepo, userRepo)
	markPaidUC := billing.NewMarkPaidUseCase(invoiceRepo)

	// Pasarela de pagos (Stripe Checkout vía REST).
	stripeClient := infrapayment.NewStripeClient(cfg.Stripe, log)
	checkoutUC := billing.NewCheckoutUseCase(stripeClient, invoiceRepo, paymentRepo, markPaidUC)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, userRepo, pdfGenerator)

	trackingUC := tracking.NewUseCase(timeEntryRepo, projectRepo)
	searchUC := appsearch.NewUseCase(clientRepo, projectRepo, invoiceRepo)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)

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
		Title:    "FreelancePro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		JWTSecret:    cfg.JWT.Secret,
		Auth:         httpRouter.NewAuthHandler(authUC),
		Clients:      httpRouter.NewClientHandler(clientUC),
		Projects:     httpRouter.NewProjectHandler(projectUC),
		Invoices:     httpRouter.NewInvoiceHandler(invoiceUC, markPaidUC, invoicePDFUC),
		Payments:     httpRouter.NewPaymentHandler(checkoutUC),
		TimeTracking: httpRouter.NewTimeTrackingHandler(trackingUC),
		Dashboard:    httpRouter.NewDashboardHandler(dashboardUC),
		Search:       httpRouter.NewSearchHandler(searchUC),
		TaxRates:     httpRouter.NewTaxRateHandler(),
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
