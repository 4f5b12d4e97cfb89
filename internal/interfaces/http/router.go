package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias de los handlers para montar las rutas.
type RouterDeps struct {
	JWTSecret string

	Auth         *AuthHandler
	Clients      *ClientHandler
	Projects     *ProjectHandler
	Invoices     *InvoiceHandler
	Payments     *PaymentHandler
	TimeTracking *TimeTrackingHandler
	Dashboard    *DashboardHandler
	Search       *SearchHandler
	TaxRates     *TaxRateHandler
}

// Router registra todas las rutas del API bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas públicas.
	authGroup := api.Group("/auth")
	authGroup.Post("/register", deps.Auth.Register)
	authGroup.Post("/login", deps.Auth.Login)

	// Todo lo demás exige JWT.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/me", deps.Auth.Profile)
	protected.Put("/me", deps.Auth.UpdateProfile)

	protected.Post("/clients", deps.Clients.Create)
	protected.Get("/clients", deps.Clients.List)
	protected.Get("/clients/:id", deps.Clients.Get)
	protected.Put("/clients/:id", deps.Clients.Update)
	protected.Delete("/clients/:id", deps.Clients.Delete)

	protected.Post("/projects", deps.Projects.Create)
	protected.Get("/projects", deps.Projects.List)
	protected.Get("/projects/:id", deps.Projects.Get)
	protected.Put("/projects/:id", deps.Projects.Update)
	protected.Delete("/projects/:id", deps.Projects.Delete)

	protected.Post("/invoices", deps.Invoices.Create)
	protected.Get("/invoices", deps.Invoices.List)
	protected.Get("/invoices/:id", deps.Invoices.Get)
	protected.Put("/invoices/:id", deps.Invoices.Update)
	protected.Delete("/invoices/:id", deps.Invoices.Delete)
	protected.Post("/invoices/:id/mark-paid", deps.Invoices.MarkPaid)
	protected.Get("/invoices/:id/pdf", deps.Invoices.DownloadPDF)
	protected.Post("/invoices/:id/checkout", deps.Payments.CreateCheckout)
	protected.Get("/invoices/:id/payments", deps.Payments.ListByInvoice)

	protected.Post("/payments/confirm", deps.Payments.Confirm)

	protected.Post("/time-entries/start", deps.TimeTracking.Start)
	protected.Post("/time-entries/stop", deps.TimeTracking.Stop)
	protected.Post("/time-entries", deps.TimeTracking.Create)
	protected.Get("/time-entries", deps.TimeTracking.List)
	protected.Delete("/time-entries/:id", deps.TimeTracking.Delete)

	protected.Get("/dashboard", deps.Dashboard.Summary)
	protected.Get("/search", deps.Search.Search)
	protected.Get("/tax-rates", deps.TaxRates.Get)
}
