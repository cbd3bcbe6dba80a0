package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/medibook/appointment-engine/config"
	"github.com/medibook/appointment-engine/controllers"
	"github.com/medibook/appointment-engine/middleware"
)

// Setup configures all engine routes.
func Setup(app *fiber.App, h *controllers.Handler, cfg config.Config) {
	app.Get("/symptoms", h.GetSymptoms)
	app.Post("/analyze", h.AnalyzeSymptoms)
	app.Get("/doctors", h.ListDoctors)

	auth := middleware.Protected(cfg.JWTSecret)

	appointments := app.Group("/appointments", auth)
	appointments.Get("/", h.ListAppointments)
	appointments.Post("/", middleware.RequireRole("patient"), h.BookAppointment)
	appointments.Post("/cancel", h.CancelAppointment)

	app.Post("/sync/refresh", auth, h.RefreshSync)
}
