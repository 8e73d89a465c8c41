package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	installmentController "academyku_backend/internals/features/finance/emi/controller"
	waService "academyku_backend/internals/features/notifications/whatsapp/service"
)

func InstallmentRoutes(r fiber.Router, db *gorm.DB, wa *waService.Sender) {
	ctl := installmentController.NewInstallmentController(db, wa)

	emi := r.Group("/payments/emi")
	emi.Get("/", ctl.List)
	emi.Put("/:id", ctl.Update)
	emi.Post("/:id/update", ctl.Pay)

	// legacy path the dashboard uses for reminders
	r.Post("/emi-payments/:id/remind", ctl.Remind)
}
