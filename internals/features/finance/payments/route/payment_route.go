package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "academyku_backend/internals/features/finance/payments/controller"
)

// PaymentRoutes mounts the payment CRUD and discount endpoints.
func PaymentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentController.NewPaymentController(db)

	payments := r.Group("/payments")
	payments.Post("/plan-preview", ctl.PlanPreview)
	payments.Post("/", ctl.CreatePayment)
	payments.Get("/", ctl.ListPayments)
	payments.Get("/:id", ctl.GetPaymentByID)
	payments.Put("/:id", ctl.UpdatePayment)
	payments.Patch("/:id/status", ctl.UpdatePaymentStatus)
	payments.Delete("/:id", ctl.DeletePayment)

	payments.Post("/:id/discount", ctl.ApplyDiscount)
	payments.Delete("/:id/discount", ctl.RemoveDiscount)
}

// GatewayRoutes mounts the hosted-checkout surface. The webhook is
// registered separately on the public group (the gateway cannot send a
// bearer token).
func GatewayRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentController.NewCheckoutController(db)

	gw := r.Group("/gateway")
	gw.Post("/create-payment-intent", ctl.CreatePaymentIntent)
	gw.Post("/create-emi-payment-intent", ctl.CreateEMIIntent)
	gw.Post("/manual-update", ctl.ManualUpdate)
}

// WebhookRoutes mounts the unauthenticated gateway callback.
func WebhookRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentController.NewWebhookController(db)
	r.Post("/gateway/webhook", ctl.HandleMidtrans)
}
