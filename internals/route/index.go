package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academyku_backend/internals/configs"
	"academyku_backend/internals/constants"
	batchRoute "academyku_backend/internals/features/academic/batches/route"
	lookupRoute "academyku_backend/internals/features/academic/lookups/route"
	studentRoute "academyku_backend/internals/features/academic/students/route"
	discountRoute "academyku_backend/internals/features/finance/discounts/route"
	installmentRoute "academyku_backend/internals/features/finance/emi/route"
	feeRoute "academyku_backend/internals/features/finance/feestructures/route"
	paymentRoute "academyku_backend/internals/features/finance/payments/route"
	waService "academyku_backend/internals/features/notifications/whatsapp/service"
	reportRoute "academyku_backend/internals/features/reports/route"
	userRoute "academyku_backend/internals/features/users/route"
	authmw "academyku_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the whole API surface under /api.
//
// Three tiers: public (login/refresh + the gateway webhook, which cannot
// send a bearer token), protected (any authenticated dashboard user),
// admin (role=admin, applied per endpoint).
//
// Fiber matches routes in registration order, so the public endpoints
// are registered before the auth middleware is attached: once
// api.Use(AuthJWT) runs, every route mounted after it requires a token.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// public
	userRoute.AuthRoutes(api, db)
	paymentRoute.WebhookRoutes(api, db)

	api.Use(authmw.AuthJWT(authmw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))
	adminOnly := authmw.RequireRole(constants.RoleAdmin)

	userRoute.ProfileRoutes(api, db)

	// academic
	studentRoute.StudentRoutes(api, db)
	batchRoute.BatchRoutes(api, db)
	lookupRoute.LookupRoutes(api, adminOnly, db)

	// finance. The fixed /payments/emi subtree must be mounted before
	// the payment CRUD or /payments/:id captures "emi" as an id.
	wa := waService.NewSender(configs.WhatsAppAPIURL, configs.WhatsAppAPIToken)
	installmentRoute.InstallmentRoutes(api, db, wa)
	feeRoute.FeeStructureRoutes(api, db)
	discountRoute.DiscountRoutes(api, db)
	paymentRoute.PaymentRoutes(api, db)
	paymentRoute.GatewayRoutes(api, db)

	// reports
	reportRoute.ReportRoutes(api, db)
}
