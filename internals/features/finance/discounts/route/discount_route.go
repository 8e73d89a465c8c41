package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	discountController "academyku_backend/internals/features/finance/discounts/controller"
)

// DiscountRoutes mounts under the authenticated admin group.
func DiscountRoutes(r fiber.Router, db *gorm.DB) {
	ctl := discountController.NewDiscountController(db)

	discounts := r.Group("/discounts")
	discounts.Post("/", ctl.Create)
	discounts.Get("/", ctl.List)
	discounts.Put("/:id", ctl.Update)
	discounts.Delete("/:id", ctl.Delete)
	discounts.Post("/validate", ctl.Validate)
}
