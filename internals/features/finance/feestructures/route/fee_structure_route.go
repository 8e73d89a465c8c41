package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeController "academyku_backend/internals/features/finance/feestructures/controller"
)

func FeeStructureRoutes(r fiber.Router, db *gorm.DB) {
	ctl := feeController.NewFeeStructureController(db)

	fees := r.Group("/fee-structures")
	fees.Post("/", ctl.Create)
	fees.Get("/", ctl.List)
	fees.Get("/:id", ctl.GetByID)
	fees.Put("/:id", ctl.Update)
	fees.Delete("/:id", ctl.Delete)
}
