package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	batchController "academyku_backend/internals/features/academic/batches/controller"
)

func BatchRoutes(r fiber.Router, db *gorm.DB) {
	ctl := batchController.NewBatchController(db)

	batches := r.Group("/batches")
	batches.Post("/", ctl.Create)
	batches.Get("/", ctl.List)
	batches.Get("/:id", ctl.GetByID)
	batches.Put("/:id", ctl.Update)
	batches.Delete("/:id", ctl.Delete)
}
