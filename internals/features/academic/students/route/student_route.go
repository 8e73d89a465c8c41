package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "academyku_backend/internals/features/academic/students/controller"
)

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentController.NewStudentController(db)

	students := r.Group("/students")
	students.Post("/", ctl.Create)
	students.Get("/", ctl.List)
	students.Get("/:id", ctl.GetByID)
	students.Put("/:id", ctl.Update)
	students.Delete("/:id", ctl.Delete)
}
