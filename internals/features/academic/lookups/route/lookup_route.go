package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lookupController "academyku_backend/internals/features/academic/lookups/controller"
)

// LookupRoutes mounts the reference lists: reads for any authenticated
// user, creates guarded per route by adminOnly.
func LookupRoutes(r fiber.Router, adminOnly fiber.Handler, db *gorm.DB) {
	ctl := lookupController.NewLookupController(db)

	r.Get("/courses", ctl.ListCourses)
	r.Get("/universities", ctl.ListUniversities)
	r.Get("/nationalities", ctl.ListNationalities)

	r.Post("/courses", adminOnly, ctl.CreateCourse)
	r.Post("/universities", adminOnly, ctl.CreateUniversity)
	r.Post("/nationalities", adminOnly, ctl.CreateNationality)
}
