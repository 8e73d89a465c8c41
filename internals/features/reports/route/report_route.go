package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "academyku_backend/internals/features/reports/controller"
)

func ReportRoutes(r fiber.Router, db *gorm.DB) {
	ctl := reportController.NewReportController(db)
	r.Get("/reports/fees-summary", ctl.FeesSummary)
}
