package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "academyku_backend/internals/features/users/controller"
	"academyku_backend/internals/middlewares"
)

// AuthRoutes mounts login/refresh. These must stay on the public tier:
// they are how a client obtains a token in the first place.
func AuthRoutes(public fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := public.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/refresh", ctl.Refresh)
}

// ProfileRoutes mounts /auth/me on the authenticated tier.
func ProfileRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)
	r.Get("/auth/me", ctl.Me)
}
