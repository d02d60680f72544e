package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"umrohku_backend/internals/features/admins/controller"
	"umrohku_backend/internals/middlewares"
)

// AuthRoutes: login admin (rate limit ketat).
func AuthRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)
	app.Post("/api/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
