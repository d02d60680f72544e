// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "umrohku_backend/internals/features/admins/route"
	confirmationRoute "umrohku_backend/internals/features/confirmations/route"
	paymentRoute "umrohku_backend/internals/features/payments/route"
	registrationRoute "umrohku_backend/internals/features/registrations/route"
	authMiddleware "umrohku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	adminRoute.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	registrationCtrl := registrationRoute.NewController(db)
	registrationRoute.RegistrationPublicRoutes(public, registrationCtrl)
	paymentRoute.PaymentRoutes(public, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (JWT)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	registrationRoute.RegistrationAdminRoutes(admin, registrationCtrl)
	confirmationRoute.ConfirmationAdminRoutes(admin, db)
}
