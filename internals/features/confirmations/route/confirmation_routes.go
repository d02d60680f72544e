package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"umrohku_backend/internals/configs"
	"umrohku_backend/internals/features/confirmations/controller"
	"umrohku_backend/internals/features/confirmations/service"
	"umrohku_backend/internals/features/registrations/repository"
)

// ConfirmationAdminRoutes memasang endpoint konfirmasi WA di group admin.
func ConfirmationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	repo := repository.NewRegistrationRepository(db)
	sender := service.NewWhatsappClient(configs.WhatsappAPIURL, configs.WhatsappAPIKey)
	svc := service.NewConfirmationService(repo, sender, configs.ConfirmationWithAttachment)
	ctrl := controller.NewConfirmationController(svc)

	admin.Post("/registrations/confirm", ctrl.Confirm)
}
