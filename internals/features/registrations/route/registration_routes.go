package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"umrohku_backend/internals/configs"
	"umrohku_backend/internals/features/registrations/controller"
	"umrohku_backend/internals/features/registrations/repository"
	"umrohku_backend/internals/features/registrations/service"
	"umrohku_backend/internals/middlewares"
)

// NewController merakit repo + strategi sequence sesuai env.
func NewController(db *gorm.DB) *controller.RegistrationController {
	repo := repository.NewRegistrationRepository(db)

	var seq service.SequenceSource
	if configs.RegistrationIDStrategy == "local" {
		seq = service.NewLocalCounter(configs.RegistrationCounterFile)
	} else {
		seq = service.NewStoreSequence(repo)
	}

	svc := service.NewRegistrationService(repo, seq)
	return controller.NewRegistrationController(svc, repo)
}

// RegistrationPublicRoutes: submit form + validasi per field (tanpa login).
func RegistrationPublicRoutes(public fiber.Router, ctrl *controller.RegistrationController) {
	public.Post("/registrations", middlewares.RegisterRateLimiter(), ctrl.Create)
	public.Post("/registrations/validate-field", ctrl.ValidateField)
}

// RegistrationAdminRoutes: listing & detail pendaftar (JWT admin).
func RegistrationAdminRoutes(admin fiber.Router, ctrl *controller.RegistrationController) {
	admin.Get("/registrations", ctrl.GetAll)
	admin.Get("/registrations/:id", ctrl.GetByID)
}
