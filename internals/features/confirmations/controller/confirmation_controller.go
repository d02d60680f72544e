// 📁 controller/confirmation_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"umrohku_backend/internals/features/confirmations/service"
	"umrohku_backend/internals/features/registrations/repository"
	helper "umrohku_backend/internals/helpers"
)

var validate = validator.New()

type ConfirmationController struct {
	Service *service.ConfirmationService
}

func NewConfirmationController(svc *service.ConfirmationService) *ConfirmationController {
	return &ConfirmationController{Service: svc}
}

type confirmRequest struct {
	ID             string `json:"id" validate:"required,uuid"`
	WithAttachment *bool  `json:"with_attachment"` // nil = ikut default env
}

// 🟢 CONFIRM: kirim pesan WA konfirmasi untuk satu pendaftar (operator).
func (ctrl *ConfirmationController) Confirm(c *fiber.Ctx) error {
	var body confirmRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	id, err := uuid.Parse(body.ID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	result, err := ctrl.Service.Confirm(c.UserContext(), id, body.WithAttachment)
	if err != nil {
		var storeErr *service.StoreError
		var dispatchErr *service.DispatchError
		switch {
		case errors.Is(err, repository.ErrRegistrationNotFound):
			return helper.Error(c, fiber.StatusNotFound, "Data pendaftar tidak ditemukan")
		case errors.As(err, &storeErr):
			log.Println("[ERROR] Konfirmasi gagal (store):", storeErr)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal membaca data pendaftar")
		case errors.As(err, &dispatchErr):
			log.Println("[ERROR] Konfirmasi gagal (dispatch):", dispatchErr)
			return helper.Error(c, fiber.StatusBadGateway, dispatchErr.Error())
		default:
			log.Println("[ERROR] Konfirmasi gagal:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengirim konfirmasi")
		}
	}

	return helper.Success(c, "Pesan konfirmasi terkirim", result)
}
