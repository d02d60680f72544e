// 📁 controller/registration_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"umrohku_backend/internals/features/registrations/repository"
	"umrohku_backend/internals/features/registrations/service"
	"umrohku_backend/internals/features/registrations/validation"
	helper "umrohku_backend/internals/helpers"
)

var validate = validator.New()

type RegistrationController struct {
	Service *service.RegistrationService
	Repo    repository.RegistrationRepository
}

func NewRegistrationController(svc *service.RegistrationService, repo repository.RegistrationRepository) *RegistrationController {
	return &RegistrationController{Service: svc, Repo: repo}
}

// 🟢 CREATE: terima field form mentah (nama field bahasa Indonesia),
// validasi → normalisasi → simpan. Error validasi dikembalikan per field.
func (ctrl *RegistrationController) Create(c *fiber.Ctx) error {
	var raw map[string]string
	if err := c.BodyParser(&raw); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}

	reg, fieldErrors, err := ctrl.Service.Create(c.UserContext(), raw)
	if fieldErrors != nil {
		return helper.FieldValidationError(c, fieldErrors)
	}
	if err != nil {
		if errors.Is(err, service.ErrAgreementRequired) {
			return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		// Detail disimpan di log server, user cukup tahu submit gagal
		log.Println("[ERROR] Gagal menyimpan pendaftaran:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan saat menyimpan data")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pendaftaran berhasil disimpan!", reg)
}

type validateFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

// 🟢 VALIDATE FIELD: dipanggil front-end saat blur untuk cek satu field.
func (ctrl *RegistrationController) ValidateField(c *fiber.Ctx) error {
	var body validateFieldRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	return helper.Success(c, "OK", validation.ValidateField(body.Field, body.Value))
}

// 🟢 GET ALL: pendaftar terbaru dulu, dengan pagination (admin).
func (ctrl *RegistrationController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	total, err := ctrl.Repo.CountAll(c.UserContext())
	if err != nil {
		log.Println("[ERROR] Gagal menghitung pendaftar:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data pendaftar")
	}

	regs, err := ctrl.Repo.List(c.UserContext(), paging.Offset, paging.Limit)
	if err != nil {
		log.Println("[ERROR] Gagal mengambil data pendaftar:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data pendaftar")
	}

	return helper.Success(c, "OK", fiber.Map{
		"registrations": regs,
		"pagination":    helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit, len(regs)),
	})
}

// 🟢 GET BY ID: detail satu pendaftar (admin).
func (ctrl *RegistrationController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	reg, err := ctrl.Repo.FindByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Data pendaftar tidak ditemukan")
		}
		log.Println("[ERROR] Gagal mengambil data pendaftar:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data pendaftar")
	}
	return helper.Success(c, "OK", reg)
}
