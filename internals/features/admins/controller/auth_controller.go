// 📁 controller/auth_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"umrohku_backend/internals/configs"
	"umrohku_backend/internals/features/admins/model"
	"umrohku_backend/internals/features/admins/service"
	helper "umrohku_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// 🟢 LOGIN: cek email + password admin, terbitkan JWT.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var admin model.AdminUser
	if err := ctrl.DB.Where("admin_email = ?", body.Email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		log.Println("[ERROR] Gagal mengambil data admin:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.AdminPassword), []byte(body.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := service.IssueToken(&admin, configs.JWTSecret)
	if err != nil {
		log.Println("[ERROR] Gagal membuat token:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.Success(c, "Login berhasil", fiber.Map{
		"access_token": token,
		"admin": fiber.Map{
			"admin_id":    admin.AdminID,
			"admin_name":  admin.AdminName,
			"admin_email": admin.AdminEmail,
		},
	})
}
