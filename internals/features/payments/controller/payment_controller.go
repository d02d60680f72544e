// 📁 controller/payment_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"umrohku_backend/internals/constants"
	"umrohku_backend/internals/features/payments/model"
	paymentService "umrohku_backend/internals/features/payments/service"
	registrationRepo "umrohku_backend/internals/features/registrations/repository"
	helper "umrohku_backend/internals/helpers"
)

var validate = validator.New()

type PaymentController struct {
	DB   *gorm.DB
	Repo registrationRepo.RegistrationRepository
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db, Repo: registrationRepo.NewRegistrationRepository(db)}
}

type createPaymentRequest struct {
	RegistrationID string `json:"registration_id" validate:"required,uuid"`
}

// 🟢 CREATE PAYMENT: buat transaksi DP Midtrans untuk satu pendaftar
// & simpan snap token.
func (ctrl *PaymentController) CreatePayment(c *fiber.Ctx) error {
	var body createPaymentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	regID, err := uuid.Parse(body.RegistrationID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "registration_id tidak valid")
	}

	reg, err := ctrl.Repo.FindByID(c.UserContext(), regID)
	if err != nil {
		if errors.Is(err, registrationRepo.ErrRegistrationNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Data pendaftar tidak ditemukan")
		}
		log.Println("[ERROR] Gagal mengambil data pendaftar:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data pendaftar")
	}

	amount, ok := constants.PackageDeposits[reg.SelectedPackage]
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "Paket tidak dikenal, DP tidak bisa dihitung")
	}

	// 🧾 Order ID unik
	payment := model.RegistrationPayment{
		PaymentRegistrationID: reg.ID,
		PaymentOrderID:        fmt.Sprintf("UMROH-%d", time.Now().UnixNano()),
		PaymentAmount:         amount,
		PaymentStatus:         "pending",
		PaymentGateway:        "midtrans",
	}

	if err := ctrl.DB.Create(&payment).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan pembayaran:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan pembayaran")
	}

	email := ""
	if reg.Email != nil {
		email = *reg.Email
	}
	token, err := paymentService.GenerateSnapToken(payment, reg.FullName, email)
	if err != nil {
		log.Println("[ERROR] Gagal membuat token pembayaran:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token pembayaran")
	}

	payment.PaymentSnapToken = token
	ctrl.DB.Save(&payment)

	return helper.Success(c, "Transaksi DP berhasil dibuat. Silakan lanjutkan pembayaran.", fiber.Map{
		"order_id":   payment.PaymentOrderID,
		"amount":     payment.PaymentAmount,
		"snap_token": token,
	})
}

// 🟢 HANDLE MIDTRANS WEBHOOK: update status pembayaran dari notifikasi.
func (ctrl *PaymentController) HandleMidtransNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid webhook",
		})
	}

	db, _ := c.Locals("db").(*gorm.DB)
	if db == nil {
		db = ctrl.DB
	}

	if err := ctrl.applyNotification(db, body); err != nil {
		log.Println("[ERROR] Webhook gagal:", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.SendStatus(fiber.StatusOK)
}

func (ctrl *PaymentController) applyNotification(db *gorm.DB, body map[string]interface{}) error {
	orderID, _ := body["order_id"].(string)
	transactionStatus, _ := body["transaction_status"].(string)
	if orderID == "" {
		return fmt.Errorf("webhook tanpa order_id")
	}

	var payment model.RegistrationPayment
	if err := db.Where("payment_order_id = ?", orderID).First(&payment).Error; err != nil {
		return fmt.Errorf("pembayaran tidak ditemukan: %v", err)
	}

	switch transactionStatus {
	case "settlement", "capture", "success":
		payment.PaymentStatus = "paid"
		now := time.Now()
		payment.PaymentPaidAt = &now
	case "deny", "failure", "cancel", "expire":
		payment.PaymentStatus = "failed"
	default:
		payment.PaymentStatus = "pending"
	}

	if err := db.Save(&payment).Error; err != nil {
		return fmt.Errorf("gagal memperbarui status pembayaran: %v", err)
	}
	return nil
}
