package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"umrohku_backend/internals/features/payments/controller"
	"umrohku_backend/internals/middlewares"
)

// PaymentRoutes: buat transaksi DP (publik) + webhook Midtrans.
func PaymentRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db)

	public.Post("/payments", ctrl.CreatePayment)
	public.Post("/payments/notification", middlewares.DBMiddleware(db), ctrl.HandleMidtransNotification)
}
