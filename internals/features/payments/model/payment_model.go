package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegistrationPayment adalah transaksi DP satu pendaftar via Midtrans.
type RegistrationPayment struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentRegistrationID uuid.UUID `gorm:"column:payment_registration_id;type:uuid;not null" json:"payment_registration_id"`

	PaymentOrderID string `gorm:"column:payment_order_id;type:varchar(100);not null;unique" json:"payment_order_id"`
	PaymentAmount  int64  `gorm:"column:payment_amount;not null;check:payment_amount > 0" json:"payment_amount"`

	PaymentStatus string `gorm:"column:payment_status;type:varchar(20);default:'pending'" json:"payment_status"`

	PaymentSnapToken string `gorm:"column:payment_snap_token;type:text" json:"payment_snap_token"`
	PaymentGateway   string `gorm:"column:payment_gateway;type:varchar(50);default:'midtrans'" json:"payment_gateway"`

	PaymentPaidAt *time.Time     `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (RegistrationPayment) TableName() string {
	return "registration_payments"
}
