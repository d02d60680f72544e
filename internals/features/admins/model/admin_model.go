package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminUser adalah operator yang boleh melihat pendaftar & memicu
// konfirmasi WA.
type AdminUser struct {
	AdminID       uuid.UUID      `gorm:"column:admin_id;type:uuid;default:gen_random_uuid();primaryKey" json:"admin_id"`
	AdminName     string         `gorm:"column:admin_name;type:varchar(100);not null" json:"admin_name"`
	AdminEmail    string         `gorm:"column:admin_email;type:varchar(100);not null;unique" json:"admin_email"`
	AdminPassword string         `gorm:"column:admin_password;type:text;not null" json:"-"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (AdminUser) TableName() string {
	return "admin_users"
}
