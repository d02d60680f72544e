package admins

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"umrohku_backend/internals/features/admins/model"
)

// SeedDefaultAdmin membuat satu akun admin dari env kalau tabel masih
// kosong. Dipakai sekali saat deploy pertama.
func SeedDefaultAdmin(db *gorm.DB, name, email, password string) {
	if email == "" || password == "" {
		log.Println("⚠️ ADMIN_EMAIL/ADMIN_PASSWORD belum diset, skip seeding admin")
		return
	}

	var count int64
	if err := db.Model(&model.AdminUser{}).Count(&count).Error; err != nil {
		log.Printf("❌ Gagal cek tabel admin: %v", err)
		return
	}
	if count > 0 {
		log.Println("ℹ️ Admin sudah ada, skip seeding")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Gagal hash password admin: %v", err)
		return
	}

	admin := model.AdminUser{
		AdminName:     name,
		AdminEmail:    email,
		AdminPassword: string(hashed),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ Gagal membuat admin: %v", err)
		return
	}
	log.Println("✅ Admin default dibuat:", email)
}
