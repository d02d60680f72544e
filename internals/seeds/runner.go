package seeds

import (
	"gorm.io/gorm"

	"umrohku_backend/internals/configs"
	"umrohku_backend/internals/seeds/admins"
)

func RunAllSeeds(db *gorm.DB) {
	admins.SeedDefaultAdmin(db,
		configs.GetEnv("ADMIN_NAME", "Operator"),
		configs.GetEnv("ADMIN_EMAIL"),
		configs.GetEnv("ADMIN_PASSWORD"),
	)
}
