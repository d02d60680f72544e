package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JWTSecret         string
	WhatsappAPIURL    string
	WhatsappAPIKey    string
	MidtransServerKey string
	MidtransUseProd   bool

	// store = hitung baris registrasi hari ini, local = counter file
	RegistrationIDStrategy  string
	RegistrationCounterFile string

	// kirim PDF konfirmasi sebagai lampiran WA (default per env, bisa
	// dioverride per request)
	ConfirmationWithAttachment bool
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	WhatsappAPIURL = GetEnv("WA_API_URL", "https://api.sumopod.com/send")
	WhatsappAPIKey = GetEnv("WA_API_KEY")
	MidtransServerKey = GetEnv("MIDTRANS_SERVER_KEY")
	MidtransUseProd = getEnvBool("MIDTRANS_USE_PROD", false)

	RegistrationIDStrategy = GetEnv("REGISTRATION_ID_STRATEGY", "store")
	RegistrationCounterFile = GetEnv("REGISTRATION_COUNTER_FILE", "registration_counter.txt")
	ConfirmationWithAttachment = getEnvBool("CONFIRMATION_WITH_ATTACHMENT", false)

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	if WhatsappAPIKey == "" {
		log.Println("❌ WA_API_KEY belum diset! Konfirmasi WhatsApp tidak akan terkirim.")
	} else {
		log.Println("✅ WA_API_KEY berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
