package validation

import (
	"regexp"
	"strings"
	"time"
)

// Hasil cek satu field. Valid=false selalu disertai pesan untuk ditampilkan
// inline di bawah input.
type FieldResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

var (
	nikRegex    = regexp.MustCompile(`^[0-9]{16}$`)
	emailRegex  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex  = regexp.MustCompile(`^(\+62|62|0)8[1-9][0-9]{6,9}$`)
	postalRegex = regexp.MustCompile(`^[0-9]{5}$`)
	spaceDash   = regexp.MustCompile(`[\s-]`)
)

const dateLayout = "2006-01-02"

// Field yang wajib diisi di form pendaftaran. Field kondisional
// (detailPenyakit, detailPenanganan) dicek terpisah di ValidateForm.
var requiredFields = map[string]bool{
	"namaLengkap":      true,
	"jenisKelamin":     true,
	"tempatLahir":      true,
	"tanggalLahir":     true,
	"namaAyah":         true,
	"namaIbu":          true,
	"alamat":           true,
	"kota":             true,
	"provinsi":         true,
	"pekerjaan":        true,
	"nik":              true,
	"nomorPaspor":      true,
	"tanggalTerbit":    true,
	"tanggalBerakhir":  true,
	"tempatTerbit":     true,
	"telepon":          true,
	"whatsapp":         true,
	"namaKontak":       true,
	"hubunganKontak":   true,
	"teleponKontak":    true,
	"paketDipilih":     true,
	"metodePembayaran": true,
}

// ValidateField mengecek satu field form (dipakai saat blur & saat submit).
func ValidateField(fieldName, rawValue string) FieldResult {
	return ValidateFieldAt(fieldName, rawValue, time.Now())
}

// ValidateFieldAt sama dengan ValidateField tapi dengan "hari ini" eksplisit
// supaya aturan umur & masa berlaku paspor deterministik di test.
func ValidateFieldAt(fieldName, rawValue string, now time.Time) FieldResult {
	value := strings.TrimSpace(rawValue)

	if requiredFields[fieldName] && value == "" {
		return FieldResult{Valid: false, Message: "Field ini wajib diisi"}
	}

	switch fieldName {
	case "nik":
		if value != "" && !nikRegex.MatchString(value) {
			return FieldResult{Valid: false, Message: "NIK harus 16 digit angka"}
		}
	case "email":
		if value != "" && !emailRegex.MatchString(value) {
			return FieldResult{Valid: false, Message: "Format email tidak valid"}
		}
	case "telepon", "teleponKontak", "whatsapp":
		if value != "" && !IsValidPhone(value) {
			return FieldResult{Valid: false, Message: "Format nomor telepon tidak valid"}
		}
	case "kodePos":
		if value != "" && !postalRegex.MatchString(value) {
			return FieldResult{Valid: false, Message: "Kode pos harus 5 digit angka"}
		}
	case "tanggalLahir":
		if value != "" && !isValidBirthDate(value, now) {
			return FieldResult{Valid: false, Message: "Usia minimal 18 tahun"}
		}
	case "tanggalBerakhir":
		if value != "" && !isValidPassportExpiry(value, now) {
			return FieldResult{Valid: false, Message: "Paspor harus berlaku minimal 6 bulan"}
		}
	}

	return FieldResult{Valid: true}
}

// IsValidPhone menerima format nomor HP Indonesia: +62/62/0, lalu 8,
// lalu digit 1-9, lalu 6-9 digit. Spasi dan strip diabaikan.
func IsValidPhone(phone string) bool {
	clean := spaceDash.ReplaceAllString(phone, "")
	return phoneRegex.MatchString(clean)
}

func isValidBirthDate(value string, now time.Time) bool {
	birthDate, err := time.Parse(dateLayout, value)
	if err != nil {
		return false
	}

	age := now.Year() - birthDate.Year()
	// Belum ulang tahun di tahun ini → umur dikurangi satu
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}
	return age >= 18
}

func isValidPassportExpiry(value string, now time.Time) bool {
	expiry, err := time.Parse(dateLayout, value)
	if err != nil {
		return false
	}

	// Harus lewat dari "hari ini + 6 bulan kalender", bukan offset hari tetap
	sixMonths := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 6, 0)
	return expiry.After(sixMonths)
}

// ValidateForm menjalankan semua aturan di atas untuk satu map field mentah
// dan mengembalikan error per field (kosong = lolos semua).
func ValidateForm(raw map[string]string, now time.Time) map[string]string {
	errs := make(map[string]string)

	for name := range requiredFields {
		if res := ValidateFieldAt(name, raw[name], now); !res.Valid {
			errs[name] = res.Message
		}
	}
	// Field opsional tetap dicek formatnya kalau diisi
	for _, name := range []string{"email", "kodePos"} {
		if res := ValidateFieldAt(name, raw[name], now); !res.Valid {
			errs[name] = res.Message
		}
	}

	// Field kondisional: detail wajib kalau checkbox-nya dicentang
	if raw["penyakitKhusus"] == "on" && strings.TrimSpace(raw["detailPenyakit"]) == "" {
		errs["detailPenyakit"] = "Field ini wajib diisi"
	}
	if raw["penangananKhusus"] == "on" && strings.TrimSpace(raw["detailPenanganan"]) == "" {
		errs["detailPenanganan"] = "Field ini wajib diisi"
	}

	return errs
}
