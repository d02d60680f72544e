package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_PemetaanKolom(t *testing.T) {
	raw := map[string]string{
		"namaLengkap":  "budi santoso",
		"tempatLahir":  "bandung",
		"nik":          "3201-2345-6789-0123",
		"nomorPaspor":  "c1234567",
		"telepon":      "0812-3456-7890",
		"kodePos":      "40123",
		"paketDipilih": "hemat-ntb",
	}

	out := Normalize(raw)

	assert.Equal(t, "Budi Santoso", out["full_name"])
	assert.Equal(t, "Bandung", out["birth_place"])
	assert.Equal(t, "3201234567890123", out["nik"]) // strip dibuang
	assert.Equal(t, "C1234567", out["passport_number"])
	assert.Equal(t, "081234567890", out["phone"])
	assert.Equal(t, "40123", out["postal_code"])
	assert.Equal(t, "hemat-ntb", out["selected_package"])

	// Key form asli tidak boleh bocor ke hasil
	assert.NotContains(t, out, "namaLengkap")
	assert.NotContains(t, out, "nik-mentah")
}

func TestNormalize_CheckboxCoercion(t *testing.T) {
	out := Normalize(map[string]string{
		"penyakitKhusus": "on",
		"kursiRoda":      "on",
	})

	assert.Equal(t, true, out["has_special_illness"])
	assert.Equal(t, true, out["needs_wheelchair"])
	// Checkbox yang tidak terkirim → false, bukan hilang
	assert.Equal(t, false, out["needs_special_care"])
	assert.Equal(t, false, out["has_umrah_experience"])
	assert.Equal(t, false, out["has_hajj_experience"])
}

func TestNormalize_NilaiSelainOnBukanTrue(t *testing.T) {
	out := Normalize(map[string]string{"pernahUmrah": "true"})
	assert.Equal(t, false, out["has_umrah_experience"])
}

func TestNormalize_AgreementDibuang(t *testing.T) {
	out := Normalize(map[string]string{"agreement": "on", "namaLengkap": "Budi"})
	assert.NotContains(t, out, "agreement")
	assert.Equal(t, "Budi", out["full_name"])
}

func TestNormalize_FieldTakDikenalDiteruskan(t *testing.T) {
	out := Normalize(map[string]string{"catatanInternal": "vip"})
	assert.Equal(t, "vip", out["catatanInternal"])
}

func TestDigitsMax(t *testing.T) {
	f := DigitsMax(5)
	assert.Equal(t, "40123", f("40123"))
	assert.Equal(t, "40123", f("4-0 1.2a3"))
	assert.Equal(t, "12345", f("1234567890")) // dipotong
	assert.Equal(t, "", f("abc"))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Budi Santoso", TitleCase("budi santoso"))
	assert.Equal(t, "Budi Santoso", TitleCase("BUDI SANTOSO"))
	assert.Equal(t, "Budi  Santoso", TitleCase("budi  santoso")) // spasi ganda dipertahankan
	assert.Equal(t, "", TitleCase(""))
	assert.Equal(t, "Aisyah Putri-rahma", TitleCase("aisyah putri-rahma")) // kapital hanya setelah spasi
}

func TestToModel(t *testing.T) {
	raw := map[string]string{
		"namaLengkap":      "budi santoso",
		"jenisKelamin":     "L",
		"tempatLahir":      "bandung",
		"tanggalLahir":     "1990-05-20",
		"namaAyah":         "ahmad",
		"namaIbu":          "siti",
		"alamat":           "Jl. Merdeka No. 1",
		"kota":             "bandung",
		"provinsi":         "jawa barat",
		"kodePos":          "40123",
		"pekerjaan":        "Wiraswasta",
		"penyakitKhusus":   "on",
		"detailPenyakit":   "Diabetes",
		"nik":              "3201234567890123",
		"nomorPaspor":      "c1234567",
		"tanggalTerbit":    "2024-01-10",
		"tanggalBerakhir":  "2029-01-10",
		"tempatTerbit":     "bandung",
		"telepon":          "081234567890",
		"whatsapp":         "081234567890",
		"email":            "budi@example.com",
		"pernahUmrah":      "on",
		"namaKontak":       "siti aminah",
		"hubunganKontak":   "Istri",
		"teleponKontak":    "081298765432",
		"paketDipilih":     "hemat-jabodetabek",
		"metodePembayaran": "transfer",
		"agreement":        "on",
	}

	reg := ToModel(raw)

	assert.Equal(t, "Budi Santoso", reg.FullName)
	assert.Equal(t, "L", reg.Gender)
	assert.Equal(t, time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC), reg.BirthDate)
	assert.Equal(t, "Ahmad", reg.FatherName)
	assert.Equal(t, "Jawa Barat", reg.Province)

	require.NotNil(t, reg.PostalCode)
	assert.Equal(t, "40123", *reg.PostalCode)

	assert.True(t, reg.HasSpecialIllness)
	require.NotNil(t, reg.IllnessDetails)
	assert.Equal(t, "Diabetes", *reg.IllnessDetails)
	assert.False(t, reg.NeedsSpecialCare)
	assert.Nil(t, reg.SpecialCareDetails)

	assert.Equal(t, "C1234567", reg.PassportNumber)
	assert.Equal(t, time.Date(2029, 1, 10, 0, 0, 0, 0, time.UTC), reg.PassportExpiryDate)

	require.NotNil(t, reg.Email)
	assert.Equal(t, "budi@example.com", *reg.Email)

	assert.True(t, reg.HasUmrahExperience)
	assert.False(t, reg.HasHajjExperience)

	assert.Equal(t, "Siti Aminah", reg.EmergencyContactName)
	assert.Nil(t, reg.MaritalStatus)

	// Diisi service, bukan dto
	assert.Empty(t, reg.RegistrationID)
	assert.True(t, reg.RegistrationDate.IsZero())
}

func TestToModel_FieldKosong(t *testing.T) {
	reg := ToModel(map[string]string{})
	assert.Empty(t, reg.FullName)
	assert.Nil(t, reg.PostalCode)
	assert.Nil(t, reg.Email)
	assert.True(t, reg.BirthDate.IsZero())
}
