package dto

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"umrohku_backend/internals/features/registrations/model"
)

// Nilai checkbox HTML yang dianggap tercentang.
const CheckedSentinel = "on"

const dateLayout = "2006-01-02"

var nonDigit = regexp.MustCompile(`\D`)

// FieldMapping memetakan satu nama field form (bahasa Indonesia) ke nama
// kolom database, plus transform teks opsional yang di front-end berjalan
// saat mengetik (di sini direplikasi saat normalisasi).
type FieldMapping struct {
	Column    string
	Transform func(string) string
}

// FieldMappings adalah tabel pemetaan statis seluruh field form.
// Checkbox ada di BooleanColumns; "agreement" sengaja tidak dipetakan
// karena hanya gerbang submit, bukan data pendaftar.
var FieldMappings = map[string]FieldMapping{
	"registrationId":    {Column: "registration_id"},
	"tanggalPendaftaran": {Column: "registration_date"},
	"namaLengkap":       {Column: "full_name", Transform: TitleCase},
	"jenisKelamin":      {Column: "gender"}, // 'L' atau 'P' dari <select>
	"tempatLahir":       {Column: "birth_place", Transform: TitleCase},
	"tanggalLahir":      {Column: "birth_date"},
	"namaAyah":          {Column: "father_name", Transform: TitleCase},
	"namaIbu":           {Column: "mother_name", Transform: TitleCase},
	"alamat":            {Column: "address"},
	"kota":              {Column: "city", Transform: TitleCase},
	"provinsi":          {Column: "province", Transform: TitleCase},
	"kodePos":           {Column: "postal_code", Transform: DigitsMax(5)},
	"pekerjaan":         {Column: "occupation"},
	"penyakitKhusus":    {Column: "has_special_illness"},
	"detailPenyakit":    {Column: "illness_details"},
	"penangananKhusus":  {Column: "needs_special_care"},
	"detailPenanganan":  {Column: "special_care_details"},
	"kursiRoda":         {Column: "needs_wheelchair"},
	"nik":               {Column: "nik", Transform: DigitsMax(16)},
	"nomorPaspor":       {Column: "passport_number", Transform: strings.ToUpper},
	"tanggalTerbit":     {Column: "passport_issue_date"},
	"tanggalBerakhir":   {Column: "passport_expiry_date"},
	"tempatTerbit":      {Column: "passport_issue_place", Transform: TitleCase},
	"telepon":           {Column: "phone", Transform: DigitsMax(15)},
	"whatsapp":          {Column: "whatsapp", Transform: DigitsMax(15)},
	"email":             {Column: "email"},
	"pernahUmrah":       {Column: "has_umrah_experience"},
	"pernahHaji":        {Column: "has_hajj_experience"},
	"namaKontak":        {Column: "emergency_contact_name", Transform: TitleCase},
	"hubunganKontak":    {Column: "emergency_contact_relation"},
	"teleponKontak":     {Column: "emergency_contact_phone", Transform: DigitsMax(15)},
	"statusPernikahan":  {Column: "marital_status"},
	"paketDipilih":      {Column: "selected_package"},
	"metodePembayaran":  {Column: "payment_method"},
}

// Kolom boolean hasil coercion checkbox ("on" → true, selain itu false).
var BooleanColumns = map[string]bool{
	"has_special_illness":  true,
	"needs_special_care":   true,
	"needs_wheelchair":     true,
	"has_umrah_experience": true,
	"has_hajj_experience":  true,
}

// Field yang hanya gerbang submit, dibuang dari record tersimpan.
var droppedFields = map[string]bool{
	"agreement": true,
}

// Normalize memetakan field form mentah menjadi map ber-key kolom database.
// Total: tidak pernah gagal, field yang tidak dikenal diteruskan apa adanya
// (validasi sudah lewat duluan di upstream).
func Normalize(raw map[string]string) map[string]interface{} {
	out := make(map[string]interface{}, len(raw))

	for key, value := range raw {
		if droppedFields[key] {
			continue
		}

		mapping, known := FieldMappings[key]
		if !known {
			out[key] = value
			continue
		}

		if BooleanColumns[mapping.Column] {
			out[mapping.Column] = value == CheckedSentinel
			continue
		}

		if mapping.Transform != nil {
			value = mapping.Transform(value)
		}
		out[mapping.Column] = value
	}

	// Checkbox yang tidak dicentang tidak ikut terkirim dari browser,
	// tetap harus jadi false di record
	for column := range BooleanColumns {
		if _, ok := out[column]; !ok {
			out[column] = false
		}
	}

	return out
}

// ToModel membangun entitas dari hasil Normalize. registration_id dan
// registration_date diisi belakangan oleh service.
func ToModel(raw map[string]string) model.UmrohRegistration {
	n := Normalize(raw)

	reg := model.UmrohRegistration{
		FullName:   str(n, "full_name"),
		Gender:     str(n, "gender"),
		BirthPlace: str(n, "birth_place"),
		BirthDate:  date(n, "birth_date"),
		FatherName: str(n, "father_name"),
		MotherName: str(n, "mother_name"),

		Address:    str(n, "address"),
		City:       str(n, "city"),
		Province:   str(n, "province"),
		PostalCode: strPtr(n, "postal_code"),
		Occupation: str(n, "occupation"),

		HasSpecialIllness:  boolean(n, "has_special_illness"),
		IllnessDetails:     strPtr(n, "illness_details"),
		NeedsSpecialCare:   boolean(n, "needs_special_care"),
		SpecialCareDetails: strPtr(n, "special_care_details"),
		NeedsWheelchair:    boolean(n, "needs_wheelchair"),

		NIK:                str(n, "nik"),
		PassportNumber:     str(n, "passport_number"),
		PassportIssueDate:  date(n, "passport_issue_date"),
		PassportExpiryDate: date(n, "passport_expiry_date"),
		PassportIssuePlace: str(n, "passport_issue_place"),

		Phone:    str(n, "phone"),
		Whatsapp: str(n, "whatsapp"),
		Email:    strPtr(n, "email"),

		HasUmrahExperience: boolean(n, "has_umrah_experience"),
		HasHajjExperience:  boolean(n, "has_hajj_experience"),

		EmergencyContactName:     str(n, "emergency_contact_name"),
		EmergencyContactRelation: str(n, "emergency_contact_relation"),
		EmergencyContactPhone:    str(n, "emergency_contact_phone"),

		MaritalStatus:   strPtr(n, "marital_status"),
		SelectedPackage: str(n, "selected_package"),
		PaymentMethod:   str(n, "payment_method"),
	}

	return reg
}

// DigitsMax membuang semua karakter non-digit lalu memotong ke maxLen.
func DigitsMax(maxLen int) func(string) string {
	return func(s string) string {
		digits := nonDigit.ReplaceAllString(s, "")
		if len(digits) > maxLen {
			digits = digits[:maxLen]
		}
		return digits
	}
}

// TitleCase: huruf pertama tiap kata kapital, sisanya kecil.
// Spasi asli dipertahankan apa adanya.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	startOfWord := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			startOfWord = true
			b.WriteRune(r)
			continue
		}
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
			startOfWord = false
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func str(n map[string]interface{}, column string) string {
	if v, ok := n[column].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func strPtr(n map[string]interface{}, column string) *string {
	s := str(n, column)
	if s == "" {
		return nil
	}
	return &s
}

func boolean(n map[string]interface{}, column string) bool {
	v, _ := n[column].(bool)
	return v
}

func date(n map[string]interface{}, column string) time.Time {
	t, _ := time.Parse(dateLayout, str(n, column))
	return t
}
