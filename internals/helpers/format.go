package helper

import "time"

// Nama bulan untuk format tanggal gaya id-ID ("2 Januari 2006").
var bulanIndonesia = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatTanggalID memformat tanggal ke bentuk "2 Januari 2006".
func FormatTanggalID(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2") + " " + bulanIndonesia[t.Month()-1] + " " + t.Format("2006")
}
