package constants

// Kode paket yang dikenal (value dari <select> paketDipilih di form).
var PackageLabels = map[string]string{
	"hemat-jabodetabek": "Umrah Hemat Zona Jabodetabek",
	"hemat-ntb":         "Umrah Hemat Zona NTB",
}

// DP (uang muka) per paket, dipakai saat membuat transaksi Midtrans.
var PackageDeposits = map[string]int64{
	"hemat-jabodetabek": 5000000,
	"hemat-ntb":         5000000,
}

var GenderLabels = map[string]string{
	"L": "Laki-laki",
	"P": "Perempuan",
}

// PackageLabel mengembalikan nama paket, atau "-" jika kodenya tidak dikenal.
func PackageLabel(code string) string {
	if label, ok := PackageLabels[code]; ok {
		return label
	}
	return "-"
}

func GenderLabel(code string) string {
	if label, ok := GenderLabels[code]; ok {
		return label
	}
	return code
}
