package service

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"umrohku_backend/internals/constants"
	"umrohku_backend/internals/features/registrations/model"
	helper "umrohku_backend/internals/helpers"
)

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9-]`)

// BuildConfirmationPDF membuat dokumen konfirmasi satu halaman: nama,
// nomor WA, paket, tanggal, dan kalimat penutup.
func BuildConfirmationPDF(reg *model.UmrohRegistration, phone string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Konfirmasi Pendaftaran Umrah", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 12)
	rows := [][2]string{
		{"No. Registrasi", reg.RegistrationID},
		{"Nama", reg.FullName},
		{"No. WhatsApp", phone},
		{"Paket", constants.PackageLabel(reg.SelectedPackage)},
		{"Tanggal Pendaftaran", helper.FormatTanggalID(reg.RegistrationDate)},
	}
	for _, row := range rows {
		pdf.CellFormat(55, 8, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, ": "+row[1], "", 1, "L", false, 0, "")
	}

	pdf.Ln(8)
	pdf.MultiCell(0, 6,
		"Terima kasih telah mendaftar. Tim kami akan menghubungi Anda untuk langkah selanjutnya. Semoga Allah mudahkan perjalanan ibadah Anda.",
		"", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("gagal membuat dokumen konfirmasi: %w", err)
	}
	return buf.Bytes(), nil
}

// AttachmentFilename menurunkan nama file lampiran dari nama pendaftar,
// contoh: "Konfirmasi-Umrah-Budi-Santoso.pdf".
func AttachmentFilename(fullName string) string {
	name := strings.TrimSpace(fullName)
	name = strings.ReplaceAll(name, " ", "-")
	name = unsafeFilename.ReplaceAllString(name, "")
	if name == "" {
		name = "Pendaftar"
	}
	return "Konfirmasi-Umrah-" + name + ".pdf"
}
