package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"umrohku_backend/internals/features/registrations/model"
)

func TestBuildConfirmationPDF(t *testing.T) {
	reg := &model.UmrohRegistration{
		RegistrationID:   "UM2603050001",
		FullName:         "Budi Santoso",
		SelectedPackage:  "hemat-ntb",
		RegistrationDate: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
	}

	blob, err := BuildConfirmationPDF(reg, "628123456789")
	require.NoError(t, err)
	require.NotEmpty(t, blob)
	assert.Equal(t, "%PDF", string(blob[:4])) // header dokumen PDF
}

func TestAttachmentFilename(t *testing.T) {
	assert.Equal(t, "Konfirmasi-Umrah-Budi-Santoso.pdf", AttachmentFilename("Budi Santoso"))
	assert.Equal(t, "Konfirmasi-Umrah-Budi-Santoso.pdf", AttachmentFilename("  Budi Santoso  "))
	assert.Equal(t, "Konfirmasi-Umrah-Budi.pdf", AttachmentFilename("Budi@#$"))
	assert.Equal(t, "Konfirmasi-Umrah-Pendaftar.pdf", AttachmentFilename("   "))
	assert.Equal(t, "Konfirmasi-Umrah-Pendaftar.pdf", AttachmentFilename("@@@"))
}
