package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"umrohku_backend/internals/features/registrations/model"
)

func TestComposeConfirmationMessage(t *testing.T) {
	reg := &model.UmrohRegistration{
		FullName:         "Budi Santoso",
		SelectedPackage:  "hemat-jabodetabek",
		RegistrationDate: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
	}

	msg := ComposeConfirmationMessage(reg)
	assert.Equal(t,
		"Assalamualaikum Budi Santoso, pendaftaran umrah Anda untuk paket Umrah Hemat Zona Jabodetabek pada tanggal 5 Maret 2026 telah kami terima.",
		msg)
}

func TestComposeConfirmationMessage_PaketTakDikenal(t *testing.T) {
	reg := &model.UmrohRegistration{
		FullName:         "Siti Aminah",
		SelectedPackage:  "paket-misterius",
		RegistrationDate: time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC),
	}

	msg := ComposeConfirmationMessage(reg)
	assert.Contains(t, msg, "paket - pada tanggal 17 Januari 2026")
}
