package service

import (
	"fmt"

	"umrohku_backend/internals/constants"
	"umrohku_backend/internals/features/registrations/model"
	helper "umrohku_backend/internals/helpers"
)

// ComposeConfirmationMessage menyusun pesan WA konfirmasi dalam bahasa
// Indonesia: nama, paket, dan tanggal pendaftaran.
func ComposeConfirmationMessage(reg *model.UmrohRegistration) string {
	return fmt.Sprintf(
		"Assalamualaikum %s, pendaftaran umrah Anda untuk paket %s pada tanggal %s telah kami terima.",
		reg.FullName,
		constants.PackageLabel(reg.SelectedPackage),
		helper.FormatTanggalID(reg.RegistrationDate),
	)
}
