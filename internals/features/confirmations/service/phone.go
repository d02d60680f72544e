package service

import (
	"regexp"
	"strings"
)

var nonDigit = regexp.MustCompile(`\D`)

// NormalizeWhatsappNumber membuang semua non-digit lalu menukar prefix
// lokal 0 menjadi 62 (format internasional). Nomor yang sudah 62... tidak
// berubah (idempoten).
func NormalizeWhatsappNumber(raw string) string {
	phone := nonDigit.ReplaceAllString(raw, "")
	if strings.HasPrefix(phone, "0") {
		phone = "62" + phone[1:]
	}
	return phone
}
