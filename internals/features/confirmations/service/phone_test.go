package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhatsappNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"08123456789", "628123456789"},
		{"0812-3456-789", "628123456789"},
		{"0812 3456 789", "628123456789"},
		{"+628123456789", "628123456789"},
		{"628123456789", "628123456789"}, // sudah internasional, tidak berubah
		{"(0812) 3456-789", "628123456789"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeWhatsappNumber(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeWhatsappNumber_Idempoten(t *testing.T) {
	once := NormalizeWhatsappNumber("08123456789")
	assert.Equal(t, once, NormalizeWhatsappNumber(once))
}
