package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTanggalID(t *testing.T) {
	assert.Equal(t, "5 Maret 2026", FormatTanggalID(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "17 Agustus 1945", FormatTanggalID(time.Date(1945, 8, 17, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1 Januari 2030", FormatTanggalID(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "31 Desember 2026", FormatTanggalID(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", FormatTanggalID(time.Time{}))
}
