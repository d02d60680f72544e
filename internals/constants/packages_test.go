package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackageLabel(t *testing.T) {
	assert.Equal(t, "Umrah Hemat Zona Jabodetabek", PackageLabel("hemat-jabodetabek"))
	assert.Equal(t, "Umrah Hemat Zona NTB", PackageLabel("hemat-ntb"))
	assert.Equal(t, "-", PackageLabel("tidak-ada"))
	assert.Equal(t, "-", PackageLabel(""))
}

func TestGenderLabel(t *testing.T) {
	assert.Equal(t, "Laki-laki", GenderLabel("L"))
	assert.Equal(t, "Perempuan", GenderLabel("P"))
	assert.Equal(t, "X", GenderLabel("X")) // kode asing dikembalikan apa adanya
}
