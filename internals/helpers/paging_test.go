package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromOffset(t *testing.T) {
	p := BuildPaginationFromOffset(45, 0, 20, 20)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)

	p = BuildPaginationFromOffset(45, 40, 20, 5)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 5, p.Count)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestBuildPaginationFromOffset_Kosong(t *testing.T) {
	p := BuildPaginationFromOffset(0, 0, 20, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 1, p.TotalPages) // minimal satu halaman meski kosong
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestBuildPaginationFromOffset_LimitNol(t *testing.T) {
	p := BuildPaginationFromOffset(100, 0, 0, 20)
	assert.Equal(t, 20, p.PerPage) // fallback default
	assert.Equal(t, 5, p.TotalPages)
}
