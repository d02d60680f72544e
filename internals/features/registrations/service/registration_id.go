package service

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"umrohku_backend/internals/features/registrations/repository"
)

// SequenceSource menentukan nomor urut berikutnya untuk satu hari
// pendaftaran. Dua strategi: hitung baris di store, atau counter lokal.
type SequenceSource interface {
	NextSequence(ctx context.Context, day time.Time) (int, error)
}

// FormatRegistrationID menyusun id pendaftaran: UM + YYMMDD + urutan 4 digit.
func FormatRegistrationID(day time.Time, seq int) string {
	return fmt.Sprintf("UM%02d%02d%02d%04d", day.Year()%100, int(day.Month()), day.Day(), seq)
}

// =======================
// STRATEGI 1: DERIVASI DARI STORE
// =======================

// StoreSequence menghitung pendaftaran yang sudah ada di tanggal yang sama;
// urutan = jumlah + 1. Race antar submit di-handle oleh unique index +
// retry di RegistrationService, bukan di sini.
type StoreSequence struct {
	Repo repository.RegistrationRepository
}

func NewStoreSequence(repo repository.RegistrationRepository) *StoreSequence {
	return &StoreSequence{Repo: repo}
}

func (s *StoreSequence) NextSequence(ctx context.Context, day time.Time) (int, error) {
	count, err := s.Repo.CountByRegistrationDate(ctx, day)
	if err != nil {
		return 0, err
	}
	return int(count) + 1, nil
}

// =======================
// STRATEGI 2: COUNTER LOKAL
// =======================

// LocalCounter menyimpan counter proses di file: dibaca saat start,
// di-increment & disimpan setiap generate, tidak pernah di-reset.
// Mutex menjaga submit paralel tidak menghasilkan urutan kembar.
type LocalCounter struct {
	mu      sync.Mutex
	path    string
	counter int
}

func NewLocalCounter(path string) *LocalCounter {
	c := &LocalCounter{path: path, counter: 1}
	if data, err := os.ReadFile(path); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(string(data))); err == nil && n > 0 {
			c.counter = n
		}
	}
	return c
}

func (c *LocalCounter) NextSequence(_ context.Context, _ time.Time) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	seq := c.counter
	c.counter++
	if err := os.WriteFile(c.path, []byte(strconv.Itoa(c.counter)), 0o644); err != nil {
		return 0, fmt.Errorf("gagal menyimpan counter pendaftaran: %w", err)
	}
	return seq, nil
}
