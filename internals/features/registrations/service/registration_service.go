package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"umrohku_backend/internals/features/registrations/dto"
	"umrohku_backend/internals/features/registrations/model"
	"umrohku_backend/internals/features/registrations/repository"
	"umrohku_backend/internals/features/registrations/validation"
)

// Pendaftar belum mencentang persetujuan syarat & ketentuan.
var ErrAgreementRequired = errors.New("Anda harus menyetujui syarat dan ketentuan")

// Batas percobaan regenerate registration_id saat bentrok unique index.
const maxIDAttempts = 5

type RegistrationService struct {
	Repo repository.RegistrationRepository
	Seq  SequenceSource
}

func NewRegistrationService(repo repository.RegistrationRepository, seq SequenceSource) *RegistrationService {
	return &RegistrationService{Repo: repo, Seq: seq}
}

// Create memvalidasi field mentah, menormalkan ke skema database, membuat
// registration_id, lalu menyimpan. fieldErrors != nil berarti submit
// ditolak dan form harus ditampilkan ulang dengan error inline.
func (s *RegistrationService) Create(ctx context.Context, raw map[string]string) (*model.UmrohRegistration, map[string]string, error) {
	now := time.Now()

	if fieldErrors := validation.ValidateForm(raw, now); len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}
	if raw["agreement"] != dto.CheckedSentinel {
		return nil, nil, ErrAgreementRequired
	}

	reg := dto.ToModel(raw)
	reg.RegistrationDate = registrationDate(raw["tanggalPendaftaran"], now)

	seq, err := s.Seq.NextSequence(ctx, reg.RegistrationDate)
	if err != nil {
		return nil, nil, fmt.Errorf("gagal menentukan nomor urut pendaftaran: %w", err)
	}

	// Bentrok sequence (submit bersamaan di hari yang sama) → naikkan
	// urutan lalu coba lagi, maksimal maxIDAttempts kali
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		reg.RegistrationID = FormatRegistrationID(reg.RegistrationDate, seq)

		err := s.Repo.Insert(ctx, &reg)
		if err == nil {
			return &reg, nil, nil
		}
		if errors.Is(err, repository.ErrDuplicateRegistrationID) {
			log.Printf("[WARN] registration_id %s bentrok, regenerate (percobaan %d)", reg.RegistrationID, attempt+1)
			seq++
			continue
		}
		return nil, nil, err
	}

	return nil, nil, fmt.Errorf("gagal mendapatkan registration_id unik setelah %d percobaan", maxIDAttempts)
}

// registrationDate memakai tanggal dari form kalau valid, selain itu hari
// submit.
func registrationDate(rawDate string, now time.Time) time.Time {
	if d, err := time.Parse("2006-01-02", strings.TrimSpace(rawDate)); err == nil {
		return d
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
