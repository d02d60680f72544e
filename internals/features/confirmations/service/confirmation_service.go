package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"umrohku_backend/internals/features/registrations/repository"
)

// StoreError: pembacaan data pendaftar gagal (bukan karena tidak ada).
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("gagal membaca data pendaftar: %v", e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// DispatchError: gateway WA menolak/gagal. Pendaftaran tetap tersimpan,
// konfirmasi aman diulang manual.
type DispatchError struct {
	Err error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("gagal mengirim pesan konfirmasi: %v", e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }

// ConfirmationResult adalah ringkasan sukses satu kali konfirmasi.
type ConfirmationResult struct {
	RegistrationID string `json:"registration_id"`
	To             string `json:"to"`
	Message        string `json:"message"`
	AttachmentSent bool   `json:"attachment_sent"`
}

// ConfirmationService menjalankan pipeline konfirmasi: ambil data →
// normalisasi nomor WA → susun pesan → (opsional) PDF → kirim.
// Langkah berurutan, tanpa retry otomatis.
type ConfirmationService struct {
	Repo   repository.RegistrationRepository
	Sender WhatsappSender

	// Default kirim lampiran, bisa dioverride per panggilan.
	WithAttachment bool
}

func NewConfirmationService(repo repository.RegistrationRepository, sender WhatsappSender, withAttachment bool) *ConfirmationService {
	return &ConfirmationService{Repo: repo, Sender: sender, WithAttachment: withAttachment}
}

// Confirm mengirim pesan konfirmasi untuk satu pendaftar. withAttachment
// nil berarti ikut default service.
func (s *ConfirmationService) Confirm(ctx context.Context, id uuid.UUID, withAttachment *bool) (*ConfirmationResult, error) {
	// 1) Fetch
	reg, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return nil, err
		}
		return nil, &StoreError{Err: err}
	}

	// 2) Normalisasi nomor WA (selalu, dengan atau tanpa lampiran)
	to := NormalizeWhatsappNumber(reg.Whatsapp)

	// 3) Susun pesan
	message := ComposeConfirmationMessage(reg)

	// 4) Lampiran opsional
	attach := s.WithAttachment
	if withAttachment != nil {
		attach = *withAttachment
	}
	var attachment *Attachment
	if attach {
		blob, err := BuildConfirmationPDF(reg, to)
		if err != nil {
			return nil, err
		}
		attachment = &Attachment{
			Filename: AttachmentFilename(reg.FullName),
			Blob:     blob,
		}
	}

	// 5) Dispatch
	if _, err := s.Sender.Send(ctx, to, message, attachment); err != nil {
		return nil, &DispatchError{Err: err}
	}

	return &ConfirmationResult{
		RegistrationID: reg.RegistrationID,
		To:             to,
		Message:        message,
		AttachmentSent: attachment != nil,
	}, nil
}
