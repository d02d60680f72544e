package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"umrohku_backend/internals/features/registrations/model"
	"umrohku_backend/internals/features/registrations/repository"
)

type fakeStore struct {
	reg     *model.UmrohRegistration
	findErr error
}

func (f *fakeStore) Insert(_ context.Context, _ *model.UmrohRegistration) error { return nil }

func (f *fakeStore) FindByID(_ context.Context, _ uuid.UUID) (*model.UmrohRegistration, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.reg == nil {
		return nil, repository.ErrRegistrationNotFound
	}
	return f.reg, nil
}

func (f *fakeStore) List(_ context.Context, _, _ int) ([]model.UmrohRegistration, error) {
	return nil, nil
}

func (f *fakeStore) CountAll(_ context.Context) (int64, error) { return 0, nil }

func (f *fakeStore) CountByRegistrationDate(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

type fakeSender struct {
	to         string
	message    string
	attachment *Attachment
	calls      int
	err        error
}

func (f *fakeSender) Send(_ context.Context, to, message string, attachment *Attachment) (*Ack, error) {
	f.calls++
	f.to = to
	f.message = message
	f.attachment = attachment
	if f.err != nil {
		return nil, f.err
	}
	return &Ack{Success: true}, nil
}

func pendaftar() *model.UmrohRegistration {
	return &model.UmrohRegistration{
		ID:               uuid.New(),
		RegistrationID:   "UM2603050001",
		FullName:         "Budi Santoso",
		Whatsapp:         "08123456789",
		SelectedPackage:  "hemat-jabodetabek",
		RegistrationDate: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestConfirm_DenganLampiran(t *testing.T) {
	store := &fakeStore{reg: pendaftar()}
	sender := &fakeSender{}
	svc := NewConfirmationService(store, sender, true)

	res, err := svc.Confirm(context.Background(), store.reg.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, "UM2603050001", res.RegistrationID)
	assert.Equal(t, "628123456789", res.To) // prefix 0 → 62
	assert.Contains(t, res.Message, "Assalamualaikum Budi Santoso")
	assert.True(t, res.AttachmentSent)

	assert.Equal(t, 1, sender.calls)
	require.NotNil(t, sender.attachment)
	assert.Equal(t, "Konfirmasi-Umrah-Budi-Santoso.pdf", sender.attachment.Filename)
	assert.NotEmpty(t, sender.attachment.Blob)
}

func TestConfirm_TanpaLampiran(t *testing.T) {
	store := &fakeStore{reg: pendaftar()}
	sender := &fakeSender{}
	svc := NewConfirmationService(store, sender, false)

	res, err := svc.Confirm(context.Background(), store.reg.ID, nil)
	require.NoError(t, err)
	assert.False(t, res.AttachmentSent)
	assert.Nil(t, sender.attachment)
}

func TestConfirm_OverridePerPanggilan(t *testing.T) {
	store := &fakeStore{reg: pendaftar()}
	sender := &fakeSender{}

	// Default true, request minta false
	svc := NewConfirmationService(store, sender, true)
	off := false
	res, err := svc.Confirm(context.Background(), store.reg.ID, &off)
	require.NoError(t, err)
	assert.False(t, res.AttachmentSent)

	// Default false, request minta true
	svc = NewConfirmationService(store, sender, false)
	on := true
	res, err = svc.Confirm(context.Background(), store.reg.ID, &on)
	require.NoError(t, err)
	assert.True(t, res.AttachmentSent)
}

func TestConfirm_TidakDitemukan(t *testing.T) {
	store := &fakeStore{}
	sender := &fakeSender{}
	svc := NewConfirmationService(store, sender, true)

	res, err := svc.Confirm(context.Background(), uuid.New(), nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, repository.ErrRegistrationNotFound)
	assert.Zero(t, sender.calls, "tidak ada data → tidak boleh ada pesan terkirim")
}

func TestConfirm_StoreError(t *testing.T) {
	store := &fakeStore{findErr: errors.New("connection reset")}
	sender := &fakeSender{}
	svc := NewConfirmationService(store, sender, true)

	res, err := svc.Confirm(context.Background(), uuid.New(), nil)
	assert.Nil(t, res)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Zero(t, sender.calls)
}

func TestConfirm_DispatchError(t *testing.T) {
	store := &fakeStore{reg: pendaftar()}
	sender := &fakeSender{err: errors.New("gateway WA menjawab 401: unauthorized")}
	svc := NewConfirmationService(store, sender, false)

	res, err := svc.Confirm(context.Background(), store.reg.ID, nil)
	assert.Nil(t, res)

	var dispatchErr *DispatchError
	require.ErrorAs(t, err, &dispatchErr)
	assert.Contains(t, err.Error(), "gagal mengirim pesan konfirmasi")
}
