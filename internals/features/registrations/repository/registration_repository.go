package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"umrohku_backend/internals/features/registrations/model"
)

var (
	// Data pendaftar tidak ada untuk id yang diminta.
	ErrRegistrationNotFound = errors.New("data pendaftar tidak ditemukan")

	// registration_id bentrok dengan baris lain di tanggal yang sama.
	// Service boleh regenerate sequence lalu coba lagi.
	ErrDuplicateRegistrationID = errors.New("registration_id sudah terpakai")
)

type RegistrationRepository interface {
	Insert(ctx context.Context, reg *model.UmrohRegistration) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.UmrohRegistration, error)
	List(ctx context.Context, offset, limit int) ([]model.UmrohRegistration, error)
	CountAll(ctx context.Context) (int64, error)
	CountByRegistrationDate(ctx context.Context, day time.Time) (int64, error)
}

type gormRegistrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &gormRegistrationRepository{db: db}
}

func (r *gormRegistrationRepository) Insert(ctx context.Context, reg *model.UmrohRegistration) error {
	if err := r.db.WithContext(ctx).Create(reg).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateRegistrationID
		}
		return err
	}
	return nil
}

func (r *gormRegistrationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.UmrohRegistration, error) {
	var reg model.UmrohRegistration
	if err := r.db.WithContext(ctx).First(&reg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	return &reg, nil
}

func (r *gormRegistrationRepository) List(ctx context.Context, offset, limit int) ([]model.UmrohRegistration, error) {
	var regs []model.UmrohRegistration
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *gormRegistrationRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UmrohRegistration{}).Count(&count).Error
	return count, err
}

func (r *gormRegistrationRepository) CountByRegistrationDate(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.UmrohRegistration{}).
		Where("registration_date = ?", day.Format("2006-01-02")).
		Count(&count).Error
	return count, err
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// fallback string check (kompatibel untuk lib/pq & pgx yang dibungkus)
	msg := err.Error()
	return strings.Contains(msg, "23505") || strings.Contains(msg, "duplicate key")
}
