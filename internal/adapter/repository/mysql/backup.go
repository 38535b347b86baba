package mysql

import (
	"context"
	"time"

	backupDomain "rentora-backend/internal/domain/backup"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BackupRepository struct{ db *gorm.DB }

func NewBackupRepository(db *gorm.DB) *BackupRepository { return &BackupRepository{db: db} }

func (r *BackupRepository) Create(ctx context.Context, b *backupDomain.DatabaseBackup) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BackupRepository) Save(ctx context.Context, b *backupDomain.DatabaseBackup) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BackupRepository) GetByID(ctx context.Context, id uuid.UUID) (*backupDomain.DatabaseBackup, error) {
	var out backupDomain.DatabaseBackup
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *BackupRepository) Delete(ctx context.Context, b *backupDomain.DatabaseBackup) error {
	return r.db.WithContext(ctx).Unscoped().Delete(b).Error
}

func (r *BackupRepository) ListActive(ctx context.Context) ([]*backupDomain.DatabaseBackup, error) {
	var out []*backupDomain.DatabaseBackup
	err := r.db.WithContext(ctx).
		Where("trashed_at IS NULL").
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *BackupRepository) ListTrashed(ctx context.Context) ([]*backupDomain.DatabaseBackup, error) {
	var out []*backupDomain.DatabaseBackup
	err := r.db.WithContext(ctx).
		Where("trashed_at IS NOT NULL").
		Order("trashed_at DESC").
		Find(&out).Error
	return out, err
}

func (r *BackupRepository) FindActiveCreatedBefore(ctx context.Context, cutoff time.Time) ([]*backupDomain.DatabaseBackup, error) {
	var out []*backupDomain.DatabaseBackup
	err := r.db.WithContext(ctx).
		Where("trashed_at IS NULL AND created_at < ?", cutoff).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *BackupRepository) FindTrashedBefore(ctx context.Context, cutoff time.Time) ([]*backupDomain.DatabaseBackup, error) {
	var out []*backupDomain.DatabaseBackup
	err := r.db.WithContext(ctx).
		Where("trashed_at IS NOT NULL AND trashed_at < ?", cutoff).
		Order("trashed_at ASC").
		Find(&out).Error
	return out, err
}

func (r *BackupRepository) FindCompletedCreatedBefore(ctx context.Context, cutoff time.Time) ([]*backupDomain.DatabaseBackup, error) {
	var out []*backupDomain.DatabaseBackup
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", backupDomain.StatusCompleted, cutoff).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}
