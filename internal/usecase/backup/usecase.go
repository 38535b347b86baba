package backup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	domainBackup "rentora-backend/internal/domain/backup"
	"rentora-backend/internal/infrastructure/dump"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Usecase struct {
	repo        domainBackup.Repository
	dumper      dump.Dumper
	dir         string
	dumpTimeout time.Duration
	logger      *slog.Logger
}

func NewUsecase(repo domainBackup.Repository, dumper dump.Dumper, dir string, dumpTimeout time.Duration, logger *slog.Logger) *Usecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &Usecase{repo: repo, dumper: dumper, dir: dir, dumpTimeout: dumpTimeout, logger: logger}
}

// Create runs the full export lifecycle synchronously: pending, in_progress,
// then completed or failed. Export failures are captured on the record and
// never returned as errors; the caller inspects Status to learn the outcome.
func (u *Usecase) Create(ctx context.Context, typ domainBackup.Type, scheduledAt *time.Time) (*domainBackup.DatabaseBackup, error) {
	if typ == "" {
		typ = domainBackup.TypeManual
	}
	now := time.Now().UTC()
	filename := fmt.Sprintf("rentora_%s.sql", now.Format("2006-01-02T15-04-05Z"))

	rec := &domainBackup.DatabaseBackup{
		ID:          uuid.New(),
		Filename:    filename,
		FilePath:    filepath.Join(u.dir, filename),
		Status:      domainBackup.StatusPending,
		Type:        typ,
		ScheduledAt: scheduledAt,
	}
	if err := u.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	rec.Status = domainBackup.StatusInProgress
	if err := u.repo.Save(ctx, rec); err != nil {
		return nil, err
	}

	if err := u.export(ctx, rec); err != nil {
		rec.Fail(err.Error())
		if rmErr := os.Remove(rec.FilePath); rmErr != nil && !os.IsNotExist(rmErr) {
			u.logger.Warn("could not remove partial artifact", "path", rec.FilePath, "error", rmErr)
		}
		u.logger.Error("backup export failed", "id", rec.ID, "error", err)
	} else {
		u.logger.Info("backup completed", "id", rec.ID, "size", rec.FileSize)
	}

	if err := u.repo.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (u *Usecase) export(ctx context.Context, rec *domainBackup.DatabaseBackup) error {
	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return err
	}
	if u.dumpTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.dumpTimeout)
		defer cancel()
	}
	size, err := u.dumper.Dump(ctx, rec.FilePath)
	if err != nil {
		return err
	}
	rec.Complete(size, time.Now().UTC())
	return nil
}

func (u *Usecase) Get(ctx context.Context, id uuid.UUID) (*domainBackup.DatabaseBackup, error) {
	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainBackup.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (u *Usecase) ListActive(ctx context.Context) ([]*domainBackup.DatabaseBackup, error) {
	return u.repo.ListActive(ctx)
}

func (u *Usecase) ListTrashed(ctx context.Context) ([]*domainBackup.DatabaseBackup, error) {
	return u.repo.ListTrashed(ctx)
}

// SoftDelete moves a backup to the trash scope; the artifact stays on disk.
func (u *Usecase) SoftDelete(ctx context.Context, id uuid.UUID) (*domainBackup.DatabaseBackup, error) {
	rec, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	rec.TrashedAt = &now
	if err := u.repo.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Restore pulls a backup back out of the trash.
func (u *Usecase) Restore(ctx context.Context, id uuid.UUID) (*domainBackup.DatabaseBackup, error) {
	rec, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !rec.Trashed() {
		return nil, domainBackup.ErrNotTrashed
	}
	rec.TrashedAt = nil
	if err := u.repo.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// PermanentlyDelete removes the artifact and the record. A missing artifact
// is not an error; a failed record delete is.
func (u *Usecase) PermanentlyDelete(ctx context.Context, id uuid.UUID) error {
	rec, err := u.Get(ctx, id)
	if err != nil {
		return err
	}
	return u.remove(ctx, rec)
}

func (u *Usecase) remove(ctx context.Context, rec *domainBackup.DatabaseBackup) error {
	if rec.FilePath != "" {
		if err := os.Remove(rec.FilePath); err != nil && !os.IsNotExist(err) {
			u.logger.Warn("could not remove backup artifact", "path", rec.FilePath, "error", err)
		}
	}
	return u.repo.Delete(ctx, rec)
}

// RetentionSweep runs the two-stage retention policy: active backups older
// than trashDays move to the trash, trashed backups whose trash age exceeds
// deleteDays are removed for good. Rerunning with no new data is a no-op.
func (u *Usecase) RetentionSweep(ctx context.Context, trashDays, deleteDays int) (*SweepResult, error) {
	now := time.Now().UTC()
	res := &SweepResult{}

	aged, err := u.repo.FindActiveCreatedBefore(ctx, now.AddDate(0, 0, -trashDays))
	if err != nil {
		return nil, err
	}
	for _, rec := range aged {
		ts := now
		rec.TrashedAt = &ts
		if err := u.repo.Save(ctx, rec); err != nil {
			return nil, err
		}
		res.Trashed++
	}

	expired, err := u.repo.FindTrashedBefore(ctx, now.AddDate(0, 0, -deleteDays))
	if err != nil {
		return nil, err
	}
	for _, rec := range expired {
		size := rec.FileSize
		if err := u.remove(ctx, rec); err != nil {
			return nil, err
		}
		res.Deleted++
		res.BytesFreed += size
	}

	u.logger.Info("retention sweep finished",
		"trashed", res.Trashed, "deleted", res.Deleted, "bytes_freed", res.BytesFreed)
	return res, nil
}

// CleanupByAge is the simple single-pass variant: completed backups older
// than the cutoff are hard-deleted through the same primitive the sweep
// uses. The two-stage sweep is the canonical policy; this exists for the
// trimmed-down retention command.
func (u *Usecase) CleanupByAge(ctx context.Context, days int) (*SweepResult, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	res := &SweepResult{}

	old, err := u.repo.FindCompletedCreatedBefore(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	for _, rec := range old {
		size := rec.FileSize
		if err := u.remove(ctx, rec); err != nil {
			return nil, err
		}
		res.Deleted++
		res.BytesFreed += size
	}
	return res, nil
}
