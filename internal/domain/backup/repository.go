package backup

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, b *DatabaseBackup) error
	Save(ctx context.Context, b *DatabaseBackup) error
	GetByID(ctx context.Context, id uuid.UUID) (*DatabaseBackup, error)
	// Delete removes the record irrecoverably.
	Delete(ctx context.Context, b *DatabaseBackup) error

	ListActive(ctx context.Context) ([]*DatabaseBackup, error)
	ListTrashed(ctx context.Context) ([]*DatabaseBackup, error)

	FindActiveCreatedBefore(ctx context.Context, cutoff time.Time) ([]*DatabaseBackup, error)
	FindTrashedBefore(ctx context.Context, cutoff time.Time) ([]*DatabaseBackup, error)
	FindCompletedCreatedBefore(ctx context.Context, cutoff time.Time) ([]*DatabaseBackup, error)
}
