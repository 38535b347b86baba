package backup

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

type Type string

const (
	TypeManual    Type = "manual"
	TypeScheduled Type = "scheduled"
)

type DatabaseBackup struct {
	ID uuid.UUID `gorm:"column:id;type:char(36);primaryKey" json:"id"`

	Filename string `gorm:"size:255;not null" json:"filename"`
	FilePath string `gorm:"size:512;not null" json:"file_path"`
	FileSize int64  `gorm:"default:0" json:"file_size"`

	Status       Status `gorm:"size:16;not null;default:'pending'" json:"status"`
	Type         Type   `gorm:"size:16;not null;default:'manual'" json:"type"`
	ErrorMessage string `gorm:"type:text" json:"error_message,omitempty"`

	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// Soft-delete marker for the trash scope. Distinct from hard deletion:
	// trashed records stay queryable and restorable.
	TrashedAt *time.Time `gorm:"index" json:"trashed_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DatabaseBackup) TableName() string { return "database_backups" }

func (b *DatabaseBackup) Trashed() bool { return b.TrashedAt != nil }

// Complete marks a successful export.
func (b *DatabaseBackup) Complete(size int64, at time.Time) {
	b.Status = StatusCompleted
	b.FileSize = size
	b.CompletedAt = &at
}

// Fail records an export failure on the row; the error is kept, not thrown.
func (b *DatabaseBackup) Fail(msg string) {
	b.Status = StatusFailed
	b.ErrorMessage = msg
}
