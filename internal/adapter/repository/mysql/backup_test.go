package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "rentora-backend/internal/domain/backup"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type backupSQLite struct {
	ID           string     `gorm:"primaryKey;column:id"`
	Filename     string     `gorm:"column:filename"`
	FilePath     string     `gorm:"column:file_path"`
	FileSize     int64      `gorm:"column:file_size"`
	Status       string     `gorm:"type:text;column:status"`
	Type         string     `gorm:"type:text;column:type"`
	ErrorMessage string     `gorm:"column:error_message"`
	ScheduledAt  *time.Time `gorm:"column:scheduled_at"`
	CompletedAt  *time.Time `gorm:"column:completed_at"`
	TrashedAt    *time.Time `gorm:"column:trashed_at"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (backupSQLite) TableName() string { return "database_backups" }

func openBackupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&backupSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeBackup(status domain.Status, createdAt time.Time, trashedAt *time.Time) *domain.DatabaseBackup {
	return &domain.DatabaseBackup{
		ID:        uuid.New(),
		Filename:  "rentora_test.sql",
		FilePath:  "/tmp/rentora_test.sql",
		FileSize:  128,
		Status:    status,
		Type:      domain.TypeManual,
		TrashedAt: trashedAt,
		CreatedAt: createdAt,
	}
}

func TestBackupCreateAndGetByID(t *testing.T) {
	db := openBackupTestDB(t)
	repo := NewBackupRepository(db)
	ctx := context.Background()

	b := makeBackup(domain.StatusCompleted, time.Now().UTC(), nil)
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != b.ID || got.Status != domain.StatusCompleted {
		t.Fatalf("unexpected row: %+v", got)
	}

	if _, err := repo.GetByID(ctx, uuid.New()); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBackupListScopes(t *testing.T) {
	db := openBackupTestDB(t)
	repo := NewBackupRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	trashTime := now.Add(-time.Hour)

	if err := repo.Create(ctx, makeBackup(domain.StatusCompleted, now, nil)); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(ctx, makeBackup(domain.StatusCompleted, now.Add(-2*time.Hour), &trashTime)); err != nil {
		t.Fatal(err)
	}

	active, err := repo.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 1 || active[0].TrashedAt != nil {
		t.Fatalf("active scope wrong: %+v", active)
	}

	trashed, err := repo.ListTrashed(ctx)
	if err != nil {
		t.Fatalf("ListTrashed: %v", err)
	}
	if len(trashed) != 1 || trashed[0].TrashedAt == nil {
		t.Fatalf("trash scope wrong: %+v", trashed)
	}
}

func TestBackupRetentionQueries(t *testing.T) {
	db := openBackupTestDB(t)
	repo := NewBackupRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	oldTrash := now.AddDate(0, 0, -10)
	freshTrash := now.AddDate(0, 0, -2)

	agedActive := makeBackup(domain.StatusCompleted, now.AddDate(0, 0, -40), nil)
	freshActive := makeBackup(domain.StatusCompleted, now, nil)
	expiredTrash := makeBackup(domain.StatusCompleted, now.AddDate(0, 0, -40), &oldTrash)
	keptTrash := makeBackup(domain.StatusCompleted, now.AddDate(0, 0, -40), &freshTrash)
	oldFailed := makeBackup(domain.StatusFailed, now.AddDate(0, 0, -40), nil)
	for _, b := range []*domain.DatabaseBackup{agedActive, freshActive, expiredTrash, keptTrash, oldFailed} {
		if err := repo.Create(ctx, b); err != nil {
			t.Fatal(err)
		}
	}

	aged, err := repo.FindActiveCreatedBefore(ctx, now.AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("FindActiveCreatedBefore: %v", err)
	}
	if len(aged) != 2 { // agedActive + oldFailed; trashed rows excluded
		t.Fatalf("aged actives = %d, want 2", len(aged))
	}

	expired, err := repo.FindTrashedBefore(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		t.Fatalf("FindTrashedBefore: %v", err)
	}
	if len(expired) != 1 || expired[0].ID != expiredTrash.ID {
		t.Fatalf("expired trash wrong: %+v", expired)
	}

	completed, err := repo.FindCompletedCreatedBefore(ctx, now.AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("FindCompletedCreatedBefore: %v", err)
	}
	if len(completed) != 3 { // failed row excluded, trash state irrelevant here
		t.Fatalf("old completed = %d, want 3", len(completed))
	}
}

func TestBackupSaveAndHardDelete(t *testing.T) {
	db := openBackupTestDB(t)
	repo := NewBackupRepository(db)
	ctx := context.Background()

	b := makeBackup(domain.StatusCompleted, time.Now().UTC(), nil)
	if err := repo.Create(ctx, b); err != nil {
		t.Fatal(err)
	}

	now := time.Now().UTC()
	b.TrashedAt = &now
	if err := repo.Save(ctx, b); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := repo.GetByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.TrashedAt == nil {
		t.Fatalf("trash marker not persisted")
	}

	if err := repo.Delete(ctx, b); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, b.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("hard-deleted row still visible: %v", err)
	}
	var n int64
	if err := db.Model(&backupSQLite{}).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("row survived hard delete, count=%d", n)
	}
}
