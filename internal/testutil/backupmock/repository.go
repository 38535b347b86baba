package backupmock

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "rentora-backend/internal/domain/backup"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InMem is an in-memory backup.Repository for lifecycle tests; the sweep
// tests need real query semantics, not canned returns.
type InMem struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*domain.DatabaseBackup

	SaveErr error // injected failure for error-path tests
}

func NewInMem() *InMem {
	return &InMem{rows: make(map[uuid.UUID]*domain.DatabaseBackup)}
}

func (m *InMem) Create(ctx context.Context, b *domain.DatabaseBackup) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	cp := *b
	m.rows[b.ID] = &cp
	return nil
}

func (m *InMem) Save(ctx context.Context, b *domain.DatabaseBackup) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *b
	m.rows[b.ID] = &cp
	return nil
}

func (m *InMem) GetByID(ctx context.Context, id uuid.UUID) (*domain.DatabaseBackup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *InMem) Delete(ctx context.Context, b *domain.DatabaseBackup) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, b.ID)
	return nil
}

func (m *InMem) ListActive(ctx context.Context) ([]*domain.DatabaseBackup, error) {
	return m.filter(func(b *domain.DatabaseBackup) bool { return b.TrashedAt == nil }), nil
}

func (m *InMem) ListTrashed(ctx context.Context) ([]*domain.DatabaseBackup, error) {
	return m.filter(func(b *domain.DatabaseBackup) bool { return b.TrashedAt != nil }), nil
}

func (m *InMem) FindActiveCreatedBefore(ctx context.Context, cutoff time.Time) ([]*domain.DatabaseBackup, error) {
	return m.filter(func(b *domain.DatabaseBackup) bool {
		return b.TrashedAt == nil && b.CreatedAt.Before(cutoff)
	}), nil
}

func (m *InMem) FindTrashedBefore(ctx context.Context, cutoff time.Time) ([]*domain.DatabaseBackup, error) {
	return m.filter(func(b *domain.DatabaseBackup) bool {
		return b.TrashedAt != nil && b.TrashedAt.Before(cutoff)
	}), nil
}

func (m *InMem) FindCompletedCreatedBefore(ctx context.Context, cutoff time.Time) ([]*domain.DatabaseBackup, error) {
	return m.filter(func(b *domain.DatabaseBackup) bool {
		return b.Status == domain.StatusCompleted && b.CreatedAt.Before(cutoff)
	}), nil
}

func (m *InMem) filter(keep func(*domain.DatabaseBackup) bool) []*domain.DatabaseBackup {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.DatabaseBackup
	for _, b := range m.rows {
		if keep(b) {
			cp := *b
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}
