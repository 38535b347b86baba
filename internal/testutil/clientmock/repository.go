package clientmock

import (
	"context"

	domain "rentora-backend/internal/domain/client"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, c *domain.Client) error
	GetByIDFn       func(ctx context.Context, id uint64) (*domain.Client, error)
	GetByClientIDFn func(ctx context.Context, clientID string) (*domain.Client, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Client) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Client, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByClientID(ctx context.Context, clientID string) (*domain.Client, error) {
	if m.GetByClientIDFn != nil {
		return m.GetByClientIDFn(ctx, clientID)
	}
	return nil, context.Canceled
}
