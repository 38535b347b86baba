package propertymock

import (
	"context"

	domain "rentora-backend/internal/domain/property"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, p *domain.Property) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Property, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Property, error)
	GetByPropertyIDFn  func(ctx context.Context, propertyID string) (*domain.Property, error)
	SaveFn             func(ctx context.Context, p *domain.Property) error
	DeleteFn           func(ctx context.Context, p *domain.Property) error
}

func (m *Repo) Create(ctx context.Context, p *domain.Property) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Property, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Property, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByPropertyID(ctx context.Context, propertyID string) (*domain.Property, error) {
	if m.GetByPropertyIDFn != nil {
		return m.GetByPropertyIDFn(ctx, propertyID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, p *domain.Property) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, p *domain.Property) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, p)
	}
	return nil
}
