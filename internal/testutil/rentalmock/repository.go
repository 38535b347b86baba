package rentalmock

import (
	"context"

	domain "rentora-backend/internal/domain/rental"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only fill in the function fields a test needs; the rest default to no-ops
// or context.Canceled.
type Repo struct {
	CreateFn                  func(ctx context.Context, r *domain.Rental) error
	GetByRentalIDFn           func(ctx context.Context, rentalID string) (*domain.Rental, error)
	GetByRentalIDForUpdateFn  func(ctx context.Context, rentalID string) (*domain.Rental, error)
	SaveFn                    func(ctx context.Context, r *domain.Rental) error
	DeleteFn                  func(ctx context.Context, r *domain.Rental) error
	CountActiveByPropertyIDFn func(ctx context.Context, propertyID, excludeID uint64) (int64, error)
	ListByPropertyIDFn        func(ctx context.Context, propertyID uint64) ([]*domain.Rental, error)
	ListByStatusFn            func(ctx context.Context, status domain.Status) ([]*domain.Rental, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.Rental) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByRentalID(ctx context.Context, rentalID string) (*domain.Rental, error) {
	if m.GetByRentalIDFn != nil {
		return m.GetByRentalIDFn(ctx, rentalID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByRentalIDForUpdate(ctx context.Context, rentalID string) (*domain.Rental, error) {
	if m.GetByRentalIDForUpdateFn != nil {
		return m.GetByRentalIDForUpdateFn(ctx, rentalID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, r *domain.Rental) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, r *domain.Rental) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, r)
	}
	return nil
}

func (m *Repo) CountActiveByPropertyID(ctx context.Context, propertyID, excludeID uint64) (int64, error) {
	if m.CountActiveByPropertyIDFn != nil {
		return m.CountActiveByPropertyIDFn(ctx, propertyID, excludeID)
	}
	return 0, nil
}

func (m *Repo) ListByPropertyID(ctx context.Context, propertyID uint64) ([]*domain.Rental, error) {
	if m.ListByPropertyIDFn != nil {
		return m.ListByPropertyIDFn(ctx, propertyID)
	}
	return nil, nil
}

func (m *Repo) ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Rental, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status)
	}
	return nil, nil
}
