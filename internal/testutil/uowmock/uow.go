package uowmock

import (
	"context"
	"errors"

	"rentora-backend/internal/domain/rental"
	"rentora-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn       func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinRentalTxFn func(ctx context.Context, rentalID string, fn func(r uow.Repos, rent *rental.Rental) error) error
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinRentalTx(fn func(context.Context, string, func(uow.Repos, *rental.Rental) error) error) *UoW {
	m.WithinRentalTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinRentalTx(ctx context.Context, rentalID string, fn func(r uow.Repos, rent *rental.Rental) error) error {
	if m.WithinRentalTxFn != nil {
		return m.WithinRentalTxFn(ctx, rentalID, fn)
	}
	return errUnimplemented
}

// Passthrough builds a UoW whose transactions simply run the body against the
// given repos, and whose rental transactions look the rental up through them.
// Good enough for usecase tests that don't care about commit semantics.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(repos)
		},
		WithinRentalTxFn: func(ctx context.Context, rentalID string, fn func(r uow.Repos, rent *rental.Rental) error) error {
			rent, err := repos.Rentals.GetByRentalIDForUpdate(ctx, rentalID)
			if err != nil {
				return err
			}
			return fn(repos, rent)
		},
	}
}
