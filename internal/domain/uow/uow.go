package uow

import (
	"context"

	"rentora-backend/internal/domain/client"
	"rentora-backend/internal/domain/property"
	"rentora-backend/internal/domain/rental"
)

// domain/uow/uow.go
type Repos struct {
	Rentals    rental.Repository
	Properties property.Repository
	Clients    client.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock rental first, then pass it in
	WithinRentalTx(ctx context.Context, rentalID string, fn func(r Repos, rent *rental.Rental) error) error
}
