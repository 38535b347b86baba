package rental

import "context"

type Repository interface {
	Create(ctx context.Context, r *Rental) error
	GetByRentalID(ctx context.Context, rentalID string) (*Rental, error)
	GetByRentalIDForUpdate(ctx context.Context, rentalID string) (*Rental, error)
	Save(ctx context.Context, r *Rental) error
	Delete(ctx context.Context, r *Rental) error
	// CountActiveByPropertyID counts active rentals on a property, excluding
	// excludeID (pass 0 to count all). Used by the exclusivity check.
	CountActiveByPropertyID(ctx context.Context, propertyID, excludeID uint64) (int64, error)
	ListByPropertyID(ctx context.Context, propertyID uint64) ([]*Rental, error)
	// ListByStatus lists rentals with the given status, newest first.
	// An empty status lists everything.
	ListByStatus(ctx context.Context, status Status) ([]*Rental, error)
}
