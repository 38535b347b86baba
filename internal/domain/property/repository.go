package property

import "context"

type Repository interface {
	Create(ctx context.Context, p *Property) error
	GetByID(ctx context.Context, id uint64) (*Property, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Property, error)
	GetByPropertyID(ctx context.Context, propertyID string) (*Property, error)
	Save(ctx context.Context, p *Property) error
	Delete(ctx context.Context, p *Property) error
}
