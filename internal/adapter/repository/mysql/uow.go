package mysql

import (
	"context"

	"rentora-backend/internal/domain/rental"
	"rentora-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Rentals:    &RentalRepository{db: tx},
		Properties: &PropertyRepository{db: tx},
		Clients:    &ClientRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(u.repos(tx))
	})
}

func (u *GormUoW) WithinRentalTx(ctx context.Context, rentalID string, fn func(r uow.Repos, rent *rental.Rental) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := u.repos(tx)
		// lock the rental row up-front to prevent races
		rent, err := r.Rentals.GetByRentalIDForUpdate(ctx, rentalID)
		if err != nil {
			return err
		}
		return fn(r, rent)
	})
}
