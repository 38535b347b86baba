package mysql

import (
	"context"

	rentalDomain "rentora-backend/internal/domain/rental"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RentalRepository struct{ db *gorm.DB }

func NewRentalRepository(db *gorm.DB) *RentalRepository { return &RentalRepository{db: db} }

func (r *RentalRepository) Create(ctx context.Context, rec *rentalDomain.Rental) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *RentalRepository) Save(ctx context.Context, rec *rentalDomain.Rental) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *RentalRepository) Delete(ctx context.Context, rec *rentalDomain.Rental) error {
	return r.db.WithContext(ctx).Delete(rec).Error
}

func (r *RentalRepository) GetByRentalID(ctx context.Context, rentalID string) (*rentalDomain.Rental, error) {
	var out rentalDomain.Rental
	res := r.db.WithContext(ctx).Where("rental_id = ?", rentalID).First(&out)
	return &out, res.Error
}

func (r *RentalRepository) GetByRentalIDForUpdate(ctx context.Context, rentalID string) (*rentalDomain.Rental, error) {
	var out rentalDomain.Rental
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("rental_id = ?", rentalID).
		First(&out)
	return &out, res.Error
}

func (r *RentalRepository) CountActiveByPropertyID(ctx context.Context, propertyID, excludeID uint64) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&rentalDomain.Rental{}).
		Where("property_id = ? AND status = ?", propertyID, rentalDomain.StatusActive)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&n).Error
	return n, err
}

func (r *RentalRepository) ListByPropertyID(ctx context.Context, propertyID uint64) ([]*rentalDomain.Rental, error) {
	var out []*rentalDomain.Rental
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *RentalRepository) ListByStatus(ctx context.Context, status rentalDomain.Status) ([]*rentalDomain.Rental, error) {
	var out []*rentalDomain.Rental
	q := r.db.WithContext(ctx)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}
