package mysql

import (
	"context"

	propertyDomain "rentora-backend/internal/domain/property"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PropertyRepository struct{ db *gorm.DB }

func NewPropertyRepository(db *gorm.DB) *PropertyRepository { return &PropertyRepository{db: db} }

func (r *PropertyRepository) Create(ctx context.Context, p *propertyDomain.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PropertyRepository) Save(ctx context.Context, p *propertyDomain.Property) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PropertyRepository) Delete(ctx context.Context, p *propertyDomain.Property) error {
	return r.db.WithContext(ctx).Delete(p).Error
}

func (r *PropertyRepository) GetByID(ctx context.Context, id uint64) (*propertyDomain.Property, error) {
	var out propertyDomain.Property
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *PropertyRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*propertyDomain.Property, error) {
	var out propertyDomain.Property
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, id)
	return &out, res.Error
}

func (r *PropertyRepository) GetByPropertyID(ctx context.Context, propertyID string) (*propertyDomain.Property, error) {
	var out propertyDomain.Property
	res := r.db.WithContext(ctx).Where("property_id = ?", propertyID).First(&out)
	return &out, res.Error
}
