package property

import (
	"context"
	"errors"
	"time"

	domainProperty "rentora-backend/internal/domain/property"
	domainRental "rentora-backend/internal/domain/rental"
	"rentora-backend/internal/domain/uow"
	"rentora-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type CreatePropertyInput struct {
	Name             string  `json:"name"`
	Address          string  `json:"address"`
	EstimatedMonthly float64 `json:"estimated_monthly"`
	Status           string  `json:"status,omitempty"`
}

type PropertyDTO struct {
	PropertyID       string    `json:"property_id"`
	Name             string    `json:"name"`
	Address          string    `json:"address"`
	Status           string    `json:"status"`
	EstimatedMonthly float64   `json:"estimated_monthly"`
	CreatedAt        time.Time `json:"created_at"`
}

func (u *Usecase) Create(ctx context.Context, in CreatePropertyInput) (*PropertyDTO, error) {
	if in.Name == "" || in.EstimatedMonthly <= 0 {
		return nil, errors.New("invalid input")
	}
	status := domainProperty.StatusAvailable
	if in.Status != "" {
		s, err := parseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		status = s
	}

	var dto *PropertyDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p := &domainProperty.Property{
			PropertyID:       id.NewID32(),
			Name:             in.Name,
			Address:          in.Address,
			Status:           status,
			EstimatedMonthly: in.EstimatedMonthly,
		}
		if err := r.Properties.Create(ctx, p); err != nil {
			return err
		}
		dto = toDTO(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, propertyID string) (*PropertyDTO, error) {
	var dto *PropertyDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := u.load(ctx, r, propertyID)
		if err != nil {
			return err
		}
		dto = toDTO(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// SyncStatus recomputes the derived status from rental activity. Writes only
// when the stored status differs from the derived one.
func (u *Usecase) SyncStatus(ctx context.Context, propertyID string) (*PropertyDTO, error) {
	var dto *PropertyDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := u.loadForUpdate(ctx, r, propertyID)
		if err != nil {
			return err
		}
		n, err := r.Rentals.CountActiveByPropertyID(ctx, p.ID, 0)
		if err != nil {
			return err
		}
		next := domainProperty.DeriveStatus(p.Status, n > 0)
		if next != p.Status {
			p.Status = next
			if err := r.Properties.Save(ctx, p); err != nil {
				return err
			}
		}
		dto = toDTO(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Delete refuses while an active rental references the property.
func (u *Usecase) Delete(ctx context.Context, propertyID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := u.loadForUpdate(ctx, r, propertyID)
		if err != nil {
			return err
		}
		n, err := r.Rentals.CountActiveByPropertyID(ctx, p.ID, 0)
		if err != nil {
			return err
		}
		if n > 0 {
			return domainProperty.ErrActiveRentalDelete
		}
		return r.Properties.Delete(ctx, p)
	})
}

// UpdateEstimatedMonthly changes the rate; immutable while an active rental
// references the property.
func (u *Usecase) UpdateEstimatedMonthly(ctx context.Context, propertyID string, amount float64) (*PropertyDTO, error) {
	if amount <= 0 {
		return nil, errors.New("invalid input")
	}
	var dto *PropertyDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := u.loadForUpdate(ctx, r, propertyID)
		if err != nil {
			return err
		}
		n, err := r.Rentals.CountActiveByPropertyID(ctx, p.ID, 0)
		if err != nil {
			return err
		}
		if n > 0 {
			return domainProperty.ErrActiveRentalRate
		}
		p.EstimatedMonthly = amount
		if err := r.Properties.Save(ctx, p); err != nil {
			return err
		}
		dto = toDTO(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// ListRentals returns every rental on a property, newest first.
func (u *Usecase) ListRentals(ctx context.Context, propertyID string) ([]*domainRental.Rental, error) {
	var out []*domainRental.Rental
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := u.load(ctx, r, propertyID)
		if err != nil {
			return err
		}
		out, err = r.Rentals.ListByPropertyID(ctx, p.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) load(ctx context.Context, r uow.Repos, propertyID string) (*domainProperty.Property, error) {
	p, err := r.Properties.GetByPropertyID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainProperty.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (u *Usecase) loadForUpdate(ctx context.Context, r uow.Repos, propertyID string) (*domainProperty.Property, error) {
	p, err := u.load(ctx, r, propertyID)
	if err != nil {
		return nil, err
	}
	return r.Properties.GetByIDForUpdate(ctx, p.ID)
}

func toDTO(p *domainProperty.Property) *PropertyDTO {
	return &PropertyDTO{
		PropertyID:       p.PropertyID,
		Name:             p.Name,
		Address:          p.Address,
		Status:           string(p.Status),
		EstimatedMonthly: p.EstimatedMonthly,
		CreatedAt:        p.CreatedAt,
	}
}

func parseStatus(s string) (domainProperty.Status, error) {
	switch domainProperty.Status(s) {
	case domainProperty.StatusAvailable, domainProperty.StatusRented, domainProperty.StatusRenovation,
		domainProperty.StatusSold, domainProperty.StatusMaintenance:
		return domainProperty.Status(s), nil
	}
	return "", errors.New("invalid status " + s)
}
