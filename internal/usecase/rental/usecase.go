package rental

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	domainClient "rentora-backend/internal/domain/client"
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

func (u *Usecase) Create(ctx context.Context, in CreateRentalInput) (*RentalDTO, error) {
	if in.ClientID == "" || in.PropertyID == "" || in.StartDate.IsZero() {
		return nil, errors.New("invalid input")
	}
	status := domainRental.StatusActive
	if in.Status != "" {
		s, err := parseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		status = s
	}

	var dto *RentalDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		cl, err := r.Clients.GetByClientID(ctx, in.ClientID)
		if err != nil {
			return domainClient.ErrNotFound
		}
		prop, err := r.Properties.GetByPropertyID(ctx, in.PropertyID)
		if err != nil {
			return domainProperty.ErrNotFound
		}

		rentAmt := prop.EstimatedMonthly
		if in.MonthlyRent != nil {
			rentAmt = *in.MonthlyRent
		}

		now := time.Now().UTC()
		rent := &domainRental.Rental{
			RentalID:        id.NewID32(),
			ClientID:        cl.ID,
			PropertyID:      prop.ID,
			MonthlyRent:     rentAmt,
			SecurityDeposit: in.SecurityDeposit,
			StartDate:       in.StartDate,
			EndDate:         in.EndDate,
			Status:          status,
			StatusUpdatedAt: now,
		}
		if err := u.validateAndPersist(ctx, r, rent, prop, true); err != nil {
			return err
		}
		dto = toDTO(rent, cl.ClientID, prop.PropertyID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, rentalID string) (*RentalDTO, error) {
	var dto *RentalDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		rent, err := r.Rentals.GetByRentalID(ctx, rentalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainRental.ErrNotFound
			}
			return err
		}
		d, err := u.resolveDTO(ctx, r, rent)
		if err != nil {
			return err
		}
		dto = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// List returns rentals newest first, optionally filtered by status. Client
// and property public IDs are memoized across rows since listings tend to
// cluster on a few properties.
func (u *Usecase) List(ctx context.Context, status string) ([]*RentalDTO, error) {
	var filter domainRental.Status
	if status != "" {
		s, err := parseStatus(status)
		if err != nil {
			return nil, err
		}
		filter = s
	}

	var out []*RentalDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		rents, err := r.Rentals.ListByStatus(ctx, filter)
		if err != nil {
			return err
		}
		clientIDs := map[uint64]string{}
		propertyIDs := map[uint64]string{}
		out = make([]*RentalDTO, 0, len(rents))
		for _, rent := range rents {
			if _, ok := clientIDs[rent.ClientID]; !ok {
				cl, err := r.Clients.GetByID(ctx, rent.ClientID)
				if err != nil {
					return err
				}
				clientIDs[rent.ClientID] = cl.ClientID
			}
			if _, ok := propertyIDs[rent.PropertyID]; !ok {
				prop, err := r.Properties.GetByID(ctx, rent.PropertyID)
				if err != nil {
					return err
				}
				propertyIDs[rent.PropertyID] = prop.PropertyID
			}
			out = append(out, toDTO(rent, clientIDs[rent.ClientID], propertyIDs[rent.PropertyID]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, rentalID string, in UpdateRentalInput) (*RentalDTO, error) {
	return u.mutate(ctx, rentalID, func(ctx context.Context, r uow.Repos, rent *domainRental.Rental, prop *domainProperty.Property) error {
		if rent.Closed() {
			return domainRental.ErrClosed
		}
		if in.StartDate != nil {
			rent.StartDate = *in.StartDate
		}
		if in.EndDate != nil {
			rent.EndDate = in.EndDate
		}
		if in.MonthlyRent != nil {
			rent.MonthlyRent = *in.MonthlyRent
		}
		if in.SecurityDeposit != nil {
			rent.SecurityDeposit = in.SecurityDeposit
		}
		rent.AppendNote(in.AppendNotes)
		return nil
	})
}

// Activate moves a rental to active, stamping the contract signature time on
// first activation. The property is forced to Rented by the save pipeline.
func (u *Usecase) Activate(ctx context.Context, rentalID string) (*RentalDTO, error) {
	return u.mutate(ctx, rentalID, func(ctx context.Context, r uow.Repos, rent *domainRental.Rental, prop *domainProperty.Property) error {
		if rent.Status == domainRental.StatusActive {
			return domainRental.ErrAlreadyActive
		}
		now := time.Now().UTC()
		rent.Status = domainRental.StatusActive
		rent.StatusUpdatedAt = now
		if rent.ContractSignedAt == nil {
			rent.ContractSignedAt = &now
		}
		return nil
	})
}

func (u *Usecase) Terminate(ctx context.Context, rentalID, reason string) (*RentalDTO, error) {
	return u.mutate(ctx, rentalID, func(ctx context.Context, r uow.Repos, rent *domainRental.Rental, prop *domainProperty.Property) error {
		if rent.Status == domainRental.StatusTerminated {
			return domainRental.ErrAlreadyTerminated
		}
		rent.Status = domainRental.StatusTerminated
		rent.StatusUpdatedAt = time.Now().UTC()
		if reason != "" {
			rent.AppendNote("Terminated: " + reason)
		}
		return nil
	})
}

func (u *Usecase) MarkExpired(ctx context.Context, rentalID string) (*RentalDTO, error) {
	return u.mutate(ctx, rentalID, func(ctx context.Context, r uow.Repos, rent *domainRental.Rental, prop *domainProperty.Property) error {
		if rent.Status == domainRental.StatusExpired {
			return domainRental.ErrAlreadyExpired
		}
		rent.Status = domainRental.StatusExpired
		rent.StatusUpdatedAt = time.Now().UTC()
		return nil
	})
}

func (u *Usecase) End(ctx context.Context, rentalID, reason string) (*RentalDTO, error) {
	return u.mutate(ctx, rentalID, func(ctx context.Context, r uow.Repos, rent *domainRental.Rental, prop *domainProperty.Property) error {
		if rent.Status == domainRental.StatusEnded {
			return domainRental.ErrAlreadyEnded
		}
		rent.Status = domainRental.StatusEnded
		rent.StatusUpdatedAt = time.Now().UTC()
		note := "Ended (Not Renewed)"
		if reason != "" {
			note += ": " + reason
		}
		rent.AppendNote(note)
		return nil
	})
}

// Renew extends the rental's end date. Expired rentals renewed to a date on
// or after today flip back to active; the monthly rent is re-synced to the
// property's current rate before validation so rate drift cannot accumulate.
func (u *Usecase) Renew(ctx context.Context, rentalID string, newEndDate time.Time, remarks string) (*RentalDTO, error) {
	if newEndDate.IsZero() {
		return nil, errors.New("invalid input")
	}
	newEnd := dateOnly(newEndDate)
	return u.mutate(ctx, rentalID, func(ctx context.Context, r uow.Repos, rent *domainRental.Rental, prop *domainProperty.Property) error {
		if rent.Closed() {
			return domainRental.ErrClosed
		}

		today := dateOnly(time.Now().UTC())
		floor, what := dateOnly(rent.StartDate), "start date"
		if rent.StartDate.IsZero() {
			floor, what = today, "current date"
		}
		if !newEnd.After(floor) {
			return &domainRental.RenewDateError{Given: fmtDate(newEnd), Floor: fmtDate(floor), What: what}
		}
		if rent.EndDate != nil && !newEnd.After(dateOnly(*rent.EndDate)) {
			return &domainRental.RenewDateError{Given: fmtDate(newEnd), Floor: fmtDate(*rent.EndDate), What: "current end date"}
		}

		prev := "not set"
		if rent.EndDate != nil {
			prev = fmtDate(*rent.EndDate)
		}
		note := fmt.Sprintf("Renewed until %s (previously %s)", fmtDate(newEnd), prev)
		if remarks != "" {
			note += ". " + remarks
		}
		rent.AppendNote(note)

		rent.EndDate = &newEnd
		if rent.Status == domainRental.StatusExpired && !newEnd.Before(today) {
			rent.Status = domainRental.StatusActive
			rent.StatusUpdatedAt = time.Now().UTC()
		}
		rent.MonthlyRent = prop.EstimatedMonthly
		return nil
	})
}

// Delete is the audit-losing admin operation; it is not a lifecycle
// transition. The property status is recomputed afterwards.
func (u *Usecase) Delete(ctx context.Context, rentalID string) error {
	return u.uow.WithinRentalTx(ctx, rentalID, func(r uow.Repos, rent *domainRental.Rental) error {
		prop, err := r.Properties.GetByIDForUpdate(ctx, rent.PropertyID)
		if err != nil {
			return domainProperty.ErrNotFound
		}
		if err := r.Rentals.Delete(ctx, rent); err != nil {
			return err
		}
		return syncPropertyStatus(ctx, r, prop)
	})
}

// mutate runs the shared transition pipeline: lock rental, lock property,
// apply the change, then validate and persist with property re-sync.
func (u *Usecase) mutate(ctx context.Context, rentalID string, apply func(ctx context.Context, r uow.Repos, rent *domainRental.Rental, prop *domainProperty.Property) error) (*RentalDTO, error) {
	var dto *RentalDTO
	err := u.uow.WithinRentalTx(ctx, rentalID, func(r uow.Repos, rent *domainRental.Rental) error {
		prop, err := r.Properties.GetByIDForUpdate(ctx, rent.PropertyID)
		if err != nil {
			return domainProperty.ErrNotFound
		}
		if err := apply(ctx, r, rent, prop); err != nil {
			return err
		}
		if err := u.validateAndPersist(ctx, r, rent, prop, false); err != nil {
			return err
		}
		d, err := u.resolveDTO(ctx, r, rent)
		if err != nil {
			return err
		}
		dto = d
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainRental.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// validateAndPersist is the explicit save pipeline: invariant checks, remarks
// derivation, write, then property status recomputation.
func (u *Usecase) validateAndPersist(ctx context.Context, r uow.Repos, rent *domainRental.Rental, prop *domainProperty.Property, isNew bool) error {
	if rentMismatch(rent.MonthlyRent, prop.EstimatedMonthly) {
		return &domainRental.RentMismatchError{Rent: rent.MonthlyRent, Estimated: prop.EstimatedMonthly}
	}
	if rent.Status == domainRental.StatusActive {
		n, err := r.Rentals.CountActiveByPropertyID(ctx, rent.PropertyID, rent.ID)
		if err != nil {
			return err
		}
		if n > 0 {
			return domainRental.ErrDuplicateActive
		}
	}

	rent.Remarks = RemarksFor(rent.EndDate, time.Now().UTC())
	rent.SyncActiveRef()

	var err error
	if isNew {
		err = r.Rentals.Create(ctx, rent)
	} else {
		err = r.Rentals.Save(ctx, rent)
	}
	if err != nil {
		return err
	}
	return syncPropertyStatus(ctx, r, prop)
}

// syncPropertyStatus applies the derived status, writing only on change.
func syncPropertyStatus(ctx context.Context, r uow.Repos, prop *domainProperty.Property) error {
	n, err := r.Rentals.CountActiveByPropertyID(ctx, prop.ID, 0)
	if err != nil {
		return err
	}
	next := domainProperty.DeriveStatus(prop.Status, n > 0)
	if next == prop.Status {
		return nil
	}
	prop.Status = next
	return r.Properties.Save(ctx, prop)
}

func (u *Usecase) resolveDTO(ctx context.Context, r uow.Repos, rent *domainRental.Rental) (*RentalDTO, error) {
	cl, err := r.Clients.GetByID(ctx, rent.ClientID)
	if err != nil {
		return nil, err
	}
	prop, err := r.Properties.GetByID(ctx, rent.PropertyID)
	if err != nil {
		return nil, err
	}
	return toDTO(rent, cl.ClientID, prop.PropertyID), nil
}

func toDTO(rent *domainRental.Rental, clientID, propertyID string) *RentalDTO {
	return &RentalDTO{
		RentalID:         rent.RentalID,
		ClientID:         clientID,
		PropertyID:       propertyID,
		MonthlyRent:      rent.MonthlyRent,
		SecurityDeposit:  rent.SecurityDeposit,
		StartDate:        rent.StartDate,
		EndDate:          rent.EndDate,
		Status:           string(rent.Status),
		Remarks:          rent.Remarks,
		Notes:            rent.Notes,
		ContractSignedAt: rent.ContractSignedAt,
		CreatedAt:        rent.CreatedAt,
	}
}

// Comparison happens in whole cents so a difference of exactly 0.01 passes.
func rentMismatch(rent, estimated float64) bool {
	return math.Round(math.Abs(rent-estimated)*100) > 1
}

func parseStatus(s string) (domainRental.Status, error) {
	switch domainRental.Status(s) {
	case domainRental.StatusPending, domainRental.StatusActive, domainRental.StatusExpired,
		domainRental.StatusTerminated, domainRental.StatusEnded:
		return domainRental.Status(s), nil
	}
	return "", fmt.Errorf("invalid status %q", s)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func fmtDate(t time.Time) string { return t.Format("2006-01-02") }
