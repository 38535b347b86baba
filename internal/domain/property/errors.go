package property

import "errors"

var (
	ErrNotFound = errors.New("property not found")

	// Messages surfaced verbatim to users.
	ErrActiveRentalDelete = errors.New("This property has an active rental contract and cannot be deleted.")
	ErrActiveRentalRate   = errors.New("The estimated monthly rate cannot be changed while an active rental exists.")
)
