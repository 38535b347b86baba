package http

import (
	"errors"
	"net/http"

	backupDomain "rentora-backend/internal/domain/backup"
	clientDomain "rentora-backend/internal/domain/client"
	propertyDomain "rentora-backend/internal/domain/property"
	rentalDomain "rentora-backend/internal/domain/rental"

	"github.com/labstack/echo/v4"
)

// statusFor translates domain errors into HTTP statuses: missing entities are
// 404, invariant violations are 409, everything else is a plain bad request.
func statusFor(err error) int {
	switch {
	case errors.Is(err, rentalDomain.ErrNotFound),
		errors.Is(err, propertyDomain.ErrNotFound),
		errors.Is(err, clientDomain.ErrNotFound),
		errors.Is(err, backupDomain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, rentalDomain.ErrAlreadyActive),
		errors.Is(err, rentalDomain.ErrAlreadyTerminated),
		errors.Is(err, rentalDomain.ErrAlreadyExpired),
		errors.Is(err, rentalDomain.ErrAlreadyEnded),
		errors.Is(err, rentalDomain.ErrClosed),
		errors.Is(err, rentalDomain.ErrDuplicateActive),
		errors.Is(err, propertyDomain.ErrActiveRentalDelete),
		errors.Is(err, propertyDomain.ErrActiveRentalRate),
		errors.Is(err, backupDomain.ErrNotTrashed):
		return http.StatusConflict
	}
	var mismatch *rentalDomain.RentMismatchError
	var renew *rentalDomain.RenewDateError
	if errors.As(err, &mismatch) || errors.As(err, &renew) {
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

// respondErr surfaces the domain message verbatim; the messages are already
// human-oriented.
func respondErr(c echo.Context, err error) error {
	return c.JSON(statusFor(err), map[string]string{"error": err.Error()})
}
