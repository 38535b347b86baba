package rental

import (
	"time"
)

type CreateRentalInput struct {
	ClientID        string     `json:"client_id"`
	PropertyID      string     `json:"property_id"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	MonthlyRent     *float64   `json:"monthly_rent,omitempty"`
	SecurityDeposit *float64   `json:"security_deposit,omitempty"`
	Status          string     `json:"status,omitempty"`
}

// UpdateRentalInput carries optional field changes; nil means "leave as is".
// AppendNotes is added to the audit trail, never replacing earlier notes.
type UpdateRentalInput struct {
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	MonthlyRent     *float64   `json:"monthly_rent,omitempty"`
	SecurityDeposit *float64   `json:"security_deposit,omitempty"`
	AppendNotes     string     `json:"append_notes,omitempty"`
}

type RentalDTO struct {
	RentalID         string     `json:"rental_id"`
	ClientID         string     `json:"client_id"`
	PropertyID       string     `json:"property_id"`
	MonthlyRent      float64    `json:"monthly_rent"`
	SecurityDeposit  *float64   `json:"security_deposit,omitempty"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	Status           string     `json:"status"`
	Remarks          string     `json:"remarks"`
	Notes            string     `json:"notes"`
	ContractSignedAt *time.Time `json:"contract_signed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}
