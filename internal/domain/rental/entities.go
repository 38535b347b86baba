package rental

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusActive     Status = "active"
	StatusExpired    Status = "expired"
	StatusTerminated Status = "terminated"
	StatusEnded      Status = "ended"
)

type Rental struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	RentalID   string `gorm:"size:32;uniqueIndex:ux_rentals_rental_id_active" json:"rental_id"`
	ClientID   uint64 `gorm:"column:client_id;not null;index:idx_rentals_client" json:"-"`
	PropertyID uint64 `gorm:"column:property_id;not null;index:idx_rentals_property" json:"-"`

	MonthlyRent     float64  `gorm:"type:decimal(12,2)" json:"monthly_rent"`
	SecurityDeposit *float64 `gorm:"type:decimal(12,2)" json:"security_deposit,omitempty"`

	StartDate time.Time  `gorm:"type:date" json:"start_date"`
	EndDate   *time.Time `gorm:"type:date" json:"end_date,omitempty"`

	Status  Status `gorm:"type:enum('pending','active','expired','terminated','ended');default:'active'" json:"status"`
	Remarks string `gorm:"size:64" json:"remarks"`
	Notes   string `gorm:"type:text" json:"notes"`

	ContractSignedAt *time.Time `json:"contract_signed_at,omitempty"`

	// Mirrors PropertyID while Status is active, NULL otherwise. The unique
	// index makes the database the final authority on single-active-rental
	// per property (MySQL has no partial indexes; NULLs never collide).
	ActivePropertyRef *uint64 `gorm:"uniqueIndex:ux_rentals_active_property" json:"-"`

	StatusUpdatedAt time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy       string         `gorm:"size:32" json:"-"`
}

func (Rental) TableName() string { return "rentals" }

// Closed reports whether the rental rejects all further edits.
func (r *Rental) Closed() bool {
	return r.Status == StatusTerminated || r.Status == StatusEnded
}

// AppendNote adds a line to the audit trail; existing notes are never overwritten.
func (r *Rental) AppendNote(note string) {
	if note == "" {
		return
	}
	if r.Notes == "" {
		r.Notes = note
		return
	}
	r.Notes += "\n" + note
}

// SyncActiveRef must be called before every save so the unique index on
// active_property_ref tracks the status column.
func (r *Rental) SyncActiveRef() {
	if r.Status == StatusActive {
		pid := r.PropertyID
		r.ActivePropertyRef = &pid
		return
	}
	r.ActivePropertyRef = nil
}
