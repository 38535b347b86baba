package property

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusAvailable   Status = "Available"
	StatusRented      Status = "Rented"
	StatusRenovation  Status = "Renovation"
	StatusSold        Status = "Sold"
	StatusMaintenance Status = "Under Maintenance"
)

type Property struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	PropertyID string `gorm:"size:32;uniqueIndex:ux_properties_property_id_active" json:"property_id"`

	Name    string `gorm:"size:255;not null" json:"name"`
	Address string `gorm:"type:text" json:"address"`

	// Derived from rental activity except when manually pinned to
	// Renovation/Sold/Under Maintenance. See DeriveStatus.
	Status           Status  `gorm:"size:32;default:'Available'" json:"status"`
	EstimatedMonthly float64 `gorm:"type:decimal(12,2)" json:"estimated_monthly"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Property) TableName() string { return "properties" }

// DeriveStatus computes the status a property should carry given whether an
// active rental references it. An active rental always forces Rented; without
// one, Rented falls back to Available and any manually pinned status
// (Renovation, Sold, Under Maintenance) is preserved.
func DeriveStatus(current Status, hasActiveRental bool) Status {
	if hasActiveRental {
		return StatusRented
	}
	if current == StatusRented {
		return StatusAvailable
	}
	return current
}
