package client

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("client not found")

type Client struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	ClientID string `gorm:"size:32;uniqueIndex:ux_clients_client_id_active" json:"client_id"`

	Name  string `gorm:"size:255;not null" json:"name"`
	Email string `gorm:"size:255" json:"email"`
	Phone string `gorm:"size:32" json:"phone"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Client) TableName() string { return "clients" }
