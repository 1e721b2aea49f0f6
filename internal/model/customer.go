package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a CRM record; projects and offers reference it.
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"index;not null"`
	Contact   string
	Email     *string
	Phone     *string
	Street    string
	ZipCode   string
	City      string
	Note      *string
	Active    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Customer) TableName() string { return "kunden" }
