package model

import (
	"time"

	"github.com/google/uuid"
)

// Project is a customer job site. Outgoing bookings reference a project;
// the project's bill of materials is derived from them.
type Project struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string     `gorm:"index;not null"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index"`
	Status     string     `gorm:"not null;default:'aktiv'"` // "aktiv" | "abgeschlossen" | "pausiert"
	Street     string
	ZipCode    string
	City       string
	Note       *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Customer *Customer `gorm:"foreignKey:CustomerID"`
}

func (Project) TableName() string { return "projekte" }
