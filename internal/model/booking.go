package model

import (
	"time"

	"github.com/google/uuid"
)

// Booking movement directions.
const (
	BookingIn  = "IN"  // goods received into the warehouse
	BookingOut = "OUT" // goods issued, usually to a project
)

// Booking is a ledger event recording material movement. Append-only:
// corrections are made by booking the inverse movement, never by editing.
type Booking struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID *uuid.UUID `gorm:"type:uuid;index"` // nil for plain warehouse movements
	Type      string     `gorm:"not null;index"`  // BookingIn | BookingOut
	Note      string
	CreatedBy string
	CreatedAt time.Time

	Lines   []BookingLine `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	Project *Project      `gorm:"foreignKey:ProjectID"`
}

func (Booking) TableName() string { return "buchungen" }

// BookingLine is one material position of a booking. MaterialRef holds
// whatever identifier the client sent — the internal UUID or the human
// material code. Records imported from the legacy store carry either,
// so consumers resolve the reference against both fields.
type BookingLine struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BookingID   uuid.UUID `gorm:"type:uuid;not null;index"`
	MaterialRef string    `gorm:"not null;index"`
	Quantity    int       `gorm:"not null"`
	// IsConfigured marks lines produced by the PV layout configurator,
	// IsManual marks lines added by hand in the booking form.
	IsConfigured bool `gorm:"not null;default:false"`
	IsManual     bool `gorm:"not null;default:false"`
}

func (BookingLine) TableName() string { return "buchung_positionen" }
