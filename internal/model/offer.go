package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Offer lifecycle states.
const (
	OfferDraft    = "entwurf"
	OfferSent     = "gesendet"
	OfferAccepted = "angenommen"
	OfferRejected = "abgelehnt"
)

// Offer is a priced quotation for a customer, optionally tied to a project.
type Offer struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Number     int64      `gorm:"uniqueIndex;not null"`
	CustomerID uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProjectID  *uuid.UUID `gorm:"type:uuid;index"`
	Status     string     `gorm:"not null;default:'entwurf'"`
	ValidUntil *time.Time
	Net        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TaxRate    decimal.Decimal `gorm:"type:decimal(5,2);not null;default:19"`
	Gross      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Items    []OfferItem `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE"`
	Customer *Customer   `gorm:"foreignKey:CustomerID"`
	Project  *Project    `gorm:"foreignKey:ProjectID"`
}

func (Offer) TableName() string { return "angebote" }

// OfferItem is one priced position of an offer.
type OfferItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OfferID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"not null"`
	Quantity    int       `gorm:"not null"`
	Unit        string    `gorm:"not null;default:'Stück'"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

func (OfferItem) TableName() string { return "angebot_positionen" }
