package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order lifecycle states for a material. The values are the German
// status strings the field app has always written to the store —
// changing them would orphan every existing record.
const (
	OrderStatusNone      = ""         // no order activity
	OrderStatusRequested = "offen"    // requested by field staff, not yet placed
	OrderStatusPlaced    = "bestellt" // placed with the supplier
)

// Material is a catalog entry tracked by the warehouse.
// Stock may go negative: a negative value is backorder debt, i.e.
// committed demand that outgoing bookings could not cover.
type Material struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MaterialID   string    `gorm:"uniqueIndex;not null"` // human-readable code, e.g. MAT-001
	Description  string    `gorm:"index;not null"`
	Manufacturer string
	Unit         string `gorm:"not null;default:'Stück'"`
	// ItemsPerUnit converts from ordering unit to usage unit
	// (a box of 100 cable ties: ItemsPerUnit = 100).
	ItemsPerUnit int        `gorm:"not null;default:1"`
	CategoryID   *uuid.UUID `gorm:"type:uuid;index"`

	Stock     int `gorm:"not null;default:0"`
	HeatStock int `gorm:"not null;default:0"` // reorder threshold

	OrderQuantity        int        `gorm:"not null;default:0"` // standing reorder quantity
	OrderedQuantity      int        `gorm:"not null;default:0"` // quantity currently on order
	OrderStatus          string     `gorm:"not null;default:''"`
	OrderDate            *time.Time
	ExcludeFromAutoOrder bool `gorm:"not null;default:false"`

	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Active    bool            `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
}

func (Material) TableName() string { return "materialien" }
