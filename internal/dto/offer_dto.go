package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type OfferItemRequest struct {
	Description string          `json:"description" validate:"required,min=2,max=200"`
	Quantity    int             `json:"quantity"    validate:"required,min=1"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"  validate:"required"`
}

type CreateOfferRequest struct {
	CustomerID string             `json:"customer_id" validate:"required,uuid"`
	ProjectID  *string            `json:"project_id"  validate:"omitempty,uuid"`
	ValidUntil *string            `json:"valid_until"`
	TaxRate    *decimal.Decimal   `json:"tax_rate"`
	Items      []OfferItemRequest `json:"items"       validate:"required,min=1,dive"`
}

type UpdateOfferStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=entwurf gesendet angenommen abgelehnt"`
}

type OfferFilter struct {
	CustomerID string `form:"customer_id"`
	ProjectID  string `form:"project_id"`
	Status     string `form:"status"`
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OfferItemResponse struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

type OfferResponse struct {
	ID         string              `json:"id"`
	Number     int64               `json:"number"`
	CustomerID string              `json:"customer_id"`
	ProjectID  *string             `json:"project_id"`
	Status     string              `json:"status"`
	ValidUntil *string             `json:"valid_until"`
	Net        decimal.Decimal     `json:"net"`
	TaxRate    decimal.Decimal     `json:"tax_rate"`
	Gross      decimal.Decimal     `json:"gross"`
	Items      []OfferItemResponse `json:"items"`
	CreatedAt  string              `json:"created_at"`
}

type OfferListResponse struct {
	Data  []OfferResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
