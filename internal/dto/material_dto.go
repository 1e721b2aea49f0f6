package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateMaterialRequest struct {
	MaterialID           string           `json:"material_id"    validate:"required,min=2,max=40"`
	Description          string           `json:"description"    validate:"required,min=2,max=200"`
	Manufacturer         string           `json:"manufacturer"`
	Unit                 string           `json:"unit"`
	ItemsPerUnit         int              `json:"items_per_unit" validate:"omitempty,min=1"`
	CategoryID           *string          `json:"category_id"    validate:"omitempty,uuid"`
	Stock                int              `json:"stock"`
	HeatStock            int              `json:"heat_stock"     validate:"min=0"`
	OrderQuantity        int              `json:"order_quantity" validate:"min=0"`
	ExcludeFromAutoOrder bool             `json:"exclude_from_auto_order"`
	Price                *decimal.Decimal `json:"price"`
}

type UpdateMaterialRequest struct {
	Description          *string          `json:"description"    validate:"omitempty,min=2,max=200"`
	Manufacturer         *string          `json:"manufacturer"`
	Unit                 *string          `json:"unit"`
	ItemsPerUnit         *int             `json:"items_per_unit" validate:"omitempty,min=1"`
	CategoryID           *string          `json:"category_id"    validate:"omitempty,uuid"`
	HeatStock            *int             `json:"heat_stock"     validate:"omitempty,min=0"`
	OrderQuantity        *int             `json:"order_quantity" validate:"omitempty,min=0"`
	ExcludeFromAutoOrder *bool            `json:"exclude_from_auto_order"`
	Price                *decimal.Decimal `json:"price"`
}

// AdjustStockRequest applies a signed correction to the current stock.
type AdjustStockRequest struct {
	Delta int    `json:"delta" validate:"required"`
	Note  string `json:"note"`
}

// RequestOrderRequest marks a material as requested by field staff.
type RequestOrderRequest struct {
	Quantity int `json:"quantity" validate:"omitempty,min=1"`
}

// PlaceOrderRequest marks a material as ordered with the supplier.
type PlaceOrderRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type MaterialFilter struct {
	Code        string `form:"code"`
	Description string `form:"description"`
	CategoryID  string `form:"category_id"`
	Active      string `form:"active"`
	Page        int    `form:"page,default=1"   validate:"min=1"`
	Limit       int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MaterialResponse struct {
	ID                   string          `json:"id"`
	MaterialID           string          `json:"material_id"`
	Description          string          `json:"description"`
	Manufacturer         string          `json:"manufacturer"`
	Unit                 string          `json:"unit"`
	ItemsPerUnit         int             `json:"items_per_unit"`
	CategoryID           *string         `json:"category_id"`
	Stock                int             `json:"stock"`
	HeatStock            int             `json:"heat_stock"`
	OrderQuantity        int             `json:"order_quantity"`
	OrderedQuantity      int             `json:"ordered_quantity"`
	OrderStatus          string          `json:"order_status"`
	OrderDate            *string         `json:"order_date"`
	ExcludeFromAutoOrder bool            `json:"exclude_from_auto_order"`
	Price                decimal.Decimal `json:"price"`
	Active               bool            `json:"active"`
}

type MaterialListResponse struct {
	Data  []MaterialResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// StockLookupResponse is returned by the public stock check endpoint
// (no auth required — used by the field app's barcode scanner).
type StockLookupResponse struct {
	MaterialID  string          `json:"material_id"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
}
