package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// BookingLineRequest references a material by internal ID or human code.
type BookingLineRequest struct {
	MaterialRef  string `json:"material_ref" validate:"required"`
	Quantity     int    `json:"quantity"     validate:"required,min=1"`
	IsConfigured bool   `json:"is_configured"`
	IsManual     bool   `json:"is_manual"`
}

type CreateBookingRequest struct {
	ProjectID *string              `json:"project_id" validate:"omitempty,uuid"`
	Type      string               `json:"type"       validate:"required,oneof=IN OUT"`
	Note      string               `json:"note"`
	Lines     []BookingLineRequest `json:"lines"      validate:"required,min=1,dive"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type BookingFilter struct {
	ProjectID string `form:"project_id"`
	Type      string `form:"type"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type BookingLineResponse struct {
	MaterialRef  string `json:"material_ref"`
	Description  string `json:"description"`
	Quantity     int    `json:"quantity"`
	IsConfigured bool   `json:"is_configured"`
	IsManual     bool   `json:"is_manual"`
}

type BookingResponse struct {
	ID        string                `json:"id"`
	ProjectID *string               `json:"project_id"`
	Type      string                `json:"type"`
	Note      string                `json:"note"`
	Lines     []BookingLineResponse `json:"lines"`
	CreatedAt string                `json:"created_at"`
}

type BookingListResponse struct {
	Data  []BookingResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
