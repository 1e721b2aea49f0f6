package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProjectRequest struct {
	Name       string  `json:"name"        validate:"required,min=2,max=160"`
	CustomerID *string `json:"customer_id" validate:"omitempty,uuid"`
	Street     string  `json:"street"`
	ZipCode    string  `json:"zip_code"`
	City       string  `json:"city"`
	Note       *string `json:"note"`
}

type UpdateProjectRequest struct {
	Name       *string `json:"name"        validate:"omitempty,min=2,max=160"`
	CustomerID *string `json:"customer_id" validate:"omitempty,uuid"`
	Status     *string `json:"status"      validate:"omitempty,oneof=aktiv abgeschlossen pausiert"`
	Street     *string `json:"street"`
	ZipCode    *string `json:"zip_code"`
	City       *string `json:"city"`
	Note       *string `json:"note"`
}

type ProjectFilter struct {
	Name       string `form:"name"`
	CustomerID string `form:"customer_id"`
	Status     string `form:"status"`
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProjectResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	CustomerID   *string `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	Status       string  `json:"status"`
	Street       string  `json:"street"`
	ZipCode      string  `json:"zip_code"`
	City         string  `json:"city"`
	Note         *string `json:"note"`
	CreatedAt    string  `json:"created_at"`
}

type ProjectListResponse struct {
	Data  []ProjectResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
