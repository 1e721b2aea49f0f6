package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateCustomerRequest struct {
	Name    string  `json:"name"    validate:"required,min=2,max=160"`
	Contact string  `json:"contact"`
	Email   *string `json:"email"   validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Street  string  `json:"street"`
	ZipCode string  `json:"zip_code"`
	City    string  `json:"city"`
	Note    *string `json:"note"`
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name"    validate:"omitempty,min=2,max=160"`
	Contact *string `json:"contact"`
	Email   *string `json:"email"   validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Street  *string `json:"street"`
	ZipCode *string `json:"zip_code"`
	City    *string `json:"city"`
	Note    *string `json:"note"`
}

type CustomerFilter struct {
	Name  string `form:"name"`
	City  string `form:"city"`
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CustomerResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Contact   string  `json:"contact"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Street    string  `json:"street"`
	ZipCode   string  `json:"zip_code"`
	City      string  `json:"city"`
	Note      *string `json:"note"`
	Active    bool    `json:"active"`
	CreatedAt string  `json:"created_at"`
}

type CustomerListResponse struct {
	Data  []CustomerResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
