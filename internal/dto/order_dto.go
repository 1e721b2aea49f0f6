package dto

// OrderRowResponse is one row of the ordering screen. A material can
// legitimately appear several times under different display types.
type OrderRowResponse struct {
	MaterialID        string  `json:"material_id"`
	Description       string  `json:"description"`
	Manufacturer      string  `json:"manufacturer"`
	Unit              string  `json:"unit"`
	Stock             int     `json:"stock"`
	DisplayType       string  `json:"display_type"`
	Quantity          int     `json:"quantity"`
	IsAdditionalOrder bool    `json:"is_additional_order"`
	OrderStatus       string  `json:"order_status"`
	OrderDate         *string `json:"order_date"`
}

// OrderStatsResponse summarizes the ordering situation.
type OrderStatsResponse struct {
	ToOrderCount              int                `json:"to_order_count"`
	OrderedCount              int                `json:"ordered_count"`
	ExcludedLowStockCount     int                `json:"excluded_low_stock_count"`
	ExcludedLowStockMaterials []MaterialResponse `json:"excluded_low_stock_materials"`
}
