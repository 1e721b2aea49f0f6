package dto

import "github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/reconcile"

// BOMResponse is the consolidated bill of materials for one project.
// Items are serialized directly from the reconcile package; their field
// names are part of the UI contract.
type BOMResponse struct {
	ProjectID   string              `json:"project_id"`
	ProjectName string              `json:"project_name"`
	Items       []reconcile.BOMItem `json:"items"`
}

// UpdateBOMQuantityRequest edits one position of an already computed BOM.
type UpdateBOMQuantityRequest struct {
	Item     reconcile.BOMItem `json:"item"     validate:"required"`
	Quantity int               `json:"quantity"`
}

// UpdateBOMQuantityResponse returns the edited item, or null when the
// position was removed (quantity clamped to zero).
type UpdateBOMQuantityResponse struct {
	Item    *reconcile.BOMItem `json:"item"`
	Removed bool               `json:"removed"`
}

// SplitBOMRequest partitions a BOM list for differentiated display.
type SplitBOMRequest struct {
	Items []reconcile.BOMItem `json:"items" validate:"required"`
}

type SplitBOMResponse struct {
	ConfiguredItems []reconcile.BOMItem `json:"configured_items"`
	AutoItems       []reconcile.BOMItem `json:"auto_items"`
}

// ExportBOMRequest enqueues an async BOM export job.
type ExportBOMRequest struct {
	Format string `json:"format" validate:"required,oneof=xlsx pdf"`
	// Email, when set, sends the finished export as an attachment.
	Email string `json:"email" validate:"omitempty,email"`
}
