package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/apierror"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/dto"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/reconcile"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/service"
)

type BOMHandler struct{ svc service.BOMService }

func NewBOMHandler(svc service.BOMService) *BOMHandler {
	return &BOMHandler{svc: svc}
}

// Compute returns the consolidated material list for one project.
func (h *BOMHandler) Compute(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Ungültige Projekt-ID"))
		return
	}
	resp, err := h.svc.Compute(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Export enqueues an async xlsx/pdf export of the project BOM.
func (h *BOMHandler) Export(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Ungültige Projekt-ID"))
		return
	}
	var req dto.ExportBOMRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Export(c.Request.Context(), projectID, req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "export eingereiht"})
}

// UpdateQuantity edits one position of a client-held BOM list. The edit
// is stateless: the position travels with the request and the adjusted
// position (or a removal marker) travels back.
func (h *BOMHandler) UpdateQuantity(c *gin.Context) {
	var req dto.UpdateBOMQuantityRequest
	if !bindAndValidate(c, &req) {
		return
	}
	item := reconcile.UpdateItemQuantity(req.Item, req.Quantity)
	c.JSON(http.StatusOK, dto.UpdateBOMQuantityResponse{
		Item:    item,
		Removed: item == nil,
	})
}

// Split partitions a client-held BOM list into configurator-produced and
// automatically collected positions.
func (h *BOMHandler) Split(c *gin.Context) {
	var req dto.SplitBOMRequest
	if !bindAndValidate(c, &req) {
		return
	}
	configured, auto := reconcile.SplitByConfiguration(req.Items)
	c.JSON(http.StatusOK, dto.SplitBOMResponse{
		ConfiguredItems: configured,
		AutoItems:       auto,
	})
}
