package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/apierror"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/dto"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/service"
)

type OffersHandler struct{ svc service.OfferService }

func NewOffersHandler(svc service.OfferService) *OffersHandler {
	return &OffersHandler{svc: svc}
}

func (h *OffersHandler) Create(c *gin.Context) {
	var req dto.CreateOfferRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OffersHandler) List(c *gin.Context) {
	var filter dto.OfferFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Fehler beim Laden der Angebote"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OffersHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Ungültige ID"))
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Angebot nicht gefunden"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OffersHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Ungültige ID"))
		return
	}
	var req dto.UpdateOfferStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if svcErr := h.svc.UpdateStatus(c.Request.Context(), id, req); svcErr != nil {
		c.JSON(http.StatusBadRequest, apierror.New(svcErr.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
