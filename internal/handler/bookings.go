package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/apierror"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/dto"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/middleware"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/service"
)

type BookingsHandler struct{ svc service.BookingService }

func NewBookingsHandler(svc service.BookingService) *BookingsHandler {
	return &BookingsHandler{svc: svc}
}

func (h *BookingsHandler) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if !bindAndValidate(c, &req) {
		return
	}
	createdBy := ""
	if claims := middleware.GetClaims(c); claims != nil {
		createdBy = claims.Username
	}
	resp, err := h.svc.Create(c.Request.Context(), createdBy, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BookingsHandler) List(c *gin.Context) {
	var filter dto.BookingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Fehler beim Laden der Buchungen"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
