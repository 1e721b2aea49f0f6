package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/apierror"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/service"
)

// OrdersHandler serves the ordering screen: the classified row list and
// the aggregate counters. Both are full recomputations over the catalog,
// so the screen never shows stale intermediate state.
type OrdersHandler struct{ svc service.OrderService }

func NewOrdersHandler(svc service.OrderService) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

func (h *OrdersHandler) ListRows(c *gin.Context) {
	rows, err := h.svc.DeriveRows(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Fehler beim Laden der Bestellliste"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows, "total": len(rows)})
}

func (h *OrdersHandler) Stats(c *gin.Context) {
	stats, err := h.svc.DeriveStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Fehler beim Laden der Bestellstatistik"))
		return
	}
	c.JSON(http.StatusOK, stats)
}
