package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/apierror"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/dto"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/repository"
)

const stockCacheTTL = 30 * time.Second

// StockLookupHandler serves the public stock check endpoint used by the
// field app's barcode scanner. No authentication, no side effects. The
// short cache TTL keeps scan bursts off the database while bookings
// still become visible within half a minute.
type StockLookupHandler struct {
	repo repository.MaterialRepository
	rdb  *redis.Client
}

func NewStockLookupHandler(repo repository.MaterialRepository, rdb *redis.Client) *StockLookupHandler {
	return &StockLookupHandler{repo: repo, rdb: rdb}
}

func (h *StockLookupHandler) GetByCode(c *gin.Context) {
	code := c.Param("code")
	ctx := c.Request.Context()
	cacheKey := "bestand:" + code

	// 1. Try Redis cache
	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.StockLookupResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	// 2. Cache miss — query DB
	material, err := h.repo.FindByCode(ctx, code)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Material nicht gefunden"))
		return
	}

	resp := dto.StockLookupResponse{
		MaterialID:  material.MaterialID,
		Description: material.Description,
		Stock:       material.Stock,
		Unit:        material.Unit,
		Price:       material.Price,
	}

	// 3. Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, stockCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
