package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/model"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/reconcile"
)

func TestDeriveRows_MapsClassifierOutput(t *testing.T) {
	// Placed order with backorder debt exceeding the ordered quantity:
	// the classifier yields an "ordered" row and an additional-need row.
	m := &model.Material{
		MaterialID:      "MAT-001",
		Description:     "Kabel NYM-J",
		Stock:           -5,
		OrderStatus:     model.OrderStatusPlaced,
		OrderedQuantity: 3,
		Active:          true,
	}
	svc := NewOrderService(newStubMaterialRepo(m))

	rows, err := svc.DeriveRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, string(reconcile.DisplayOrdered), rows[0].DisplayType)
	assert.Equal(t, 3, rows[0].Quantity)
	assert.False(t, rows[0].IsAdditionalOrder)

	assert.Equal(t, string(reconcile.DisplayAdditional), rows[1].DisplayType)
	assert.Equal(t, 2, rows[1].Quantity)
	assert.True(t, rows[1].IsAdditionalOrder)
}

func TestDeriveStats_CountsMatchPredicates(t *testing.T) {
	svc := NewOrderService(newStubMaterialRepo(
		&model.Material{MaterialID: "MAT-010", Description: "A", Stock: -1, Active: true},
		&model.Material{MaterialID: "MAT-011", Description: "B", Stock: 2, HeatStock: 5, Active: true},
		&model.Material{MaterialID: "MAT-012", Description: "C", Stock: 2, HeatStock: 5, ExcludeFromAutoOrder: true, Active: true},
		&model.Material{MaterialID: "MAT-013", Description: "D", OrderStatus: model.OrderStatusPlaced, OrderedQuantity: 4, Active: true},
	))

	stats, err := svc.DeriveStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.ToOrderCount) // backordered + low stock
	assert.Equal(t, 1, stats.OrderedCount)
	assert.Equal(t, 1, stats.ExcludedLowStockCount)
	require.Len(t, stats.ExcludedLowStockMaterials, 1)
	assert.Equal(t, "MAT-012", stats.ExcludedLowStockMaterials[0].MaterialID)
}
