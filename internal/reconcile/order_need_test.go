package reconcile

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/model"
)

func mat(code string, mutate func(*model.Material)) model.Material {
	m := model.Material{
		ID:           uuid.New(),
		MaterialID:   code,
		Description:  "Testmaterial " + code,
		Unit:         "Stück",
		ItemsPerUnit: 1,
		Active:       true,
	}
	if mutate != nil {
		mutate(&m)
	}
	return m
}

func rowsOfType(rows []OrderRow, t DisplayType) []OrderRow {
	var out []OrderRow
	for _, r := range rows {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}

func TestDeriveOrderRows_PlacedOrderWithShortfall(t *testing.T) {
	// On order for 3, but 5 are backordered: the screen shows the placed
	// order plus a 2-piece follow-up, nothing else.
	catalog := []model.Material{
		mat("MAT-001", func(m *model.Material) {
			m.Stock = -5
			m.OrderStatus = model.OrderStatusPlaced
			m.OrderedQuantity = 3
		}),
	}

	rows := DeriveOrderRows(catalog)
	require.Len(t, rows, 2)

	assert.Equal(t, DisplayOrdered, rows[0].Type)
	assert.Equal(t, 3, rows[0].Quantity)
	assert.False(t, rows[0].IsAdditionalOrder)

	assert.Equal(t, DisplayAdditional, rows[1].Type)
	assert.Equal(t, 2, rows[1].Quantity)
	assert.True(t, rows[1].IsAdditionalOrder)
}

func TestDeriveOrderRows_PlacedOrderCoversBackorder(t *testing.T) {
	catalog := []model.Material{
		mat("MAT-002", func(m *model.Material) {
			m.Stock = -3
			m.OrderStatus = model.OrderStatusPlaced
			m.OrderedQuantity = 5
		}),
	}

	rows := DeriveOrderRows(catalog)
	require.Len(t, rows, 1)
	assert.Equal(t, DisplayOrdered, rows[0].Type)
	assert.Equal(t, 5, rows[0].Quantity)
}

func TestDeriveOrderRows_BackorderQuantityFormula(t *testing.T) {
	tests := []struct {
		name          string
		orderQuantity int
		excluded      bool
		wantQty       int
	}{
		{"standing reorder quantity wins", 10, false, 10},
		{"fallback to debt when unset", 0, false, 4},
		{"excluded always uses the bare debt", 10, true, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := []model.Material{
				mat("MAT-003", func(m *model.Material) {
					m.Stock = -4
					m.OrderQuantity = tt.orderQuantity
					m.ExcludeFromAutoOrder = tt.excluded
				}),
			}

			rows := DeriveOrderRows(catalog)
			require.Len(t, rows, 1)
			assert.Equal(t, DisplayNeeded, rows[0].Type)
			assert.Equal(t, tt.wantQty, rows[0].Quantity)
		})
	}
}

func TestDeriveOrderRows_LowStockBoundary(t *testing.T) {
	// Exactly zero stock without backorder debt is not surfaced — the
	// warning needs strictly positive stock at or below the threshold.
	zero := mat("MAT-004", func(m *model.Material) {
		m.Stock = 0
		m.HeatStock = 5
	})
	assert.Empty(t, DeriveOrderRows([]model.Material{zero}))

	one := mat("MAT-005", func(m *model.Material) {
		m.Stock = 1
		m.HeatStock = 5
		m.OrderQuantity = 20
	})
	rows := DeriveOrderRows([]model.Material{one})
	require.Len(t, rows, 1)
	assert.Equal(t, DisplayLow, rows[0].Type)
	assert.Equal(t, 20, rows[0].Quantity)

	atThreshold := mat("MAT-006", func(m *model.Material) {
		m.Stock = 5
		m.HeatStock = 5
	})
	rows = DeriveOrderRows([]model.Material{atThreshold})
	require.Len(t, rows, 1)
	assert.Equal(t, DisplayLow, rows[0].Type)

	bothZero := mat("MAT-007", func(m *model.Material) {
		m.Stock = 0
		m.HeatStock = 0
	})
	assert.Empty(t, DeriveOrderRows([]model.Material{bothZero}))
}

func TestDeriveOrderRows_ExclusionSuppressesOnlyLowStock(t *testing.T) {
	low := mat("MAT-008", func(m *model.Material) {
		m.Stock = 2
		m.HeatStock = 5
		m.ExcludeFromAutoOrder = true
	})
	assert.Empty(t, DeriveOrderRows([]model.Material{low}),
		"excluded low-stock material must not warn")

	// A backorder always surfaces, exclusion flag or not.
	negative := mat("MAT-009", func(m *model.Material) {
		m.Stock = -2
		m.ExcludeFromAutoOrder = true
	})
	rows := DeriveOrderRows([]model.Material{negative})
	require.Len(t, rows, 1)
	assert.Equal(t, DisplayNeeded, rows[0].Type)
	assert.Equal(t, 2, rows[0].Quantity)
}

func TestDeriveOrderRows_Requested(t *testing.T) {
	noQty := mat("MAT-010", func(m *model.Material) {
		m.Stock = 8
		m.OrderStatus = model.OrderStatusRequested
	})
	rows := DeriveOrderRows([]model.Material{noQty})
	require.Len(t, rows, 1)
	assert.Equal(t, DisplayRequested, rows[0].Type)
	assert.Equal(t, 1, rows[0].Quantity, "requested without quantity defaults to 1")

	withQty := mat("MAT-011", func(m *model.Material) {
		m.Stock = 8
		m.OrderStatus = model.OrderStatusRequested
		m.OrderedQuantity = 4
	})
	rows = DeriveOrderRows([]model.Material{withQty})
	require.Len(t, rows, 1)
	assert.Equal(t, 4, rows[0].Quantity)
}

func TestDeriveOrderRows_RequestedAndBackorderedOverlap(t *testing.T) {
	catalog := []model.Material{
		mat("MAT-012", func(m *model.Material) {
			m.Stock = -3
			m.OrderStatus = model.OrderStatusRequested
			m.OrderedQuantity = 2
		}),
	}

	rows := DeriveOrderRows(catalog)
	require.Len(t, rows, 2)
	assert.Len(t, rowsOfType(rows, DisplayNeeded), 1)
	assert.Len(t, rowsOfType(rows, DisplayRequested), 1)
}

func TestDeriveOrderStats_MatchesClassifierPredicates(t *testing.T) {
	catalog := []model.Material{
		// counts once: low stock
		mat("MAT-020", func(m *model.Material) { m.Stock = 1; m.HeatStock = 5 }),
		// counts once: backordered
		mat("MAT-021", func(m *model.Material) { m.Stock = -2 }),
		// counts twice: backordered and requested
		mat("MAT-022", func(m *model.Material) {
			m.Stock = -1
			m.OrderStatus = model.OrderStatusRequested
		}),
		// ordered, not part of ToOrderCount
		mat("MAT-023", func(m *model.Material) {
			m.Stock = -4
			m.OrderStatus = model.OrderStatusPlaced
			m.OrderedQuantity = 10
		}),
		// excluded low stock — separate counter
		mat("MAT-024", func(m *model.Material) {
			m.Stock = 2
			m.HeatStock = 5
			m.ExcludeFromAutoOrder = true
		}),
		// healthy
		mat("MAT-025", func(m *model.Material) { m.Stock = 50; m.HeatStock = 5 }),
	}

	stats := DeriveOrderStats(catalog)

	assert.Equal(t, 4, stats.ToOrderCount)
	assert.Equal(t, 1, stats.OrderedCount)
	assert.Equal(t, 1, stats.ExcludedLowStockCount)
	require.Len(t, stats.ExcludedLowStockMaterials, 1)
	assert.Equal(t, "MAT-024", stats.ExcludedLowStockMaterials[0].MaterialID)
}

func TestDeriveOrderStats_EmptyCatalog(t *testing.T) {
	stats := DeriveOrderStats(nil)
	assert.Zero(t, stats.ToOrderCount)
	assert.Zero(t, stats.OrderedCount)
	assert.NotNil(t, stats.ExcludedLowStockMaterials)
}
