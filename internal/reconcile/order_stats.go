package reconcile

import (
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/model"
)

// OrderStats summarizes the ordering situation across the catalog.
type OrderStats struct {
	// ToOrderCount is the number of materials needing attention:
	// low stock + backordered + field-requested. A material matching
	// several predicates is counted once per predicate, matching the
	// row counts on the ordering screen.
	ToOrderCount int `json:"toOrderCount"`
	// OrderedCount is the number of materials currently on order.
	OrderedCount int `json:"orderedCount"`
	// ExcludedLowStockCount covers materials that would warn for low
	// stock but are flagged ExcludeFromAutoOrder. Reported separately
	// so operators can force-include them by hand.
	ExcludedLowStockCount     int              `json:"excludedLowStockCount"`
	ExcludedLowStockMaterials []model.Material `json:"excludedLowStockMaterials"`
}

// DeriveOrderStats reduces the raw catalog with the same predicates the
// classifier uses. It deliberately does not count the produced rows:
// reducing the catalog directly keeps the counters cheap and guarantees
// they never drift from the rule definitions.
func DeriveOrderStats(materials []model.Material) OrderStats {
	stats := OrderStats{
		ExcludedLowStockMaterials: []model.Material{},
	}

	for i := range materials {
		m := &materials[i]

		if orderPlaced(m) {
			stats.OrderedCount++
		}
		if backordered(m) {
			stats.ToOrderCount++
		}
		if orderRequested(m) {
			stats.ToOrderCount++
		}
		if lowStock(m) {
			if m.ExcludeFromAutoOrder {
				stats.ExcludedLowStockCount++
				stats.ExcludedLowStockMaterials = append(stats.ExcludedLowStockMaterials, *m)
			} else {
				stats.ToOrderCount++
			}
		}
	}

	return stats
}
