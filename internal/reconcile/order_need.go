// Package reconcile derives aggregate inventory views from the raw
// catalog and booking ledger: order-need classification for the ordering
// screen and bill-of-materials aggregation for projects.
//
// Every function here is a pure projection of its parameters. Callers
// own the data lifecycle and re-invoke on change; nothing is cached,
// nothing is mutated, and a call never fails — incomplete records are
// absorbed with safe defaults so the views stay renderable even when
// the store is mid-sync.
package reconcile

import (
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/model"
)

// DisplayType tags the order-relevant state an OrderRow represents.
type DisplayType string

const (
	DisplayOrdered    DisplayType = "ordered"    // on order with the supplier
	DisplayAdditional DisplayType = "additional" // on order, but the backorder exceeds the ordered quantity
	DisplayNeeded     DisplayType = "needed"     // backordered, nothing placed yet
	DisplayLow        DisplayType = "low"        // at or below the reorder threshold
	DisplayRequested  DisplayType = "requested"  // requested by field staff
)

// OrderRow is an ephemeral classification of one material for the
// ordering screen. A single material may produce several rows at once
// (e.g. ordered and additional), so rows carry the material by value.
type OrderRow struct {
	Material model.Material
	Type     DisplayType
	Quantity int
	// IsAdditionalOrder marks rows that top up an already placed order.
	IsAdditionalOrder bool
}

// The classifier rules, kept as standalone predicates so each can be
// tested (and reused by the statistics reduction) in isolation.

// orderPlaced reports whether the material is on order with a supplier.
func orderPlaced(m *model.Material) bool {
	return m.OrderStatus == model.OrderStatusPlaced
}

// orderRequested reports whether field staff requested an order.
func orderRequested(m *model.Material) bool {
	return m.OrderStatus == model.OrderStatusRequested
}

// backordered reports negative stock with no placed order covering it.
func backordered(m *model.Material) bool {
	return !orderPlaced(m) && m.Stock < 0
}

// lowStock reports stock at or below the reorder threshold. Strictly
// positive stock is required: exactly zero without backorder debt is
// deliberately not surfaced here. The ExcludeFromAutoOrder flag is
// applied by the callers, not in the predicate, because the excluded
// set is reported separately.
func lowStock(m *model.Material) bool {
	return !orderPlaced(m) && m.Stock > 0 && m.Stock <= m.HeatStock
}

// DeriveOrderRows classifies every material in the catalog into zero or
// more display rows. The rules are independent and non-exclusive; rows
// for one material appear adjacently in catalog order.
func DeriveOrderRows(materials []model.Material) []OrderRow {
	rows := make([]OrderRow, 0, len(materials))

	for i := range materials {
		m := &materials[i]

		if orderPlaced(m) {
			rows = append(rows, OrderRow{
				Material: *m,
				Type:     DisplayOrdered,
				Quantity: m.OrderedQuantity,
			})

			// Supplier shortfall: the backorder debt exceeds what is
			// already on order, so the difference needs a follow-up order.
			if needed := -m.Stock; m.Stock < 0 && needed > m.OrderedQuantity {
				rows = append(rows, OrderRow{
					Material:          *m,
					Type:              DisplayAdditional,
					Quantity:          needed - m.OrderedQuantity,
					IsAdditionalOrder: true,
				})
			}
		}

		if backordered(m) {
			needed := -m.Stock
			qty := needed
			// Excluded materials surface with the bare debt; everything
			// else uses the standing reorder quantity when one is set.
			if !m.ExcludeFromAutoOrder && m.OrderQuantity > 0 {
				qty = m.OrderQuantity
			}
			rows = append(rows, OrderRow{
				Material: *m,
				Type:     DisplayNeeded,
				Quantity: qty,
			})
		}

		if lowStock(m) && !m.ExcludeFromAutoOrder {
			rows = append(rows, OrderRow{
				Material: *m,
				Type:     DisplayLow,
				Quantity: m.OrderQuantity,
			})
		}

		if orderRequested(m) {
			qty := m.OrderedQuantity
			if qty <= 0 {
				qty = 1
			}
			rows = append(rows, OrderRow{
				Material: *m,
				Type:     DisplayRequested,
				Quantity: qty,
			})
		}
	}

	return rows
}
