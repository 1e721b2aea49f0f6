package reconcile

// Editing helpers for an already computed BOM list. They operate on the
// in-memory items only — persistence of the edited list, if any, is the
// caller's concern.

// UpdateItemQuantity returns a copy of item with the quantity set to
// max(0, quantity) and TotalUnits recomputed. A result of exactly zero
// means the position is gone: nil is returned and the caller drops the
// item from its list.
func UpdateItemQuantity(item BOMItem, quantity int) *BOMItem {
	if quantity < 0 {
		quantity = 0
	}
	if quantity == 0 {
		return nil
	}
	item.Quantity = quantity
	item.TotalUnits = effectiveItemsPerUnit(item.ItemsPerUnit) * quantity
	return &item
}

// SplitByConfiguration partitions a BOM into the positions that came out
// of the PV layout configurator and those derived purely from bookings.
// The two lists are rendered as separate sections.
func SplitByConfiguration(items []BOMItem) (configured, auto []BOMItem) {
	configured = make([]BOMItem, 0, len(items))
	auto = make([]BOMItem, 0, len(items))
	for _, item := range items {
		if item.IsConfigured {
			configured = append(configured, item)
		} else {
			auto = append(auto, item)
		}
	}
	return configured, auto
}
