package reconcile

import (
	"sort"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/model"
)

// BOMItem is one consolidated position of a project's bill of materials.
// Derived and ephemeral: recomputed from the booking ledger on demand,
// never persisted.
type BOMItem struct {
	// Key identifies the aggregation bucket; stable across recomputations
	// as long as the catalog record keeps its identity.
	Key          string     `json:"key"`
	MaterialID   string     `json:"materialId"`
	Description  string     `json:"description"`
	Manufacturer string     `json:"manufacturer"`
	Unit         string     `json:"unit"`
	CategoryID   *uuid.UUID `json:"categoryId"`
	ItemsPerUnit int        `json:"itemsPerUnit"`
	Quantity     int        `json:"quantity"`
	TotalUnits   int        `json:"totalUnits"`
	IsConfigured bool       `json:"isConfigured"`
	IsManual     bool       `json:"isManual"`
}

// effectiveItemsPerUnit guards against catalog records written before
// the field existed, where it reads as zero.
func effectiveItemsPerUnit(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// bucketKey picks the first usable identity for an aggregation bucket,
// so even a partially filled catalog record lands in exactly one bucket.
func bucketKey(m *model.Material) string {
	if m.ID != uuid.Nil {
		return m.ID.String()
	}
	if m.MaterialID != "" {
		return m.MaterialID
	}
	if m.Description != "" {
		return m.Description
	}
	return "unknown"
}

// ComputeBOM reduces the booking ledger into the consolidated bill of
// materials for one project. Only outgoing bookings of that project
// contribute: the BOM reflects what left the warehouse for the job, not
// net stock movement. Identical inputs produce identical output,
// including order.
//
// Booking lines referencing a material the catalog no longer knows are
// skipped without error; they are stale references, and the BOM is a
// best-effort view over an eventually consistent store.
func ComputeBOM(project *model.Project, bookings []model.Booking, materials []model.Material) []BOMItem {
	if project == nil {
		return []BOMItem{}
	}

	// Booking lines reference materials by internal ID or by the human
	// code, depending on which client wrote them. Index both.
	byRef := make(map[string]*model.Material, len(materials)*2)
	for i := range materials {
		m := &materials[i]
		if m.ID != uuid.Nil {
			byRef[m.ID.String()] = m
		}
		if m.MaterialID != "" {
			byRef[m.MaterialID] = m
		}
	}

	buckets := make(map[string]*BOMItem)
	for bi := range bookings {
		b := &bookings[bi]
		if b.Type != model.BookingOut {
			continue
		}
		if b.ProjectID == nil || *b.ProjectID != project.ID {
			continue
		}

		for li := range b.Lines {
			line := &b.Lines[li]
			m, ok := byRef[line.MaterialRef]
			if !ok {
				continue // stale reference
			}

			key := bucketKey(m)
			item, exists := buckets[key]
			if !exists {
				item = &BOMItem{
					Key:          key,
					MaterialID:   m.MaterialID,
					Description:  m.Description,
					Manufacturer: m.Manufacturer,
					Unit:         m.Unit,
					CategoryID:   m.CategoryID,
					ItemsPerUnit: effectiveItemsPerUnit(m.ItemsPerUnit),
				}
				buckets[key] = item
			}

			item.Quantity += line.Quantity
			// Always recomputed from the summed quantity so the pair
			// can never drift apart across merges.
			item.TotalUnits = item.ItemsPerUnit * item.Quantity
			// Sticky: one flagged line flags the aggregate for good.
			item.IsConfigured = item.IsConfigured || line.IsConfigured
			item.IsManual = item.IsManual || line.IsManual
		}
	}

	items := make([]BOMItem, 0, len(buckets))
	for _, item := range buckets {
		items = append(items, *item)
	}
	sortBOM(items)
	return items
}

// sortBOM orders items by description, then material code, with German
// locale-aware, case-insensitive collation. The bucket key is the final
// tiebreaker so the order is reproducible even for duplicate names.
func sortBOM(items []BOMItem) {
	c := collate.New(language.German, collate.IgnoreCase)
	sort.SliceStable(items, func(i, j int) bool {
		if r := c.CompareString(items[i].Description, items[j].Description); r != 0 {
			return r < 0
		}
		if r := c.CompareString(items[i].MaterialID, items[j].MaterialID); r != 0 {
			return r < 0
		}
		return items[i].Key < items[j].Key
	})
}
