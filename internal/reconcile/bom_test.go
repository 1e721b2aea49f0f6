package reconcile

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/model"
)

func outBooking(projectID uuid.UUID, lines ...model.BookingLine) model.Booking {
	return model.Booking{
		ID:        uuid.New(),
		ProjectID: &projectID,
		Type:      model.BookingOut,
		Lines:     lines,
	}
}

func line(ref string, qty int) model.BookingLine {
	return model.BookingLine{MaterialRef: ref, Quantity: qty}
}

func TestComputeBOM_InBookingsDoNotContribute(t *testing.T) {
	project := &model.Project{ID: uuid.New(), Name: "P1"}
	m := mat("MAT-001", func(m *model.Material) {
		m.Description = "Kabel"
		m.ItemsPerUnit = 10
	})

	in := model.Booking{
		ID:        uuid.New(),
		ProjectID: &project.ID,
		Type:      model.BookingIn,
		Lines:     []model.BookingLine{line(m.ID.String(), 100)},
	}
	bookings := []model.Booking{
		outBooking(project.ID, line(m.ID.String(), 3)),
		in,
	}

	items := ComputeBOM(project, bookings, []model.Material{m})
	require.Len(t, items, 1)
	assert.Equal(t, "Kabel", items[0].Description)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 30, items[0].TotalUnits)
}

func TestComputeBOM_OtherProjectsDoNotContribute(t *testing.T) {
	project := &model.Project{ID: uuid.New()}
	other := uuid.New()
	m := mat("MAT-002", nil)

	bookings := []model.Booking{
		outBooking(project.ID, line(m.ID.String(), 2)),
		outBooking(other, line(m.ID.String(), 99)),
		// no project at all — plain warehouse movement
		{ID: uuid.New(), Type: model.BookingOut, Lines: []model.BookingLine{line(m.ID.String(), 7)}},
	}

	items := ComputeBOM(project, bookings, []model.Material{m})
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestComputeBOM_NilProjectReturnsEmpty(t *testing.T) {
	m := mat("MAT-003", nil)
	pid := uuid.New()
	bookings := []model.Booking{outBooking(pid, line(m.ID.String(), 5))}

	items := ComputeBOM(nil, bookings, []model.Material{m})
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestComputeBOM_SumsAcrossBookings(t *testing.T) {
	project := &model.Project{ID: uuid.New()}
	m := mat("MAT-004", func(m *model.Material) { m.ItemsPerUnit = 4 })

	bookings := []model.Booking{
		outBooking(project.ID, line(m.ID.String(), 2)),
		outBooking(project.ID, line(m.ID.String(), 5)),
		outBooking(project.ID, line(m.ID.String(), 1)),
	}

	items := ComputeBOM(project, bookings, []model.Material{m})
	require.Len(t, items, 1)
	assert.Equal(t, 8, items[0].Quantity)
	assert.Equal(t, 32, items[0].TotalUnits)
}

func TestComputeBOM_DualKeyResolution(t *testing.T) {
	// One booking references the internal ID, the other the human code.
	// Both land in the same bucket.
	project := &model.Project{ID: uuid.New()}
	m := mat("MAT-005", nil)

	bookings := []model.Booking{
		outBooking(project.ID, line(m.ID.String(), 3)),
		outBooking(project.ID, line("MAT-005", 4)),
	}

	items := ComputeBOM(project, bookings, []model.Material{m})
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestComputeBOM_UnresolvedLinesAreSkipped(t *testing.T) {
	project := &model.Project{ID: uuid.New()}
	m := mat("MAT-006", nil)

	bookings := []model.Booking{
		outBooking(project.ID,
			line(m.ID.String(), 2),
			line("MAT-GELOESCHT", 50),
		),
	}

	items := ComputeBOM(project, bookings, []model.Material{m})
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestComputeBOM_StickyFlags(t *testing.T) {
	project := &model.Project{ID: uuid.New()}
	m := mat("MAT-007", nil)

	flagged := line(m.ID.String(), 1)
	flagged.IsManual = true
	configured := line(m.ID.String(), 1)
	configured.IsConfigured = true

	bookings := []model.Booking{
		outBooking(project.ID, line(m.ID.String(), 1)),
		outBooking(project.ID, flagged),
		outBooking(project.ID, configured),
		// a later unflagged line must not clear anything
		outBooking(project.ID, line(m.ID.String(), 1)),
	}

	items := ComputeBOM(project, bookings, []model.Material{m})
	require.Len(t, items, 1)
	assert.True(t, items[0].IsManual)
	assert.True(t, items[0].IsConfigured)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestComputeBOM_CatalogIsAuthoritativeForDescriptiveFields(t *testing.T) {
	project := &model.Project{ID: uuid.New()}
	cat := uuid.New()
	m := mat("MAT-008", func(m *model.Material) {
		m.Description = "Wechselrichter"
		m.Manufacturer = "SMA"
		m.Unit = "Karton"
		m.CategoryID = &cat
		m.ItemsPerUnit = 6
	})

	items := ComputeBOM(project, []model.Booking{outBooking(project.ID, line("MAT-008", 2))}, []model.Material{m})
	require.Len(t, items, 1)
	assert.Equal(t, "Wechselrichter", items[0].Description)
	assert.Equal(t, "SMA", items[0].Manufacturer)
	assert.Equal(t, "Karton", items[0].Unit)
	assert.Equal(t, &cat, items[0].CategoryID)
	assert.Equal(t, 6, items[0].ItemsPerUnit)
	assert.Equal(t, "MAT-008", items[0].MaterialID)
}

func TestComputeBOM_ZeroItemsPerUnitCoercedToOne(t *testing.T) {
	project := &model.Project{ID: uuid.New()}
	m := mat("MAT-009", func(m *model.Material) { m.ItemsPerUnit = 0 })

	items := ComputeBOM(project, []model.Booking{outBooking(project.ID, line("MAT-009", 5))}, []model.Material{m})
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ItemsPerUnit)
	assert.Equal(t, 5, items[0].TotalUnits)
}

func TestComputeBOM_LegacyRecordWithoutUUIDBucketsByCode(t *testing.T) {
	project := &model.Project{ID: uuid.New()}
	legacy := model.Material{MaterialID: "ALT-7", Description: "Altbestand"}

	items := ComputeBOM(project, []model.Booking{outBooking(project.ID, line("ALT-7", 2))}, []model.Material{legacy})
	require.Len(t, items, 1)
	assert.Equal(t, "ALT-7", items[0].Key)
}

func TestComputeBOM_GermanCollationOrder(t *testing.T) {
	project := &model.Project{ID: uuid.New()}
	catalog := []model.Material{
		mat("MAT-030", func(m *model.Material) { m.Description = "Zange" }),
		mat("MAT-031", func(m *model.Material) { m.Description = "kabel" }),
		mat("MAT-032", func(m *model.Material) { m.Description = "Ösenschraube" }),
		mat("MAT-033", func(m *model.Material) { m.Description = "Kabelbinder" }),
	}
	booking := outBooking(project.ID,
		line("MAT-030", 1), line("MAT-031", 1), line("MAT-032", 1), line("MAT-033", 1),
	)

	items := ComputeBOM(project, []model.Booking{booking}, catalog)
	require.Len(t, items, 4)

	var got []string
	for _, it := range items {
		got = append(got, it.Description)
	}
	// Ö sorts with O, case is ignored.
	assert.Equal(t, []string{"kabel", "Kabelbinder", "Ösenschraube", "Zange"}, got)
}

func TestComputeBOM_TieBrokenByMaterialID(t *testing.T) {
	project := &model.Project{ID: uuid.New()}
	catalog := []model.Material{
		mat("MAT-042", func(m *model.Material) { m.Description = "Schelle" }),
		mat("MAT-041", func(m *model.Material) { m.Description = "Schelle" }),
	}
	booking := outBooking(project.ID, line("MAT-042", 1), line("MAT-041", 1))

	items := ComputeBOM(project, []model.Booking{booking}, catalog)
	require.Len(t, items, 2)
	assert.Equal(t, "MAT-041", items[0].MaterialID)
	assert.Equal(t, "MAT-042", items[1].MaterialID)
}

func TestComputeBOM_Idempotent(t *testing.T) {
	project := &model.Project{ID: uuid.New()}
	catalog := []model.Material{
		mat("MAT-050", func(m *model.Material) { m.Description = "Modul" }),
		mat("MAT-051", func(m *model.Material) { m.Description = "Kabel" }),
		mat("MAT-052", func(m *model.Material) { m.Description = "Schiene" }),
	}
	bookings := []model.Booking{
		outBooking(project.ID, line("MAT-050", 2), line("MAT-051", 10)),
		outBooking(project.ID, line("MAT-052", 4), line("MAT-050", 1)),
	}

	first := ComputeBOM(project, bookings, catalog)
	second := ComputeBOM(project, bookings, catalog)
	assert.Equal(t, first, second, "identical inputs must yield identical output, including order")
}
