package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/dto"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/model"
)

func TestBOMCompute_MergesLedgerWithCatalog(t *testing.T) {
	cable := &model.Material{MaterialID: "MAT-001", Description: "Kabel NYM-J", Unit: "m", ItemsPerUnit: 1, Active: true}
	ties := &model.Material{MaterialID: "MAT-002", Description: "Kabelbinder", Unit: "Pack", ItemsPerUnit: 100, Active: true}
	matRepo := newStubMaterialRepo(cable, ties)

	project := &model.Project{Name: "Dach Nord"}
	projRepo := newStubProjectRepo(project)

	other := uuid.New()
	bookRepo := &stubBookingRepo{bookings: []*model.Booking{
		{ID: uuid.New(), ProjectID: &project.ID, Type: model.BookingOut, Lines: []model.BookingLine{
			{MaterialRef: cable.ID.String(), Quantity: 30},
			{MaterialRef: "MAT-002", Quantity: 150},
		}},
		{ID: uuid.New(), ProjectID: &project.ID, Type: model.BookingOut, Lines: []model.BookingLine{
			{MaterialRef: cable.ID.String(), Quantity: 20},
		}},
		// IN bookings and foreign projects never contribute
		{ID: uuid.New(), ProjectID: &project.ID, Type: model.BookingIn, Lines: []model.BookingLine{
			{MaterialRef: cable.ID.String(), Quantity: 999},
		}},
		{ID: uuid.New(), ProjectID: &other, Type: model.BookingOut, Lines: []model.BookingLine{
			{MaterialRef: cable.ID.String(), Quantity: 999},
		}},
	}}

	svc := NewBOMService(projRepo, bookRepo, matRepo, nil)
	resp, err := svc.Compute(context.Background(), project.ID)
	require.NoError(t, err)

	assert.Equal(t, "Dach Nord", resp.ProjectName)
	require.Len(t, resp.Items, 2)

	// German collation: Kabel before Kabelbinder
	assert.Equal(t, "Kabel NYM-J", resp.Items[0].Description)
	assert.Equal(t, 50, resp.Items[0].Quantity)
	assert.Equal(t, "Kabelbinder", resp.Items[1].Description)
	assert.Equal(t, 150, resp.Items[1].Quantity)
	assert.Equal(t, 15000, resp.Items[1].TotalUnits)
}

func TestBOMCompute_UnknownProject(t *testing.T) {
	svc := NewBOMService(newStubProjectRepo(), &stubBookingRepo{}, newStubMaterialRepo(), nil)

	_, err := svc.Compute(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Projekt nicht gefunden")
}

func TestBOMExport_UnknownProject(t *testing.T) {
	svc := NewBOMService(newStubProjectRepo(), &stubBookingRepo{}, newStubMaterialRepo(), nil)

	err := svc.Export(context.Background(), uuid.New(), dto.ExportBOMRequest{Format: "xlsx"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Projekt nicht gefunden")
}
