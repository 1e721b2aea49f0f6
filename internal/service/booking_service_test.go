package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/dto"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/model"
)

func TestCreateBooking_OutAppliesNegativeDeltas(t *testing.T) {
	cable := &model.Material{MaterialID: "MAT-001", Description: "Kabel NYM-J", Stock: 50, Active: true}
	ties := &model.Material{MaterialID: "MAT-002", Description: "Kabelbinder", Stock: 10, Active: true}
	matRepo := newStubMaterialRepo(cable, ties)
	bookRepo := &stubBookingRepo{}
	project := &model.Project{Name: "Dach Nord"}
	projRepo := newStubProjectRepo(project)
	svc := NewBookingService(bookRepo, matRepo, projRepo)

	pid := project.ID.String()
	resp, err := svc.Create(context.Background(), "mkaiser", dto.CreateBookingRequest{
		ProjectID: &pid,
		Type:      model.BookingOut,
		Lines: []dto.BookingLineRequest{
			{MaterialRef: cable.ID.String(), Quantity: 30},
			{MaterialRef: "MAT-002", Quantity: 25}, // by human code
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 20, cable.Stock)
	// OUT may drive stock negative — backorder debt, not an error
	assert.Equal(t, -15, ties.Stock)

	require.Len(t, resp.Lines, 2)
	// MaterialRef is normalized to the internal ID on persist
	assert.Equal(t, ties.ID.String(), resp.Lines[1].MaterialRef)
	assert.Equal(t, "Kabelbinder", resp.Lines[1].Description)

	require.Len(t, bookRepo.bookings, 1)
	assert.Equal(t, "mkaiser", bookRepo.bookings[0].CreatedBy)
}

func TestCreateBooking_InIncreasesStock(t *testing.T) {
	m := &model.Material{MaterialID: "MAT-003", Description: "Schraube", Stock: 5, Active: true}
	svc := NewBookingService(&stubBookingRepo{}, newStubMaterialRepo(m), newStubProjectRepo())

	_, err := svc.Create(context.Background(), "", dto.CreateBookingRequest{
		Type:  model.BookingIn,
		Lines: []dto.BookingLineRequest{{MaterialRef: "MAT-003", Quantity: 7}},
	})
	require.NoError(t, err)
	assert.Equal(t, 12, m.Stock)
}

func TestCreateBooking_UnresolvableLineAborts(t *testing.T) {
	m := &model.Material{MaterialID: "MAT-004", Description: "Rohr", Stock: 8, Active: true}
	matRepo := newStubMaterialRepo(m)
	bookRepo := &stubBookingRepo{}
	svc := NewBookingService(bookRepo, matRepo, newStubProjectRepo())

	_, err := svc.Create(context.Background(), "", dto.CreateBookingRequest{
		Type: model.BookingOut,
		Lines: []dto.BookingLineRequest{
			{MaterialRef: "MAT-004", Quantity: 2},
			{MaterialRef: "GIBT-ES-NICHT", Quantity: 1},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GIBT-ES-NICHT")

	// Pre-flight resolution failed — nothing was booked, no stock moved
	assert.Empty(t, bookRepo.bookings)
	assert.Equal(t, 8, m.Stock)
}

func TestCreateBooking_UnknownProjectRejected(t *testing.T) {
	m := &model.Material{MaterialID: "MAT-005", Description: "Klemme", Active: true}
	svc := NewBookingService(&stubBookingRepo{}, newStubMaterialRepo(m), newStubProjectRepo())

	pid := "3f9c1f8a-31e6-44d5-9ad8-5c6e37ab0001"
	_, err := svc.Create(context.Background(), "", dto.CreateBookingRequest{
		ProjectID: &pid,
		Type:      model.BookingOut,
		Lines:     []dto.BookingLineRequest{{MaterialRef: "MAT-005", Quantity: 1}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Projekt nicht gefunden")
}
