package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/dto"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/model"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/repository"
)

type BookingService interface {
	Create(ctx context.Context, createdBy string, req dto.CreateBookingRequest) (*dto.BookingResponse, error)
	List(ctx context.Context, filter dto.BookingFilter) (*dto.BookingListResponse, error)
}

type bookingService struct {
	repo         repository.BookingRepository
	materialRepo repository.MaterialRepository
	projectRepo  repository.ProjectRepository
}

func NewBookingService(
	repo repository.BookingRepository,
	materialRepo repository.MaterialRepository,
	projectRepo repository.ProjectRepository,
) BookingService {
	return &bookingService{repo: repo, materialRepo: materialRepo, projectRepo: projectRepo}
}

// Create validates and persists a booking and applies its stock deltas
// in one transaction. Outgoing quantities may drive stock negative —
// that is the backorder debt the ordering screen surfaces, not an error.
func (s *bookingService) Create(ctx context.Context, createdBy string, req dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	var projectID *uuid.UUID
	if req.ProjectID != nil {
		pid, err := uuid.Parse(*req.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("project_id ungültig: %w", err)
		}
		if _, err := s.projectRepo.FindByID(ctx, pid); err != nil {
			return nil, errors.New("Projekt nicht gefunden")
		}
		projectID = &pid
	}

	// Resolve every line before touching the DB. Booking lines may
	// reference a material by internal ID or by its human code; for a
	// new booking an unresolvable reference is a client error, unlike
	// the tolerant read path of the BOM.
	type resolvedLine struct {
		material     *model.Material
		quantity     int
		isConfigured bool
		isManual     bool
	}
	resolved := make([]resolvedLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		m, err := s.resolveMaterial(ctx, l.MaterialRef)
		if err != nil {
			return nil, fmt.Errorf("Material %s nicht gefunden", l.MaterialRef)
		}
		resolved = append(resolved, resolvedLine{
			material:     m,
			quantity:     l.Quantity,
			isConfigured: l.IsConfigured,
			isManual:     l.IsManual,
		})
	}

	sign := 1
	if req.Type == model.BookingOut {
		sign = -1
	}

	var booking model.Booking
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		booking = model.Booking{
			ProjectID: projectID,
			Type:      req.Type,
			Note:      req.Note,
			CreatedBy: createdBy,
		}
		for _, r := range resolved {
			booking.Lines = append(booking.Lines, model.BookingLine{
				MaterialRef:  r.material.ID.String(),
				Quantity:     r.quantity,
				IsConfigured: r.isConfigured,
				IsManual:     r.isManual,
			})
		}
		if err := s.repo.CreateTx(tx, &booking); err != nil {
			return err
		}
		for _, r := range resolved {
			if err := s.materialRepo.UpdateStockTx(tx, r.material.ID, sign*r.quantity); err != nil {
				return fmt.Errorf("Bestand von %s konnte nicht gebucht werden: %w", r.material.MaterialID, err)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := bookingToResponse(&booking)
	for i, r := range resolved {
		resp.Lines[i].Description = r.material.Description
	}
	return resp, nil
}

// resolveMaterial looks a reference up by internal ID first, then by
// the human material code.
func (s *bookingService) resolveMaterial(ctx context.Context, ref string) (*model.Material, error) {
	if id, err := uuid.Parse(ref); err == nil {
		if m, err := s.materialRepo.FindByID(ctx, id); err == nil {
			return m, nil
		}
	}
	return s.materialRepo.FindByCode(ctx, ref)
}

func (s *bookingService) List(ctx context.Context, filter dto.BookingFilter) (*dto.BookingListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	bookings, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		data = append(data, *bookingToResponse(&bookings[i]))
	}
	return &dto.BookingListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func bookingToResponse(b *model.Booking) *dto.BookingResponse {
	lines := make([]dto.BookingLineResponse, 0, len(b.Lines))
	for _, l := range b.Lines {
		lines = append(lines, dto.BookingLineResponse{
			MaterialRef:  l.MaterialRef,
			Quantity:     l.Quantity,
			IsConfigured: l.IsConfigured,
			IsManual:     l.IsManual,
		})
	}
	var projectID *string
	if b.ProjectID != nil {
		pid := b.ProjectID.String()
		projectID = &pid
	}
	return &dto.BookingResponse{
		ID:        b.ID.String(),
		ProjectID: projectID,
		Type:      b.Type,
		Note:      b.Note,
		Lines:     lines,
		CreatedAt: b.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
