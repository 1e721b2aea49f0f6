package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/dto"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/reconcile"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/repository"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/worker"
)

// BOMService assembles the inputs for the bill-of-materials derivation
// and hands exports off to the async worker pool.
type BOMService interface {
	Compute(ctx context.Context, projectID uuid.UUID) (*dto.BOMResponse, error)
	Export(ctx context.Context, projectID uuid.UUID, req dto.ExportBOMRequest) error
}

type bomService struct {
	projectRepo  repository.ProjectRepository
	bookingRepo  repository.BookingRepository
	materialRepo repository.MaterialRepository
	dispatcher   *worker.Dispatcher
}

func NewBOMService(
	projectRepo repository.ProjectRepository,
	bookingRepo repository.BookingRepository,
	materialRepo repository.MaterialRepository,
	dispatcher *worker.Dispatcher,
) BOMService {
	return &bomService{
		projectRepo:  projectRepo,
		bookingRepo:  bookingRepo,
		materialRepo: materialRepo,
		dispatcher:   dispatcher,
	}
}

// Compute fetches project, ledger and catalog and reduces them to the
// consolidated BOM. Always a full recomputation — no cached partial
// results can go stale.
func (s *bomService) Compute(ctx context.Context, projectID uuid.UUID) (*dto.BOMResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, errors.New("Projekt nicht gefunden")
	}
	bookings, err := s.bookingRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	materials, err := s.materialRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	items := reconcile.ComputeBOM(project, bookings, materials)
	return &dto.BOMResponse{
		ProjectID:   project.ID.String(),
		ProjectName: project.Name,
		Items:       items,
	}, nil
}

// Export enqueues an export job; the worker recomputes the BOM so the
// file reflects the ledger at processing time, not at enqueue time.
func (s *bomService) Export(ctx context.Context, projectID uuid.UUID, req dto.ExportBOMRequest) error {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return errors.New("Projekt nicht gefunden")
	}
	if s.dispatcher == nil {
		return errors.New("Export ist nicht verfügbar")
	}
	return s.dispatcher.EnqueueExport(ctx, worker.ExportJobPayload{
		ProjectID: projectID.String(),
		Format:    req.Format,
		Email:     req.Email,
	})
}
