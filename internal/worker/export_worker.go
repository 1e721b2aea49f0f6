package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/infra"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/reconcile"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/repository"
)

// ExportWorker renders a project's consolidated material list to xlsx
// or pdf. The BOM is recomputed from the live ledger at processing
// time, so a delayed job never exports stale quantities.
type ExportWorker struct {
	projectRepo  repository.ProjectRepository
	bookingRepo  repository.BookingRepository
	materialRepo repository.MaterialRepository
	dispatcher   *Dispatcher
	storagePath  string
}

func NewExportWorker(
	projectRepo repository.ProjectRepository,
	bookingRepo repository.BookingRepository,
	materialRepo repository.MaterialRepository,
	dispatcher *Dispatcher,
	storagePath string,
) *ExportWorker {
	return &ExportWorker{
		projectRepo:  projectRepo,
		bookingRepo:  bookingRepo,
		materialRepo: materialRepo,
		dispatcher:   dispatcher,
		storagePath:  storagePath,
	}
}

func (w *ExportWorker) Process(ctx context.Context, payload json.RawMessage) error {
	var job ExportJobPayload
	if err := json.Unmarshal(payload, &job); err != nil {
		return fmt.Errorf("invalid export payload: %w", err)
	}

	projectID, err := uuid.Parse(job.ProjectID)
	if err != nil {
		return fmt.Errorf("invalid project id %q: %w", job.ProjectID, err)
	}

	project, err := w.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return fmt.Errorf("load project: %w", err)
	}

	bookings, err := w.bookingRepo.ListByProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("load bookings: %w", err)
	}

	catalog, err := w.materialRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	items := reconcile.ComputeBOM(project, bookings, catalog)

	filename := fmt.Sprintf("stueckliste_%s_%s.%s",
		projectID.String(), time.Now().UTC().Format("20060102_150405"), job.Format)
	path := filepath.Join(w.storagePath, filename)

	switch job.Format {
	case "pdf":
		err = infra.WriteBOMPDF(path, project.Name, items)
	default:
		err = infra.WriteBOMExcel(path, project.Name, items)
	}
	if err != nil {
		return fmt.Errorf("write %s export: %w", job.Format, err)
	}

	log.Info().
		Str("project_id", projectID.String()).
		Str("format", job.Format).
		Str("path", path).
		Int("items", len(items)).
		Msg("BOM export written")

	if job.Email != "" {
		mail := EmailJobPayload{
			To:         job.Email,
			Subject:    fmt.Sprintf("Stückliste %s", project.Name),
			Body:       fmt.Sprintf("Im Anhang finden Sie die Stückliste für das Projekt %s (%d Positionen).", project.Name, len(items)),
			Attachment: path,
		}
		if err := w.dispatcher.EnqueueEmail(ctx, mail); err != nil {
			return fmt.Errorf("enqueue export mail: %w", err)
		}
	}
	return nil
}
