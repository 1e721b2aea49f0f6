package worker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/reconcile"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/repository"
)

// StartLowStockCron periodically reduces the catalog to order counters
// and mails a summary to the purchasing address whenever anything needs
// ordering. Runs once shortly after startup, then on the interval.
func StartLowStockCron(ctx context.Context, materialRepo repository.MaterialRepository, dispatcher *Dispatcher, notifyEmail string, interval time.Duration) {
	if notifyEmail == "" {
		log.Info().Msg("low stock cron disabled, no notify address configured")
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// initial delay so the first run does not race startup
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Minute):
		}
		runLowStockCheck(ctx, materialRepo, dispatcher, notifyEmail)

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("low stock cron shutting down")
				return
			case <-ticker.C:
				runLowStockCheck(ctx, materialRepo, dispatcher, notifyEmail)
			}
		}
	}()
	log.Info().Str("interval", interval.String()).Msg("low stock cron started")
}

func runLowStockCheck(ctx context.Context, materialRepo repository.MaterialRepository, dispatcher *Dispatcher, notifyEmail string) {
	catalog, err := materialRepo.ListAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("low stock check failed to load catalog")
		return
	}

	stats := reconcile.DeriveOrderStats(catalog)
	if stats.ToOrderCount == 0 {
		log.Debug().Msg("low stock check: nothing to order")
		return
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Es sind %d Materialien zu bestellen (%d bereits bestellt).\n", stats.ToOrderCount, stats.OrderedCount)
	if stats.ExcludedLowStockCount > 0 {
		fmt.Fprintf(&body, "\n%d Materialien mit niedrigem Bestand sind von der automatischen Bestellung ausgenommen:\n", stats.ExcludedLowStockCount)
		for _, m := range stats.ExcludedLowStockMaterials {
			fmt.Fprintf(&body, "  - %s %s (Bestand %d, Meldebestand %d)\n", m.MaterialID, m.Description, m.Stock, m.HeatStock)
		}
	}

	mail := EmailJobPayload{
		To:      notifyEmail,
		Subject: fmt.Sprintf("Bestellbedarf: %d Materialien", stats.ToOrderCount),
		Body:    body.String(),
	}
	if err := dispatcher.EnqueueEmail(ctx, mail); err != nil {
		log.Error().Err(err).Msg("failed to enqueue low stock mail")
		return
	}
	log.Info().
		Int("to_order", stats.ToOrderCount).
		Int("ordered", stats.OrderedCount).
		Msg("low stock notification enqueued")
}
