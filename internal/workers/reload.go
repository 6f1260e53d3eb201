package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-flavor-resolver/internal/logger"
	"github.com/MKhiriev/go-flavor-resolver/internal/service"
)

// ReloadWorker calls [service.VariantService.Reload] on every tick so that
// edits to the declaration file are picked up without a restart.
type ReloadWorker struct {
	variants service.VariantService
	interval time.Duration

	logger *logger.Logger
}

func NewReloadWorker(variants service.VariantService, interval time.Duration, logger *logger.Logger) *ReloadWorker {
	return &ReloadWorker{
		variants: variants,
		interval: interval,
		logger:   logger,
	}
}

func (w *ReloadWorker) Run(ctx context.Context) {
	t := time.NewTicker(w.interval)
	defer t.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("reload worker started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("reload worker stopped")
			return
		case <-t.C:
			resolved, err := w.variants.Reload(ctx)
			if err != nil {
				// the service keeps serving the previous snapshot
				w.logger.Err(err).Msg("periodic reload failed")
				continue
			}
			w.logger.Debug().Int("variants", len(resolved)).Msg("declaration reloaded")
		}
	}
}
