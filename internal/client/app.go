package client

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/connectivity"
	"github.com/MKhiriev/go-form-keeper/internal/lifecycle"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/MKhiriev/go-form-keeper/models"
)

// flushTimeout bounds the final push when the session is torn down. The
// process is about to exit, so the wait must be short; answers that do not
// land stay in the draft cache for the next session.
const flushTimeout = 5 * time.Second

type App struct {
	services  *service.ClientServices
	monitor   *connectivity.ProbeMonitor
	lifecycle lifecycle.Notifier
	workers   config.ClientWorkers

	logger *logger.Logger
}

func NewApp(
	services *service.ClientServices,
	monitor *connectivity.ProbeMonitor,
	notifier lifecycle.Notifier,
	workers config.ClientWorkers,
	log *logger.Logger,
) (*App, error) {
	if services == nil {
		return nil, fmt.Errorf("client services are required")
	}

	return &App{
		services:  services,
		monitor:   monitor,
		lifecycle: notifier,
		workers:   workers,
		logger:    log,
	}, nil
}

// Run seeds the form session, keeps the autosave machinery alive, and blocks
// until the process is asked to stop. On teardown it makes a final bounded
// push of any unsaved answers before closing the coordinator.
func (a *App) Run() error {
	ctx := context.Background()

	a.monitor.Start(ctx, a.workers.ProbeInterval)
	defer a.monitor.Stop()

	if err := a.services.Autosave.Seed(ctx); err != nil {
		return fmt.Errorf("error seeding form session: %w", err)
	}

	a.services.Autosave.SetStatusListener(func(status models.SaveStatus) {
		a.logger.Info().
			Str("func", "*App.Run").
			Str("status", status.String()).
			Msg("autosave status changed")
	})

	done := make(chan struct{})
	cancel := a.lifecycle.Subscribe(func() {
		close(done)
	})
	defer cancel()

	a.logger.Info().Msg("form session started")
	<-done

	a.logger.Info().Msg("form session ending, flushing unsaved answers")

	flushCtx, cancelFlush := context.WithTimeout(context.Background(), flushTimeout)
	defer cancelFlush()

	if err := a.services.Autosave.Flush(flushCtx); err != nil {
		// not fatal: the draft cache still holds the answers for next time
		a.logger.Warn().
			Str("func", "*App.Run").
			Err(err).
			Msg("final flush did not land, answers remain in the draft cache")
	}

	a.services.Autosave.Close()

	return nil
}
