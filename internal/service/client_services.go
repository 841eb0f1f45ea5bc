package service

import (
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/connectivity"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/MKhiriev/go-form-keeper/internal/validators"
)

// ClientServices groups the client-side services around one application form
// session.
type ClientServices struct {
	Autosave AutosaveCoordinator
	Uploads  ClientUploadService
}

// defaultUploadPolicy is what the platform accepts as file answers today.
var defaultUploadPolicy = validators.UploadPolicy{
	MaxSize: 20 << 20, // 20 MiB
	AllowedExtensions: []string{
		".pdf", ".doc", ".docx", ".odt", ".txt",
		".png", ".jpg", ".jpeg",
	},
}

// NewClientServices wires the client service layer for the configured
// application.
func NewClientServices(
	cfg *config.ClientConfig,
	localStore *store.ClientStorages,
	remoteStore adapter.RemoteAnswerStore,
	monitor connectivity.Monitor,
	log *logger.Logger,
) *ClientServices {
	delays := AutosaveDelays{
		Fast:              cfg.Autosave.FastDelay,
		Slow:              cfg.Autosave.SlowDelay,
		ActivityThreshold: cfg.Autosave.ActivityThreshold,
		SavedDisplay:      cfg.Autosave.SavedDisplay,
		WriteTimeout:      cfg.Adapter.RequestTimeout,
	}

	return &ClientServices{
		Autosave: NewAutosaveCoordinator(
			cfg.App.ApplicationID,
			remoteStore,
			localStore.SnapshotRepository,
			monitor,
			delays,
			log,
		),
		Uploads: NewClientUploadService(
			defaultUploadPolicy,
			NewUploadRateLimiter(10, time.Minute),
			log,
		),
	}
}
