package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// ApplicationID identifies the application form being edited.
	ApplicationID string
	// AccessToken is the bearer token presented to the answer-store server.
	AccessToken string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the answer-store endpoint address used by the client.
	HTTPAddress string
	// RequestTimeout is the per-attempt bound for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local draft-cache settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used for the local draft cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientAutosave carries the debounce policy for the autosave coordinator.
type ClientAutosave struct {
	// FastDelay is the inactivity window while actively editing.
	FastDelay time.Duration
	// SlowDelay is the inactivity window after an idle resumption.
	SlowDelay time.Duration
	// ActivityThreshold separates bursty editing from idle resumption.
	ActivityThreshold time.Duration
	// SavedDisplay is the display window of the "saved" status.
	SavedDisplay time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ProbeInterval defines how often the connectivity monitor pings the
	// remote store.
	ProbeInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Autosave contains the debounce policy.
	Autosave ClientAutosave
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			ApplicationID: cfg.App.ApplicationID,
			AccessToken:   cfg.App.AccessToken,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Autosave: ClientAutosave{
			FastDelay:         cfg.Autosave.FastDelay,
			SlowDelay:         cfg.Autosave.SlowDelay,
			ActivityThreshold: cfg.Autosave.ActivityThreshold,
			SavedDisplay:      cfg.Autosave.SavedDisplay,
		},
		Workers: ClientWorkers{ProbeInterval: cfg.Workers.ProbeInterval},
	}

	return clientCfg, clientCfg.validate()
}
