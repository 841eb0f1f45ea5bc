package config

import (
	"fmt"
	"time"
)

// ServerApp holds server-side application settings derived from the shared
// structured config.
type ServerApp struct {
	// TokenSignKey is the secret key used to verify bearer tokens.
	TokenSignKey string
	// TokenIssuer is the expected "iss" claim of accepted tokens.
	TokenIssuer string
	// TokenDuration is the validity window of issued tokens.
	TokenDuration time.Duration
	// Version is the running server version.
	Version string
}

// ServerHTTP holds inbound transport settings.
type ServerHTTP struct {
	// HTTPAddress is the listen address in "host:port" format.
	HTTPAddress string
	// RequestTimeout bounds a single inbound request.
	RequestTimeout time.Duration
}

// ServerStorage groups server storage backend settings.
type ServerStorage struct {
	// DB holds the PostgreSQL connection settings for the answer store.
	DB DB
}

// ServerConfig is the top-level server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// App contains token and version settings.
	App ServerApp
	// Server contains inbound transport settings.
	Server ServerHTTP
	// Storage contains the answer-store database settings.
	Storage ServerStorage
}

// GetServerConfig builds and validates a server-specific config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			Version:       cfg.App.Version,
		},
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Storage: ServerStorage{
			DB: cfg.Storage.DB,
		},
	}

	return serverCfg, serverCfg.validate()
}
