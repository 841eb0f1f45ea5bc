package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
)

// Storages groups all server-side repositories.
type Storages struct {
	AnswerRecordRepository AnswerRecordRepository
}

// NewStorages initialises the server storage layer. With an empty or "memory"
// DSN it falls back to the in-memory repository, which is what the dev server
// runs on. Otherwise it connects to PostgreSQL and applies pending schema
// migrations before constructing the repository.
func NewStorages(cfg config.ServerStorage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" || cfg.DB.DSN == "memory" {
		log.Info().Str("func", "NewStorages").Msg("no database configured, using in-memory answer store")
		return &Storages{AnswerRecordRepository: NewMemoryAnswerRecordRepository()}, nil
	}

	db, err := NewConnectPostgres(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.MigrateAnswerStore(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		AnswerRecordRepository: NewAnswerRecordRepository(db, log),
	}, nil
}
