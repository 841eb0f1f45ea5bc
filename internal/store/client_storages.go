package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer. Currently it holds only
// [SnapshotRepository]; additional repositories can be added here as the
// feature set grows.
type ClientStorages struct {
	// SnapshotRepository is the SQLite-backed draft cache for answer
	// snapshots stored locally on the client device.
	SnapshotRepository SnapshotRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.MigrateLocal].
//  3. Constructs and returns a [ClientStorages] value wired to a fresh
//     [SnapshotRepository].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.MigrateLocal(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SnapshotRepository: NewLocalSnapshotRepository(db, logger),
	}, nil
}
