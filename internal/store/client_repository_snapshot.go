package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/models"
)

type localSnapshotRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	return &localSnapshotRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSnapshotRepository) GetSnapshot(ctx context.Context, applicationID string) (models.LocalSnapshot, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSnapshotQuery(ctx, applicationID)
	if err != nil {
		return models.LocalSnapshot{}, err
	}

	var snapshot models.LocalSnapshot
	var payload []byte

	row := l.DB.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(&payload, &snapshot.UpdatedAt)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.LocalSnapshot{}, ErrSnapshotNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "localSnapshotRepository.GetSnapshot").
			Str("application_id", applicationID).
			Msg("failed to scan snapshot row")
		return models.LocalSnapshot{}, fmt.Errorf("failed to scan snapshot row: %w", scanErr)
	}

	if unmarshalErr := json.Unmarshal(payload, &snapshot.Answers); unmarshalErr != nil {
		// corrupt cache entry, treat the same as a missing one
		log.Warn().
			Str("func", "localSnapshotRepository.GetSnapshot").
			Str("application_id", applicationID).
			Err(unmarshalErr).
			Msg("cached snapshot payload is not valid JSON, ignoring it")
		return models.LocalSnapshot{}, ErrSnapshotNotFound
	}

	return snapshot, nil
}

func (l *localSnapshotRepository) SaveSnapshot(ctx context.Context, applicationID string, snapshot models.LocalSnapshot) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(snapshot.Answers)
	if err != nil {
		log.Err(err).
			Str("func", "localSnapshotRepository.SaveSnapshot").
			Str("application_id", applicationID).
			Msg("failed to encode snapshot payload")
		return fmt.Errorf("failed to encode snapshot payload: %w", err)
	}

	query, args, err := buildUpsertSnapshotQuery(ctx, applicationID, payload, snapshot.UpdatedAt)
	if err != nil {
		return err
	}

	if _, execErr := l.DB.ExecContext(ctx, query, args...); execErr != nil {
		log.Err(execErr).
			Str("func", "localSnapshotRepository.SaveSnapshot").
			Str("application_id", applicationID).
			Msg("failed to execute upsert for snapshot")
		return fmt.Errorf("failed to save snapshot: %w", execErr)
	}

	return nil
}

func (l *localSnapshotRepository) DeleteSnapshot(ctx context.Context, applicationID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSnapshotQuery(ctx, applicationID)
	if err != nil {
		return err
	}

	if _, execErr := l.DB.ExecContext(ctx, query, args...); execErr != nil {
		log.Err(execErr).
			Str("func", "localSnapshotRepository.DeleteSnapshot").
			Str("application_id", applicationID).
			Msg("failed to execute delete for snapshot")
		return fmt.Errorf("failed to delete snapshot: %w", execErr)
	}

	return nil
}
