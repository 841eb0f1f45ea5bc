package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/models"
)

// answerRecordRepository is the PostgreSQL-backed implementation of
// [AnswerRecordRepository]. It executes all answer-record operations directly
// against the "applications" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (application_id, rows affected, etc.).
type answerRecordRepository struct {
	*DB
	logger *logger.Logger
}

// NewAnswerRecordRepository constructs an [AnswerRecordRepository] backed by
// the provided database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewAnswerRecordRepository(db *DB, logger *logger.Logger) AnswerRecordRepository {
	return &answerRecordRepository{
		DB:     db,
		logger: logger,
	}
}

// GetRecord fetches the full answer record of a single application.
//
// Returns [ErrApplicationNotFound] if the application has no record yet.
func (a *answerRecordRepository) GetRecord(ctx context.Context, applicationID string) (models.AnswerRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectApplicationQuery(ctx, applicationID)
	if err != nil {
		log.Err(err).
			Str("func", "answerRecordRepository.GetRecord").
			Str("application_id", applicationID).
			Msg("failed to create query")
		return models.AnswerRecord{}, err
	}

	var record models.AnswerRecord
	var payload []byte

	row := a.DB.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(&record.ApplicationID, &payload, &record.UpdatedAt, &record.Submitted)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.AnswerRecord{}, ErrApplicationNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "answerRecordRepository.GetRecord").
			Str("application_id", applicationID).
			Msg("failed to scan application row")
		return models.AnswerRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	if unmarshalErr := json.Unmarshal(payload, &record.Answers); unmarshalErr != nil {
		log.Err(unmarshalErr).
			Str("func", "answerRecordRepository.GetRecord").
			Str("application_id", applicationID).
			Msg("failed to decode stored answers payload")
		return models.AnswerRecord{}, fmt.Errorf("failed to decode stored answers: %w", unmarshalErr)
	}

	return record, nil
}

// SaveAnswers replaces the stored answer set with the provided one and stamps
// it with updatedAt. A fresh record is created for a first-time write.
//
// A submitted application refuses further writes: the upsert's conflict
// clause skips such rows, so a zero rows-affected result maps to
// [ErrApplicationSubmitted].
func (a *answerRecordRepository) SaveAnswers(ctx context.Context, applicationID string, answers models.AnswerSet, updatedAt time.Time) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(answers)
	if err != nil {
		log.Err(err).
			Str("func", "answerRecordRepository.SaveAnswers").
			Str("application_id", applicationID).
			Msg("failed to encode answers payload")
		return fmt.Errorf("failed to encode answers: %w", err)
	}

	query, args, err := buildUpsertAnswersQuery(ctx, applicationID, payload, updatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "answerRecordRepository.SaveAnswers").
			Str("application_id", applicationID).
			Msg("failed to create query")
		return err
	}

	result, execErr := a.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		classification := a.errorClassificator.Classify(execErr)
		log.Err(execErr).
			Str("func", "answerRecordRepository.SaveAnswers").
			Str("application_id", applicationID).
			Bool("retryable", classification == Retryable).
			Msg("failed to execute upsert for answers")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	rowsAffected, rowsErr := result.RowsAffected()
	if rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "answerRecordRepository.SaveAnswers").
			Str("application_id", applicationID).
			Msg("failed to get rows affected after upsert")
		return fmt.Errorf("failed to get rows affected: %w", rowsErr)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "answerRecordRepository.SaveAnswers").
			Str("application_id", applicationID).
			Msg("upsert affected no rows: application already submitted")
		return ErrApplicationSubmitted
	}

	return nil
}

// Submit marks the application as finally submitted.
//
// Returns [ErrApplicationNotFound] if the application has no record and
// [ErrApplicationSubmitted] if it was already submitted.
func (a *answerRecordRepository) Submit(ctx context.Context, applicationID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSubmitApplicationQuery(ctx, applicationID, time.Now())
	if err != nil {
		log.Err(err).
			Str("func", "answerRecordRepository.Submit").
			Str("application_id", applicationID).
			Msg("failed to create query")
		return err
	}

	result, execErr := a.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "answerRecordRepository.Submit").
			Str("application_id", applicationID).
			Msg("failed to execute submit update")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	rowsAffected, rowsErr := result.RowsAffected()
	if rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "answerRecordRepository.Submit").
			Str("application_id", applicationID).
			Msg("failed to get rows affected after submit")
		return fmt.Errorf("failed to get rows affected: %w", rowsErr)
	}

	if rowsAffected > 0 {
		log.Info().
			Str("func", "answerRecordRepository.Submit").
			Str("application_id", applicationID).
			Msg("application submitted")
		return nil
	}

	// zero rows: either the record does not exist or it was submitted before
	if _, getErr := a.GetRecord(ctx, applicationID); getErr != nil {
		return getErr
	}

	return ErrApplicationSubmitted
}
