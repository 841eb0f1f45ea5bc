package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
)

const (
	applicationsTable = "applications"
	snapshotsTable    = "snapshots"
)

// snapshotKey builds the local cache key for an application's answer
// snapshot. One key per application, so the cache holds at most one draft.
func snapshotKey(applicationID string) string {
	return "app:" + applicationID + ":answers"
}

// buildSelectApplicationQuery builds a SELECT of the full answer record for a
// single application. Postgres placeholders ($1).
func buildSelectApplicationQuery(ctx context.Context, applicationID string) (string, []any, error) {
	log := logger.FromContext(ctx)

	query, args, err := squirrel.
		Select("application_id", "answers", "updated_at", "submitted").
		From(applicationsTable).
		Where(squirrel.Eq{"application_id": applicationID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "buildSelectApplicationQuery").Msg("error building select query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpsertAnswersQuery builds the answer upsert. The ON CONFLICT clause
// refuses to touch rows that are already submitted, so a zero rows-affected
// result on conflict means the application is closed for edits.
func buildUpsertAnswersQuery(ctx context.Context, applicationID string, payload []byte, updatedAt time.Time) (string, []any, error) {
	log := logger.FromContext(ctx)

	query, args, err := squirrel.
		Insert(applicationsTable).
		Columns("application_id", "answers", "updated_at", "submitted").
		Values(applicationID, payload, updatedAt, false).
		Suffix(`ON CONFLICT (application_id) DO UPDATE
			SET answers = EXCLUDED.answers, updated_at = EXCLUDED.updated_at
			WHERE applications.submitted = FALSE`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "buildUpsertAnswersQuery").Msg("error building upsert query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSubmitApplicationQuery builds the final-submit update. Only rows not
// yet submitted are touched.
func buildSubmitApplicationQuery(ctx context.Context, applicationID string, submittedAt time.Time) (string, []any, error) {
	log := logger.FromContext(ctx)

	query, args, err := squirrel.
		Update(applicationsTable).
		Set("submitted", true).
		Set("updated_at", submittedAt).
		Where(squirrel.Eq{"application_id": applicationID, "submitted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "buildSubmitApplicationQuery").Msg("error building submit query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectSnapshotQuery builds the local draft-cache lookup. SQLite
// placeholders (?).
func buildSelectSnapshotQuery(ctx context.Context, applicationID string) (string, []any, error) {
	log := logger.FromContext(ctx)

	query, args, err := squirrel.
		Select("payload", "updated_at").
		From(snapshotsTable).
		Where(squirrel.Eq{"key": snapshotKey(applicationID)}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "buildSelectSnapshotQuery").Msg("error building select query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpsertSnapshotQuery builds the local draft-cache write.
func buildUpsertSnapshotQuery(ctx context.Context, applicationID string, payload []byte, updatedAt time.Time) (string, []any, error) {
	log := logger.FromContext(ctx)

	query, args, err := squirrel.
		Insert(snapshotsTable).
		Columns("key", "payload", "updated_at").
		Values(snapshotKey(applicationID), payload, updatedAt).
		Suffix(`ON CONFLICT (key) DO UPDATE
			SET payload = excluded.payload, updated_at = excluded.updated_at`).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "buildUpsertSnapshotQuery").Msg("error building upsert query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeleteSnapshotQuery builds the local draft-cache delete.
func buildDeleteSnapshotQuery(ctx context.Context, applicationID string) (string, []any, error) {
	log := logger.FromContext(ctx)

	query, args, err := squirrel.
		Delete(snapshotsTable).
		Where(squirrel.Eq{"key": snapshotKey(applicationID)}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "buildDeleteSnapshotQuery").Msg("error building delete query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
