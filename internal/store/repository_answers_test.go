package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL создаёт DB из существующего *sql.DB (для тестов).
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var applicationColumns = []string{"application_id", "answers", "updated_at", "submitted"}

func TestAnswerRecordRepository_GetRecord(t *testing.T) {
	ctx := testContext()
	now := time.Now().Truncate(time.Millisecond)

	answers := models.AnswerSet{
		"q1": models.TextAnswer("hello"),
		"q2": models.BoolAnswer(true),
	}
	payload, err := json.Marshal(answers)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAnswerRecordRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(`SELECT .+ FROM applications WHERE application_id = \$1`).
			WithArgs("app-1").
			WillReturnRows(sqlmock.NewRows(applicationColumns).
				AddRow("app-1", payload, now, false))

		record, getErr := repo.GetRecord(ctx, "app-1")
		require.NoError(t, getErr)
		assert.Equal(t, "app-1", record.ApplicationID)
		assert.True(t, record.Answers.Equal(answers))
		assert.Equal(t, now, record.UpdatedAt)
		assert.False(t, record.Submitted)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAnswerRecordRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(`SELECT .+ FROM applications`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, getErr := repo.GetRecord(ctx, "missing")
		require.ErrorIs(t, getErr, ErrApplicationNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("corrupt payload", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAnswerRecordRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(`SELECT .+ FROM applications`).
			WithArgs("app-1").
			WillReturnRows(sqlmock.NewRows(applicationColumns).
				AddRow("app-1", []byte("{not json"), now, false))

		_, getErr := repo.GetRecord(ctx, "app-1")
		require.Error(t, getErr)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAnswerRecordRepository_SaveAnswers(t *testing.T) {
	ctx := testContext()
	now := time.Now().Truncate(time.Millisecond)
	answers := models.AnswerSet{"q1": models.TextAnswer("draft")}

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAnswerRecordRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(`INSERT INTO applications .+ON CONFLICT \(application_id\) DO UPDATE`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.SaveAnswers(ctx, "app-1", answers, now))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already submitted", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAnswerRecordRepository(newDBFromSQL(db), logger.Nop())

		// конфликт по отправленной заявке: строки не затронуты
		mock.ExpectExec(`INSERT INTO applications`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		saveErr := repo.SaveAnswers(ctx, "app-1", answers, now)
		require.ErrorIs(t, saveErr, ErrApplicationSubmitted)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAnswerRecordRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(`INSERT INTO applications`).
			WillReturnError(errors.New("connection refused"))

		saveErr := repo.SaveAnswers(ctx, "app-1", answers, now)
		require.ErrorIs(t, saveErr, ErrExecutingQuery)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAnswerRecordRepository_Submit(t *testing.T) {
	ctx := testContext()
	now := time.Now().Truncate(time.Millisecond)

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAnswerRecordRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(`UPDATE applications SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Submit(ctx, "app-1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAnswerRecordRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(`UPDATE applications SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT .+ FROM applications`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		submitErr := repo.Submit(ctx, "missing")
		require.ErrorIs(t, submitErr, ErrApplicationNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already submitted", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewAnswerRecordRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(`UPDATE applications SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT .+ FROM applications`).
			WithArgs("app-1").
			WillReturnRows(sqlmock.NewRows(applicationColumns).
				AddRow("app-1", []byte(`{}`), now, true))

		submitErr := repo.Submit(ctx, "app-1")
		require.ErrorIs(t, submitErr, ErrApplicationSubmitted)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
