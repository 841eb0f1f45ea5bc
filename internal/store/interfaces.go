package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-form-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AnswerRecordRepository is the server-side repository for authoritative
// answer records. Writes are full replacements of the stored answer set.
type AnswerRecordRepository interface {
	// GetRecord returns the answer record for the given application.
	// Returns [ErrApplicationNotFound] if no record exists.
	GetRecord(ctx context.Context, applicationID string) (models.AnswerRecord, error)

	// SaveAnswers replaces the stored answer set for the given application
	// and stamps it with updatedAt. Creates the record if it does not exist.
	// Returns [ErrApplicationSubmitted] if the application has already been
	// submitted.
	SaveAnswers(ctx context.Context, applicationID string, answers models.AnswerSet, updatedAt time.Time) error

	// Submit marks the application as finally submitted. Returns
	// [ErrApplicationNotFound] if no record exists and
	// [ErrApplicationSubmitted] if it was submitted before.
	Submit(ctx context.Context, applicationID string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
