package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-form-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AnswerService is the server-side business layer over the answer store. It
// validates incoming answer sets, stamps accepted writes, and translates
// repository sentinels for the transport layer.
type AnswerService interface {
	// GetAnswers returns the authoritative answer record for an application.
	GetAnswers(ctx context.Context, applicationID string) (models.AnswerRecord, error)

	// SaveAnswers validates and persists a full answer-set replacement.
	// Returns the server-assigned updatedAt of the accepted write.
	SaveAnswers(ctx context.Context, applicationID string, answers models.AnswerSet) (time.Time, error)

	// Submit finally submits the application; afterwards answer writes are
	// rejected.
	Submit(ctx context.Context, applicationID string) error
}

// AppInfoService exposes build metadata about the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
