package store

import (
	"context"

	"github.com/MKhiriev/go-form-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SnapshotRepository is the local draft cache. It keeps at most one snapshot
// per application so that unsaved answers survive process restarts.
type SnapshotRepository interface {
	// GetSnapshot returns the cached snapshot for the given application.
	// Returns [ErrSnapshotNotFound] if there is no snapshot or the cached
	// payload cannot be decoded.
	GetSnapshot(ctx context.Context, applicationID string) (models.LocalSnapshot, error)

	// SaveSnapshot replaces the cached snapshot for the given application.
	SaveSnapshot(ctx context.Context, applicationID string, snapshot models.LocalSnapshot) error

	// DeleteSnapshot removes the cached snapshot for the given application.
	// Deleting a missing snapshot is not an error.
	DeleteSnapshot(ctx context.Context, applicationID string) error
}
