// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote answer store.
//
// The primary abstraction is [RemoteAnswerStore], which decouples the autosave
// coordinator from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPAnswerStore]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-form-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/answer_store_mock.go -package=mock

// RemoteAnswerStore defines transport-agnostic communication with the remote
// answer store. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type RemoteAnswerStore interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// FetchAnswers retrieves the authoritative answer record for the given
	// application. Returns [ErrNotFound] (wrapped) when the application has
	// no remote record yet.
	FetchAnswers(ctx context.Context, applicationID string) (models.AnswerRecord, error)

	// SaveAnswers transmits the full answer set as a replacement of the
	// remote record and returns the server-assigned updatedAt timestamp.
	// Returns [ErrConflict] (wrapped) when the application has already been
	// submitted and no longer accepts writes.
	SaveAnswers(ctx context.Context, applicationID string, answers models.AnswerSet) (time.Time, error)

	// SubmitApplication marks the application as finally submitted. After a
	// successful submit the remote record rejects further answer writes.
	SubmitApplication(ctx context.Context, applicationID string) error

	// Ping checks reachability of the answer store. Used by the connectivity
	// monitor; a nil error means the store is reachable.
	Ping(ctx context.Context) error
}
