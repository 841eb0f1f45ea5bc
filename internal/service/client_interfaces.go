package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-form-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// AutosaveCoordinator keeps an application's answers safe while the applicant
// edits: every change lands in the local draft cache immediately and reaches
// the remote answer store after a debounce window.
//
// The coordinator runs one save at a time from the caller's point of view but
// never blocks Update on the network; remote writes happen on background
// goroutines with a bounded per-attempt timeout.
type AutosaveCoordinator interface {
	// Seed loads the initial answer set. The remote record is authoritative;
	// the local snapshot wins only when it is strictly newer than the remote
	// updatedAt, which means it holds edits that never reached the server.
	Seed(ctx context.Context) error

	// Update records a single answer change, writes the draft cache, and
	// arms the debounce timer: a short window while the applicant is
	// actively editing, a long one for an isolated edit after a pause.
	Update(key string, value models.AnswerValue)

	// Flush pushes the current answers to the remote store right away,
	// cancelling any armed debounce timer. Answers already acknowledged
	// (same fingerprint) are not retransmitted. Returns ErrOffline when the
	// device is offline; the answers stay queued for the reconnect push.
	Flush(ctx context.Context) error

	// Answers returns the current answer set. The returned map is never
	// mutated by the coordinator afterwards.
	Answers() models.AnswerSet

	// Status returns the current save status.
	Status() models.SaveStatus

	// SetStatusListener registers fn to be called on every status change.
	// Only one listener is kept; passing nil removes it. The callback must
	// not call back into the coordinator.
	SetStatusListener(fn func(models.SaveStatus))

	// Complete flushes unsaved answers, finally submits the application,
	// and drops the local draft cache. Returns ErrUnsavedAnswers (wrapped)
	// when the flush could not land the current answers.
	Complete(ctx context.Context) error

	// Close stops all timers and the connectivity subscription. The
	// coordinator must not be used afterwards.
	Close()
}

// ClientUploadService validates and admits file answers on behalf of the
// form. It does not move bytes: the platform's upload storage does that, the
// service only gates and describes the attachment.
type ClientUploadService interface {
	// AttachFile checks the file descriptor against the upload policy and
	// the rate limiter, and on success returns a [models.FileAnswer] with a
	// fresh upload ID, ready to be stored via AutosaveCoordinator.Update.
	AttachFile(ctx context.Context, name string, size int64, contentType string) (models.FileAnswer, error)
}

// AutosaveDelays carries the debounce and timeout policy of the coordinator.
// The zero value is usable: every field falls back to its default.
type AutosaveDelays struct {
	// Fast is the inactivity window armed while the applicant is actively
	// editing. Default 3s.
	Fast time.Duration
	// Slow is the inactivity window armed for an isolated edit after a
	// pause. Default 15s.
	Slow time.Duration
	// ActivityThreshold separates bursty editing from idle resumption: an
	// edit within this interval of the previous one counts as active
	// editing. Default 5s.
	ActivityThreshold time.Duration
	// SavedDisplay is how long the "saved" status is shown before reverting
	// to idle. Default 2s.
	SavedDisplay time.Duration
	// WriteTimeout bounds a single remote write attempt. Default 10s.
	WriteTimeout time.Duration
}

func (d AutosaveDelays) withDefaults() AutosaveDelays {
	if d.Fast <= 0 {
		d.Fast = 3 * time.Second
	}
	if d.Slow <= 0 {
		d.Slow = 15 * time.Second
	}
	if d.ActivityThreshold <= 0 {
		d.ActivityThreshold = 5 * time.Second
	}
	if d.SavedDisplay <= 0 {
		d.SavedDisplay = 2 * time.Second
	}
	if d.WriteTimeout <= 0 {
		d.WriteTimeout = 10 * time.Second
	}
	return d
}
