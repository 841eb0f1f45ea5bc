package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/connectivity"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/MKhiriev/go-form-keeper/models"
)

// autosaveCoordinator is the working implementation of [AutosaveCoordinator].
//
// One mutex guards all mutable state. Remote writes run outside the lock, so
// an Update arriving mid-write is never blocked; if that happens, the write's
// result only refreshes lastPushed and the newer edit is pushed by its own
// timer. The pending field is the single retransmit slot: whatever answer set
// is queued there is the one sent on reconnect, older queued sets are simply
// replaced.
type autosaveCoordinator struct {
	applicationID string
	remote        adapter.RemoteAnswerStore
	local         store.SnapshotRepository
	monitor       connectivity.Monitor
	delays        AutosaveDelays
	logger        *logger.Logger

	unsubscribe func()

	mu          sync.Mutex
	answers     models.AnswerSet
	lastPushed  string // fingerprint of the last acknowledged remote write
	lastEdit    time.Time
	saveTimer   *time.Timer
	revertTimer *time.Timer
	pending     models.AnswerSet
	status      models.SaveStatus
	listener    func(models.SaveStatus)
	closed      bool
}

// NewAutosaveCoordinator wires a coordinator for one application. It
// subscribes to the connectivity monitor so that answers queued while offline
// are retransmitted as soon as the store is reachable again. Callers should
// Seed before accepting edits and Close when the form session ends.
func NewAutosaveCoordinator(
	applicationID string,
	remote adapter.RemoteAnswerStore,
	local store.SnapshotRepository,
	monitor connectivity.Monitor,
	delays AutosaveDelays,
	log *logger.Logger,
) AutosaveCoordinator {
	c := &autosaveCoordinator{
		applicationID: applicationID,
		remote:        remote,
		local:         local,
		monitor:       monitor,
		delays:        delays.withDefaults(),
		logger:        log,
		answers:       models.AnswerSet{},
		status:        models.SaveStatusIdle,
	}

	c.unsubscribe = monitor.Subscribe(func(online bool) {
		if !online {
			return
		}
		c.mu.Lock()
		hasPending := c.pending != nil && !c.closed
		c.mu.Unlock()
		if hasPending {
			go c.save()
		}
	})

	return c
}

// Seed implements [AutosaveCoordinator]. The remote record is authoritative;
// the local snapshot wins only when strictly newer (an exact timestamp tie
// means the snapshot was written by an acknowledged save, so the remote copy
// is the same or better). A snapshot that wins carries edits the server never
// saw: they are queued and pushed shortly after.
func (c *autosaveCoordinator) Seed(ctx context.Context) error {
	log := logger.FromContext(ctx)

	snapshot, snapErr := c.local.GetSnapshot(ctx, c.applicationID)
	record, remoteErr := c.remote.FetchAnswers(ctx, c.applicationID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrCoordinatorClosed
	}

	switch {
	case remoteErr == nil:
		c.answers = record.Answers.Clone()
		if fp, err := c.answers.Fingerprint(); err == nil {
			c.lastPushed = fp
		}

		if snapErr == nil && snapshot.Newer(record.UpdatedAt) {
			log.Info().
				Str("func", "autosaveCoordinator.Seed").
				Str("application_id", c.applicationID).
				Time("snapshot_at", snapshot.UpdatedAt).
				Time("remote_at", record.UpdatedAt).
				Msg("local snapshot is newer than the remote record, resuming from it")
			c.answers = snapshot.Answers.Clone()
			c.pending = c.answers
			c.armSaveTimerLocked(c.delays.Slow)
		}
		return nil

	case errors.Is(remoteErr, adapter.ErrNotFound):
		// fresh application, nothing saved remotely yet
		if snapErr == nil {
			c.answers = snapshot.Answers.Clone()
			c.pending = c.answers
			c.armSaveTimerLocked(c.delays.Slow)
		} else {
			c.answers = models.AnswerSet{}
		}
		return nil

	default:
		// remote unreachable: resume from the draft cache if we have one
		if snapErr == nil {
			log.Warn().
				Str("func", "autosaveCoordinator.Seed").
				Str("application_id", c.applicationID).
				Err(remoteErr).
				Msg("remote store unreachable, seeding from local snapshot")
			c.answers = snapshot.Answers.Clone()
			c.pending = c.answers
			c.armSaveTimerLocked(c.delays.Slow)
			return nil
		}
		return fmt.Errorf("error seeding answers: %w", remoteErr)
	}
}

// Update implements [AutosaveCoordinator]. The answer set is replaced via
// copy-on-write, so sets handed out earlier stay valid. The debounce delay
// depends on editing cadence: an edit within ActivityThreshold of the
// previous one re-arms the short window, an isolated edit gets the long one.
// The very first edit of a session counts as isolated.
func (c *autosaveCoordinator) Update(key string, value models.AnswerValue) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	c.answers = c.answers.With(key, value)

	now := time.Now()
	delay := c.delays.Slow
	if !c.lastEdit.IsZero() && now.Sub(c.lastEdit) < c.delays.ActivityThreshold {
		delay = c.delays.Fast
	}
	c.lastEdit = now

	snapshot := models.LocalSnapshot{Answers: c.answers, UpdatedAt: now}
	c.armSaveTimerLocked(delay)
	c.mu.Unlock()

	// the draft cache is best-effort: a failed write only degrades crash
	// recovery, it never blocks editing
	if err := c.local.SaveSnapshot(context.Background(), c.applicationID, snapshot); err != nil {
		c.logger.Debug().
			Str("func", "autosaveCoordinator.Update").
			Str("application_id", c.applicationID).
			Err(err).
			Msg("failed to write draft snapshot")
	}
}

// Flush implements [AutosaveCoordinator].
func (c *autosaveCoordinator) Flush(ctx context.Context) error {
	return c.push(ctx)
}

// Answers implements [AutosaveCoordinator].
func (c *autosaveCoordinator) Answers() models.AnswerSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.answers
}

// Status implements [AutosaveCoordinator].
func (c *autosaveCoordinator) Status() models.SaveStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// SetStatusListener implements [AutosaveCoordinator].
func (c *autosaveCoordinator) SetStatusListener(fn func(models.SaveStatus)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listener = fn
}

// Complete implements [AutosaveCoordinator].
func (c *autosaveCoordinator) Complete(ctx context.Context) error {
	if err := c.push(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrUnsavedAnswers, err)
	}

	if err := c.remote.SubmitApplication(ctx, c.applicationID); err != nil {
		return fmt.Errorf("error submitting application: %w", err)
	}

	// the submitted record is remote now, the draft has served its purpose
	if err := c.local.DeleteSnapshot(ctx, c.applicationID); err != nil {
		c.logger.Debug().
			Str("func", "autosaveCoordinator.Complete").
			Str("application_id", c.applicationID).
			Err(err).
			Msg("failed to delete draft snapshot after submit")
	}

	return nil
}

// Close implements [AutosaveCoordinator].
func (c *autosaveCoordinator) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.stopSaveTimerLocked()
	if c.revertTimer != nil {
		c.revertTimer.Stop()
		c.revertTimer = nil
	}
	unsubscribe := c.unsubscribe
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// save is the debounce timer's callback.
func (c *autosaveCoordinator) save() {
	if err := c.push(context.Background()); err != nil {
		c.logger.Debug().
			Str("func", "autosaveCoordinator.save").
			Str("application_id", c.applicationID).
			Err(err).
			Msg("debounced save did not land")
	}
}

// push transmits the current answer set. It skips the write when the set's
// fingerprint matches the last acknowledged one, queues the set instead of
// writing when offline, and bounds the attempt with WriteTimeout.
func (c *autosaveCoordinator) push(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrCoordinatorClosed
	}
	c.stopSaveTimerLocked()

	attempt := c.answers
	fp, err := attempt.Fingerprint()
	if err != nil {
		c.mu.Unlock()
		return fmt.Errorf("error fingerprinting answers: %w", err)
	}

	if fp == c.lastPushed {
		// nothing changed since the last acknowledged write
		c.pending = nil
		notify := c.transitionLocked(models.SaveStatusSaved)
		c.armRevertTimerLocked()
		c.mu.Unlock()
		notify()
		return nil
	}

	if !c.monitor.Online() {
		c.pending = attempt
		notify := c.transitionLocked(models.SaveStatusError)
		c.mu.Unlock()
		notify()
		return ErrOffline
	}

	notify := c.transitionLocked(models.SaveStatusSaving)
	c.mu.Unlock()
	notify()

	writeCtx, cancel := context.WithTimeout(ctx, c.delays.WriteTimeout)
	defer cancel()
	updatedAt, saveErr := c.remote.SaveAnswers(writeCtx, c.applicationID, attempt)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrCoordinatorClosed
	}

	if saveErr != nil {
		c.pending = c.answers
		notify = c.transitionLocked(models.SaveStatusError)
		c.mu.Unlock()
		notify()
		return fmt.Errorf("error saving answers remotely: %w", saveErr)
	}

	c.lastPushed = fp
	c.pending = nil
	notify = c.transitionLocked(models.SaveStatusSaved)
	c.armRevertTimerLocked()
	// an Update that landed while the write was in flight has already put a
	// newer draft in the cache; re-stamping would clobber the only durable
	// copy of that edit
	stillCurrent := c.answers.Equal(attempt)
	c.mu.Unlock()
	notify()

	// stamp the draft with the server clock so that next session's seeding
	// sees snapshot and remote as equals
	if stillCurrent {
		if cacheErr := c.local.SaveSnapshot(ctx, c.applicationID, models.LocalSnapshot{Answers: attempt, UpdatedAt: updatedAt}); cacheErr != nil {
			c.logger.Debug().
				Str("func", "autosaveCoordinator.push").
				Str("application_id", c.applicationID).
				Err(cacheErr).
				Msg("failed to refresh draft snapshot after save")
		}
	}

	return nil
}

// transitionLocked changes the status and returns the listener notification
// to run after the lock is released. Must be called with c.mu held.
func (c *autosaveCoordinator) transitionLocked(next models.SaveStatus) func() {
	if c.status == next {
		return func() {}
	}
	c.status = next

	listener := c.listener
	if listener == nil {
		return func() {}
	}
	return func() { listener(next) }
}

func (c *autosaveCoordinator) armSaveTimerLocked(delay time.Duration) {
	if c.saveTimer != nil {
		c.saveTimer.Stop()
	}
	c.saveTimer = time.AfterFunc(delay, c.save)
}

func (c *autosaveCoordinator) stopSaveTimerLocked() {
	if c.saveTimer != nil {
		c.saveTimer.Stop()
		c.saveTimer = nil
	}
}

func (c *autosaveCoordinator) armRevertTimerLocked() {
	if c.revertTimer != nil {
		c.revertTimer.Stop()
	}
	c.revertTimer = time.AfterFunc(c.delays.SavedDisplay, c.revertSaved)
}

// revertSaved drops the "saved" display back to idle. A status that moved on
// in the meantime (a new save started, an error surfaced) is left alone.
func (c *autosaveCoordinator) revertSaved() {
	c.mu.Lock()
	if c.closed || c.status != models.SaveStatusSaved {
		c.mu.Unlock()
		return
	}
	notify := c.transitionLocked(models.SaveStatusIdle)
	c.mu.Unlock()
	notify()
}
