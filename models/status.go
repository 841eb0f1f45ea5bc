// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SaveStatus describes the autosave machinery's relation to the remote store
// at a given instant. The machine has four states and no terminal state; it
// runs for the life of a form-editing session.
//
// Transitions:
//
//	idle   → saving  a save attempt begins
//	saving → saved   the write succeeded (reverts to idle after a short display window)
//	saving → error   the write failed, or the device was found offline
//	error  → saving  a retry begins (reconnect, next debounced edit, or explicit flush)
type SaveStatus string

const (
	// SaveStatusIdle means no save is pending or in flight.
	SaveStatusIdle SaveStatus = "idle"
	// SaveStatusSaving means a remote write is in flight.
	SaveStatusSaving SaveStatus = "saving"
	// SaveStatusSaved means the last write succeeded; shown briefly before
	// reverting to idle.
	SaveStatusSaved SaveStatus = "saved"
	// SaveStatusError means the last attempt failed or was queued offline;
	// the unsent answers are retained for retry.
	SaveStatusError SaveStatus = "error"
)

// String implements fmt.Stringer.
func (s SaveStatus) String() string {
	return string(s)
}
