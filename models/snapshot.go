package models

import "time"

// LocalSnapshot is the locally cached copy of one application's answers,
// written on every edit so unsaved work survives a crash or restart of the
// client. It is best-effort: losing a snapshot only degrades offline resume,
// the authoritative copy is always the remote [AnswerRecord].
type LocalSnapshot struct {
	// Answers is the full answer set at the time the snapshot was taken.
	Answers AnswerSet `json:"answers"`

	// UpdatedAt is the wall-clock time of the edit that produced the
	// snapshot. Compared against the remote record's UpdatedAt when a form
	// session starts to decide which copy wins.
	UpdatedAt time.Time `json:"updated_at"`
}

// Newer reports whether the snapshot was written strictly after remoteUpdatedAt.
// Strictness matters: on an exact tie the remote copy is authoritative.
func (s LocalSnapshot) Newer(remoteUpdatedAt time.Time) bool {
	return s.UpdatedAt.After(remoteUpdatedAt)
}
