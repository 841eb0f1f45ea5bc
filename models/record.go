package models

import "time"

// AnswerRecord is the authoritative copy of an application's answers held by
// the remote answer store. Writes are full replacements of the answer set.
type AnswerRecord struct {
	// ApplicationID identifies the application the answers belong to.
	ApplicationID string `json:"application_id"`

	// Answers is the complete answer set for the application.
	Answers AnswerSet `json:"answers"`

	// UpdatedAt is the server-side timestamp of the last accepted write.
	UpdatedAt time.Time `json:"updated_at"`

	// Submitted reports whether the application has been finally submitted.
	// Submitted records no longer accept answer writes.
	Submitted bool `json:"submitted"`
}
