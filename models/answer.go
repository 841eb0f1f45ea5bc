// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// AnswerKind is the explicit discriminator of an [AnswerValue].
// The kind is decided at write time by the caller that produced the answer;
// readers must never guess the variant by probing for sentinel keys.
type AnswerKind string

const (
	// AnswerKindText is a free-text answer (single- or multi-line).
	AnswerKindText AnswerKind = "text"
	// AnswerKindBool is a yes/no answer (checkboxes, consents).
	AnswerKindBool AnswerKind = "bool"
	// AnswerKindList is a multi-select answer (list of chosen option keys).
	AnswerKindList AnswerKind = "list"
	// AnswerKindFile is an uploaded-file answer described by [FileAnswer].
	AnswerKindFile AnswerKind = "file"
	// AnswerKindProfile is an answer autofilled from the applicant profile,
	// described by [ProfileAnswer].
	AnswerKindProfile AnswerKind = "profile"
)

// AnswerValue is a single answer to one form question, stored as a tagged
// variant. Exactly one carrier field is meaningful for a given Kind; the
// others are zero and omitted from JSON.
type AnswerValue struct {
	// Kind selects which carrier field below holds the answer.
	Kind AnswerKind `json:"kind"`

	// Text carries the value for [AnswerKindText].
	Text string `json:"text,omitempty"`

	// Bool carries the value for [AnswerKindBool].
	Bool bool `json:"bool,omitempty"`

	// List carries the value for [AnswerKindList].
	List []string `json:"list,omitempty"`

	// File carries the value for [AnswerKindFile].
	File *FileAnswer `json:"file,omitempty"`

	// Profile carries the value for [AnswerKindProfile].
	Profile *ProfileAnswer `json:"profile,omitempty"`
}

// FileAnswer describes an uploaded file attached as an answer. The binary
// content itself lives in the platform's upload storage; the answer carries
// only the descriptor.
type FileAnswer struct {
	// ID is the upload identifier assigned when the file was accepted.
	ID string `json:"id"`
	// Name is the original file name as supplied by the applicant.
	Name string `json:"name"`
	// Size is the file size in bytes.
	Size int64 `json:"size"`
	// ContentType is the declared MIME type of the upload.
	ContentType string `json:"content_type,omitempty"`
}

// ProfileAnswer is an answer pre-filled from the applicant's saved profile
// (full name, e-mail, address and similar fields).
type ProfileAnswer struct {
	// Field names the profile attribute the value was taken from
	// (e.g. "full_name", "email", "address").
	Field string `json:"field"`
	// Value is the profile value at the time of autofill.
	Value string `json:"value"`
	// Source identifies where the value came from (e.g. "profile").
	Source string `json:"source,omitempty"`
}

// TextAnswer builds an [AnswerValue] of kind text.
func TextAnswer(text string) AnswerValue {
	return AnswerValue{Kind: AnswerKindText, Text: text}
}

// BoolAnswer builds an [AnswerValue] of kind bool.
func BoolAnswer(v bool) AnswerValue {
	return AnswerValue{Kind: AnswerKindBool, Bool: v}
}

// ListAnswer builds an [AnswerValue] of kind list.
func ListAnswer(items ...string) AnswerValue {
	return AnswerValue{Kind: AnswerKindList, List: items}
}

// FileAnswerValue builds an [AnswerValue] of kind file.
func FileAnswerValue(file FileAnswer) AnswerValue {
	return AnswerValue{Kind: AnswerKindFile, File: &file}
}

// ProfileAnswerValue builds an [AnswerValue] of kind profile.
func ProfileAnswerValue(field, value string) AnswerValue {
	return AnswerValue{Kind: AnswerKindProfile, Profile: &ProfileAnswer{Field: field, Value: value, Source: "profile"}}
}

// AnswerSet is the working collection of question-key → answer pairs for one
// application form. Values stored in the set are treated as immutable: every
// mutation goes through [AnswerSet.With], which returns a fresh map, so a set
// handed out to another goroutine is never modified behind its back.
type AnswerSet map[string]AnswerValue

// With returns a copy of the set with value stored under key. A full value
// replacement per key, never a deep merge. The receiver is left untouched.
func (s AnswerSet) With(key string, value AnswerValue) AnswerSet {
	next := make(AnswerSet, len(s)+1)
	for k, v := range s {
		next[k] = v
	}
	next[key] = value
	return next
}

// Clone returns a shallow copy of the set. Clone of a nil set is an empty,
// non-nil set.
func (s AnswerSet) Clone() AnswerSet {
	next := make(AnswerSet, len(s))
	for k, v := range s {
		next[k] = v
	}
	return next
}

// Fingerprint returns the canonical serialized form of the set used for cheap
// change detection. encoding/json marshals map keys in sorted order, so two
// sets with equal contents always produce the same string.
func (s AnswerSet) Fingerprint() (string, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("error serializing answer set: %w", err)
	}

	return string(payload), nil
}

// Equal reports whether both sets have the same canonical form.
func (s AnswerSet) Equal(other AnswerSet) bool {
	a, errA := s.Fingerprint()
	b, errB := other.Fingerprint()
	return errA == nil && errB == nil && a == b
}
