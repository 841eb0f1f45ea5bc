package models

import "time"

// SaveAnswersRequest is the body of PUT /api/applications/{applicationID}/answers.
// The write is a full replacement of the stored answer set.
type SaveAnswersRequest struct {
	Answers AnswerSet `json:"answers"`
}

// AnswersResponse is the body returned by the answers read and write endpoints.
type AnswersResponse struct {
	ApplicationID string    `json:"application_id"`
	Answers       AnswerSet `json:"answers"`
	UpdatedAt     time.Time `json:"updated_at"`
	Submitted     bool      `json:"submitted"`
}

// ErrorResponse is the standard error body for the answer-store API.
type ErrorResponse struct {
	Error string `json:"error"`
}
