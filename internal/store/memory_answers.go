package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-form-keeper/models"
)

// memoryAnswerRecordRepository is an in-memory [AnswerRecordRepository] used
// by the dev server and tests when no database is configured. It mirrors the
// PostgreSQL repository's semantics, including the refusal to overwrite a
// submitted application.
type memoryAnswerRecordRepository struct {
	mu      sync.RWMutex
	records map[string]models.AnswerRecord
}

// NewMemoryAnswerRecordRepository constructs an empty in-memory repository.
func NewMemoryAnswerRecordRepository() AnswerRecordRepository {
	return &memoryAnswerRecordRepository{
		records: make(map[string]models.AnswerRecord),
	}
}

func (m *memoryAnswerRecordRepository) GetRecord(_ context.Context, applicationID string) (models.AnswerRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[applicationID]
	if !ok {
		return models.AnswerRecord{}, ErrApplicationNotFound
	}

	return models.AnswerRecord{
		ApplicationID: record.ApplicationID,
		Answers:       record.Answers.Clone(),
		UpdatedAt:     record.UpdatedAt,
		Submitted:     record.Submitted,
	}, nil
}

func (m *memoryAnswerRecordRepository) SaveAnswers(_ context.Context, applicationID string, answers models.AnswerSet, updatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.records[applicationID]; ok && existing.Submitted {
		return ErrApplicationSubmitted
	}

	m.records[applicationID] = models.AnswerRecord{
		ApplicationID: applicationID,
		Answers:       answers.Clone(),
		UpdatedAt:     updatedAt,
	}

	return nil
}

func (m *memoryAnswerRecordRepository) Submit(_ context.Context, applicationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[applicationID]
	if !ok {
		return ErrApplicationNotFound
	}
	if record.Submitted {
		return ErrApplicationSubmitted
	}

	record.Submitted = true
	record.UpdatedAt = time.Now()
	m.records[applicationID] = record

	return nil
}
