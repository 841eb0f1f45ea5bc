package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/MKhiriev/go-form-keeper/internal/validators"
	"github.com/MKhiriev/go-form-keeper/models"
)

type answerService struct {
	repository store.AnswerRecordRepository
	validator  validators.Validator
	logger     *logger.Logger
}

// NewAnswerService constructs an [AnswerService] over the given repository.
func NewAnswerService(repository store.AnswerRecordRepository, log *logger.Logger) AnswerService {
	return &answerService{
		repository: repository,
		validator:  validators.NewAnswerValidator(),
		logger:     log,
	}
}

func (s *answerService) GetAnswers(ctx context.Context, applicationID string) (models.AnswerRecord, error) {
	log := logger.FromContext(ctx)

	record, err := s.repository.GetRecord(ctx, applicationID)
	if err != nil {
		log.Debug().
			Str("func", "answerService.GetAnswers").
			Str("application_id", applicationID).
			Err(err).
			Msg("answer record lookup failed")
		return models.AnswerRecord{}, err
	}

	return record, nil
}

// SaveAnswers stamps the write with the server clock. The stamp is returned
// to the client so its local draft cache can align with the server's notion
// of time.
func (s *answerService) SaveAnswers(ctx context.Context, applicationID string, answers models.AnswerSet) (time.Time, error) {
	log := logger.FromContext(ctx)

	if applicationID == "" {
		return time.Time{}, ErrInvalidDataProvided
	}

	if err := s.validator.Validate(ctx, answers); err != nil {
		log.Warn().
			Str("func", "answerService.SaveAnswers").
			Str("application_id", applicationID).
			Err(err).
			Msg("answer set rejected by validation")
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updatedAt := time.Now().UTC()
	if err := s.repository.SaveAnswers(ctx, applicationID, answers, updatedAt); err != nil {
		log.Err(err).
			Str("func", "answerService.SaveAnswers").
			Str("application_id", applicationID).
			Msg("error saving answers")
		return time.Time{}, err
	}

	return updatedAt, nil
}

func (s *answerService) Submit(ctx context.Context, applicationID string) error {
	log := logger.FromContext(ctx)

	if applicationID == "" {
		return ErrInvalidDataProvided
	}

	if err := s.repository.Submit(ctx, applicationID); err != nil {
		log.Err(err).
			Str("func", "answerService.Submit").
			Str("application_id", applicationID).
			Msg("error submitting application")
		return err
	}

	log.Info().
		Str("func", "answerService.Submit").
		Str("application_id", applicationID).
		Msg("application submitted")

	return nil
}
