package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/utils"
	"github.com/MKhiriev/go-form-keeper/internal/validators"
	"github.com/MKhiriev/go-form-keeper/models"
)

// UploadRateLimiter is a sliding-window counter bounding how often file
// answers may be attached. It is a plain injected dependency, not a hidden
// global: the service that needs limiting receives the limiter it must obey.
type UploadRateLimiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	stamps []time.Time
}

// NewUploadRateLimiter allows at most max attempts per window.
func NewUploadRateLimiter(max int, window time.Duration) *UploadRateLimiter {
	if max <= 0 {
		max = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &UploadRateLimiter{window: window, max: max}
}

// Allow records an attempt at the given instant and reports whether it fits
// the window. Rejected attempts are not recorded.
func (l *UploadRateLimiter) Allow(now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := now.Add(-l.window)
	kept := l.stamps[:0]
	for _, s := range l.stamps {
		if s.After(cutoff) {
			kept = append(kept, s)
		}
	}
	l.stamps = kept

	if len(l.stamps) >= l.max {
		return false
	}

	l.stamps = append(l.stamps, now)
	return true
}

type clientUploadService struct {
	validator validators.Validator
	limiter   *UploadRateLimiter
	uuid      *utils.UUIDGenerator
	logger    *logger.Logger
}

// NewClientUploadService builds a [ClientUploadService] enforcing policy
// through a [validators.FileAnswerValidator] and the supplied rate limiter.
func NewClientUploadService(policy validators.UploadPolicy, limiter *UploadRateLimiter, log *logger.Logger) ClientUploadService {
	return &clientUploadService{
		validator: validators.NewFileAnswerValidator(policy),
		limiter:   limiter,
		uuid:      utils.NewUUIDGenerator(),
		logger:    log,
	}
}

// AttachFile implements [ClientUploadService].
func (s *clientUploadService) AttachFile(ctx context.Context, name string, size int64, contentType string) (models.FileAnswer, error) {
	log := logger.FromContext(ctx)

	if !s.limiter.Allow(time.Now()) {
		log.Warn().
			Str("func", "clientUploadService.AttachFile").
			Str("file_name", name).
			Msg("upload rejected by rate limiter")
		return models.FileAnswer{}, ErrUploadRateLimited
	}

	file := models.FileAnswer{
		Name:        name,
		Size:        size,
		ContentType: contentType,
	}

	if err := s.validator.Validate(ctx, file); err != nil {
		log.Warn().
			Str("func", "clientUploadService.AttachFile").
			Str("file_name", name).
			Int64("size", size).
			Err(err).
			Msg("upload rejected by policy")
		return models.FileAnswer{}, fmt.Errorf("error validating file answer: %w", err)
	}

	file.ID = s.uuid.Generate()

	log.Debug().
		Str("func", "clientUploadService.AttachFile").
		Str("file_name", name).
		Str("upload_id", file.ID).
		Msg("file answer admitted")

	return file, nil
}
