package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldKind targets the variant discriminator of an answer value.
	FieldKind = "kind"

	// FieldCarrier targets the carrier matching the declared kind (a file
	// answer must carry a file descriptor, a profile answer a profile one).
	FieldCarrier = "carrier"

	// FieldQuestionKeys targets the question keys of an answer set.
	FieldQuestionKeys = "question_keys"

	// FieldAnswers targets the answer values of an answer set.
	FieldAnswers = "answers"
)

// allowedAnswerKinds is the exhaustive set of AnswerKind values accepted by
// the validator. Any kind not present here is considered invalid.
var allowedAnswerKinds = []models.AnswerKind{
	models.AnswerKindText,
	models.AnswerKindBool,
	models.AnswerKindList,
	models.AnswerKindFile,
	models.AnswerKindProfile,
}

// AnswerValidator validates answer values and answer sets before they are
// persisted or transmitted.
type AnswerValidator struct{}

// NewAnswerValidator constructs an [AnswerValidator] ready for use.
func NewAnswerValidator() *AnswerValidator {
	return &AnswerValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.AnswerValue / *models.AnswerValue
//   - models.AnswerSet
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *AnswerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AnswerValue:
		return v.validateAnswerValue(ctx, value, fields...)
	case *models.AnswerValue:
		return v.validateAnswerValue(ctx, *value, fields...)

	case models.AnswerSet:
		return v.validateAnswerSet(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// isValidAnswerKind reports whether kind is one of the recognized AnswerKind
// values defined in allowedAnswerKinds.
func isValidAnswerKind(kind models.AnswerKind) bool {
	for _, k := range allowedAnswerKinds {
		if kind == k {
			return true
		}
	}
	return false
}

// validateAnswerValue validates a single AnswerValue.
//
// Default validated fields (when none specified): Kind, Carrier.
//
// Returns the first encountered validation error or nil.
func (v *AnswerValidator) validateAnswerValue(_ context.Context, value models.AnswerValue, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKind, FieldCarrier}
	}

	for _, f := range fields {
		switch f {
		case FieldKind:
			if !isValidAnswerKind(value.Kind) {
				return fmt.Errorf("%w: %q", ErrUnknownAnswerKind, value.Kind)
			}
		case FieldCarrier:
			if value.Kind == models.AnswerKindFile && value.File == nil {
				return ErrMissingFile
			}
			if value.Kind == models.AnswerKindProfile && value.Profile == nil {
				return ErrMissingProfile
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateAnswerSet validates every entry of an AnswerSet.
//
// Default validated fields: QuestionKeys, Answers. When FieldAnswers is
// validated, each value is individually checked with validateAnswerValue.
//
// Returns a wrapped error naming the first invalid question key.
func (v *AnswerValidator) validateAnswerSet(ctx context.Context, set models.AnswerSet, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuestionKeys, FieldAnswers}
	}

	for _, f := range fields {
		switch f {
		case FieldQuestionKeys:
			for key := range set {
				if key == "" {
					return ErrEmptyQuestionKey
				}
			}
		case FieldAnswers:
			for key, value := range set {
				if err := v.validateAnswerValue(ctx, value); err != nil {
					return fmt.Errorf("answer %q: %w", key, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
