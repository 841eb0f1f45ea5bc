package validators

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-form-keeper/models"
)

// Field name constants for file-answer validation.
const (
	// FieldFileID targets the upload identifier of a file answer.
	FieldFileID = "file_id"

	// FieldFileName targets the original file name.
	FieldFileName = "file_name"

	// FieldFileSize targets the declared size in bytes.
	FieldFileSize = "file_size"

	// FieldFileType targets the extension and declared MIME type.
	FieldFileType = "file_type"
)

// UploadPolicy bounds what file answers are accepted.
type UploadPolicy struct {
	// MaxSize is the largest accepted file in bytes. Zero means unbounded.
	MaxSize int64
	// AllowedExtensions lists accepted file extensions with the leading dot
	// (e.g. ".pdf"). Empty means any extension.
	AllowedExtensions []string
	// AllowedMIMETypes lists accepted declared content types
	// (e.g. "application/pdf"). Empty means any type.
	AllowedMIMETypes []string
}

// FileAnswerValidator validates [models.FileAnswer] descriptors against an
// [UploadPolicy].
type FileAnswerValidator struct {
	policy UploadPolicy
}

// NewFileAnswerValidator constructs a [FileAnswerValidator] enforcing policy.
func NewFileAnswerValidator(policy UploadPolicy) *FileAnswerValidator {
	return &FileAnswerValidator{policy: policy}
}

// Validate implements [Validator] for models.FileAnswer (value or pointer).
//
// Default validated fields: FileName, FileSize, FileType. FieldFileID is
// opt-in: the ID is assigned after validation, so new uploads do not have one
// yet.
func (v *FileAnswerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FileAnswer:
		return v.validateFileAnswer(ctx, value, fields...)
	case *models.FileAnswer:
		return v.validateFileAnswer(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *FileAnswerValidator) validateFileAnswer(_ context.Context, file models.FileAnswer, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFileName, FieldFileSize, FieldFileType}
	}

	for _, f := range fields {
		switch f {
		case FieldFileID:
			if file.ID == "" {
				return ErrEmptyFileID
			}
		case FieldFileName:
			if strings.TrimSpace(file.Name) == "" {
				return ErrEmptyFileName
			}
		case FieldFileSize:
			if file.Size <= 0 {
				return ErrInvalidFileSize
			}
			if v.policy.MaxSize > 0 && file.Size > v.policy.MaxSize {
				return fmt.Errorf("%w: %d bytes (limit %d)", ErrFileTooLarge, file.Size, v.policy.MaxSize)
			}
		case FieldFileType:
			if err := v.validateFileType(file); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FileAnswerValidator) validateFileType(file models.FileAnswer) error {
	if len(v.policy.AllowedExtensions) > 0 {
		ext := strings.ToLower(filepath.Ext(file.Name))
		if !containsFold(v.policy.AllowedExtensions, ext) {
			return fmt.Errorf("%w: extension %q", ErrDisallowedFileType, ext)
		}
	}

	if len(v.policy.AllowedMIMETypes) > 0 && file.ContentType != "" {
		if !containsFold(v.policy.AllowedMIMETypes, file.ContentType) {
			return fmt.Errorf("%w: content type %q", ErrDisallowedFileType, file.ContentType)
		}
	}

	return nil
}

func containsFold(list []string, value string) bool {
	for _, item := range list {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}
