// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-form-keeper/models"
)

func TestAnswerValidator_Validate(t *testing.T) {
	ctx := context.Background()
	v := NewAnswerValidator()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{
			name: "valid text answer",
			obj:  models.TextAnswer("hello"),
		},
		{
			name: "valid file answer",
			obj:  models.FileAnswerValue(models.FileAnswer{ID: "u-1", Name: "cv.pdf", Size: 100}),
		},
		{
			name:    "unknown kind",
			obj:     models.AnswerValue{Kind: "blob"},
			wantErr: ErrUnknownAnswerKind,
		},
		{
			name:    "file kind without descriptor",
			obj:     models.AnswerValue{Kind: models.AnswerKindFile},
			wantErr: ErrMissingFile,
		},
		{
			name:    "profile kind without descriptor",
			obj:     models.AnswerValue{Kind: models.AnswerKindProfile},
			wantErr: ErrMissingProfile,
		},
		{
			// скоуп только по kind: отсутствие дескриптора не проверяется
			name:   "field scoping skips carrier check",
			obj:    models.AnswerValue{Kind: models.AnswerKindFile},
			fields: []string{FieldKind},
		},
		{
			name: "valid answer set",
			obj: models.AnswerSet{
				"q1": models.TextAnswer("a"),
				"q2": models.BoolAnswer(true),
			},
		},
		{
			name:    "answer set with empty question key",
			obj:     models.AnswerSet{"": models.TextAnswer("a")},
			wantErr: ErrEmptyQuestionKey,
		},
		{
			name:    "answer set with invalid value",
			obj:     models.AnswerSet{"q1": {Kind: "mystery"}},
			wantErr: ErrUnknownAnswerKind,
		},
		{
			name:    "unsupported type",
			obj:     42,
			wantErr: ErrUnsupportedType,
		},
		{
			name:    "unknown field",
			obj:     models.TextAnswer("a"),
			fields:  []string{"nonsense"},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestFileAnswerValidator_Validate(t *testing.T) {
	ctx := context.Background()

	policy := UploadPolicy{
		MaxSize:           1 << 20,
		AllowedExtensions: []string{".pdf", ".png"},
		AllowedMIMETypes:  []string{"application/pdf", "image/png"},
	}
	v := NewFileAnswerValidator(policy)

	t.Run("accepted", func(t *testing.T) {
		err := v.Validate(ctx, models.FileAnswer{Name: "cv.pdf", Size: 1024, ContentType: "application/pdf"})
		require.NoError(t, err)
	})

	t.Run("extension case-insensitive", func(t *testing.T) {
		err := v.Validate(ctx, models.FileAnswer{Name: "scan.PNG", Size: 10})
		require.NoError(t, err)
	})

	t.Run("too large", func(t *testing.T) {
		err := v.Validate(ctx, models.FileAnswer{Name: "cv.pdf", Size: 2 << 20})
		require.ErrorIs(t, err, ErrFileTooLarge)
	})

	t.Run("zero size", func(t *testing.T) {
		err := v.Validate(ctx, models.FileAnswer{Name: "cv.pdf", Size: 0})
		require.ErrorIs(t, err, ErrInvalidFileSize)
	})

	t.Run("bad extension", func(t *testing.T) {
		err := v.Validate(ctx, models.FileAnswer{Name: "malware.exe", Size: 10})
		require.ErrorIs(t, err, ErrDisallowedFileType)
	})

	t.Run("bad content type", func(t *testing.T) {
		err := v.Validate(ctx, models.FileAnswer{Name: "cv.pdf", Size: 10, ContentType: "application/zip"})
		require.ErrorIs(t, err, ErrDisallowedFileType)
	})

	t.Run("empty name", func(t *testing.T) {
		err := v.Validate(ctx, models.FileAnswer{Name: "   ", Size: 10})
		require.ErrorIs(t, err, ErrEmptyFileName)
	})

	t.Run("id required only when scoped", func(t *testing.T) {
		file := models.FileAnswer{Name: "cv.pdf", Size: 10}
		require.NoError(t, v.Validate(ctx, file))
		assert.ErrorIs(t, v.Validate(ctx, file, FieldFileID), ErrEmptyFileID)
	})

	t.Run("empty policy accepts anything", func(t *testing.T) {
		open := NewFileAnswerValidator(UploadPolicy{})
		require.NoError(t, open.Validate(ctx, models.FileAnswer{Name: "anything.bin", Size: 1 << 30}))
	})
}
