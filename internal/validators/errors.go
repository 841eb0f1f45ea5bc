package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyQuestionKey  = errors.New("question key is required")
	ErrUnknownAnswerKind = errors.New("unknown answer kind")
	ErrMissingFile       = errors.New("file answer has no file descriptor")
	ErrMissingProfile    = errors.New("profile answer has no profile descriptor")

	ErrEmptyFileID        = errors.New("file id is required")
	ErrEmptyFileName      = errors.New("file name is required")
	ErrInvalidFileSize    = errors.New("invalid file size")
	ErrFileTooLarge       = errors.New("file is too large")
	ErrDisallowedFileType = errors.New("file type is not allowed")
)
