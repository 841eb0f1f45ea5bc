package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrCoordinatorClosed = errors.New("autosave coordinator is closed")
	ErrOffline           = errors.New("remote store is unreachable")
	ErrUnsavedAnswers    = errors.New("answers are not fully saved")

	ErrUploadRateLimited = errors.New("too many upload attempts")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
