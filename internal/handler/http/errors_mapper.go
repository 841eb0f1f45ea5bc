package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/MKhiriev/go-form-keeper/internal/store"
	"github.com/MKhiriev/go-form-keeper/internal/utils"
	"github.com/MKhiriev/go-form-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	store.ErrApplicationNotFound:  http.StatusNotFound,
	store.ErrApplicationSubmitted: http.StatusConflict,
	store.ErrSnapshotNotFound:     http.StatusNotFound,
	store.ErrAnswersNotSaved:      http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to an HTTP status and writes the standard error body.
// Internal errors are not echoed to the client verbatim.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
