package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/utils"
	"github.com/MKhiriev/go-form-keeper/models"
)

func (h *Handler) getAnswers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	applicationID := chi.URLParam(r, "applicationID")

	record, err := h.services.AnswerService.GetAnswers(r.Context(), applicationID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAnswers").Str("application_id", applicationID).Msg("error getting answers")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.AnswersResponse{
		ApplicationID: record.ApplicationID,
		Answers:       record.Answers,
		UpdatedAt:     record.UpdatedAt,
		Submitted:     record.Submitted,
	}, http.StatusOK)
}

func (h *Handler) saveAnswers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	applicationID := chi.URLParam(r, "applicationID")

	var req models.SaveAnswersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.saveAnswers").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	updatedAt, err := h.services.AnswerService.SaveAnswers(r.Context(), applicationID, req.Answers)
	if err != nil {
		log.Err(err).Str("func", "*Handler.saveAnswers").Str("application_id", applicationID).Msg("error saving answers")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.AnswersResponse{
		ApplicationID: applicationID,
		Answers:       req.Answers,
		UpdatedAt:     updatedAt,
	}, http.StatusOK)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	applicationID := chi.URLParam(r, "applicationID")

	if err := h.services.AnswerService.Submit(r.Context(), applicationID); err != nil {
		log.Err(err).Str("func", "*Handler.submit").Str("application_id", applicationID).Msg("error submitting application")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
