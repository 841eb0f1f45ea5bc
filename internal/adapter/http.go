package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/utils"
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpAnswerStore struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPAnswerStore constructs an HTTP/REST implementation of
// [RemoteAnswerStore]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and the per-attempt request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPAnswerStore(adapterCfg config.ClientAdapter, logger *logger.Logger) (RemoteAnswerStore, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpAnswerStore{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RemoteAnswerStore]. It stores token
// (whitespace-trimmed) for use in the Authorization header of all subsequent
// authenticated requests.
func (h *httpAnswerStore) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [RemoteAnswerStore]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpAnswerStore) Token() string {
	return h.token
}

// FetchAnswers implements [RemoteAnswerStore]. It GETs
// GET /api/applications/{applicationID}/answers and decodes the response into
// a [models.AnswerRecord]. Requires a valid bearer token. Returns an error if
// the request, response mapping, or JSON decoding fails.
func (h *httpAnswerStore) FetchAnswers(ctx context.Context, applicationID string) (models.AnswerRecord, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/applications/" + url.PathEscape(applicationID) + "/answers")
	if err != nil {
		return models.AnswerRecord{}, fmt.Errorf("fetch answers request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AnswerRecord{}, err
	}

	var body models.AnswersResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.AnswerRecord{}, fmt.Errorf("decode answers response: %w", err)
	}

	return models.AnswerRecord{
		ApplicationID: body.ApplicationID,
		Answers:       body.Answers,
		UpdatedAt:     body.UpdatedAt,
		Submitted:     body.Submitted,
	}, nil
}

// SaveAnswers implements [RemoteAnswerStore]. It PUTs the full answer set to
// PUT /api/applications/{applicationID}/answers as a replacement of the remote
// record. Returns the server-assigned updatedAt timestamp. Returns
// [ErrConflict] (wrapped) on HTTP 409 (application already submitted).
// Requires a valid bearer token.
func (h *httpAnswerStore) SaveAnswers(ctx context.Context, applicationID string, answers models.AnswerSet) (time.Time, error) {
	req := models.SaveAnswersRequest{Answers: answers}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/applications/" + url.PathEscape(applicationID) + "/answers")
	if err != nil {
		return time.Time{}, fmt.Errorf("save answers request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return time.Time{}, err
	}

	var body models.AnswersResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return time.Time{}, fmt.Errorf("decode save answers response: %w", err)
	}

	return body.UpdatedAt, nil
}

// SubmitApplication implements [RemoteAnswerStore]. It POSTs to
// POST /api/applications/{applicationID}/submit. Returns [ErrConflict]
// (wrapped) if the application was already submitted. Requires a valid bearer
// token.
func (h *httpAnswerStore) SubmitApplication(ctx context.Context, applicationID string) error {
	resp, err := h.authedRequest(ctx).
		Post("/api/applications/" + url.PathEscape(applicationID) + "/submit")
	if err != nil {
		return fmt.Errorf("submit application request: %w", err)
	}

	return mapHTTPError(resp)
}

// Ping implements [RemoteAnswerStore]. It GETs the unauthenticated health
// endpoint GET /api/health. A nil error means the answer store is reachable.
func (h *httpAnswerStore) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAnswerStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
