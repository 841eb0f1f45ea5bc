package service

import (
	"fmt"

	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/store"
)

// Services groups the server-side business services handed to the transport
// layer.
type Services struct {
	AnswerService  AnswerService
	AppInfoService AppInfoService
}

// NewServices wires the server service layer on top of the storage layer.
func NewServices(storages *store.Storages, cfg *config.ServerConfig, log *logger.Logger) (*Services, error) {
	appInfoSvc, err := NewAppInfoService(cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AnswerService:  NewAnswerService(storages.AnswerRecordRepository, log),
		AppInfoService: appInfoSvc,
	}, nil
}
