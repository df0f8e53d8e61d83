package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

type appInfoService struct {
	appVersion string
	storage    Pinger

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, storage Pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		storage:    storage,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Ping reports [ErrUnavailable] when the storage cannot be reached.
func (s *appInfoService) Ping(ctx context.Context) error {
	if err := s.storage.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*appInfoService.Ping").Msg("storage ping failed")
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}
