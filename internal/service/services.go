package service

import (
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

// Services bundles every service the transport layer depends on.
type Services struct {
	AuthService     AuthService
	SessionService  SessionService
	CategoryService CategoryService
	NoteService     NoteService
	SearchService   SearchService
	AppInfoService  AppInfoService
}

// NewServices wires the services on top of storages.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, storages, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:     NewAuthService(storages.Users, cfg.App, logger),
		SessionService:  NewSessionService(storages.Users, cfg.App, logger),
		CategoryService: NewCategoryService(storages.Categories, storages, logger),
		NoteService:     NewNoteService(storages.Notes, storages.Categories, logger),
		SearchService:   NewSearchService(storages.Notes, storages.Categories, logger),
		AppInfoService:  appInfoService,
	}, nil
}
