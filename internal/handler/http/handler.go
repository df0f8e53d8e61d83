package http

import (
	"time"

	"github.com/yuin/goldmark"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	renderer Renderer
	markdown goldmark.Markdown

	secureCookies  bool
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		renderer:       JSONRenderer{},
		markdown:       goldmark.New(),
		secureCookies:  cfg.SecureCookies,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}

// WithRenderer replaces the view renderer. It must be called before Init.
func (h *Handler) WithRenderer(renderer Renderer) *Handler {
	h.renderer = renderer
	return h
}
