package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// sessionService signs session tokens with HMAC-SHA256 and resolves them
// back to a user.
type sessionService struct {
	userRepository store.UserRepository

	signKey          string
	issuer           string
	duration         time.Duration
	rememberDuration time.Duration

	logger *logger.Logger
}

func NewSessionService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		userRepository:   userRepository,
		signKey:          cfg.SessionSignKey,
		issuer:           cfg.SessionIssuer,
		duration:         cfg.SessionDuration,
		rememberDuration: cfg.RememberDuration,
		logger:           logger,
	}
}

// Issue opens a session for user. With remember the session lives for the
// remember duration instead of the regular one.
func (s *sessionService) Issue(ctx context.Context, user models.User, remember bool) (models.Session, error) {
	if user.IsAnonymous() {
		return models.Session{}, ErrSessionCreationFailed
	}

	duration := s.duration
	if remember {
		duration = s.rememberDuration
	}

	session, err := utils.GenerateSessionToken(s.issuer, user.UserID, duration, remember, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionService.Issue").Msg("error generating session token")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return session, nil
}

// Resolve returns the user a token was issued for. A malformed, forged or
// expired token, or one whose user no longer exists, yields
// ErrInvalidSession.
func (s *sessionService) Resolve(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrInvalidSession
	}

	session, err := utils.ValidateAndParseSessionToken(token, s.signKey, s.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("rejected session token")
		return models.User{}, ErrInvalidSession
	}

	user, err := s.userRepository.FindUserByID(ctx, session.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrInvalidSession
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionService.Resolve").Msg("error loading session user")
		return models.User{}, mapStoreError(err)
	}

	return user, nil
}
