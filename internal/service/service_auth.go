// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; the plaintext never reaches the
// repository.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost is the work factor passed to bcrypt.GenerateFromPassword.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and the hashing parameters of cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Register creates a new account.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - a *ValidationError if username or password is empty, the username is
//     too long, or the password exceeds bcrypt's input limit;
//   - ErrDuplicateUsername if the username is already registered;
//   - ErrUnavailable when the storage cannot be reached.
func (a *authService) Register(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	username = models.NormalizeUsername(username)
	form := models.RegistrationForm{Username: username, Password: password, ApprovedPassword: password}
	errs := form.Validate()
	if errs.HasErrors() {
		return models.User{}, newValidationError(errs)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		errs.Add("password", models.MsgPasswordTooLong)
		return models.User{}, newValidationError(errs)
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{Username: username, Password: string(hash)})
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("username", username).Msg("user creation ended with error")
		return models.User{}, mapStoreError(err)
	}

	return registeredUser, nil
}

// Verify authenticates an existing user.
//
// An unknown username and a wrong password both yield
// ErrAuthenticationFailed, so callers cannot tell them apart.
func (a *authService) Verify(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	username = models.NormalizeUsername(username)
	if username == "" || password == "" {
		return models.User{}, ErrAuthenticationFailed
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("username", username).Msg("unknown username")
		return models.User{}, ErrAuthenticationFailed
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Verify").Msg("user search by username failed")
		return models.User{}, mapStoreError(err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password)); err != nil {
		log.Debug().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrAuthenticationFailed
	}

	return foundUser, nil
}

// UsernameTaken reports whether username is registered. The check is
// advisory: a concurrent registration can still win the unique constraint.
func (a *authService) UsernameTaken(ctx context.Context, username string) (bool, error) {
	_, err := a.userRepository.FindUserByUsername(ctx, models.NormalizeUsername(username))
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return false, nil
	case err != nil:
		return false, mapStoreError(err)
	}
	return true, nil
}
