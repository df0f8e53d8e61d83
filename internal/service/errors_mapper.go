// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/store"
)

// mapStoreError translates a repository error into a service business error.
// Missing rows become [ErrNotFound] and transient faults flagged with
// [store.ErrUnavailable] become [ErrUnavailable]. Anything else is an
// internal failure. The original error stays in the chain.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrCategoryNotFound),
		errors.Is(err, store.ErrNoteNotFound),
		errors.Is(err, store.ErrNoUserWasFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)

	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return fmt.Errorf("%w: %w", ErrDuplicateUsername, err)

	case errors.Is(err, store.ErrUnavailable):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return fmt.Errorf("storage failure: %w", err)
}
