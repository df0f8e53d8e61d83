// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is a signed, tamper-evident reference to a logged-in user.
//
// It embeds [jwt.RegisteredClaims]; the "sub" claim carries the user id.
// SignedString is the compact JWS form stored in the session cookie.
type Session struct {
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the session.
	SignedString string `json:"-"`

	// UserID is the parsed "sub" claim.
	UserID int64 `json:"-"`

	// Remember marks a session issued with the "remember me" option.
	Remember bool `json:"rmb,omitempty"`

	// Expires is the absolute expiry time, copied out of the claims for the
	// cookie writer.
	Expires time.Time `json:"-"`
}

// GetUserID extracts the user identifier from the "sub" claim.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (s *Session) GetUserID() (int64, error) {
	userIDString, err := s.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from session: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from session to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the session.
func (s *Session) String() string {
	return s.SignedString
}
