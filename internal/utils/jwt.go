package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-note-keeper/models"
)

// ErrInvalidSessionParams is returned by GenerateSessionToken when a required
// parameter is empty or zero.
var ErrInvalidSessionParams = errors.New("invalid params for generating session token")

// GenerateSessionToken creates a signed HMAC-SHA256 session token.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus duration
//   - rmb: set when the session was opened with "remember me"
//
// Example usage:
//
//	session, err := utils.GenerateSessionToken("go-note-keeper", 42, 24*time.Hour, false, "secret")
func GenerateSessionToken(issuer string, userID int64, duration time.Duration, remember bool, signKey string) (models.Session, error) {
	if issuer == "" || duration <= 0 || signKey == "" {
		return models.Session{}, ErrInvalidSessionParams
	}

	now := time.Now()
	session := models.Session{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Remember: remember,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &session).SignedString([]byte(signKey))
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	session.SignedString = signed
	session.UserID = userID
	session.Expires = session.RegisteredClaims.ExpiresAt.Time

	return session, nil
}

// ValidateAndParseSessionToken verifies the signature (HS256 only), issuer
// and expiry of tokenString and extracts the user id from the subject.
func ValidateAndParseSessionToken(tokenString, signKey, issuer string) (models.Session, error) {
	var session models.Session
	_, err := jwt.ParseWithClaims(tokenString, &session, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	userID, err := session.GetUserID()
	if err != nil {
		return models.Session{}, err
	}
	if userID <= 0 {
		return models.Session{}, errors.New("session subject is not a user id")
	}

	session.SignedString = tokenString
	session.UserID = userID
	if session.RegisteredClaims.ExpiresAt != nil {
		session.Expires = session.RegisteredClaims.ExpiresAt.Time
	}

	return session, nil
}
