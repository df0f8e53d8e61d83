package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Defaults returns the configuration used for every field that no other
// source sets. SessionSignKey has no default and must be provided.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionIssuer:    "go-note-keeper",
			SessionDuration:  24 * time.Hour,
			RememberDuration: 30 * 24 * time.Hour,
			BcryptCost:       bcrypt.DefaultCost,
			LogLevel:         "info",
			Version:          "dev",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    "file:data.sqlite?_foreign_keys=on",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
	}
}
