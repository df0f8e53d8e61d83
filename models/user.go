// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is a registered account. Password always holds the bcrypt hash of the
// user's password, never the plaintext.
type User struct {
	// UserID is the server-assigned identifier of the account.
	UserID int64 `json:"id"`

	// Username is unique across all accounts.
	Username string `json:"username"`

	// Password is the salted one-way hash. It is never serialized.
	Password string `json:"-"`
}

// IsAnonymous reports whether u is the zero user, i.e. nobody is logged in.
func (u User) IsAnonymous() bool {
	return u.UserID == 0
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
