// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Column limits of the stored fields, counted in characters.
const (
	MaxUsernameLength = 64
	MaxTitleLength    = 255
	MaxLabelLength    = 255
)

// User-visible messages attached to form fields and flashes.
const (
	MsgFieldRequired       = "This field is required."
	MsgPasswordsDiffer     = "Password must be identical"
	MsgPasswordTooLong     = "Password must be at most 72 bytes long."
	MsgUsernameTaken       = "This username is already taken. Please choose different one."
	MsgNotAValidChoice     = "Not a valid choice."
	MsgLoginFailed         = "Login failed. Check username and password"
	MsgSignedUp            = "Successfully signed up! You can log in."
	MsgLoginRequired       = "Please log in to access this page."
	MsgCreateCategoryFirst = "Create a category before adding notes."
	MsgTooLong             = "Field cannot be longer than %d characters."
)

// FormErrors maps a form field name to the validation messages raised for it.
type FormErrors map[string][]string

// Add appends msg to the errors of field.
func (e FormErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// checkLength adds a [MsgTooLong] error to field when value is longer than
// limit characters.
func (e FormErrors) checkLength(field, value string, limit int) {
	if utf8.RuneCountInString(value) > limit {
		e.Add(field, fmt.Sprintf(MsgTooLong, limit))
	}
}

// HasErrors reports whether any field failed validation.
func (e FormErrors) HasErrors() bool {
	return len(e) > 0
}

// RegistrationForm is submitted to create an account.
type RegistrationForm struct {
	Username         string `json:"username"`
	Password         string `json:"-"`
	ApprovedPassword string `json:"-"`
}

// Validate checks the fields one by one: both credentials are required and
// the repeated password must equal the first one.
func (f RegistrationForm) Validate() FormErrors {
	errs := make(FormErrors)
	username := NormalizeUsername(f.Username)
	if username == "" {
		errs.Add("username", MsgFieldRequired)
	}
	errs.checkLength("username", username, MaxUsernameLength)
	if f.Password == "" {
		errs.Add("password", MsgFieldRequired)
	}
	if f.ApprovedPassword != f.Password {
		errs.Add("approved_password", MsgPasswordsDiffer)
	}
	return errs
}

// NormalizeUsername returns username the way it is stored and looked up.
func NormalizeUsername(username string) string {
	return strings.TrimSpace(username)
}

// LoginForm is submitted to open a session.
type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Remember bool   `json:"remember"`
}

// Validate requires both credentials.
func (f LoginForm) Validate() FormErrors {
	errs := make(FormErrors)
	if NormalizeUsername(f.Username) == "" {
		errs.Add("username", MsgFieldRequired)
	}
	if f.Password == "" {
		errs.Add("password", MsgFieldRequired)
	}
	return errs
}

// CategoryForm is submitted to create or rename a category.
type CategoryForm struct {
	Category string `json:"category"`
}

// Validate requires a non-blank label that fits the column.
func (f CategoryForm) Validate() FormErrors {
	errs := make(FormErrors)
	label := strings.TrimSpace(f.Category)
	if label == "" {
		errs.Add("category", MsgFieldRequired)
	}
	errs.checkLength("category", label, MaxLabelLength)
	return errs
}

// NoteForm is submitted to create or update a note. Category holds the
// decimal id of the selected category and must be one of Choices.
type NoteForm struct {
	Title    string     `json:"title"`
	Text     string     `json:"text"`
	Category string     `json:"category"`
	Choices  []Category `json:"choices"`
}

// Validate requires title and text and restricts Category to the offered
// choice set.
func (f NoteForm) Validate() FormErrors {
	errs := make(FormErrors)
	if strings.TrimSpace(f.Title) == "" {
		errs.Add("title", MsgFieldRequired)
	}
	errs.checkLength("title", f.Title, MaxTitleLength)
	if strings.TrimSpace(f.Text) == "" {
		errs.Add("text", MsgFieldRequired)
	}
	if !f.isChoice(f.Category) {
		errs.Add("category", MsgNotAValidChoice)
	}
	return errs
}

func (f NoteForm) isChoice(value string) bool {
	for _, c := range f.Choices {
		if c.IDString() == value {
			return true
		}
	}
	return false
}

// SearchForm carries the search filters. Both are optional.
type SearchForm struct {
	Title      string     `json:"title"`
	Categories []string   `json:"categories"`
	Choices    []Category `json:"choices"`
}

// Query converts the form into a [SearchQuery]. Blank values are not
// filters.
func (f SearchForm) Query() SearchQuery {
	var categoryIDs []string
	for _, c := range f.Categories {
		if c = strings.TrimSpace(c); c != "" {
			categoryIDs = append(categoryIDs, c)
		}
	}
	return SearchQuery{
		Title:       strings.TrimSpace(f.Title),
		CategoryIDs: categoryIDs,
	}
}
