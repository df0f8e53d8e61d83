// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Note is a short text filed under exactly one category of its owner.
type Note struct {
	// NoteID is the server-assigned identifier of the note.
	NoteID int64 `json:"id"`

	// Title is the short heading searched by the title filter.
	Title string `json:"title"`

	// Body is the free text of the note.
	Body string `json:"body"`

	// CategoryID references a category owned by the same user.
	CategoryID int64 `json:"category_id"`

	// UserID is the owner of the note.
	UserID int64 `json:"-"`

	// CategoryLabel is a view-only field filled in when notes are listed.
	// It stays empty when the referenced category cannot be resolved for
	// the owner. It is not persisted.
	CategoryLabel string `json:"category_label"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
