package models

import "strconv"

// Category groups notes of a single owner.
type Category struct {
	CategoryID int64  `json:"id"`
	Label      string `json:"label"`
	UserID     int64  `json:"-"`
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "categories"
}

// IDString returns the decimal form of CategoryID, the value used in forms.
func (c Category) IDString() string {
	return strconv.FormatInt(c.CategoryID, 10)
}
