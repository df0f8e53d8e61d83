package models

// SearchQuery holds the optional filters of a note search.
type SearchQuery struct {
	// Title is matched as a case-insensitive substring of the note title.
	Title string

	// CategoryIDs are decimal category identifiers; a note matches when its
	// category is one of them.
	CategoryIDs []string
}

// IsEmpty reports whether no filter was provided at all.
func (q SearchQuery) IsEmpty() bool {
	return q.Title == "" && len(q.CategoryIDs) == 0
}

// SearchResult distinguishes "nothing was asked yet" (Queried == false) from
// "the query matched nothing" (Queried == true, empty Notes).
type SearchResult struct {
	Queried bool
	Notes   []Note
}
