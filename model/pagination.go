package model

import "math"

const (
	DefaultPageLimit = 10
	maxPageLimit     = 100
)

// Page is a row window: Limit rows after skipping Offset rows.
type Page struct {
	Limit  int
	Offset int
}

// NewPage converts the external limit/offset query pair into a row window.
// The external offset is a 1-indexed page number; absent or non-positive
// values mean the first page.
func NewPage(limit, page int) Page {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if page < 1 {
		page = 1
	}
	if page > math.MaxInt/limit {
		page = math.MaxInt / limit
	}
	skip := (page - 1) * limit
	return Page{Limit: limit, Offset: skip}
}
