// Package pagination implements the two-query page contract shared by the
// list resolvers: a count query decides totalPages, a page query fetches the
// window at (page-1)*limit.
package pagination

// Request is a normalized 1-based page request.
type Request struct {
	Page  int
	Limit int
}

// NewRequest normalizes raw page/limit arguments. Zero or negative pages
// collapse to 1 so the offset can never go negative; a non-positive limit
// falls back to the entity default.
func NewRequest(page, limit, defaultLimit int) Request {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return Request{Page: page, Limit: limit}
}

// Offset returns the number of rows to skip.
func (r Request) Offset() int {
	return (r.Page - 1) * r.Limit
}

// TotalPages returns ceil(totalCount/limit); zero iff totalCount is zero.
func (r Request) TotalPages(totalCount int64) int {
	if totalCount <= 0 {
		return 0
	}
	limit := int64(r.Limit)
	return int((totalCount + limit - 1) / limit)
}
