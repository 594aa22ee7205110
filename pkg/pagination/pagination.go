package pagination

// Offset pagination for list endpoints. Pages are 1-based; the limit is
// clamped to MaxLimit with a per-entity default supplied by the caller.

// MaxLimit caps how many rows any list query can request.
const MaxLimit = 100

// Params holds the pagination inputs parsed from the query string.
type Params struct {
	Page  int
	Limit int
}

// Meta describes the page window relative to the total matching count.
type Meta struct {
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// Normalize clamps the page to >= 1 and the limit to (0, MaxLimit],
// falling back to defaultLimit when none was provided.
func Normalize(p Params, defaultLimit int) Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset returns the number of rows to skip for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// NewMeta computes the page metadata for a normalized Params and the total
// count of matching rows.
func NewMeta(total int64, p Params) Meta {
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return Meta{
		Total:       total,
		Page:        p.Page,
		Limit:       p.Limit,
		TotalPages:  totalPages,
		HasNextPage: p.Page < totalPages,
		HasPrevPage: p.Page > 1,
	}
}
