package ports

// ListOptions carries pagination and sorting shared by every list endpoint.
type ListOptions struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string // "asc" or "desc"
}

// Normalized applies the defaults used across all modules.
func (o ListOptions) Normalized(defaultSort string, defaultLimit, maxLimit int) ListOptions {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit < 1 {
		o.Limit = defaultLimit
	}
	if o.Limit > maxLimit {
		o.Limit = maxLimit
	}
	if o.SortBy == "" {
		o.SortBy = defaultSort
	}
	if o.SortOrder != "desc" {
		o.SortOrder = "asc"
	}
	return o
}

// Skip returns the document offset for the current page.
func (o ListOptions) Skip() int {
	return (o.Page - 1) * o.Limit
}

// ListMeta is the pagination envelope returned alongside list data.
type ListMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// NewListMeta derives the meta envelope from the applied options and total.
func NewListMeta(o ListOptions, total int64) ListMeta {
	pages := int((total + int64(o.Limit) - 1) / int64(o.Limit))
	return ListMeta{Page: o.Page, Limit: o.Limit, Total: total, TotalPages: pages}
}
