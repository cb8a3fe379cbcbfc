package model

import "time"

// Listing defaults and bounds. Limit is clamped the same way in the
// repository, so a hand-built query cannot bypass the cap.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultSortBy   = "created_at"
	SortOrderAsc    = "ASC"
	SortOrderDesc   = "DESC"
)

// JobListQuery is the value object describing one listing request.
// All filter fields are optional; a nil/empty field is a no-op and
// never generates a restrictive predicate.
type JobListQuery struct {
	Page      int    // 1-based page number, coerced to >= 1
	PageSize  int    // page size, coerced to > 0 and capped at MaxPageSize
	SortBy    string // sort field: "created_at", "title", "status" (default created_at)
	SortOrder string // "ASC" or "DESC" (default DESC)

	Status     *JobStatus // optional filter by lifecycle state
	StartDate  *time.Time // optional creation-date lower bound, inclusive
	EndDate    *time.Time // optional creation-date upper bound, inclusive
	CategoryID *string    // optional category identifier
	Search     *string    // optional case-insensitive keyword on title OR description
}

// Normalize returns a copy with pagination and sort defaults applied.
// Page and page size are always coerced to positive values before any
// query construction.
func (q JobListQuery) Normalize() JobListQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	if q.SortBy == "" {
		q.SortBy = DefaultSortBy
	}
	if q.SortOrder != SortOrderAsc && q.SortOrder != SortOrderDesc {
		q.SortOrder = SortOrderDesc
	}
	// Empty-string keyword and category are treated as absent.
	if q.Search != nil && *q.Search == "" {
		q.Search = nil
	}
	if q.CategoryID != nil && *q.CategoryID == "" {
		q.CategoryID = nil
	}
	return q
}

// Offset returns the pagination offset for the (already normalized) query.
func (q JobListQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// JobView is one listed posting decorated with its category labels and a
// trimmed requester summary.
type JobView struct {
	Job
	Categories []CategoryLabel `json:"categories"`
	Requester  *MemberSummary  `json:"requester,omitempty"`
}

// Pagination is the metadata envelope computed deterministically from the
// total count and page size.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalCount  int  `json:"totalCount"`
	Limit       int  `json:"limit"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// NewPagination computes the envelope for a page/pageSize/totalCount triple.
func NewPagination(page, pageSize, totalCount int) Pagination {
	totalPages := 0
	if totalCount > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		Limit:       pageSize,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// EchoedFilters reports the effective filters used for a listing request,
// including role-driven defaults, so the caller can display what was applied.
type EchoedFilters struct {
	Scope      string  `json:"scope"` // "own", "region", "all"
	Status     *string `json:"status,omitempty"`
	StartDate  *string `json:"startDate,omitempty"`
	EndDate    *string `json:"endDate,omitempty"`
	CategoryID *string `json:"categoryId,omitempty"`
	Search     *string `json:"search,omitempty"`
	SortBy     string  `json:"sortBy"`
	SortOrder  string  `json:"sortOrder"`
}

// JobListResult is the listing output: the ordered page of decorated
// postings plus pagination metadata and echoed filters. Message is set
// only for the tutor-zero-regions short-circuit.
type JobListResult struct {
	Data       []*JobView    `json:"data"`
	Pagination Pagination    `json:"pagination"`
	Filters    EchoedFilters `json:"filters"`
	Message    string        `json:"message,omitempty"`
}
