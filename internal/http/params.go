package httpx

import (
	"net/http"
	"strconv"
	"time"

	"github.com/byeyali/airang-ssam-sub001/internal/domain/model"
	apperrors "github.com/byeyali/airang-ssam-sub001/internal/errors"
)

const dateOnlyFormat = "2006-01-02"

// parseListQuery translates the listing query parameters into a
// model.JobListQuery. Malformed values are caller errors; absent values
// are left for Normalize to default.
func parseListQuery(r *http.Request) (model.JobListQuery, error) {
	q := r.URL.Query()
	var query model.JobListQuery

	page, err := parseOptionalInt(q.Get("page"), "page")
	if err != nil {
		return query, err
	}
	query.Page = page

	limit, err := parseOptionalInt(q.Get("limit"), "limit")
	if err != nil {
		return query, err
	}
	query.PageSize = limit

	query.SortBy = q.Get("sortBy")
	query.SortOrder = q.Get("sortOrder")

	if v := q.Get("status"); v != "" {
		var status model.JobStatus
		if unmarshalErr := status.UnmarshalText([]byte(v)); unmarshalErr != nil {
			return query, apperrors.ValidationField("status", "status must be one of: open, in_progress, completed, cancelled")
		}
		query.Status = &status
	}

	startDate, err := parseOptionalDate(q.Get("startDate"), "startDate", false)
	if err != nil {
		return query, err
	}
	query.StartDate = startDate

	endDate, err := parseOptionalDate(q.Get("endDate"), "endDate", true)
	if err != nil {
		return query, err
	}
	query.EndDate = endDate

	if v := q.Get("categoryId"); v != "" {
		query.CategoryID = &v
	}
	if v := q.Get("search"); v != "" {
		query.Search = &v
	}

	return query, nil
}

// parseOptionalInt returns 0 for an absent value and a validation error for
// a malformed one.
func parseOptionalInt(raw, field string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	i, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.ValidationField(field, field+" must be a number")
	}
	return i, nil
}

// parseOptionalDate accepts RFC 3339 timestamps and plain dates. A date-only
// upper bound is extended to the end of that day so the range stays inclusive.
func parseOptionalDate(raw, field string, upperBound bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateOnlyFormat, raw)
	if err != nil {
		return nil, apperrors.ValidationField(field,
			field+" must be an RFC 3339 timestamp or a YYYY-MM-DD date")
	}
	if upperBound {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
