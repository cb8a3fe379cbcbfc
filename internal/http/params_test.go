package httpx

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byeyali/airang-ssam-sub001/internal/domain/model"
	apperrors "github.com/byeyali/airang-ssam-sub001/internal/errors"
)

func TestParseListQuery_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/jobs", nil)

	q, err := parseListQuery(r)
	require.NoError(t, err)
	assert.Zero(t, q.Page)
	assert.Zero(t, q.PageSize)
	assert.Nil(t, q.Status)
	assert.Nil(t, q.StartDate)
	assert.Nil(t, q.EndDate)
	assert.Nil(t, q.CategoryID)
	assert.Nil(t, q.Search)
}

func TestParseListQuery_AllParams(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/api/jobs?page=2&limit=25&sortBy=title&sortOrder=ASC&status=open"+
			"&startDate=2025-06-01&endDate=2025-06-30&categoryId=cat-1&search=math", nil)

	q, err := parseListQuery(r)
	require.NoError(t, err)
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 25, q.PageSize)
	assert.Equal(t, "title", q.SortBy)
	assert.Equal(t, "ASC", q.SortOrder)
	require.NotNil(t, q.Status)
	assert.Equal(t, model.JobStatusOpen, *q.Status)
	require.NotNil(t, q.CategoryID)
	assert.Equal(t, "cat-1", *q.CategoryID)
	require.NotNil(t, q.Search)
	assert.Equal(t, "math", *q.Search)
}

func TestParseListQuery_MalformedPage(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/jobs?page=abc", nil)

	_, err := parseListQuery(r)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "page", apperrors.GetField(err))
}

func TestParseListQuery_InvalidStatus(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/jobs?status=paused", nil)

	_, err := parseListQuery(r)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "status", apperrors.GetField(err))
}

func TestParseListQuery_Dates(t *testing.T) {
	t.Run("RFC3339 timestamps pass through", func(t *testing.T) {
		r := httptest.NewRequest("GET",
			"/api/jobs?startDate=2025-06-01T09:30:00Z&endDate=2025-06-30T18:00:00Z", nil)
		q, err := parseListQuery(r)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC), *q.StartDate)
		assert.Equal(t, time.Date(2025, 6, 30, 18, 0, 0, 0, time.UTC), *q.EndDate)
	})

	t.Run("date-only end bound is inclusive of the whole day", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/jobs?startDate=2025-06-01&endDate=2025-06-30", nil)
		q, err := parseListQuery(r)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), *q.StartDate)
		// End of the named day, not its midnight.
		assert.Equal(t,
			time.Date(2025, 6, 30, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC),
			*q.EndDate)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/jobs?startDate=June+1st", nil)
		_, err := parseListQuery(r)
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
		assert.Equal(t, "startDate", apperrors.GetField(err))
	})
}
