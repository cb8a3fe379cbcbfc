package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobListQuery_Normalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		q := JobListQuery{}.Normalize()
		assert.Equal(t, DefaultPage, q.Page)
		assert.Equal(t, DefaultPageSize, q.PageSize)
		assert.Equal(t, DefaultSortBy, q.SortBy)
		assert.Equal(t, SortOrderDesc, q.SortOrder)
	})

	t.Run("clamps out-of-range values", func(t *testing.T) {
		q := JobListQuery{Page: -5, PageSize: 1000, SortOrder: "sideways"}.Normalize()
		assert.Equal(t, 1, q.Page)
		assert.Equal(t, MaxPageSize, q.PageSize)
		assert.Equal(t, SortOrderDesc, q.SortOrder)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		q := JobListQuery{Page: 3, PageSize: 25, SortBy: "title", SortOrder: "ASC"}.Normalize()
		assert.Equal(t, 3, q.Page)
		assert.Equal(t, 25, q.PageSize)
		assert.Equal(t, "title", q.SortBy)
		assert.Equal(t, "ASC", q.SortOrder)
	})

	t.Run("empty string filters become absent", func(t *testing.T) {
		empty := ""
		q := JobListQuery{Search: &empty, CategoryID: &empty}.Normalize()
		assert.Nil(t, q.Search)
		assert.Nil(t, q.CategoryID)
	})
}

func TestJobListQuery_Offset(t *testing.T) {
	q := JobListQuery{Page: 3, PageSize: 10}
	assert.Equal(t, 20, q.Offset())

	q = JobListQuery{Page: 1, PageSize: 50}
	assert.Equal(t, 0, q.Offset())
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		totalCount int
		want       Pagination
	}{
		{
			name: "middle page", page: 2, pageSize: 10, totalCount: 25,
			want: Pagination{CurrentPage: 2, TotalPages: 3, TotalCount: 25, Limit: 10,
				HasNextPage: true, HasPrevPage: true},
		},
		{
			name: "first of one", page: 1, pageSize: 10, totalCount: 7,
			want: Pagination{CurrentPage: 1, TotalPages: 1, TotalCount: 7, Limit: 10,
				HasNextPage: false, HasPrevPage: false},
		},
		{
			name: "exact multiple", page: 2, pageSize: 10, totalCount: 20,
			want: Pagination{CurrentPage: 2, TotalPages: 2, TotalCount: 20, Limit: 10,
				HasNextPage: false, HasPrevPage: true},
		},
		{
			name: "empty result", page: 1, pageSize: 10, totalCount: 0,
			want: Pagination{CurrentPage: 1, TotalPages: 0, TotalCount: 0, Limit: 10,
				HasNextPage: false, HasPrevPage: false},
		},
		{
			name: "page beyond range", page: 9, pageSize: 10, totalCount: 25,
			want: Pagination{CurrentPage: 9, TotalPages: 3, TotalCount: 25, Limit: 10,
				HasNextPage: false, HasPrevPage: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.page, tt.pageSize, tt.totalCount))
		})
	}
}
