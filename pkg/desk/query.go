package desk

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams represents common query parameters for list requests.
type QueryParams struct {
	// Page and PerPage drive offset pagination.
	Page    int
	PerPage int

	// PageSize and After/Before drive cursor pagination (page[size],
	// page[after], page[before]).
	PageSize int
	After    string
	Before   string

	// SortBy and SortOrder control result ordering ("asc"/"desc").
	SortBy    string
	SortOrder string

	// Include requests sideloaded associations.
	Include []string

	// Filters holds resource-specific filter parameters; multiple values
	// for one key are comma-joined.
	Filters map[string][]string
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithPage sets the page number.
func (q *QueryParams) WithPage(page int) *QueryParams {
	q.Page = page

	return q
}

// WithPerPage sets the page size for offset pagination.
func (q *QueryParams) WithPerPage(perPage int) *QueryParams {
	q.PerPage = perPage

	return q
}

// WithPageSize sets the page size for cursor pagination.
func (q *QueryParams) WithPageSize(size int) *QueryParams {
	q.PageSize = size

	return q
}

// WithAfter sets the cursor to resume after.
func (q *QueryParams) WithAfter(cursor string) *QueryParams {
	q.After = cursor

	return q
}

// WithSort sets the sort field and order.
func (q *QueryParams) WithSort(field, order string) *QueryParams {
	q.SortBy = field
	q.SortOrder = order

	return q
}

// WithInclude appends sideloaded associations.
func (q *QueryParams) WithInclude(includes ...string) *QueryParams {
	q.Include = append(q.Include, includes...)

	return q
}

// WithFilter appends values to a filter parameter.
func (q *QueryParams) WithFilter(key string, values ...string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], values...)

	return q
}

// ToValues converts the params to url.Values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}

	if q.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(q.PerPage))
	}

	if q.PageSize > 0 {
		values.Set("page[size]", strconv.Itoa(q.PageSize))
	}

	if q.After != "" {
		values.Set("page[after]", q.After)
	}

	if q.Before != "" {
		values.Set("page[before]", q.Before)
	}

	if q.SortBy != "" {
		values.Set("sort_by", q.SortBy)
	}

	if q.SortOrder != "" {
		values.Set("sort_order", q.SortOrder)
	}

	if len(q.Include) > 0 {
		values.Set("include", strings.Join(q.Include, ","))
	}

	for key, vals := range q.Filters {
		if len(vals) > 0 {
			values.Set(key, strings.Join(vals, ","))
		}
	}

	return values
}
