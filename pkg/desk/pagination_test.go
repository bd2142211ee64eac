package desk_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpwire-io/deskapi/pkg/desk"
)

// fakePager serves a canned page per path and records the requests it saw.
type fakePager struct {
	pages       map[string]*desk.ListResponse[desk.Tag]
	errs        map[string]error
	seenPaths   []string
	seenPerPage []int
}

func (f *fakePager) ListWithPath(_ context.Context, path string, params *desk.QueryParams) (*desk.ListResponse[desk.Tag], error) {
	f.seenPaths = append(f.seenPaths, path)

	perPage := 0
	if params != nil {
		perPage = params.PerPage
	}

	f.seenPerPage = append(f.seenPerPage, perPage)

	if err, ok := f.errs[path]; ok {
		return nil, err
	}

	list, ok := f.pages[path]
	if !ok {
		return nil, desk.ParseAPIError(404, nil)
	}

	return list, nil
}

func page(names []string, next string) *desk.ListResponse[desk.Tag] {
	tags := make([]desk.Tag, len(names))
	for i, name := range names {
		tags[i] = desk.Tag{Name: name}
	}

	list := &desk.ListResponse[desk.Tag]{Items: tags}
	if next != "" {
		list.NextPage = &next
	}

	return list
}

func TestFetchAllPages(t *testing.T) {
	pager := &fakePager{pages: map[string]*desk.ListResponse[desk.Tag]{
		"/api/v2/tags":        page([]string{"a", "b"}, "/api/v2/tags?page=2"),
		"/api/v2/tags?page=2": page([]string{"c"}, "/api/v2/tags?page=3"),
		"/api/v2/tags?page=3": page([]string{"d"}, ""),
	}}

	all, err := desk.FetchAllPages(context.Background(), desk.PaginationClient[desk.Tag](pager), "/api/v2/tags", nil, nil)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "a", all[0].Name)
	assert.Equal(t, "d", all[3].Name)
	assert.Equal(t, []string{"/api/v2/tags", "/api/v2/tags?page=2", "/api/v2/tags?page=3"}, pager.seenPaths)
}

func TestFetchAllPages_ParamsOnFirstRequestOnly(t *testing.T) {
	pager := &fakePager{pages: map[string]*desk.ListResponse[desk.Tag]{
		"/api/v2/tags":        page([]string{"a"}, "/api/v2/tags?page=2"),
		"/api/v2/tags?page=2": page([]string{"b"}, ""),
	}}

	options := &desk.PaginationOptions{PageSize: 100}

	_, err := desk.FetchAllPages(context.Background(), desk.PaginationClient[desk.Tag](pager), "/api/v2/tags", nil, options)
	require.NoError(t, err)
	assert.Equal(t, []int{100, 0}, pager.seenPerPage)
}

func TestFetchAllPages_FailureDropsPartialResults(t *testing.T) {
	boom := errors.New("boom")
	pager := &fakePager{
		pages: map[string]*desk.ListResponse[desk.Tag]{
			"/api/v2/tags": page([]string{"a"}, "/api/v2/tags?page=2"),
		},
		errs: map[string]error{
			"/api/v2/tags?page=2": boom,
		},
	}

	all, err := desk.FetchAllPages(context.Background(), desk.PaginationClient[desk.Tag](pager), "/api/v2/tags", nil, nil)
	require.Error(t, err)
	assert.Nil(t, all)

	var pageErr *desk.PaginationError

	require.ErrorAs(t, err, &pageErr)
	assert.Equal(t, 1, pageErr.PagesFetched)
	assert.ErrorIs(t, err, boom)
}

func TestFetchAllPages_MaxPages(t *testing.T) {
	pager := &fakePager{pages: map[string]*desk.ListResponse[desk.Tag]{
		"/api/v2/tags":        page([]string{"a"}, "/api/v2/tags?page=2"),
		"/api/v2/tags?page=2": page([]string{"b"}, "/api/v2/tags"),
	}}

	options := &desk.PaginationOptions{MaxPages: 5}

	all, err := desk.FetchAllPages(context.Background(), desk.PaginationClient[desk.Tag](pager), "/api/v2/tags", nil, options)
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.Len(t, pager.seenPaths, 5)
}

func TestFetchAllPages_CancelledContext(t *testing.T) {
	pager := &fakePager{pages: map[string]*desk.ListResponse[desk.Tag]{
		"/api/v2/tags": page([]string{"a"}, ""),
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := desk.FetchAllPages(ctx, desk.PaginationClient[desk.Tag](pager), "/api/v2/tags", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, pager.seenPaths)
}

func TestStreamPages(t *testing.T) {
	pager := &fakePager{pages: map[string]*desk.ListResponse[desk.Tag]{
		"/api/v2/tags":        page([]string{"a", "b"}, "/api/v2/tags?page=2"),
		"/api/v2/tags?page=2": page([]string{"c"}, ""),
	}}

	var pages []desk.PageResult[desk.Tag]

	for result := range desk.StreamPages(context.Background(), desk.PaginationClient[desk.Tag](pager), "/api/v2/tags", nil, nil) {
		pages = append(pages, result)
	}

	require.Len(t, pages, 2)
	assert.Equal(t, 1, pages[0].Page)
	assert.Len(t, pages[0].Items, 2)
	assert.Equal(t, 2, pages[1].Page)
	require.NoError(t, pages[1].Err)
}

func TestStreamPages_ErrorIsFinalResult(t *testing.T) {
	boom := errors.New("boom")
	pager := &fakePager{
		pages: map[string]*desk.ListResponse[desk.Tag]{
			"/api/v2/tags": page([]string{"a"}, "/api/v2/tags?page=2"),
		},
		errs: map[string]error{
			"/api/v2/tags?page=2": boom,
		},
	}

	var pages []desk.PageResult[desk.Tag]

	for result := range desk.StreamPages(context.Background(), desk.PaginationClient[desk.Tag](pager), "/api/v2/tags", nil, nil) {
		pages = append(pages, result)
	}

	require.Len(t, pages, 2)
	require.NoError(t, pages[0].Err)
	require.Error(t, pages[1].Err)
	assert.ErrorIs(t, pages[1].Err, boom)
}

func TestPaginationIterator(t *testing.T) {
	pager := &fakePager{pages: map[string]*desk.ListResponse[desk.Tag]{
		"/api/v2/tags":        page([]string{"a", "b"}, "/api/v2/tags?page=2"),
		"/api/v2/tags?page=2": page([]string{"c"}, ""),
	}}

	it := desk.NewPaginationIterator(context.Background(), desk.PaginationClient[desk.Tag](pager), "/api/v2/tags", nil)

	var names []string

	for it.HasNext() {
		tag, err := it.Next()
		require.NoError(t, err)

		names = append(names, tag.Name)
	}

	assert.Equal(t, []string{"a", "b", "c"}, names)

	_, err := it.Next()
	assert.ErrorIs(t, err, desk.ErrNoMoreItems)
}

func TestPaginationIterator_SurfacesFetchError(t *testing.T) {
	boom := errors.New("boom")
	pager := &fakePager{
		pages: map[string]*desk.ListResponse[desk.Tag]{
			"/api/v2/tags": page([]string{"a"}, "/api/v2/tags?page=2"),
		},
		errs: map[string]error{
			"/api/v2/tags?page=2": boom,
		},
	}

	it := desk.NewPaginationIterator(context.Background(), desk.PaginationClient[desk.Tag](pager), "/api/v2/tags", nil)

	tag, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", tag.Name)

	require.True(t, it.HasNext())

	_, err = it.Next()
	assert.ErrorIs(t, err, boom)
}

func TestPaginationIterator_All(t *testing.T) {
	pager := &fakePager{pages: map[string]*desk.ListResponse[desk.Tag]{
		"/api/v2/tags":        page([]string{"a"}, "/api/v2/tags?page=2"),
		"/api/v2/tags?page=2": page([]string{"b"}, ""),
	}}

	it := desk.NewPaginationIterator(context.Background(), desk.PaginationClient[desk.Tag](pager), "/api/v2/tags", nil)

	all, err := it.All()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPaginationIterator_ForEach(t *testing.T) {
	pager := &fakePager{pages: map[string]*desk.ListResponse[desk.Tag]{
		"/api/v2/tags": page([]string{"a", "b"}, ""),
	}}

	it := desk.NewPaginationIterator(context.Background(), desk.PaginationClient[desk.Tag](pager), "/api/v2/tags", nil)

	count := 0
	err := it.ForEach(func(desk.Tag) error {
		count++

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
