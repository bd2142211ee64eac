package desk

import (
	"context"
	"fmt"

	"github.com/helpwire-io/deskapi/internal/constants"
)

// PaginationClient is implemented by resource clients that can fetch one
// page of a list from an arbitrary path. The path may be the resource's base
// path or a next-page locator returned by the server.
type PaginationClient[T any] interface {
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*ListResponse[T], error)
}

// PaginationOptions controls multi-page fetches.
type PaginationOptions struct {
	// PageSize requests a specific page size on the first request.
	PageSize int

	// MaxPages caps the number of pages fetched; 0 means no cap.
	MaxPages int
}

// DefaultPaginationOptions returns the defaults used by ListAll helpers:
// the standard page size and a cap on runaway pagination chains.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{
		PageSize: constants.StandardPageSize,
		MaxPages: constants.MaxPages,
	}
}

// PageResult is one page of results delivered by StreamPages.
type PageResult[T any] struct {
	Items []T
	Page  int
	Err   error
}

// FetchAllPages retrieves every page starting at path and returns the
// concatenation of all items in server order. The next-page locator from
// each response is followed verbatim; a failure on any page is surfaced as a
// PaginationError and no partial result is returned.
func FetchAllPages[T any](ctx context.Context, client PaginationClient[T], path string, params *QueryParams, options *PaginationOptions) ([]T, error) {
	var all []T

	pages := 0

	err := forEachPage(ctx, client, path, params, options, func(list *ListResponse[T]) error {
		all = append(all, list.Items...)
		pages++

		return nil
	})
	if err != nil {
		return nil, err
	}

	return all, nil
}

// StreamPages retrieves pages starting at path and delivers each one on the
// returned channel as it arrives. On failure the final result carries the
// error and the channel is closed; the consumer never sees a partial chain
// presented as complete.
func StreamPages[T any](ctx context.Context, client PaginationClient[T], path string, params *QueryParams, options *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		page := 0

		err := forEachPage(ctx, client, path, params, options, func(list *ListResponse[T]) error {
			page++

			select {
			case results <- PageResult[T]{Items: list.Items, Page: page}:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if err != nil {
			select {
			case results <- PageResult[T]{Page: page + 1, Err: err}:
			case <-ctx.Done():
			}
		}
	}()

	return results
}

// forEachPage walks the pagination chain sequentially. Page N+1 is never
// requested before page N's locator has been extracted.
func forEachPage[T any](ctx context.Context, client PaginationClient[T], path string, params *QueryParams, options *PaginationOptions, visit func(*ListResponse[T]) error) error {
	if options != nil && options.PageSize > 0 {
		if params == nil {
			params = NewQueryParams()
		}

		params.PerPage = options.PageSize
	}

	fetched := 0

	for path != "" {
		if err := ctx.Err(); err != nil {
			return &PaginationError{PagesFetched: fetched, Err: err}
		}

		if options != nil && options.MaxPages > 0 && fetched >= options.MaxPages {
			break
		}

		list, err := client.ListWithPath(ctx, path, params)
		if err != nil {
			return &PaginationError{PagesFetched: fetched, Err: fmt.Errorf("fetching page %d: %w", fetched+1, err)}
		}

		fetched++

		err = visit(list)
		if err != nil {
			return &PaginationError{PagesFetched: fetched, Err: err}
		}

		// The locator already encodes paging state; params apply to the
		// first request only.
		path = list.NextLocator()
		params = nil
	}

	return nil
}

// PaginationIterator iterates items across pages, fetching lazily.
type PaginationIterator[T any] struct {
	ctx    context.Context
	client PaginationClient[T]
	path   string
	params *QueryParams
	buffer []T
	index  int
	done   bool
	err    error
}

// NewPaginationIterator creates an iterator over all items starting at path.
func NewPaginationIterator[T any](ctx context.Context, client PaginationClient[T], path string, params *QueryParams) *PaginationIterator[T] {
	return &PaginationIterator[T]{
		ctx:    ctx,
		client: client,
		path:   path,
		params: params,
	}
}

// HasNext reports whether another item is available, fetching pages as
// needed. A fetch failure is reported by the subsequent Next call.
func (it *PaginationIterator[T]) HasNext() bool {
	if it.err != nil {
		return true // surface the error from Next
	}

	for it.index >= len(it.buffer) {
		if it.done {
			return false
		}

		if !it.fetchNextPage() {
			return it.err != nil
		}
	}

	return true
}

// Next returns the next item in server order.
func (it *PaginationIterator[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		return zero, ErrNoMoreItems
	}

	if it.err != nil {
		err := it.err
		it.err = nil

		return zero, err
	}

	item := it.buffer[it.index]
	it.index++

	return item, nil
}

// All collects every remaining item.
func (it *PaginationIterator[T]) All() ([]T, error) {
	var all []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return nil, err
		}

		all = append(all, item)
	}

	return all, nil
}

// ForEach applies fn to every remaining item, stopping on the first error.
func (it *PaginationIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

// fetchNextPage loads the next page into the buffer. It returns false when
// the chain is exhausted or an error occurred.
func (it *PaginationIterator[T]) fetchNextPage() bool {
	if err := it.ctx.Err(); err != nil {
		it.err = err
		it.done = true

		return false
	}

	list, err := it.client.ListWithPath(it.ctx, it.path, it.params)
	if err != nil {
		it.err = err
		it.done = true

		return false
	}

	it.params = nil
	it.buffer = list.Items
	it.index = 0

	it.path = list.NextLocator()
	if it.path == "" {
		it.done = true
	}

	return len(it.buffer) > 0 || !it.done
}
