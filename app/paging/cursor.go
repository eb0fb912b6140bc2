// Package paging tracks page-numbered incremental loading.
package paging

import "errors"

// DefaultPageSize is used when a cursor is created with a non-positive size.
const DefaultPageSize = 20

var (
	// ErrInFlight is returned when a page is requested while the previous
	// one has not been answered.
	ErrInFlight = errors.New("page request already in flight")

	// ErrExhausted is returned when the last page came back short.
	ErrExhausted = errors.New("no more pages")
)

// Cursor accumulates pages of T. Pages are numbered from 1 and requested one
// at a time. HasMore is inferred from a full page, so a final page that is
// exactly full costs one extra, empty request.
type Cursor[T any] struct {
	page     int
	pageSize int
	pending  int
	hasMore  bool
	items    []T
}

func New[T any](pageSize int) Cursor[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Cursor[T]{pageSize: pageSize, hasMore: true}
}

// Begin reserves the next page number.
func (c *Cursor[T]) Begin() (int, error) {
	if c.pending != 0 {
		return 0, ErrInFlight
	}
	if !c.hasMore {
		return 0, ErrExhausted
	}
	c.pending = c.page + 1
	return c.pending, nil
}

// Advance appends the answer for the in-flight page and returns all items
// plus the recomputed HasMore. Without an in-flight page (a stale answer
// after Reset) nothing changes.
func (c *Cursor[T]) Advance(page []T) ([]T, bool) {
	if c.pending == 0 {
		return c.items, c.hasMore
	}
	c.page = c.pending
	c.pending = 0
	c.items = append(c.items, page...)
	c.hasMore = len(page) == c.pageSize
	return c.items, c.hasMore
}

// Fail releases the in-flight page without moving the cursor, so the same
// page can be retried.
func (c *Cursor[T]) Fail() {
	c.pending = 0
}

// Reset drops everything, e.g. when the list is replaced wholesale.
func (c *Cursor[T]) Reset() {
	c.page = 0
	c.pending = 0
	c.hasMore = true
	c.items = nil
}

func (c Cursor[T]) Items() []T     { return c.items }
func (c Cursor[T]) Page() int      { return c.page }
func (c Cursor[T]) PageSize() int  { return c.pageSize }
func (c Cursor[T]) HasMore() bool  { return c.hasMore }
func (c Cursor[T]) InFlight() bool { return c.pending != 0 }
