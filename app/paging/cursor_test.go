package paging

import (
	"errors"
	"testing"
)

func TestCursor_AdvanceAppendsAndInfersHasMore(t *testing.T) {
	c := New[int](3)

	page, err := c.Begin()
	if err != nil || page != 1 {
		t.Fatalf("first page should be 1, got %d err=%v", page, err)
	}
	items, more := c.Advance([]int{1, 2, 3})
	if len(items) != 3 || !more {
		t.Fatalf("full page should keep hasMore: items=%v more=%v", items, more)
	}

	page, _ = c.Begin()
	if page != 2 {
		t.Fatalf("pages must increase by one, got %d", page)
	}
	items, more = c.Advance([]int{4})
	if len(items) != 4 || more {
		t.Fatalf("short page should end paging: items=%v more=%v", items, more)
	}
	if _, err := c.Begin(); !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}

func TestCursor_ExactlyFullLastPageNeedsOneEmptyFetch(t *testing.T) {
	c := New[string](2)
	_, _ = c.Begin()
	_, more := c.Advance([]string{"a", "b"})
	if !more {
		t.Fatalf("full page must report more")
	}
	_, _ = c.Begin()
	items, more := c.Advance(nil)
	if more || len(items) != 2 || c.Page() != 2 {
		t.Fatalf("empty page must end paging without losing items")
	}
}

func TestCursor_RejectsOverlappingRequests(t *testing.T) {
	c := New[int](2)
	_, _ = c.Begin()
	if _, err := c.Begin(); !errors.Is(err, ErrInFlight) {
		t.Fatalf("expected ErrInFlight, got %v", err)
	}
	if !c.InFlight() {
		t.Fatalf("cursor should report in-flight")
	}
}

func TestCursor_FailAllowsRetryOfSamePage(t *testing.T) {
	c := New[int](2)
	_, _ = c.Begin()
	c.Advance([]int{1, 2})
	p, _ := c.Begin()
	c.Fail()
	retry, err := c.Begin()
	if err != nil || retry != p {
		t.Fatalf("retry should request page %d again, got %d err=%v", p, retry, err)
	}
}

func TestCursor_ResetDropsStaleAnswers(t *testing.T) {
	c := New[int](2)
	_, _ = c.Begin()
	c.Reset()
	items, more := c.Advance([]int{9, 9})
	if len(items) != 0 || !more || c.Page() != 0 {
		t.Fatalf("stale answer after reset must be ignored")
	}
}

func TestNew_DefaultPageSize(t *testing.T) {
	if c := New[int](0); c.PageSize() != DefaultPageSize {
		t.Fatalf("expected default page size, got %d", c.PageSize())
	}
}
