package services

import (
	"reflect"
	"testing"
)

func TestPaginationCoversListExactly(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	p := NewPaginator(items, 3)

	if p.TotalPages() != 3 {
		t.Fatalf("expected 3 pages for 7 items of size 3, got %d", p.TotalPages())
	}

	var rebuilt []int
	for page := 1; page <= p.TotalPages(); page++ {
		p.GoToPage(page)
		rebuilt = append(rebuilt, p.PageItems()...)
	}

	if !reflect.DeepEqual(rebuilt, items) {
		t.Fatalf("concatenated pages must rebuild the input, got %v", rebuilt)
	}
}

func TestPaginationBoundariesAreNoOps(t *testing.T) {
	p := NewPaginator([]string{"a", "b", "c", "d"}, 2)

	p.GoToPage(0)
	if p.CurrentPage() != 1 {
		t.Fatalf("goToPage(0) must be a no-op, got page %d", p.CurrentPage())
	}

	p.GoToPage(p.TotalPages() + 1)
	if p.CurrentPage() != 1 {
		t.Fatalf("goToPage(totalPages+1) must be a no-op, got page %d", p.CurrentPage())
	}

	if p.CanGoPrevious() {
		t.Fatalf("canGoPrevious must be false on page 1")
	}
	if !p.CanGoNext() {
		t.Fatalf("canGoNext must be true before the last page")
	}

	p.GoToPage(2)
	if !p.CanGoPrevious() || p.CanGoNext() {
		t.Fatalf("on the last page only previous navigation is possible")
	}
}

func TestPaginationEmptyList(t *testing.T) {
	p := NewPaginator([]int{}, 5)

	if p.TotalPages() != 0 {
		t.Fatalf("empty list must report 0 pages, got %d", p.TotalPages())
	}
	if len(p.PageItems()) != 0 {
		t.Fatalf("empty list must yield an empty page slice")
	}
	if p.CanGoNext() || p.CanGoPrevious() {
		t.Fatalf("no navigation possible on an empty list")
	}
}

func TestSetItemsResetsToFirstPage(t *testing.T) {
	p := NewPaginator([]int{1, 2, 3, 4, 5, 6}, 2)
	p.GoToPage(3)

	p.SetItems([]int{1, 2})

	if p.CurrentPage() != 1 {
		t.Fatalf("replacing the list must reset to page 1, got %d", p.CurrentPage())
	}
	if p.TotalPages() != 1 {
		t.Fatalf("expected 1 page after shrink, got %d", p.TotalPages())
	}
}

func TestNextAndPrevious(t *testing.T) {
	p := NewPaginator([]int{1, 2, 3}, 1)

	p.Next()
	p.Next()
	p.Next() // already on last page, clamped
	if p.CurrentPage() != 3 {
		t.Fatalf("expected page 3, got %d", p.CurrentPage())
	}

	p.Previous()
	if p.CurrentPage() != 2 {
		t.Fatalf("expected page 2, got %d", p.CurrentPage())
	}
}

func TestPageBoundsClamps(t *testing.T) {
	offset, limit := PageBounds(0, -5, 20)
	if offset != 0 || limit != 20 {
		t.Fatalf("expected clamped offset 0 limit 20, got %d %d", offset, limit)
	}

	offset, limit = PageBounds(3, 25, 20)
	if offset != 50 || limit != 25 {
		t.Fatalf("expected offset 50 limit 25, got %d %d", offset, limit)
	}
}
