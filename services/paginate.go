package services

// Paginator slices a list into fixed-size pages with 1-indexed navigation.
// Out-of-range navigation is a no-op, matching the clamped behaviour of the
// listing endpoints.
type Paginator[T any] struct {
	items    []T
	pageSize int
	page     int
}

// NewPaginator builds a paginator positioned on page 1. A non-positive page
// size falls back to 10.
func NewPaginator[T any](items []T, pageSize int) *Paginator[T] {
	if pageSize < 1 {
		pageSize = 10
	}
	return &Paginator[T]{items: items, pageSize: pageSize, page: 1}
}

// SetItems replaces the underlying list and resets to page 1. Filter changes
// go through here so the current page can never be left out of range.
func (p *Paginator[T]) SetItems(items []T) {
	p.items = items
	p.page = 1
}

// CurrentPage returns the 1-indexed current page.
func (p *Paginator[T]) CurrentPage() int {
	return p.page
}

// TotalPages returns ceil(len/size), 0 for an empty list.
func (p *Paginator[T]) TotalPages() int {
	if len(p.items) == 0 {
		return 0
	}
	return (len(p.items) + p.pageSize - 1) / p.pageSize
}

// PageItems returns the slice for the current page.
func (p *Paginator[T]) PageItems() []T {
	if len(p.items) == 0 {
		return nil
	}
	start := (p.page - 1) * p.pageSize
	if start >= len(p.items) {
		return nil
	}
	end := start + p.pageSize
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[start:end]
}

// CanGoPrevious reports whether a previous page exists.
func (p *Paginator[T]) CanGoPrevious() bool {
	return p.page > 1
}

// CanGoNext reports whether a next page exists.
func (p *Paginator[T]) CanGoNext() bool {
	return p.page < p.TotalPages()
}

// GoToPage moves to the requested page. Pages outside [1, TotalPages] are
// ignored.
func (p *Paginator[T]) GoToPage(page int) {
	if page < 1 || page > p.TotalPages() {
		return
	}
	p.page = page
}

// Next advances one page when possible.
func (p *Paginator[T]) Next() {
	p.GoToPage(p.page + 1)
}

// Previous steps back one page when possible.
func (p *Paginator[T]) Previous() {
	p.GoToPage(p.page - 1)
}

// PageBounds returns the clamped [offset, limit] pair for a 1-indexed page
// over a collection of n records, for SQL-side paging. It mirrors the
// Paginator clamping: page below 1 becomes 1, limit below 1 becomes the
// fallback size.
func PageBounds(page, limit, fallbackLimit int) (int, int) {
	if fallbackLimit < 1 {
		fallbackLimit = 10
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = fallbackLimit
	}
	return (page - 1) * limit, limit
}
