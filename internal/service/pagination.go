package service

import "math"

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// normalizePage clamps page to at least 1 and replaces a non-positive page size
// with DefaultPageSize. The upper page size bound is enforced by validation.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

// pageOffset returns the number of rows before page. It saturates at
// math.MaxInt32, which is past the end of any listing.
func pageOffset(page, pageSize int) int {
	if page <= 1 {
		return 0
	}
	if page-1 > math.MaxInt32/pageSize {
		return math.MaxInt32
	}
	return (page - 1) * pageSize
}
