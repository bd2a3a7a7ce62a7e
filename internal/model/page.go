package model

// Page is one page of a filtered listing. TotalCount counts every match of the
// filter regardless of the page bounds.
type Page[T any] struct {
	Items      []T
	TotalCount int
}
