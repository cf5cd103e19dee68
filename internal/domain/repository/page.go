package repository

import "errors"

// Page describes skip/limit pagination. Number starts at 1.
type Page struct {
	Number int64
	Size   int64
}

// MaxPageSize caps a single page to keep aggregation results bounded.
const MaxPageSize = 100

var ErrInvalidPage = errors.New("page and limit must be at least 1")

// Validate checks the pagination bounds.
func (p Page) Validate() error {
	if p.Number < 1 || p.Size < 1 || p.Size > MaxPageSize {
		return ErrInvalidPage
	}
	return nil
}

// Skip returns the number of documents to skip for this page.
func (p Page) Skip() int64 {
	return (p.Number - 1) * p.Size
}
