// Package pagination holds page-number pagination arithmetic shared by list endpoints.
package pagination

import (
	"fmt"

	"github.com/SscSPs/meow_bank/internal/apperrors"
)

// DefaultPageSize is used when no page size is configured.
const DefaultPageSize = 10

// ErrInvalidPage is returned for a page outside [1, TotalPages].
var ErrInvalidPage = fmt.Errorf("%w: invalid page number", apperrors.ErrValidation)

// Page describes one page of a result set.
type Page struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	TotalPages  int `json:"total_pages"`
	TotalItems  int `json:"total_items"`
}

// NewPage validates page against the total item count. A zero page means the first page.
// An empty result set has zero pages and still accepts page 1.
func NewPage(page, perPage, totalItems int) (Page, error) {
	if page == 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	if totalItems < 0 {
		totalItems = 0
	}

	totalPages := (totalItems + perPage - 1) / perPage
	if page < 1 || (totalPages > 0 && page > totalPages) {
		return Page{}, ErrInvalidPage
	}

	return Page{
		CurrentPage: page,
		PerPage:     perPage,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
	}, nil
}

// Offset is the number of items preceding this page.
func (p Page) Offset() int {
	return (p.CurrentPage - 1) * p.PerPage
}

// Limit is the maximum number of items on this page.
func (p Page) Limit() int {
	return p.PerPage
}
