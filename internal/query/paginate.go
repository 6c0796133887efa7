package query

import (
	"strconv"

	"gnstore/internal/domain"
)

// Page is one window over a filtered product list. Number is 1-based;
// StartIndex/EndIndex are 1-based positions for "showing X–Y of Z" text.
type Page struct {
	Items      []domain.Product `json:"items"`
	Number     int              `json:"page"`
	Size       int              `json:"page_size"`
	TotalItems int              `json:"total_items"`
	TotalPages int              `json:"total_pages"`
	HasNext    bool             `json:"has_next"`
	HasPrev    bool             `json:"has_prev"`
	StartIndex int              `json:"start_index"`
	EndIndex   int              `json:"end_index"`
}

// Paginate slices the 1-based page window out of items. Page numbers are
// clamped into [1, totalPages]; a non-positive size falls back to 60,
// the storefront's default page size.
func Paginate(items []domain.Product, page, size int) Page {
	if size <= 0 {
		size = 60
	}
	totalPages := (len(items) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	if start > len(items) {
		start = len(items)
	}

	startIndex := 0
	if len(items) > 0 {
		startIndex = start + 1
	}
	return Page{
		Items:      items[start:end],
		Number:     page,
		Size:       size,
		TotalItems: len(items),
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
		StartIndex: startIndex,
		EndIndex:   end,
	}
}

// Ellipsis is the compressed-range marker PageRange emits between
// detached page groups.
const Ellipsis = "..."

// PageRange compresses the page list for display: always the first and
// last page, a ±2 window around current, and an ellipsis wherever the
// window does not touch a boundary.
func PageRange(current, total int) []string {
	if total <= 1 {
		return []string{"1"}
	}

	const delta = 2
	var out []string

	if current-delta > 2 {
		out = append(out, "1", Ellipsis)
	} else {
		out = append(out, "1")
	}

	lo := current - delta
	if lo < 2 {
		lo = 2
	}
	hi := current + delta
	if hi > total-1 {
		hi = total - 1
	}
	for i := lo; i <= hi; i++ {
		out = append(out, strconv.Itoa(i))
	}

	if current+delta < total-1 {
		out = append(out, Ellipsis, strconv.Itoa(total))
	} else {
		out = append(out, strconv.Itoa(total))
	}
	return out
}
