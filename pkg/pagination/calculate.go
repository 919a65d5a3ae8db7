package pagination

// Result describes the visible window of a collection for one page.
// CurrentPage is always the clamped, valid page number.
type Result struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	StartIndex  int  `json:"start_index"`
	EndIndex    int  `json:"end_index"`
	HasNextPage bool `json:"has_next_page"`
	HasPrevPage bool `json:"has_prev_page"`
}

// Calculate computes the page window for currentPage over totalItems.
// Out-of-range pages are clamped into [1, max(1, totalPages)], so the
// returned window is always safe to slice with.
func Calculate(currentPage, totalItems, pageSize int) Result {
	if pageSize < 1 {
		pageSize = 1
	}
	if totalItems < 0 {
		totalItems = 0
	}

	totalPages := TotalPages(totalItems, pageSize)
	validPage := clamp(currentPage, 1, max(1, totalPages))

	startIndex := (validPage - 1) * pageSize
	endIndex := startIndex + min(pageSize, totalItems-startIndex)

	return Result{
		CurrentPage: validPage,
		TotalPages:  totalPages,
		StartIndex:  startIndex,
		EndIndex:    endIndex,
		HasNextPage: validPage < totalPages,
		HasPrevPage: validPage > 1,
	}
}

// TotalPages returns ceil(totalItems / pageSize), 0 for an empty collection.
func TotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize < 1 {
		return 0
	}
	return (totalItems-1)/pageSize + 1
}

// ShouldRedirectToFirstPage reports whether currentPage lies beyond the last
// page of a non-empty collection.
func ShouldRedirectToFirstPage(currentPage, totalPages int) bool {
	return currentPage > totalPages && totalPages > 0
}

// NextPage returns the page after r, or 0 when there is none.
func (r Result) NextPage() int {
	if !r.HasNextPage {
		return 0
	}
	return r.CurrentPage + 1
}

// PrevPage returns the page before r, or 0 when there is none.
func (r Result) PrevPage() int {
	if !r.HasPrevPage {
		return 0
	}
	return r.CurrentPage - 1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
