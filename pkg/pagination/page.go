package pagination

// Page is one window of a collection together with its pagination metadata.
// Generic type T allows reuse for news items and visuals.
type Page[T any] struct {
	Items []T `json:"items"`
	Result
}

// Paginate clamps page into range and returns the matching window of items.
// The returned Items never alias past the window, appending to it does not
// touch the source collection.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	res := Calculate(page, len(items), pageSize)

	window := make([]T, res.EndIndex-res.StartIndex)
	copy(window, items[res.StartIndex:res.EndIndex])

	return Page[T]{
		Items:  window,
		Result: res,
	}
}
