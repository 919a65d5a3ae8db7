package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalItems int
		pageSize   int
		want       Result
	}{
		{
			name:       "first page of 23",
			page:       1,
			totalItems: 23,
			pageSize:   10,
			want:       Result{CurrentPage: 1, TotalPages: 3, StartIndex: 0, EndIndex: 10, HasNextPage: true, HasPrevPage: false},
		},
		{
			name:       "middle page of 23",
			page:       2,
			totalItems: 23,
			pageSize:   10,
			want:       Result{CurrentPage: 2, TotalPages: 3, StartIndex: 10, EndIndex: 20, HasNextPage: true, HasPrevPage: true},
		},
		{
			name:       "last partial page of 23",
			page:       3,
			totalItems: 23,
			pageSize:   10,
			want:       Result{CurrentPage: 3, TotalPages: 3, StartIndex: 20, EndIndex: 23, HasNextPage: false, HasPrevPage: true},
		},
		{
			name:       "page beyond last clamps down",
			page:       99,
			totalItems: 23,
			pageSize:   10,
			want:       Result{CurrentPage: 3, TotalPages: 3, StartIndex: 20, EndIndex: 23, HasNextPage: false, HasPrevPage: true},
		},
		{
			name:       "zero page clamps up",
			page:       0,
			totalItems: 23,
			pageSize:   10,
			want:       Result{CurrentPage: 1, TotalPages: 3, StartIndex: 0, EndIndex: 10, HasNextPage: true, HasPrevPage: false},
		},
		{
			name:       "negative page clamps up",
			page:       -7,
			totalItems: 23,
			pageSize:   10,
			want:       Result{CurrentPage: 1, TotalPages: 3, StartIndex: 0, EndIndex: 10, HasNextPage: true, HasPrevPage: false},
		},
		{
			name:       "empty collection",
			page:       1,
			totalItems: 0,
			pageSize:   10,
			want:       Result{CurrentPage: 1, TotalPages: 0, StartIndex: 0, EndIndex: 0, HasNextPage: false, HasPrevPage: false},
		},
		{
			name:       "empty collection with high page",
			page:       5,
			totalItems: 0,
			pageSize:   10,
			want:       Result{CurrentPage: 1, TotalPages: 0, StartIndex: 0, EndIndex: 0, HasNextPage: false, HasPrevPage: false},
		},
		{
			name:       "exact multiple of page size",
			page:       2,
			totalItems: 20,
			pageSize:   10,
			want:       Result{CurrentPage: 2, TotalPages: 2, StartIndex: 10, EndIndex: 20, HasNextPage: false, HasPrevPage: true},
		},
		{
			name:       "single item",
			page:       1,
			totalItems: 1,
			pageSize:   10,
			want:       Result{CurrentPage: 1, TotalPages: 1, StartIndex: 0, EndIndex: 1, HasNextPage: false, HasPrevPage: false},
		},
		{
			name:       "huge page number",
			page:       math.MaxInt,
			totalItems: 5,
			pageSize:   2,
			want:       Result{CurrentPage: 3, TotalPages: 3, StartIndex: 4, EndIndex: 5, HasNextPage: false, HasPrevPage: true},
		},
		{
			name:       "max page size",
			page:       1,
			totalItems: 5,
			pageSize:   math.MaxInt,
			want:       Result{CurrentPage: 1, TotalPages: 1, StartIndex: 0, EndIndex: 5, HasNextPage: false, HasPrevPage: false},
		},
		{
			name:       "second page of max items",
			page:       2,
			totalItems: math.MaxInt,
			pageSize:   math.MaxInt/2 + 1,
			want:       Result{CurrentPage: 2, TotalPages: 2, StartIndex: math.MaxInt/2 + 1, EndIndex: math.MaxInt, HasNextPage: false, HasPrevPage: true},
		},
		{
			name:       "page beyond last of max items",
			page:       math.MaxInt,
			totalItems: math.MaxInt,
			pageSize:   math.MaxInt - 1,
			want:       Result{CurrentPage: 2, TotalPages: 2, StartIndex: math.MaxInt - 1, EndIndex: math.MaxInt, HasNextPage: false, HasPrevPage: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Calculate(tt.page, tt.totalItems, tt.pageSize))
		})
	}
}

func TestCalculate_Totality(t *testing.T) {
	pages := []int{math.MinInt, -100, -1, 0, 1, 2, 3, 7, 50, math.MaxInt}

	for totalItems := 0; totalItems <= 45; totalItems++ {
		for pageSize := 1; pageSize <= 12; pageSize++ {
			for _, page := range pages {
				res := Calculate(page, totalItems, pageSize)

				assert.LessOrEqual(t, 0, res.StartIndex)
				assert.LessOrEqual(t, res.StartIndex, res.EndIndex)
				assert.LessOrEqual(t, res.EndIndex, totalItems)
				assert.GreaterOrEqual(t, res.CurrentPage, 1)
				assert.LessOrEqual(t, res.CurrentPage, max(1, res.TotalPages))
			}
		}
	}
}

func TestCalculate_Coverage(t *testing.T) {
	for totalItems := 0; totalItems <= 37; totalItems++ {
		for pageSize := 1; pageSize <= 11; pageSize++ {
			items := make([]int, totalItems)
			for i := range items {
				items[i] = i
			}

			var joined []int
			totalPages := TotalPages(totalItems, pageSize)
			for page := 1; page <= totalPages; page++ {
				res := Calculate(page, totalItems, pageSize)
				assert.Equal(t, page, res.CurrentPage)
				joined = append(joined, items[res.StartIndex:res.EndIndex]...)
			}

			if totalItems == 0 {
				assert.Empty(t, joined)
				continue
			}
			assert.Equal(t, items, joined, "items=%d size=%d", totalItems, pageSize)
		}
	}
}

func TestCalculate_NonPositivePageSize(t *testing.T) {
	res := Calculate(2, 3, 0)

	assert.Equal(t, Result{CurrentPage: 2, TotalPages: 3, StartIndex: 1, EndIndex: 2, HasNextPage: true, HasPrevPage: true}, res)
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int
		pageSize   int
		want       int
	}{
		{name: "zero total", totalItems: 0, pageSize: 10, want: 0},
		{name: "less than one page", totalItems: 9, pageSize: 10, want: 1},
		{name: "exactly one page", totalItems: 10, pageSize: 10, want: 1},
		{name: "one over", totalItems: 11, pageSize: 10, want: 2},
		{name: "twenty three", totalItems: 23, pageSize: 10, want: 3},
		{name: "page size one", totalItems: 5, pageSize: 1, want: 5},
		{name: "max page size", totalItems: 5, pageSize: math.MaxInt, want: 1},
		{name: "max items, max page size", totalItems: math.MaxInt, pageSize: math.MaxInt, want: 1},
		{name: "max items, page size one", totalItems: math.MaxInt, pageSize: 1, want: math.MaxInt},
		{name: "max items, half page size", totalItems: math.MaxInt, pageSize: math.MaxInt/2 + 1, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.totalItems, tt.pageSize))
		})
	}
}

func TestShouldRedirectToFirstPage(t *testing.T) {
	tests := []struct {
		name        string
		currentPage int
		totalPages  int
		want        bool
	}{
		{name: "beyond last page", currentPage: 4, totalPages: 3, want: true},
		{name: "far beyond last page", currentPage: 99, totalPages: 3, want: true},
		{name: "on last page", currentPage: 3, totalPages: 3, want: false},
		{name: "first page", currentPage: 1, totalPages: 3, want: false},
		{name: "no pages", currentPage: 5, totalPages: 0, want: false},
		{name: "zero page", currentPage: 0, totalPages: 3, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldRedirectToFirstPage(tt.currentPage, tt.totalPages))
		})
	}
}

func TestResult_NextPrev(t *testing.T) {
	first := Calculate(1, 23, 10)
	assert.Equal(t, 2, first.NextPage())
	assert.Equal(t, 0, first.PrevPage())

	last := Calculate(3, 23, 10)
	assert.Equal(t, 0, last.NextPage())
	assert.Equal(t, 2, last.PrevPage())
}
