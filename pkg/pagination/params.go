package pagination

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ErrInvalidPageParameter is returned when a supplied page parameter is not
// a positive integer.
var ErrInvalidPageParameter = errors.New("invalid page parameter")

// PageQueryParam is the query string key carrying the page number
const PageQueryParam = "page"

// ValidatePageParam normalizes a raw page parameter. An absent parameter
// yields DefaultPage. A present value must parse as an integer >= 1; it is
// not bounded above, Calculate clamps it later.
func ValidatePageParam(raw string, present bool) (int, error) {
	if !present {
		return DefaultPage, nil
	}

	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidPageParameter, raw)
	}
	if page < 1 {
		return 0, fmt.Errorf("%w: %d is less than 1", ErrInvalidPageParameter, page)
	}

	return page, nil
}

// ValidatePageQuery reads the page parameter from query values.
// An empty "?page=" counts as present.
func ValidatePageQuery(values url.Values) (int, error) {
	raw, present := values[PageQueryParam]
	if !present || len(raw) == 0 {
		return ValidatePageParam("", false)
	}
	return ValidatePageParam(raw[0], true)
}

// PageURL links to page of the listing at path. The first page has no query
// string so it shares the canonical URL of the listing.
func PageURL(path string, page int) string {
	if page <= DefaultPage {
		return path
	}
	return path + "?" + PageQueryParam + "=" + strconv.Itoa(page)
}
