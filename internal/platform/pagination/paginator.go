package pagination

import (
	"net/url"
	"strconv"
)

// Result holds one page of items plus navigation cursors.
type Result[T any] struct {
	Items      []T
	Total      int
	NextCursor string
	PrevCursor string
	LinkHeader string
}

// Paginate slices items into a page positioned after the cursor value.
// The id function extracts the stable, ordered identifier used for cursor
// positioning. An empty cursor value starts from the beginning. The returned
// LinkHeader carries RFC 8288 next/prev links built from baseURL and query.
func Paginate[T any](
	items []T,
	cursor Cursor,
	limit int,
	cursorType string,
	id func(T) string,
	baseURL string,
	query url.Values,
) Result[T] {
	start := 0
	if cursor.Value != "" {
		for i, item := range items {
			if id(item) == cursor.Value {
				start = i + 1
				break
			}
		}
	}

	end := start + limit
	if end > len(items) {
		end = len(items)
	}

	page := items[start:end]

	var nextCursor string
	if end < len(items) && len(page) > 0 {
		nextCursor = Cursor{Type: cursorType, Value: id(page[len(page)-1])}.Encode()
	}

	var prevCursor string
	if start > 0 {
		prevStart := start - limit
		if prevStart <= 0 {
			// First page is addressed with no cursor at all, but emit a
			// positioned cursor when the window lands mid-list.
			prevCursor = Cursor{Type: cursorType, Value: ""}.Encode()
		} else {
			prevCursor = Cursor{Type: cursorType, Value: id(items[prevStart-1])}.Encode()
		}
	}

	linkQuery := cloneValues(query)
	linkQuery.Set("limit", strconv.Itoa(limit))

	return Result[T]{
		Items:      page,
		Total:      len(items),
		NextCursor: nextCursor,
		PrevCursor: prevCursor,
		LinkHeader: BuildLinkHeader(baseURL, linkQuery, nextCursor, prevCursor),
	}
}
