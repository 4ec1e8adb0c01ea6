package pagination

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildLinkHeader renders RFC 8288 next/prev links for the given cursors.
// Existing query parameters (filters, limit) are preserved in each link so
// clients can follow them without reassembling the request.
func BuildLinkHeader(baseURL string, query url.Values, nextCursor, prevCursor string) string {
	var links []string
	if nextCursor != "" {
		links = append(links, formatLink(baseURL, query, nextCursor, "next"))
	}
	if prevCursor != "" {
		links = append(links, formatLink(baseURL, query, prevCursor, "prev"))
	}
	return strings.Join(links, ", ")
}

func formatLink(baseURL string, query url.Values, cursor, rel string) string {
	q := cloneValues(query)
	q.Set("cursor", cursor)
	return fmt.Sprintf("<%s?%s>; rel=%q", baseURL, q.Encode(), rel)
}

func cloneValues(v url.Values) url.Values {
	if v == nil {
		return make(url.Values)
	}
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
