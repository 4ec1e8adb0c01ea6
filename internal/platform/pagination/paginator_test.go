package pagination

import (
	"fmt"
	"net/url"
	"strings"
	"testing"
)

type testItem struct {
	ID   string
	Name string
}

func makeTestItems(n int) []testItem {
	items := make([]testItem, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, testItem{
			ID:   fmt.Sprintf("item-%03d", i),
			Name: fmt.Sprintf("Item %d", i),
		})
	}
	return items
}

func TestPaginateFirstPage(t *testing.T) {
	items := makeTestItems(30)

	result := Paginate(
		items,
		Cursor{},
		10,
		"test",
		func(i testItem) string { return i.ID },
		"/items",
		nil,
	)

	if len(result.Items) != 10 {
		t.Fatalf("expected 10 items, got %d", len(result.Items))
	}
	if result.Total != 30 {
		t.Fatalf("expected total 30, got %d", result.Total)
	}
	if result.Items[0].ID != "item-001" {
		t.Fatalf("expected first item to be item-001, got %s", result.Items[0].ID)
	}
	if result.NextCursor == "" {
		t.Fatal("expected next cursor")
	}
	if result.PrevCursor != "" {
		t.Fatalf("expected no prev cursor, got %s", result.PrevCursor)
	}
}

func TestPaginateMiddlePage(t *testing.T) {
	items := makeTestItems(30)

	cursor := Cursor{Type: "test", Value: "item-010"}
	result := Paginate(
		items,
		cursor,
		10,
		"test",
		func(i testItem) string { return i.ID },
		"/items",
		nil,
	)

	if len(result.Items) != 10 {
		t.Fatalf("expected 10 items, got %d", len(result.Items))
	}
	if result.Items[0].ID != "item-011" {
		t.Fatalf("expected first item to be item-011, got %s", result.Items[0].ID)
	}
	if result.NextCursor == "" {
		t.Fatal("expected next cursor")
	}
	if result.PrevCursor == "" {
		t.Fatal("expected prev cursor")
	}
}

func TestPaginateLastPage(t *testing.T) {
	items := makeTestItems(30)

	cursor := Cursor{Type: "test", Value: "item-020"}
	result := Paginate(
		items,
		cursor,
		10,
		"test",
		func(i testItem) string { return i.ID },
		"/items",
		nil,
	)

	if len(result.Items) != 10 {
		t.Fatalf("expected 10 items, got %d", len(result.Items))
	}
	if result.Items[0].ID != "item-021" {
		t.Fatalf("expected first item to be item-021, got %s", result.Items[0].ID)
	}
	if result.NextCursor != "" {
		t.Fatalf("expected no next cursor, got %s", result.NextCursor)
	}
	if result.PrevCursor == "" {
		t.Fatal("expected prev cursor")
	}
}

func TestPaginateEmptyItems(t *testing.T) {
	var items []testItem

	result := Paginate(
		items,
		Cursor{},
		10,
		"test",
		func(i testItem) string { return i.ID },
		"/items",
		nil,
	)

	if len(result.Items) != 0 {
		t.Fatalf("expected 0 items, got %d", len(result.Items))
	}
	if result.Total != 0 {
		t.Fatalf("expected total 0, got %d", result.Total)
	}
	if result.NextCursor != "" {
		t.Fatalf("expected no next cursor, got %s", result.NextCursor)
	}
	if result.PrevCursor != "" {
		t.Fatalf("expected no prev cursor, got %s", result.PrevCursor)
	}
}

func TestPaginateWithQueryParams(t *testing.T) {
	items := makeTestItems(30)

	query := url.Values{}
	query.Set("city", "Guwahati")

	result := Paginate(
		items,
		Cursor{},
		10,
		"test",
		func(i testItem) string { return i.ID },
		"/items",
		query,
	)

	if result.LinkHeader == "" {
		t.Fatal("expected link header")
	}
	if !strings.Contains(result.LinkHeader, "city=Guwahati") {
		t.Fatalf("expected city in link header, got %s", result.LinkHeader)
	}
	if !strings.Contains(result.LinkHeader, "limit=10") {
		t.Fatalf("expected limit in link header, got %s", result.LinkHeader)
	}
}

func TestPaginateCursorNotFound(t *testing.T) {
	items := makeTestItems(10)

	cursor := Cursor{Type: "test", Value: "nonexistent"}
	result := Paginate(
		items,
		cursor,
		10,
		"test",
		func(i testItem) string { return i.ID },
		"/items",
		nil,
	)

	if len(result.Items) != 10 {
		t.Fatalf("expected 10 items when cursor not found (starts from beginning), got %d", len(result.Items))
	}
	if result.Items[0].ID != "item-001" {
		t.Fatalf("expected to start from beginning, got %s", result.Items[0].ID)
	}
}

func TestPaginatePrevCursorFirstPage(t *testing.T) {
	items := makeTestItems(30)

	cursor := Cursor{Type: "test", Value: "item-010"}
	result := Paginate(
		items,
		cursor,
		10,
		"test",
		func(i testItem) string { return i.ID },
		"/items",
		nil,
	)

	if result.PrevCursor == "" {
		t.Fatal("expected prev cursor for page 2")
	}

	prevDecoded, err := DecodeCursor(result.PrevCursor)
	if err != nil {
		t.Fatalf("failed to decode prev cursor: %v", err)
	}
	if prevDecoded.Value != "" {
		t.Fatalf("expected empty prev cursor value for going back to page 1, got %s", prevDecoded.Value)
	}
}
