package pagination

import (
	"net/url"
	"strings"
	"testing"
)

func TestBuildLinkHeaderNextOnly(t *testing.T) {
	header := BuildLinkHeader("/v1/patients", nil, "next-cursor", "")

	if !strings.Contains(header, `rel="next"`) {
		t.Fatalf("expected next link, got %q", header)
	}
	if strings.Contains(header, `rel="prev"`) {
		t.Fatalf("expected no prev link, got %q", header)
	}
	if !strings.Contains(header, "cursor=next-cursor") {
		t.Fatalf("expected cursor param, got %q", header)
	}
}

func TestBuildLinkHeaderBothDirections(t *testing.T) {
	header := BuildLinkHeader("/v1/patients", nil, "n", "p")

	if !strings.Contains(header, `rel="next"`) || !strings.Contains(header, `rel="prev"`) {
		t.Fatalf("expected both links, got %q", header)
	}
	if !strings.Contains(header, ", ") {
		t.Fatalf("expected comma-separated links, got %q", header)
	}
}

func TestBuildLinkHeaderPreservesQuery(t *testing.T) {
	query := url.Values{}
	query.Set("city", "Pune")

	header := BuildLinkHeader("/v1/patients", query, "n", "")

	if !strings.Contains(header, "city=Pune") {
		t.Fatalf("expected city param preserved, got %q", header)
	}
	// Input query must not be mutated.
	if query.Get("cursor") != "" {
		t.Fatalf("expected original query untouched, got cursor=%q", query.Get("cursor"))
	}
}

func TestBuildLinkHeaderEmpty(t *testing.T) {
	if header := BuildLinkHeader("/v1/patients", nil, "", ""); header != "" {
		t.Fatalf("expected empty header, got %q", header)
	}
}
