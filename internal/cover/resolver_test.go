package cover_test

import (
	"testing"

	"github.com/beyond-the-bookshelf/btbctl/internal/cover"
)

const (
	base        = "https://storage.example.com/object/public/"
	placeholder = base + "cover/placeholder.jpg"
)

func newResolver() cover.Resolver {
	return cover.New(base, "cover/", "cover/placeholder.jpg")
}

func TestResolve_Table(t *testing.T) {
	r := newResolver()

	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", placeholder},
		{"whitespace", "  ", placeholder},
		{"absolute http", "http://covers.example.org/a.jpg", "http://covers.example.org/a.jpg"},
		{"absolute https", "https://covers.example.org/a.jpg", "https://covers.example.org/a.jpg"},
		{"uppercase scheme", "HTTPS://covers.example.org/a.jpg", "HTTPS://covers.example.org/a.jpg"},
		{"storage path", "cover/123.jpg", base + "cover/123.jpg"},
		{"storage path leading slash", "/cover/123.jpg", base + "cover/123.jpg"},
		{"storage path double slash", "//cover/123.jpg", base + "cover/123.jpg"},
		{"unrecognized relative", "uploads/123.jpg", placeholder},
		{"bare filename", "123.jpg", placeholder},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Resolve(tc.raw); got != tc.want {
				t.Errorf("Resolve(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestResolve_BaseWithoutTrailingSlash(t *testing.T) {
	r := cover.New("https://storage.example.com/object/public", "cover/", "cover/placeholder.jpg")
	if got := r.Resolve("cover/1.jpg"); got != base+"cover/1.jpg" {
		t.Errorf("Resolve = %q, want %q", got, base+"cover/1.jpg")
	}
}

func TestPlaceholderURL(t *testing.T) {
	r := newResolver()
	if got := r.PlaceholderURL(); got != placeholder {
		t.Errorf("PlaceholderURL = %q, want %q", got, placeholder)
	}
}
