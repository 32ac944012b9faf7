// Package cover maps a book's raw cover reference onto a displayable URL.
package cover

import "strings"

// Resolver turns a possibly-relative or missing cover reference into an
// absolute URL. It is the single source of truth for cover display: callers
// that fail to fetch the resolved URL fall back to PlaceholderURL exactly
// once.
type Resolver struct {
	baseURL     string // public storage base, always with trailing slash
	pathPrefix  string // recognized storage namespace, e.g. "cover/"
	placeholder string // path under baseURL for the fallback image
}

// New creates a Resolver for the given storage base URL, recognized path
// prefix, and placeholder path.
func New(baseURL, pathPrefix, placeholder string) Resolver {
	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return Resolver{
		baseURL:     baseURL,
		pathPrefix:  pathPrefix,
		placeholder: placeholder,
	}
}

// Resolve maps raw onto an absolute URL. Absent or empty references and
// paths outside the recognized storage namespace resolve to the
// placeholder; fully-qualified http(s) URLs pass through unchanged.
// Resolve is total: every input yields a usable URL.
func (r Resolver) Resolve(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return r.PlaceholderURL()
	}

	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return raw
	}

	path := strings.TrimLeft(raw, "/")
	if r.pathPrefix != "" && strings.HasPrefix(path, r.pathPrefix) {
		return r.baseURL + path
	}

	return r.PlaceholderURL()
}

// PlaceholderURL returns the fallback cover URL.
func (r Resolver) PlaceholderURL() string {
	return r.baseURL + strings.TrimLeft(r.placeholder, "/")
}
