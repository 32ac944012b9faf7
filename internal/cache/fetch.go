package cache

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

var fetchClient = &http.Client{Timeout: 15 * time.Second}

// FetchCover downloads a resolved cover URL into the cache and returns
// the local path. If the URL cannot be fetched and a distinct
// fallbackURL is given, the fallback is tried exactly once — never
// chained further, so a broken placeholder cannot loop.
func (m *Manager) FetchCover(ctx context.Context, key, coverURL, fallbackURL string) (string, error) {
	if m.HasCover(key) {
		return m.CoverPath(key), nil
	}

	path, err := m.download(ctx, key, coverURL)
	if err == nil {
		return path, nil
	}
	if fallbackURL == "" || fallbackURL == coverURL {
		return "", err
	}
	return m.download(ctx, key, fallbackURL)
}

func (m *Manager) download(ctx context.Context, key, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := fetchClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching cover: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching cover: status %d", resp.StatusCode)
	}
	return m.StoreCover(key, resp.Body)
}
