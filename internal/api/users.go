package api

import (
	"context"
	"fmt"
)

// Me returns the signed-in user's identifier from /api/users/me. The
// payload's id field varies by deployment (user_id or id, string or
// number), so both are accepted. Failures degrade at the caller to
// "unknown user" and must never block list loading.
func (c *Client) Me(ctx context.Context) (string, error) {
	if !c.HasToken() {
		return "", ErrUnauthenticated
	}

	var payload map[string]interface{}
	if err := c.getJSON(ctx, c.url("api", "users", "me"), &payload); err != nil {
		return "", err
	}

	for _, key := range []string{"user_id", "id"} {
		if id := stringField(payload, key); id != "" {
			return id, nil
		}
	}
	return "", fmt.Errorf("me response has no user identifier")
}

// stringField extracts a string or numeric field as a string.
func stringField(m map[string]interface{}, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		return ""
	}
}
