package api

import "context"

// progressPayload is the body for a progress commit.
type progressPayload struct {
	BookID  string  `json:"book_id"`
	Percent float64 `json:"percent"`
}

// ratingPayload is the body for a star-rating submission.
type ratingPayload struct {
	BookID string `json:"book_id"`
	Rating int    `json:"rating"`
}

// SubmitProgress persists a committed percentage for a book. The caller
// treats this as best-effort: the visual indicator already reflects the
// new value and is not rolled back on failure.
func (c *Client) SubmitProgress(ctx context.Context, bookID string, percent float64) error {
	if !c.HasToken() {
		return ErrUnauthenticated
	}
	err := c.postJSON(ctx, c.url("api", "home", "progress"), progressPayload{
		BookID:  bookID,
		Percent: percent,
	})
	if err != nil {
		c.log.Warn("progress submit failed", "book", bookID, "err", err)
	}
	return err
}

// SubmitRating hands a 1-5 star rating to the server. Invoked at most
// once per successful rating-modal submit; no retry or confirmation
// semantics beyond the handoff.
func (c *Client) SubmitRating(ctx context.Context, bookID string, stars int) error {
	if !c.HasToken() {
		return ErrUnauthenticated
	}
	err := c.postJSON(ctx, c.url("api", "home", "ratings"), ratingPayload{
		BookID: bookID,
		Rating: stars,
	})
	if err != nil {
		c.log.Warn("rating submit failed", "book", bookID, "err", err)
	}
	return err
}
