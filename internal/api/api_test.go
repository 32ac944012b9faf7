package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/beyond-the-bookshelf/btbctl/internal/api"
	"github.com/beyond-the-bookshelf/btbctl/internal/shelf"
)

const testToken = "tok-123"

func readingSel() shelf.Selector { return shelf.Selector{Kind: shelf.ListReading} }

// --- LoadShelf priority branches ---

func TestLoadShelf_NoSelection_NoNetworkCall(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	c := api.New(testToken, srv.URL, nil)
	_, err := c.LoadShelf(context.Background(), shelf.Selector{})
	if !errors.Is(err, api.ErrNoSelection) {
		t.Fatalf("err = %v, want ErrNoSelection", err)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Error("no-selection load must not hit the network")
	}
}

func TestLoadShelf_NoToken_NoNetworkCall(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	c := api.New("", srv.URL, nil)
	_, err := c.LoadShelf(context.Background(), readingSel())
	if !errors.Is(err, api.ErrUnauthenticated) {
		t.Fatalf("err = %v, want ErrUnauthenticated", err)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Error("unauthenticated load must not hit the network")
	}
}

func TestLoadShelf_Transport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := api.New(testToken, srv.URL, nil)
	_, err := c.LoadShelf(context.Background(), readingSel())
	if !errors.Is(err, api.ErrTransport) {
		t.Fatalf("err = %v, want wrapped ErrTransport", err)
	}
}

func TestLoadShelf_StatusMapping(t *testing.T) {
	cases := []struct {
		status int
		check  func(error) bool
		name   string
	}{
		{http.StatusForbidden, func(e error) bool { return errors.Is(e, api.ErrForbidden) }, "403"},
		{http.StatusNotFound, func(e error) bool { return errors.Is(e, api.ErrNotFound) }, "404"},
		{http.StatusUnauthorized, func(e error) bool { return errors.Is(e, api.ErrUnauthenticated) }, "401"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			c := api.New(testToken, srv.URL, nil)
			_, err := c.LoadShelf(context.Background(), readingSel())
			if err == nil || !tc.check(err) {
				t.Errorf("status %d -> err %v", tc.status, err)
			}
		})
	}
}

func TestLoadShelf_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := api.New(testToken, srv.URL, nil)
	_, err := c.LoadShelf(context.Background(), readingSel())
	var se *api.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if se.Status != http.StatusBadGateway {
		t.Errorf("Status = %d, want 502", se.Status)
	}
}

func TestLoadShelf_EmptyIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"Empty Shelf","items":[]}`))
	}))
	defer srv.Close()

	c := api.New(testToken, srv.URL, nil)
	s, err := c.LoadShelf(context.Background(), readingSel())
	if err != nil {
		t.Fatalf("LoadShelf: %v", err)
	}
	if len(s.Items) != 0 {
		t.Errorf("expected 0 items, got %d", len(s.Items))
	}
}

func TestLoadShelf_Success(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"name":"My Shelf","items":[
			{"title":"A","edition_id":1,"page_count":150,"progress_percent":30},
			{"title":"","work_id":2}
		]}`))
	}))
	defer srv.Close()

	c := api.New(testToken, srv.URL, nil)
	s, err := c.LoadShelf(context.Background(), shelf.Selector{ShelfID: "7"})
	if err != nil {
		t.Fatalf("LoadShelf: %v", err)
	}
	if gotPath != "/api/home/shelves/7/items?limit=100" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer "+testToken {
		t.Errorf("auth header = %q", gotAuth)
	}
	if s.Name != "My Shelf" {
		t.Errorf("Name = %q", s.Name)
	}
	if len(s.Items) != 2 {
		t.Fatalf("items = %d", len(s.Items))
	}
	if s.Items[1].Title != shelf.DefaultTitle {
		t.Errorf("missing title should normalize to %q, got %q", shelf.DefaultTitle, s.Items[1].Title)
	}
}

func TestLoadShelf_NamedListPaths(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	c := api.New(testToken, srv.URL, nil)

	if _, err := c.LoadShelf(context.Background(), shelf.Selector{Kind: shelf.ListReading}); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/api/home/reading_list/items" {
		t.Errorf("reading path = %q", gotPath)
	}

	if _, err := c.LoadShelf(context.Background(), shelf.Selector{Kind: shelf.ListCompleted}); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/api/home/completed_list/items" {
		t.Errorf("completed path = %q", gotPath)
	}
}

// --- Me ---

func TestMe_AcceptsUserIDOrID(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{`{"user_id": "u-9"}`, "u-9"},
		{`{"id": 42}`, "42"},
		{`{"user_id": "", "id": "abc"}`, "abc"},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(tc.body))
		}))
		c := api.New(testToken, srv.URL, nil)
		got, err := c.Me(context.Background())
		srv.Close()
		if err != nil {
			t.Errorf("Me(%s): %v", tc.body, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Me(%s) = %q, want %q", tc.body, got, tc.want)
		}
	}
}

func TestMe_FailureDoesNotPanic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := api.New(testToken, srv.URL, nil)
	if _, err := c.Me(context.Background()); err == nil {
		t.Error("expected error on 500")
	}
}

// --- Submissions ---

func TestSubmitRating_PostsOnce(t *testing.T) {
	var hits int32
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := api.New(testToken, srv.URL, nil)
	if err := c.SubmitRating(context.Background(), "edition:42", 4); err != nil {
		t.Fatalf("SubmitRating: %v", err)
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Errorf("hits = %d, want 1", hits)
	}
	if gotPath != "/api/home/ratings" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestSubmitProgress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/home/progress" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := api.New(testToken, srv.URL, nil)
	if err := c.SubmitProgress(context.Background(), "work:7", 57.6); err != nil {
		t.Fatalf("SubmitProgress: %v", err)
	}
}

// --- Message mapping ---

func TestMessage_FixedStrings(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{api.ErrNoSelection, "No list selected."},
		{api.ErrUnauthenticated, "Please log in to view this list."},
		{api.ErrForbidden, "You don't have access to this list. Please log in as the correct user."},
		{api.ErrNotFound, "This list could not be found."},
		{&api.StatusError{Status: 500}, "Could not load books for this list."},
		{api.ErrTransport, "Something went wrong loading this list."},
		{errors.New("surprise"), "Something went wrong loading this list."},
	}
	for _, tc := range cases {
		if got := api.Message(tc.err); got != tc.want {
			t.Errorf("Message(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
