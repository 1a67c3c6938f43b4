package store

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

// newTestClient points a client at an httptest server that records the last
// request it saw.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *http.Request) {
	t.Helper()

	var captured http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = *r
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	return New(srv.URL, "test-anon-key", zap.NewNop()), &captured
}

func TestQueryURL(t *testing.T) {
	tests := []struct {
		name  string
		build func(c *Client) *Query
		want  string
	}{
		{
			name: "table only",
			build: func(c *Client) *Query {
				return c.From("posts")
			},
			want: "/rest/v1/posts",
		},
		{
			name: "filters order and pagination",
			build: func(c *Client) *Query {
				return c.From("posts").
					Select("*").
					Eq("published", "true").
					Order("created_at", true).
					Limit(10).
					Offset(20)
			},
			want: "/rest/v1/posts?limit=10&offset=20&order=created_at.desc&published=eq.true&select=%2A",
		},
		{
			name: "embedded select",
			build: func(c *Client) *Query {
				return c.From("comments").
					Select("*,profiles(username,avatar_url)").
					Eq("post_id", "abc")
			},
			want: "/rest/v1/comments?post_id=eq.abc&select=%2A%2Cprofiles%28username%2Cavatar_url%29",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, captured := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, `[]`)
			})

			var dest []map[string]any
			if err := tt.build(client).Execute(context.Background(), &dest); err != nil {
				t.Fatalf("Execute returned error: %v", err)
			}

			if got := captured.URL.RequestURI(); got != tt.want {
				t.Errorf("request URI = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQueryHeaders(t *testing.T) {
	client, captured := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{}`)
	})

	var dest map[string]any
	if err := client.From("posts").Eq("id", "x").Single().Execute(context.Background(), &dest); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if got := captured.Header.Get("apikey"); got != "test-anon-key" {
		t.Errorf("apikey header = %q, want %q", got, "test-anon-key")
	}
	if got := captured.Header.Get("Authorization"); got != "Bearer test-anon-key" {
		t.Errorf("Authorization header = %q, want %q", got, "Bearer test-anon-key")
	}
	if got := captured.Header.Get("Accept"); got != "application/vnd.pgrst.object+json" {
		t.Errorf("Accept header = %q, want object mode", got)
	}
}

func TestInsertSendsRepresentationPreference(t *testing.T) {
	client, captured := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `[{"id":"1"}]`)
	})

	var created []map[string]any
	if err := client.From("posts").Insert(context.Background(), map[string]any{"title": "t"}, &created); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	if captured.Method != http.MethodPost {
		t.Errorf("method = %s, want POST", captured.Method)
	}
	if got := captured.Header.Get("Prefer"); got != "return=representation" {
		t.Errorf("Prefer header = %q, want return=representation", got)
	}
	if got := captured.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type header = %q, want application/json", got)
	}
	if len(created) != 1 || created[0]["id"] != "1" {
		t.Errorf("created = %v, want one row with id 1", created)
	}
}

func TestSingleMissingRowIsNotFound(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusNotAcceptable} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(status)
			})

			var dest map[string]any
			err := client.From("posts").Eq("id", "missing").Single().Execute(context.Background(), &dest)
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("err = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestRejectedWriteDetection(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, `{"message":"duplicate key"}`)
	})

	err := client.From("saved_posts").Insert(context.Background(), map[string]any{}, nil)
	if err == nil {
		t.Fatal("Insert succeeded, want error")
	}
	if !IsRejectedWrite(err) {
		t.Errorf("IsRejectedWrite = false for %v, want true", err)
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("err = %v, want *RequestError", err)
	}
	if reqErr.Status != http.StatusConflict {
		t.Errorf("status = %d, want %d", reqErr.Status, http.StatusConflict)
	}
}

func TestServerFailureIsNotRejectedWrite(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := client.From("posts").Insert(context.Background(), map[string]any{}, nil)
	if err == nil {
		t.Fatal("Insert succeeded, want error")
	}
	if IsRejectedWrite(err) {
		t.Errorf("IsRejectedWrite = true for %v, want false", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, must not be ErrNotFound", err)
	}
}

func TestDeleteBuildsFilteredRequest(t *testing.T) {
	client, captured := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.From("saved_posts").Eq("post_id", "p1").Eq("user_id", "u1").Delete(context.Background())
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if captured.Method != http.MethodDelete {
		t.Errorf("method = %s, want DELETE", captured.Method)
	}
	query := captured.URL.Query()
	if got := query.Get("post_id"); got != "eq.p1" {
		t.Errorf("post_id filter = %q, want eq.p1", got)
	}
	if got := query.Get("user_id"); got != "eq.u1" {
		t.Errorf("user_id filter = %q, want eq.u1", got)
	}
}
