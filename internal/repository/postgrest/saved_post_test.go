package postgrest

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
)

func TestFindUserSavedPostsFlattensJoin(t *testing.T) {
	postID := uuid.New()
	authorID := uuid.New()
	db, captured := newTestStore(t, func(w http.ResponseWriter, _ *http.Request) {
		// Second row's post was deleted after being saved; its wrapper
		// carries a null embed and must be skipped.
		fmt.Fprintf(w, `[
			{"posts":{"id":%q,"title":"kept","content":"c","slug":"kept","author_id":%q,"published":true,"created_at":"2025-01-01T00:00:00Z","updated_at":"2025-01-01T00:00:00Z"}},
			{"posts":null}
		]`, postID.String(), authorID.String())
	})
	repo := newSavedPostRepo(db)

	userID := uuid.New()
	posts, err := repo.FindUserSavedPosts(context.Background(), userID)
	if err != nil {
		t.Fatalf("FindUserSavedPosts returned error: %v", err)
	}

	if len(posts) != 1 {
		t.Fatalf("len(posts) = %d, want 1 (null embed skipped)", len(posts))
	}
	if posts[0].ID != postID {
		t.Errorf("post ID = %s, want %s", posts[0].ID, postID)
	}
	if posts[0].Title != "kept" {
		t.Errorf("post title = %q, want %q", posts[0].Title, "kept")
	}

	query := *captured
	if got := query.Get("select"); got != "posts(*)" {
		t.Errorf("select = %q, want posts(*)", got)
	}
	if got := query.Get("user_id"); got != "eq."+userID.String() {
		t.Errorf("user_id filter = %q, want eq.%s", got, userID)
	}
}

func TestFindUserSavedPostsEmpty(t *testing.T) {
	db, _ := newTestStore(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[]`)
	})
	repo := newSavedPostRepo(db)

	posts, err := repo.FindUserSavedPosts(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("FindUserSavedPosts returned error: %v", err)
	}
	if posts == nil || len(posts) != 0 {
		t.Errorf("posts = %v, want empty non-nil slice", posts)
	}
}
