package postgrest

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/labhacknexus/content-gateway/internal/model"
)

func TestCommentFindPostCommentsEmbedsAuthor(t *testing.T) {
	postID := uuid.New()
	db, captured := newTestStore(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[
			{"id":"`+uuid.New().String()+`","content":"nice","post_id":"`+postID.String()+`","user_id":"`+uuid.New().String()+`","profiles":{"username":"ann","avatar_url":null}}
		]`)
	})
	repo := newCommentRepo(db)

	comments, err := repo.FindPostComments(context.Background(), postID, 10, 0)
	if err != nil {
		t.Fatalf("FindPostComments returned error: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("got %d comments, want 1", len(comments))
	}
	if comments[0].Author.Username != "ann" {
		t.Errorf("author username = %q, want ann", comments[0].Author.Username)
	}

	query := *captured
	if got := query.Get("select"); got != "*,profiles(username,avatar_url)" {
		t.Errorf("select = %q, want the profiles embed", got)
	}
	if got := query.Get("post_id"); got != "eq."+postID.String() {
		t.Errorf("post_id filter = %q, want eq.%s", got, postID)
	}
	if got := query.Get("order"); got != "created_at.desc" {
		t.Errorf("order = %q, want created_at.desc", got)
	}
}

func TestCommentCreateStampsTimestamps(t *testing.T) {
	var gotMethod string
	db, _ := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		fmt.Fprint(w, `[{"id":"`+uuid.New().String()+`","content":"hello"}]`)
	})
	repo := newCommentRepo(db)

	created, err := repo.Create(context.Background(), model.Comment{
		Content: "hello",
		PostID:  uuid.New(),
		UserID:  uuid.New(),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if created.Content != "hello" {
		t.Errorf("content = %q, want hello", created.Content)
	}
}
