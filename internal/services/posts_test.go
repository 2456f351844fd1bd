package services

import (
	"errors"
	"testing"
)

func TestPostCreateRequiresAdmin(t *testing.T) {
	database := newTestDB(t)
	svc := NewPostService(database)
	user := newTestUser(t, database, "alice", false)

	if _, err := svc.Create(user, "Title", "local", "Body", false); !errors.Is(err, ErrForbidden) {
		t.Errorf("got %v, want ErrForbidden", err)
	}
}

func TestPostListFeaturedFirstWithVisibleCounts(t *testing.T) {
	database := newTestDB(t)
	engine := newTestEngine(t, database)
	posts := NewPostService(database)
	comments := NewCommentService(database, engine)

	admin := newTestUser(t, database, "root", true)
	reader := newTestUser(t, database, "alice", false)

	plain, err := posts.Create(admin, "Plain story", "local", "Body", false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	featured, err := posts.Create(admin, "Featured story", "local", "Body", true)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := comments.Create(reader, plain.Pid, "", "visible comment"); err != nil {
		t.Fatalf("Create comment: %v", err)
	}
	banned := newTestUser(t, database, "banned", false)
	banned.IsShadowBanned = true
	if err := database.Save(banned).Error; err != nil {
		t.Fatalf("save user: %v", err)
	}
	if _, err := comments.Create(banned, plain.Pid, "", "hidden comment"); err != nil {
		t.Fatalf("Create hidden comment: %v", err)
	}

	list, err := posts.List(10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d posts, want 2", len(list))
	}
	if list[0].Pid != featured.Pid {
		t.Errorf("featured post should sort first")
	}
	for _, p := range list {
		if p.Pid == plain.Pid && p.CommentCount != 1 {
			t.Errorf("comment count = %d, hidden comments must not be counted", p.CommentCount)
		}
	}
}

func TestGetByPidMissing(t *testing.T) {
	database := newTestDB(t)
	svc := NewPostService(database)

	if _, err := svc.GetByPid("nosuchid"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestToggleLike(t *testing.T) {
	database := newTestDB(t)
	svc := NewPostService(database)
	admin := newTestUser(t, database, "root", true)
	user := newTestUser(t, database, "alice", false)

	post, err := svc.Create(admin, "Title", "local", "Body", false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	liked, err := svc.ToggleLike(user, post.Pid)
	if err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if !liked {
		t.Errorf("first toggle should like")
	}

	fresh, err := svc.GetByPid(post.Pid)
	if err != nil {
		t.Fatalf("GetByPid: %v", err)
	}
	if fresh.LikeCount != 1 {
		t.Errorf("like count = %d, want 1", fresh.LikeCount)
	}

	liked, err = svc.ToggleLike(user, post.Pid)
	if err != nil {
		t.Fatalf("second ToggleLike: %v", err)
	}
	if liked {
		t.Errorf("second toggle should unlike")
	}

	fresh, err = svc.GetByPid(post.Pid)
	if err != nil {
		t.Fatalf("GetByPid: %v", err)
	}
	if fresh.LikeCount != 0 {
		t.Errorf("like count = %d, want 0", fresh.LikeCount)
	}
}
