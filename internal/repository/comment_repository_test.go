package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"video-share-api/internal/domain"
)

func setupCommentTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	// Create comments table for SQLite compatibility
	db.Exec(`CREATE TABLE comments (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		deleted_at DATETIME,
		video_id TEXT NOT NULL,
		author TEXT NOT NULL,
		text TEXT NOT NULL,
		avatar_color TEXT,
		parent_id TEXT
	)`)
	db.Exec(`CREATE INDEX idx_comments_video_id ON comments(video_id)`)
	db.Exec(`CREATE INDEX idx_comments_parent_id ON comments(parent_id)`)

	return db
}

func mustCreateComment(t *testing.T, repo CommentRepository, videoID, author, text string, parentID *uuid.UUID) *domain.Comment {
	t.Helper()
	comment := &domain.Comment{
		VideoID:  videoID,
		Author:   author,
		Text:     text,
		ParentID: parentID,
	}
	if err := repo.Create(context.Background(), comment); err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}
	return comment
}

func TestCommentRepository_CreateAndFindByID(t *testing.T) {
	db := setupCommentTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	created := mustCreateComment(t, repo, "video-1", "alice", "first!", nil)

	if created.ID == uuid.Nil {
		t.Fatal("expected ID to be assigned on create")
	}

	found, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.Text != "first!" {
		t.Errorf("expected text 'first!', got %q", found.Text)
	}
	if found.ParentID != nil {
		t.Errorf("expected nil parent for root comment, got %v", found.ParentID)
	}
}

func TestCommentRepository_FindByID_NotFound(t *testing.T) {
	db := setupCommentTestDB(t)
	repo := NewCommentRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	if err != gorm.ErrRecordNotFound {
		t.Errorf("expected gorm.ErrRecordNotFound, got %v", err)
	}
}

func TestCommentRepository_FindRootsByVideoID_Ordering(t *testing.T) {
	db := setupCommentTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	// Insert with explicit timestamps so ordering is deterministic
	base := time.Now().Add(-time.Hour)
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		comment := &domain.Comment{
			BaseModel: domain.BaseModel{
				ID:        uuid.New(),
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
				UpdatedAt: base.Add(time.Duration(i) * time.Minute),
			},
			VideoID: "video-1",
			Author:  "alice",
			Text:    "comment",
		}
		if err := db.Create(comment).Error; err != nil {
			t.Fatalf("failed to insert comment: %v", err)
		}
		ids = append(ids, comment.ID)
	}

	// A reply and a different video's comment must not appear
	mustCreateComment(t, repo, "video-1", "bob", "reply", &ids[0])
	mustCreateComment(t, repo, "video-2", "carol", "other video", nil)

	roots, err := repo.FindRootsByVideoID(ctx, "video-1")
	if err != nil {
		t.Fatalf("FindRootsByVideoID failed: %v", err)
	}
	if len(roots) != 3 {
		t.Fatalf("expected 3 roots, got %d", len(roots))
	}

	// Newest first
	for i := 0; i < len(roots)-1; i++ {
		if roots[i].CreatedAt.Before(roots[i+1].CreatedAt) {
			t.Errorf("roots not in newest-first order at index %d", i)
		}
	}
	if roots[0].ID != ids[2] {
		t.Errorf("expected newest root first, got %v", roots[0].ID)
	}
}

func TestCommentRepository_FindByParentIDs_Ordering(t *testing.T) {
	db := setupCommentTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	root := mustCreateComment(t, repo, "video-1", "alice", "root", nil)

	base := time.Now().Add(-time.Hour)
	var replyIDs []uuid.UUID
	for i := 0; i < 3; i++ {
		reply := &domain.Comment{
			BaseModel: domain.BaseModel{
				ID:        uuid.New(),
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
				UpdatedAt: base.Add(time.Duration(i) * time.Minute),
			},
			VideoID:  "video-1",
			Author:   "bob",
			Text:     "reply",
			ParentID: &root.ID,
		}
		if err := db.Create(reply).Error; err != nil {
			t.Fatalf("failed to insert reply: %v", err)
		}
		replyIDs = append(replyIDs, reply.ID)
	}

	replies, err := repo.FindByParentIDs(ctx, []uuid.UUID{root.ID})
	if err != nil {
		t.Fatalf("FindByParentIDs failed: %v", err)
	}
	if len(replies) != 3 {
		t.Fatalf("expected 3 replies, got %d", len(replies))
	}

	// Oldest first
	if replies[0].ID != replyIDs[0] {
		t.Errorf("expected oldest reply first, got %v", replies[0].ID)
	}
	for i := 0; i < len(replies)-1; i++ {
		if replies[i].CreatedAt.After(replies[i+1].CreatedAt) {
			t.Errorf("replies not in oldest-first order at index %d", i)
		}
	}
}

func TestCommentRepository_FindByParentIDs_Empty(t *testing.T) {
	db := setupCommentTestDB(t)
	repo := NewCommentRepository(db)

	replies, err := repo.FindByParentIDs(context.Background(), nil)
	if err != nil {
		t.Fatalf("FindByParentIDs failed: %v", err)
	}
	if len(replies) != 0 {
		t.Errorf("expected no replies, got %d", len(replies))
	}
}

func TestCommentRepository_UpdateText(t *testing.T) {
	db := setupCommentTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	comment := mustCreateComment(t, repo, "video-1", "alice", "original", nil)

	updated, err := repo.UpdateText(ctx, comment.ID, "edited")
	if err != nil {
		t.Fatalf("UpdateText failed: %v", err)
	}
	if updated.Text != "edited" {
		t.Errorf("expected updated text 'edited', got %q", updated.Text)
	}
	if updated.Author != "alice" || updated.VideoID != "video-1" {
		t.Error("UpdateText must not change other fields")
	}

	_, err = repo.UpdateText(ctx, uuid.New(), "ghost")
	if err != gorm.ErrRecordNotFound {
		t.Errorf("expected gorm.ErrRecordNotFound for missing comment, got %v", err)
	}
}

func TestCommentRepository_DeleteSubtree(t *testing.T) {
	db := setupCommentTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	// root -> child -> grandchild, plus an unrelated sibling thread
	root := mustCreateComment(t, repo, "video-1", "alice", "root", nil)
	child := mustCreateComment(t, repo, "video-1", "bob", "child", &root.ID)
	mustCreateComment(t, repo, "video-1", "carol", "grandchild", &child.ID)
	other := mustCreateComment(t, repo, "video-1", "dave", "other thread", nil)

	deleted, err := repo.DeleteSubtree(ctx, root.ID)
	if err != nil {
		t.Fatalf("DeleteSubtree failed: %v", err)
	}
	if deleted != 3 {
		t.Errorf("expected 3 rows deleted, got %d", deleted)
	}

	// The unrelated thread survives
	if _, err := repo.FindByID(ctx, other.ID); err != nil {
		t.Errorf("unrelated comment should survive: %v", err)
	}

	// All three rows in the subtree are gone
	for _, id := range []uuid.UUID{root.ID, child.ID} {
		if _, err := repo.FindByID(ctx, id); err != gorm.ErrRecordNotFound {
			t.Errorf("expected %v to be deleted, got err=%v", id, err)
		}
	}
}

func TestCommentRepository_DeleteSubtree_Idempotent(t *testing.T) {
	db := setupCommentTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	root := mustCreateComment(t, repo, "video-1", "alice", "root", nil)

	deleted, err := repo.DeleteSubtree(ctx, root.ID)
	if err != nil {
		t.Fatalf("first DeleteSubtree failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("expected 1 row deleted, got %d", deleted)
	}

	// Second delete of the same ID removes nothing and does not error
	deleted, err = repo.DeleteSubtree(ctx, root.ID)
	if err != nil {
		t.Fatalf("repeat DeleteSubtree failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("expected 0 rows deleted on repeat, got %d", deleted)
	}
}

func TestCommentRepository_DeleteSubtree_DeepChain(t *testing.T) {
	db := setupCommentTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	// A linear chain far deeper than any sane call stack recursion budget
	const depth = 200
	root := mustCreateComment(t, repo, "video-1", "alice", "level 0", nil)
	parentID := root.ID
	for i := 1; i < depth; i++ {
		child := mustCreateComment(t, repo, "video-1", "alice", "level n", &parentID)
		parentID = child.ID
	}

	deleted, err := repo.DeleteSubtree(ctx, root.ID)
	if err != nil {
		t.Fatalf("DeleteSubtree failed on deep chain: %v", err)
	}
	if deleted != depth {
		t.Errorf("expected %d rows deleted, got %d", depth, deleted)
	}
}

func TestCommentRepository_FindOrphanIDs(t *testing.T) {
	db := setupCommentTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	root := mustCreateComment(t, repo, "video-1", "alice", "root", nil)
	attached := mustCreateComment(t, repo, "video-1", "bob", "attached", &root.ID)

	// Manufacture an orphan by pointing at a parent that never existed
	ghostParent := uuid.New()
	orphan := mustCreateComment(t, repo, "video-1", "carol", "orphan", &ghostParent)

	ids, err := repo.FindOrphanIDs(ctx, 0)
	if err != nil {
		t.Fatalf("FindOrphanIDs failed: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("expected 1 orphan, got %d", len(ids))
	}
	if ids[0] != orphan.ID {
		t.Errorf("expected orphan %v, got %v", orphan.ID, ids[0])
	}

	// Attached reply and root are untouched
	if _, err := repo.FindByID(ctx, attached.ID); err != nil {
		t.Errorf("attached reply should not be an orphan: %v", err)
	}
}

func TestCommentRepository_CountByVideoID(t *testing.T) {
	db := setupCommentTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	root := mustCreateComment(t, repo, "video-1", "alice", "root", nil)
	mustCreateComment(t, repo, "video-1", "bob", "reply", &root.ID)
	mustCreateComment(t, repo, "video-2", "carol", "other", nil)

	count, err := repo.CountByVideoID(ctx, "video-1")
	if err != nil {
		t.Fatalf("CountByVideoID failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 comments for video-1, got %d", count)
	}
}
