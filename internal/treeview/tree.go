package treeview

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"video-share-api/internal/client"
	"video-share-api/internal/dto"
	"video-share-api/internal/response"
)

// Node is one rendered row of a comment thread
type Node struct {
	Comment *dto.CommentResponse
	Depth   int
}

// Tree holds the client-side state of one video's comment threads.
// At most one reply box and one edit form are open across the whole
// forest, so both ids live here rather than on individual nodes.
type Tree struct {
	api     client.CommentAPI
	videoID string

	roots         []*dto.CommentResponse
	activeReplyID *uuid.UUID
	editingID     *uuid.UUID
}

// NewTree creates an empty tree for a video. Call Load to populate it.
func NewTree(api client.CommentAPI, videoID string) *Tree {
	return &Tree{
		api:     api,
		videoID: videoID,
		roots:   []*dto.CommentResponse{},
	}
}

// Load fetches the full comment forest from the server. Any open reply
// box or edit form is closed because its target may no longer exist.
func (t *Tree) Load(ctx context.Context) error {
	roots, err := t.api.ListForVideo(ctx, t.videoID)
	if err != nil {
		return err
	}
	if roots == nil {
		roots = []*dto.CommentResponse{}
	}
	t.roots = roots
	t.activeReplyID = nil
	t.editingID = nil
	return nil
}

// Roots returns the top-level comments, newest first
func (t *Tree) Roots() []*dto.CommentResponse {
	return t.roots
}

// Flatten walks the forest iteratively and returns rows in display
// order: each root followed by its replies depth-first, replies oldest
// first. Depth on the stack is explicit, so reply chains of any length
// flatten without growing the call stack.
func (t *Tree) Flatten() []Node {
	var rows []Node
	// Push roots in reverse so the newest root pops first
	stack := make([]Node, 0, len(t.roots))
	for i := len(t.roots) - 1; i >= 0; i-- {
		stack = append(stack, Node{Comment: t.roots[i], Depth: 0})
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		rows = append(rows, n)
		for i := len(n.Comment.Replies) - 1; i >= 0; i-- {
			stack = append(stack, Node{Comment: n.Comment.Replies[i], Depth: n.Depth + 1})
		}
	}
	return rows
}

// Find returns the comment with the given id, or nil
func (t *Tree) Find(id uuid.UUID) *dto.CommentResponse {
	stack := append([]*dto.CommentResponse{}, t.roots...)
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if c.CommentID == id {
			return c
		}
		stack = append(stack, c.Replies...)
	}
	return nil
}

// ActiveReplyID returns the comment whose reply box is open, if any
func (t *Tree) ActiveReplyID() *uuid.UUID {
	return t.activeReplyID
}

// EditingID returns the comment being edited, if any
func (t *Tree) EditingID() *uuid.UUID {
	return t.editingID
}

// ToggleReplyBox opens the reply box under the given comment. Toggling
// the comment that already has it open closes it; opening it anywhere
// else moves the single box there.
func (t *Tree) ToggleReplyBox(id uuid.UUID) {
	if t.activeReplyID != nil && *t.activeReplyID == id {
		t.activeReplyID = nil
		return
	}
	target := id
	t.activeReplyID = &target
}

// CloseReplyBox closes the reply box wherever it is open
func (t *Tree) CloseReplyBox() {
	t.activeReplyID = nil
}

// BeginEdit opens the edit form on the given comment. Only one comment
// edits at a time, so any other open form closes.
func (t *Tree) BeginEdit(id uuid.UUID) bool {
	if t.Find(id) == nil {
		return false
	}
	target := id
	t.editingID = &target
	return true
}

// CancelEdit closes the edit form without saving
func (t *Tree) CancelEdit() {
	t.editingID = nil
}

// SaveEdit submits new text for the comment under edit and patches the
// local node on success. The edit form closes either way except on a
// transport error, where the user's draft should survive a retry.
func (t *Tree) SaveEdit(ctx context.Context, text string) error {
	if t.editingID == nil {
		return response.NewValidationError("No comment is being edited", "")
	}
	if strings.TrimSpace(text) == "" {
		return response.NewValidationError("Comment text is required", "")
	}

	updated, err := t.api.UpdateComment(ctx, *t.editingID, text)
	if err != nil {
		return err
	}

	if node := t.Find(*t.editingID); node != nil {
		node.Text = updated.Text
		node.UpdatedAt = updated.UpdatedAt
	}
	t.editingID = nil
	return nil
}

// PostComment submits a new top-level comment and prepends it locally,
// keeping roots newest first
func (t *Tree) PostComment(ctx context.Context, author, text, avatarColor string) (*dto.CommentResponse, error) {
	created, err := t.api.CreateComment(ctx, &dto.CreateCommentRequest{
		VideoID:     t.videoID,
		Author:      author,
		Text:        text,
		AvatarColor: avatarColor,
	})
	if err != nil {
		return nil, err
	}
	if created.Replies == nil {
		created.Replies = []*dto.CommentResponse{}
	}
	t.roots = append([]*dto.CommentResponse{created}, t.roots...)
	return created, nil
}

// PostReply submits a reply to the comment whose reply box is open and
// appends it locally, keeping replies oldest first. The box closes on
// success.
func (t *Tree) PostReply(ctx context.Context, author, text, avatarColor string) (*dto.CommentResponse, error) {
	if t.activeReplyID == nil {
		return nil, response.NewValidationError("No reply box is open", "")
	}

	created, err := t.api.CreateReply(ctx, *t.activeReplyID, &dto.CreateReplyRequest{
		Author:      author,
		Text:        text,
		AvatarColor: avatarColor,
	})
	if err != nil {
		return nil, err
	}
	if created.Replies == nil {
		created.Replies = []*dto.CommentResponse{}
	}

	if parent := t.Find(*t.activeReplyID); parent != nil {
		parent.Replies = append(parent.Replies, created)
	}
	t.activeReplyID = nil
	return created, nil
}

// Delete removes a comment and its subtree on the server, then patches
// the local forest. Reply boxes or edit forms inside the removed
// subtree close, since their target is gone.
func (t *Tree) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	deleted, err := t.api.DeleteComment(ctx, id)
	if err != nil {
		return 0, err
	}

	removed := t.removeLocal(id)
	if removed != nil {
		if t.activeReplyID != nil && t.contains(removed, *t.activeReplyID) {
			t.activeReplyID = nil
		}
		if t.editingID != nil && t.contains(removed, *t.editingID) {
			t.editingID = nil
		}
	}
	return deleted, nil
}

// removeLocal detaches the node from the forest and returns it
func (t *Tree) removeLocal(id uuid.UUID) *dto.CommentResponse {
	for i, root := range t.roots {
		if root.CommentID == id {
			t.roots = append(t.roots[:i], t.roots[i+1:]...)
			return root
		}
	}

	stack := append([]*dto.CommentResponse{}, t.roots...)
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i, reply := range c.Replies {
			if reply.CommentID == id {
				c.Replies = append(c.Replies[:i], c.Replies[i+1:]...)
				return reply
			}
		}
		stack = append(stack, c.Replies...)
	}
	return nil
}

// contains reports whether id is the given node or inside its subtree
func (t *Tree) contains(node *dto.CommentResponse, id uuid.UUID) bool {
	stack := []*dto.CommentResponse{node}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if c.CommentID == id {
			return true
		}
		stack = append(stack, c.Replies...)
	}
	return false
}
