// Package thread holds the two-level comment/reply tree attached to a post
// or clip, together with the reply presentation state of the comments sheet
// (expanded rows, the active reply composer and per-comment reply drafts).
package thread

import (
	"fmt"
	"strings"
	"time"

	"abstract-main/pkg/reactive"

	"github.com/google/uuid"
)

type Comment struct {
	ID        string        `json:"id"`
	Author    string        `json:"username"`
	Text      string        `json:"text"`
	Like      reactive.Like `json:"like"`
	Replies   []*Comment    `json:"replies"`
	CreatedAt time.Time     `json:"created_at"`
}

func (c *Comment) ids() []string {
	ids := make([]string, 0, 1+len(c.Replies))
	ids = append(ids, c.ID)
	for _, r := range c.Replies {
		ids = append(ids, r.ID)
	}
	return ids
}

func NewComment(author, text string) *Comment {
	return &Comment{
		ID:        uuid.New().String(),
		Author:    author,
		Text:      text,
		Replies:   []*Comment{},
		CreatedAt: time.Now(),
	}
}

// Thread is not safe for concurrent use.
type Thread struct {
	kind     reactive.Kind
	comments []*Comment

	expanded    map[string]bool
	replyTarget string
	drafts      map[string]string

	guard     reactive.Affinity
	observers reactive.Observers[reactive.Change]
}

// New returns an empty thread. kind is copied into change notifications.
// Existing comments are loaded with Append so their ids are checked.
func New(kind reactive.Kind) *Thread {
	return &Thread{
		kind:     kind,
		expanded: make(map[string]bool),
		drafts:   make(map[string]string),
	}
}

func (t *Thread) Subscribe(fn func(reactive.Change)) func() {
	return t.observers.Subscribe(fn)
}

func (t *Thread) commit(fn func() (reactive.Change, error)) error {
	return t.guard.Commit(&t.observers, fn)
}

func blank(text string) bool {
	return strings.TrimSpace(text) == ""
}

func (t *Thread) indexOf(id string) int {
	for i, c := range t.comments {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// AddTopLevel appends a new comment with no likes and no replies.
func (t *Thread) AddTopLevel(author, text string) (*Comment, error) {
	if blank(text) {
		return nil, reactive.ErrEmptyText
	}
	c := NewComment(author, text)
	err := t.commit(func() (reactive.Change, error) {
		t.comments = append(t.comments, c)
		return reactive.NewChange(t.kind, reactive.OpComment, c.ID), nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Append adds an already built comment, replies included, at the end of the
// thread. No id of c or its replies may already be present anywhere in the
// thread or repeat within c.
func (t *Thread) Append(c *Comment) error {
	if c == nil {
		return fmt.Errorf("comment is nil")
	}
	if blank(c.Text) {
		return reactive.ErrEmptyText
	}
	for _, r := range c.Replies {
		if r == nil {
			return fmt.Errorf("reply of %s is nil", c.ID)
		}
		if blank(r.Text) {
			return fmt.Errorf("reply %s: %w", r.ID, reactive.ErrEmptyText)
		}
	}
	return t.commit(func() (reactive.Change, error) {
		seen := make(map[string]bool, 1+len(c.Replies))
		for _, id := range c.ids() {
			if seen[id] || t.find(id) != nil {
				return reactive.Change{}, fmt.Errorf("comment %s: %w", id, reactive.ErrDuplicateIdentity)
			}
			seen[id] = true
		}
		if c.Replies == nil {
			c.Replies = []*Comment{}
		}
		c.Like.Normalize()
		for _, r := range c.Replies {
			r.Like.Normalize()
		}
		t.comments = append(t.comments, c)
		return reactive.NewChange(t.kind, reactive.OpComment, c.ID), nil
	})
}

// AddReply appends a reply under parentID. On success the parent is
// expanded, the reply composer is closed and the parent's draft cleared.
func (t *Thread) AddReply(parentID, author, text string) (*Comment, error) {
	if blank(text) {
		return nil, reactive.ErrEmptyText
	}
	r := NewComment(author, text)
	err := t.commit(func() (reactive.Change, error) {
		i := t.indexOf(parentID)
		if i < 0 {
			return reactive.Change{}, fmt.Errorf("comment %s: %w", parentID, reactive.ErrNotFound)
		}
		t.comments[i].Replies = append(t.comments[i].Replies, r)
		t.expanded[parentID] = true
		t.replyTarget = ""
		delete(t.drafts, parentID)
		return reactive.NewChange(t.kind, reactive.OpComment, r.ID), nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ToggleLike toggles the like on a top-level comment or, failing that, on
// a reply with the given id.
func (t *Thread) ToggleLike(commentID string) (bool, error) {
	var liked bool
	err := t.commit(func() (reactive.Change, error) {
		c := t.find(commentID)
		if c == nil {
			return reactive.Change{}, fmt.Errorf("comment %s: %w", commentID, reactive.ErrNotFound)
		}
		liked = c.Like.Toggle()
		return reactive.NewChange(t.kind, reactive.OpLike, commentID), nil
	})
	return liked, err
}

func (t *Thread) ToggleReplyLike(parentID string, replyIndex int) (bool, error) {
	var liked bool
	err := t.commit(func() (reactive.Change, error) {
		i := t.indexOf(parentID)
		if i < 0 {
			return reactive.Change{}, fmt.Errorf("comment %s: %w", parentID, reactive.ErrNotFound)
		}
		replies := t.comments[i].Replies
		if replyIndex < 0 || replyIndex >= len(replies) {
			return reactive.Change{}, fmt.Errorf("reply %d of %s: %w", replyIndex, parentID, reactive.ErrNotFound)
		}
		r := replies[replyIndex]
		liked = r.Like.Toggle()
		return reactive.NewChange(t.kind, reactive.OpLike, r.ID), nil
	})
	return liked, err
}

// Delete removes a top-level comment together with all of its replies.
func (t *Thread) Delete(commentID string) error {
	return t.commit(func() (reactive.Change, error) {
		i := t.indexOf(commentID)
		if i < 0 {
			return reactive.Change{}, fmt.Errorf("comment %s: %w", commentID, reactive.ErrNotFound)
		}
		t.comments = append(t.comments[:i:i], t.comments[i+1:]...)
		delete(t.expanded, commentID)
		delete(t.drafts, commentID)
		if t.replyTarget == commentID {
			t.replyTarget = ""
		}
		return reactive.NewChange(t.kind, reactive.OpDelete, commentID), nil
	})
}

func (t *Thread) SetExpanded(commentID string, expanded bool) {
	_ = t.commit(func() (reactive.Change, error) {
		op := reactive.OpCollapse
		if expanded {
			t.expanded[commentID] = true
			op = reactive.OpExpand
		} else {
			delete(t.expanded, commentID)
		}
		return reactive.NewChange(t.kind, op, commentID), nil
	})
}

func (t *Thread) ToggleExpanded(commentID string) bool {
	expanded := !t.IsExpanded(commentID)
	t.SetExpanded(commentID, expanded)
	return expanded
}

// SetActiveReplyTarget opens the reply composer for commentID, replacing
// any previous target. An empty id closes the composer.
func (t *Thread) SetActiveReplyTarget(commentID string) {
	_ = t.commit(func() (reactive.Change, error) {
		t.replyTarget = commentID
		return reactive.NewChange(t.kind, reactive.OpReplyTarget, commentID), nil
	})
}

func (t *Thread) SetReplyDraft(commentID, text string) {
	_ = t.commit(func() (reactive.Change, error) {
		if text == "" {
			delete(t.drafts, commentID)
		} else {
			t.drafts[commentID] = text
		}
		return reactive.NewChange(t.kind, reactive.OpDraft, commentID), nil
	})
}

func (t *Thread) ReplyDraft(commentID string) string {
	var text string
	t.guard.Read(func() { text = t.drafts[commentID] })
	return text
}

func (t *Thread) ActiveReplyTarget() string {
	var id string
	t.guard.Read(func() { id = t.replyTarget })
	return id
}

func (t *Thread) IsExpanded(commentID string) bool {
	var ok bool
	t.guard.Read(func() { ok = t.expanded[commentID] })
	return ok
}

// Expanded returns the ids of expanded comments in display order.
func (t *Thread) Expanded() []string {
	ids := []string{}
	t.guard.Read(func() {
		for _, c := range t.comments {
			if t.expanded[c.ID] {
				ids = append(ids, c.ID)
			}
		}
	})
	return ids
}

func (t *Thread) find(id string) *Comment {
	for _, c := range t.comments {
		if c.ID == id {
			return c
		}
		for _, r := range c.Replies {
			if r.ID == id {
				return r
			}
		}
	}
	return nil
}

// Find looks up a comment or reply by id.
func (t *Thread) Find(id string) (*Comment, bool) {
	var c *Comment
	t.guard.Read(func() { c = t.find(id) })
	return c, c != nil
}

// Comments returns the top-level comments in display order. The slice is a
// copy; the comments themselves must only be changed through the thread.
func (t *Thread) Comments() []*Comment {
	var out []*Comment
	t.guard.Read(func() {
		out = make([]*Comment, len(t.comments))
		copy(out, t.comments)
	})
	return out
}

func (t *Thread) Len() int {
	var n int
	t.guard.Read(func() { n = len(t.comments) })
	return n
}

// Count returns the number of comments plus replies.
func (t *Thread) Count() int {
	var n int
	t.guard.Read(func() {
		for _, c := range t.comments {
			n += 1 + len(c.Replies)
		}
	})
	return n
}
