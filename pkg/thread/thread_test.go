package thread

import (
	"errors"
	"testing"

	"abstract-main/pkg/reactive"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTopLevel(t *testing.T) {
	th := New(reactive.KindPost)

	c, err := th.AddTopLevel("@you", "nice!")

	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "@you", c.Author)
	assert.Equal(t, 0, c.Like.Count)
	assert.False(t, c.Like.Liked)
	assert.Empty(t, c.Replies)
	assert.Equal(t, 1, th.Len())
}

func TestAddTopLevel_EmptyText(t *testing.T) {
	th := New(reactive.KindPost)
	notified := false
	th.Subscribe(func(reactive.Change) { notified = true })

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := th.AddTopLevel("@you", text)
		assert.True(t, errors.Is(err, reactive.ErrEmptyText))
	}
	assert.Equal(t, 0, th.Len())
	assert.False(t, notified)
}

func TestAddReply_Scenario(t *testing.T) {
	th := New(reactive.KindPost)
	c1, err := th.AddTopLevel("@a", "first")
	require.NoError(t, err)
	th.SetActiveReplyTarget(c1.ID)
	th.SetReplyDraft(c1.ID, "R")

	r, err := th.AddReply(c1.ID, "@you", "R")

	require.NoError(t, err)
	assert.Len(t, c1.Replies, 1)
	assert.Same(t, r, c1.Replies[0])
	assert.True(t, th.IsExpanded(c1.ID))
	assert.Equal(t, []string{c1.ID}, th.Expanded())
	assert.Empty(t, th.ActiveReplyTarget())
	assert.Empty(t, th.ReplyDraft(c1.ID))
}

func TestAddReply_Errors(t *testing.T) {
	th := New(reactive.KindClip)
	c1, err := th.AddTopLevel("@a", "first")
	require.NoError(t, err)
	th.SetActiveReplyTarget(c1.ID)

	_, err = th.AddReply(c1.ID, "@you", " ")
	assert.True(t, errors.Is(err, reactive.ErrEmptyText))

	_, err = th.AddReply("missing", "@you", "hello")
	assert.True(t, errors.Is(err, reactive.ErrNotFound))

	// blank text is reported before an unknown parent
	_, err = th.AddReply("missing", "@you", "")
	assert.True(t, errors.Is(err, reactive.ErrEmptyText))

	assert.Empty(t, c1.Replies)
	assert.False(t, th.IsExpanded(c1.ID))
	assert.Equal(t, c1.ID, th.ActiveReplyTarget())
}

func TestAddReply_CannotTargetReply(t *testing.T) {
	th := New(reactive.KindPost)
	c1, _ := th.AddTopLevel("@a", "first")
	r, err := th.AddReply(c1.ID, "@b", "reply")
	require.NoError(t, err)

	_, err = th.AddReply(r.ID, "@c", "nested")

	assert.True(t, errors.Is(err, reactive.ErrNotFound))
}

func TestToggleLike_ReplyByID(t *testing.T) {
	th := New(reactive.KindPost)
	c1, _ := th.AddTopLevel("@a", "first")
	r, _ := th.AddReply(c1.ID, "@b", "reply")

	liked, err := th.ToggleLike(r.ID)

	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, r.Like.Count)
	assert.Equal(t, 0, c1.Like.Count)
}

func TestToggleReplyLike(t *testing.T) {
	th := New(reactive.KindPost)
	c1, _ := th.AddTopLevel("@a", "first")
	r, _ := th.AddReply(c1.ID, "@b", "reply")
	r.Like.Count = 5

	liked, err := th.ToggleReplyLike(c1.ID, 0)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 6, r.Like.Count)

	liked, err = th.ToggleReplyLike(c1.ID, 0)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 5, r.Like.Count)

	_, err = th.ToggleReplyLike(c1.ID, 1)
	assert.True(t, errors.Is(err, reactive.ErrNotFound))
	_, err = th.ToggleReplyLike(c1.ID, -1)
	assert.True(t, errors.Is(err, reactive.ErrNotFound))
	_, err = th.ToggleReplyLike("missing", 0)
	assert.True(t, errors.Is(err, reactive.ErrNotFound))
}

func TestDelete_RemovesSubtree(t *testing.T) {
	th := New(reactive.KindPost)
	keep, _ := th.AddTopLevel("@a", "keep")
	gone, _ := th.AddTopLevel("@b", "gone")
	var replyIDs []string
	for _, text := range []string{"r1", "r2", "r3"} {
		r, err := th.AddReply(gone.ID, "@c", text)
		require.NoError(t, err)
		replyIDs = append(replyIDs, r.ID)
	}
	th.SetActiveReplyTarget(gone.ID)
	th.SetReplyDraft(gone.ID, "half written")
	before := th.Count()

	require.NoError(t, th.Delete(gone.ID))

	assert.Equal(t, before-4, th.Count())
	for _, id := range append(replyIDs, gone.ID) {
		_, ok := th.Find(id)
		assert.False(t, ok, id)
	}
	assert.Equal(t, []*Comment{keep}, th.Comments())
	assert.False(t, th.IsExpanded(gone.ID))
	assert.Empty(t, th.ActiveReplyTarget())
	assert.Empty(t, th.ReplyDraft(gone.ID))
}

func TestDelete_NotFound(t *testing.T) {
	th := New(reactive.KindPost)
	_, _ = th.AddTopLevel("@a", "keep")

	err := th.Delete("missing")

	assert.True(t, errors.Is(err, reactive.ErrNotFound))
	assert.Equal(t, 1, th.Len())
}

func TestReplyTarget_Exclusive(t *testing.T) {
	th := New(reactive.KindPost)
	a, _ := th.AddTopLevel("@a", "a")
	b, _ := th.AddTopLevel("@b", "b")

	th.SetActiveReplyTarget(a.ID)
	assert.Equal(t, a.ID, th.ActiveReplyTarget())

	th.SetActiveReplyTarget(b.ID)
	assert.Equal(t, b.ID, th.ActiveReplyTarget())

	th.SetActiveReplyTarget("")
	assert.Empty(t, th.ActiveReplyTarget())
}

func TestExpandCollapse(t *testing.T) {
	th := New(reactive.KindPost)
	a, _ := th.AddTopLevel("@a", "a")
	var ops []reactive.Op
	th.Subscribe(func(c reactive.Change) { ops = append(ops, c.Op) })

	assert.True(t, th.ToggleExpanded(a.ID))
	assert.False(t, th.ToggleExpanded(a.ID))
	th.SetExpanded(a.ID, true)

	assert.True(t, th.IsExpanded(a.ID))
	assert.Equal(t, []reactive.Op{reactive.OpExpand, reactive.OpCollapse, reactive.OpExpand}, ops)
}

func TestAppend_Duplicate(t *testing.T) {
	th := New(reactive.KindPost)
	c := NewComment("@you", "hi")
	require.NoError(t, th.Append(c))

	err := th.Append(c)

	assert.True(t, errors.Is(err, reactive.ErrDuplicateIdentity))
	assert.Equal(t, 1, th.Len())
}

func TestAppend_RejectsIDOfExistingReply(t *testing.T) {
	th := New(reactive.KindPost)
	parent, err := th.AddTopLevel("@a", "parent")
	require.NoError(t, err)
	reply, err := th.AddReply(parent.ID, "@b", "reply")
	require.NoError(t, err)

	err = th.Append(&Comment{ID: reply.ID, Author: "@c", Text: "clash"})

	assert.True(t, errors.Is(err, reactive.ErrDuplicateIdentity))
	assert.Equal(t, 2, th.Count())
}

func TestAppend_ChecksReplyIDs(t *testing.T) {
	th := New(reactive.KindPost)
	existing, err := th.AddTopLevel("@a", "first")
	require.NoError(t, err)

	clashing := NewComment("@b", "second")
	clashing.Replies = []*Comment{{ID: existing.ID, Author: "@c", Text: "reply"}}
	assert.True(t, errors.Is(th.Append(clashing), reactive.ErrDuplicateIdentity))

	repeated := NewComment("@b", "third")
	r := NewComment("@c", "reply")
	repeated.Replies = []*Comment{r, {ID: r.ID, Author: "@d", Text: "again"}}
	assert.True(t, errors.Is(th.Append(repeated), reactive.ErrDuplicateIdentity))

	selfRef := NewComment("@b", "fourth")
	selfRef.Replies = []*Comment{{ID: selfRef.ID, Author: "@c", Text: "me"}}
	assert.True(t, errors.Is(th.Append(selfRef), reactive.ErrDuplicateIdentity))

	assert.Equal(t, 1, th.Count())
}

func TestAppend_WithRepliesNormalizesLikes(t *testing.T) {
	th := New(reactive.KindClip)
	c := NewComment("@a", "loaded")
	c.Like = reactive.Like{Liked: true}
	r := NewComment("@b", "reply")
	c.Replies = []*Comment{r}

	require.NoError(t, th.Append(c))

	assert.Equal(t, reactive.Like{Count: 1, Liked: true}, c.Like)
	found, ok := th.Find(r.ID)
	require.True(t, ok)
	assert.Same(t, r, found)
	assert.Equal(t, 2, th.Count())
}

func TestAppend_RejectsBlankAndNil(t *testing.T) {
	th := New(reactive.KindPost)

	assert.True(t, errors.Is(th.Append(NewComment("@you", "  ")), reactive.ErrEmptyText))
	assert.Error(t, th.Append(nil))
	assert.Equal(t, 0, th.Len())
}
