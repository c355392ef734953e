package entity

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"abstract-main/pkg/reactive"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoPosts(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	posts := DemoPosts(r, "@hdvapparel", 5)

	require.Len(t, posts, 5)
	seen := map[string]bool{}
	for i, p := range posts {
		assert.False(t, seen[p.ID])
		seen[p.ID] = true
		assert.Len(t, p.Images, 3)
		assert.GreaterOrEqual(t, p.Like.Count, 0)
		assert.LessOrEqual(t, p.Like.Count, 500)
		assert.False(t, p.Like.Liked)
		assert.NotNil(t, p.Comments)
		assert.Equal(t, reactive.KindPost, p.EntityKind())
		if i == 0 {
			assert.Equal(t, "This is the caption for post #1.", p.Caption)
			assert.Equal(t, "post1_2", p.Images[1])
		}
	}
}

func TestDemoClips(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))

	clips := DemoClips(r, "@hdvapparel", 12)

	require.Len(t, clips, 12)
	for _, c := range clips {
		assert.LessOrEqual(t, c.Views, 10_000)
		assert.LessOrEqual(t, c.Like.Count, 1_000)
		assert.LessOrEqual(t, c.CommentCount(), 500)
	}
	assert.Equal(t, "Clip #12", clips[11].Caption)
}

func TestClip_CommentCountIncludesThread(t *testing.T) {
	c := NewClip("@a", "u", "t", "c")
	c.baseComments = 10

	_, err := c.Comments.AddTopLevel("@you", "fire")
	require.NoError(t, err)

	assert.Equal(t, 11, c.CommentCount())
}

func TestDemoProducts(t *testing.T) {
	products := DemoProducts(rand.New(rand.NewPCG(5, 6)), 7)

	require.Len(t, products, 7)
	for _, p := range products {
		assert.GreaterOrEqual(t, p.Price, 10.0)
		assert.Less(t, p.Price, 200.0)
		assert.Equal(t, reactive.KindProduct, p.EntityKind())
	}
}

func TestNewMessage(t *testing.T) {
	m, err := NewMessage("@you", "hey, is the hoodie back in stock?")

	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "@you", m.Sender)
	assert.False(t, m.Timestamp.IsZero())
	assert.Equal(t, reactive.KindMessage, m.EntityKind())
}

func TestNewMessage_EmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		m, err := NewMessage("@you", text)
		assert.Nil(t, m)
		assert.True(t, errors.Is(err, reactive.ErrEmptyText), "%q", text)
	}
}

func TestPostAge(t *testing.T) {
	now := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "5m", PostAge(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h", PostAge(now.Add(-3*time.Hour), now))
	assert.Equal(t, "2d", PostAge(now.Add(-50*time.Hour), now))
}
