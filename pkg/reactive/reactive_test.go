package reactive

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLike_Toggle(t *testing.T) {
	l := Like{Count: 7}

	assert.True(t, l.Toggle())
	assert.Equal(t, 8, l.Count)
	assert.False(t, l.Toggle())
	assert.Equal(t, 7, l.Count)
}

func TestLike_InvariantHoldsForAnySequence(t *testing.T) {
	for _, initiallyLiked := range []bool{false, true} {
		initial := 3
		l := Like{Count: initial, Liked: initiallyLiked}
		for i := 0; i < 25; i++ {
			l.Toggle()
			want := initial
			if l.Liked {
				want++
			}
			if initiallyLiked {
				want--
			}
			assert.Equal(t, want, l.Count)
			assert.GreaterOrEqual(t, l.Count, 0)
		}
	}
}

func TestLike_NeverNegative(t *testing.T) {
	l := Like{Count: 0, Liked: true}
	l.Toggle()
	assert.Equal(t, 0, l.Count)
	assert.False(t, l.Liked)
}

func TestLike_NormalizeLikedWithoutCount(t *testing.T) {
	l := Like{Count: 0, Liked: true}
	l.Normalize()
	require.Equal(t, Like{Count: 1, Liked: true}, l)

	l.Toggle()
	l.Toggle()
	assert.Equal(t, Like{Count: 1, Liked: true}, l)

	neg := Like{Count: -4}
	neg.Normalize()
	assert.Equal(t, Like{}, neg)
}

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{"post": KindPost, "posts": KindPost, "clips": KindClip, "product": KindProduct}
	for in, want := range cases {
		got, ok := ParseKind(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got)
	}
	got, ok := ParseKind("messages")
	assert.True(t, ok)
	assert.Equal(t, KindMessage, got)
	_, ok = ParseKind("stories")
	assert.False(t, ok)
}

func TestObservers_NotifyInOrder(t *testing.T) {
	var o Observers[Change]
	var calls []string
	o.Subscribe(func(Change) { calls = append(calls, "a") })
	o.Subscribe(func(Change) { calls = append(calls, "b") })

	o.Notify(NewChange(KindPost, OpAppend, "p1"))

	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestObservers_Unsubscribe(t *testing.T) {
	var o Observers[Change]
	count := 0
	unsub := o.Subscribe(func(Change) { count++ })
	o.Notify(Change{})
	unsub()
	unsub()
	o.Notify(Change{})

	assert.Equal(t, 1, count)
	assert.Equal(t, 0, o.Len())
}

func TestObservers_UnsubscribeDuringNotify(t *testing.T) {
	var o Observers[Change]
	var unsubB func()
	calls := 0
	o.Subscribe(func(Change) { unsubB() })
	unsubB = o.Subscribe(func(Change) { calls++ })

	o.Notify(Change{})
	o.Notify(Change{})

	assert.Equal(t, 1, calls)
}

func TestAffinity_OverlappingEnterPanics(t *testing.T) {
	var a Affinity
	a.Enter()
	defer a.Exit()

	assert.PanicsWithValue(t, ErrConcurrentAccess, func() { a.Enter() })
}

func TestAffinity_CommitNotifiesAfterRelease(t *testing.T) {
	var a Affinity
	var o Observers[Change]
	read := false
	o.Subscribe(func(Change) {
		a.Read(func() { read = true })
	})

	err := a.Commit(&o, func() (Change, error) {
		return NewChange(KindPost, OpMutate, "p1"), nil
	})

	require.NoError(t, err)
	assert.True(t, read)
}

func TestAffinity_CommitErrorSkipsNotify(t *testing.T) {
	var a Affinity
	var o Observers[Change]
	notified := false
	o.Subscribe(func(Change) { notified = true })

	err := a.Commit(&o, func() (Change, error) {
		return Change{}, ErrNotFound
	})

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, notified)
	assert.NotPanics(t, func() { a.Enter(); a.Exit() })
}
