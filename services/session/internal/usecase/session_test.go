package usecase

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"abstract-main/pkg/entity"
	"abstract-main/pkg/jwt"
	"abstract-main/pkg/logger"
	"abstract-main/pkg/reactive"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, io.Discard)
}

func newTestSession(t *testing.T, seed Seed) *Session {
	t.Helper()
	s, err := NewSession("@you", seed)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestSession_DoRunsOnSessionGoroutine(t *testing.T) {
	post := entity.NewPost("@a", "x", nil)
	s := newTestSession(t, Seed{Posts: []*entity.Post{post}})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Do(context.Background(), func() error {
				_, err := s.collections[reactive.KindPost].ToggleLike(post.ID)
				return err
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var likes int
	var liked bool
	require.NoError(t, s.Do(context.Background(), func() error {
		likes, liked = post.Like.Count, post.Like.Liked
		return nil
	}))
	assert.Equal(t, 0, likes)
	assert.False(t, liked)
}

func TestSession_DoAfterClose(t *testing.T) {
	s := newTestSession(t, Seed{})
	s.Close()
	s.Close()

	err := s.Do(context.Background(), func() error { return nil })

	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.True(t, s.Closed())
}

func TestSession_DoRecoversPanic(t *testing.T) {
	s := newTestSession(t, Seed{})

	err := s.Do(context.Background(), func() error { panic("boom") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	assert.NoError(t, s.Do(context.Background(), func() error { return nil }))
}

func TestSession_DoHonorsContext(t *testing.T) {
	s := newTestSession(t, Seed{})
	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = s.Do(context.Background(), func() error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := s.Do(ctx, func() error { return nil })

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSession_ForwardsThreadChangesWithEntityID(t *testing.T) {
	post := entity.NewPost("@a", "x", nil)
	s := newTestSession(t, Seed{Posts: []*entity.Post{post}})
	var events []Event
	require.NoError(t, s.Do(context.Background(), func() error {
		s.subscribe(func(e Event) { events = append(events, e) })
		_, err := post.Comments.AddTopLevel("@you", "nice!")
		return err
	}))

	require.Len(t, events, 1)
	assert.Equal(t, reactive.OpComment, events[0].Op)
	assert.Equal(t, post.ID, events[0].EntityID)
	assert.NotEqual(t, post.ID, events[0].ID)
}

func TestNewSession_DuplicateSeed(t *testing.T) {
	post := entity.NewPost("@a", "x", nil)

	_, err := NewSession("@you", Seed{Posts: []*entity.Post{post, post}})

	assert.True(t, errors.Is(err, reactive.ErrDuplicateIdentity))
}

func TestManager_Lifecycle(t *testing.T) {
	m := NewManager(ManagerConfig{SeedDemo: true, DemoSeed: 7}, quietLogger())
	defer m.CloseAll()

	s, err := m.Create("@you")
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 5, s.collections[reactive.KindPost].(typed[*entity.Post]).Len())

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, m.End(s.ID))
	assert.True(t, s.Closed())
	assert.ErrorIs(t, m.End(s.ID), ErrSessionNotFound)
	_, err = m.Get(s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_NoSeed(t *testing.T) {
	m := NewManager(ManagerConfig{}, quietLogger())
	defer m.CloseAll()

	s, err := m.Create("@you")
	require.NoError(t, err)

	for _, c := range s.collections {
		assert.Empty(t, c.all())
	}
}

func TestManager_CloseAll(t *testing.T) {
	m := NewManager(ManagerConfig{}, quietLogger())
	a, _ := m.Create("@a")
	b, _ := m.Create("@b")

	m.CloseAll()

	assert.Equal(t, 0, m.Len())
	assert.True(t, a.Closed())
	assert.True(t, b.Closed())
}

type recordingSink struct {
	mu      sync.Mutex
	changes []reactive.Change
	owners  []string
}

func (r *recordingSink) Publish(sessionID string, change reactive.Change, entityID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.owners = append(r.owners, sessionID)
	r.changes = append(r.changes, change)
}

func TestManager_PublishesToSink(t *testing.T) {
	sink := &recordingSink{}
	m := NewManager(ManagerConfig{SeedDemo: true, DemoSeed: 7, Sink: sink}, quietLogger())
	t.Cleanup(m.CloseAll)
	uc := NewSessionUseCase(m, jwt.NewService("test-secret"), quietLogger())

	info, err := uc.StartSession("@you")
	require.NoError(t, err)
	postID := firstID(t, uc, info.SessionID, reactive.KindPost)

	_, err = uc.ToggleSave(context.Background(), info.SessionID, reactive.KindPost, postID)
	require.NoError(t, err)

	sink.mu.Lock()
	defer sink.mu.Unlock()
	require.Len(t, sink.changes, 1)
	assert.Equal(t, reactive.OpSave, sink.changes[0].Op)
	assert.Equal(t, info.SessionID, sink.owners[0])
}

func TestSession_DoRecordsLastUse(t *testing.T) {
	s := newTestSession(t, Seed{})
	created := s.LastUsed()
	require.False(t, created.IsZero())

	time.Sleep(2 * time.Millisecond)
	require.NoError(t, s.Do(context.Background(), func() error { return nil }))

	assert.True(t, s.LastUsed().After(created))
}

func TestManager_ReapEndsOnlyIdleSessions(t *testing.T) {
	m := NewManager(ManagerConfig{IdleTimeout: time.Hour}, quietLogger())
	defer m.CloseAll()
	idle, err := m.Create("@idle")
	require.NoError(t, err)
	active, err := m.Create("@active")
	require.NoError(t, err)

	assert.Equal(t, 0, m.reap(time.Now()))

	later := time.Now().Add(90 * time.Minute)
	active.lastUsed.Store(later.Add(-time.Minute).UnixNano())

	assert.Equal(t, 1, m.reap(later))
	assert.True(t, idle.Closed())
	assert.False(t, active.Closed())
	_, err = m.Get(idle.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 1, m.Len())
}

func TestManager_ReaperEndsIdleSessions(t *testing.T) {
	m := NewManager(ManagerConfig{IdleTimeout: 10 * time.Millisecond, ReapInterval: 2 * time.Millisecond}, quietLogger())
	defer m.CloseAll()

	sessions := make([]*Session, 0, 50)
	for i := 0; i < 50; i++ {
		s, err := m.Create("@you")
		require.NoError(t, err)
		sessions = append(sessions, s)
	}

	assert.Eventually(t, func() bool { return m.Len() == 0 }, time.Second, 5*time.Millisecond)
	for _, s := range sessions {
		assert.True(t, s.Closed())
	}
}

func TestManager_CloseAllStopsReaper(t *testing.T) {
	m := NewManager(ManagerConfig{IdleTimeout: time.Millisecond, ReapInterval: time.Millisecond}, quietLogger())

	m.CloseAll()
	m.CloseAll()

	s, err := m.Create("@late")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	assert.False(t, s.Closed())
	assert.Equal(t, 1, m.Len())
	require.NoError(t, m.End(s.ID))
}
