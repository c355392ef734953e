package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"abstract-main/pkg/entity"
	"abstract-main/pkg/reactive"
	"abstract-main/pkg/saved"
	"abstract-main/pkg/store"
	"abstract-main/pkg/thread"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionClosed   = errors.New("session closed")
)

// Event is a store change as seen by the session. EntityID names the post
// or clip a comment change belongs to.
type Event struct {
	reactive.Change
	EntityID string `json:"entity_id,omitempty"`
}

// collection is a store viewed without its element type.
type collection interface {
	Kind() reactive.Kind
	get(id string) (reactive.Entity, error)
	all() []reactive.Entity
	ToggleLike(id string) (bool, error)
	AppendComment(id string, c *thread.Comment) error
	Thread(id string) (*thread.Thread, error)
	Subscribe(fn func(reactive.Change)) func()
}

type typed[T reactive.Entity] struct {
	*store.EntityStore[T]
}

func (t typed[T]) get(id string) (reactive.Entity, error) {
	e, err := t.Get(id)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (t typed[T]) all() []reactive.Entity {
	items := t.List()
	out := make([]reactive.Entity, len(items))
	for i, e := range items {
		out[i] = e
	}
	return out
}

type Seed struct {
	Posts    []*entity.Post
	Clips    []*entity.Clip
	Products []*entity.Product
}

// DemoSeed builds the demo feed shown to a fresh session.
func DemoSeed(r *rand.Rand) Seed {
	const creator = "@hdvapparel"
	return Seed{
		Posts:    entity.DemoPosts(r, creator, 5),
		Clips:    entity.DemoClips(r, creator, 5),
		Products: entity.DemoProducts(r, 7),
	}
}

// Session owns the stores of one user session. Every store access goes
// through Do, which runs on the session's own goroutine.
type Session struct {
	ID        string
	Handle    string
	CreatedAt time.Time

	collections map[reactive.Kind]collection
	messages    *store.EntityStore[*entity.Message]
	saved       *saved.Registry
	observers   reactive.Observers[Event]

	calls     chan func()
	done      chan struct{}
	closeOnce sync.Once
	lastUsed  atomic.Int64
}

func NewSession(handle string, seed Seed) (*Session, error) {
	posts, err := store.New(reactive.KindPost, seed.Posts...)
	if err != nil {
		return nil, err
	}
	clips, err := store.New(reactive.KindClip, seed.Clips...)
	if err != nil {
		return nil, err
	}
	products, err := store.New(reactive.KindProduct, seed.Products...)
	if err != nil {
		return nil, err
	}
	messages, err := store.New[*entity.Message](reactive.KindMessage)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:        uuid.New().String(),
		Handle:    handle,
		CreatedAt: time.Now(),
		collections: map[reactive.Kind]collection{
			reactive.KindPost:    typed[*entity.Post]{posts},
			reactive.KindClip:    typed[*entity.Clip]{clips},
			reactive.KindProduct: typed[*entity.Product]{products},
		},
		messages: messages,
		saved:    saved.NewRegistry(reactive.KindPost, reactive.KindClip, reactive.KindProduct),
		calls:    make(chan func()),
		done:     make(chan struct{}),
	}
	s.touch()
	s.forwardChanges()

	go s.loop()
	return s, nil
}

// forwardChanges relays store, thread, chat and saved-set changes to the
// session observers. A new comment is relayed once, from its thread, so the
// store's own OpComment is skipped.
func (s *Session) forwardChanges() {
	for _, c := range s.collections {
		c.Subscribe(func(ch reactive.Change) {
			if ch.Op == reactive.OpComment {
				return
			}
			s.observers.Notify(Event{Change: ch, EntityID: ch.ID})
		})
		for _, e := range c.all() {
			cm, ok := e.(store.Commentable)
			if !ok {
				continue
			}
			id := e.EntityID()
			cm.CommentThread().Subscribe(func(ch reactive.Change) {
				s.observers.Notify(Event{Change: ch, EntityID: id})
			})
		}
	}
	s.messages.Subscribe(func(ch reactive.Change) {
		s.observers.Notify(Event{Change: ch, EntityID: ch.ID})
	})
	s.saved.Subscribe(func(ch reactive.Change) {
		s.observers.Notify(Event{Change: ch, EntityID: ch.ID})
	})
}

func (s *Session) loop() {
	for {
		select {
		case fn := <-s.calls:
			fn()
		case <-s.done:
			return
		}
	}
}

// Do runs fn on the session goroutine and waits for its result. A panic in
// fn is returned as an error and does not stop the session.
func (s *Session) Do(ctx context.Context, fn func() error) error {
	s.touch()
	errc := make(chan error, 1)
	run := func() {
		defer func() {
			if r := recover(); r != nil {
				errc <- fmt.Errorf("session %s: panic: %v", s.ID, r)
			}
		}()
		errc <- fn()
	}

	select {
	case s.calls <- run:
	case <-s.done:
		return ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Session) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Done is closed when the session ends.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) touch() {
	s.lastUsed.Store(time.Now().UnixNano())
}

// LastUsed reports when Do was last called.
func (s *Session) LastUsed() time.Time {
	return time.Unix(0, s.lastUsed.Load())
}

func (s *Session) Closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// The helpers below must only be called from inside Do.

func (s *Session) collection(kind reactive.Kind) (collection, error) {
	c, ok := s.collections[kind]
	if !ok {
		return nil, fmt.Errorf("%s: %w", kind, reactive.ErrNotSupported)
	}
	return c, nil
}

func (s *Session) entity(kind reactive.Kind, id string) (reactive.Entity, error) {
	c, err := s.collection(kind)
	if err != nil {
		return nil, err
	}
	return c.get(id)
}

func (s *Session) thread(kind reactive.Kind, id string) (*thread.Thread, error) {
	c, err := s.collection(kind)
	if err != nil {
		return nil, err
	}
	return c.Thread(id)
}

func (s *Session) subscribe(fn func(Event)) func() {
	return s.observers.Subscribe(fn)
}
