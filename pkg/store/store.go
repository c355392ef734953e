// Package store keeps the canonical ordered sequence of entities of one kind
// and publishes a change to its observers after every committed mutation.
//
// A store is owned by one session and must be used from one goroutine at a
// time; overlapping calls panic with reactive.ErrConcurrentAccess.
package store

import (
	"fmt"

	"abstract-main/pkg/reactive"
	"abstract-main/pkg/thread"
)

// Commentable entities own a comment thread.
type Commentable interface {
	reactive.Entity
	CommentThread() *thread.Thread
}

type EntityStore[T reactive.Entity] struct {
	kind  reactive.Kind
	items []T
	index map[string]int

	guard     reactive.Affinity
	observers reactive.Observers[reactive.Change]
}

// New builds a store for kind, seeded in order. Seeding fails on the first
// duplicate identity.
func New[T reactive.Entity](kind reactive.Kind, seed ...T) (*EntityStore[T], error) {
	s := &EntityStore[T]{
		kind:  kind,
		index: make(map[string]int, len(seed)),
	}
	for _, e := range seed {
		id := e.EntityID()
		if _, ok := s.index[id]; ok {
			return nil, fmt.Errorf("%s %s: %w", kind, id, reactive.ErrDuplicateIdentity)
		}
		normalize(e)
		s.index[id] = len(s.items)
		s.items = append(s.items, e)
	}
	return s, nil
}

// normalize repairs like state that Toggle could not have produced.
func normalize[T reactive.Entity](e T) {
	if l, ok := any(e).(reactive.Likeable); ok {
		l.LikeState().Normalize()
	}
}

func (s *EntityStore[T]) Kind() reactive.Kind {
	return s.kind
}

func (s *EntityStore[T]) Subscribe(fn func(reactive.Change)) func() {
	return s.observers.Subscribe(fn)
}

func (s *EntityStore[T]) commit(fn func() (reactive.Change, error)) error {
	return s.guard.Commit(&s.observers, fn)
}

func (s *EntityStore[T]) notFound(id string) error {
	return fmt.Errorf("%s %s: %w", s.kind, id, reactive.ErrNotFound)
}

func (s *EntityStore[T]) Append(e T) error {
	return s.commit(func() (reactive.Change, error) {
		id := e.EntityID()
		if _, ok := s.index[id]; ok {
			return reactive.Change{}, fmt.Errorf("%s %s: %w", s.kind, id, reactive.ErrDuplicateIdentity)
		}
		normalize(e)
		s.index[id] = len(s.items)
		s.items = append(s.items, e)
		return reactive.NewChange(s.kind, reactive.OpAppend, id), nil
	})
}

// Mutate applies fn to the entity with the given id. fn runs while the
// store is held and must not call back into it. fn must not change the
// entity's identifier; doing so panics with reactive.ErrIdentityChanged and
// no observer is notified.
func (s *EntityStore[T]) Mutate(id string, fn func(T)) error {
	return s.commit(func() (reactive.Change, error) {
		i, ok := s.index[id]
		if !ok {
			return reactive.Change{}, s.notFound(id)
		}
		fn(s.items[i])
		if got := s.items[i].EntityID(); got != id {
			panic(fmt.Errorf("%s %s -> %s: %w", s.kind, id, got, reactive.ErrIdentityChanged))
		}
		return reactive.NewChange(s.kind, reactive.OpMutate, id), nil
	})
}

// ToggleLike flips the current user's like on the entity and moves its
// counter by one. It returns the new liked state.
func (s *EntityStore[T]) ToggleLike(id string) (bool, error) {
	var liked bool
	err := s.commit(func() (reactive.Change, error) {
		i, ok := s.index[id]
		if !ok {
			return reactive.Change{}, s.notFound(id)
		}
		l, ok := any(s.items[i]).(reactive.Likeable)
		if !ok {
			return reactive.Change{}, fmt.Errorf("like %s: %w", s.kind, reactive.ErrNotSupported)
		}
		liked = l.LikeState().Toggle()
		return reactive.NewChange(s.kind, reactive.OpLike, id), nil
	})
	return liked, err
}

// AppendComment adds c at the end of the entity's thread. Thread observers
// receive OpComment keyed by the comment id; store observers then receive
// OpComment keyed by the entity id. A session forwards only the former.
func (s *EntityStore[T]) AppendComment(id string, c *thread.Comment) error {
	t, err := s.Thread(id)
	if err != nil {
		return err
	}
	if err := t.Append(c); err != nil {
		return err
	}
	s.observers.Notify(reactive.NewChange(s.kind, reactive.OpComment, id))
	return nil
}

// Thread returns the comment thread of the entity with the given id.
func (s *EntityStore[T]) Thread(id string) (*thread.Thread, error) {
	var (
		t   *thread.Thread
		err error
	)
	s.guard.Read(func() {
		i, ok := s.index[id]
		if !ok {
			err = s.notFound(id)
			return
		}
		c, ok := any(s.items[i]).(Commentable)
		if !ok {
			err = fmt.Errorf("comments on %s: %w", s.kind, reactive.ErrNotSupported)
			return
		}
		t = c.CommentThread()
	})
	return t, err
}

func (s *EntityStore[T]) Get(id string) (T, error) {
	var (
		e   T
		err error
	)
	s.guard.Read(func() {
		i, ok := s.index[id]
		if !ok {
			err = s.notFound(id)
			return
		}
		e = s.items[i]
	})
	return e, err
}

func (s *EntityStore[T]) Contains(id string) bool {
	var ok bool
	s.guard.Read(func() { _, ok = s.index[id] })
	return ok
}

// List returns a copy of the sequence in insertion order.
func (s *EntityStore[T]) List() []T {
	var out []T
	s.guard.Read(func() {
		out = make([]T, len(s.items))
		copy(out, s.items)
	})
	return out
}

func (s *EntityStore[T]) Len() int {
	var n int
	s.guard.Read(func() { n = len(s.items) })
	return n
}
