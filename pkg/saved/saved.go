// Package saved tracks which entities the user has bookmarked. Each kind has
// its own ordered projection; a Registry routes by kind so callers do not
// need per-kind methods.
//
// Projections hold the same references the caller hands in, not copies, so
// a saved post always shows its current like count.
package saved

import (
	"fmt"

	"abstract-main/pkg/reactive"
)

type Projection[T reactive.Entity] struct {
	kind  reactive.Kind
	items []T

	guard     reactive.Affinity
	observers reactive.Observers[reactive.Change]
}

func NewProjection[T reactive.Entity](kind reactive.Kind) *Projection[T] {
	return &Projection[T]{kind: kind}
}

func (p *Projection[T]) Kind() reactive.Kind {
	return p.kind
}

func (p *Projection[T]) Subscribe(fn func(reactive.Change)) func() {
	return p.observers.Subscribe(fn)
}

func (p *Projection[T]) indexOf(id string) int {
	for i, e := range p.items {
		if e.EntityID() == id {
			return i
		}
	}
	return -1
}

// Toggle removes the entity if one with the same id is saved, otherwise
// appends it. It returns the new membership.
func (p *Projection[T]) Toggle(e T) bool {
	var saved bool
	_ = p.guard.Commit(&p.observers, func() (reactive.Change, error) {
		id := e.EntityID()
		if i := p.indexOf(id); i >= 0 {
			p.items = append(p.items[:i:i], p.items[i+1:]...)
			return reactive.NewChange(p.kind, reactive.OpUnsave, id), nil
		}
		p.items = append(p.items, e)
		saved = true
		return reactive.NewChange(p.kind, reactive.OpSave, id), nil
	})
	return saved
}

func (p *Projection[T]) IsSaved(id string) bool {
	var ok bool
	p.guard.Read(func() { ok = p.indexOf(id) >= 0 })
	return ok
}

// Items returns the saved entities in the order they were saved.
func (p *Projection[T]) Items() []T {
	var out []T
	p.guard.Read(func() {
		out = make([]T, len(p.items))
		copy(out, p.items)
	})
	return out
}

func (p *Projection[T]) Len() int {
	var n int
	p.guard.Read(func() { n = len(p.items) })
	return n
}

// Registry holds one projection per kind.
type Registry struct {
	sets map[reactive.Kind]*Projection[reactive.Entity]
}

func NewRegistry(kinds ...reactive.Kind) *Registry {
	r := &Registry{sets: make(map[reactive.Kind]*Projection[reactive.Entity], len(kinds))}
	for _, k := range kinds {
		r.sets[k] = NewProjection[reactive.Entity](k)
	}
	return r
}

func (r *Registry) Projection(kind reactive.Kind) (*Projection[reactive.Entity], error) {
	p, ok := r.sets[kind]
	if !ok {
		return nil, fmt.Errorf("saved %s: %w", kind, reactive.ErrNotSupported)
	}
	return p, nil
}

func (r *Registry) Toggle(e reactive.Entity) (bool, error) {
	p, err := r.Projection(e.EntityKind())
	if err != nil {
		return false, err
	}
	return p.Toggle(e), nil
}

func (r *Registry) IsSaved(kind reactive.Kind, id string) bool {
	p, ok := r.sets[kind]
	return ok && p.IsSaved(id)
}

func (r *Registry) Items(kind reactive.Kind) []reactive.Entity {
	p, ok := r.sets[kind]
	if !ok {
		return nil
	}
	return p.Items()
}

// Subscribe registers fn on every kind's projection.
func (r *Registry) Subscribe(fn func(reactive.Change)) func() {
	unsubs := make([]func(), 0, len(r.sets))
	for _, p := range r.sets {
		unsubs = append(unsubs, p.Subscribe(fn))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

// ItemsOf returns the saved entities of kind that are of type T.
func ItemsOf[T reactive.Entity](r *Registry, kind reactive.Kind) []T {
	items := r.Items(kind)
	out := make([]T, 0, len(items))
	for _, e := range items {
		if v, ok := e.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
