package reactive

// Observers is an ordered list of callbacks for events of type E. Callbacks
// run synchronously, in registration order, on the goroutine that committed
// the mutation.
type Observers[E any] struct {
	next uint64
	subs []subscriber[E]
}

type subscriber[E any] struct {
	id uint64
	fn func(E)
}

// Subscribe registers fn and returns a handle that removes it. Calling the
// handle more than once is harmless.
func (o *Observers[E]) Subscribe(fn func(E)) func() {
	o.next++
	id := o.next
	o.subs = append(o.subs, subscriber[E]{id: id, fn: fn})
	return func() {
		for i, s := range o.subs {
			if s.id == id {
				o.subs = append(o.subs[:i:i], o.subs[i+1:]...)
				return
			}
		}
	}
}

func (o *Observers[E]) Len() int {
	return len(o.subs)
}

// Notify calls every subscriber registered at the time of the call.
func (o *Observers[E]) Notify(e E) {
	subs := make([]subscriber[E], len(o.subs))
	copy(subs, o.subs)
	for _, s := range subs {
		s.fn(e)
	}
}
