package reactive

import "sync/atomic"

// Affinity asserts that a store is used by one caller at a time. Stores are
// not safe for concurrent use; callers on a multi-threaded runtime must
// serialize access (see the session dispatcher). Overlapping calls panic
// with ErrConcurrentAccess instead of corrupting state.
type Affinity struct {
	busy atomic.Bool
}

func (a *Affinity) Enter() {
	if !a.busy.CompareAndSwap(false, true) {
		panic(ErrConcurrentAccess)
	}
}

func (a *Affinity) Exit() {
	a.busy.Store(false)
}

// Commit runs fn under the guard and, when fn succeeds, notifies obs after
// the guard is released so observers may read the store again.
func (a *Affinity) Commit(obs *Observers[Change], fn func() (Change, error)) error {
	a.Enter()
	c, err := func() (Change, error) {
		defer a.Exit()
		return fn()
	}()
	if err != nil {
		return err
	}
	obs.Notify(c)
	return nil
}

// Read runs fn under the guard without notifying anyone.
func (a *Affinity) Read(fn func()) {
	a.Enter()
	defer a.Exit()
	fn()
}
