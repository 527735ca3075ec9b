package errchain

import "sync"

// Arena is an Engine that owns external resources on behalf of chain values.
// It hands out index-based handles and releases each resource exactly once:
// re-releasing a handle is a no-op, so a superseded chain discarded after
// grafting cannot free a resource now owned by the composite. Rendering and
// classification delegate to a base engine.
type Arena struct {
	base Engine

	mu      sync.Mutex
	next    Handle
	cleanup map[Handle]func()
}

// NewArena creates an Arena delegating rendering and classification to base.
// A nil base selects the in-process default.
func NewArena(base Engine) *Arena {
	if base == nil {
		base = DefaultEngine()
	}
	return &Arena{
		base:    base,
		cleanup: make(map[Handle]func()),
	}
}

// Acquire registers a resource and returns the handle that owns it. The
// release function runs exactly once, on Release or ReleaseAll.
func (a *Arena) Acquire(release func()) Handle {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.next++
	h := a.next
	a.cleanup[h] = release

	return h
}

// Release frees the resource behind h. NoHandle and already-released
// handles are ignored.
func (a *Arena) Release(h Handle) {
	if h == NoHandle {
		return
	}

	a.mu.Lock()
	release, live := a.cleanup[h]
	if live {
		delete(a.cleanup, h)
	}
	a.mu.Unlock()

	if live && release != nil {
		release()
	}
}

// ReleaseAll frees every live resource. Used for scoped teardown when a
// caller abandons all chains issued from this arena.
func (a *Arena) ReleaseAll() {
	a.mu.Lock()
	pending := a.cleanup
	a.cleanup = make(map[Handle]func())
	a.mu.Unlock()

	for _, release := range pending {
		if release != nil {
			release()
		}
	}
}

// Live returns the number of resources still owned by the arena.
func (a *Arena) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.cleanup)
}

func (a *Arena) Render(code Code, message string) string {
	return a.base.Render(code, message)
}

func (a *Arena) Classify(code Code) Class {
	return a.base.Classify(code)
}
