package virtual

import (
	"fmt"
	"sync"
)

// keyArena issues transient cache keys from a monotonically increasing
// counter and tracks which are live. Counter-based keys cannot collide
// through identity reuse the way address-derived keys can: a released id is
// never issued again within the process.
type keyArena struct {
	mu   sync.Mutex
	next uint64
	live map[uint64]struct{}
}

func newKeyArena() *keyArena {
	return &keyArena{live: make(map[uint64]struct{})}
}

func (a *keyArena) acquire() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.next++
	a.live[a.next] = struct{}{}

	return a.next
}

func (a *keyArena) release(id uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.live, id)
}

func (a *keyArena) liveCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.live)
}

// transientKeys is the process-wide arena. Transient keys are only valid
// for the owning view's in-process lifetime and must never be serialized.
var transientKeys = newKeyArena()

func transientKeyString(id uint64) string {
	return fmt.Sprintf("ragged/transient/%d", id)
}
