package recorder

import (
	"sync"
)

// reentrantMutex is a recursive lock: the goroutine already holding it can
// take it again without deadlocking. The recorder needs this because a
// single interception can fan a notification out to several analyzers, and
// an analyzer is allowed to call back into the recorder's own read
// accessors while still inside that notification (spec §5 "the recorder's
// lock is reentrant: a notification may fan out to multiple analyzers that
// call back into recorder accessors"). sync.Mutex has no such guarantee, so
// this wraps one with a held-by/depth pair guarded by a second, much
// shorter-held mutex.
type reentrantMutex struct {
	state sync.Mutex // guards holder/depth
	lock  sync.Mutex // the actual exclusion
	holder uint64
	depth  int
}

func (m *reentrantMutex) Lock() {
	id := goroutineID()

	m.state.Lock()
	if m.depth > 0 && m.holder == id {
		m.depth++
		m.state.Unlock()
		return
	}
	m.state.Unlock()

	m.lock.Lock()

	m.state.Lock()
	m.holder = id
	m.depth = 1
	m.state.Unlock()
}

func (m *reentrantMutex) Unlock() {
	id := goroutineID()

	m.state.Lock()
	defer m.state.Unlock()

	if m.holder != id || m.depth == 0 {
		panic("recorder: Unlock of unheld reentrantMutex")
	}

	m.depth--
	if m.depth == 0 {
		m.lock.Unlock()
	}
}
