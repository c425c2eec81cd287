package ledger

import (
	"sync"

	"github.com/stardrift-game/stardrift/internal/model"
)

// playerLocks serializes operations per player. All ledger operations on
// one player hold that player's mutex for their whole read-modify-write,
// so no two operations can interleave; different players proceed in
// parallel.
//
// Entries are never evicted: a mutex can only be removed once no
// goroutine holds or waits on it, which this map does not track, so it
// grows with the number of distinct player IDs seen by the process.
type playerLocks struct {
	mu    sync.Mutex
	locks map[model.PlayerID]*sync.Mutex
}

func newPlayerLocks() *playerLocks {
	return &playerLocks{
		locks: make(map[model.PlayerID]*sync.Mutex),
	}
}

// acquire locks the given player's mutex and returns its unlock func
func (l *playerLocks) acquire(id model.PlayerID) func() {
	l.mu.Lock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
