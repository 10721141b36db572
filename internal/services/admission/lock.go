package admission

import "sync"

// gameLocks serializes admission mutations per game. The capacity decision
// reads the accepted count and then writes a status; both sides of that
// read-decide-write must happen under the same game's lock.
type gameLocks struct {
	locks sync.Map // game ID -> *sync.Mutex
}

// lock acquires the mutex for a game and returns its unlock func
func (g *gameLocks) lock(gameID string) func() {
	v, _ := g.locks.LoadOrStore(gameID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
