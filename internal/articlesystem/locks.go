package articlesystem

import "sync"

// articleLocks hands out one mutex per article ID. PlaceBid and the expiry
// sweep take the same lock, so a bid and a status transition on one article
// never interleave and accepted-bid order equals lock-acquisition order.
type articleLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newArticleLocks() *articleLocks {
	return &articleLocks{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for the given article and returns its unlock func
func (a *articleLocks) lock(articleID string) func() {
	a.mu.Lock()
	m, ok := a.locks[articleID]
	if !ok {
		m = &sync.Mutex{}
		a.locks[articleID] = m
	}
	a.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// forget drops the mutex of a deleted article
func (a *articleLocks) forget(articleID string) {
	a.mu.Lock()
	delete(a.locks, articleID)
	a.mu.Unlock()
}
