package ingest

import "sync"

// LockArena hands out one mutex per document id so parses of unrelated
// documents never contend with each other. Entries are kept after release;
// the population is bounded by the document count.
type LockArena struct {
	locks sync.Map // doc id -> *sync.Mutex
}

func NewLockArena() *LockArena { return &LockArena{} }

// TryAcquire returns a release func, or ok=false when a parse of the same
// document is already in flight.
func (a *LockArena) TryAcquire(docID string) (release func(), ok bool) {
	v, _ := a.locks.LoadOrStore(docID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	if !mu.TryLock() {
		return nil, false
	}
	return mu.Unlock, true
}

// Held reports whether a parse currently owns the document's lock.
func (a *LockArena) Held(docID string) bool {
	v, ok := a.locks.Load(docID)
	if !ok {
		return false
	}
	mu := v.(*sync.Mutex)
	if mu.TryLock() {
		mu.Unlock()
		return false
	}
	return true
}
