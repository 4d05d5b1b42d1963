package session

import (
	"sync"
	"time"
)

// #region store-struct

// Store is a concurrent map from user ID to session. The index lock is held
// only to look entries up; each entry carries its own lock, so operations on
// distinct users never contend beyond the lookup, while operations on the
// same user are serialized in call order.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*entry
}

type entry struct {
	mu sync.Mutex
	s  Session
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[int64]*entry)}
}

// #endregion store-struct

// #region lookup

func (st *Store) lookup(userID int64, create bool) *entry {
	st.mu.Lock()
	defer st.mu.Unlock()
	e, ok := st.sessions[userID]
	if !ok && create {
		e = &entry{s: Session{
			UserID:    userID,
			State:     AwaitStart,
			UpdatedAt: time.Now().UTC(),
		}}
		st.sessions[userID] = e
	}
	return e
}

// GetOrCreate returns a snapshot of the user's session, creating it in
// AwaitStart if absent.
func (st *Store) GetOrCreate(userID int64) Session {
	e := st.lookup(userID, true)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.s
}

// Get returns a snapshot without creating. ok is false if the user has no
// session.
func (st *Store) Get(userID int64) (Session, bool) {
	e := st.lookup(userID, false)
	if e == nil {
		return Session{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.s, true
}

// #endregion lookup

// #region update

// Update runs fn against the user's session under its entry lock, creating
// the session if absent. Calls for the same user are serialized; fn must not
// call back into the store.
func (st *Store) Update(userID int64, fn func(*Session)) {
	e := st.lookup(userID, true)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.s)
	e.s.UpdatedAt = time.Now().UTC()
}

// #endregion update

// #region remove

// Remove retires the user's session. Removing an absent user is a no-op.
func (st *Store) Remove(userID int64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, userID)
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// #endregion remove

// #region sweep

// Sweep removes sessions idle for longer than maxAge and returns how many
// were dropped. Abandoned conversations are the only way sessions leak, so
// callers run this on a timer.
func (st *Store) Sweep(maxAge time.Duration) int {
	cutoff := time.Now().UTC().Add(-maxAge)
	st.mu.Lock()
	defer st.mu.Unlock()

	dropped := 0
	for id, e := range st.sessions {
		e.mu.Lock()
		idle := e.s.UpdatedAt.Before(cutoff)
		e.mu.Unlock()
		if idle {
			delete(st.sessions, id)
			dropped++
		}
	}
	return dropped
}

// #endregion sweep
