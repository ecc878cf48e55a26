package session

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sandevgo/defterbot/internal/core"
)

const maxSessions = 1024

// Session is the per-sender conversational state. The mutex serializes turns
// for the same sender: a second message arriving mid-turn waits instead of
// racing on the message sequence.
type Session struct {
	mu sync.Mutex

	Messages     []core.Message
	LastActivity time.Time
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Store keeps sessions keyed by sender address. The expirable LRU doubles as
// the idle sweep: entries past the TTL are reaped in the background. A turn
// already holding a *Session simply finishes on the detached entry, which is
// the delete-if-still-idle contract.
type Store struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *Session]
	timeout  time.Duration
}

func NewStore(timeout time.Duration) *Store {
	return &Store{
		sessions: expirable.NewLRU[string, *Session](maxSessions, nil, timeout),
		timeout:  timeout,
	}
}

// Get returns the sender's session, creating one if absent or already reaped.
func (st *Store) Get(sender string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if s, ok := st.sessions.Get(sender); ok {
		// re-Add resets the entry's expiry, so eviction tracks time since
		// last use rather than session age
		st.sessions.Add(sender, s)
		return s
	}
	s := &Session{}
	st.sessions.Add(sender, s)
	return s
}

// Clear drops the sender's session so the next message starts fresh.
func (st *Store) Clear(sender string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions.Remove(sender)
}

// Expired reports whether the session must be reseeded: never used yet, or
// idle beyond the timeout.
func (st *Store) Expired(s *Session, now time.Time) bool {
	return len(s.Messages) == 0 || now.Sub(s.LastActivity) > st.timeout
}

func (st *Store) Len() int {
	return st.sessions.Len()
}
