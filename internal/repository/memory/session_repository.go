package memory

import (
	"sync"
	"time"

	"smart-summary-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps working sessions in memory. Get hands out a
// shared pointer, so every read or write of session state must happen
// between Lock and Unlock for that session.
type SessionRepository struct {
	cache *cache.Cache
	ttl   time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = 1 * time.Hour
	}
	// Purge expired sessions every 10 minutes
	c := cache.New(ttl, 10*time.Minute)
	r := &SessionRepository{
		cache: c,
		ttl:   ttl,
		locks: make(map[string]*sync.Mutex),
	}
	c.OnEvicted(func(sessionID string, _ interface{}) {
		r.mu.Lock()
		delete(r.locks, sessionID)
		r.mu.Unlock()
	})
	return r
}

func (r *SessionRepository) lockFor(sessionID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.locks[sessionID]
	if !ok {
		m = &sync.Mutex{}
		r.locks[sessionID] = m
	}
	return m
}

// Lock serializes access to one session's shared state.
func (r *SessionRepository) Lock(sessionID string) {
	r.lockFor(sessionID).Lock()
}

func (r *SessionRepository) Unlock(sessionID string) {
	r.lockFor(sessionID).Unlock()
}

func (r *SessionRepository) Save(session *store.ReportSession) {
	session.UpdatedAt = time.Now()
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.ReportSession, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.ReportSession), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

// TryBeginGenerate claims the session for one generation run. The flag
// flips under the session lock, so of any number of concurrent callers
// exactly one gets true; the rest see the claim until EndGenerate.
func (r *SessionRepository) TryBeginGenerate(session *store.ReportSession) bool {
	r.Lock(session.ID)
	defer r.Unlock(session.ID)
	if session.Loading {
		return false
	}
	session.Loading = true
	r.Save(session)
	return true
}

// EndGenerate releases the claim taken by TryBeginGenerate.
func (r *SessionRepository) EndGenerate(session *store.ReportSession) {
	r.Lock(session.ID)
	defer r.Unlock(session.ID)
	session.Loading = false
	r.Save(session)
}
