package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"textile-erp-nav/internal/navigation"
)

// QueryCache is an in-process cache of fetched reference data.
type QueryCache struct {
	c *gocache.Cache
}

func NewQueryCache(ttl time.Duration) *QueryCache {
	return &QueryCache{c: gocache.New(ttl, cleanupInterval(ttl))}
}

func (q *QueryCache) Get(key string) (any, bool) { return q.c.Get(key) }

func (q *QueryCache) Set(key string, value any) { q.c.SetDefault(key, value) }

func (q *QueryCache) Delete(keys ...string) {
	for _, k := range keys {
		q.c.Delete(k)
	}
}

// ExpandStates keeps a viewer's expand state alive while they keep
// navigating; an idle state expires after ttl.
type ExpandStates struct {
	c *gocache.Cache
}

func NewExpandStates(ttl time.Duration) *ExpandStates {
	return &ExpandStates{c: gocache.New(ttl, cleanupInterval(ttl))}
}

func (s *ExpandStates) Get(userID string) (*navigation.ExpandState, bool) {
	v, ok := s.c.Get(userID)
	if !ok {
		return nil, false
	}
	st, ok := v.(*navigation.ExpandState)
	if ok {
		s.c.SetDefault(userID, st)
	}
	return st, ok
}

func (s *ExpandStates) LoadOrStore(userID string, state *navigation.ExpandState) *navigation.ExpandState {
	for {
		if err := s.c.Add(userID, state, gocache.DefaultExpiration); err == nil {
			return state
		}
		if st, ok := s.Get(userID); ok {
			return st
		}
	}
}

func (s *ExpandStates) Delete(userID string) { s.c.Delete(userID) }

// Sessions binds client session ids to the identity that last signed in
// on them.
type Sessions struct {
	c *gocache.Cache
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{c: gocache.New(ttl, cleanupInterval(ttl))}
}

func (s *Sessions) Bound(sessionID string) (string, bool) {
	v, ok := s.c.Get(sessionID)
	if !ok {
		return "", false
	}
	uid, ok := v.(string)
	return uid, ok
}

func (s *Sessions) Bind(sessionID, userID string) { s.c.SetDefault(sessionID, userID) }

func cleanupInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return 0
	}
	if ttl < time.Minute {
		return ttl
	}
	return time.Minute
}
