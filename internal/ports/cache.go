package ports

import "textile-erp-nav/internal/navigation"

// QueryCache holds fetched reference data until it is invalidated.
type QueryCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Delete(keys ...string)
}

// ExpandStateStore keeps each viewer's section expand state.
type ExpandStateStore interface {
	Get(userID string) (*navigation.ExpandState, bool)
	// LoadOrStore returns the state already stored for userID, or stores
	// and returns state when there is none.
	LoadOrStore(userID string, state *navigation.ExpandState) *navigation.ExpandState
	Delete(userID string)
}

// SessionStore remembers which identity a client session is bound to.
type SessionStore interface {
	Bound(sessionID string) (string, bool)
	Bind(sessionID, userID string)
}
