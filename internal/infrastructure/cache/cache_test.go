package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"textile-erp-nav/internal/navigation"
	"textile-erp-nav/internal/ports"
)

var (
	_ ports.QueryCache       = (*QueryCache)(nil)
	_ ports.ExpandStateStore = (*ExpandStates)(nil)
	_ ports.SessionStore     = (*Sessions)(nil)
)

func TestQueryCache_SetGetDelete(t *testing.T) {
	c := NewQueryCache(time.Minute)
	c.Set("roles:u1", []string{"Admin"})
	c.Set("permissions:u1", []string{})

	v, ok := c.Get("roles:u1")
	require.True(t, ok)
	assert.Equal(t, []string{"Admin"}, v)

	c.Delete("roles:u1", "permissions:u1", "missing")
	_, ok = c.Get("roles:u1")
	assert.False(t, ok)
	_, ok = c.Get("permissions:u1")
	assert.False(t, ok)
}

func TestQueryCache_Expires(t *testing.T) {
	c := NewQueryCache(20 * time.Millisecond)
	c.Set("departments", 1)
	time.Sleep(50 * time.Millisecond)
	_, ok := c.Get("departments")
	assert.False(t, ok)
}

func TestExpandStates(t *testing.T) {
	s := NewExpandStates(time.Minute)
	st := navigation.NewExpandState(navigation.Default(""), "/sales/orders")
	assert.Same(t, st, s.LoadOrStore("u1", st))

	got, ok := s.Get("u1")
	require.True(t, ok)
	assert.Same(t, st, got)
	assert.True(t, got.Expanded("sales"))

	s.Delete("u1")
	_, ok = s.Get("u1")
	assert.False(t, ok)
}

func TestExpandStates_LoadOrStoreKeepsFirst(t *testing.T) {
	s := NewExpandStates(time.Minute)
	catalog := navigation.Default("")

	const workers = 32
	got := make([]*navigation.ExpandState, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = s.LoadOrStore("u1", navigation.NewExpandState(catalog, "/"))
		}(i)
	}
	wg.Wait()

	stored, ok := s.Get("u1")
	require.True(t, ok)
	for _, st := range got {
		assert.Same(t, stored, st)
	}
}

func TestSessions_Bind(t *testing.T) {
	s := NewSessions(time.Minute)
	_, ok := s.Bound("tab-1")
	assert.False(t, ok)

	s.Bind("tab-1", "u1")
	s.Bind("tab-1", "u2")
	uid, ok := s.Bound("tab-1")
	require.True(t, ok)
	assert.Equal(t, "u2", uid)
}
