package navigation

import "sync"

// ExpandState tracks which sections are expanded for one viewer. A section
// starts expanded when it is DefaultOpen or active, is auto-expanded when it
// becomes active and is only ever collapsed by Toggle.
type ExpandState struct {
	mu       sync.Mutex
	catalog  *Catalog
	expanded map[string]bool
}

func NewExpandState(c *Catalog, path string) *ExpandState {
	s := &ExpandState{catalog: c, expanded: make(map[string]bool, len(c.sections))}
	active := c.ResolveActiveSection(path)
	for _, sec := range c.sections {
		s.expanded[sec.Key] = sec.DefaultOpen || sec.Key == active
	}
	return s
}

// Observe applies a navigation event and returns the active section key.
func (s *ExpandState) Observe(path string) string {
	active := s.catalog.ResolveActiveSection(path)
	if active == "" {
		return ""
	}
	s.mu.Lock()
	s.expanded[active] = true
	s.mu.Unlock()
	return active
}

// Toggle flips a section and reports its new state. Unknown keys are ignored
// and report false.
func (s *ExpandState) Toggle(key string) (expanded, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, known := s.expanded[key]
	if !known {
		return false, false
	}
	s.expanded[key] = !cur
	return !cur, true
}

func (s *ExpandState) Expanded(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expanded[key]
}

func (s *ExpandState) Snapshot() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]bool, len(s.expanded))
	for k, v := range s.expanded {
		out[k] = v
	}
	return out
}
