// Package navigation holds the declarative ERP menu catalog and resolves it
// against capability flags and the current URL path.
package navigation

import (
	"fmt"
	"strings"

	"textile-erp-nav/internal/access"
)

type Item struct {
	Href  string `json:"href"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// Section is a collapsible group of items. It is visible when any capability
// in Requires is set; an empty Requires makes it visible to everyone.
type Section struct {
	Key         string              `json:"key"`
	Title       string              `json:"title"`
	Icon        string              `json:"icon"`
	Requires    []access.Capability `json:"requires,omitempty"`
	DefaultOpen bool                `json:"defaultOpen"`
	Items       []Item              `json:"items"`
}

func (s Section) VisibleTo(flags access.Flags) bool {
	if len(s.Requires) == 0 {
		return true
	}
	return flags.Any(s.Requires...)
}

// Route maps a path prefix to a section key. Routes are matched in declared
// order, so a more specific prefix must come before any prefix of it.
type Route struct {
	Prefix string `json:"prefix"`
	Key    string `json:"key"`
}

type Catalog struct {
	appName  string
	sections []Section
	routes   []Route
	byKey    map[string]int
}

// NewCatalog validates the declaration and builds a catalog. Section keys and
// item hrefs must be unique, every route must name a declared section and no
// route may be shadowed by an earlier one.
func NewCatalog(appName string, sections []Section, routes []Route) (*Catalog, error) {
	c := &Catalog{
		appName:  appName,
		sections: sections,
		routes:   routes,
		byKey:    make(map[string]int, len(sections)),
	}
	hrefs := map[string]string{}
	for i, s := range sections {
		if s.Key == "" {
			return nil, fmt.Errorf("section %d: empty key", i)
		}
		if _, dup := c.byKey[s.Key]; dup {
			return nil, fmt.Errorf("section %q declared twice", s.Key)
		}
		c.byKey[s.Key] = i
		for _, item := range s.Items {
			if owner, dup := hrefs[item.Href]; dup {
				return nil, fmt.Errorf("href %q declared in %q and %q", item.Href, owner, s.Key)
			}
			hrefs[item.Href] = s.Key
		}
	}
	for i, r := range routes {
		if r.Prefix == "" {
			return nil, fmt.Errorf("route %d: empty prefix", i)
		}
		if _, ok := c.byKey[r.Key]; !ok {
			return nil, fmt.Errorf("route %q points at unknown section %q", r.Prefix, r.Key)
		}
		for _, earlier := range routes[:i] {
			if strings.HasPrefix(r.Prefix, earlier.Prefix) {
				return nil, fmt.Errorf("route %q is shadowed by earlier route %q", r.Prefix, earlier.Prefix)
			}
		}
	}
	return c, nil
}

func (c *Catalog) AppName() string { return c.appName }

func (c *Catalog) Sections() []Section {
	out := make([]Section, len(c.sections))
	copy(out, c.sections)
	return out
}

func (c *Catalog) Routes() []Route {
	out := make([]Route, len(c.routes))
	copy(out, c.routes)
	return out
}

func (c *Catalog) Section(key string) (Section, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return Section{}, false
	}
	return c.sections[i], true
}

// VisibleSections keeps declared order and does not filter items.
func (c *Catalog) VisibleSections(flags access.Flags) []Section {
	out := make([]Section, 0, len(c.sections))
	for _, s := range c.sections {
		if s.VisibleTo(flags) {
			out = append(out, s)
		}
	}
	return out
}

// ResolveActiveSection returns the key of the first route whose prefix path
// starts with, or "" when no route matches.
func (c *Catalog) ResolveActiveSection(path string) string {
	for _, r := range c.routes {
		if strings.HasPrefix(path, r.Prefix) {
			return r.Key
		}
	}
	return ""
}

// ResolveActiveItem matches on the exact href only.
func ResolveActiveItem(path string, items []Item) (Item, bool) {
	for _, item := range items {
		if item.Href == path {
			return item, true
		}
	}
	return Item{}, false
}

// ResolveTitle picks the page title: explicit, then the active section title,
// then the department name, then the application name.
func (c *Catalog) ResolveTitle(path, explicit, departmentName string) string {
	if explicit != "" {
		return explicit
	}
	if s, ok := c.Section(c.ResolveActiveSection(path)); ok {
		return s.Title
	}
	if departmentName != "" {
		return departmentName
	}
	return c.appName
}
