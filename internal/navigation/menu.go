package navigation

import "textile-erp-nav/internal/access"

type IconStyle struct {
	Icon  string `json:"icon"`
	Class string `json:"class"`
}

const (
	iconBaseClass   = "h-4 w-4 shrink-0"
	iconIdleClass   = iconBaseClass + " text-muted-foreground"
	iconActiveClass = iconBaseClass + " text-primary"
)

// StyleIcon maps an icon id and its active state to the style applied to it.
func StyleIcon(icon string, active bool) IconStyle {
	if icon == "" {
		return IconStyle{}
	}
	if active {
		return IconStyle{Icon: icon, Class: iconActiveClass}
	}
	return IconStyle{Icon: icon, Class: iconIdleClass}
}

type ItemView struct {
	Href     string    `json:"href"`
	Label    string    `json:"label"`
	Icon     IconStyle `json:"icon"`
	Selected bool      `json:"selected"`
}

type SectionView struct {
	Key      string     `json:"key"`
	Title    string     `json:"title"`
	Icon     IconStyle  `json:"icon"`
	Active   bool       `json:"active"`
	Expanded bool       `json:"expanded"`
	Items    []ItemView `json:"items"`
}

// Render interprets the catalog for one viewer: visible sections in declared
// order with the active section, selected item and expand state applied. A
// nil state renders every section with its initial state for path.
func (c *Catalog) Render(flags access.Flags, path string, state *ExpandState) []SectionView {
	if state == nil {
		state = NewExpandState(c, path)
	}
	active := state.Observe(path)
	visible := c.VisibleSections(flags)
	out := make([]SectionView, 0, len(visible))
	for _, s := range visible {
		selected, _ := ResolveActiveItem(path, s.Items)
		items := make([]ItemView, 0, len(s.Items))
		for _, item := range s.Items {
			isSel := item.Href == selected.Href && selected.Href != ""
			items = append(items, ItemView{
				Href:     item.Href,
				Label:    item.Label,
				Icon:     StyleIcon(item.Icon, isSel),
				Selected: isSel,
			})
		}
		out = append(out, SectionView{
			Key:      s.Key,
			Title:    s.Title,
			Icon:     StyleIcon(s.Icon, s.Key == active),
			Active:   s.Key == active,
			Expanded: state.Expanded(s.Key),
			Items:    items,
		})
	}
	return out
}
