// Package menu provides the in-game menu model. The gameplay loop owns the
// open menu and feeds it navigation intents; renderers only draw it.
package menu

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// Menu is an open menu: its items and the current selection.
type Menu struct {
	Title    string
	Items    []MenuItem
	Selected int
	HelpText string
}

// New creates a menu with the first selectable item selected.
func New(title string, items []MenuItem) *Menu {
	m := &Menu{Title: title, Items: items}
	for i, item := range items {
		if item.IsSelectable() {
			m.Selected = i
			break
		}
	}
	m.HelpText = m.helpFor(m.Selected)
	return m
}

func (m *Menu) helpFor(i int) string {
	if i < 0 || i >= len(m.Items) {
		return ""
	}
	return m.Items[i].GetHelpText()
}

// Current returns the selected item, or nil for an empty menu.
func (m *Menu) Current() MenuItem {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return nil
	}
	return m.Items[m.Selected]
}

// Prev moves the selection up to the previous selectable item, wrapping
// around to the bottom.
func (m *Menu) Prev() {
	n := len(m.Items)
	for step := 1; step < n; step++ {
		i := (m.Selected - step + n) % n
		if m.Items[i].IsSelectable() {
			m.Selected = i
			m.HelpText = m.helpFor(i)
			return
		}
	}
}

// Next moves the selection down to the next selectable item, wrapping
// around to the top.
func (m *Menu) Next() {
	n := len(m.Items)
	for step := 1; step < n; step++ {
		i := (m.Selected + step) % n
		if m.Items[i].IsSelectable() {
			m.Selected = i
			m.HelpText = m.helpFor(i)
			return
		}
	}
}
