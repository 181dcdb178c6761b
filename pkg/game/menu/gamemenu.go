package menu

import (
	"github.com/leonelquinteros/gotext"

	"minesweeper/pkg/game/difficulty"
)

// Action is what activating a game menu item asks for.
type Action int

const (
	ActionNone Action = iota
	ActionNewGame
	ActionRestart
	ActionResume
	ActionQuit
)

// Item is an entry of the game menu.
type Item struct {
	Label    string
	Help     string
	Action   Action
	Level    difficulty.Level // for ActionNewGame
	Disabled bool
}

// GetLabel returns the display label for this menu item.
func (i *Item) GetLabel() string {
	return i.Label
}

// IsSelectable returns whether this item can be selected.
func (i *Item) IsSelectable() bool {
	return !i.Disabled
}

// GetHelpText returns help text for this menu item.
func (i *Item) GetHelpText() string {
	return i.Help
}

// NewGameMenu builds the in-game menu. The current difficulty is marked.
func NewGameMenu(current difficulty.Level) *Menu {
	var items []MenuItem
	for _, level := range difficulty.All() {
		label := gotext.Get("New game: %s", level.Label())
		if level == current {
			label += " *"
		}
		items = append(items, &Item{
			Label:  label,
			Help:   gotext.Get("%d x %d board with %d mines", level.Config().Rows, level.Config().Cols, level.Config().Mines),
			Action: ActionNewGame,
			Level:  level,
		})
	}
	items = append(items,
		&Item{Label: gotext.Get("Restart"), Help: gotext.Get("New board at the current difficulty"), Action: ActionRestart},
		&Item{Label: gotext.Get("Resume"), Help: gotext.Get("Close this menu"), Action: ActionResume},
		&Item{Label: gotext.Get("Quit"), Help: gotext.Get("Exit the game"), Action: ActionQuit},
	)
	return New(gotext.Get("Minesweeper"), items)
}

// Activate returns the action of the selected item.
func (m *Menu) Activate() (*Item, Action) {
	item, ok := m.Current().(*Item)
	if !ok || !item.IsSelectable() {
		return nil, ActionNone
	}
	return item, item.Action
}
