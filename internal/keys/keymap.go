package keys

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the bindings shown in the header and used by the picker.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Select    key.Binding
	Backspace key.Binding
	Mode      key.Binding
	Quit      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/^p", "up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓/^n", "down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("^u", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("^d", "page down")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Backspace: key.NewBinding(key.WithKeys("backspace")),
		Mode:      key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("^t", "search mode")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("^c", "quit")),
	}
}

// ShortHelp lists the bindings for the header line.
func (m KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{m.Up, m.Down, m.PageDown, m.Select, m.Mode, m.Quit}
}

// Matches reports whether k triggers any of the enabled bindings.
func (k Key) Matches(bindings ...key.Binding) bool {
	name := k.String()
	if name == "" {
		return false
	}
	for _, b := range bindings {
		if b.Enabled() && slices.Contains(b.Keys(), name) {
			return true
		}
	}
	return false
}
