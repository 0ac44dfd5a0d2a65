package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the global keybindings. Per-view keys live with their views.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Actions
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Toggle key.Binding
	Move   key.Binding
	Filter key.Binding
	Sort   key.Binding
	Search key.Binding

	// Views
	DashboardView key.Binding
	WorkspaceView key.Binding
	ChatView      key.Binding
	TasksView     key.Binding
	StorageView   key.Binding
	SettingsView  key.Binding

	// General
	Help       key.Binding
	ThemeCycle key.Binding
	Quit       key.Binding
	Back       key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("PgDn", "page down"),
		),

		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add task"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit task"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "toggle done"),
		),
		Move: key.NewBinding(
			key.WithKeys("H", "L"),
			key.WithHelp("H/L", "move status"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "status filter"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s", "o"),
			key.WithHelp("s/o", "sort"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),

		DashboardView: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "dashboard"),
		),
		WorkspaceView: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "workspace"),
		),
		ChatView: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "chat"),
		),
		TasksView: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "tasks"),
		),
		StorageView: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "storage"),
		),
		SettingsView: key.NewBinding(
			key.WithKeys("6"),
			key.WithHelp("6", "settings"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		ThemeCycle: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// ShortHelp returns short help bindings (for status bar)
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns full help bindings (for help view)
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.DashboardView, k.WorkspaceView, k.ChatView, k.TasksView, k.StorageView, k.SettingsView},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Search, k.Back},
		{k.Add, k.Edit, k.Delete, k.Toggle, k.Move, k.Filter, k.Sort},
		{k.Help, k.ThemeCycle, k.Quit},
	}
}
