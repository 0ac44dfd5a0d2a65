package ui

import "strings"

// View represents the current active view
type View int

const (
	ViewDashboard View = iota
	ViewWorkspace
	ViewChat
	ViewTasks
	ViewStorage
	ViewSettings
)

// String returns the display name for a view
func (v View) String() string {
	switch v {
	case ViewDashboard:
		return "Dashboard"
	case ViewWorkspace:
		return "Workspace"
	case ViewChat:
		return "Chat"
	case ViewTasks:
		return "Tasks"
	case ViewStorage:
		return "Storage"
	case ViewSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

// ParseView maps a configured view name onto a View
func ParseView(name string) (View, bool) {
	for v := ViewDashboard; v <= ViewSettings; v++ {
		if strings.EqualFold(v.String(), name) {
			return v, true
		}
	}
	return ViewDashboard, false
}

// Messages for inter-component communication

// SwitchViewMsg requests a view change
type SwitchViewMsg struct {
	View View
}

// ErrorMsg contains an error to display
type ErrorMsg struct {
	Err error
}

// StatusMsg contains a status message to display
type StatusMsg struct {
	Message string
}

// ThemeChangedMsg indicates the theme was changed
type ThemeChangedMsg struct {
	ThemeName string
}
