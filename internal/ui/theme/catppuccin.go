package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin theme (Mocha) - Soothing pastel theme
// https://github.com/catppuccin/catppuccin
var Catppuccin = Theme{
	Name: "catppuccin",

	Background: lipgloss.Color("#1E1E2E"), // Base
	Foreground: lipgloss.Color("#CDD6F4"), // Text
	Subtle:     lipgloss.Color("#6C7086"), // Overlay0
	Highlight:  lipgloss.Color("#313244"), // Surface0
	Border:     lipgloss.Color("#45475A"), // Surface1

	Primary:   lipgloss.Color("#89B4FA"), // Blue
	Secondary: lipgloss.Color("#CBA6F7"), // Mauve
	Info:      lipgloss.Color("#74C7EC"), // Sapphire

	Success: lipgloss.Color("#A6E3A1"),
	Warning: lipgloss.Color("#F9E2AF"),
	Error:   lipgloss.Color("#F38BA8"),

	PriorityLow:    lipgloss.Color("#A6E3A1"),
	PriorityMedium: lipgloss.Color("#F9E2AF"),
	PriorityHigh:   lipgloss.Color("#FAB387"), // Peach

	StatusTodo:       lipgloss.Color("#BAC2DE"), // Subtext1
	StatusInProgress: lipgloss.Color("#89B4FA"),
	StatusReview:     lipgloss.Color("#CBA6F7"),
	StatusCompleted:  lipgloss.Color("#A6E3A1"),

	SourceLocal:    lipgloss.Color("#A6E3A1"),
	SourceDrive:    lipgloss.Color("#89B4FA"),
	SourceDropbox:  lipgloss.Color("#74C7EC"),
	SourceOneDrive: lipgloss.Color("#94E2D5"), // Teal
	SourceNotion:   lipgloss.Color("#CDD6F4"),
	SourceSlack:    lipgloss.Color("#F5C2E7"), // Pink
}
