package theme

import "github.com/charmbracelet/lipgloss"

// Gruvbox theme - Retro groove color scheme
// https://github.com/morhetz/gruvbox
var Gruvbox = Theme{
	Name: "gruvbox",

	Background: lipgloss.Color("#282828"),
	Foreground: lipgloss.Color("#EBDBB2"),
	Subtle:     lipgloss.Color("#928374"),
	Highlight:  lipgloss.Color("#3C3836"),
	Border:     lipgloss.Color("#504945"),

	Primary:   lipgloss.Color("#83A598"), // Aqua
	Secondary: lipgloss.Color("#8EC07C"), // Green
	Info:      lipgloss.Color("#83A598"), // Aqua

	Success: lipgloss.Color("#B8BB26"),
	Warning: lipgloss.Color("#FABD2F"),
	Error:   lipgloss.Color("#FB4934"),

	PriorityLow:    lipgloss.Color("#B8BB26"),
	PriorityMedium: lipgloss.Color("#FABD2F"),
	PriorityHigh:   lipgloss.Color("#FE8019"), // Orange

	StatusTodo:       lipgloss.Color("#EBDBB2"),
	StatusInProgress: lipgloss.Color("#83A598"),
	StatusReview:     lipgloss.Color("#D3869B"), // Purple
	StatusCompleted:  lipgloss.Color("#B8BB26"),

	SourceLocal:    lipgloss.Color("#B8BB26"),
	SourceDrive:    lipgloss.Color("#83A598"),
	SourceDropbox:  lipgloss.Color("#458588"),
	SourceOneDrive: lipgloss.Color("#8EC07C"),
	SourceNotion:   lipgloss.Color("#EBDBB2"),
	SourceSlack:    lipgloss.Color("#D3869B"),
}
