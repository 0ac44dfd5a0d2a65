package theme

import "github.com/charmbracelet/lipgloss"

// Dracula theme - Dark theme with vibrant colors
// https://draculatheme.com/
var Dracula = Theme{
	Name: "dracula",

	Background: lipgloss.Color("#282A36"),
	Foreground: lipgloss.Color("#F8F8F2"),
	Subtle:     lipgloss.Color("#6272A4"),
	Highlight:  lipgloss.Color("#44475A"),
	Border:     lipgloss.Color("#6272A4"),

	Primary:   lipgloss.Color("#BD93F9"), // Purple
	Secondary: lipgloss.Color("#8BE9FD"), // Cyan
	Info:      lipgloss.Color("#8BE9FD"), // Cyan

	Success: lipgloss.Color("#50FA7B"), // Green
	Warning: lipgloss.Color("#F1FA8C"), // Yellow
	Error:   lipgloss.Color("#FF5555"), // Red

	PriorityLow:    lipgloss.Color("#50FA7B"),
	PriorityMedium: lipgloss.Color("#F1FA8C"),
	PriorityHigh:   lipgloss.Color("#FFB86C"), // Orange

	StatusTodo:       lipgloss.Color("#F8F8F2"),
	StatusInProgress: lipgloss.Color("#8BE9FD"),
	StatusReview:     lipgloss.Color("#FF79C6"), // Pink
	StatusCompleted:  lipgloss.Color("#50FA7B"),

	SourceLocal:    lipgloss.Color("#50FA7B"),
	SourceDrive:    lipgloss.Color("#8BE9FD"),
	SourceDropbox:  lipgloss.Color("#BD93F9"),
	SourceOneDrive: lipgloss.Color("#6272A4"),
	SourceNotion:   lipgloss.Color("#F8F8F2"),
	SourceSlack:    lipgloss.Color("#FF79C6"),
}
