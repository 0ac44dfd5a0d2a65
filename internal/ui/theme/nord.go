package theme

import "github.com/charmbracelet/lipgloss"

// Nord theme - Arctic, north-bluish color palette
// https://www.nordtheme.com/
var Nord = Theme{
	Name: "nord",

	// Polar Night
	Background: lipgloss.Color("#2E3440"),
	Foreground: lipgloss.Color("#ECEFF4"),
	Subtle:     lipgloss.Color("#4C566A"),
	Highlight:  lipgloss.Color("#3B4252"),
	Border:     lipgloss.Color("#4C566A"),

	// Frost
	Primary:   lipgloss.Color("#88C0D0"), // Nord8
	Secondary: lipgloss.Color("#81A1C1"), // Nord9
	Info:      lipgloss.Color("#5E81AC"), // Nord10

	// Aurora
	Success: lipgloss.Color("#A3BE8C"), // Nord14
	Warning: lipgloss.Color("#EBCB8B"), // Nord13
	Error:   lipgloss.Color("#BF616A"), // Nord11

	PriorityLow:    lipgloss.Color("#A3BE8C"),
	PriorityMedium: lipgloss.Color("#EBCB8B"),
	PriorityHigh:   lipgloss.Color("#D08770"),

	StatusTodo:       lipgloss.Color("#D8DEE9"),
	StatusInProgress: lipgloss.Color("#88C0D0"),
	StatusReview:     lipgloss.Color("#B48EAD"),
	StatusCompleted:  lipgloss.Color("#A3BE8C"),

	SourceLocal:    lipgloss.Color("#A3BE8C"),
	SourceDrive:    lipgloss.Color("#5E81AC"),
	SourceDropbox:  lipgloss.Color("#81A1C1"),
	SourceOneDrive: lipgloss.Color("#88C0D0"),
	SourceNotion:   lipgloss.Color("#ECEFF4"),
	SourceSlack:    lipgloss.Color("#B48EAD"),
}
