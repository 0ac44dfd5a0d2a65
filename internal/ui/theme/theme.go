package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/weezy/internal/model"
)

// Theme defines the color scheme and styles for the UI
type Theme struct {
	Name string

	// Base colors
	Background lipgloss.Color
	Foreground lipgloss.Color
	Subtle     lipgloss.Color
	Highlight  lipgloss.Color
	Border     lipgloss.Color

	// Semantic colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Info      lipgloss.Color

	// Priority colors
	PriorityLow    lipgloss.Color
	PriorityMedium lipgloss.Color
	PriorityHigh   lipgloss.Color

	// Status colors
	StatusTodo       lipgloss.Color
	StatusInProgress lipgloss.Color
	StatusReview     lipgloss.Color
	StatusCompleted  lipgloss.Color

	// Source platform colors
	SourceLocal    lipgloss.Color
	SourceDrive    lipgloss.Color
	SourceDropbox  lipgloss.Color
	SourceOneDrive lipgloss.Color
	SourceNotion   lipgloss.Color
	SourceSlack    lipgloss.Color
}

// PriorityColor returns the color of a priority badge
func (t Theme) PriorityColor(p model.Priority) lipgloss.Color {
	switch p {
	case model.PriorityHigh:
		return t.PriorityHigh
	case model.PriorityLow:
		return t.PriorityLow
	default:
		return t.PriorityMedium
	}
}

// StatusColor returns the color of a status badge or board column
func (t Theme) StatusColor(s model.Status) lipgloss.Color {
	switch s {
	case model.StatusInProgress:
		return t.StatusInProgress
	case model.StatusReview:
		return t.StatusReview
	case model.StatusCompleted:
		return t.StatusCompleted
	default:
		return t.StatusTodo
	}
}

// SourceColor returns the color of a source label. Unknown sources are subtle.
func (t Theme) SourceColor(source string) lipgloss.Color {
	switch model.SourceStyle(source) {
	case "drive":
		return t.SourceDrive
	case "dropbox":
		return t.SourceDropbox
	case "onedrive":
		return t.SourceOneDrive
	case "notion":
		return t.SourceNotion
	case "slack":
		return t.SourceSlack
	case "local":
		return t.SourceLocal
	default:
		return t.Subtle
	}
}

// Styles holds pre-computed lipgloss styles based on theme
type Styles struct {
	// Base styles
	App    lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style

	// List rows
	ItemNormal   lipgloss.Style
	ItemSelected lipgloss.Style
	ItemDone     lipgloss.Style
	ItemOverdue  lipgloss.Style

	// Component styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Tag      lipgloss.Style
	DueDate  lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style

	// Input styles
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Placeholder  lipgloss.Style

	// Panel styles
	Panel      lipgloss.Style
	PanelTitle lipgloss.Style

	// Chat bubbles
	BubbleUser      lipgloss.Style
	BubbleAssistant lipgloss.Style
	Attachment      lipgloss.Style

	// Help styles
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusKey   lipgloss.Style
	StatusValue lipgloss.Style
}

// NewStyles creates styles from a theme
func NewStyles(t Theme) Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Background(t.Background).
			Foreground(t.Foreground),

		Header: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Padding(0, 1),

		ItemNormal: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 1),

		ItemSelected: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Background(t.Highlight).
			Padding(0, 1),

		ItemDone: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Strikethrough(true).
			Padding(0, 1),

		ItemOverdue: lipgloss.NewStyle().
			Foreground(t.Error).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Italic(true),

		Label: lipgloss.NewStyle().
			Foreground(t.Subtle),

		Tag: lipgloss.NewStyle().
			Foreground(t.Info).
			Background(t.Highlight).
			Padding(0, 1).
			MarginRight(1),

		DueDate: lipgloss.NewStyle().
			Foreground(t.Warning),

		Tab: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Padding(0, 2),

		TabOn: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Primary).
			Bold(true).
			Padding(0, 2),

		Input: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),

		Placeholder: lipgloss.NewStyle().
			Foreground(t.Subtle),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		PanelTitle: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		BubbleUser: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Primary).
			Padding(0, 1),

		BubbleAssistant: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Background(t.Highlight).
			Padding(0, 1),

		Attachment: lipgloss.NewStyle().
			Foreground(t.Info).
			PaddingLeft(2),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(t.Subtle),

		HelpSeparator: lipgloss.NewStyle().
			Foreground(t.Border),

		StatusBar: lipgloss.NewStyle().
			Background(t.Highlight).
			Foreground(t.Foreground).
			Padding(0, 1),

		StatusKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		StatusValue: lipgloss.NewStyle().
			Foreground(t.Foreground),
	}
}

// Current holds the current active theme and styles
var Current = struct {
	Theme  Theme
	Styles Styles
}{
	Theme:  Nord,
	Styles: NewStyles(Nord),
}

// SetTheme changes the current theme
func SetTheme(t Theme) {
	Current.Theme = t
	Current.Styles = NewStyles(t)
}

// Available returns all available themes
func Available() []Theme {
	return []Theme{
		Nord,
		Dracula,
		Gruvbox,
		Catppuccin,
	}
}

// Names returns the names of all available themes
func Names() []string {
	var names []string
	for _, t := range Available() {
		names = append(names, t.Name)
	}
	return names
}

// ByName returns a theme by its name
func ByName(name string) (Theme, bool) {
	for _, t := range Available() {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Next returns the theme after the named one, wrapping around
func Next(name string) Theme {
	themes := Available()
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}
