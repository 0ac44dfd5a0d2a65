package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/weezy/internal/assistant"
	"github.com/dori/weezy/internal/model"
	"github.com/dori/weezy/internal/ui/theme"
)

// ToastMsg asks the root to flash a short message in the status line
type ToastMsg struct {
	Title string
	Body  string
}

// ChatReplyMsg carries a delayed assistant reply back to the chat it belongs to.
// Replies from an older generation of the chat are dropped.
type ChatReplyMsg struct {
	ChatID string
	Gen    int
	Reply  assistant.Reply
}

// WorkspaceRenamedMsg announces a new workspace name
type WorkspaceRenamedMsg struct {
	Name string
}

// FilesChangedMsg carries the workspace files after an upload
type FilesChangedMsg struct {
	Files []model.File
}

// TaskCompletedMsg is sent when a task enters the completed column
type TaskCompletedMsg struct {
	Task model.Task
}

// IntegrationsChangedMsg carries the integration list after a connect toggle
type IntegrationsChangedMsg struct {
	Integrations []model.Integration
}

// MemberInvitedMsg is sent after an invitation is recorded
type MemberInvitedMsg struct {
	Email string
}

// NotificationsToggledMsg reports the desktop notification switch
type NotificationsToggledMsg struct {
	Enabled bool
}

func toast(title, body string) tea.Cmd {
	return func() tea.Msg { return ToastMsg{Title: title, Body: body} }
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// truncate shortens s to width runes, ending in an ellipsis
func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 {
		return ""
	}
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// tabs renders a row of tab labels with the active one highlighted
func tabs(labels []string, active int) string {
	styles := theme.Current.Styles
	var out []string
	for i, l := range labels {
		if i == active {
			out = append(out, styles.TabOn.Render(l))
		} else {
			out = append(out, styles.Tab.Render(l))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

// bar renders a horizontal bar of width cells filled to ratio
func bar(ratio float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio*float64(width) + 0.5)
	t := theme.Current.Theme
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(t.Border).Render(strings.Repeat("░", width-filled))
}

// sourceBadge renders a platform name in its palette color
func sourceBadge(source string) string {
	return lipgloss.NewStyle().Foreground(theme.Current.Theme.SourceColor(source)).Render(source)
}

// kindIcon returns a short glyph for a file kind
func kindIcon(k model.Kind) string {
	switch k {
	case model.KindDocument:
		return "📄"
	case model.KindSpreadsheet:
		return "📊"
	case model.KindPDF:
		return "📕"
	case model.KindImage:
		return "🖼"
	case model.KindCode:
		return "⌨"
	case model.KindPresentation:
		return "📽"
	case model.KindData:
		return "🗄"
	case model.KindArchive:
		return "📦"
	default:
		return "•"
	}
}
