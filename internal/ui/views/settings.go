package views

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/weezy/internal/model"
	"github.com/dori/weezy/internal/store"
	"github.com/dori/weezy/internal/ui/theme"
)

// SettingsSection selects the settings panel
type SettingsSection int

const (
	SectionGeneral SettingsSection = iota
	SectionIntegrations
	SectionTeam
)

var settingsSectionNames = []string{"General", "Integrations", "Team"}

// SettingsMode represents the current input mode
type SettingsMode int

const (
	SettingsModeNormal SettingsMode = iota
	SettingsModeRename
	SettingsModeInvite
	SettingsModeConfirmRemove
)

// SettingsView manages the workspace name, integrations and team members
type SettingsView struct {
	width  int
	height int

	name          string
	notifications bool
	integrations  store.Collection[model.Integration]
	members       store.Collection[model.Member]

	section SettingsSection
	cursor  int

	mode      SettingsMode
	textInput textinput.Model
	removeID  string
}

// NewSettingsView creates the settings view
func NewSettingsView(name string, notifications bool, integrations []model.Integration, members []model.Member, opts ...store.Option) SettingsView {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 128

	return SettingsView{
		name:          name,
		notifications: notifications,
		integrations:  store.New(integrations, opts...),
		members:       store.New(members, opts...),
		textInput:     ti,
	}
}

// Init initializes the settings view
func (v SettingsView) Init() tea.Cmd {
	return nil
}

// SetSize sets the view dimensions
func (v SettingsView) SetSize(width, height int) SettingsView {
	v.width = width
	v.height = height
	return v
}

// SetName updates the workspace name after a rename elsewhere
func (v SettingsView) SetName(name string) SettingsView {
	v.name = name
	return v
}

// Name returns the workspace name
func (v SettingsView) Name() string { return v.name }

// Notifications reports whether desktop notifications are on
func (v SettingsView) Notifications() bool { return v.notifications }

// Integrations returns the integrations in display order
func (v SettingsView) Integrations() []model.Integration { return v.integrations.List() }

// Members returns the team members in display order
func (v SettingsView) Members() []model.Member { return v.members.List() }

func (v SettingsView) rowCount() int {
	switch v.section {
	case SectionIntegrations:
		return v.integrations.Len()
	case SectionTeam:
		return v.members.Len()
	default:
		return 2
	}
}

// Update handles messages
func (v SettingsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch v.mode {
		case SettingsModeRename:
			return v.handleRenameMode(msg)
		case SettingsModeInvite:
			return v.handleInviteMode(msg)
		case SettingsModeConfirmRemove:
			return v.handleConfirmRemoveMode(msg)
		default:
			return v.handleNormalMode(msg)
		}
	}

	if v.mode == SettingsModeRename || v.mode == SettingsModeInvite {
		var cmd tea.Cmd
		v.textInput, cmd = v.textInput.Update(msg)
		return v, cmd
	}
	return v, nil
}

// handleNormalMode handles keys in normal mode
func (v SettingsView) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "l", "right":
		v.section = (v.section + 1) % 3
		v.cursor = 0
		return v, nil

	case "shift+tab", "h", "left":
		v.section = (v.section + 2) % 3
		v.cursor = 0
		return v, nil

	case "j", "down":
		if v.cursor < v.rowCount()-1 {
			v.cursor++
		}
		return v, nil

	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}
		return v, nil

	case "r":
		return v.startRename()

	case "n":
		return v.toggleNotifications()

	case "i":
		v.section = SectionTeam
		v.mode = SettingsModeInvite
		v.textInput.Placeholder = "colleague@company.com"
		v.textInput.SetValue("")
		v.textInput.Focus()
		return v, textinput.Blink

	case "enter", " ":
		switch v.section {
		case SectionGeneral:
			if v.cursor == 0 {
				return v.startRename()
			}
			return v.toggleNotifications()
		case SectionIntegrations:
			return v.toggleIntegration()
		}
		return v, nil

	case "x", "d":
		if v.section != SectionTeam {
			return v, nil
		}
		members := v.members.List()
		if v.cursor >= len(members) {
			return v, nil
		}
		v.removeID = members[v.cursor].ID
		v.mode = SettingsModeConfirmRemove
		return v, nil
	}
	return v, nil
}

func (v SettingsView) startRename() (tea.Model, tea.Cmd) {
	v.section = SectionGeneral
	v.cursor = 0
	v.mode = SettingsModeRename
	v.textInput.Placeholder = "Workspace name"
	v.textInput.SetValue(v.name)
	v.textInput.CursorEnd()
	v.textInput.Focus()
	return v, textinput.Blink
}

func (v SettingsView) toggleNotifications() (tea.Model, tea.Cmd) {
	v.notifications = !v.notifications
	state := "disabled"
	if v.notifications {
		state = "enabled"
	}
	return v, tea.Batch(
		emit(NotificationsToggledMsg{Enabled: v.notifications}),
		toast("Workspace Updated", "Desktop notifications "+state),
	)
}

func (v SettingsView) toggleIntegration() (tea.Model, tea.Cmd) {
	list := v.integrations.List()
	if v.cursor >= len(list) {
		return v, nil
	}
	id := list[v.cursor].ID
	v.integrations = v.integrations.Update(id, func(i model.Integration) model.Integration {
		i.Connected = !i.Connected
		return i
	})
	updated, _ := v.integrations.Get(id)
	state := "disconnected"
	if updated.Connected {
		state = "connected"
	}
	return v, tea.Batch(
		emit(IntegrationsChangedMsg{Integrations: v.integrations.List()}),
		toast("Integration Updated", fmt.Sprintf("%s %s", updated.Name, state)),
	)
}

// handleRenameMode handles keys while editing the workspace name
func (v SettingsView) handleRenameMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.leaveInput()
		return v, nil
	case "enter":
		name := strings.TrimSpace(v.textInput.Value())
		v.leaveInput()
		if name == "" || name == v.name {
			return v, nil
		}
		v.name = name
		return v, tea.Batch(
			emit(WorkspaceRenamedMsg{Name: name}),
			toast("Workspace Updated", "Workspace settings have been saved successfully."),
		)
	}

	var cmd tea.Cmd
	v.textInput, cmd = v.textInput.Update(msg)
	return v, cmd
}

// handleInviteMode handles keys while typing an invitation address
func (v SettingsView) handleInviteMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.leaveInput()
		return v, nil
	case "enter":
		raw := strings.TrimSpace(v.textInput.Value())
		if raw == "" {
			v.leaveInput()
			return v, nil
		}
		addr, err := mail.ParseAddress(raw)
		if err != nil {
			return v, toast("Invitation not sent", fmt.Sprintf("%q is not an email address", raw))
		}
		v.leaveInput()
		v.members = v.members.Add(model.Member{
			Name:       nameFromEmail(addr.Address),
			Email:      addr.Address,
			Role:       "Member",
			LastActive: "Invited",
		})
		v.cursor = v.members.Len() - 1
		return v, emit(MemberInvitedMsg{Email: addr.Address})
	}

	var cmd tea.Cmd
	v.textInput, cmd = v.textInput.Update(msg)
	return v, cmd
}

// handleConfirmRemoveMode handles y/n after a remove request
func (v SettingsView) handleConfirmRemoveMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.members = v.members.Remove(v.removeID)
		v.removeID = ""
		v.mode = SettingsModeNormal
		if v.cursor >= v.members.Len() {
			v.cursor = max(v.members.Len()-1, 0)
		}
		return v, toast("Member Removed", "Team member has been removed from the workspace.")
	case "n", "N", "esc":
		v.removeID = ""
		v.mode = SettingsModeNormal
	}
	return v, nil
}

func (v *SettingsView) leaveInput() {
	v.mode = SettingsModeNormal
	v.textInput.Reset()
	v.textInput.Blur()
}

// nameFromEmail turns "jane.doe@x.com" into "Jane Doe"
func nameFromEmail(addr string) string {
	local, _, _ := strings.Cut(addr, "@")
	parts := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	for i, p := range parts {
		r := []rune(p)
		parts[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	if len(parts) == 0 {
		return addr
	}
	return strings.Join(parts, " ")
}

// View renders the settings view
func (v SettingsView) View() string {
	if v.width == 0 || v.height == 0 {
		return "Loading..."
	}

	var body string
	switch v.section {
	case SectionIntegrations:
		body = v.renderIntegrations()
	case SectionTeam:
		body = v.renderTeam()
	default:
		body = v.renderGeneral()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		tabs(settingsSectionNames, int(v.section)), "", body)
}

func (v SettingsView) row(i int, line string) string {
	styles := theme.Current.Styles
	if i == v.cursor {
		return styles.ItemSelected.Render(line)
	}
	return styles.ItemNormal.Render(line)
}

func (v SettingsView) renderGeneral() string {
	styles := theme.Current.Styles
	name := v.name
	if v.mode == SettingsModeRename {
		name = styles.InputFocused.Render(v.textInput.View())
	}
	notif := "[ ] off"
	if v.notifications {
		notif = "[x] on"
	}
	return strings.Join([]string{
		v.row(0, "Workspace name       "+name),
		v.row(1, "Desktop notifications "+notif),
	}, "\n")
}

func (v SettingsView) renderIntegrations() string {
	t := theme.Current.Theme
	var rows []string
	for i, in := range v.integrations.List() {
		toggle := lipgloss.NewStyle().Foreground(t.Subtle).Render("○ off")
		if in.Connected {
			toggle = lipgloss.NewStyle().Foreground(t.Success).Render("● on ")
		}
		rows = append(rows, v.row(i, fmt.Sprintf("%s  %-18s %5d files", toggle, in.Name, in.Files)))
	}
	return strings.Join(rows, "\n")
}

func (v SettingsView) renderTeam() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme
	var rows []string
	for i, m := range v.members.List() {
		rows = append(rows, v.row(i, fmt.Sprintf("%-18s %-28s %-8s %s",
			m.Name, m.Email, m.Role, m.LastActive)))
	}
	switch v.mode {
	case SettingsModeInvite:
		rows = append(rows, "", styles.InputFocused.Render("Invite: "+v.textInput.View()))
	case SettingsModeConfirmRemove:
		m, _ := v.members.Get(v.removeID)
		rows = append(rows, "", lipgloss.NewStyle().Foreground(t.Error).Bold(true).
			Render(fmt.Sprintf("Remove %s from the workspace? (y/n)", m.Name)))
	}
	return strings.Join(rows, "\n")
}

// IsInputMode returns true when the view is capturing text
func (v SettingsView) IsInputMode() bool {
	return v.mode != SettingsModeNormal
}
