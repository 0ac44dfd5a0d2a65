package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/dori/weezy/internal/app"
	"github.com/dori/weezy/internal/assistant"
	"github.com/dori/weezy/internal/store"
	"github.com/dori/weezy/internal/ui/theme"
	"github.com/dori/weezy/internal/ui/views"
)

// ChatID routes replies to the main chat view
const ChatID = "chat"

// RootModel is the main application model that manages views
type RootModel struct {
	app    *app.App
	log    *zap.Logger
	keys   KeyMap
	help   help.Model
	width  int
	height int

	workspaceName string
	currentView   View
	helpVisible   bool

	dashboardView views.DashboardView
	workspaceView views.WorkspaceView
	chatView      views.ChatView
	tasksView     views.TasksView
	storageView   views.StorageView
	settingsView  views.SettingsView

	// Status message
	statusMsg string
	errorMsg  string
}

// Option configures the root model
type Option func(*rootOptions)

type rootOptions struct {
	chat []views.ChatOption
}

// WithChatOptions passes options to both chat views
func WithChatOptions(opts ...views.ChatOption) Option {
	return func(o *rootOptions) { o.chat = append(o.chat, opts...) }
}

// NewRootModel creates a new root model
func NewRootModel(application *app.App, opts ...Option) RootModel {
	cfg := application.Config
	catalog := application.Catalog

	o := rootOptions{
		chat: []views.ChatOption{views.WithTypingDelay(cfg.TypingDelay, cfg.TypingJitter)},
	}
	for _, opt := range opts {
		opt(&o)
	}

	if t, ok := theme.ByName(cfg.Theme); ok {
		theme.SetTheme(t)
	}
	start, _ := ParseView(cfg.StartView)

	h := help.New()
	h.ShowAll = true

	workspaceChat := views.NewChatView(views.WorkspaceChatID, "Workspace Assistant",
		assistant.NewResponder(assistant.WorkspaceTopics()...).
			WithFallback(assistant.WorkspaceFallback),
		catalog.WorkspaceFiles(), o.chat...)

	return RootModel{
		app:           application,
		log:           application.Log.Named("ui"),
		keys:          DefaultKeyMap(),
		help:          h,
		workspaceName: cfg.WorkspaceName,
		currentView:   start,
		dashboardView: views.NewDashboardView(catalog),
		workspaceView: views.NewWorkspaceView(cfg.WorkspaceName, store.New(catalog.WorkspaceFiles()), workspaceChat),
		chatView: views.NewChatView(ChatID, "Knowledge Assistant",
			assistant.NewResponder(), catalog.Knowledge, o.chat...),
		tasksView:    views.NewTasksView(store.New(catalog.Tasks), catalog.Users, catalog.SuggestedLabels),
		storageView:  views.NewStorageView(catalog),
		settingsView: views.NewSettingsView(cfg.WorkspaceName, application.Notifier.IsEnabled(), catalog.Integrations, catalog.Members),
	}
}

// Init initializes the model
func (m RootModel) Init() tea.Cmd {
	return m.notifyOverdue()
}

// notifyOverdue raises one desktop notification per overdue task at startup
func (m RootModel) notifyOverdue() tea.Cmd {
	overdue := m.tasksView.Overdue()
	if len(overdue) == 0 || !m.app.Notifier.IsEnabled() {
		return nil
	}
	n := m.app.Notifier
	log := m.log
	return func() tea.Msg {
		for _, t := range overdue {
			if err := n.SendOverdue(t.Title); err != nil {
				log.Warn("overdue notification failed", zap.String("task", t.Title), zap.Error(err))
			}
		}
		return StatusMsg{Message: fmt.Sprintf("%d overdue task(s)", len(overdue))}
	}
}

// CurrentView returns the active view
func (m RootModel) CurrentView() View { return m.currentView }

// WorkspaceName returns the name shown in the header
func (m RootModel) WorkspaceName() string { return m.workspaceName }

// Status returns the status line text
func (m RootModel) Status() string { return m.statusMsg }

func (m RootModel) isInputMode() bool {
	switch m.currentView {
	case ViewWorkspace:
		return m.workspaceView.IsInputMode()
	case ViewChat:
		return m.chatView.IsInputMode()
	case ViewTasks:
		return m.tasksView.IsInputMode()
	case ViewSettings:
		return m.settingsView.IsInputMode()
	}
	return false
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		// Reserve space for header (1 line) and footer (3 lines)
		contentHeight := m.height - 4
		m.dashboardView = m.dashboardView.SetSize(m.width, contentHeight)
		m.workspaceView = m.workspaceView.SetSize(m.width, contentHeight)
		m.chatView = m.chatView.SetSize(m.width, contentHeight)
		m.tasksView = m.tasksView.SetSize(m.width, contentHeight)
		m.storageView = m.storageView.SetSize(m.width, contentHeight)
		m.settingsView = m.settingsView.SetSize(m.width, contentHeight)
		return m, nil

	case tea.KeyMsg:
		// Clear status/error on any keypress
		m.statusMsg = ""
		m.errorMsg = ""

		isInputMode := m.isInputMode()

		switch {
		case key.Matches(msg, m.keys.Quit):
			// ctrl+c always quits, but 'q' only quits when not in input mode
			if msg.String() == "ctrl+c" || !isInputMode {
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.ThemeCycle):
			return m, m.cycleTheme()
		}

		if m.helpVisible {
			if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Back) {
				m.helpVisible = false
			}
			return m, nil
		}

		if isInputMode {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = true
			return m, nil
		case key.Matches(msg, m.keys.DashboardView):
			return m.switchTo(ViewDashboard)
		case key.Matches(msg, m.keys.WorkspaceView):
			return m.switchTo(ViewWorkspace)
		case key.Matches(msg, m.keys.ChatView):
			return m.switchTo(ViewChat)
		case key.Matches(msg, m.keys.TasksView):
			return m.switchTo(ViewTasks)
		case key.Matches(msg, m.keys.StorageView):
			return m.switchTo(ViewStorage)
		case key.Matches(msg, m.keys.SettingsView):
			return m.switchTo(ViewSettings)
		}

	case SwitchViewMsg:
		return m.switchTo(msg.View)

	case ErrorMsg:
		m.errorMsg = msg.Err.Error()
		m.log.Error("ui error", zap.Error(msg.Err))
		return m, nil

	case StatusMsg:
		m.statusMsg = msg.Message
		return m, nil

	case ThemeChangedMsg:
		m.statusMsg = fmt.Sprintf("Theme: %s", msg.ThemeName)
		return m, nil

	case views.ToastMsg:
		m.statusMsg = msg.Title
		if msg.Body != "" {
			m.statusMsg += ": " + msg.Body
		}
		return m, m.desktop(func() error { return m.app.Notifier.Toast(msg.Title, msg.Body) })

	case views.ChatReplyMsg:
		return m.routeReply(msg)

	case spinner.TickMsg:
		var c1, c2 tea.Cmd
		var v tea.Model
		v, c1 = m.chatView.Update(msg)
		m.chatView = v.(views.ChatView)
		v, c2 = m.workspaceView.Update(msg)
		m.workspaceView = v.(views.WorkspaceView)
		return m, tea.Batch(c1, c2)

	case views.WorkspaceRenamedMsg:
		m.workspaceName = msg.Name
		m.workspaceView = m.workspaceView.SetName(msg.Name)
		m.settingsView = m.settingsView.SetName(msg.Name)
		m.log.Info("workspace renamed", zap.String("name", msg.Name))
		return m, nil

	case views.FilesChangedMsg:
		m.dashboardView = m.dashboardView.SetFiles(msg.Files)
		return m, nil

	case views.IntegrationsChangedMsg:
		m.dashboardView = m.dashboardView.SetIntegrations(msg.Integrations)
		m.storageView = m.storageView.SetIntegrations(msg.Integrations)
		return m, nil

	case views.MemberInvitedMsg:
		m.statusMsg = "Invitation Sent: An invitation email has been sent to " + msg.Email
		return m, m.desktop(func() error { return m.app.Notifier.SendInvite(msg.Email) })

	case views.NotificationsToggledMsg:
		m.app.Notifier.SetEnabled(msg.Enabled)
		m.log.Info("notifications toggled", zap.Bool("enabled", msg.Enabled))
		return m, nil

	case views.TaskCompletedMsg:
		m.statusMsg = "Task completed: " + msg.Task.Title
		m.log.Debug("task completed", zap.String("id", msg.Task.ID))
		return m, m.desktop(func() error { return m.app.Notifier.SendTaskCompleted(msg.Task.Title) })
	}

	return m.delegate(msg)
}

// delegate forwards a message to the current view
func (m RootModel) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var v tea.Model
	switch m.currentView {
	case ViewDashboard:
		v, cmd = m.dashboardView.Update(msg)
		m.dashboardView = v.(views.DashboardView)
	case ViewWorkspace:
		v, cmd = m.workspaceView.Update(msg)
		m.workspaceView = v.(views.WorkspaceView)
	case ViewChat:
		v, cmd = m.chatView.Update(msg)
		m.chatView = v.(views.ChatView)
	case ViewTasks:
		v, cmd = m.tasksView.Update(msg)
		m.tasksView = v.(views.TasksView)
	case ViewStorage:
		v, cmd = m.storageView.Update(msg)
		m.storageView = v.(views.StorageView)
	case ViewSettings:
		v, cmd = m.settingsView.Update(msg)
		m.settingsView = v.(views.SettingsView)
		m.dashboardView = m.dashboardView.SetMembers(len(m.settingsView.Members()))
	}
	return m, cmd
}

// routeReply delivers a chat reply to the chat that asked, visible or not.
// A reply landing in a hidden chat also raises a desktop notification.
func (m RootModel) routeReply(msg views.ChatReplyMsg) (tea.Model, tea.Cmd) {
	var v tea.Model
	var cmd tea.Cmd
	visible := false
	switch msg.ChatID {
	case ChatID:
		v, cmd = m.chatView.Update(msg)
		m.chatView = v.(views.ChatView)
		visible = m.currentView == ViewChat
	case views.WorkspaceChatID:
		v, cmd = m.workspaceView.Update(msg)
		m.workspaceView = v.(views.WorkspaceView)
		visible = m.currentView == ViewWorkspace
	default:
		m.log.Warn("reply for unknown chat", zap.String("chat", msg.ChatID))
		return m, nil
	}
	if visible {
		return m, cmd
	}
	m.statusMsg = "New reply from the assistant"
	return m, tea.Batch(cmd, m.desktop(func() error { return m.app.Notifier.SendReply(msg.Reply.Text) }))
}

// desktop runs a notifier call off the update loop, logging failures
func (m RootModel) desktop(send func() error) tea.Cmd {
	if !m.app.Notifier.IsEnabled() {
		return nil
	}
	log := m.log
	return func() tea.Msg {
		if err := send(); err != nil {
			log.Warn("desktop notification failed", zap.Error(err))
		}
		return nil
	}
}

func (m RootModel) switchTo(v View) (tea.Model, tea.Cmd) {
	m.currentView = v
	m.log.Debug("switch view", zap.Stringer("view", v))
	switch v {
	case ViewDashboard:
		return m, m.dashboardView.Init()
	case ViewWorkspace:
		return m, m.workspaceView.Init()
	case ViewChat:
		return m, m.chatView.Init()
	case ViewTasks:
		return m, m.tasksView.Init()
	case ViewStorage:
		return m, m.storageView.Init()
	case ViewSettings:
		return m, m.settingsView.Init()
	}
	return m, nil
}

// View renders the UI
func (m RootModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	styles := theme.Current.Styles
	var sections []string

	sections = append(sections, m.renderHeader())

	contentHeight := m.height - 4
	if m.errorMsg != "" || m.statusMsg != "" {
		contentHeight--
	}

	var content string
	if m.helpVisible {
		content = m.renderHelp()
	} else {
		switch m.currentView {
		case ViewDashboard:
			content = m.dashboardView.View()
		case ViewWorkspace:
			content = m.workspaceView.View()
		case ViewChat:
			content = m.chatView.View()
		case ViewTasks:
			content = m.tasksView.View()
		case ViewStorage:
			content = m.storageView.View()
		case ViewSettings:
			content = m.settingsView.View()
		default:
			content = styles.Panel.Render("View not implemented")
		}
	}

	// Ensure content fills available space
	contentLines := strings.Count(content, "\n") + 1
	if contentLines < contentHeight {
		content += strings.Repeat("\n", contentHeight-contentLines)
	}
	sections = append(sections, content)
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

// renderHeader renders the header bar
func (m RootModel) renderHeader() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	title := styles.Header.Render("weezy")

	subtle := lipgloss.NewStyle().Foreground(t.Subtle).Padding(0, 1)
	workspace := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true).Render(m.workspaceName)

	var tabs []string
	for v := ViewDashboard; v <= ViewSettings; v++ {
		label := fmt.Sprintf("%d %s", int(v)+1, v)
		if v == m.currentView {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Padding(0, 1).Render(label))
		} else {
			tabs = append(tabs, subtle.Render(label))
		}
	}

	leftSide := lipgloss.JoinHorizontal(lipgloss.Center, title, workspace, "  ", lipgloss.JoinHorizontal(lipgloss.Center, tabs...))
	rightSide := subtle.Render(fmt.Sprintf("theme: %s", t.Name))

	gap := m.width - lipgloss.Width(leftSide) - lipgloss.Width(rightSide)
	if gap < 0 {
		gap = 0
	}
	return leftSide + strings.Repeat(" ", gap) + rightSide
}

// renderFooter renders the footer/status bar
func (m RootModel) renderFooter() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	key := func(k, desc string) string {
		return styles.HelpKey.Render(k) + styles.HelpDesc.Render(" "+desc)
	}
	sep := styles.HelpSeparator.Render(" │ ")

	var statusLine string
	if m.errorMsg != "" {
		statusLine = lipgloss.NewStyle().Foreground(t.Error).Render(m.errorMsg)
	} else if m.statusMsg != "" {
		statusLine = lipgloss.NewStyle().Foreground(t.Info).Render(m.statusMsg)
	}

	global := key("1-6", "views") + sep + key("ctrl+t", "theme") + sep + key("?", "help") + sep + key("q", "quit")

	var line1, line2 string
	switch {
	case m.helpVisible:
		line1 = key("?/esc", "close help")

	case m.isInputMode():
		line1 = key("enter", "confirm") + sep + key("esc", "cancel")
		if m.currentView == ViewTasks {
			line1 += sep + key("tab", "next field") + sep + key("←/→", "change")
		}

	default:
		switch m.currentView {
		case ViewDashboard:
			line1 = key("tab", "overview/activity") + sep + key("j/k", "navigate")
		case ViewWorkspace:
			line1 = key("tab", "section") + sep + key("/", "search") + sep + key("s", "sort") + sep +
				key("r", "rename") + sep + key("u", "upload") + sep + key("c", "assistant")
		case ViewChat:
			line1 = key("i", "type") + sep + key("/", "search") + sep + key("tab", "files") + sep +
				key("ctrl+l", "clear") + sep + key("pgup/pgdn", "scroll")
		case ViewTasks:
			line1 = key("a", "add") + sep + key("e", "edit") + sep + key("tab", "done") + sep +
				key("H/L", "move") + sep + key("d", "del") + sep + key("v", "list/board")
			line2 = key("/", "search") + sep + key("f", "status") + sep + key("s/o", "sort") + sep + key("esc", "clear")
		case ViewStorage:
			line1 = key("tab", "overview/files") + sep + key("f", "source") + sep + key("o", "order")
		case ViewSettings:
			line1 = key("tab", "section") + sep + key("enter", "toggle") + sep + key("r", "rename") + sep +
				key("n", "notifications") + sep + key("i", "invite") + sep + key("x", "remove")
		}
		if line2 == "" {
			line2 = global
		} else {
			line2 += sep + global
		}
	}

	var lines []string
	if statusLine != "" {
		lines = append(lines, statusLine)
	}
	if line1 != "" {
		lines = append(lines, line1)
	}
	if line2 != "" {
		lines = append(lines, line2)
	}
	return strings.Join(lines, "\n")
}

// renderHelp renders the help overlay from the key map
func (m RootModel) renderHelp() string {
	t := theme.Current.Theme
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		MarginBottom(1)
	descStyle := lipgloss.NewStyle().Foreground(t.Subtle)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Weezy Help"),
		m.help.View(m.keys),
		"",
		descStyle.Render("Press ? or esc to close"),
	)
}

// cycleTheme switches to the next theme
func (m RootModel) cycleTheme() tea.Cmd {
	next := theme.Next(theme.Current.Theme.Name)
	theme.SetTheme(next)
	return func() tea.Msg { return ThemeChangedMsg{ThemeName: next.Name} }
}
