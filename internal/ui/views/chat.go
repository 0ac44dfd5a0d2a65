package views

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/weezy/internal/assistant"
	"github.com/dori/weezy/internal/model"
	"github.com/dori/weezy/internal/ui/theme"
)

// ChatMode represents the current input mode
type ChatMode int

const (
	ChatModeNormal ChatMode = iota
	ChatModeCompose
	ChatModeSearch
)

const knowledgePanelWidth = 34

// ChatOption configures a ChatView
type ChatOption func(*ChatView)

// WithTypingDelay sets the simulated typing delay. The real delay is base
// plus a random amount up to jitter.
func WithTypingDelay(base, jitter time.Duration) ChatOption {
	return func(v *ChatView) {
		v.delay = base
		v.jitter = jitter
	}
}

// WithRand sets the random source used for jitter
func WithRand(rng *rand.Rand) ChatOption {
	return func(v *ChatView) { v.rng = rng }
}

// WithSessionOptions passes options to every session the view starts
func WithSessionOptions(opts ...assistant.SessionOption) ChatOption {
	return func(v *ChatView) { v.sessionOpts = opts }
}

// ChatView is a scripted assistant conversation over a set of files
type ChatView struct {
	id     string
	title  string
	width  int
	height int

	responder   assistant.Responder
	known       []model.File
	sessionOpts []assistant.SessionOption
	session     assistant.Session

	mode      ChatMode
	textInput textinput.Model
	viewport  viewport.Model
	spinner   spinner.Model

	// Reply scheduling
	typing bool
	gen    int
	delay  time.Duration
	jitter time.Duration
	rng    *rand.Rand

	searchFilter string
	showFiles    bool
}

// NewChatView creates a chat identified by id. Replies addressed to other ids are ignored.
func NewChatView(id, title string, r assistant.Responder, known []model.File, opts ...ChatOption) ChatView {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = "Ask about your files..."
	ti.CharLimit = 512

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	v := ChatView{
		id:        id,
		title:     title,
		responder: r,
		known:     known,
		textInput: ti,
		viewport:  viewport.New(0, 0),
		spinner:   sp,
		rng:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		showFiles: true,
	}
	for _, opt := range opts {
		opt(&v)
	}
	v.session = assistant.NewSession(v.responder, v.known, v.sessionOpts...)
	v.refresh()
	return v
}

// Init initializes the chat view
func (v ChatView) Init() tea.Cmd {
	return nil
}

// SetSize sets the view dimensions
func (v ChatView) SetSize(width, height int) ChatView {
	v.width = width
	v.height = height
	v.layout()
	v.refresh()
	return v
}

// Session returns the current conversation
func (v ChatView) Session() assistant.Session { return v.session }

// Typing reports whether a reply is pending
func (v ChatView) Typing() bool { return v.typing }

// ID returns the chat identifier used to route replies
func (v ChatView) ID() string { return v.id }

func (v *ChatView) layout() {
	w := v.width
	if v.showFiles && w > knowledgePanelWidth*2 {
		w -= knowledgePanelWidth + 1
	}
	h := v.height - 5
	if h < 1 {
		h = 1
	}
	v.viewport.Width = w
	v.viewport.Height = h
	v.textInput.Width = w - 6
}

// Update handles messages
func (v ChatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ChatReplyMsg:
		if msg.ChatID != v.id || msg.Gen != v.gen {
			return v, nil
		}
		v.session = v.session.Deliver(msg.Reply)
		v.typing = false
		v.refresh()
		return v, nil

	case spinner.TickMsg:
		if !v.typing {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		switch v.mode {
		case ChatModeCompose:
			return v.handleComposeMode(msg)
		case ChatModeSearch:
			return v.handleSearchMode(msg)
		default:
			return v.handleNormalMode(msg)
		}
	}

	return v, nil
}

// handleNormalMode handles keys in normal mode
func (v ChatView) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "i", "enter":
		v.mode = ChatModeCompose
		v.textInput.Focus()
		return v, textinput.Blink

	case "/":
		v.mode = ChatModeSearch
		v.textInput.SetValue(v.searchFilter)
		v.textInput.Placeholder = "Search messages..."
		v.textInput.Focus()
		return v, textinput.Blink

	case "esc":
		if v.searchFilter != "" {
			v.searchFilter = ""
			v.refresh()
		}
		return v, nil

	case "ctrl+l":
		v = v.Reset()
		return v, toast("Chat cleared", "Started a new conversation")

	case "tab":
		v.showFiles = !v.showFiles
		v.layout()
		v.refresh()
		return v, nil
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// handleComposeMode handles keys while typing a message
func (v ChatView) handleComposeMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.mode = ChatModeNormal
		v.textInput.Blur()
		return v, nil

	case "ctrl+l":
		v = v.Reset()
		return v, nil

	case "enter":
		if v.typing {
			return v, nil
		}
		session, reply, ok := v.session.Send(v.textInput.Value())
		if !ok {
			return v, nil
		}
		v.session = session
		v.textInput.Reset()
		v.typing = true
		v.refresh()
		return v, tea.Batch(v.spinner.Tick, v.scheduleReply(reply))
	}

	var cmd tea.Cmd
	v.textInput, cmd = v.textInput.Update(msg)
	return v, cmd
}

// handleSearchMode handles keys while typing a search
func (v ChatView) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.searchFilter = ""
		v.leaveSearch()
		v.refresh()
		return v, nil
	case "enter":
		v.searchFilter = strings.TrimSpace(v.textInput.Value())
		v.leaveSearch()
		v.refresh()
		return v, nil
	}

	var cmd tea.Cmd
	v.textInput, cmd = v.textInput.Update(msg)
	return v, cmd
}

func (v *ChatView) leaveSearch() {
	v.mode = ChatModeNormal
	v.textInput.Reset()
	v.textInput.Placeholder = "Ask about your files..."
	v.textInput.Blur()
}

// scheduleReply delivers the reply after the typing delay, tagged with the current generation
func (v ChatView) scheduleReply(r assistant.Reply) tea.Cmd {
	reply := ChatReplyMsg{ChatID: v.id, Gen: v.gen, Reply: r}
	d := assistant.Jitter(v.delay, v.jitter, v.rng)
	if d <= 0 {
		return emit(reply)
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return reply })
}

// Reset starts a fresh conversation. A reply still in flight is discarded.
func (v ChatView) Reset() ChatView {
	v.gen++
	v.typing = false
	v.searchFilter = ""
	v.session = assistant.NewSession(v.responder, v.known, v.sessionOpts...)
	v.refresh()
	return v
}

// refresh re-renders the message log into the viewport
func (v *ChatView) refresh() {
	msgs := v.session.Messages()
	if v.searchFilter != "" {
		msgs = v.session.Search(v.searchFilter)
	}

	var b strings.Builder
	for _, m := range msgs {
		b.WriteString(v.renderMessage(m))
		b.WriteString("\n\n")
	}
	if len(msgs) == 0 {
		b.WriteString(theme.Current.Styles.Label.Render(fmt.Sprintf("No messages match %q", v.searchFilter)))
	}
	v.viewport.SetContent(b.String())
	v.viewport.GotoBottom()
}

func (v ChatView) renderMessage(m model.Message) string {
	styles := theme.Current.Styles
	maxWidth := v.viewport.Width * 3 / 4
	if maxWidth < 20 {
		maxWidth = 20
	}

	stamp := styles.Label.Render(m.Timestamp.Format("15:04"))
	if m.Sender == model.SenderUser {
		bubble := styles.BubbleUser.MaxWidth(maxWidth).Render(m.Text)
		block := lipgloss.JoinVertical(lipgloss.Right, bubble, stamp)
		return lipgloss.PlaceHorizontal(v.viewport.Width, lipgloss.Right, block)
	}

	lines := []string{styles.BubbleAssistant.MaxWidth(maxWidth).Render(m.Text)}
	for _, f := range m.Attachments {
		lines = append(lines, styles.Attachment.Render(
			fmt.Sprintf("%s %s · %s · %s", kindIcon(f.Kind), f.Name, f.Size, sourceBadge(f.Source))))
	}
	lines = append(lines, stamp)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// View renders the chat view
func (v ChatView) View() string {
	if v.width == 0 || v.height == 0 {
		return "Loading..."
	}
	styles := theme.Current.Styles

	title := styles.PanelTitle.Render(v.title)
	if v.searchFilter != "" {
		title += styles.Label.Render(fmt.Sprintf("  search: %q", v.searchFilter))
	}
	if ctx := v.session.Context(); len(ctx) > 0 {
		title += styles.Label.Render(fmt.Sprintf("  context: %d file(s)", len(ctx)))
	}

	status := " "
	if v.typing {
		status = v.spinner.View() + styles.Label.Render(" Assistant is typing...")
	}

	inputStyle := styles.Input
	if v.mode != ChatModeNormal {
		inputStyle = styles.InputFocused
	}
	input := inputStyle.Width(v.viewport.Width - 2).Render(v.textInput.View())

	main := lipgloss.JoinVertical(lipgloss.Left, title, v.viewport.View(), status, input)
	if !v.showFiles || v.width <= knowledgePanelWidth*2 {
		return main
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, main, " ", v.renderKnowledge())
}

// renderKnowledge lists the files the assistant knows about, marking those in context
func (v ChatView) renderKnowledge() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme
	ctx := v.session.Context()

	var b strings.Builder
	b.WriteString(styles.PanelTitle.Render("Knowledge Base"))
	b.WriteString("\n")
	for _, f := range v.known {
		marker := "  "
		if ctx.Has(f) {
			marker = lipgloss.NewStyle().Foreground(t.Success).Render("● ")
		}
		b.WriteString(marker + truncate(f.Name, knowledgePanelWidth-6) + "\n")
		b.WriteString("    " + sourceBadge(f.Source) + styles.Label.Render(" · "+f.LastModified) + "\n")
	}
	return styles.Panel.
		Width(knowledgePanelWidth - 2).
		Height(v.height - 2).
		Render(b.String())
}

// IsInputMode returns true when the view is capturing text
func (v ChatView) IsInputMode() bool {
	return v.mode != ChatModeNormal
}
