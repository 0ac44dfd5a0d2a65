package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/weezy/internal/model"
	"github.com/dori/weezy/internal/query"
	"github.com/dori/weezy/internal/store"
	"github.com/dori/weezy/internal/ui/theme"
)

// WorkspaceChatID routes replies to the assistant embedded in the workspace
const WorkspaceChatID = "workspace"

// WorkspaceTab selects which file list is shown
type WorkspaceTab int

const (
	WorkspaceRecent WorkspaceTab = iota
	WorkspaceLocal
	WorkspaceCloud
)

var workspaceTabNames = []string{"Recent", "Local Files", "Cloud Files"}

// WorkspaceMode represents the current input mode
type WorkspaceMode int

const (
	WorkspaceModeNormal WorkspaceMode = iota
	WorkspaceModeSearch
	WorkspaceModeRename
)

// FileSort is the ordering applied to file lists
type FileSort int

const (
	SortRecency FileSort = iota
	SortName
)

// String returns the display name for a sort
func (s FileSort) String() string {
	if s == SortName {
		return "name"
	}
	return "recency"
}

// recentLimit caps the recent tab
const recentLimit = 5

// WorkspaceView is the personal workspace: file lists, rename and the workspace assistant
type WorkspaceView struct {
	width  int
	height int

	name    string
	files   store.Files
	uploads int

	tab          WorkspaceTab
	cursor       int
	scroll       int
	sortBy       FileSort
	searchFilter string

	mode      WorkspaceMode
	textInput textinput.Model

	chat     ChatView
	chatOpen bool
}

// NewWorkspaceView creates the workspace view. The chat answers about the same files.
func NewWorkspaceView(name string, files store.Files, chat ChatView) WorkspaceView {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 64

	return WorkspaceView{
		name:      name,
		files:     files,
		textInput: ti,
		chat:      chat,
	}
}

// Init initializes the workspace view
func (v WorkspaceView) Init() tea.Cmd {
	return nil
}

// SetSize sets the view dimensions
func (v WorkspaceView) SetSize(width, height int) WorkspaceView {
	v.width = width
	v.height = height
	v.chat = v.chat.SetSize(width, height-2)
	return v
}

// SetName updates the workspace name shown in the header
func (v WorkspaceView) SetName(name string) WorkspaceView {
	v.name = name
	return v
}

// Name returns the workspace name
func (v WorkspaceView) Name() string { return v.name }

// Files returns every workspace file
func (v WorkspaceView) Files() []model.File { return v.files.List() }

// Visible returns the files of the current tab after search and sort
func (v WorkspaceView) Visible() []model.File {
	var items []model.File
	switch v.tab {
	case WorkspaceLocal, WorkspaceCloud:
		want := model.CollectionLocal
		if v.tab == WorkspaceCloud {
			want = model.CollectionCloud
		}
		for _, f := range v.files.List() {
			if f.Collection == want {
				items = append(items, f)
			}
		}
	default:
		items = v.files.List()
	}

	items = query.Filter(items, query.Options{Query: v.searchFilter})
	if v.tab == WorkspaceRecent {
		return query.Latest(items, recentLimit)
	}
	if v.sortBy == SortName {
		return query.SortByName(items, query.Ascending)
	}
	return query.SortByRecency(items)
}

// Update handles messages
func (v WorkspaceView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ChatReplyMsg:
		return v.updateChat(msg)

	case tea.KeyMsg:
		if v.chatOpen {
			if !v.chat.IsInputMode() && (msg.String() == "c" || msg.String() == "esc") {
				v.chatOpen = false
				return v, nil
			}
			return v.updateChat(msg)
		}
		switch v.mode {
		case WorkspaceModeSearch:
			return v.handleSearchMode(msg)
		case WorkspaceModeRename:
			return v.handleRenameMode(msg)
		default:
			return v.handleNormalMode(msg)
		}
	}

	if v.chatOpen {
		return v.updateChat(msg)
	}
	return v, nil
}

func (v WorkspaceView) updateChat(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := v.chat.Update(msg)
	v.chat = m.(ChatView)
	return v, cmd
}

// handleNormalMode handles keys in normal mode
func (v WorkspaceView) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "l", "right":
		v.tab = (v.tab + 1) % 3
		v.cursor, v.scroll = 0, 0
		return v, nil

	case "shift+tab", "h", "left":
		v.tab = (v.tab + 2) % 3
		v.cursor, v.scroll = 0, 0
		return v, nil

	case "j", "down":
		if v.cursor < len(v.Visible())-1 {
			v.cursor++
			v.ensureCursorVisible()
		}
		return v, nil

	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
			v.ensureCursorVisible()
		}
		return v, nil

	case "/":
		v.mode = WorkspaceModeSearch
		v.textInput.Placeholder = "Search files..."
		v.textInput.SetValue(v.searchFilter)
		v.textInput.Focus()
		return v, textinput.Blink

	case "esc":
		v.searchFilter = ""
		v.clampCursor()
		return v, nil

	case "s":
		v.sortBy = (v.sortBy + 1) % 2
		v.cursor = 0
		return v, toast("Sorted", "Files sorted by "+v.sortBy.String())

	case "r":
		v.mode = WorkspaceModeRename
		v.textInput.Placeholder = "Workspace name"
		v.textInput.SetValue(v.name)
		v.textInput.CursorEnd()
		v.textInput.Focus()
		return v, textinput.Blink

	case "u":
		return v.upload()

	case "c":
		v.chatOpen = true
		return v, nil
	}
	return v, nil
}

// handleSearchMode handles keys while typing a search
func (v WorkspaceView) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.searchFilter = ""
		v.leaveInput()
		v.clampCursor()
		return v, nil
	case "enter":
		v.leaveInput()
		return v, nil
	}

	var cmd tea.Cmd
	v.textInput, cmd = v.textInput.Update(msg)
	v.searchFilter = v.textInput.Value()
	v.clampCursor()
	return v, cmd
}

// handleRenameMode handles keys while editing the workspace name
func (v WorkspaceView) handleRenameMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.leaveInput()
		return v, nil
	case "enter":
		name := strings.TrimSpace(v.textInput.Value())
		v.leaveInput()
		if name == "" {
			return v, toast("Workspace not renamed", "The workspace name cannot be empty")
		}
		if name == v.name {
			return v, nil
		}
		v.name = name
		return v, tea.Batch(
			emit(WorkspaceRenamedMsg{Name: name}),
			toast("Workspace renamed", fmt.Sprintf("Workspace is now named %q", name)),
		)
	}

	var cmd tea.Cmd
	v.textInput, cmd = v.textInput.Update(msg)
	return v, cmd
}

func (v *WorkspaceView) leaveInput() {
	v.mode = WorkspaceModeNormal
	v.textInput.Reset()
	v.textInput.Blur()
}

// upload simulates adding a local file to the workspace
func (v WorkspaceView) upload() (tea.Model, tea.Cmd) {
	v.uploads++
	v.files = v.files.Add(model.File{
		Name:         fmt.Sprintf("Uploaded Document %d.docx", v.uploads),
		Kind:         model.KindDocument,
		Size:         "1.2 MB",
		Source:       model.SourceLocal,
		LastModified: "Just now",
		Collection:   model.CollectionLocal,
	})
	return v, tea.Batch(
		emit(FilesChangedMsg{Files: v.files.List()}),
		toast("Upload initiated", "Select files to upload to your workspace"),
	)
}

func (v *WorkspaceView) clampCursor() {
	n := len(v.Visible())
	if v.cursor >= n {
		v.cursor = max(n-1, 0)
	}
	v.ensureCursorVisible()
}

func (v *WorkspaceView) ensureCursorVisible() {
	rows := v.visibleRows()
	if v.cursor >= v.scroll+rows {
		v.scroll = v.cursor - rows + 1
	}
	if v.cursor < v.scroll {
		v.scroll = v.cursor
	}
}

func (v WorkspaceView) visibleRows() int {
	rows := v.height - 8
	if rows < 1 {
		return 1
	}
	return rows
}

// View renders the workspace view
func (v WorkspaceView) View() string {
	if v.width == 0 || v.height == 0 {
		return "Loading..."
	}
	styles := theme.Current.Styles
	t := theme.Current.Theme

	title := styles.Title.Render(v.name)
	if v.chatOpen {
		return lipgloss.JoinVertical(lipgloss.Left, title, v.chat.View())
	}

	var header string
	switch v.mode {
	case WorkspaceModeRename:
		header = styles.InputFocused.Render("Rename: " + v.textInput.View())
	case WorkspaceModeSearch:
		header = styles.InputFocused.Render("/ " + v.textInput.View())
	default:
		header = tabs(workspaceTabNames, int(v.tab))
		info := fmt.Sprintf("  sort: %s", v.sortBy)
		if v.searchFilter != "" {
			info += fmt.Sprintf("  search: %q", v.searchFilter)
		}
		header += styles.Label.Render(info)
	}

	files := v.Visible()
	var rows []string
	if len(files) == 0 {
		rows = append(rows, styles.Label.Render("  No files found"))
	}
	if v.scroll > 0 {
		rows = append(rows, lipgloss.NewStyle().Foreground(t.Subtle).Render(fmt.Sprintf("  ↑ %d more", v.scroll)))
	}
	end := min(v.scroll+v.visibleRows(), len(files))
	nameWidth := max(v.width-50, 20)
	for i := v.scroll; i < end; i++ {
		f := files[i]
		line := fmt.Sprintf("%s %-*s %8s  %-14s %s",
			kindIcon(f.Kind), nameWidth, truncate(f.Name, nameWidth), f.Size,
			f.Source, f.LastModified)
		if i == v.cursor {
			rows = append(rows, styles.ItemSelected.Render(line))
		} else {
			rows = append(rows, styles.ItemNormal.Render(
				fmt.Sprintf("%s %-*s %8s  %s %s",
					kindIcon(f.Kind), nameWidth, truncate(f.Name, nameWidth), f.Size,
					sourceBadge(f.Source)+strings.Repeat(" ", max(14-len(f.Source), 0)),
					styles.Label.Render(f.LastModified))))
		}
	}
	if end < len(files) {
		rows = append(rows, lipgloss.NewStyle().Foreground(t.Subtle).Render(fmt.Sprintf("  ↓ %d more", len(files)-end)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, header, "", strings.Join(rows, "\n"))
}

// IsInputMode returns true when the view is capturing text
func (v WorkspaceView) IsInputMode() bool {
	if v.chatOpen {
		return v.chat.IsInputMode()
	}
	return v.mode != WorkspaceModeNormal
}
