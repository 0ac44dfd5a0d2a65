package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/weezy/internal/model"
	"github.com/dori/weezy/internal/query"
	"github.com/dori/weezy/internal/store"
	"github.com/dori/weezy/internal/ui/theme"
)

// TasksMode represents the current input mode
type TasksMode int

const (
	TasksModeNormal TasksMode = iota
	TasksModeSearch
	TasksModeForm
	TasksModeConfirmDelete
)

// TaskLayout selects list or board rendering
type TaskLayout int

const (
	LayoutList TaskLayout = iota
	LayoutBoard
)

// statusFilters is the cycle order of the status filter
var statusFilters = []string{
	query.All,
	string(model.StatusTodo),
	string(model.StatusInProgress),
	string(model.StatusReview),
	string(model.StatusCompleted),
}

// taskSorts is the cycle order of the sort field; empty keeps board order
var taskSorts = []string{"", "progress", "priority"}

// CurrentUser creates tasks added from the board
var CurrentUser = model.Person{Name: "Current User", Role: "Manager"}

// TasksView is the task board with list and board layouts
type TasksView struct {
	width  int
	height int

	tasks store.Tasks
	form  TaskForm
	now   func() time.Time

	layout TaskLayout
	cursor int
	column int
	scroll int

	filterIdx    int
	sortIdx      int
	sortDir      query.Direction
	searchFilter string

	mode         TasksMode
	textInput    textinput.Model
	deleteTaskID string

	bar progress.Model
}

// NewTasksView creates the task board
func NewTasksView(tasks store.Tasks, users []model.Person, suggested model.Labels) TasksView {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search tasks..."
	ti.CharLimit = 128

	return TasksView{
		tasks:     tasks,
		form:      NewTaskForm(users, suggested),
		now:       time.Now,
		sortDir:   query.Descending,
		textInput: ti,
		bar:       progress.New(progress.WithWidth(12), progress.WithoutPercentage(), progress.WithSolidFill(string(theme.Current.Theme.Primary))),
	}
}

// WithClock replaces the clock used for overdue checks
func (v TasksView) WithClock(now func() time.Time) TasksView {
	v.now = now
	return v
}

// Init initializes the tasks view
func (v TasksView) Init() tea.Cmd {
	return nil
}

// SetSize sets the view dimensions
func (v TasksView) SetSize(width, height int) TasksView {
	v.width = width
	v.height = height
	return v
}

// Tasks returns every task
func (v TasksView) Tasks() []model.Task { return v.tasks.List() }

// Layout returns the current layout
func (v TasksView) Layout() TaskLayout { return v.layout }

// Filter returns the active filter options
func (v TasksView) Filter() query.Options {
	return query.Options{Query: v.searchFilter, Status: statusFilters[v.filterIdx]}
}

// Overdue returns the tasks past their due date
func (v TasksView) Overdue() []model.Task {
	var out []model.Task
	now := v.now()
	for _, t := range v.tasks.List() {
		if t.IsOverdue(now) {
			out = append(out, t)
		}
	}
	return out
}

// Visible returns the filtered and sorted tasks
func (v TasksView) Visible() []model.Task {
	items := query.Filter(v.tasks.List(), v.Filter())
	if field := taskSorts[v.sortIdx]; field != "" {
		if sorted, err := query.SortByField(items, field, v.sortDir); err == nil {
			items = sorted
		}
	}
	return items
}

// columnTasks returns the visible tasks of one board column
func (v TasksView) columnTasks(i int) []model.Task {
	return query.GroupByStatus(v.Visible())[model.Statuses[i]]
}

// Selected returns the task under the cursor
func (v TasksView) Selected() (model.Task, bool) {
	items := v.Visible()
	if v.layout == LayoutBoard {
		items = v.columnTasks(v.column)
	}
	if v.cursor < 0 || v.cursor >= len(items) {
		return model.Task{}, false
	}
	return items[v.cursor], true
}

// Update handles messages
func (v TasksView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch v.mode {
		case TasksModeSearch:
			return v.handleSearchMode(msg)
		case TasksModeForm:
			return v.handleFormMode(msg)
		case TasksModeConfirmDelete:
			return v.handleConfirmDeleteMode(msg)
		default:
			return v.handleNormalMode(msg)
		}
	}

	if v.mode == TasksModeSearch {
		var cmd tea.Cmd
		v.textInput, cmd = v.textInput.Update(msg)
		return v, cmd
	}
	return v, nil
}

// handleNormalMode handles keys in normal mode
func (v TasksView) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "v":
		v.layout = (v.layout + 1) % 2
		v.cursor, v.scroll = 0, 0
		return v, nil

	case "h", "left":
		if v.layout == LayoutBoard && v.column > 0 {
			v.column--
			v.clampCursor()
		}
		return v, nil

	case "l", "right":
		if v.layout == LayoutBoard && v.column < len(model.Statuses)-1 {
			v.column++
			v.clampCursor()
		}
		return v, nil

	case "j", "down":
		if v.cursor < v.rowCount()-1 {
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

	case "g":
		v.cursor, v.scroll = 0, 0
		return v, nil

	case "G":
		v.cursor = max(v.rowCount()-1, 0)
		v.ensureCursorVisible()
		return v, nil

	case "/":
		v.mode = TasksModeSearch
		v.textInput.SetValue(v.searchFilter)
		v.textInput.Focus()
		return v, textinput.Blink

	case "f":
		v.filterIdx = (v.filterIdx + 1) % len(statusFilters)
		v.clampCursor()
		return v, nil

	case "s":
		v.sortIdx = (v.sortIdx + 1) % len(taskSorts)
		v.clampCursor()
		return v, nil

	case "o":
		if v.sortDir == query.Descending {
			v.sortDir = query.Ascending
		} else {
			v.sortDir = query.Descending
		}
		return v, nil

	case "esc":
		v.searchFilter = ""
		v.filterIdx = 0
		v.sortIdx = 0
		v.clampCursor()
		return v, nil

	case "a":
		v.form = v.form.ForNew()
		v.mode = TasksModeForm
		return v, textinput.Blink

	case "e", "enter":
		task, ok := v.Selected()
		if !ok {
			return v, nil
		}
		v.form = v.form.ForEdit(task)
		v.mode = TasksModeForm
		return v, textinput.Blink

	case "tab", " ":
		task, ok := v.Selected()
		if !ok {
			return v, nil
		}
		v.tasks = store.ToggleCompleted(v.tasks, task.ID)
		v.clampCursor()
		return v, v.statusChanged(task)

	case "H":
		return v.moveTask(-1)

	case "L":
		return v.moveTask(1)

	case "d":
		task, ok := v.Selected()
		if !ok {
			return v, nil
		}
		v.deleteTaskID = task.ID
		v.mode = TasksModeConfirmDelete
		return v, nil
	}
	return v, nil
}

// moveTask shifts the selected task one column left or right
func (v TasksView) moveTask(direction int) (tea.Model, tea.Cmd) {
	task, ok := v.Selected()
	if !ok {
		return v, nil
	}
	next := task.Status.Next()
	if direction < 0 {
		next = task.Status.Prev()
	}
	if next == task.Status {
		return v, nil
	}
	v.tasks = store.SetStatus(v.tasks, task.ID, next)
	if v.layout == LayoutBoard {
		v.column = indexOf(model.Statuses, next)
		v.cursor = max(indexOf(taskIDs(v.columnTasks(v.column)), task.ID), 0)
	}
	v.clampCursor()
	return v, v.statusChanged(task)
}

// statusChanged announces a task that just entered the completed column
func (v TasksView) statusChanged(before model.Task) tea.Cmd {
	after, ok := v.tasks.Get(before.ID)
	if !ok || after.Status == before.Status {
		return nil
	}
	if after.Status == model.StatusCompleted {
		return emit(TaskCompletedMsg{Task: after})
	}
	return toast("Task moved", fmt.Sprintf("%s → %s", after.Title, after.Status.Label()))
}

// handleSearchMode handles keys while typing a search
func (v TasksView) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.searchFilter = ""
		v.mode = TasksModeNormal
		v.textInput.Reset()
		v.textInput.Blur()
		v.clampCursor()
		return v, nil
	case "enter":
		v.mode = TasksModeNormal
		v.textInput.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.textInput, cmd = v.textInput.Update(msg)
	v.searchFilter = v.textInput.Value()
	v.clampCursor()
	return v, cmd
}

// handleFormMode forwards keys to the task form and applies the result
func (v TasksView) handleFormMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form, cmd, result := v.form.Update(msg)
	v.form = form

	switch result {
	case FormCancelled:
		v.mode = TasksModeNormal
		return v, nil

	case FormSubmitted:
		v.mode = TasksModeNormal
		if id := v.form.Editing(); id != "" {
			before, _ := v.tasks.Get(id)
			patch, err := v.form.Patch()
			if err != nil {
				return v, nil
			}
			v.tasks = store.PatchTask(v.tasks, id, patch)
			changed := v.statusChanged(before)
			return v, tea.Batch(changed, toast("Task updated", *patch.Title))
		}
		task, err := v.form.Task(CurrentUser)
		if err != nil {
			return v, nil
		}
		v.tasks = v.tasks.Add(task)
		v.clampCursor()
		return v, toast("Task created", task.Title)
	}
	return v, cmd
}

// handleConfirmDeleteMode handles y/n after a delete request
func (v TasksView) handleConfirmDeleteMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		task, _ := v.tasks.Get(v.deleteTaskID)
		v.tasks = v.tasks.Remove(v.deleteTaskID)
		v.deleteTaskID = ""
		v.mode = TasksModeNormal
		v.clampCursor()
		return v, toast("Task deleted", task.Title)
	case "n", "N", "esc":
		v.deleteTaskID = ""
		v.mode = TasksModeNormal
	}
	return v, nil
}

func (v TasksView) rowCount() int {
	if v.layout == LayoutBoard {
		return len(v.columnTasks(v.column))
	}
	return len(v.Visible())
}

func (v *TasksView) clampCursor() {
	n := v.rowCount()
	if v.cursor >= n {
		v.cursor = max(n-1, 0)
	}
	v.ensureCursorVisible()
}

func (v *TasksView) ensureCursorVisible() {
	rows := v.visibleRows()
	if v.cursor >= v.scroll+rows {
		v.scroll = v.cursor - rows + 1
	}
	if v.cursor < v.scroll {
		v.scroll = v.cursor
	}
}

func (v TasksView) visibleRows() int {
	perRow := 2
	if v.layout == LayoutBoard {
		perRow = 3
	}
	rows := (v.height - 6) / perRow
	if rows < 1 {
		return 1
	}
	return rows
}

// View renders the tasks view
func (v TasksView) View() string {
	if v.width == 0 || v.height == 0 {
		return "Loading..."
	}
	if v.mode == TasksModeForm {
		return v.form.View(v.width)
	}
	styles := theme.Current.Styles
	t := theme.Current.Theme

	header := tabs([]string{"List", "Board"}, int(v.layout))
	info := fmt.Sprintf("  status: %s", statusFilters[v.filterIdx])
	if field := taskSorts[v.sortIdx]; field != "" {
		info += fmt.Sprintf("  sort: %s %s", field, v.sortDir)
	}
	if v.searchFilter != "" {
		info += fmt.Sprintf("  search: %q", v.searchFilter)
	}
	header += styles.Label.Render(info)

	var body string
	if v.layout == LayoutBoard {
		body = v.renderBoard()
	} else {
		body = v.renderList()
	}

	var footer string
	switch v.mode {
	case TasksModeSearch:
		footer = styles.InputFocused.Render(v.textInput.View())
	case TasksModeConfirmDelete:
		task, _ := v.tasks.Get(v.deleteTaskID)
		footer = lipgloss.NewStyle().Foreground(t.Error).Bold(true).
			Render(fmt.Sprintf("Delete %q? (y/n)", task.Title))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, footer)
}

func (v TasksView) renderList() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme
	tasks := v.Visible()
	if len(tasks) == 0 {
		return styles.Label.Render("  No tasks match the current filters")
	}

	now := v.now()
	titleWidth := max(v.width-60, 20)
	var rows []string
	if v.scroll > 0 {
		rows = append(rows, lipgloss.NewStyle().Foreground(t.Subtle).Render(fmt.Sprintf("  ↑ %d more", v.scroll)))
	}
	end := min(v.scroll+v.visibleRows(), len(tasks))
	for i := v.scroll; i < end; i++ {
		task := tasks[i]
		check := "[ ]"
		if task.Status == model.StatusCompleted {
			check = "[x]"
		}
		lock := " "
		if task.Private {
			lock = "🔒"
		}
		status := lipgloss.NewStyle().Foreground(t.StatusColor(task.Status)).Width(12).Render(task.Status.Label())
		priority := lipgloss.NewStyle().Foreground(t.PriorityColor(task.Priority)).Width(7).Render(string(task.Priority))
		due := styles.DueDate.Render(task.DueDate)
		if task.IsOverdue(now) {
			due = lipgloss.NewStyle().Foreground(t.Error).Render(task.DueDate + " overdue")
		}

		titleStyle := styles.ItemNormal
		switch {
		case i == v.cursor:
			titleStyle = styles.ItemSelected
		case task.Status == model.StatusCompleted:
			titleStyle = styles.ItemDone
		}
		line := titleStyle.Render(fmt.Sprintf("%s %s %-*s", check, lock, titleWidth, truncate(task.Title, titleWidth)))
		rows = append(rows, line+" "+status+priority+v.bar.ViewAs(float64(task.Progress)/100)+
			fmt.Sprintf(" %3d%%", task.Progress))

		var tags []string
		for _, l := range task.Labels {
			tags = append(tags, styles.Tag.Render(l))
		}
		rows = append(rows, "      "+styles.Label.Render(task.AssignedTo.Initials()+" "+task.AssignedTo.Name)+"  "+due+"  "+strings.Join(tags, ""))
	}
	if end < len(tasks) {
		rows = append(rows, lipgloss.NewStyle().Foreground(t.Subtle).Render(fmt.Sprintf("  ↓ %d more", len(tasks)-end)))
	}
	return strings.Join(rows, "\n")
}

func (v TasksView) renderBoard() string {
	t := theme.Current.Theme
	n := len(model.Statuses)
	colWidth := max((v.width-2)/n-2, 22)
	now := v.now()

	var cols []string
	for i, status := range model.Statuses {
		tasks := v.columnTasks(i)
		active := i == v.column

		headerStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(t.StatusColor(status)).
			Width(colWidth).
			Align(lipgloss.Center)
		if active {
			headerStyle = headerStyle.Background(t.Highlight)
		}

		var items []string
		items = append(items, headerStyle.Render(fmt.Sprintf("%s (%d)", status.Label(), len(tasks))))

		start := 0
		if active {
			start = v.scroll
		}
		end := min(start+v.visibleRows(), len(tasks))
		if start > 0 {
			items = append(items, lipgloss.NewStyle().Foreground(t.Subtle).Width(colWidth).
				Align(lipgloss.Center).Render(fmt.Sprintf("↑ %d more", start)))
		}
		for j := start; j < end; j++ {
			task := tasks[j]
			card := lipgloss.NewStyle().Width(colWidth-2).Padding(0, 1).Foreground(t.Foreground)
			if active && j == v.cursor {
				card = card.Background(t.Highlight)
			}
			marker := lipgloss.NewStyle().Foreground(t.PriorityColor(task.Priority)).Render("●")
			title := truncate(task.Title, colWidth-6)
			meta := fmt.Sprintf("%s %d%%", task.AssignedTo.Initials(), task.Progress)
			if task.IsOverdue(now) {
				meta += lipgloss.NewStyle().Foreground(t.Error).Render(" overdue")
			}
			items = append(items, card.Render(marker+" "+title+"\n"+meta))
		}
		if end < len(tasks) {
			items = append(items, lipgloss.NewStyle().Foreground(t.Subtle).Width(colWidth).
				Align(lipgloss.Center).Render(fmt.Sprintf("↓ %d more", len(tasks)-end)))
		}

		border := t.Border
		if active {
			border = t.Primary
		}
		cols = append(cols, lipgloss.NewStyle().
			Width(colWidth).
			Height(max(v.height-5, 3)).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Render(strings.Join(items, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// IsInputMode returns true when the view is capturing text
func (v TasksView) IsInputMode() bool {
	return v.mode != TasksModeNormal
}

func taskIDs(tasks []model.Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}
