package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/weezy/internal/model"
	"github.com/dori/weezy/internal/ui/theme"
)

// Form fields in tab order
const (
	fieldTitle = iota
	fieldDescription
	fieldDue
	fieldPriority
	fieldStatus
	fieldProgress
	fieldAssignee
	fieldLabels
	fieldPrivate
	fieldCount
)

var fieldNames = [fieldCount]string{
	"Title", "Description", "Due date", "Priority", "Status",
	"Progress", "Assignee", "Labels", "Private",
}

// FormResult reports what a key press did to the form
type FormResult int

const (
	FormPending FormResult = iota
	FormSubmitted
	FormCancelled
)

// TaskForm edits every field of a task
type TaskForm struct {
	inputs    [fieldCount]textinput.Model
	focus     int
	priority  int
	status    int
	assignee  int
	private   bool
	users     []model.Person
	suggested model.Labels

	editing string
	err     string
}

// NewTaskForm creates an empty form choosing assignees from users
func NewTaskForm(users []model.Person, suggested model.Labels) TaskForm {
	f := TaskForm{
		users:     users,
		suggested: suggested,
	}
	for field := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		f.inputs[field] = ti
	}
	f.setPlaceholder(fieldDue, model.DueDateLayout)
	f.setPlaceholder(fieldProgress, "0-100")
	f.setPlaceholder(fieldLabels, "comma separated")
	return f.ForNew()
}

func (f *TaskForm) setPlaceholder(field int, p string) {
	f.inputs[field].Placeholder = p
}

func (f *TaskForm) setValue(field int, s string) {
	f.inputs[field].SetValue(s)
}

func (f TaskForm) value(field int) string {
	return strings.TrimSpace(f.inputs[field].Value())
}

// ForNew clears the form for a new task
func (f TaskForm) ForNew() TaskForm {
	for field := range f.inputs {
		f.setValue(field, "")
	}
	f.priority = indexOf(model.Priorities, model.PriorityMedium)
	f.status = 0
	f.assignee = 0
	f.private = false
	f.editing = ""
	f.err = ""
	return f.focusOn(fieldTitle)
}

// ForEdit fills the form from an existing task
func (f TaskForm) ForEdit(t model.Task) TaskForm {
	f = f.ForNew()
	f.editing = t.ID
	f.setValue(fieldTitle, t.Title)
	f.setValue(fieldDescription, t.Description)
	f.setValue(fieldDue, t.DueDate)
	f.setValue(fieldProgress, strconv.Itoa(t.Progress))
	f.setValue(fieldLabels, strings.Join(t.Labels, ", "))
	f.priority = max(indexOf(model.Priorities, t.Priority), 0)
	f.status = max(indexOf(model.Statuses, t.Status), 0)
	f.private = t.Private
	for i, u := range f.users {
		if u.Name == t.AssignedTo.Name {
			f.assignee = i
		}
	}
	return f
}

// Editing returns the id of the task being edited, empty for a new task
func (f TaskForm) Editing() string { return f.editing }

// Err returns the last validation message
func (f TaskForm) Err() string { return f.err }

func (f TaskForm) focusOn(field int) TaskForm {
	f.focus = field
	for k := range f.inputs {
		if k == field {
			f.inputs[k].Focus()
		} else {
			f.inputs[k].Blur()
		}
	}
	return f
}

// Update handles a key press
func (f TaskForm) Update(msg tea.KeyMsg) (TaskForm, tea.Cmd, FormResult) {
	switch msg.String() {
	case "esc":
		return f, nil, FormCancelled
	case "enter":
		if _, err := f.Patch(); err != nil {
			f.err = err.Error()
			return f, nil, FormPending
		}
		f.err = ""
		return f, nil, FormSubmitted
	case "tab", "down":
		return f.focusOn((f.focus + 1) % fieldCount), textinput.Blink, FormPending
	case "shift+tab", "up":
		return f.focusOn((f.focus + fieldCount - 1) % fieldCount), textinput.Blink, FormPending
	}

	switch f.focus {
	case fieldPriority:
		f.priority = cycle(msg.String(), f.priority, len(model.Priorities))
		return f, nil, FormPending
	case fieldStatus:
		f.status = cycle(msg.String(), f.status, len(model.Statuses))
		return f, nil, FormPending
	case fieldAssignee:
		f.assignee = cycle(msg.String(), f.assignee, len(f.users))
		return f, nil, FormPending
	case fieldPrivate:
		if msg.String() == " " || msg.String() == "space" {
			f.private = !f.private
		}
		return f, nil, FormPending
	case fieldLabels:
		if msg.String() == "ctrl+n" {
			f.addSuggestion()
			return f, nil, FormPending
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd, FormPending
}

// addSuggestion appends the first suggested label not yet on the task
func (f *TaskForm) addSuggestion() {
	current := f.labels()
	for _, s := range f.suggested {
		if !current.Has(s) {
			f.setValue(fieldLabels, strings.Join(current.Add(s), ", "))
			return
		}
	}
}

func (f TaskForm) labels() model.Labels {
	var names []string
	for _, part := range strings.Split(f.value(fieldLabels), ",") {
		if p := strings.TrimSpace(part); p != "" {
			names = append(names, p)
		}
	}
	return model.NewLabels(names...)
}

func (f TaskForm) progress() (int, error) {
	s := f.value(fieldProgress)
	if s == "" {
		return 0, nil
	}
	p, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: progress %q is not a number", model.ErrInvalidTask, s)
	}
	return p, nil
}

func (f TaskForm) assigned() model.Person {
	if f.assignee < len(f.users) {
		return f.users[f.assignee]
	}
	return model.Person{}
}

// Patch returns the form as a full patch over a task
func (f TaskForm) Patch() (model.TaskPatch, error) {
	progress, err := f.progress()
	if err != nil {
		return model.TaskPatch{}, err
	}
	title := f.value(fieldTitle)
	if title == "" {
		return model.TaskPatch{}, fmt.Errorf("%w: title is required", model.ErrInvalidTask)
	}
	desc := f.value(fieldDescription)
	due := f.value(fieldDue)
	priority := model.Priorities[f.priority]
	status := model.Statuses[f.status]
	assignee := f.assigned()
	private := f.private
	labels := f.labels()

	p := model.TaskPatch{
		Title:       &title,
		Description: &desc,
		DueDate:     &due,
		Priority:    &priority,
		Status:      &status,
		Progress:    &progress,
		AssignedTo:  &assignee,
		Private:     &private,
		Labels:      &labels,
	}
	if err := p.Validate(); err != nil {
		return model.TaskPatch{}, err
	}
	return p, nil
}

// Task builds a new task from the form
func (f TaskForm) Task(createdBy model.Person) (model.Task, error) {
	p, err := f.Patch()
	if err != nil {
		return model.Task{}, err
	}
	t := p.Apply(model.Task{CreatedBy: createdBy})
	if err := t.Validate(); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

// View renders the form
func (f TaskForm) View(width int) string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	labelStyle := lipgloss.NewStyle().Width(14).Foreground(t.Subtle)
	focusLabel := labelStyle.Foreground(t.Primary).Bold(true)

	heading := "New Task"
	if f.editing != "" {
		heading = "Edit Task"
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(heading))
	b.WriteString("\n")
	for field := 0; field < fieldCount; field++ {
		ls := labelStyle
		if field == f.focus {
			ls = focusLabel
		}
		b.WriteString(ls.Render(fieldNames[field]))
		b.WriteString(f.fieldView(field))
		b.WriteString("\n")
	}
	if f.focus == fieldLabels && len(f.suggested) > 0 {
		b.WriteString(styles.Label.Render("Suggested: " + f.suggested.String() + "  (ctrl+n adds)"))
		b.WriteString("\n")
	}
	if f.err != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(t.Error).Render(f.err))
		b.WriteString("\n")
	}
	return styles.Panel.Width(min(width-4, 80)).Render(b.String())
}

func (f TaskForm) fieldView(field int) string {
	t := theme.Current.Theme
	selector := func(s string, c lipgloss.Color) string {
		out := lipgloss.NewStyle().Foreground(c).Render(s)
		if field == f.focus {
			return "‹ " + out + " ›"
		}
		return out
	}
	switch field {
	case fieldPriority:
		p := model.Priorities[f.priority]
		return selector(string(p), t.PriorityColor(p))
	case fieldStatus:
		s := model.Statuses[f.status]
		return selector(s.Label(), t.StatusColor(s))
	case fieldAssignee:
		a := f.assigned()
		return selector(fmt.Sprintf("%s (%s)", a.Name, a.Role), t.Foreground)
	case fieldPrivate:
		if f.private {
			return selector("[x] only visible to you", t.Foreground)
		}
		return selector("[ ] shared", t.Foreground)
	default:
		return f.inputs[field].View()
	}
}

func cycle(key string, i, n int) int {
	if n == 0 {
		return 0
	}
	switch key {
	case "right", "l", " ":
		return (i + 1) % n
	case "left", "h":
		return (i + n - 1) % n
	}
	return i
}

func indexOf[T comparable](items []T, v T) int {
	for i, it := range items {
		if it == v {
			return i
		}
	}
	return -1
}
