package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidTask is wrapped by every task validation failure
var ErrInvalidTask = errors.New("invalid task")

// Status represents the board column a task sits in
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusReview     Status = "review"
	StatusCompleted  Status = "completed"
)

// Statuses lists every status in board order
var Statuses = []Status{StatusTodo, StatusInProgress, StatusReview, StatusCompleted}

// Valid returns true if the status is part of the closed vocabulary
func (s Status) Valid() bool {
	for _, st := range Statuses {
		if s == st {
			return true
		}
	}
	return false
}

// Label returns the display name used for board columns
func (s Status) Label() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusReview:
		return "In Review"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// Next returns the status of the column to the right, staying put at the end
func (s Status) Next() Status {
	for i, st := range Statuses {
		if st == s && i < len(Statuses)-1 {
			return Statuses[i+1]
		}
	}
	return s
}

// Prev returns the status of the column to the left, staying put at the start
func (s Status) Prev() Status {
	for i, st := range Statuses {
		if st == s && i > 0 {
			return Statuses[i-1]
		}
	}
	return s
}

// Priority represents task priority level
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists every priority from lowest to highest
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid returns true if the priority is part of the closed vocabulary
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Weight returns a numeric weight for sorting by priority
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 2
	}
}

// Person is somebody a task is assigned to or created by
type Person struct {
	Name   string `json:"name" yaml:"name"`
	Role   string `json:"role" yaml:"role"`
	Avatar string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

// Initials returns up to two upper-case initials for avatar fallbacks
func (p Person) Initials() string {
	var initials []rune
	for _, part := range strings.Fields(p.Name) {
		initials = append(initials, []rune(strings.ToUpper(part))[0])
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}

// DueDateLayout is the ISO date format used for due dates
const DueDateLayout = "2006-01-02"

// Task represents an item on the task board
type Task struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	DueDate     string   `json:"due_date" yaml:"due_date"`
	Priority    Priority `json:"priority" yaml:"priority"`
	Status      Status   `json:"status" yaml:"status"`
	Progress    int      `json:"progress" yaml:"progress"`
	AssignedTo  Person   `json:"assigned_to" yaml:"assigned_to"`
	CreatedBy   Person   `json:"created_by" yaml:"created_by"`
	Private     bool     `json:"private" yaml:"private"`
	Labels      Labels   `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// EntityID returns the task id
func (t Task) EntityID() string { return t.ID }

// WithID returns a copy of the task carrying the given id
func (t Task) WithID(id string) Task {
	t.ID = id
	return t
}

// WithStatus moves the task to the given status.
// Entering completed forces progress to 100; leaving it keeps the last value.
func (t Task) WithStatus(s Status) Task {
	t.Status = s
	if s == StatusCompleted {
		t.Progress = 100
	}
	t.Labels = t.Labels.Clone()
	return t
}

// ToggleCompleted flips between completed and todo
func (t Task) ToggleCompleted() Task {
	if t.Status == StatusCompleted {
		return t.WithStatus(StatusTodo)
	}
	return t.WithStatus(StatusCompleted)
}

// Due parses the due date, reporting false when it is unset or malformed
func (t Task) Due() (time.Time, bool) {
	if t.DueDate == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(DueDateLayout, t.DueDate)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// IsOverdue returns true if the task is past its due date and not completed
func (t Task) IsOverdue(now time.Time) bool {
	d, ok := t.Due()
	if !ok || t.Status == StatusCompleted {
		return false
	}
	return now.After(d.AddDate(0, 0, 1))
}

// Validate checks the task against the board vocabulary
func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidTask)
	}
	if !t.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTask, t.Status)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidTask, t.Priority)
	}
	if err := validateProgress(t.Progress); err != nil {
		return err
	}
	if t.DueDate != "" {
		if _, err := time.Parse(DueDateLayout, t.DueDate); err != nil {
			return fmt.Errorf("%w: due date %q is not YYYY-MM-DD", ErrInvalidTask, t.DueDate)
		}
	}
	return nil
}

func validateProgress(p int) error {
	if p < 0 || p > 100 {
		return fmt.Errorf("%w: progress %d outside 0-100", ErrInvalidTask, p)
	}
	return nil
}

// SearchText returns the fields matched by free-text search
func (t Task) SearchText() []string {
	return []string{t.Title, t.Description, t.AssignedTo.Name}
}

// StatusKey returns the value matched by the status filter
func (t Task) StatusKey() string { return string(t.Status) }

// SourceKey returns the value matched by the source filter.
// Tasks have no platform; private tasks are reported as "private".
func (t Task) SourceKey() string {
	if t.Private {
		return "private"
	}
	return "shared"
}

// NumericField returns the value of a sortable numeric field
func (t Task) NumericField(name string) (int, bool) {
	switch name {
	case "progress":
		return t.Progress, true
	case "priority":
		return t.Priority.Weight(), true
	}
	return 0, false
}

// DisplayName returns the title, used by name sorting
func (t Task) DisplayName() string { return t.Title }
