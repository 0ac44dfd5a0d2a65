package model

import (
	"fmt"
	"time"
)

// TaskPatch is a merge-patch over a task. Nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	DueDate     *string
	Priority    *Priority
	Status      *Status
	Progress    *int
	AssignedTo  *Person
	Private     *bool
	Labels      *Labels
}

// Apply merges the patch over the task.
// A resulting status of completed always forces progress to 100.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Progress != nil {
		t.Progress = *p.Progress
	}
	if p.AssignedTo != nil {
		t.AssignedTo = *p.AssignedTo
	}
	if p.Private != nil {
		t.Private = *p.Private
	}
	if p.Labels != nil {
		t.Labels = NewLabels(*p.Labels...)
	} else {
		t.Labels = t.Labels.Clone()
	}
	status := t.Status
	if p.Status != nil {
		status = *p.Status
	}
	return t.WithStatus(status)
}

// Validate checks the non-nil fields against the board vocabulary
func (p TaskPatch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return fmt.Errorf("%w: title cannot be cleared", ErrInvalidTask)
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTask, *p.Status)
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidTask, *p.Priority)
	}
	if p.Progress != nil {
		if err := validateProgress(*p.Progress); err != nil {
			return err
		}
	}
	if p.DueDate != nil && *p.DueDate != "" {
		if _, err := time.Parse(DueDateLayout, *p.DueDate); err != nil {
			return fmt.Errorf("%w: due date %q is not YYYY-MM-DD", ErrInvalidTask, *p.DueDate)
		}
	}
	return nil
}

// StatusPatch is shorthand for a patch that only moves the task
func StatusPatch(s Status) TaskPatch {
	return TaskPatch{Status: &s}
}

// FilePatch is a merge-patch over a file
type FilePatch struct {
	Name         *string
	Source       *string
	LastModified *string
	AccessCount  *int
}

// Apply merges the patch over the file
func (p FilePatch) Apply(f File) File {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Source != nil {
		f.Source = *p.Source
	}
	if p.LastModified != nil {
		f.LastModified = *p.LastModified
	}
	if p.AccessCount != nil {
		f.AccessCount = *p.AccessCount
	}
	return f
}
