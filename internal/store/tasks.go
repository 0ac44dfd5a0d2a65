package store

import "github.com/dori/weezy/internal/model"

// Tasks is the task board collection
type Tasks = Collection[model.Task]

// Files is a workspace file collection
type Files = Collection[model.File]

// Messages is a chat log
type Messages = Collection[model.Message]

// PatchTask merges a patch over the task with the given id
func PatchTask(c Tasks, id string, patch model.TaskPatch) Tasks {
	return c.Update(id, patch.Apply)
}

// SetStatus moves a task to a new status
func SetStatus(c Tasks, id string, status model.Status) Tasks {
	return c.Update(id, func(t model.Task) model.Task {
		return t.WithStatus(status)
	})
}

// ToggleCompleted flips a task between completed and todo
func ToggleCompleted(c Tasks, id string) Tasks {
	return c.Update(id, model.Task.ToggleCompleted)
}

// PatchFile merges a patch over the file with the given id
func PatchFile(c Files, id string, patch model.FilePatch) Files {
	return c.Update(id, patch.Apply)
}
