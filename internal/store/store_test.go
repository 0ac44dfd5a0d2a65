package store

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dori/weezy/internal/model"
)

func counter() IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}
}

func sampleTasks() []model.Task {
	return []model.Task{
		{ID: "1", Title: "Complete Q2 Marketing Strategy Document", Status: model.StatusInProgress, Priority: model.PriorityHigh, Progress: 65},
		{ID: "2", Title: "Review Website Redesign Mockups", Status: model.StatusTodo, Priority: model.PriorityMedium},
		{ID: "3", Title: "Prepare Financial Reports for Board Meeting", Status: model.StatusReview, Priority: model.PriorityHigh, Progress: 85},
	}
}

func ids(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestNewAssignsIDsAndDropsDuplicates(t *testing.T) {
	c := New([]model.Task{
		{Title: "a"},
		{ID: "x", Title: "b"},
		{ID: "x", Title: "c"},
	}, WithIDFunc(counter()))

	require.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"gen-1", "x"}, ids(c.List()))
	got, ok := c.Get("x")
	require.True(t, ok)
	assert.Equal(t, "b", got.Title)
}

func TestListIsACopy(t *testing.T) {
	c := New(sampleTasks())
	list := c.List()
	list[0].Title = "changed"

	got, _ := c.Get("1")
	assert.Equal(t, "Complete Q2 Marketing Strategy Document", got.Title)
}

func TestAdd(t *testing.T) {
	base := New(sampleTasks(), WithIDFunc(counter()))
	added := base.Add(model.Task{Title: "Draft launch email"})

	assert.Equal(t, 3, base.Len(), "receiver must not change")
	require.Equal(t, 4, added.Len())
	assert.Equal(t, []string{"1", "2", "3", "gen-1"}, ids(added.List()))

	again := added.Add(model.Task{ID: "2", Title: "dup"})
	assert.Equal(t, added.List(), again.List())
}

func TestAddKeepsExistingItems(t *testing.T) {
	c := New([]model.Task{{ID: "1", Title: "a"}, {ID: "2", Title: "b"}})
	c = c.Add(model.Task{ID: "3", Title: "c"})
	c = c.Add(model.Task{ID: "4", Title: "d"})

	require.Equal(t, 4, c.Len())
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(c.List()))
	for _, id := range []string{"1", "2", "3", "4"} {
		assert.True(t, c.Contains(id), id)
	}
}

func TestAddDefaultIDIsTimeOrderedUUID(t *testing.T) {
	c := New[model.Task](nil).Add(model.Task{Title: "x"})
	id := c.List()[0].ID

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestUpdate(t *testing.T) {
	base := New(sampleTasks())

	updated := base.Update("2", func(t model.Task) model.Task {
		t.Title = "Review mockups"
		t.ID = "hijacked"
		return t
	})
	got, ok := updated.Get("2")
	require.True(t, ok)
	assert.Equal(t, "Review mockups", got.Title)
	assert.False(t, updated.Contains("hijacked"))

	orig, _ := base.Get("2")
	assert.Equal(t, "Review Website Redesign Mockups", orig.Title)

	missing := base.Update("nope", func(t model.Task) model.Task {
		t.Title = "x"
		return t
	})
	assert.Equal(t, base.List(), missing.List())
}

func TestRemoveIsIdempotent(t *testing.T) {
	base := New(sampleTasks())

	once := base.Remove("2")
	twice := once.Remove("2")

	assert.Equal(t, []string{"1", "3"}, ids(once.List()))
	assert.Equal(t, once.List(), twice.List())
	assert.Equal(t, 3, base.Len())
}

func TestSetStatusCompletedForcesProgress(t *testing.T) {
	tasks := New(sampleTasks())
	for _, task := range sampleTasks() {
		got, _ := SetStatus(tasks, task.ID, model.StatusCompleted).Get(task.ID)
		assert.Equal(t, 100, got.Progress, task.Title)
	}
}

func TestToggleCompletedRetainsProgress(t *testing.T) {
	tasks := ToggleCompleted(New(sampleTasks()), "3")
	done, _ := tasks.Get("3")
	require.Equal(t, model.StatusCompleted, done.Status)
	require.Equal(t, 100, done.Progress)

	tasks = ToggleCompleted(tasks, "3")
	reopened, _ := tasks.Get("3")
	assert.Equal(t, model.StatusTodo, reopened.Status)
	assert.Equal(t, 100, reopened.Progress)
}

func TestPatchTask(t *testing.T) {
	status := model.StatusCompleted
	tasks := PatchTask(New(sampleTasks()), "2", model.TaskPatch{Status: &status})
	got, _ := tasks.Get("2")
	assert.Equal(t, 100, got.Progress)
	assert.Equal(t, "Review Website Redesign Mockups", got.Title)
}

func TestPatchFile(t *testing.T) {
	files := New([]model.File{{ID: "1", Name: "Project Roadmap.docx", LastModified: "2 hours ago"}})
	label := "just now"
	got, _ := PatchFile(files, "1", model.FilePatch{LastModified: &label}).Get("1")
	assert.Equal(t, "just now", got.LastModified)
}
