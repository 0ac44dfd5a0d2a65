package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dori/weezy/internal/assistant"
	"github.com/dori/weezy/internal/model"
)

// run executes the command tree against a throwaway config
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	body := "runtime_dir: " + dir + "\ntyping_delay: 0s\ntyping_jitter: 0s\n"
	require.NoError(t, os.WriteFile(cfg, []byte(body), 0644))

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "weezy v"+version+"\n", out)
}

func TestFilesMostUsedByAccess(t *testing.T) {
	out, err := run(t, "files", "--collection", "popular", "--sort", "access", "-o", "json")
	require.NoError(t, err)

	var files []model.File
	require.NoError(t, json.Unmarshal([]byte(out), &files))
	var counts []int
	for _, f := range files {
		counts = append(counts, f.AccessCount)
	}
	assert.Equal(t, []int{42, 38, 35, 29, 24}, counts)
}

func TestFilesSearchText(t *testing.T) {
	out, err := run(t, "files", "report", "--collection", "all", "--sort", "name")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Q1 Financial Report.xlsx")
	assert.NotContains(t, out, "Budget Forecast 2025.xlsx")
}

func TestFilesNoMatch(t *testing.T) {
	out, err := run(t, "files", "zzz-nothing")
	require.NoError(t, err)
	assert.Equal(t, "No files found\n", out)
}

func TestFilesRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"collection", []string{"files", "--collection", "trash"}},
		{"sort", []string{"files", "--sort", "size"}},
		{"output", []string{"files", "-o", "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestTasksSearch(t *testing.T) {
	out, err := run(t, "tasks", "marketing", "-o", "yaml")
	require.NoError(t, err)

	var tasks []model.Task
	require.NoError(t, yaml.Unmarshal([]byte(out), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "Complete Q2 Marketing Strategy Document", tasks[0].Title)
}

func TestTasksSortByProgress(t *testing.T) {
	out, err := run(t, "tasks", "--sort", "progress", "--dir", "asc", "-o", "json")
	require.NoError(t, err)

	var tasks []model.Task
	require.NoError(t, json.Unmarshal([]byte(out), &tasks))
	var progress []int
	for _, task := range tasks {
		progress = append(progress, task.Progress)
	}
	if diff := cmp.Diff([]int{0, 65, 85}, progress); diff != "" {
		t.Errorf("progress order mismatch (-want +got):\n%s", diff)
	}
}

func TestTasksRejectsUnknownStatus(t *testing.T) {
	_, err := run(t, "tasks", "--status", "blocked")
	assert.ErrorIs(t, err, model.ErrInvalidTask)

	_, err = run(t, "tasks", "--sort", "title")
	assert.Error(t, err)
}

func TestAskAttachesFile(t *testing.T) {
	out, err := run(t, "ask", "find", "customer", "survey", "--no-delay", "-o", "json")
	require.NoError(t, err)

	var reply assistant.Reply
	require.NoError(t, json.Unmarshal([]byte(out), &reply))
	require.Len(t, reply.Attachments, 1)
	assert.Equal(t, "Customer Survey Results.pdf", reply.Attachments[0].Name)
}

func TestAskWorkspace(t *testing.T) {
	out, err := run(t, "ask", "--workspace", "show", "me", "the", "budget")
	require.NoError(t, err)
	assert.Contains(t, out, "Budget Forecast")
	assert.Contains(t, out, "📎 Budget Forecast 2025.xlsx")
}

func TestAskRejectsBlank(t *testing.T) {
	_, err := run(t, "ask", "   ")
	assert.EqualError(t, err, "nothing to ask")
}
