package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dori/weezy/internal/assistant"
	"github.com/dori/weezy/internal/model"
	"github.com/dori/weezy/internal/store"
)

func newTestWorkspace() WorkspaceView {
	cat := testCatalog()
	files := store.New(cat.WorkspaceFiles())
	chat := NewChatView(WorkspaceChatID, "Workspace Assistant",
		assistant.NewResponder(assistant.WorkspaceTopics()...),
		cat.WorkspaceFiles(),
		WithTypingDelay(0, 0),
	)
	return NewWorkspaceView("My Workspace", files, chat).SetSize(120, 30)
}

func fileNames(files []model.File) []string {
	out := []string{}
	for _, f := range files {
		out = append(out, f.Name)
	}
	return out
}

func TestWorkspaceTabs(t *testing.T) {
	v := newTestWorkspace()
	assert.Len(t, v.Visible(), 5)

	v, _ = press(v, "tab")
	assert.Equal(t, WorkspaceLocal, v.tab)
	assert.ElementsMatch(t, []string{"Project Proposal.docx", "Budget Forecast.xlsx", "Meeting Notes.txt"}, fileNames(v.Visible()))

	v, _ = press(v, "tab")
	assert.ElementsMatch(t, []string{"Marketing Strategy.pdf", "Annual Report.pptx"}, fileNames(v.Visible()))

	v, _ = press(v, "tab")
	assert.Equal(t, WorkspaceRecent, v.tab, "tabs wrap")
}

func TestWorkspaceSortByName(t *testing.T) {
	v, _ := press(newTestWorkspace(), "tab")
	v, cmd := press(v, "s")

	assert.Equal(t, SortName, v.sortBy)
	assert.Equal(t, []string{"Budget Forecast.xlsx", "Meeting Notes.txt", "Project Proposal.docx"}, fileNames(v.Visible()))
	toastMsg, ok := find[ToastMsg](collect(cmd))
	require.True(t, ok)
	assert.Equal(t, "Files sorted by name", toastMsg.Body)
}

func TestWorkspaceSearchIsLive(t *testing.T) {
	v, _ := press(newTestWorkspace(), "/")
	v = typeText(v, "report")

	assert.True(t, v.IsInputMode())
	assert.Equal(t, []string{"Annual Report.pptx"}, fileNames(v.Visible()))

	v, _ = press(v, "esc")
	assert.False(t, v.IsInputMode())
	assert.Len(t, v.Visible(), 5)
}

func TestWorkspaceRename(t *testing.T) {
	v, _ := press(newTestWorkspace(), "r")
	require.True(t, v.IsInputMode())

	for range len("My Workspace") {
		v, _ = press(v, "backspace")
	}
	v = typeText(v, "Launch Room")
	v, cmd := press(v, "enter")

	assert.Equal(t, "Launch Room", v.Name())
	msgs := collect(cmd)
	renamed, ok := find[WorkspaceRenamedMsg](msgs)
	require.True(t, ok)
	assert.Equal(t, "Launch Room", renamed.Name)
	toastMsg, ok := find[ToastMsg](msgs)
	require.True(t, ok)
	assert.Equal(t, `Workspace is now named "Launch Room"`, toastMsg.Body)
}

func TestWorkspaceRenameRejectsEmpty(t *testing.T) {
	v, _ := press(newTestWorkspace(), "r")
	for range len("My Workspace") {
		v, _ = press(v, "backspace")
	}
	v, cmd := press(v, "enter")

	assert.Equal(t, "My Workspace", v.Name())
	msgs := collect(cmd)
	_, renamed := find[WorkspaceRenamedMsg](msgs)
	assert.False(t, renamed)
	toastMsg, ok := find[ToastMsg](msgs)
	require.True(t, ok)
	assert.Equal(t, "Workspace not renamed", toastMsg.Title)
}

func TestWorkspaceUpload(t *testing.T) {
	v, cmd := press(newTestWorkspace(), "u")

	require.Len(t, v.Files(), 6)
	msgs := collect(cmd)
	changed, ok := find[FilesChangedMsg](msgs)
	require.True(t, ok)
	assert.Len(t, changed.Files, 6)
	toastMsg, ok := find[ToastMsg](msgs)
	require.True(t, ok)
	assert.Equal(t, "Upload initiated", toastMsg.Title)

	v, _ = press(v, "tab")
	assert.Contains(t, fileNames(v.Visible()), "Uploaded Document 1.docx")

	v, _ = press(v, "u")
	assert.Contains(t, fileNames(v.Files()), "Uploaded Document 2.docx")
}

func TestWorkspaceEmbeddedChat(t *testing.T) {
	v, _ := press(newTestWorkspace(), "c")
	require.True(t, v.chatOpen)
	assert.False(t, v.IsInputMode(), "an open chat starts in normal mode")

	v, _ = press(v, "i")
	assert.True(t, v.IsInputMode())
	v = typeText(v, "c")
	assert.True(t, v.chatOpen, "typing c into the chat does not close it")

	v, _ = press(v, "esc", "esc")
	assert.False(t, v.chatOpen)
}

func TestWorkspaceRoutesRepliesToChat(t *testing.T) {
	v, _ := press(newTestWorkspace(), "c", "i")
	v = typeText(v, "hello")
	v, cmd := press(v, "enter")
	reply, ok := find[ChatReplyMsg](collect(cmd))
	require.True(t, ok)
	assert.Equal(t, WorkspaceChatID, reply.ChatID)

	v, _ = press(v, "esc", "c")
	next, _ := v.Update(reply)
	v = next.(WorkspaceView)
	assert.Len(t, v.chat.Session().Messages(), 3, "replies land while the chat is closed")
}
