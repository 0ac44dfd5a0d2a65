package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dori/weezy/internal/assistant"
	"github.com/dori/weezy/internal/model"
)

func newTestChat() ChatView {
	return NewChatView("chat", "Knowledge Assistant", assistant.NewResponder(), knowledgeFiles(),
		WithTypingDelay(0, 0),
		WithSessionOptions(assistant.WithClock(fixedNow)),
	).SetSize(120, 30)
}

// send types text in compose mode and returns the pending reply message
func send(t *testing.T, v ChatView, text string) (ChatView, ChatReplyMsg) {
	t.Helper()
	v, _ = press(v, "i")
	v = typeText(v, text)
	v, cmd := press(v, "enter")
	reply, ok := find[ChatReplyMsg](collect(cmd))
	require.True(t, ok, "sending should schedule a reply")
	return v, reply
}

func TestChatStartsWithGreeting(t *testing.T) {
	v := newTestChat()

	msgs := v.Session().Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, assistant.Greeting, msgs[0].Text)
	assert.False(t, v.IsInputMode())
}

func TestChatDeliversReplyWithAttachments(t *testing.T) {
	v, reply := send(t, newTestChat(), "find customer survey")
	assert.True(t, v.Typing())
	assert.Equal(t, "chat", reply.ChatID)

	next, _ := v.Update(reply)
	v = next.(ChatView)

	assert.False(t, v.Typing())
	msgs := v.Session().Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, model.SenderUser, msgs[1].Sender)
	last := msgs[2]
	assert.Equal(t, model.SenderAssistant, last.Sender)
	require.Len(t, last.Attachments, 1)
	assert.Equal(t, "Customer Survey Results.pdf", last.Attachments[0].Name)
	assert.Contains(t, v.View(), "Customer Survey Results.pdf")
}

func TestChatDropsStaleReplyAfterReset(t *testing.T) {
	v, reply := send(t, newTestChat(), "tell me about the financial report")

	v, _ = press(v, "ctrl+l")
	next, _ := v.Update(reply)
	v = next.(ChatView)

	msgs := v.Session().Messages()
	require.Len(t, msgs, 1, "only the greeting survives a reset")
	assert.False(t, v.Typing())
}

func TestChatIgnoresRepliesForOtherChats(t *testing.T) {
	v, reply := send(t, newTestChat(), "hello")
	reply.ChatID = WorkspaceChatID

	next, _ := v.Update(reply)
	v = next.(ChatView)

	assert.True(t, v.Typing())
	assert.Len(t, v.Session().Messages(), 2)
}

func TestChatIgnoresBlankInput(t *testing.T) {
	v, _ := press(newTestChat(), "i")
	v = typeText(v, "   ")
	v, cmd := press(v, "enter")

	assert.Nil(t, cmd)
	assert.False(t, v.Typing())
	assert.Len(t, v.Session().Messages(), 1)
}

func TestChatKeepsContextForSummaries(t *testing.T) {
	v, reply := send(t, newTestChat(), "what is in the marketing campaign?")
	next, _ := v.Update(reply)
	v = next.(ChatView)

	v, _ = press(v, "esc")
	v, reply = send(t, v, "summarize it")
	assert.Equal(t, assistant.IntentSummarize, reply.Reply.Intent)
	assert.True(t, v.Session().Context().Has(knowledgeFiles()[2]))
}

func TestChatSearchFiltersLog(t *testing.T) {
	v, reply := send(t, newTestChat(), "find roadmap")
	next, _ := v.Update(reply)
	v = next.(ChatView)
	v, _ = press(v, "esc", "/")
	v = typeText(v, "roadmap")
	v, _ = press(v, "enter")

	assert.False(t, v.IsInputMode())
	assert.Contains(t, v.View(), `search: "roadmap"`)

	v, _ = press(v, "esc")
	assert.NotContains(t, v.View(), "search:")
}
