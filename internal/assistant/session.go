package assistant

import (
	"strings"
	"time"

	"github.com/dori/weezy/internal/model"
	"github.com/dori/weezy/internal/query"
	"github.com/dori/weezy/internal/store"
)

// Greeting is the first message of every new chat
const Greeting = "Hello! I'm Weezy, your enterprise AI assistant. How can I help you today?"

// Session is one chat: its message log, the files it knows about and the
// conversation context. Methods return an updated copy.
type Session struct {
	responder Responder
	known     []model.File
	messages  store.Messages
	context   Context
	now       func() time.Time
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithClock sets the clock used to timestamp messages
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// WithStoreOptions passes options to the underlying message store
func WithStoreOptions(opts ...store.Option) SessionOption {
	return func(s *Session) { s.messages = store.New[model.Message](nil, opts...) }
}

// NewSession starts a chat over the known files with the greeting already posted
func NewSession(r Responder, known []model.File, opts ...SessionOption) Session {
	s := Session{
		responder: r,
		known:     known,
		messages:  store.New[model.Message](nil),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(&s)
	}
	s.messages = s.messages.Add(model.Message{
		Text:      Greeting,
		Sender:    model.SenderAssistant,
		Timestamp: s.now(),
	})
	return s
}

// Messages returns the chat log in posting order
func (s Session) Messages() []model.Message { return s.messages.List() }

// Context returns the files the conversation has referred to
func (s Session) Context() Context { return s.context }

// Known returns the files the assistant can answer about
func (s Session) Known() []model.File { return s.known }

// Send posts a user message and computes the reply to deliver later.
// Blank text is ignored and reported with false.
func (s Session) Send(text string) (Session, Reply, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s, Reply{}, false
	}
	s.messages = s.messages.Add(model.Message{
		Text:      text,
		Sender:    model.SenderUser,
		Timestamp: s.now(),
	})
	reply, convo := s.responder.Respond(text, s.known, s.context)
	s.context = convo
	return s, reply, true
}

// Deliver posts an assistant reply
func (s Session) Deliver(r Reply) Session {
	s.messages = s.messages.Add(model.Message{
		Text:        r.Text,
		Sender:      model.SenderAssistant,
		Timestamp:   s.now(),
		Attachments: r.Attachments,
	})
	return s
}

// Search returns the messages matching q, oldest first
func (s Session) Search(q string) []model.Message {
	return query.Filter(s.messages.List(), query.Options{Query: q})
}
