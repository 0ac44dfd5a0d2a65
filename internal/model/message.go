package model

import (
	"strings"
	"time"
)

// Sender identifies who wrote a chat message
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// ParseSender accepts "bot" as an alias for the assistant
func ParseSender(s string) (Sender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user":
		return SenderUser, true
	case "assistant", "bot":
		return SenderAssistant, true
	}
	return "", false
}

// Message is a single entry in a chat log
type Message struct {
	ID          string    `json:"id" yaml:"id"`
	Text        string    `json:"text" yaml:"text"`
	Sender      Sender    `json:"sender" yaml:"sender"`
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
	Attachments []File    `json:"attachments,omitempty" yaml:"attachments,omitempty"`
}

// EntityID returns the message id
func (m Message) EntityID() string { return m.ID }

// WithID returns a copy of the message carrying the given id
func (m Message) WithID(id string) Message {
	m.ID = id
	return m
}

// SearchText returns the fields matched by free-text search, including attachment names
func (m Message) SearchText() []string {
	fields := []string{m.Text}
	for _, f := range m.Attachments {
		fields = append(fields, f.Name)
	}
	return fields
}

// StatusKey returns the sender so chat search can be narrowed to one side
func (m Message) StatusKey() string { return string(m.Sender) }

// SourceKey is empty; messages have no platform
func (m Message) SourceKey() string { return "" }
