// Package assistant implements the scripted chat assistant: a keyword
// matcher over a fixed set of known files plus the typing delay the
// chat view shows before a reply appears.
package assistant

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dori/weezy/internal/model"
	"github.com/dori/weezy/internal/query"
)

// Intent records which rule produced a reply
type Intent int

const (
	IntentFallback Intent = iota
	IntentSearch
	IntentSummarize
	IntentTopic
)

// String returns the intent name used in logs and CLI output
func (i Intent) String() string {
	switch i {
	case IntentSearch:
		return "search"
	case IntentSummarize:
		return "summarize"
	case IntentTopic:
		return "topic"
	default:
		return "fallback"
	}
}

// Context is the list of files the conversation has referred to so far
type Context []model.File

// Has returns true if a file with the same name is already in the context
func (c Context) Has(f model.File) bool {
	for _, item := range c {
		if item.Name == f.Name {
			return true
		}
	}
	return false
}

// with returns a copy of the context with f appended when absent
func (c Context) with(f model.File) Context {
	out := make(Context, len(c), len(c)+1)
	copy(out, c)
	if !c.Has(f) {
		out = append(out, f)
	}
	return out
}

// Reply is what the assistant answers to one user message
type Reply struct {
	Text        string       `json:"text" yaml:"text"`
	Attachments []model.File `json:"attachments,omitempty" yaml:"attachments,omitempty"`
	Intent      Intent       `json:"-" yaml:"-"`
}

// Topic is a keyword group that points at one known file
type Topic struct {
	Keywords []string
	// Target is a substring of the file name the topic answers with
	Target string
	Reply  func(f model.File) string
}

func (t Topic) matches(input string) bool {
	for _, kw := range t.Keywords {
		if strings.Contains(input, kw) {
			return true
		}
	}
	return false
}

func (t Topic) find(known []model.File) (model.File, bool) {
	target := strings.ToLower(t.Target)
	for _, f := range known {
		if strings.Contains(strings.ToLower(f.Name), target) {
			return f, true
		}
	}
	return model.File{}, false
}

// DefaultTopics are the keyword groups of the organization-wide chat
func DefaultTopics() []Topic {
	return []Topic{
		{
			Keywords: []string{"financial", "report"},
			Target:   "Q1 Financial Report",
			Reply: func(f model.File) string {
				return fmt.Sprintf("I found several financial reports in your %s. The most recent one is %q from %s. "+
					"Would you like me to summarize its contents or answer specific questions about it?",
					f.Source, f.Name, f.LastModified)
			},
		},
		{
			Keywords: []string{"marketing", "campaign"},
			Target:   "Marketing Campaign Assets",
			Reply: func(f model.File) string {
				return fmt.Sprintf("I see you have %q in your %s. These files were last modified %s. "+
					"Is there something specific you'd like to know about the campaign?",
					f.Name, f.Source, strings.ToLower(f.LastModified))
			},
		},
		{
			Keywords: []string{"meeting", "notes"},
			Target:   "Team Meeting Notes",
			Reply: func(f model.File) string {
				return fmt.Sprintf("I found %q in your %s workspace, last updated %s. "+
					"The main topics discussed were Q2 goals, project timelines, and resource allocation. "+
					"Would you like more details on any of these topics?",
					f.Name, f.Source, strings.ToLower(f.LastModified))
			},
		},
		{
			Keywords: []string{"customer", "survey"},
			Target:   "Customer Survey Results",
			Reply: func(f model.File) string {
				return fmt.Sprintf("The latest customer survey results are in %q on %s, updated %s. "+
					"I can summarize the satisfaction scores or pull out the most common feedback.",
					f.Name, f.Source, strings.ToLower(f.LastModified))
			},
		},
	}
}

// WorkspaceTopics are the keyword groups of the personal workspace chat
func WorkspaceTopics() []Topic {
	return []Topic{
		{
			Keywords: []string{"marketing strategy", "pdf"},
			Target:   "Marketing Strategy",
			Reply: func(model.File) string {
				return "I found the Marketing Strategy document you're looking for. Here's a summary: " +
					"This document outlines our marketing goals for 2025, including increasing social media " +
					"presence by 30% and launching two new product lines."
			},
		},
		{
			Keywords: []string{"budget", "forecast"},
			Target:   "Budget Forecast",
			Reply: func(model.File) string {
				return "Here's the Budget Forecast for 2025 you requested. The document shows a projected " +
					"15% increase in revenue and plans for expansion into two new markets."
			},
		},
	}
}

// WorkspaceFallback answers workspace chat input that matches no topic
const WorkspaceFallback = "I can help you with your workspace files. Try asking about the marketing strategy or the budget forecast."

// summaries are keyed by a lower-case substring of the first context file name
var summaries = []struct {
	key  string
	text string
}{
	{"financial", "The Q1 financial report shows revenue of $4.2M, up 12% over last quarter, with operating costs held flat. Cash flow is positive for the third consecutive quarter."},
	{"roadmap", "The roadmap plans three major releases for 2025: the analytics dashboard in Q1, mobile apps in Q2, and the integrations marketplace in Q3."},
	{"marketing", "The campaign assets cover the spring product launch: social media creatives, two video spots, and email templates for three customer segments."},
	{"meeting", "The meeting covered Q2 goals, project timelines, and resource allocation. Action items were assigned to the design and engineering leads."},
	{"survey", "Survey respondents rated overall satisfaction 4.3 out of 5. The most requested improvements were faster search and better mobile support."},
}

const (
	genericSummary = "Here's a brief summary of the document: it covers the key points of the project along with next steps and owners."
	fallbackReply  = "I'm analyzing your organization's files to find relevant information. How else can I assist you with your enterprise data?"
	emptySearch    = "What would you like me to look for? Try something like \"find budget\"."
)

// Responder answers user messages with canned, keyword-driven replies
type Responder struct {
	topics   []Topic
	fallback string
}

// NewResponder returns a responder over the given topics, or DefaultTopics when none are given
func NewResponder(topics ...Topic) Responder {
	if len(topics) == 0 {
		topics = DefaultTopics()
	}
	return Responder{topics: topics, fallback: fallbackReply}
}

// WithFallback returns a copy answering unmatched input with text
func (r Responder) WithFallback(text string) Responder {
	r.fallback = text
	return r
}

// Respond matches input against the search, summarize and topic rules in
// that order. The returned context replaces convo; convo itself is not modified.
func (r Responder) Respond(input string, known []model.File, convo Context) (Reply, Context) {
	lower := strings.ToLower(input)
	words := tokenize(lower)

	if q, ok := searchQuery(words); ok {
		return r.search(q, known), convo
	}

	if hasWord(words, "summarize") && len(convo) > 0 {
		return Reply{Text: summarize(convo[0]), Intent: IntentSummarize}, convo
	}

	for _, t := range r.topics {
		if !t.matches(lower) {
			continue
		}
		f, ok := t.find(known)
		if !ok {
			continue
		}
		return Reply{Text: t.Reply(f), Attachments: []model.File{f}, Intent: IntentTopic}, convo.with(f)
	}

	return Reply{Text: r.fallback, Intent: IntentFallback}, convo
}

func (r Responder) search(q string, known []model.File) Reply {
	if q == "" {
		return Reply{Text: emptySearch, Attachments: []model.File{}, Intent: IntentSearch}
	}
	matches := query.Filter(known, query.Options{Query: q})
	var text string
	switch len(matches) {
	case 0:
		text = fmt.Sprintf("I couldn't find any files matching %q.", q)
	case 1:
		text = fmt.Sprintf("I found 1 file matching %q:", q)
	default:
		text = fmt.Sprintf("I found %d files matching %q:", len(matches), q)
	}
	return Reply{Text: text, Attachments: matches, Intent: IntentSearch}
}

func summarize(f model.File) string {
	name := strings.ToLower(f.Name)
	for _, s := range summaries {
		if strings.Contains(name, s.key) {
			return s.text
		}
	}
	return genericSummary
}

// tokenize splits on whitespace and trims surrounding punctuation
func tokenize(s string) []string {
	var out []string
	for _, w := range strings.Fields(s) {
		w = strings.TrimFunc(w, unicode.IsPunct)
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

func hasWord(words []string, w string) bool {
	for _, word := range words {
		if word == w {
			return true
		}
	}
	return false
}

// searchQuery strips the search keywords from words. It reports false when
// none of them is present.
func searchQuery(words []string) (string, bool) {
	found := false
	rest := make([]string, 0, len(words))
	for i := 0; i < len(words); i++ {
		switch {
		case words[i] == "search":
			found = true
			if i+1 < len(words) && words[i+1] == "for" {
				i++
			}
		case words[i] == "find":
			found = true
		case words[i] == "look" && i+1 < len(words) && words[i+1] == "for":
			found = true
			i++
		default:
			rest = append(rest, words[i])
		}
	}
	return strings.Join(rest, " "), found
}
