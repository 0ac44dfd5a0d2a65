package assistant

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dori/weezy/internal/model"
)

func knowledgeBase() []model.File {
	return []model.File{
		{ID: "1", Name: "Q1 Financial Report.xlsx", Kind: model.KindSpreadsheet, Size: "2.4 MB", Source: "Google Drive", LastModified: "2 days ago"},
		{ID: "2", Name: "Product Roadmap 2025.docx", Kind: model.KindDocument, Size: "1.8 MB", Source: "Notion", LastModified: "1 week ago"},
		{ID: "3", Name: "Marketing Campaign Assets.zip", Kind: model.KindArchive, Size: "15.7 MB", Source: "Dropbox", LastModified: "3 days ago"},
		{ID: "4", Name: "Team Meeting Notes.md", Kind: model.KindDocument, Size: "45 KB", Source: "Slack", LastModified: "Yesterday"},
		{ID: "5", Name: "Customer Survey Results.pdf", Kind: model.KindPDF, Size: "3.2 MB", Source: "Google Drive", LastModified: "5 days ago"},
	}
}

func attachmentNames(r Reply) []string {
	out := []string{}
	for _, f := range r.Attachments {
		out = append(out, f.Name)
	}
	return out
}

func TestRespondFindCustomerSurvey(t *testing.T) {
	reply, convo := NewResponder().Respond("find customer survey", knowledgeBase(), nil)

	assert.Equal(t, IntentSearch, reply.Intent)
	assert.Equal(t, []string{"Customer Survey Results.pdf"}, attachmentNames(reply))
	assert.Equal(t, `I found 1 file matching "customer survey":`, reply.Text)
	assert.Empty(t, convo)
}

func TestRespondSearchKeywords(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"search for roadmap", []string{"Product Roadmap 2025.docx"}},
		{"Search notion", []string{"Product Roadmap 2025.docx"}},
		{"look for google drive", []string{"Q1 Financial Report.xlsx", "Customer Survey Results.pdf"}},
		{"can you FIND the marketing files?", []string{}},
		{"find marketing", []string{"Marketing Campaign Assets.zip"}},
		{"find spreadsheets from last year", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			reply, _ := NewResponder().Respond(tt.input, knowledgeBase(), nil)
			assert.Equal(t, IntentSearch, reply.Intent)
			if diff := cmp.Diff(tt.want, attachmentNames(reply)); diff != "" {
				t.Errorf("attachments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRespondSearchCounts(t *testing.T) {
	r := NewResponder()

	reply, _ := r.Respond("search drive", knowledgeBase(), nil)
	assert.Equal(t, `I found 2 files matching "drive":`, reply.Text)

	reply, _ = r.Respond("find unicorns", knowledgeBase(), nil)
	assert.Equal(t, `I couldn't find any files matching "unicorns".`, reply.Text)
	assert.Empty(t, reply.Attachments)

	reply, _ = r.Respond("find", knowledgeBase(), nil)
	assert.Equal(t, emptySearch, reply.Text)
	assert.Empty(t, reply.Attachments)
}

func TestRespondSearchBeatsTopics(t *testing.T) {
	reply, convo := NewResponder().Respond("find financial report", knowledgeBase(), nil)
	assert.Equal(t, IntentSearch, reply.Intent)
	assert.Equal(t, []string{"Q1 Financial Report.xlsx"}, attachmentNames(reply))
	assert.Empty(t, convo, "search never grows the context")
}

func TestRespondTopics(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"show me the financial numbers", "Q1 Financial Report.xlsx"},
		{"how did the campaign do?", "Marketing Campaign Assets.zip"},
		{"what happened in the meeting", "Team Meeting Notes.md"},
		{"any survey feedback?", "Customer Survey Results.pdf"},
		{"report and survey", "Q1 Financial Report.xlsx"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			reply, convo := NewResponder().Respond(tt.input, knowledgeBase(), nil)
			assert.Equal(t, IntentTopic, reply.Intent)
			assert.Equal(t, []string{tt.want}, attachmentNames(reply))
			require.Len(t, convo, 1)
			assert.Equal(t, tt.want, convo[0].Name)
		})
	}
}

func TestRespondTopicTemplate(t *testing.T) {
	reply, _ := NewResponder().Respond("financial", knowledgeBase(), nil)
	assert.Contains(t, reply.Text, "Google Drive")
	assert.Contains(t, reply.Text, `"Q1 Financial Report.xlsx"`)
	assert.Contains(t, reply.Text, "2 days ago")
}

func TestRespondTopicDoesNotDuplicateContext(t *testing.T) {
	r := NewResponder()
	kb := knowledgeBase()

	_, convo := r.Respond("meeting", kb, nil)
	_, convo = r.Respond("any notes?", kb, convo)
	require.Len(t, convo, 1)

	prev := convo
	_, convo = r.Respond("campaign", kb, convo)
	assert.Len(t, convo, 2)
	assert.Len(t, prev, 1, "input context is not modified")
}

func TestRespondSkipsTopicWithoutTarget(t *testing.T) {
	kb := []model.File{{ID: "9", Name: "Team Meeting Notes.md", Source: "Slack", LastModified: "Yesterday"}}
	reply, convo := NewResponder().Respond("financial meeting", kb, nil)
	assert.Equal(t, IntentTopic, reply.Intent)
	assert.Equal(t, []string{"Team Meeting Notes.md"}, attachmentNames(reply))
	assert.Len(t, convo, 1)

	reply, convo = NewResponder().Respond("financial", kb, nil)
	assert.Equal(t, IntentFallback, reply.Intent)
	assert.Empty(t, convo)
}

func TestRespondSummarize(t *testing.T) {
	r := NewResponder()
	kb := knowledgeBase()

	reply, _ := r.Respond("summarize it", kb, nil)
	assert.Equal(t, IntentFallback, reply.Intent, "summarize needs a context")

	_, convo := r.Respond("survey", kb, nil)
	reply, after := r.Respond("Please summarize.", kb, convo)
	assert.Equal(t, IntentSummarize, reply.Intent)
	assert.Contains(t, reply.Text, "satisfaction")
	assert.Empty(t, reply.Attachments)
	assert.Equal(t, convo, after)

	reply, _ = r.Respond("summarize", kb, Context{{Name: "Sales Presentation.pptx"}})
	assert.Equal(t, genericSummary, reply.Text)

	reply, _ = r.Respond("summarize", kb, Context{{Name: "Product Roadmap 2025.docx"}})
	assert.Contains(t, reply.Text, "three major releases")
}

func TestRespondFallback(t *testing.T) {
	reply, convo := NewResponder().Respond("hello there", knowledgeBase(), Context{})
	assert.Equal(t, IntentFallback, reply.Intent)
	assert.Equal(t, fallbackReply, reply.Text)
	assert.Empty(t, reply.Attachments)
	assert.Empty(t, convo)

	custom := NewResponder().WithFallback("Try again")
	reply, _ = custom.Respond("hello", nil, nil)
	assert.Equal(t, "Try again", reply.Text)
}

func TestWorkspaceTopics(t *testing.T) {
	files := []model.File{
		{ID: "2", Name: "Budget Forecast 2025.xlsx", Source: "Local", LastModified: "1 day ago"},
		{ID: "4", Name: "Marketing Strategy.pdf", Source: "Google Drive", LastModified: "5 hours ago"},
	}
	r := NewResponder(WorkspaceTopics()...)

	reply, _ := r.Respond("open the pdf", files, nil)
	assert.Equal(t, []string{"Marketing Strategy.pdf"}, attachmentNames(reply))
	assert.Contains(t, reply.Text, "30%")

	reply, _ = r.Respond("what's the forecast", files, nil)
	assert.Equal(t, []string{"Budget Forecast 2025.xlsx"}, attachmentNames(reply))

	reply, _ = r.Respond("meeting notes", files, nil)
	assert.Equal(t, IntentFallback, reply.Intent)
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "search", IntentSearch.String())
	assert.Equal(t, "fallback", Intent(42).String())
}
