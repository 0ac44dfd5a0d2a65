package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dori/weezy/internal/db"
	"github.com/dori/weezy/internal/model"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends keys in order and returns the final model with the last command
func press[M tea.Model](m M, keys ...string) (M, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(M)
	}
	return m, cmd
}

// typeText sends each rune of s as its own key press
func typeText[M tea.Model](m M, s string) M {
	for _, r := range s {
		next, _ := m.Update(keyMsg(string(r)))
		m = next.(M)
	}
	return m
}

// collect runs a command and flattens batches into their messages.
// Only use it on commands that do not sleep.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func find[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if t, ok := m.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

func fixedNow() time.Time {
	return time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC)
}

func knowledgeFiles() []model.File {
	return []model.File{
		{ID: "kb-1", Name: "Q1 Financial Report.xlsx", Kind: model.KindSpreadsheet, Size: "2.4 MB", Source: "Google Drive", LastModified: "2 days ago", Collection: model.CollectionKnowledge},
		{ID: "kb-2", Name: "Product Roadmap 2025.docx", Kind: model.KindDocument, Size: "1.8 MB", Source: "Notion", LastModified: "1 week ago", Collection: model.CollectionKnowledge},
		{ID: "kb-3", Name: "Marketing Campaign Assets.zip", Kind: model.KindArchive, Size: "15.7 MB", Source: "Dropbox", LastModified: "3 days ago", Collection: model.CollectionKnowledge},
		{ID: "kb-4", Name: "Team Meeting Notes.md", Kind: model.KindDocument, Size: "45 KB", Source: "Slack", LastModified: "Yesterday", Collection: model.CollectionKnowledge},
		{ID: "kb-5", Name: "Customer Survey Results.pdf", Kind: model.KindPDF, Size: "3.2 MB", Source: "Google Drive", LastModified: "5 days ago", Collection: model.CollectionKnowledge},
	}
}

func testCatalog() db.Catalog {
	return db.Catalog{
		Local: []model.File{
			{ID: "1", Name: "Project Proposal.docx", Kind: model.KindDocument, Size: "2.3 MB", Source: model.SourceLocal, LastModified: "2 hours ago", Collection: model.CollectionLocal},
			{ID: "2", Name: "Budget Forecast.xlsx", Kind: model.KindSpreadsheet, Size: "1.1 MB", Source: model.SourceLocal, LastModified: "1 day ago", Collection: model.CollectionLocal},
			{ID: "3", Name: "Meeting Notes.txt", Kind: model.KindDocument, Size: "12 KB", Source: model.SourceLocal, LastModified: "1 week ago", Collection: model.CollectionLocal},
		},
		Cloud: []model.File{
			{ID: "4", Name: "Marketing Strategy.pdf", Kind: model.KindPDF, Size: "4.5 MB", Source: model.SourceGoogleDrive, LastModified: "3 hours ago", Collection: model.CollectionCloud},
			{ID: "5", Name: "Annual Report.pptx", Kind: model.KindPresentation, Size: "8.2 MB", Source: model.SourceOneDrive, LastModified: "3 days ago", Collection: model.CollectionCloud},
		},
		Knowledge: knowledgeFiles(),
		Popular: []model.File{
			{ID: "top-1", Name: "Q1 Financial Report.xlsx", Source: model.SourceGoogleDrive, AccessCount: 42, LastModified: "2 hours ago", Collection: model.CollectionPopular},
			{ID: "top-2", Name: "Product Roadmap 2025.docx", Source: model.SourceNotion, AccessCount: 38, LastModified: "5 hours ago", Collection: model.CollectionPopular},
			{ID: "top-3", Name: "Marketing Campaign Assets.zip", Source: model.SourceDropbox, AccessCount: 35, LastModified: "1 day ago", Collection: model.CollectionPopular},
			{ID: "top-4", Name: "Team Meeting Notes.md", Source: model.SourceSlack, AccessCount: 29, LastModified: "2 days ago", Collection: model.CollectionPopular},
			{ID: "top-5", Name: "Customer Survey Results.pdf", Source: model.SourceGoogleDrive, AccessCount: 24, LastModified: "3 days ago", Collection: model.CollectionPopular},
		},
		Tasks: testTasks(),
		Users: testUsers(),
		SuggestedLabels: model.NewLabels("Marketing", "Design", "Finance"),
		Integrations: []model.Integration{
			{ID: "slack", Name: "Slack", Connected: true, Files: 256, Chats: 48, UsedGB: 1.2},
			{ID: "drive", Name: "Google Drive", Connected: true, Files: 512, UsedGB: 3.5},
			{ID: "dropbox", Name: "Dropbox", Connected: false, UsedGB: 0.8},
		},
		Members: []model.Member{
			{ID: "m1", Name: "John Smith", Email: "john.smith@company.com", Role: "Admin", LastActive: "Just now"},
			{ID: "m2", Name: "Emma Davis", Email: "emma.davis@company.com", Role: "Member", LastActive: "2 hours ago"},
		},
		Storage: model.StorageSummary{UsedGB: 7.5, TotalGB: 20},
		FileTypes: []model.FileTypeUsage{
			{Name: "Documents", Count: 450, SizeGB: 2.5},
			{Name: "Images", Count: 320, SizeGB: 3.2},
		},
		WeeklyActivity: []model.DailyActivity{
			{Day: "Mon", Files: 12}, {Day: "Tue", Files: 19}, {Day: "Wed", Files: 8},
		},
		RecentActivity: []model.Activity{
			{Actor: "Emma Davis", Action: "edited", Target: "Budget Forecast.xlsx", When: "1 day ago", Platform: "Google Drive"},
			{Actor: "John Smith", Action: "uploaded", Target: "Q1 Financial Report.xlsx", When: "2 hours ago", Platform: "Google Drive"},
		},
	}
}

func testUsers() []model.Person {
	return []model.Person{
		{Name: "Jane Smith", Role: "Marketing Manager"},
		{Name: "Alex Johnson", Role: "UX Designer"},
		{Name: "Mike Chen", Role: "Finance Director"},
	}
}

func testTasks() []model.Task {
	return []model.Task{
		{
			ID: "1", Title: "Complete Q2 Marketing Strategy Document", DueDate: "2025-07-15",
			Priority: model.PriorityHigh, Status: model.StatusInProgress, Progress: 65,
			AssignedTo: testUsers()[0], Private: true, Labels: model.NewLabels("Marketing", "Strategy"),
		},
		{
			ID: "2", Title: "Review Website Redesign Mockups", DueDate: "2025-06-30",
			Priority: model.PriorityMedium, Status: model.StatusTodo, Progress: 0,
			AssignedTo: testUsers()[1], Labels: model.NewLabels("Design"),
		},
		{
			ID: "3", Title: "Prepare Financial Reports for Board Meeting", DueDate: "2025-07-05",
			Priority: model.PriorityHigh, Status: model.StatusReview, Progress: 90,
			AssignedTo: testUsers()[2], Labels: model.NewLabels("Finance"),
		},
	}
}
