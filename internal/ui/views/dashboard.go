package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/dori/weezy/internal/db"
	"github.com/dori/weezy/internal/model"
	"github.com/dori/weezy/internal/query"
	"github.com/dori/weezy/internal/ui/theme"
)

// DashboardTab selects the lower half of the dashboard
type DashboardTab int

const (
	TabOverview DashboardTab = iota
	TabActivity
)

// DashboardView shows workspace totals, integrations and recent activity
type DashboardView struct {
	width  int
	height int

	integrations []model.Integration
	activity     []model.Activity
	files        []model.File
	members      int
	storage      model.StorageSummary

	tab    DashboardTab
	cursor int
}

// NewDashboardView creates a dashboard over the loaded catalog
func NewDashboardView(c db.Catalog) DashboardView {
	return DashboardView{
		integrations: c.Integrations,
		activity:     query.SortByRecency(c.RecentActivity),
		files:        c.WorkspaceFiles(),
		members:      len(c.Members),
		storage:      c.Storage,
	}
}

// Init initializes the dashboard view
func (v DashboardView) Init() tea.Cmd {
	return nil
}

// SetSize sets the view dimensions
func (v DashboardView) SetSize(width, height int) DashboardView {
	v.width = width
	v.height = height
	return v
}

// SetIntegrations replaces the integration list after a settings change
func (v DashboardView) SetIntegrations(list []model.Integration) DashboardView {
	v.integrations = list
	return v
}

// SetMembers updates the team size card
func (v DashboardView) SetMembers(n int) DashboardView {
	v.members = n
	return v
}

// SetFiles replaces the workspace files used for the recent list
func (v DashboardView) SetFiles(files []model.File) DashboardView {
	v.files = files
	return v
}

// Tab returns the selected tab
func (v DashboardView) Tab() DashboardTab { return v.tab }

// Connected counts the connected integrations
func (v DashboardView) Connected() int {
	n := 0
	for _, i := range v.integrations {
		if i.Connected {
			n++
		}
	}
	return n
}

// IndexedFiles sums files indexed across connected integrations
func (v DashboardView) IndexedFiles() int {
	total := 0
	for _, i := range v.integrations {
		if i.Connected {
			total += i.Files
		}
	}
	return total
}

// Update handles messages
func (v DashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch keyMsg.String() {
	case "tab", "l", "right":
		v.tab = (v.tab + 1) % 2
		v.cursor = 0
	case "shift+tab", "h", "left":
		v.tab = (v.tab + 1) % 2
		v.cursor = 0
	case "j", "down":
		if v.cursor < v.rows()-1 {
			v.cursor++
		}
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}
	}
	return v, nil
}

func (v DashboardView) rows() int {
	if v.tab == TabActivity {
		return len(v.activity)
	}
	return len(v.integrations)
}

// View renders the dashboard
func (v DashboardView) View() string {
	if v.width == 0 || v.height == 0 {
		return "Loading..."
	}
	styles := theme.Current.Styles

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		v.card("Indexed Files", humanize.Comma(int64(v.IndexedFiles()))),
		v.card("Connected Platforms", fmt.Sprintf("%d / %d", v.Connected(), len(v.integrations))),
		v.card("Storage Used", fmt.Sprintf("%.1f / %.0f GB", v.storage.UsedGB, v.storage.TotalGB)),
		v.card("Team Members", humanize.Comma(int64(v.members))),
	)

	var body string
	if v.tab == TabActivity {
		body = v.renderActivity()
	} else {
		body = v.renderIntegrations()
	}

	recent := styles.PanelTitle.Render("Recent Files") + "\n"
	for _, f := range query.Latest(v.files, 4) {
		recent += fmt.Sprintf("  %s %s  %s  %s\n",
			kindIcon(f.Kind),
			truncate(f.Name, 32),
			sourceBadge(f.Source),
			styles.Label.Render(f.LastModified))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		cards,
		"",
		tabs([]string{"Overview", "Activity"}, int(v.tab)),
		"",
		body,
		"",
		recent,
	)
}

func (v DashboardView) card(title, value string) string {
	t := theme.Current.Theme
	w := (v.width - 8) / 4
	if w < 18 {
		w = 18
	}
	style := lipgloss.NewStyle().
		Width(w).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	return style.Render(
		lipgloss.NewStyle().Foreground(t.Subtle).Render(title) + "\n" +
			lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render(value))
}

func (v DashboardView) renderIntegrations() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme
	var b strings.Builder
	for i, in := range v.integrations {
		state := lipgloss.NewStyle().Foreground(t.Subtle).Render("○ disconnected")
		if in.Connected {
			state = lipgloss.NewStyle().Foreground(t.Success).Render("● connected")
		}
		line := fmt.Sprintf("%-18s %-16s %6s files  %4s chats",
			in.Name, state, humanize.Comma(int64(in.Files)), humanize.Comma(int64(in.Chats)))
		if i == v.cursor {
			b.WriteString(styles.ItemSelected.Render(line))
		} else {
			b.WriteString(styles.ItemNormal.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (v DashboardView) renderActivity() string {
	styles := theme.Current.Styles
	if len(v.activity) == 0 {
		return styles.Label.Render("  No recent activity")
	}
	var b strings.Builder
	for i, a := range v.activity {
		line := fmt.Sprintf("%s %s %s  %s  %s",
			a.Actor, a.Action, a.Target, sourceBadge(a.Platform), styles.Label.Render(a.When))
		if i == v.cursor {
			b.WriteString(styles.ItemSelected.Render(line))
		} else {
			b.WriteString(styles.ItemNormal.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// IsInputMode returns true when the view is capturing text
func (v DashboardView) IsInputMode() bool {
	return false
}
