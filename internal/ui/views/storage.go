package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/dori/weezy/internal/db"
	"github.com/dori/weezy/internal/model"
	"github.com/dori/weezy/internal/query"
	"github.com/dori/weezy/internal/ui/theme"
)

// StorageTab selects the storage page
type StorageTab int

const (
	StorageOverview StorageTab = iota
	StorageFiles
)

// StorageView shows quota usage, per-platform usage and the most used files
type StorageView struct {
	width  int
	height int

	storage      model.StorageSummary
	integrations []model.Integration
	fileTypes    []model.FileTypeUsage
	weekly       []model.DailyActivity
	popular      []model.File

	tab       StorageTab
	sources   []string
	sourceIdx int
	sortDir   query.Direction

	table table.Model
	quota progress.Model
}

// NewStorageView creates the storage view over the loaded catalog
func NewStorageView(c db.Catalog) StorageView {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 3},
			{Title: "File", Width: 32},
			{Title: "Source", Width: 14},
			{Title: "Accesses", Width: 9},
			{Title: "Modified", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(8),
	)

	sources := []string{query.All}
	seen := make(map[string]bool)
	for _, f := range c.Popular {
		if !seen[f.Source] {
			seen[f.Source] = true
			sources = append(sources, f.Source)
		}
	}

	v := StorageView{
		storage:      c.Storage,
		integrations: c.Integrations,
		fileTypes:    c.FileTypes,
		weekly:       c.WeeklyActivity,
		popular:      c.Popular,
		sources:      sources,
		sortDir:      query.Descending,
		table:        t,
		quota:        progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
	v.rebuildTable()
	return v
}

// Init initializes the storage view
func (v StorageView) Init() tea.Cmd {
	return nil
}

// SetSize sets the view dimensions
func (v StorageView) SetSize(width, height int) StorageView {
	v.width = width
	v.height = height
	v.quota.Width = max(min(width-30, 60), 10)
	v.table.SetWidth(width - 4)
	v.table.SetHeight(max(height-6, 3))
	return v
}

// SetIntegrations replaces the integration list after a settings change
func (v StorageView) SetIntegrations(list []model.Integration) StorageView {
	v.integrations = list
	return v
}

// MostUsed returns the most used files for the current source filter, ranked by access count
func (v StorageView) MostUsed() []model.File {
	items := query.Filter(v.popular, query.Options{Source: v.sources[v.sourceIdx]})
	sorted, err := query.SortByField(items, "accessCount", v.sortDir)
	if err != nil {
		return items
	}
	return sorted
}

func (v *StorageView) rebuildTable() {
	var rows []table.Row
	for i, f := range v.MostUsed() {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			f.Name,
			f.Source,
			humanize.Comma(int64(f.AccessCount)),
			f.LastModified,
		})
	}
	v.table.SetRows(rows)
	v.table.SetCursor(0)
}

// Update handles messages
func (v StorageView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch keyMsg.String() {
	case "tab":
		v.tab = (v.tab + 1) % 2
		return v, nil
	case "f":
		v.sourceIdx = (v.sourceIdx + 1) % len(v.sources)
		v.rebuildTable()
		return v, nil
	case "o":
		if v.sortDir == query.Descending {
			v.sortDir = query.Ascending
		} else {
			v.sortDir = query.Descending
		}
		v.rebuildTable()
		return v, nil
	}

	if v.tab == StorageFiles {
		var cmd tea.Cmd
		v.table, cmd = v.table.Update(msg)
		return v, cmd
	}
	return v, nil
}

// View renders the storage view
func (v StorageView) View() string {
	if v.width == 0 || v.height == 0 {
		return "Loading..."
	}
	header := tabs([]string{"Overview", "Most Used Files"}, int(v.tab))
	if v.tab == StorageFiles {
		styles := theme.Current.Styles
		info := styles.Label.Render(fmt.Sprintf("  source: %s  order: %s", v.sources[v.sourceIdx], v.sortDir))
		return lipgloss.JoinVertical(lipgloss.Left, header+info, "", v.table.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", v.renderOverview())
}

func (v StorageView) renderOverview() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme
	barWidth := max(min(v.width/3, 30), 10)

	var b strings.Builder
	b.WriteString(styles.PanelTitle.Render("Storage"))
	b.WriteString("\n")
	b.WriteString(v.quota.ViewAs(v.storage.PercentUsed() / 100))
	b.WriteString(styles.Label.Render(fmt.Sprintf("  %.1f GB of %.0f GB used (%.1f%%)",
		v.storage.UsedGB, v.storage.TotalGB, v.storage.PercentUsed())))
	b.WriteString("\n\n")

	var platforms strings.Builder
	platforms.WriteString(styles.PanelTitle.Render("By Platform") + "\n")
	maxUsed := 0.0
	for _, in := range v.integrations {
		maxUsed = max(maxUsed, in.UsedGB)
	}
	for _, in := range v.integrations {
		ratio := 0.0
		if maxUsed > 0 {
			ratio = in.UsedGB / maxUsed
		}
		platforms.WriteString(fmt.Sprintf("%-18s %s %4.1f GB\n",
			in.Name, bar(ratio, barWidth, t.SourceColor(in.Name)), in.UsedGB))
	}

	var types strings.Builder
	types.WriteString(styles.PanelTitle.Render("By File Type") + "\n")
	totalSize := 0.0
	for _, ft := range v.fileTypes {
		totalSize += ft.SizeGB
	}
	for _, ft := range v.fileTypes {
		ratio := 0.0
		if totalSize > 0 {
			ratio = ft.SizeGB / totalSize
		}
		types.WriteString(fmt.Sprintf("%-14s %s %4.1f GB  %s files\n",
			ft.Name, bar(ratio, barWidth, t.Secondary), ft.SizeGB, humanize.Comma(int64(ft.Count))))
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		platforms.String(), "    ", types.String()))
	b.WriteString("\n")
	b.WriteString(styles.PanelTitle.Render("Weekly Activity"))
	b.WriteString("\n")
	b.WriteString(v.renderWeekly(barWidth))
	return b.String()
}

func (v StorageView) renderWeekly(width int) string {
	t := theme.Current.Theme
	peak := 0
	for _, d := range v.weekly {
		peak = max(peak, d.Files)
	}
	var b strings.Builder
	for _, d := range v.weekly {
		ratio := 0.0
		if peak > 0 {
			ratio = float64(d.Files) / float64(peak)
		}
		b.WriteString(fmt.Sprintf("%-4s %s %d\n", d.Day, bar(ratio, width, t.Info), d.Files))
	}
	return b.String()
}

// IsInputMode returns true when the view is capturing text
func (v StorageView) IsInputMode() bool {
	return false
}
