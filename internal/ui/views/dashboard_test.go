package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDashboardCounts(t *testing.T) {
	v := NewDashboardView(testCatalog())
	assert.Equal(t, 2, v.Connected())
	assert.Equal(t, 768, v.IndexedFiles(), "disconnected integrations are not counted")

	list := testCatalog().Integrations
	list[2].Connected = true
	list[2].Files = 32
	v = v.SetIntegrations(list)
	assert.Equal(t, 3, v.Connected())
	assert.Equal(t, 800, v.IndexedFiles())
}

func TestDashboardActivityIsMostRecentFirst(t *testing.T) {
	v := NewDashboardView(testCatalog())
	assert.Equal(t, "John Smith", v.activity[0].Actor)
}

func TestDashboardTabs(t *testing.T) {
	v, _ := press(NewDashboardView(testCatalog()), "tab")
	assert.Equal(t, TabActivity, v.Tab())

	v, _ = press(v, "j", "j", "j")
	assert.Equal(t, 1, v.cursor, "cursor stops at the last row")

	v, _ = press(v, "h")
	assert.Equal(t, TabOverview, v.Tab())
	assert.Equal(t, 0, v.cursor)
}

func TestDashboardRenders(t *testing.T) {
	v := NewDashboardView(testCatalog()).SetMembers(5).SetSize(140, 40)
	out := v.View()
	assert.Contains(t, out, "768")
	assert.Contains(t, out, "Slack")
}
