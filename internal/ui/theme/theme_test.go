package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dori/weezy/internal/model"
)

func TestByName(t *testing.T) {
	for _, name := range Names() {
		th, ok := ByName(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, th.Name)
	}
	_, ok := ByName("solarized")
	assert.False(t, ok)
}

func TestNextWraps(t *testing.T) {
	assert.Equal(t, "dracula", Next("nord").Name)
	assert.Equal(t, "nord", Next("catppuccin").Name)
	assert.Equal(t, "nord", Next("unknown").Name)
}

func TestColorsAreDefined(t *testing.T) {
	for _, th := range Available() {
		for _, s := range model.Statuses {
			assert.NotEmpty(t, th.StatusColor(s), "%s %s", th.Name, s)
		}
		for _, p := range model.Priorities {
			assert.NotEmpty(t, th.PriorityColor(p), "%s %s", th.Name, p)
		}
		assert.Equal(t, th.SourceDrive, th.SourceColor(model.SourceGoogleDrive))
		assert.Equal(t, th.Subtle, th.SourceColor("Microsoft Teams"))
	}
}

func TestSetTheme(t *testing.T) {
	defer SetTheme(Nord)
	SetTheme(Gruvbox)
	assert.Equal(t, "gruvbox", Current.Theme.Name)
}
