package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceStyle(t *testing.T) {
	assert.Equal(t, "drive", SourceStyle("Google Drive"))
	assert.Equal(t, "onedrive", SourceStyle("OneDrive"))
	assert.Equal(t, "default", SourceStyle("Box"))
}

func TestParseSender(t *testing.T) {
	s, ok := ParseSender("bot")
	assert.True(t, ok)
	assert.Equal(t, SenderAssistant, s)

	_, ok = ParseSender("system")
	assert.False(t, ok)
}

func TestFilePatchApply(t *testing.T) {
	f := File{ID: "1", Name: "Project Roadmap.docx", Source: SourceLocal, LastModified: "2 hours ago"}
	name := "Roadmap v2.docx"
	got := FilePatch{Name: &name}.Apply(f)
	assert.Equal(t, "Roadmap v2.docx", got.Name)
	assert.Equal(t, "Project Roadmap.docx", f.Name)
	assert.Equal(t, SourceLocal, got.Source)
}

func TestStoragePercent(t *testing.T) {
	assert.InDelta(t, 37.5, StorageSummary{UsedGB: 7.5, TotalGB: 20}.PercentUsed(), 0.001)
	assert.Zero(t, StorageSummary{UsedGB: 1}.PercentUsed())
}
