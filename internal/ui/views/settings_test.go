package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSettings() SettingsView {
	cat := testCatalog()
	return NewSettingsView("My Workspace", true, cat.Integrations, cat.Members).SetSize(120, 30)
}

func TestSettingsToggleIntegration(t *testing.T) {
	v, _ := press(newTestSettings(), "tab", "j", "j")
	require.Equal(t, SectionIntegrations, v.section)

	v, cmd := press(v, "enter")
	assert.True(t, v.Integrations()[2].Connected)

	msgs := collect(cmd)
	changed, ok := find[IntegrationsChangedMsg](msgs)
	require.True(t, ok)
	assert.True(t, changed.Integrations[2].Connected)
	toastMsg, ok := find[ToastMsg](msgs)
	require.True(t, ok)
	assert.Equal(t, "Integration Updated", toastMsg.Title)
	assert.Equal(t, "Dropbox connected", toastMsg.Body)

	v, _ = press(v, " ")
	assert.False(t, v.Integrations()[2].Connected)
}

func TestSettingsInvite(t *testing.T) {
	v, _ := press(newTestSettings(), "i")
	require.True(t, v.IsInputMode())
	v = typeText(v, "jane.doe@company.com")
	v, cmd := press(v, "enter")

	assert.False(t, v.IsInputMode())
	members := v.Members()
	require.Len(t, members, 3)
	added := members[2]
	assert.Equal(t, "Jane Doe", added.Name)
	assert.Equal(t, "Member", added.Role)
	assert.Equal(t, "Invited", added.LastActive)
	assert.NotEmpty(t, added.ID)

	invited, ok := find[MemberInvitedMsg](collect(cmd))
	require.True(t, ok)
	assert.Equal(t, "jane.doe@company.com", invited.Email)
}

func TestSettingsInviteRejectsBadAddress(t *testing.T) {
	v, _ := press(newTestSettings(), "i")
	v = typeText(v, "not-an-address")
	v, cmd := press(v, "enter")

	assert.True(t, v.IsInputMode(), "the invite prompt stays open")
	assert.Len(t, v.Members(), 2)
	toastMsg, ok := find[ToastMsg](collect(cmd))
	require.True(t, ok)
	assert.Equal(t, "Invitation not sent", toastMsg.Title)
}

func TestSettingsRemoveMember(t *testing.T) {
	v, _ := press(newTestSettings(), "tab", "tab", "j", "x")
	require.Equal(t, SettingsModeConfirmRemove, v.mode)

	v, _ = press(v, "n")
	assert.Len(t, v.Members(), 2)

	v, cmd := press(v, "x", "y")
	require.Len(t, v.Members(), 1)
	assert.Equal(t, "John Smith", v.Members()[0].Name)
	assert.Equal(t, 0, v.cursor)
	toastMsg, ok := find[ToastMsg](collect(cmd))
	require.True(t, ok)
	assert.Equal(t, "Member Removed", toastMsg.Title)
}

func TestSettingsRename(t *testing.T) {
	v, _ := press(newTestSettings(), "r")
	for range len("My Workspace") {
		v, _ = press(v, "backspace")
	}
	v = typeText(v, "Ops")
	v, cmd := press(v, "enter")

	assert.Equal(t, "Ops", v.Name())
	renamed, ok := find[WorkspaceRenamedMsg](collect(cmd))
	require.True(t, ok)
	assert.Equal(t, "Ops", renamed.Name)
}

func TestSettingsNotifications(t *testing.T) {
	v, cmd := press(newTestSettings(), "n")
	assert.False(t, v.Notifications())
	toggled, ok := find[NotificationsToggledMsg](collect(cmd))
	require.True(t, ok)
	assert.False(t, toggled.Enabled)

	v, _ = press(v, "j", "enter")
	assert.True(t, v.Notifications())
}

func TestNameFromEmail(t *testing.T) {
	assert.Equal(t, "Jane Doe", nameFromEmail("jane.doe@x.com"))
	assert.Equal(t, "Sam", nameFromEmail("sam@x.com"))
	assert.Equal(t, "Lee Park Jr", nameFromEmail("lee_park-jr@x.com"))
}
