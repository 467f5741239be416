package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabview/internal/tabs"
)

func newTestApp(t *testing.T) (*AppModel, tea.Model) {
	t.Helper()
	m := tabs.MustNew(
		tabs.Group{Key: "tab1", SubTabs: []string{"tab1.1", "tab1.2"}},
		tabs.Group{Key: "tab2", SubTabs: []string{"tab2.1", "tab2.2"}},
	)
	app := NewAppModel(tabs.NewState(m), nil)
	t.Cleanup(app.Close)
	return app, app.AsTeaModel()
}

// send feeds msgs to m, running any returned commands until they yield nil or
// a quit.
func send(m tea.Model, msgs ...tea.Msg) (tea.Model, bool) {
	for _, msg := range msgs {
		next, cmd := m.Update(msg)
		m = next
		for cmd != nil {
			out := cmd()
			if out == nil {
				break
			}
			if _, quit := out.(tea.QuitMsg); quit {
				return m, true
			}
			next, cmd = m.Update(out)
			m = next
		}
	}
	return m, false
}

func selection(app *AppModel) tabs.Selection {
	return app.Tabs.State.Selection()
}

func TestApp_InitialRender(t *testing.T) {
	app, model := newTestApp(t)
	out := model.View()
	assert.Contains(t, out, "Selected Tab:")
	assert.Contains(t, out, "Main Tab: tab1")
	assert.Contains(t, out, "Sub Tab: tab1.1")
	for _, label := range []string{"tab1", "tab2", "tab1.1", "tab1.2"} {
		assert.Contains(t, out, label)
	}
	assert.NotContains(t, out, "tab2.1", "sub-tabs of inactive main tabs are not rendered")
	assert.Equal(t, tabs.Selection{Main: "tab1", Sub: "tab1.1"}, selection(app))
}

func TestApp_ScenarioViaPressMsgs(t *testing.T) {
	app, model := newTestApp(t)

	model, _ = send(model, PressMsg{Button: tabs.Button{Level: tabs.LevelMain, Label: "tab2"}})
	assert.Contains(t, model.View(), "Main Tab: tab2")
	assert.Contains(t, model.View(), "Sub Tab: tab2.1")

	model, _ = send(model, PressMsg{Button: tabs.Button{Level: tabs.LevelSub, Label: "tab2.2"}})
	assert.Equal(t, tabs.Selection{Main: "tab2", Sub: "tab2.2"}, selection(app))

	model, _ = send(model, PressMsg{Button: tabs.Button{Level: tabs.LevelMain, Label: "tab1"}})
	assert.Equal(t, tabs.Selection{Main: "tab1", Sub: "tab1.1"}, selection(app))
	assert.Contains(t, model.View(), "Sub Tab: tab1.1")
}

func TestApp_StalePressIsIgnored(t *testing.T) {
	app, model := newTestApp(t)
	send(model, PressMsg{Button: tabs.Button{Level: tabs.LevelSub, Label: "tab2.2"}})
	assert.Equal(t, tabs.Selection{Main: "tab1", Sub: "tab1.1"}, selection(app))
}

func TestApp_KeyboardNavigation(t *testing.T) {
	app, model := newTestApp(t)

	model, _ = send(model, keyMsg("l"))
	assert.Equal(t, tabs.Selection{Main: "tab2", Sub: "tab2.1"}, selection(app))

	model, _ = send(model, keyMsg("tab"), keyMsg("right"))
	assert.Equal(t, tabs.Selection{Main: "tab2", Sub: "tab2.2"}, selection(app))
	assert.Equal(t, tabs.LevelSub, app.Tabs.Focus.Current)

	model, _ = send(model, keyMsg("shift+tab"), keyMsg("left"))
	assert.Equal(t, tabs.Selection{Main: "tab1", Sub: "tab1.1"}, selection(app))

	model, _ = send(model, keyMsg("2"))
	assert.Equal(t, "tab2", selection(app).Main)

	// Out-of-range digit leaves the selection alone.
	send(model, keyMsg("9"))
	assert.Equal(t, tabs.Selection{Main: "tab2", Sub: "tab2.1"}, selection(app))
}

func TestApp_LeaderFocusSequence(t *testing.T) {
	app, model := newTestApp(t)

	model, _ = send(model, keyMsg(" "))
	assert.Contains(t, model.View(), "Focus", "leader help bar lists submenu")

	model, _ = send(model, keyMsg("f"), keyMsg("s"))
	assert.Equal(t, tabs.LevelSub, app.Tabs.Focus.Current)
	assert.False(t, app.KeyHandler.LeaderWaiting)

	send(model, keyMsg("2"))
	assert.Equal(t, tabs.Selection{Main: "tab1", Sub: "tab1.2"}, selection(app))
}

func TestApp_HelpOverlay(t *testing.T) {
	app, model := newTestApp(t)

	model, _ = send(model, keyMsg("?"))
	require.Equal(t, ModeHelp, app.Mode)
	out := model.View()
	assert.Contains(t, out, "Keys")
	assert.Contains(t, out, "Next tab")

	// Tab movement is disabled while help is open.
	model, _ = send(model, keyMsg("l"))
	assert.Equal(t, "tab1", selection(app).Main)

	model, _ = send(model, keyMsg("esc"))
	assert.Equal(t, ModeTabs, app.Mode)
	assert.Equal(t, 0, app.Overlays.Len())
	assert.Contains(t, model.View(), "Main Tab: tab1")
}

func TestApp_Quit(t *testing.T) {
	_, model := newTestApp(t)
	_, quit := send(model, keyMsg("q"))
	assert.True(t, quit)
}

func TestApp_MouseClickSelectsTab(t *testing.T) {
	app, model := newTestApp(t)
	model, _ = send(model, tea.WindowSizeMsg{Width: 80, Height: 24})
	_ = model.View()

	// Zone positions are recorded by bubblezone's worker after Scan.
	target := tabs.Button{Level: tabs.LevelMain, Index: 1, Label: "tab2"}
	id := zoneID(app.Tabs.prefix, target)
	require.Eventually(t, func() bool {
		z := app.Zones.Get(id)
		return z != nil && !z.IsZero()
	}, time.Second, 5*time.Millisecond)

	z := app.Zones.Get(id)
	click := tea.MouseMsg{X: z.StartX, Y: z.StartY, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}

	// A press without release does nothing.
	press := click
	press.Action = tea.MouseActionPress
	send(model, press)
	assert.Equal(t, "tab1", selection(app).Main)

	model, _ = send(model, click)
	assert.Equal(t, tabs.Selection{Main: "tab2", Sub: "tab2.1"}, selection(app))
	assert.Contains(t, model.View(), "Main Tab: tab2")
}

func TestAppModel_Snapshot(t *testing.T) {
	app, _ := newTestApp(t)
	require.NoError(t, app.Tabs.State.SelectMain("tab2"))
	out := app.Snapshot()
	assert.Contains(t, out, "Main Tab: tab2")
	assert.False(t, strings.HasSuffix(out, "\n"))
}
