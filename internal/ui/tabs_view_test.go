package ui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabview/internal/tabs"
)

func newTestTabsView(t *testing.T, m *tabs.TabMap) *TabsView {
	t.Helper()
	zones := zone.New()
	t.Cleanup(zones.Close)
	return NewTabsView(tabs.NewState(m), zones, log.New(io.Discard))
}

func TestTabsView_TruncatesLongLabels(t *testing.T) {
	long := strings.Repeat("x", 40)
	v := newTestTabsView(t, tabs.MustNew(tabs.Group{Key: long, SubTabs: []string{"a"}}))
	v.MaxLabelWidth = 10

	out := v.zones.Scan(v.View())
	assert.Contains(t, out, strings.Repeat("x", 9)+"…")
	// The panel echoes the full key; only the button is capped.
	assert.Contains(t, out, "Main Tab: "+long)

	// Pressing still uses the real label.
	v.Update(SelectIndexMsg{Index: 0})
	assert.Equal(t, long, v.State.Selection().Main)
}

func TestTabsView_FocusMarkerFollowsRow(t *testing.T) {
	v := newTestTabsView(t, tabs.Default())

	lines := strings.Split(v.zones.Scan(v.View()), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.True(t, strings.HasPrefix(lines[0], "▸"))
	assert.False(t, strings.HasPrefix(lines[1], "▸"))

	v.Update(CycleFocusMsg{})
	lines = strings.Split(v.zones.Scan(v.View()), "\n")
	assert.False(t, strings.HasPrefix(lines[0], "▸"))
	assert.True(t, strings.HasPrefix(lines[1], "▸"))
}

func TestTabsView_MoveOnSubRowWraps(t *testing.T) {
	v := newTestTabsView(t, tabs.Default())
	v.Update(FocusRowMsg{Row: tabs.LevelSub})
	v.Update(MoveMsg{Delta: -1})
	assert.Equal(t, tabs.Selection{Main: "tab1", Sub: "tab1.2"}, v.State.Selection())
}
