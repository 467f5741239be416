package ui

import (
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	zone "github.com/lrstanley/bubblezone"

	"tabview/internal/tabs"
	"tabview/internal/ui/textutil"
)

// DefaultMaxLabelWidth is the label cap used by NewTabsView.
const DefaultMaxLabelWidth = 24

// TabsView draws the main-tab row, the sub-tab row and the content panel for
// a tabs.State, and applies clicks and keys to it.
type TabsView struct {
	State  *tabs.State
	Focus  *FocusManager
	Logger *log.Logger

	// MaxLabelWidth caps button label width in columns; 0 disables the cap.
	MaxLabelWidth int

	zones  *zone.Manager
	prefix string
	width  int
}

// Ensure TabsView implements View.
var _ View = (*TabsView)(nil)

// NewTabsView creates a view over state. Buttons are marked in zones so mouse
// clicks can be hit-tested after the root view is scanned.
func NewTabsView(state *tabs.State, zones *zone.Manager, logger *log.Logger) *TabsView {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	v := &TabsView{
		State:  state,
		Focus:  NewFocusManager(),
		Logger: logger,
		zones:  zones,
		prefix: zones.NewPrefix(),

		MaxLabelWidth: DefaultMaxLabelWidth,
	}
	v.Focus.OnChange = func(from, to tabs.Level) {
		v.Logger.Debug("focus changed", "from", from, "to", to)
	}
	return v
}

// Init implements View.
func (v *TabsView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *TabsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return v, nil
		}
		if b, ok := v.hit(msg); ok {
			v.Focus.SetFocus(b.Level)
			v.press(b)
		}
	case PressMsg:
		v.press(msg.Button)
	case MoveMsg:
		v.move(msg.Delta)
	case SelectIndexMsg:
		row := v.State.Frame().Row(v.Focus.Current)
		if msg.Index >= 0 && msg.Index < len(row) {
			v.press(row[msg.Index])
		}
	case CycleFocusMsg:
		if msg.Reverse {
			v.Focus.Prev()
		} else {
			v.Focus.Next()
		}
	case FocusRowMsg:
		v.Focus.SetFocus(msg.Row)
	}
	return v, nil
}

// View implements View. The output carries zone markers; the root model
// strips them with zone.Manager.Scan.
func (v *TabsView) View() string {
	f := v.State.Frame()

	var b strings.Builder
	b.WriteString(v.renderRow(f.Main, tabs.LevelMain) + "\n")
	b.WriteString(v.renderRow(f.Sub, tabs.LevelSub) + "\n")
	b.WriteString(renderContent(f.Content, v.width) + "\n")
	b.WriteString(Styles.Hint.Render("click a tab · ←/→ move · tab switch row · ? help · q quit"))
	return b.String()
}

func (v *TabsView) renderRow(buttons []tabs.Button, level tabs.Level) string {
	marker := "  "
	if v.Focus.Current == level {
		marker = Styles.Focus.Render("▸ ")
	}
	cells := make([]string, 0, 2*len(buttons)+1)
	cells = append(cells, marker)
	for i, btn := range buttons {
		if i > 0 {
			cells = append(cells, " ")
		}
		rendered := buttonStyle(btn.Active, level == tabs.LevelSub).Render(textutil.Truncate(btn.Label, v.MaxLabelWidth))
		cells = append(cells, v.zones.Mark(zoneID(v.prefix, btn), rendered))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func renderContent(c tabs.Content, width int) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		Styles.Heading.Render("Selected Tab:"),
		"Main Tab: "+Styles.Value.Render(c.Main),
		"Sub Tab: "+Styles.Value.Render(c.Sub),
	)
	panel := Styles.Panel
	if width > 0 {
		panel = panel.Width(width - panel.GetHorizontalBorderSize())
	}
	return panel.Render(body)
}

// hit returns the button whose zone contains the mouse event.
func (v *TabsView) hit(msg tea.MouseMsg) (tabs.Button, bool) {
	f := v.State.Frame()
	for _, b := range append(f.Main, f.Sub...) {
		if z := v.zones.Get(zoneID(v.prefix, b)); z != nil && z.InBounds(msg) {
			return b, true
		}
	}
	return tabs.Button{}, false
}

func (v *TabsView) press(b tabs.Button) {
	if err := b.Press(v.State); err != nil {
		// Buttons come from the current frame, so this only fires for stale
		// PressMsgs built by callers.
		v.Logger.Warn("tab press ignored", "level", b.Level, "label", b.Label, "err", err)
	}
}

func (v *TabsView) move(delta int) {
	switch {
	case v.Focus.Current == tabs.LevelMain && delta > 0:
		v.State.NextMain()
	case v.Focus.Current == tabs.LevelMain && delta < 0:
		v.State.PrevMain()
	case delta > 0:
		v.State.NextSub()
	case delta < 0:
		v.State.PrevSub()
	}
}
