package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	zone "github.com/lrstanley/bubblezone"

	"tabview/internal/tabs"
)

// AppModel is the root model: the tab widget, the key help overlay and the
// keybind system.
type AppModel struct {
	Mode       AppMode
	Tabs       *TabsView
	Overlays   *OverlayStack
	KeyHandler *KeyHandler
	Zones      *zone.Manager
	Logger     *log.Logger

	size tea.WindowSizeMsg
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Tabs.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.size = msg
		a.Overlays.UpdateTop(msg)
		a.Tabs.Update(msg)
		return a, nil
	case ToggleHelpMsg:
		if a.Mode == ModeHelp {
			a.closeHelp()
		} else {
			a.openHelp()
		}
		return a, nil
	case tea.KeyMsg:
		if top, ok := a.Overlays.Peek(); ok && top.IsDismissKey(msg.String()) && !a.KeyHandler.LeaderWaiting {
			a.closeHelp()
			return a, nil
		}
		if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
			return a, keyCmd
		}
	}

	if a.Mode == ModeHelp {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}
	v, cmd := a.Tabs.Update(msg)
	if t, ok := v.(*TabsView); ok {
		a.Tabs = t
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var base string
	if top, ok := a.Overlays.Peek(); ok {
		base = top.View.View()
	} else {
		base = a.Tabs.View()
	}
	if a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler)
	}
	return a.Zones.Scan(base)
}

func (a *AppModel) openHelp() {
	h := NewHelpView(a.KeyHandler.Registry)
	h.Update(a.size)
	a.Overlays.Push(Overlay{View: h, Dismiss: []string{"?", "esc"}})
	a.setMode(ModeHelp)
}

func (a *AppModel) closeHelp() {
	a.Overlays.Pop()
	if a.Overlays.Len() == 0 {
		a.setMode(ModeTabs)
	}
}

func (a *AppModel) setMode(m AppMode) {
	a.Mode = m
	a.KeyHandler.Mode = m
}

// NewAppModel creates the root model over state. logger may be nil.
func NewAppModel(state *tabs.State, logger *log.Logger) *AppModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	zones := zone.New()
	return &AppModel{
		Mode:       ModeTabs,
		Tabs:       NewTabsView(state, zones, logger),
		Overlays:   &OverlayStack{},
		KeyHandler: NewKeyHandler(DefaultKeybinds()),
		Zones:      zones,
		Logger:     logger,
	}
}

// DefaultKeybinds returns the registry used by NewAppModel.
func DefaultKeybinds() *KeybindRegistry {
	tabsOnly := []AppMode{ModeTabs}
	send := func(msg tea.Msg) tea.Cmd {
		return func() tea.Msg { return msg }
	}

	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("?", send(ToggleHelpMsg{}), "Help")
	reg.BindWithDesc("SPC ?", send(ToggleHelpMsg{}), "Help")

	reg.BindWithDescForMode("left", send(MoveMsg{Delta: -1}), "Previous tab", tabsOnly)
	reg.BindWithDescForMode("h", send(MoveMsg{Delta: -1}), "Previous tab", tabsOnly)
	reg.BindWithDescForMode("right", send(MoveMsg{Delta: 1}), "Next tab", tabsOnly)
	reg.BindWithDescForMode("l", send(MoveMsg{Delta: 1}), "Next tab", tabsOnly)
	reg.BindWithDescForMode("tab", send(CycleFocusMsg{}), "Next row", tabsOnly)
	reg.BindWithDescForMode("shift+tab", send(CycleFocusMsg{Reverse: true}), "Previous row", tabsOnly)
	reg.BindWithDescForMode("SPC f m", send(FocusRowMsg{Row: tabs.LevelMain}), "Focus main tabs", tabsOnly)
	reg.BindWithDescForMode("SPC f s", send(FocusRowMsg{Row: tabs.LevelSub}), "Focus sub-tabs", tabsOnly)
	for i := 1; i <= 9; i++ {
		reg.BindWithDescForMode(fmt.Sprint(i), send(SelectIndexMsg{Index: i - 1}),
			fmt.Sprintf("Select tab %d", i), tabsOnly)
	}
	return reg
}

// Snapshot renders the tab widget once without zone markers or help bars.
func (m *AppModel) Snapshot() string {
	return strings.TrimRight(m.Zones.Scan(m.Tabs.View()), "\n")
}

// Close stops the zone manager's background worker.
func (m *AppModel) Close() {
	m.Zones.Close()
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
