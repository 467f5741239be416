package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// newHelpModel returns a help.Model styled with the shared theme.
func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = Styles.Hint
	h.Styles.FullSeparator = Styles.Hint
	return h
}

// RenderKeybindHelp produces the transient help bar shown after SPC.
// When the handler has a pending sequence (e.g. "SPC f"), it shows the
// next-level hints for that sequence.
func RenderKeybindHelp(keyHandler *KeyHandler) string {
	if keyHandler == nil {
		return ""
	}
	km := NewKeyMap(keyHandler.Registry, keyHandler, keyHandler.Mode)
	bindings := km.ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginTop(1)

	prefix := keyHandler.CurrentSeq()
	if prefix == "" {
		prefix = keyHandler.LeaderSeq
	}
	content := Styles.Hint.Render(prefix) + " " + newHelpModel().ShortHelpView(bindings)
	return boxStyle.Render(content)
}

// HelpView is the full key help overlay.
type HelpView struct {
	keys *KeyMap
	help help.Model
}

// Ensure HelpView implements View.
var _ View = (*HelpView)(nil)

// NewHelpView lists every binding that applies in ModeTabs.
func NewHelpView(reg *KeybindRegistry) *HelpView {
	h := newHelpModel()
	h.ShowAll = true
	return &HelpView{keys: NewKeyMap(reg, nil, ModeTabs), help: h}
}

// Init implements View.
func (h *HelpView) Init() tea.Cmd { return nil }

// Update implements View.
func (h *HelpView) Update(msg tea.Msg) (View, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		h.help.Width = ws.Width
	}
	return h, nil
}

// View implements View.
func (h *HelpView) View() string {
	body := Styles.Title.Render("Keys") + "\n\n" +
		h.help.View(h.keys) + "\n\n" +
		Styles.Hint.Render("? or esc to close")
	return Styles.Box.Render(body)
}
