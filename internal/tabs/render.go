package tabs

// Level says which row a button belongs to.
type Level int

const (
	LevelMain Level = iota
	LevelSub
)

func (l Level) String() string {
	switch l {
	case LevelMain:
		return "main"
	case LevelSub:
		return "sub"
	default:
		return "unknown"
	}
}

// Button is one selectable tab. Active is true iff Label is the current
// selection for its row.
type Button struct {
	Level  Level
	Index  int
	Label  string
	Active bool
}

// Press applies the button to s: SelectMain for main buttons, SelectSub for
// sub buttons.
func (b Button) Press(s *State) error {
	if b.Level == LevelMain {
		return s.SelectMain(b.Label)
	}
	return s.SelectSub(b.Label)
}

// Content is the panel echoing the active selection.
type Content struct {
	Main string
	Sub  string
}

// Frame is everything a view needs to draw one render of the widget.
type Frame struct {
	Main    []Button
	Sub     []Button
	Content Content
}

// Render builds the frame for sel over m. It has no side effects.
// sel.Main must be a key of m.
func Render(m *TabMap, sel Selection) Frame {
	f := Frame{
		Main:    make([]Button, 0, len(m.groups)),
		Content: Content{Main: sel.Main, Sub: sel.Sub},
	}
	for i, g := range m.groups {
		f.Main = append(f.Main, Button{Level: LevelMain, Index: i, Label: g.Key, Active: g.Key == sel.Main})
	}
	subs := m.subs(sel.Main)
	f.Sub = make([]Button, 0, len(subs))
	for i, label := range subs {
		f.Sub = append(f.Sub, Button{Level: LevelSub, Index: i, Label: label, Active: label == sel.Sub})
	}
	return f
}

// Frame renders the state's current selection.
func (s *State) Frame() Frame {
	return Render(s.tabs, s.sel)
}

// Row returns the buttons for level.
func (f Frame) Row(level Level) []Button {
	if level == LevelMain {
		return f.Main
	}
	return f.Sub
}
