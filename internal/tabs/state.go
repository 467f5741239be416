package tabs

import (
	"fmt"
	"slices"
)

// Selection is the active main tab and the active sub-tab within it.
type Selection struct {
	Main string
	Sub  string
}

// TransitionKind identifies which row a transition changed.
type TransitionKind int

const (
	SelectMainKind TransitionKind = iota
	SelectSubKind
)

func (k TransitionKind) String() string {
	switch k {
	case SelectMainKind:
		return "select_main"
	case SelectSubKind:
		return "select_sub"
	default:
		return "unknown"
	}
}

// Transition describes one successful mutation of a State.
type Transition struct {
	Kind TransitionKind
	From Selection
	To   Selection
}

// State owns the current Selection over a TabMap.
// Invariant: Selection().Sub is always one of Tabs().SubTabs(Selection().Main).
type State struct {
	tabs      *TabMap
	sel       Selection
	observers []func(Transition)
}

// NewState starts at the first main tab and its first sub-tab.
func NewState(m *TabMap) *State {
	return &State{tabs: m, sel: m.first()}
}

// Tabs returns the map the state selects over.
func (s *State) Tabs() *TabMap {
	return s.tabs
}

// Selection returns the current selection.
func (s *State) Selection() Selection {
	return s.sel
}

// Observe registers fn to be called after every successful mutation.
func (s *State) Observe(fn func(Transition)) {
	s.observers = append(s.observers, fn)
}

// SelectMain activates key and resets the sub-tab to the first label under key.
// The reset also happens when key is already active.
func (s *State) SelectMain(key string) error {
	if !s.tabs.Has(key) {
		return fmt.Errorf("main tab %q: %w", key, ErrUnknownTab)
	}
	s.apply(SelectMainKind, Selection{Main: key, Sub: s.tabs.subs(key)[0]})
	return nil
}

// SelectSub activates label under the current main tab.
func (s *State) SelectSub(label string) error {
	if !s.tabs.HasSubTab(s.sel.Main, label) {
		return fmt.Errorf("sub-tab %q under %q: %w", label, s.sel.Main, ErrUnknownTab)
	}
	s.apply(SelectSubKind, Selection{Main: s.sel.Main, Sub: label})
	return nil
}

// SelectMainAt selects the main tab at index i.
func (s *State) SelectMainAt(i int) error {
	if i < 0 || i >= s.tabs.Len() {
		return fmt.Errorf("main tab index %d: %w", i, ErrUnknownTab)
	}
	return s.SelectMain(s.tabs.groups[i].Key)
}

// SelectSubAt selects the sub-tab at index i under the current main tab.
func (s *State) SelectSubAt(i int) error {
	subs := s.tabs.subs(s.sel.Main)
	if i < 0 || i >= len(subs) {
		return fmt.Errorf("sub-tab index %d under %q: %w", i, s.sel.Main, ErrUnknownTab)
	}
	return s.SelectSub(subs[i])
}

// NextMain selects the following main tab, wrapping to the first.
func (s *State) NextMain() {
	n := s.tabs.Len()
	_ = s.SelectMainAt((s.tabs.keyIndex(s.sel.Main) + 1) % n)
}

// PrevMain selects the preceding main tab, wrapping to the last.
func (s *State) PrevMain() {
	n := s.tabs.Len()
	_ = s.SelectMainAt((s.tabs.keyIndex(s.sel.Main) - 1 + n) % n)
}

// NextSub selects the following sub-tab, wrapping to the first.
func (s *State) NextSub() {
	subs := s.tabs.subs(s.sel.Main)
	i := slices.Index(subs, s.sel.Sub)
	_ = s.SelectSub(subs[(i+1)%len(subs)])
}

// PrevSub selects the preceding sub-tab, wrapping to the last.
func (s *State) PrevSub() {
	subs := s.tabs.subs(s.sel.Main)
	i := slices.Index(subs, s.sel.Sub)
	_ = s.SelectSub(subs[(i-1+len(subs))%len(subs)])
}

func (s *State) apply(kind TransitionKind, to Selection) {
	t := Transition{Kind: kind, From: s.sel, To: to}
	s.sel = to
	for _, fn := range s.observers {
		fn(t)
	}
}
