package ui

import (
	"testing"

	"tabview/internal/tabs"
)

func TestFocusManager_NextPrevWrap(t *testing.T) {
	f := NewFocusManager()
	var changes []string
	f.OnChange = func(from, to tabs.Level) {
		changes = append(changes, from.String()+"->"+to.String())
	}

	if got := f.Next(); got != tabs.LevelSub {
		t.Errorf("Next() = %v, want sub", got)
	}
	if got := f.Next(); got != tabs.LevelMain {
		t.Errorf("Next() wrap = %v, want main", got)
	}
	if got := f.Prev(); got != tabs.LevelSub {
		t.Errorf("Prev() wrap = %v, want sub", got)
	}
	if len(changes) != 3 || changes[0] != "main->sub" {
		t.Errorf("changes = %v", changes)
	}
}

func TestFocusManager_SetFocus(t *testing.T) {
	f := NewFocusManager()
	calls := 0
	f.OnChange = func(from, to tabs.Level) { calls++ }

	if !f.SetFocus(tabs.LevelMain) {
		t.Error("SetFocus(main) should succeed")
	}
	if calls != 0 {
		t.Error("OnChange must not fire when focus does not move")
	}
	if f.SetFocus(tabs.Level(7)) {
		t.Error("SetFocus of unknown row should fail")
	}
	if f.Current != tabs.LevelMain {
		t.Errorf("Current = %v after failed SetFocus", f.Current)
	}
}

func TestFocusManager_EmptyOrder(t *testing.T) {
	f := &FocusManager{Current: tabs.LevelSub}
	if got := f.Next(); got != tabs.LevelSub {
		t.Errorf("Next() with empty order = %v", got)
	}
}
