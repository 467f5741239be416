package ui

import (
	"slices"

	"tabview/internal/tabs"
)

// FocusManager tracks which tab row receives keyboard movement.
type FocusManager struct {
	Current  tabs.Level   // Row that currently has focus
	Order    []tabs.Level // Rotation order
	OnChange func(from, to tabs.Level)
}

// NewFocusManager focuses the main row first, then the sub row.
func NewFocusManager() *FocusManager {
	return &FocusManager{
		Current: tabs.LevelMain,
		Order:   []tabs.Level{tabs.LevelMain, tabs.LevelSub},
	}
}

// Next advances focus to the next row in order and returns it.
func (f *FocusManager) Next() tabs.Level {
	return f.step(1)
}

// Prev moves focus to the previous row in order and returns it.
func (f *FocusManager) Prev() tabs.Level {
	return f.step(-1)
}

// SetFocus focuses row. Returns false if row is not in Order.
func (f *FocusManager) SetFocus(row tabs.Level) bool {
	if !slices.Contains(f.Order, row) {
		return false
	}
	f.move(row)
	return true
}

func (f *FocusManager) step(delta int) tabs.Level {
	n := len(f.Order)
	if n == 0 {
		return f.Current
	}
	// An unknown Current yields -1, so Next lands on Order[0].
	i := slices.Index(f.Order, f.Current)
	if i < 0 && delta < 0 {
		i = 0
	}
	f.move(f.Order[((i+delta)%n+n)%n])
	return f.Current
}

func (f *FocusManager) move(to tabs.Level) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}
