package ui

import "tabview/internal/tabs"

// PressMsg presses a tab button, as a mouse click on it would.
type PressMsg struct {
	Button tabs.Button
}

// MoveMsg moves the selection within the focused row by Delta, wrapping.
type MoveMsg struct {
	Delta int
}

// SelectIndexMsg selects the button at a 0-based Index in the focused row.
type SelectIndexMsg struct {
	Index int
}

// CycleFocusMsg moves keyboard focus to the next (or previous) row.
type CycleFocusMsg struct {
	Reverse bool
}

// FocusRowMsg focuses a specific row (SPC f m / SPC f s).
type FocusRowMsg struct {
	Row tabs.Level
}

// ToggleHelpMsg opens or closes the key help overlay.
type ToggleHelpMsg struct{}
