// Package textutil provides unicode-aware width helpers for tab labels.
package textutil

import "github.com/mattn/go-runewidth"

// Ellipsis marks a truncated label.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies. s must not carry
// ANSI sequences; use lipgloss.Width for styled strings.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in an ellipsis when
// anything was cut. maxWidth <= 0 disables truncation.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 || Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= Width(Ellipsis) {
		return Ellipsis
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}
