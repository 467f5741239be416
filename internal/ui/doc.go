// Package ui renders the two-level tab selector with Bubble Tea.
//
// Pieces:
//   - TabsView: draws a tabs.Frame (main row, sub row, content panel) and turns
//     mouse clicks and key messages into tabs.State mutations
//   - KeybindRegistry / KeyHandler: single keys plus SPC-leader sequences
//   - FocusManager: which row receives left/right movement
//   - OverlayStack: the key help overlay
//   - AppModel: root tea.Model tying the above together
package ui
