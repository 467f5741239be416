package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestOverlayStack_PushPop(t *testing.T) {
	var s OverlayStack
	_, ok := s.Pop()
	assert.False(t, ok)

	help := NewHelpView(DefaultKeybinds())
	s.Push(Overlay{View: help, Dismiss: []string{"?", "esc"}})
	assert.Equal(t, 1, s.Len())

	top, ok := s.Peek()
	assert.True(t, ok)
	assert.True(t, top.IsDismissKey("esc"))
	assert.False(t, top.IsDismissKey("q"))

	cmd, ok := s.UpdateTop(tea.WindowSizeMsg{Width: 40})
	assert.True(t, ok)
	assert.Nil(t, cmd)
	assert.Equal(t, 40, help.help.Width)

	_, ok = s.Pop()
	assert.True(t, ok)
	assert.Equal(t, 0, s.Len())
}
