package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/fractal/internal/liveclock"
)

func TestClockViewReading(t *testing.T) {
	pterm.DisableColor()

	view := NewClockView("Morning practice", liveclock.Reading{
		State:   liveclock.Running,
		Elapsed: 65,
	})

	assert.Contains(t, view.View(), "01:05")
	assert.Contains(t, view.View(), "running")

	model, cmd := view.Update(ReadingMsg{State: liveclock.Paused, Elapsed: 125})
	assert.Nil(t, cmd)

	updated := model.(ClockView)
	assert.Equal(t, liveclock.Reading{State: liveclock.Paused, Elapsed: 125}, updated.Reading())
	assert.Contains(t, updated.View(), "02:05")
	assert.Contains(t, updated.View(), "paused")
}

func TestClockViewQuit(t *testing.T) {
	view := NewClockView("x", liveclock.Reading{})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if assert.NotNil(t, cmd) {
		assert.Equal(t, tea.Quit(), cmd())
	}
}
