package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/fractal/internal/duration"
	"github.com/ayoisaiah/fractal/internal/liveclock"
)

type keymap struct {
	quit key.Binding
}

var defaultKeymap = keymap{
	quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ReadingMsg carries a new clock reading into the program.
type ReadingMsg liveclock.Reading

type clockStyle struct {
	base    lipgloss.Style
	title   lipgloss.Style
	elapsed lipgloss.Style
	hint    lipgloss.Style
}

func newClockStyle() clockStyle {
	accent := lipgloss.AdaptiveColor{Light: "#2A7F62", Dark: "#B0DB43"}
	muted := lipgloss.AdaptiveColor{Light: "#666666", Dark: "#9A9A9A"}

	return clockStyle{
		base:    lipgloss.NewStyle().Padding(1, 1),
		title:   lipgloss.NewStyle().Bold(true),
		elapsed: lipgloss.NewStyle().Bold(true).Foreground(accent),
		hint:    lipgloss.NewStyle().Foreground(muted),
	}
}

// ClockView displays the elapsed time of a single session.
type ClockView struct {
	help    help.Model
	style   clockStyle
	title   string
	reading liveclock.Reading
}

// NewClockView returns a view titled with the session name and showing the
// given initial reading.
func NewClockView(title string, initial liveclock.Reading) ClockView {
	return ClockView{
		title:   title,
		reading: initial,
		help:    help.New(),
		style:   newClockStyle(),
	}
}

// Reading returns the reading currently on display.
func (v ClockView) Reading() liveclock.Reading {
	return v.reading
}

func (v ClockView) Init() tea.Cmd {
	return nil
}

func (v ClockView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ReadingMsg:
		v.reading = liveclock.Reading(msg)
	case tea.KeyMsg:
		if key.Matches(msg, defaultKeymap.quit) {
			return v, tea.Quit
		}
	}

	return v, nil
}

func (v ClockView) View() string {
	var s strings.Builder

	s.WriteString(v.style.title.Render(v.title))
	s.WriteString(" " + v.style.hint.Render("[") + State(v.reading.State) + v.style.hint.Render("]"))
	s.WriteString("\n\n")
	s.WriteString(v.style.elapsed.Render(duration.FormatShort(v.reading.Elapsed, true)))
	s.WriteString("\n\n")
	s.WriteString(v.help.ShortHelpView([]key.Binding{defaultKeymap.quit}))

	return v.style.base.Render(s.String())
}
