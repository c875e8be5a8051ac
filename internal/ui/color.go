// Package ui renders fractal output on the terminal.
package ui

import (
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/fractal/internal/liveclock"
)

var DarkTheme bool

type palette struct {
	light pterm.Color
	dark  pterm.Color
}

func (p palette) Sprint(a any) string {
	if DarkTheme {
		return p.light.Sprint(a)
	}

	return p.dark.Sprint(a)
}

var (
	green     = palette{light: pterm.FgLightGreen, dark: pterm.FgGreen}
	yellow    = palette{light: pterm.FgLightYellow, dark: pterm.FgYellow}
	cyan      = palette{light: pterm.FgLightCyan, dark: pterm.FgCyan}
	red       = palette{light: pterm.FgLightRed, dark: pterm.FgRed}
	highlight = palette{light: pterm.FgLightWhite, dark: pterm.FgBlack}
	dim       = palette{light: pterm.FgGray, dark: pterm.FgGray}
)

func Green(a any) string {
	return green.Sprint(a)
}

func Yellow(a any) string {
	return yellow.Sprint(a)
}

func Cyan(a any) string {
	return cyan.Sprint(a)
}

func Red(a any) string {
	return red.Sprint(a)
}

func Highlight(a any) string {
	return highlight.Sprint(a)
}

func Dim(a any) string {
	return dim.Sprint(a)
}

// State colours a clock state name.
func State(s liveclock.State) string {
	switch s {
	case liveclock.Running:
		return Green(s)
	case liveclock.Paused:
		return Yellow(s)
	case liveclock.Completed:
		return Cyan(s)
	default:
		return Dim(s)
	}
}
