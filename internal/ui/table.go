package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrintTable writes a boxed table to w. The first row is the header.
func PrintTable(w io.Writer, data [][]string) error {
	if len(data) == 0 {
		return nil
	}

	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, str)

	return err
}
