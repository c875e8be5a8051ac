package app

import (
	"strings"

	"github.com/pterm/pterm"
)

// helpText renders the app help template. Each entry is a heading followed
// by its template body.
func helpText() string {
	sections := [][2]string{
		{"USAGE", "\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}"},
		{
			"COMMANDS",
			"{{range .Commands}}{{if not .HideHelp}}   " +
				pterm.Green("{{join .Names `, `}}") +
				"{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}",
		},
		{
			"GLOBAL OPTIONS",
			"{{range .VisibleFlags}}\t\t" +
				pterm.Green("--{{.Name}}") +
				"\n\t\t\t\t{{.Usage}}\n{{end}}",
		},
		{
			"ENVIRONMENTAL VARIABLES",
			"\t\tFRACTAL_NO_COLOR, NO_COLOR: disable coloured output.\n" +
				"\t\tFRACTAL_ENV: keep separate config, export, and log files per environment.",
		},
		{"VERSION", "\t\t{{.Version}}"},
	}

	var b strings.Builder

	b.WriteString("{{.Usage}}\n\n")

	for _, s := range sections {
		b.WriteString(pterm.Yellow(s[0]) + "\n" + s[1] + "\n\n")
	}

	return b.String()
}
