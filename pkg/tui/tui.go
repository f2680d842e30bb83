// Package tui renders tables and reports for the terminal.
// Simple streaming output - styled text, no interactive widgets.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"

	"github.com/csvtab/csvtab/pkg/table"
)

// Colors
var (
	accent  = lipgloss.Color("#5FAFFF")
	muted   = lipgloss.Color("#666666")
	success = lipgloss.Color("#00CC66")
	white   = lipgloss.Color("#FFFFFF")
)

// Styles
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(white)
	accentStyle  = lipgloss.NewStyle().Foreground(accent).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(muted)
	successStyle = lipgloss.NewStyle().Foreground(success).Bold(true)
)

// Title renders s bold white.
func Title(s string) string { return titleStyle.Render(s) }

// Accent renders s in the accent color.
func Accent(s string) string { return accentStyle.Render(s) }

// Muted renders s dimmed.
func Muted(s string) string { return mutedStyle.Render(s) }

// Success renders s in the success color.
func Success(s string) string { return successStyle.Render(s) }

// PrintTable writes tbl to w, one record per line with columns aligned.
// Styled output prefixes each record with a dimmed row number; plain
// output is the bare aligned rendering.
func PrintTable(w io.Writer, tbl table.Table, plain bool) error {
	if plain {
		return tbl.Render(w)
	}

	widths := tbl.Widths()
	rowWidth := len(fmt.Sprintf("%d", len(tbl)-1))

	for i, rec := range tbl {
		fmt.Fprintf(w, "%s  ", mutedStyle.Render(fmt.Sprintf("%*d", rowWidth, i)))
		for j, cell := range rec {
			pad := ""
			if j < len(rec)-1 {
				pad = strings.Repeat(" ", widths[j]-utf8.RuneCountInString(cell)+2)
			}
			fmt.Fprintf(w, "%s%s", titleStyle.Render(cell), pad)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// PrintParseSummary prints a one-shot report after parsing a source.
func PrintParseSummary(w io.Writer, path string, tbl table.Table, size int64, elapsed time.Duration) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s %s\n", mutedStyle.Render("Source:"), titleStyle.Render(path))
	fmt.Fprintf(w, "  %s %s records, %s columns\n",
		mutedStyle.Render("Shape:"),
		titleStyle.Render(fmt.Sprintf("%d", len(tbl))),
		titleStyle.Render(fmt.Sprintf("%d", len(tbl.Widths()))))
	fmt.Fprintf(w, "  %s %s in %s\n",
		mutedStyle.Render("Read:"),
		FormatBytes(size),
		formatDuration(elapsed))
	fmt.Fprintln(w)
}

// ShowProgress creates a progress bar for multi-file processing.
func ShowProgress(total int64, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowBytes(false),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "",
			BarEnd:        "",
		}),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

// FormatBytes formats a byte count in a human-readable way.
func FormatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
}
