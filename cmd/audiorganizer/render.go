package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/handiism/audiorganizer/internal/config"
	"github.com/handiism/audiorganizer/internal/organize"
)

// printer renders progress events and the final summary.
type printer struct {
	out io.Writer

	title   lipgloss.Style
	dim     lipgloss.Style
	info    lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	border  lipgloss.Style
	cell    lipgloss.Style
}

func newPrinter(out io.Writer, noColor bool) *printer {
	r := lipgloss.NewRenderer(out)
	if noColor || !shouldColorize(out) {
		r.SetColorProfile(termenv.Ascii)
	}

	return &printer{
		out:     out,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
		dim:     r.NewStyle().Foreground(lipgloss.Color("#6C757D")),
		info:    r.NewStyle().Foreground(lipgloss.Color("#A8DADC")),
		success: r.NewStyle().Foreground(lipgloss.Color("#95E1A3")),
		warning: r.NewStyle().Foreground(lipgloss.Color("#FFE66D")),
		failure: r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		border:  r.NewStyle().Foreground(lipgloss.Color("#4ECDC4")),
		cell:    r.NewStyle().Bold(true).Padding(0, 1),
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (p *printer) header(settings *config.Settings) {
	fmt.Fprintln(p.out, p.title.Render("♫ Audio Organizer"))
	line := fmt.Sprintf("%s -> %s (%s)", settings.SourceDir, settings.Destination(), settings.Mode)
	if settings.DryRun {
		line += " [dry run]"
	}
	fmt.Fprintln(p.out, p.dim.Render(line))
	fmt.Fprintln(p.out)
}

func (p *printer) event(event organize.ProgressEvent) {
	var style lipgloss.Style
	prefix := "  "
	switch event.Level {
	case organize.LevelError:
		style = p.failure
		prefix = "✗ "
	case organize.LevelWarning:
		style = p.warning
		prefix = "! "
	case organize.LevelSuccess:
		style = p.success
		prefix = "✓ "
	case organize.LevelInfo:
		style = p.info
		prefix = "› "
	default:
		style = p.dim
	}
	fmt.Fprintln(p.out, style.Render(prefix+event.Message))
}

func (p *printer) summary(s *organize.Summary) {
	rows := [][]string{
		{"Files", humanize.Comma(int64(s.Total()))},
	}
	if s.DryRun {
		rows = append(rows, []string{"Planned", humanize.Comma(int64(s.Planned))})
	} else {
		rows = append(rows,
			[]string{s.Mode.Verb(), humanize.Comma(int64(s.Organized))},
			[]string{"Transferred", humanize.Bytes(uint64(s.Bytes))},
		)
	}
	rows = append(rows,
		[]string{"Failed", humanize.Comma(int64(s.Failed))},
		[]string{"Elapsed", s.FinishedAt.Sub(s.StartedAt).Round(time.Millisecond).String()},
	)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(p.border).
		Headers("Summary", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.cell
			}
			if rows[row][0] == "Failed" && s.Failed > 0 {
				return p.failure.Padding(0, 1)
			}
			return p.info.Padding(0, 1)
		})

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, t.String())

	for _, r := range s.Failures() {
		fmt.Fprintln(p.out, p.failure.Render(fmt.Sprintf("  %s: %s", r.FileName, r.Error)))
	}
}
