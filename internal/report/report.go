// Package report renders a human readable summary of an extraction run.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/pokerlogs/internal/parser"
	"github.com/lox/pokerlogs/internal/pipeline"
	"github.com/lox/pokerlogs/internal/statistics"
	"github.com/lox/pokerlogs/poker"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Width(16)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)
)

// DisableColor forces plain ASCII output.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Render writes the run summary to w.
func Render(w io.Writer, output string, stats pipeline.Stats) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render("preflop extraction"))
	b.WriteString("\n\n")

	row := func(label string, value any) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(fmt.Sprint(value)))
		b.WriteString("\n")
	}
	row("Sources", stats.Sources)
	row("Events", stats.Events)
	row("Rounds", stats.Rounds)
	row("Valid rounds", stats.ValidRounds)
	row("Dropped rounds", stats.DroppedRounds)
	row("Actions", stats.Actions)
	row("Preflop actions", stats.PreflopActions)
	row("Rows", stats.Rows)
	row("Elapsed", stats.Elapsed.Round(time.Microsecond))
	if output != "" {
		row("Output", output)
	}

	if stats.Rows == 0 {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render("no complete preflop rows"))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("hole cards"))
		b.WriteString("\n\n")
		for _, cat := range poker.Categories {
			n := stats.Categories[cat]
			if n == 0 {
				continue
			}
			row(string(cat), fmt.Sprintf("%d (%.1f%%)", n, 100*float64(n)/float64(stats.Rows)))
		}
		if stats.Decisions != nil && len(stats.Decisions.Players) > 0 {
			b.WriteString("\n")
			b.WriteString(titleStyle.Render("players"))
			b.WriteString("\n\n")
			renderPlayers(&b, stats.Decisions)

			b.WriteString("\n")
			b.WriteString(titleStyle.Render("positions"))
			b.WriteString("\n\n")
			renderPositions(&b, stats.Decisions)
		}
	}

	_, err := fmt.Fprintln(w, boxStyle.Render(strings.TrimRight(b.String(), "\n")))
	return err
}

// maxPlayers caps the per-player section.
const maxPlayers = 10

// positions lists seats in table order for the per-position section.
var positions = []parser.Position{parser.SmallBlind, parser.BigBlind, parser.Dealer, parser.Middle}

func renderPlayers(b *strings.Builder, stats *statistics.Statistics) {
	names := stats.PlayerNames()
	if len(names) > maxPlayers {
		names = names[:maxPlayers]
	}
	for _, name := range names {
		writeTendencies(b, name, stats.Players[name])
	}
}

func renderPositions(b *strings.Builder, stats *statistics.Statistics) {
	for _, pos := range positions {
		ps, ok := stats.Positions[pos]
		if !ok {
			continue
		}
		writeTendencies(b, pos.String(), ps)
	}
}

func writeTendencies(b *strings.Builder, label string, a *statistics.ActionStats) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString(valueStyle.Render(fmt.Sprintf(
		"%d acts  vpip %.0f%%  agg %.0f%%  fold %.0f%%  median %.1fbb  p90 %.1fbb  sd %.1fbb",
		a.Actions, 100*a.VPIP(), 100*a.Aggression(), 100*a.FoldRate(),
		a.Median(), a.Percentile(0.9), a.StdDev())))
	b.WriteString("\n")
}
