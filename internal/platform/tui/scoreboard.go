package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/knife-master/internal/core"
	"github.com/vovakirdan/knife-master/internal/i18n"
	"github.com/vovakirdan/knife-master/internal/storage"
)

const scoreboardLimit = 10

// ScoreSource lists the best finished runs.
type ScoreSource interface {
	TopScores(limit int) ([]storage.ScoreEntry, error)
}

// scoreboard is the high score table shown from the main menu.
type scoreboard struct {
	source ScoreSource
	scores []storage.ScoreEntry
	err    error
	table  table.Model
}

func newScoreboard(source ScoreSource, height int) scoreboard {
	return scoreboard{
		source: source,
		table:  newStyledTable(scoreColumns(), height),
	}
}

func scoreColumns() []table.Column {
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 14},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "When", Width: 16},
	}
}

// newStyledTable builds a focused table with the shared arcade styling.
func newStyledTable(columns []table.Column, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight(height)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// tableHeight leaves room for the title, help bar and borders.
func tableHeight(screenH int) int {
	return core.Clamp(screenH-10, 3, scoreboardLimit+1)
}

// reload fetches the latest scores.
func (b *scoreboard) reload() {
	b.scores, b.err = nil, nil
	if b.source == nil {
		b.table.SetRows(nil)
		return
	}

	b.scores, b.err = b.source.TopScores(scoreboardLimit)
	rows := make([]table.Row, len(b.scores))
	for i, s := range b.scores {
		player := s.Player
		if player == "" {
			player = "local"
		}
		when := "-"
		if !s.CreatedAt.IsZero() {
			when = humanize.Time(s.CreatedAt)
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			player,
			humanize.Comma(int64(s.Score)),
			fmt.Sprintf("%d", s.Level),
			when,
		}
	}
	b.table.SetRows(rows)
	b.table.GotoTop()
}

func (b *scoreboard) resize(height int) {
	b.table.SetHeight(tableHeight(height))
}

func (b scoreboard) update(msg tea.Msg) (scoreboard, tea.Cmd) {
	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

func (b scoreboard) view(width int, p *i18n.Printer) string {
	var sb strings.Builder
	sb.WriteString(centerText(titleStyle.Render(p.T("scores.title")), width))
	sb.WriteString("\n\n")

	switch {
	case b.err != nil:
		sb.WriteString(centerText(alertStyle.Render(b.err.Error()), width))
	case len(b.scores) == 0:
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, empty.Render(p.T("scores.empty"))))
	default:
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, box.Render(b.table.View())))
	}
	return sb.String()
}
