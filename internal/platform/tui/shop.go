package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/knife-master/internal/catalog"
	"github.com/vovakirdan/knife-master/internal/i18n"
	"github.com/vovakirdan/knife-master/internal/profile"
)

// shop is the knife shop table.
type shop struct {
	knives []catalog.Knife
	table  table.Model
	notice string
	good   bool
}

func newShop(height int) shop {
	return shop{
		knives: catalog.All(),
		table: newStyledTable([]table.Column{
			{Title: "Knife", Width: 18},
			{Title: "Price", Width: 14},
		}, height),
	}
}

// refresh rebuilds the rows from the player's record, keeping the cursor.
func (s *shop) refresh(p profile.Profile, pr *i18n.Printer) {
	rows := make([]table.Row, len(s.knives))
	for i, k := range s.knives {
		var status string
		switch {
		case k.ID == p.SelectedKnifeID:
			status = pr.T("shop.equipped")
		case p.IsUnlocked(k.ID):
			status = pr.T("shop.owned")
		default:
			status = pr.T("shop.cost", k.Cost)
		}
		rows[i] = table.Row{k.Name, status}
	}
	s.table.SetRows(rows)
}

// selected returns the knife under the cursor.
func (s shop) selected() catalog.Knife {
	i := s.table.Cursor()
	if i < 0 || i >= len(s.knives) {
		return catalog.Find(profile.DefaultKnifeID)
	}
	return s.knives[i]
}

// report sets the message shown after a shop action.
func (s *shop) report(res catalog.Result, k catalog.Knife, pr *i18n.Printer) {
	switch res {
	case catalog.ResultPurchased:
		s.notice, s.good = pr.T("shop.purchased", k.Name), true
	case catalog.ResultSelected:
		s.notice, s.good = pr.T("shop.selected", k.Name), true
	default:
		s.notice, s.good = pr.T("shop.insufficient"), false
	}
}

func (s *shop) clearNotice() {
	s.notice = ""
}

func (s *shop) resize(height int) {
	s.table.SetHeight(tableHeight(height))
}

func (s shop) update(msg tea.Msg) (shop, tea.Cmd) {
	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd
}

func (s shop) view(width int, apples int, pr *i18n.Printer) string {
	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render(pr.T("shop.title")), width))
	b.WriteString("\n")
	b.WriteString(centerText(subtitleStyle.Render(pr.T("shop.apples", apples)), width))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	preview := knifePreview(s.selected())
	body := lipgloss.JoinHorizontal(lipgloss.Center, box.Render(s.table.View()), "   ", preview)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))
	b.WriteString("\n\n")

	if s.notice != "" {
		style := alertStyle
		if s.good {
			style = goodStyle
		}
		b.WriteString(centerText(style.Render(s.notice), width))
	}
	return b.String()
}

// knifePreview draws the knife upright in its own color.
func knifePreview(k catalog.Knife) string {
	blade := lipgloss.NewStyle().Foreground(lipgloss.Color(k.Color))
	handle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	bladeRows := int(k.BladeLength / 10)
	lines := []string{blade.Render("▲")}
	for range bladeRows {
		lines = append(lines, blade.Render("│"))
	}
	lines = append(lines, handle.Render("║"), handle.Render("║"))
	return strings.Join(lines, "\n")
}
