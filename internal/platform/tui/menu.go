package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/knife-master/internal/core"
	"github.com/vovakirdan/knife-master/internal/i18n"
	"github.com/vovakirdan/knife-master/internal/profile"
)

// menuItem is an entry of the main menu.
type menuItem int

const (
	menuPlay menuItem = iota
	menuShop
	menuSettings
	menuScores
	menuQuit
	menuItemCount
)

func (i menuItem) label(p *i18n.Printer) string {
	switch i {
	case menuPlay:
		return p.T("menu.play")
	case menuShop:
		return p.T("menu.shop")
	case menuSettings:
		return p.T("menu.settings")
	case menuScores:
		return p.T("menu.scores")
	default:
		return p.T("menu.quit")
	}
}

// settingsItem is a row of the settings screen.
type settingsItem int

const (
	settingsLanguage settingsItem = iota
	settingsSound
	settingsBack
	settingsItemCount
)

// gameOverItem is a button of the game over screen.
type gameOverItem int

const (
	gameOverRetry gameOverItem = iota
	gameOverMenu
	gameOverItemCount
)

// moveCursor steps the cursor and clamps it to [0, n).
func moveCursor(cursor int, action MenuAction, n int) int {
	switch action {
	case MenuActionUp:
		cursor--
	case MenuActionDown:
		cursor++
	}
	return core.Clamp(cursor, 0, n-1)
}

// renderItems renders a vertical button list with the cursor highlighted.
func renderItems(labels []string, cursor int) string {
	lines := make([]string, len(labels))
	for i, l := range labels {
		if i == cursor {
			lines[i] = selectedStyle.Render(" " + l + " ")
		} else {
			lines[i] = " " + l + " "
		}
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func menuView(p *i18n.Printer, prof profile.Profile, cursor int) string {
	labels := make([]string, menuItemCount)
	for i := range menuItemCount {
		labels[i] = i.label(p)
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		subtitleStyle.Render(p.T("menu.studio")),
		titleStyle.Render(strings.Join(strings.Split(p.T("menu.title"), ""), " ")),
		"",
		dimStyle.Render(p.T("menu.high_score", prof.HighScore)),
		"",
		renderItems(labels, cursor),
		"",
		dimStyle.Render(p.T("menu.footer", string(prof.Language))),
	)
}

func settingsView(p *i18n.Printer, prof profile.Profile, cursor int) string {
	sound := p.T("settings.off")
	if prof.SoundEnabled {
		sound = p.T("settings.on")
	}

	labels := []string{
		p.T("settings.language") + ": " + string(prof.Language),
		p.T("settings.sound") + ": " + sound,
		p.T("settings.back"),
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(p.T("settings.title")),
		"",
		renderItems(labels, cursor),
	)
}
