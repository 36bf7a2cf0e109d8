package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/knife-master/internal/core"
	"github.com/vovakirdan/knife-master/internal/games/knife"
	"github.com/vovakirdan/knife-master/internal/i18n"
	"github.com/vovakirdan/knife-master/internal/profile"
)

func TestColorStylesCoverPalette(t *testing.T) {
	colors := []core.Color{
		core.ColorDefault, core.ColorRed, core.ColorGreen, core.ColorYellow,
		core.ColorBlue, core.ColorMagenta, core.ColorCyan, core.ColorWhite,
		core.ColorBrightRed, core.ColorBrightGreen, core.ColorBrightYellow,
		core.ColorBrightBlue, core.ColorBrightMagenta, core.ColorBrightCyan,
		core.ColorBrightWhite, core.ColorOrange, core.ColorGray,
		core.ColorBrown, core.ColorDarkGray,
	}
	for _, c := range colors {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %v", c)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColored(0, 0, "KNIFE", core.ColorBrown)
	s.DrawTextColored(6, 0, "MASTER", core.ColorOrange)
	s.DrawText(0, 2, "bottom")

	out := RenderScreen(s)

	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("rendered %d line breaks, want 2", got)
	}
	for _, want := range []string{"KNIFE", "MASTER", "bottom"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen missing %q:\n%s", want, out)
		}
	}
}

func TestDrawHUD(t *testing.T) {
	s := core.NewScreen(50, 4)
	snap := knife.Snapshot{Level: 5, Score: 12, Apples: 3, IsBoss: true}

	drawHUD(s, &snap, i18n.For(profile.English))

	row := s.Row(0)
	for _, want := range []string{"LEVEL 5 BOSS", "SCORE 12", "Apples: 3"} {
		if !strings.Contains(row, want) {
			t.Errorf("HUD row %q missing %q", row, want)
		}
	}
	if s.GetCell(1, 0).Color != core.ColorBrightRed {
		t.Error("boss level should be drawn in bright red")
	}
	if strings.TrimSpace(s.Row(1)) != "" {
		t.Error("HUD drew outside the top row")
	}
}

func TestDrawHUDTinyScreen(t *testing.T) {
	snap := knife.Snapshot{Level: 1}
	drawHUD(core.NewScreen(0, 0), &snap, i18n.For(profile.English))
	drawHUD(core.NewScreen(3, 1), &snap, i18n.For(profile.English))
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText overflow = %q", got)
	}
}
