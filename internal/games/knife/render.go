package knife

import (
	"math"

	"github.com/vovakirdan/knife-master/internal/core"
)

// Renderer layout constants.
const (
	hudRows       = 1    // top rows left free for the platform HUD
	cellAspect    = 2.0  // terminal cells are about twice as tall as wide
	ringSteps     = 144  // samples used to trace the target rim
	appleOffset   = 15.0 // apples sit just outside the rim
	handleLength  = 30.0
	readyGlyph    = '▲'
	stuckApple    = '●'
	indicatorRune = '▮'
)

// viewport maps world units onto screen cells.
type viewport struct {
	sx, sy float64
	ox, oy float64
	jx, jy int
}

func newViewport(snap *Snapshot, w, h int) viewport {
	rows := float64(h - hudRows)
	sy := rows / snap.ArenaH
	sx := sy * cellAspect
	if snap.ArenaW*sx > float64(w) {
		sx = float64(w) / snap.ArenaW
		sy = sx / cellAspect
	}
	v := viewport{
		sx: sx,
		sy: sy,
		ox: (float64(w) - snap.ArenaW*sx) / 2,
		oy: float64(hudRows) + (rows-snap.ArenaH*sy)/2,
	}

	// Deterministic jitter: the same snapshot always renders the same frame.
	if snap.Shake > 0 {
		phase := float64(int(snap.Tick%3)-1) * 0.5
		v.jx = int(math.Round(phase * snap.Shake * sx))
		v.jy = int(math.Round(-phase * snap.Shake * sy))
	}
	return v
}

func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor(v.ox+x*v.sx)) + v.jx, int(math.Floor(v.oy+y*v.sy)) + v.jy
}

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Snapshot()
	Render(&snap, dst)
}

// Render draws a snapshot into dst. The target is only drawn while playing;
// particles and floating texts are drawn in every phase so bursts finish
// animating behind overlays.
func Render(snap *Snapshot, dst *core.Screen) {
	if dst.Width() <= 0 || dst.Height() <= hudRows {
		return
	}
	v := newViewport(snap, dst.Width(), dst.Height())

	if snap.Phase == PhasePlaying {
		drawTarget(snap, v, dst)
		drawKnives(snap, v, dst)
		drawIndicator(snap, dst)
	}
	drawParticles(snap, v, dst)
	drawTexts(snap, v, dst)
}

func drawTarget(snap *Snapshot, v viewport, dst *core.Screen) {
	wood, rim := core.ColorBrown, core.ColorOrange
	if snap.IsBoss {
		wood, rim = core.ColorRed, core.ColorBrightRed
	}

	// Fill the log.
	x0, y0 := v.cell(snap.CenterX-snap.Radius, snap.CenterY-snap.Radius)
	x1, y1 := v.cell(snap.CenterX+snap.Radius, snap.CenterY+snap.Radius)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			wx := (float64(cx-v.jx)+0.5-v.ox)/v.sx - snap.CenterX
			wy := (float64(cy-v.jy)+0.5-v.oy)/v.sy - snap.CenterY
			if wx*wx+wy*wy <= snap.Radius*snap.Radius {
				dst.SetColored(cx, cy, '░', wood)
			}
		}
	}

	// Grain spoke shows the spin.
	for r := 0.0; r < snap.Radius; r += 4 {
		x, y := polar(snap, snap.Rotation, r)
		cx, cy := v.cell(x, y)
		dst.SetColored(cx, cy, radialGlyph(snap.Rotation), rim)
	}

	for i := range ringSteps {
		theta := core.TwoPi * float64(i) / ringSteps
		x, y := polar(snap, theta, snap.Radius)
		cx, cy := v.cell(x, y)
		dst.SetColored(cx, cy, 'O', rim)
	}

	for _, a := range snap.AppleAngles {
		x, y := polar(snap, a+snap.Rotation, snap.Radius+appleOffset)
		cx, cy := v.cell(x, y)
		dst.SetColored(cx, cy, stuckApple, core.ColorBrightRed)
	}
}

func drawKnives(snap *Snapshot, v viewport, dst *core.Screen) {
	color := core.ColorFromHex(snap.Knife.Color)

	for _, a := range snap.StuckKnives {
		theta := a + snap.Rotation
		glyph := radialGlyph(theta)
		for r := snap.Radius; r <= snap.Radius+handleLength; r += 3 {
			x, y := polar(snap, theta, r)
			cx, cy := v.cell(x, y)
			dst.SetColored(cx, cy, glyph, color)
		}
	}

	switch {
	case snap.Projectile.Active:
		drawUprightKnife(snap, v, dst, snap.Projectile.Y, color)
	case snap.KnivesRemaining > 0:
		drawUprightKnife(snap, v, dst, snap.ReadyY, color)
	}
}

// drawUprightKnife draws a knife pointing at the target with its tip at y.
func drawUprightKnife(snap *Snapshot, v viewport, dst *core.Screen, y float64, color core.Color) {
	blade := snap.Knife.BladeLength
	if blade <= 0 {
		blade = DefaultKnifeVisual().BladeLength
	}
	tx, ty := v.cell(snap.CenterX, y)
	dst.SetColored(tx, ty, readyGlyph, color)
	for d := 4.0; d < blade; d += 4 {
		cx, cy := v.cell(snap.CenterX, y+d)
		if cy != ty {
			dst.SetColored(cx, cy, '│', color)
		}
	}
	for d := blade; d < blade+handleLength; d += 4 {
		cx, cy := v.cell(snap.CenterX, y+d)
		if cy != ty {
			dst.SetColored(cx, cy, '║', core.ColorGray)
		}
	}
}

// drawIndicator stacks the remaining knives up the left edge.
func drawIndicator(snap *Snapshot, dst *core.Screen) {
	bottom := dst.Height() - 2
	for i := range snap.KnivesRemaining {
		y := bottom - i
		if y < hudRows {
			break
		}
		c := core.ColorGray
		if i == 0 {
			c = core.ColorBrightWhite
		}
		dst.SetColored(1, y, indicatorRune, c)
	}
}

func drawParticles(snap *Snapshot, v viewport, dst *core.Screen) {
	for _, p := range snap.Particles {
		glyph := '.'
		if p.Size > 6 {
			glyph = '*'
		}
		cx, cy := v.cell(p.X, p.Y)
		if cy < hudRows {
			continue
		}
		dst.SetColored(cx, cy, glyph, core.ColorFromHex(p.Color))
	}
}

func drawTexts(snap *Snapshot, v viewport, dst *core.Screen) {
	for _, t := range snap.Texts {
		cx, cy := v.cell(t.X, t.Y)
		if cy < hudRows {
			continue
		}
		dst.DrawTextColored(cx-len([]rune(t.Text))/2, cy, t.Text, core.ColorFromHex(t.Color))
	}
}

// polar returns the world point at screen angle theta and distance r from
// the target center. Screen y grows downward, so π/2 is the bottom.
func polar(snap *Snapshot, theta, r float64) (float64, float64) {
	return snap.CenterX + math.Cos(theta)*r, snap.CenterY + math.Sin(theta)*r
}

// radialGlyph picks a line character matching direction theta.
func radialGlyph(theta float64) rune {
	dx, dy := math.Cos(theta), math.Sin(theta)
	switch {
	case math.Abs(dx) > 2*math.Abs(dy):
		return '─'
	case math.Abs(dy) > 2*math.Abs(dx):
		return '│'
	case dx*dy > 0:
		return '\\'
	default:
		return '/'
	}
}
