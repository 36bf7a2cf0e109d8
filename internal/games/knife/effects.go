package knife

import (
	"math/rand"

	"github.com/vovakirdan/knife-master/internal/core"
)

// Effect colors.
const (
	ColorWood      = "#d69e2e"
	ColorBossWood  = "#e53e3e"
	ColorAppleText = "#4fd1c5"
)

// Particle is a short-lived wood chip.
type Particle struct {
	X, Y          float64
	VX, VY        float64
	Life          int // remaining frames
	Color         string
	Size          float64
	Rotation      float64
	RotationSpeed float64
}

// FloatingText is a rising label such as "+2 Apples".
type FloatingText struct {
	X, Y  float64
	Text  string
	Life  int
	Color string
	VY    float64
}

// Effects owns every transient particle and text on screen.
type Effects struct {
	particles []Particle
	texts     []FloatingText
	gravity   float64
}

// NewEffects creates an empty engine with the given per-tick gravity.
func NewEffects(gravity float64) *Effects {
	return &Effects{gravity: gravity}
}

// Update advances all entities by one tick and drops the expired ones.
func (e *Effects) Update() {
	alive := e.particles[:0]
	for _, p := range e.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Rotation += p.RotationSpeed
		p.Life--
		p.VY += e.gravity
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	// Clear trailing slots so the backing array does not pin stale values.
	for i := len(alive); i < len(e.particles); i++ {
		e.particles[i] = Particle{}
	}
	e.particles = alive

	texts := e.texts[:0]
	for _, t := range e.texts {
		t.Y += t.VY
		t.Life--
		if t.Life > 0 {
			texts = append(texts, t)
		}
	}
	for i := len(texts); i < len(e.texts); i++ {
		e.texts[i] = FloatingText{}
	}
	e.texts = texts
}

// HitBurst spawns the chips thrown off by a successful hit.
func (e *Effects) HitBurst(x, y float64, count int, rng *rand.Rand) {
	for range count {
		e.particles = append(e.particles, Particle{
			X:             x,
			Y:             y,
			VX:            (rng.Float64() - 0.5) * 10,
			VY:            (rng.Float64() - 0.5) * 10,
			Life:          30 + int(rng.Float64()*20),
			Color:         ColorWood,
			Size:          rng.Float64()*5 + 2,
			Rotation:      rng.Float64() * core.TwoPi,
			RotationSpeed: (rng.Float64() - 0.5) * 0.2,
		})
	}
}

// Explosion spawns the burst of a broken log.
func (e *Effects) Explosion(x, y float64, count int, boss bool, rng *rand.Rand) {
	color := ColorWood
	if boss {
		color = ColorBossWood
	}
	for range count {
		e.particles = append(e.particles, Particle{
			X:             x,
			Y:             y,
			VX:            (rng.Float64() - 0.5) * 20,
			VY:            (rng.Float64() - 0.5) * 20,
			Life:          60,
			Color:         color,
			Size:          rng.Float64()*10 + 5,
			Rotation:      rng.Float64() * core.TwoPi,
			RotationSpeed: (rng.Float64() - 0.5) * 0.5,
		})
	}
}

// AddText spawns a floating label.
func (e *Effects) AddText(t FloatingText) {
	e.texts = append(e.texts, t)
}

// Particles returns a copy of the live particles.
func (e *Effects) Particles() []Particle {
	return append([]Particle(nil), e.particles...)
}

// Texts returns a copy of the live floating texts.
func (e *Effects) Texts() []FloatingText {
	return append([]FloatingText(nil), e.texts...)
}

// Len returns the number of live particles and texts.
func (e *Effects) Len() (particles, texts int) {
	return len(e.particles), len(e.texts)
}

// Clear drops every entity.
func (e *Effects) Clear() {
	e.particles = nil
	e.texts = nil
}
