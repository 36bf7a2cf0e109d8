package knife

import (
	"math/rand"
	"testing"
)

func TestEffectsParticleExpiry(t *testing.T) {
	e := NewEffects(0.5)
	e.HitBurst(10, 10, 8, rand.New(rand.NewSource(3)))

	if n, _ := e.Len(); n != 8 {
		t.Fatalf("HitBurst spawned %d particles, want 8", n)
	}
	for _, p := range e.Particles() {
		if p.Life < 30 || p.Life >= 50 {
			t.Errorf("particle life %d outside [30, 50)", p.Life)
		}
		if p.Color != ColorWood {
			t.Errorf("particle color %q, want %q", p.Color, ColorWood)
		}
	}

	// Every hit particle is gone after 50 ticks.
	for range 50 {
		e.Update()
	}
	if n, _ := e.Len(); n != 0 {
		t.Errorf("%d particles alive after 50 ticks", n)
	}
}

func TestEffectsGravity(t *testing.T) {
	e := NewEffects(0.5)
	e.particles = []Particle{{X: 0, Y: 0, VX: 1, VY: -2, Life: 10}}

	e.Update()
	p := e.Particles()[0]
	if p.X != 1 || p.Y != -2 {
		t.Errorf("position after one tick = (%v,%v), want (1,-2)", p.X, p.Y)
	}
	if p.VY != -1.5 {
		t.Errorf("VY after one tick = %v, want -1.5", p.VY)
	}
	if p.Life != 9 {
		t.Errorf("Life = %d, want 9", p.Life)
	}
}

func TestEffectsExplosionColor(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	e := NewEffects(0.5)
	e.Explosion(0, 0, 30, true, rng)
	for _, p := range e.Particles() {
		if p.Color != ColorBossWood || p.Life != 60 {
			t.Fatalf("boss explosion particle = %+v", p)
		}
	}

	e.Clear()
	e.Explosion(0, 0, 30, false, rng)
	if n, _ := e.Len(); n != 30 {
		t.Fatalf("Explosion spawned %d particles, want 30", n)
	}
	if e.Particles()[0].Color != ColorWood {
		t.Errorf("normal explosion color = %q", e.Particles()[0].Color)
	}
}

func TestFloatingTextRisesAndExpires(t *testing.T) {
	e := NewEffects(0.5)
	e.AddText(FloatingText{X: 5, Y: 100, Text: "+2 Apples", Life: 60, VY: -2})

	for range 59 {
		e.Update()
	}
	texts := e.Texts()
	if len(texts) != 1 {
		t.Fatalf("text expired early")
	}
	if texts[0].Y != 100-2*59 {
		t.Errorf("text Y = %v, want %v", texts[0].Y, 100-2*59)
	}

	e.Update()
	if _, n := e.Len(); n != 0 {
		t.Error("text still alive after its life ran out")
	}
}

func TestEffectsAccessorsCopy(t *testing.T) {
	e := NewEffects(0.5)
	e.AddText(FloatingText{Text: "x", Life: 5})

	texts := e.Texts()
	texts[0].Text = "changed"

	if e.Texts()[0].Text != "x" {
		t.Error("Texts returned the internal slice")
	}
}
