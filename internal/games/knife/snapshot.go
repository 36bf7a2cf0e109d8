package knife

import "math"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// Mutating it never affects the game.
type Snapshot struct {
	Tick                 uint64
	Phase                Phase
	Level                int
	Score                int
	Apples               int
	KnivesRemaining      int
	Rotation             float64
	Radius               float64
	IsBoss               bool
	CenterX, CenterY     float64
	ArenaW, ArenaH       float64
	ReadyY               float64 // where the next knife waits
	StuckKnives          []float64
	AppleAngles          []float64
	Projectile           Projectile
	Particles            []Particle
	Texts                []FloatingText
	Shake                float64
	Knife                KnifeVisual
	LevelCompletePending bool
}

// Snapshot returns the current frame.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:                 g.tick,
		Phase:                g.phase,
		Level:                g.run.Level,
		Score:                g.run.Score,
		Apples:               g.run.Apples,
		KnivesRemaining:      g.run.KnivesRemaining,
		Rotation:             g.target.Rotation,
		Radius:               g.target.Radius,
		IsBoss:               g.target.IsBoss,
		CenterX:              g.centerX(),
		CenterY:              g.centerY(),
		ArenaW:               g.cfg.Arena.Width,
		ArenaH:               g.cfg.Arena.Height,
		ReadyY:               g.readyY(),
		StuckKnives:          append([]float64(nil), g.target.StuckKnives...),
		AppleAngles:          append([]float64(nil), g.target.Apples...),
		Projectile:           g.projectile,
		Particles:            g.effects.Particles(),
		Texts:                g.effects.Texts(),
		Shake:                g.shake,
		Knife:                g.visual,
		LevelCompletePending: g.LevelCompletePending(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }

	mix(uint64(snap.Phase))           //#nosec G115 -- hash computation
	mix(uint64(snap.Level))           //#nosec G115 -- hash computation
	mix(uint64(snap.Score))           //#nosec G115 -- hash computation
	mix(uint64(snap.Apples))          //#nosec G115 -- hash computation
	mix(uint64(snap.KnivesRemaining)) //#nosec G115 -- hash computation
	mixF(snap.Rotation)
	mixF(snap.Radius)
	mixF(snap.Shake)

	for _, a := range snap.StuckKnives {
		mixF(a)
	}
	for _, a := range snap.AppleAngles {
		mixF(a)
	}
	if snap.Projectile.Active {
		mixF(snap.Projectile.Y)
	}
	for _, p := range snap.Particles {
		mixF(p.X)
		mixF(p.Y)
		mix(uint64(p.Life)) //#nosec G115 -- hash computation
	}
	for _, t := range snap.Texts {
		mixF(t.Y)
		mix(uint64(t.Life)) //#nosec G115 -- hash computation
	}
	return h
}
