package knife

import (
	"fmt"
	"time"
)

// Projectile is the single knife in flight.
type Projectile struct {
	Active bool
	Y      float64 // world-space height of the knife tip
}

// launch puts the knife in flight from y.
func (p *Projectile) launch(y float64) {
	p.Active = true
	p.Y = y
}

// advance moves the knife speed units toward the target and reports whether
// it reached hitY this tick.
func (p *Projectile) advance(speed, hitY float64) bool {
	if !p.Active {
		return false
	}
	p.Y -= speed
	return p.Y <= hitY
}

// RequestThrow launches a knife. It is a silent no-op unless the game is
// playing, no knife is in flight and knives remain, so repeated requests
// within one tick throw once. Reports whether a knife was thrown.
func (g *Game) RequestThrow() bool {
	if g.phase != PhasePlaying || g.projectile.Active || g.run.KnivesRemaining <= 0 {
		return false
	}

	g.audio.PlayThrow()
	g.projectile.launch(g.readyY())
	g.run.KnivesRemaining--
	g.emit(Event{Kind: EventThrow, Level: g.run.Level, Score: g.run.Score})
	return true
}

// advanceProjectile moves the knife in flight and resolves its landing.
func (g *Game) advanceProjectile() {
	hitY := g.centerY() + g.target.Radius
	if g.projectile.advance(g.cfg.Throw.Speed, hitY) {
		g.land()
	}
}

// land resolves a knife reaching the target at the current rotation.
func (g *Game) land() {
	res := Resolve(g.target.ImpactAngle(), g.target.StuckKnives, g.target.Apples, g.tolerances())

	if res.Outcome == OutcomeMiss {
		g.shake = g.cfg.Shake.Miss
		g.audio.PlayFail()
		g.projectile.Y += g.cfg.Throw.MissBounce
		g.projectile.Active = false
		g.SetPhase(PhaseGameOver)
		g.emit(Event{Kind: EventGameOver, Level: g.run.Level, Score: g.run.Score})
		return
	}

	g.shake = g.cfg.Shake.Hit
	g.audio.PlayHit()
	g.target.Stick(res.Impact)
	g.projectile.Active = false
	g.run.Score += g.cfg.Rewards.HitScore
	g.emit(Event{Kind: EventScoreDelta, Delta: g.cfg.Rewards.HitScore, Level: g.run.Level, Score: g.run.Score})

	impactX, impactY := g.centerX(), g.centerY()+g.target.Radius

	if res.CollectedApple() {
		g.target.RemoveApple(res.AppleIndex)
		g.run.Apples += g.cfg.Rewards.AppleBonus
		g.emit(Event{Kind: EventApplesDelta, Delta: g.cfg.Rewards.AppleBonus, Level: g.run.Level, Score: g.run.Score})
		g.effects.AddText(FloatingText{
			X:     impactX,
			Y:     impactY,
			Text:  fmt.Sprintf("+%d Apples", g.cfg.Rewards.AppleBonus),
			Life:  g.cfg.Effects.TextLife,
			Color: ColorAppleText,
			VY:    -2,
		})
		g.audio.PlayUnlock()
	}

	g.effects.HitBurst(impactX, impactY, g.cfg.Effects.HitParticles, g.rng)

	if g.run.KnivesRemaining == 0 {
		delay := time.Duration(g.cfg.Timing.LevelCompleteDelayMs) * time.Millisecond
		g.sched.after(g.elapsed, delay, scheduleLevelComplete)
	}
}
