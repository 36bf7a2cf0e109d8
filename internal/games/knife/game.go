// Package knife implements the knife-throwing simulation: level layouts, the
// rotating target, the thrown knife, collision resolution, particle effects
// and the loop driver that ties them together. It has no knowledge of
// terminals, storage or sound devices; those are reached through events and
// the Audio interface.
package knife

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/knife-master/internal/config"
	"github.com/vovakirdan/knife-master/internal/core"
)

// Phase is the application screen the driver is in.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
	PhaseShop
	PhaseSettings
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "MENU"
	case PhasePlaying:
		return "PLAYING"
	case PhaseGameOver:
		return "GAME_OVER"
	case PhaseShop:
		return "SHOP"
	case PhaseSettings:
		return "SETTINGS"
	default:
		return "UNKNOWN"
	}
}

// RunState is the per-run progress the surrounding application persists.
type RunState struct {
	Score           int
	Level           int
	Apples          int
	KnivesRemaining int
}

// GameState is the driver state reported after every step.
type GameState struct {
	Phase Phase
	Run   RunState
	Tick  uint64
}

// StepResult is returned by Step and Advance.
type StepResult struct {
	State  GameState
	Events []Event // events raised since the previous step, in order
}

// Game is the loop driver. It is not safe for concurrent use: the host must
// serialize every call onto one goroutine.
type Game struct {
	cfg          config.KnifeConfig
	audio        Audio
	visual       KnifeVisual
	rng          *rand.Rand
	tickInterval time.Duration

	tick    uint64
	elapsed time.Duration // loop clock since Reset
	phase   Phase
	run     RunState

	target     TargetState
	projectile Projectile
	effects    *Effects
	shake      float64
	sched      scheduler
	events     []Event
}

// New creates a game with the given tuning, reset with the default runtime config.
func New(cfg config.KnifeConfig) *Game {
	g := &Game{
		cfg:    cfg,
		audio:  NopAudio{},
		visual: DefaultKnifeVisual(),
	}
	g.Reset(core.DefaultConfig())
	return g
}

// Reset restarts the loop clock and returns to the menu. Apples survive a
// reset because they belong to the player's profile.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tickInterval = rc.TickInterval()
	g.tick = 0
	g.elapsed = 0
	g.sched.cancel()
	g.phase = PhaseMenu
	g.run = RunState{Level: 1, Apples: g.run.Apples}
	g.target = TargetState{Radius: normalRadius}
	g.projectile = Projectile{}
	g.effects = NewEffects(g.cfg.Effects.Gravity)
	g.shake = 0
	g.events = nil
}

// SetAudio installs the sound collaborator. nil silences the game.
func (g *Game) SetAudio(a Audio) {
	if a == nil {
		a = NopAudio{}
	}
	g.audio = a
}

// SetKnife selects the knife drawn by the renderer.
func (g *Game) SetKnife(v KnifeVisual) {
	g.visual = v
}

// SetApples seeds the apple balance from the player's profile.
func (g *Game) SetApples(n int) {
	g.run.Apples = n
}

// Start begins a fresh run at level: score is zeroed and the level laid out.
func (g *Game) Start(level int) {
	level = max(level, 1)
	g.sched.cancel()
	g.run.Score = 0
	g.run.Level = level
	g.configure(level)
	g.phase = PhasePlaying
}

// SetPhase moves to another screen. Leaving PLAYING cancels every pending
// deferred event so nothing mutates a run that is no longer on screen.
// Returning to PLAYING with no knives left lays the current level out again.
func (g *Game) SetPhase(p Phase) {
	if g.phase == PhasePlaying && p != PhasePlaying {
		g.sched.cancel()
	}
	if g.phase != PhasePlaying && p == PhasePlaying && g.run.KnivesRemaining == 0 {
		g.configure(max(g.run.Level, 1))
	}
	g.phase = p
}

// Phase returns the current screen.
func (g *Game) Phase() Phase {
	return g.phase
}

// Run returns the current run progress.
func (g *Game) Run() RunState {
	return g.run
}

// State returns the current driver state.
func (g *Game) State() GameState {
	return GameState{Phase: g.phase, Run: g.run, Tick: g.tick}
}

// Close cancels pending deferred events. The game must not be stepped again
// until Reset.
func (g *Game) Close() {
	g.sched.cancel()
	g.phase = PhaseMenu
}

// Elapsed returns the loop clock since Reset.
func (g *Game) Elapsed() time.Duration {
	return g.elapsed
}

// LevelCompletePending reports whether the level-complete event is queued.
func (g *Game) LevelCompletePending() bool {
	return g.sched.pending(scheduleLevelComplete)
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) StepResult {
	return g.Advance(in, g.tickInterval)
}

// Advance advances the simulation by one tick covering dt of wall time.
// Motion is per tick; only the rotation noise and deferred events follow
// the wall clock.
func (g *Game) Advance(in core.InputFrame, dt time.Duration) StepResult {
	g.tick++
	g.elapsed += dt

	if g.phase == PhasePlaying {
		for _, ev := range g.sched.popDue(g.elapsed) {
			g.fire(ev)
		}
		if in.Has(core.ActionThrow) {
			g.RequestThrow()
		}
		g.target.Rotate(float64(g.elapsed)/float64(time.Millisecond), g.run.Level, g.rng)
		g.advanceProjectile()
	}

	g.decayShake()
	g.effects.Update()

	events := g.events
	g.events = nil
	return StepResult{State: g.State(), Events: events}
}

func (g *Game) fire(ev scheduledEvent) {
	switch ev.kind {
	case scheduleLevelComplete:
		g.completeLevel()
	}
}

// completeLevel breaks the log and lays out the next level.
func (g *Game) completeLevel() {
	g.audio.PlayWoodBreak()
	g.effects.Explosion(g.centerX(), g.centerY(), g.cfg.Effects.ExplosionParticles, g.target.IsBoss, g.rng)

	g.run.Level++
	g.run.Score += g.cfg.Rewards.LevelBonus
	g.emit(Event{Kind: EventLevelComplete, Delta: g.cfg.Rewards.LevelBonus, Level: g.run.Level, Score: g.run.Score})

	g.configure(g.run.Level)
}

// configure lays out level and hands the player its knives.
func (g *Game) configure(level int) {
	setup := Configure(level, g.rng)
	g.target = NewTarget(setup)
	g.run.KnivesRemaining = setup.KnifeCount
	g.projectile = Projectile{}
}

func (g *Game) decayShake() {
	if g.shake > 0 {
		g.shake *= g.cfg.Shake.Decay
	}
	if g.shake < g.cfg.Shake.Cutoff {
		g.shake = 0
	}
}

func (g *Game) emit(ev Event) {
	g.events = append(g.events, ev)
}

func (g *Game) tolerances() Tolerances {
	return Tolerances{Knife: g.cfg.Collision.KnifeTolerance, Apple: g.cfg.Collision.AppleTolerance}
}

func (g *Game) centerX() float64 { return g.cfg.Arena.Width / 2 }
func (g *Game) centerY() float64 { return g.cfg.Arena.Height / 2 }
func (g *Game) readyY() float64  { return g.cfg.Arena.Height - g.cfg.Arena.ThrowOffset }
