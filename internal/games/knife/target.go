package knife

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/knife-master/internal/core"
)

// Rotation tuning.
const (
	difficultyPerLevel = 0.05
	normalSpin         = 0.02
	normalNoise        = 0.01
	bossSpin           = 0.08
	bossFlipChance     = 0.01
)

// TargetState is the rotating log and everything stuck in it.
type TargetState struct {
	Rotation        float64 // radians, unbounded
	AngularVelocity float64
	BaseSpeed       float64 // sign flips on boss levels; motion never reads it
	Radius          float64
	IsBoss          bool
	StuckKnives     []float64 // throw order, normalized
	Apples          []float64
}

// NewTarget creates a target from a level layout.
func NewTarget(setup LevelSetup) TargetState {
	t := TargetState{
		BaseSpeed:   setup.BaseSpeed,
		Radius:      setup.Radius,
		IsBoss:      setup.IsBoss,
		StuckKnives: make([]float64, 0, len(setup.PrePlaced)+setup.KnifeCount),
		Apples:      append([]float64(nil), setup.Apples...),
	}
	for _, a := range setup.PrePlaced {
		t.StuckKnives = append(t.StuckKnives, core.Normalize(a))
	}
	return t
}

// Rotate advances the spin by one tick. elapsedMs is the time since the loop
// started and drives the sinusoidal speed terms.
func (t *TargetState) Rotate(elapsedMs float64, level int, rng *rand.Rand) {
	difficulty := 1 + float64(level)*difficultyPerLevel

	var speed float64
	if t.IsBoss {
		speed = math.Sin(elapsedMs*0.003) * bossSpin * difficulty
		if rng.Float64() < bossFlipChance {
			t.BaseSpeed = -t.BaseSpeed
		}
	} else {
		noise := math.Sin(elapsedMs*0.001) * math.Cos(elapsedMs*0.002)
		speed = (normalSpin + noise*normalNoise) * difficulty
	}

	t.AngularVelocity = speed
	t.Rotation += speed
}

// ImpactAngle returns the target-local angle currently facing the thrower.
// Knives always strike the bottom of the log (screen angle π/2).
func (t *TargetState) ImpactAngle() float64 {
	return core.Normalize(math.Pi/2 - t.Rotation)
}

// Stick records a successful throw.
func (t *TargetState) Stick(angle float64) {
	t.StuckKnives = append(t.StuckKnives, core.Normalize(angle))
}

// RemoveApple removes the apple at index i.
func (t *TargetState) RemoveApple(i int) {
	if i < 0 || i >= len(t.Apples) {
		return
	}
	t.Apples = append(t.Apples[:i], t.Apples[i+1:]...)
}
