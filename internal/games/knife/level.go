package knife

import (
	"math/rand"

	"github.com/vovakirdan/knife-master/internal/core"
)

// Level progression constants.
const (
	bossEvery         = 5
	normalRadius      = 100.0
	bossRadius        = 130.0
	normalKnives      = 8
	bossKnives        = 12
	baseSpeed         = 0.02
	speedPerLevel     = 0.002
	prePlacedEvery    = 3
	maxPrePlaced      = 5
	appleSpawnGate    = 0.6 // apples spawn when the roll exceeds this (40%)
	maxApplesPerLevel = 2
)

// LevelSetup is the initial layout of a level.
type LevelSetup struct {
	Level      int
	IsBoss     bool
	KnifeCount int
	Radius     float64
	BaseSpeed  float64
	PrePlaced  []float64 // stuck knife angles the player did not throw
	Apples     []float64
}

// IsBossLevel reports whether every fifth level's boss rules apply.
func IsBossLevel(level int) bool {
	return level%bossEvery == 0
}

// KnifeCount returns the number of knives the player gets on a level.
func KnifeCount(level int) int {
	if IsBossLevel(level) {
		return bossKnives + level/bossEvery
	}
	return normalKnives + level/10
}

// PrePlacedCount returns how many knives are already stuck at level start.
func PrePlacedCount(level int) int {
	if IsBossLevel(level) {
		return 0
	}
	return min(level/prePlacedEvery, maxPrePlaced)
}

// Configure builds the layout for a level. The rng is consumed in a fixed
// order (pre-placed knives, apple roll, apple count, apple angles) so a seeded
// source always yields the same layout.
func Configure(level int, rng *rand.Rand) LevelSetup {
	boss := IsBossLevel(level)
	setup := LevelSetup{
		Level:      level,
		IsBoss:     boss,
		KnifeCount: KnifeCount(level),
		Radius:     normalRadius,
		BaseSpeed:  baseSpeed + float64(level)*speedPerLevel,
	}
	if boss {
		setup.Radius = bossRadius
	}

	n := PrePlacedCount(level)
	setup.PrePlaced = make([]float64, 0, n)
	for range n {
		setup.PrePlaced = append(setup.PrePlaced, rng.Float64()*core.TwoPi)
	}

	// Apple angles are not checked against knives; apples sit on their own ring.
	if rng.Float64() > appleSpawnGate {
		count := rng.Intn(maxApplesPerLevel) + 1
		setup.Apples = make([]float64, 0, count)
		for range count {
			setup.Apples = append(setup.Apples, rng.Float64()*core.TwoPi)
		}
	}

	return setup
}
