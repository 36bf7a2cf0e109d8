package knife

import (
	"math"
	"math/rand"
	"testing"
)

// seedWhere returns the first seed whose first Float64 satisfies ok.
func seedWhere(t *testing.T, ok func(float64) bool) int64 {
	t.Helper()
	for seed := int64(1); seed < 100000; seed++ {
		if ok(rand.New(rand.NewSource(seed)).Float64()) {
			return seed
		}
	}
	t.Fatal("no matching seed")
	return 0
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name      string
		level     int
		boss      bool
		elapsedMs float64
		want      float64
	}{
		{name: "normal at start", level: 1, elapsedMs: 0, want: 0.02 * 1.05},
		{name: "normal with noise", level: 1, elapsedMs: 500,
			want: (0.02 + math.Sin(0.5)*math.Cos(1.0)*0.01) * 1.05},
		{name: "normal level 12", level: 12, elapsedMs: 1234,
			want: (0.02 + math.Sin(1.234)*math.Cos(2.468)*0.01) * 1.6},
		{name: "boss at start", level: 5, boss: true, elapsedMs: 0, want: 0},
		{name: "boss swing", level: 5, boss: true, elapsedMs: 500,
			want: math.Sin(1.5) * 0.08 * 1.25},
		{name: "boss reversed", level: 10, boss: true, elapsedMs: 1500,
			want: math.Sin(4.5) * 0.08 * 1.5},
	}

	noFlip := seedWhere(t, func(f float64) bool { return f >= bossFlipChance })
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := TargetState{Rotation: 1, BaseSpeed: 0.03, IsBoss: tt.boss}
			target.Rotate(tt.elapsedMs, tt.level, rand.New(rand.NewSource(noFlip)))

			if math.Abs(target.AngularVelocity-tt.want) > 1e-12 {
				t.Errorf("AngularVelocity = %v, want %v", target.AngularVelocity, tt.want)
			}
			if math.Abs(target.Rotation-(1+tt.want)) > 1e-12 {
				t.Errorf("Rotation = %v, want %v", target.Rotation, 1+tt.want)
			}
			if target.BaseSpeed != 0.03 {
				t.Errorf("BaseSpeed = %v, want unchanged", target.BaseSpeed)
			}
		})
	}
}

func TestRotateNormalIgnoresRNG(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	target := TargetState{BaseSpeed: 0.03}
	for range 1000 {
		target.Rotate(16, 3, rng)
	}
	if target.BaseSpeed != 0.03 {
		t.Errorf("BaseSpeed = %v on a normal level", target.BaseSpeed)
	}

	fresh := rand.New(rand.NewSource(7))
	if rng.Float64() != fresh.Float64() {
		t.Error("normal rotation consumed random numbers")
	}
}

func TestBossFlipKeepsMotion(t *testing.T) {
	flip := seedWhere(t, func(f float64) bool { return f < bossFlipChance })
	noFlip := seedWhere(t, func(f float64) bool { return f >= bossFlipChance })

	flipped := TargetState{BaseSpeed: 0.03, IsBoss: true}
	flipped.Rotate(800, 5, rand.New(rand.NewSource(flip)))
	steady := TargetState{BaseSpeed: 0.03, IsBoss: true}
	steady.Rotate(800, 5, rand.New(rand.NewSource(noFlip)))

	if flipped.BaseSpeed != -0.03 {
		t.Errorf("BaseSpeed = %v after a flip, want -0.03", flipped.BaseSpeed)
	}
	if steady.BaseSpeed != 0.03 {
		t.Errorf("BaseSpeed = %v without a flip, want 0.03", steady.BaseSpeed)
	}
	if flipped.AngularVelocity != steady.AngularVelocity || flipped.Rotation != steady.Rotation {
		t.Errorf("flip changed motion: %v/%v vs %v/%v",
			flipped.AngularVelocity, flipped.Rotation, steady.AngularVelocity, steady.Rotation)
	}
}
