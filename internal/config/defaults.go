package config

import (
	_ "embed"
)

//go:embed defaults/knife.yaml
var defaultKnifeYAML []byte

// DefaultKnifeConfig returns the built-in knife tuning.
func DefaultKnifeConfig() KnifeConfig {
	return KnifeConfig{
		Arena: ArenaConfig{
			Width:       480,
			Height:      720,
			ThrowOffset: 150,
		},
		Throw: ThrowConfig{
			Speed:      40,
			MissBounce: 100,
		},
		Collision: CollisionConfig{
			KnifeTolerance: 0.15,
			AppleTolerance: 0.20,
		},
		Shake: ShakeConfig{
			Hit:    5,
			Miss:   20,
			Decay:  0.9,
			Cutoff: 0.5,
		},
		Effects: EffectsConfig{
			Gravity:            0.5,
			HitParticles:       8,
			ExplosionParticles: 30,
			TextLife:           60,
		},
		Rewards: RewardsConfig{
			HitScore:   1,
			AppleBonus: 2,
			LevelBonus: 10,
		},
		Timing: TimingConfig{
			LevelCompleteDelayMs: 200,
		},
	}
}
