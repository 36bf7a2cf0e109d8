// Package config provides YAML-based tuning for the knife simulation and
// environment-driven runtime settings.
package config

// KnifeConfig contains all tunable parameters of the knife simulation.
// The zero value is not usable; start from DefaultKnifeConfig.
type KnifeConfig struct {
	Arena     ArenaConfig     `yaml:"arena"`
	Throw     ThrowConfig     `yaml:"throw"`
	Collision CollisionConfig `yaml:"collision"`
	Shake     ShakeConfig     `yaml:"shake"`
	Effects   EffectsConfig   `yaml:"effects"`
	Rewards   RewardsConfig   `yaml:"rewards"`
	Timing    TimingConfig    `yaml:"timing"`
}

// ArenaConfig defines the world-space playfield. The target sits at its center.
type ArenaConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	ThrowOffset float64 `yaml:"throw_offset"` // distance of the ready knife from the bottom edge
}

// ThrowConfig defines projectile motion.
type ThrowConfig struct {
	Speed      float64 `yaml:"speed"`       // world units per tick
	MissBounce float64 `yaml:"miss_bounce"` // knock-back applied on a miss
}

// CollisionConfig defines angular tolerances in radians.
type CollisionConfig struct {
	KnifeTolerance float64 `yaml:"knife_tolerance"`
	AppleTolerance float64 `yaml:"apple_tolerance"`
}

// ShakeConfig defines screen shake intensity and decay.
type ShakeConfig struct {
	Hit    float64 `yaml:"hit"`
	Miss   float64 `yaml:"miss"`
	Decay  float64 `yaml:"decay"`
	Cutoff float64 `yaml:"cutoff"`
}

// EffectsConfig defines particle bursts.
type EffectsConfig struct {
	Gravity            float64 `yaml:"gravity"`
	HitParticles       int     `yaml:"hit_particles"`
	ExplosionParticles int     `yaml:"explosion_particles"`
	TextLife           int     `yaml:"text_life"`
}

// RewardsConfig defines score and apple payouts.
type RewardsConfig struct {
	HitScore   int `yaml:"hit_score"`
	AppleBonus int `yaml:"apple_bonus"`
	LevelBonus int `yaml:"level_bonus"`
}

// TimingConfig defines deferred events.
type TimingConfig struct {
	LevelCompleteDelayMs int `yaml:"level_complete_delay_ms"`
}
