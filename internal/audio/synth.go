// Package audio synthesizes the game's sound effects with beep. Every effect
// is a short finite streamer mixed onto a single speaker stream.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveSawtooth
	WaveNoise
)

// Curve is a parameter that changes over the life of a voice. t is seconds
// since the voice started.
type Curve func(t float64) float64

// Const holds v for the whole voice.
func Const(v float64) Curve {
	return func(float64) float64 { return v }
}

// LinearRamp moves from a to b over d, then holds b.
func LinearRamp(a, b float64, d time.Duration) Curve {
	span := d.Seconds()
	return func(t float64) float64 {
		if t >= span {
			return b
		}
		return a + (b-a)*t/span
	}
}

// ExpRamp moves geometrically from a to b over d, then holds b. Both ends
// must be positive.
func ExpRamp(a, b float64, d time.Duration) Curve {
	span := d.Seconds()
	return func(t float64) float64 {
		if t >= span {
			return b
		}
		return a * math.Pow(b/a, t/span)
	}
}

// Step is one segment of a Steps curve.
type Step struct {
	At    time.Duration
	Value float64
}

// Steps jumps to each value at its time. Steps must be sorted by At and the
// first one should start at zero.
func Steps(steps ...Step) Curve {
	return func(t float64) float64 {
		v := 0.0
		for _, s := range steps {
			if t < s.At.Seconds() {
				break
			}
			v = s.Value
		}
		return v
	}
}

// voice is a single oscillator with frequency and gain curves. It ends after
// duration samples.
type voice struct {
	wave     Wave
	freq     Curve
	gain     Curve
	rate     beep.SampleRate
	duration int
	pos      int
	phase    float64
	rng      *rand.Rand
}

func newVoice(wave Wave, freq, gain Curve, d time.Duration, rate beep.SampleRate, rng *rand.Rand) *voice {
	return &voice{
		wave:     wave,
		freq:     freq,
		gain:     gain,
		rate:     rate,
		duration: rate.N(d),
		rng:      rng,
	}
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if v.pos >= v.duration {
			return i, i > 0
		}
		t := float64(v.pos) / float64(v.rate)

		var val float64
		switch v.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * v.phase)
		case WaveSquare:
			val = 1
			if v.phase >= 0.5 {
				val = -1
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(v.phase-0.5)
		case WaveSawtooth:
			val = 2 * (v.phase - 0.5)
		case WaveNoise:
			val = v.rng.Float64()*2 - 1
		}
		val *= v.gain(t)

		samples[i][0] = val
		samples[i][1] = val

		v.phase += v.freq(t) / float64(v.rate)
		v.phase -= math.Floor(v.phase)
		v.pos++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// Sound identifies one of the game's effects.
type Sound int

const (
	SoundThrow Sound = iota
	SoundHit
	SoundWoodBreak
	SoundFail
	SoundUnlock
)

func (s Sound) String() string {
	switch s {
	case SoundThrow:
		return "throw"
	case SoundHit:
		return "hit"
	case SoundWoodBreak:
		return "wood_break"
	case SoundFail:
		return "fail"
	case SoundUnlock:
		return "unlock"
	default:
		return "unknown"
	}
}

// Effect durations.
const (
	throwDuration     = 100 * time.Millisecond
	hitDuration       = 50 * time.Millisecond
	woodBreakDuration = 500 * time.Millisecond
	woodBreakFade     = 300 * time.Millisecond
	failDuration      = 300 * time.Millisecond
	unlockDuration    = 400 * time.Millisecond
)

// Duration returns how long the effect plays.
func (s Sound) Duration() time.Duration {
	switch s {
	case SoundThrow:
		return throwDuration
	case SoundHit:
		return hitDuration
	case SoundWoodBreak:
		return woodBreakDuration
	case SoundFail:
		return failDuration
	case SoundUnlock:
		return unlockDuration
	default:
		return 0
	}
}

// Create builds a fresh streamer for the effect. rng feeds the noise voices.
func Create(s Sound, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	switch s {
	case SoundThrow:
		// Triangle swoosh falling from 600 to 100 Hz.
		return newVoice(WaveTriangle,
			ExpRamp(600, 100, throwDuration),
			ExpRamp(0.3, 0.01, throwDuration),
			throwDuration, rate, rng)
	case SoundHit:
		return newVoice(WaveSquare,
			ExpRamp(150, 0.01, hitDuration),
			ExpRamp(0.5, 0.01, hitDuration),
			hitDuration, rate, rng)
	case SoundWoodBreak:
		return newVoice(WaveNoise,
			Const(0),
			ExpRamp(0.5, 0.01, woodBreakFade),
			woodBreakDuration, rate, rng)
	case SoundFail:
		return newVoice(WaveSawtooth,
			LinearRamp(200, 50, failDuration),
			LinearRamp(0.5, 0.01, failDuration),
			failDuration, rate, rng)
	case SoundUnlock:
		// Rising three-note chime.
		return newVoice(WaveSine,
			Steps(Step{0, 400}, Step{100 * time.Millisecond, 600}, Step{200 * time.Millisecond, 1000}),
			LinearRamp(0.3, 0, unlockDuration),
			unlockDuration, rate, rng)
	default:
		return nil
	}
}

// withVolume scales a streamer linearly. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
