package audio

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(8000)

// drain streams s to the end and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 256)
	total, peak := 0, 0.0
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never ended")
	return 0, 0
}

func TestEffectsAreFinite(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		sound    Sound
		maxLevel float64
	}{
		{SoundThrow, 0.3},
		{SoundHit, 0.5},
		{SoundWoodBreak, 0.5},
		{SoundFail, 0.5},
		{SoundUnlock, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.sound.String(), func(t *testing.T) {
			n, peak := drain(t, Create(tt.sound, testRate, rng))

			if want := testRate.N(tt.sound.Duration()); n != want {
				t.Errorf("%d samples, want %d", n, want)
			}
			if peak > tt.maxLevel+1e-9 {
				t.Errorf("peak %v exceeds gain %v", peak, tt.maxLevel)
			}
			if peak == 0 {
				t.Error("effect is silent")
			}
		})
	}
}

func TestCreateUnknownSound(t *testing.T) {
	if Create(Sound(99), testRate, rand.New(rand.NewSource(1))) != nil {
		t.Error("unknown sound should yield no streamer")
	}
}

func TestCurves(t *testing.T) {
	d := 100 * time.Millisecond

	lin := LinearRamp(200, 50, d)
	if got := lin(0.05); math.Abs(got-125) > 1e-9 {
		t.Errorf("LinearRamp midpoint = %v, want 125", got)
	}
	if got := lin(1); got != 50 {
		t.Errorf("LinearRamp after end = %v, want 50", got)
	}

	exp := ExpRamp(600, 100, d)
	if got := exp(0); got != 600 {
		t.Errorf("ExpRamp start = %v, want 600", got)
	}
	if got := exp(0.05); math.Abs(got-math.Sqrt(600*100)) > 1e-9 {
		t.Errorf("ExpRamp midpoint = %v, want geometric mean", got)
	}

	steps := Steps(Step{0, 400}, Step{100 * time.Millisecond, 600}, Step{200 * time.Millisecond, 1000})
	for _, tc := range []struct{ t, want float64 }{{0, 400}, {0.099, 400}, {0.1, 600}, {0.3, 1000}} {
		if got := steps(tc.t); got != tc.want {
			t.Errorf("Steps(%v) = %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestWithVolumeSilent(t *testing.T) {
	s := withVolume(Create(SoundHit, testRate, nil), 0)
	_, peak := drain(t, s)
	if peak != 0 {
		t.Errorf("zero volume peak = %v, want 0", peak)
	}
}

// TestSoundManagerGracefulDegradation verifies playing never panics without a device.
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(0, 2)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayThrow()
	sm.PlayHit()
	sm.PlayFail()
	sm.PlayWoodBreak()
	sm.PlayUnlock()
	sm.Cleanup()

	if sm.Initialized() {
		t.Error("manager reports initialized without Initialize")
	}
}

func TestSoundManagerToggle(t *testing.T) {
	sm := NewSoundManager(DefaultSampleRate, 1)
	if !sm.Enabled() {
		t.Fatal("new manager should be enabled")
	}
	sm.SetEnabled(false)
	if sm.Enabled() {
		t.Error("SetEnabled(false) did not disable")
	}
}

// TestSoundManagerInitialization may not find an audio device in CI; that is
// not a failure since the game runs silent.
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(DefaultSampleRate, 0.5)

	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.PlayUnlock()
	sm.Cleanup()
}
