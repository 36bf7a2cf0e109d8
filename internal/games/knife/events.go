package knife

// EventKind identifies something the surrounding application may react to.
type EventKind int

const (
	EventThrow         EventKind = iota // a knife left the hand
	EventScoreDelta                     // Delta points were scored
	EventApplesDelta                    // Delta apples were collected
	EventGameOver                       // the run ended on a miss
	EventLevelComplete                  // Level is the newly started level
)

func (k EventKind) String() string {
	switch k {
	case EventThrow:
		return "throw"
	case EventScoreDelta:
		return "score_delta"
	case EventApplesDelta:
		return "apples_delta"
	case EventGameOver:
		return "game_over"
	case EventLevelComplete:
		return "level_complete"
	default:
		return "unknown"
	}
}

// Event is emitted by the driver during a step.
type Event struct {
	Kind  EventKind
	Delta int
	Level int
	Score int // run score after the event
}

// Audio receives fire-and-forget sound cues. Implementations may do nothing.
type Audio interface {
	PlayThrow()
	PlayHit()
	PlayFail()
	PlayWoodBreak()
	PlayUnlock()
}

// NopAudio is a silent Audio.
type NopAudio struct{}

func (NopAudio) PlayThrow()     {}
func (NopAudio) PlayHit()       {}
func (NopAudio) PlayFail()      {}
func (NopAudio) PlayWoodBreak() {}
func (NopAudio) PlayUnlock()    {}

// KnifeVisual is the selected knife's look. It never affects gameplay.
type KnifeVisual struct {
	Color       string
	BladeWidth  float64
	BladeLength float64
}

// DefaultKnifeVisual is the standard issue knife.
func DefaultKnifeVisual() KnifeVisual {
	return KnifeVisual{Color: "#cbd5e0", BladeWidth: 10, BladeLength: 40}
}
