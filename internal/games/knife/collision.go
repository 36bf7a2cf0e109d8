package knife

import "github.com/vovakirdan/knife-master/internal/core"

// Outcome is the result of a knife reaching the target.
type Outcome int

const (
	OutcomeHit  Outcome = iota // knife sticks in the wood
	OutcomeMiss                // knife struck another knife
)

func (o Outcome) String() string {
	if o == OutcomeMiss {
		return "miss"
	}
	return "hit"
}

// Tolerances are the angular collision thresholds in radians.
// Apples are deliberately easier to hit than knives are to avoid.
type Tolerances struct {
	Knife float64
	Apple float64
}

// DefaultTolerances returns the arcade thresholds.
func DefaultTolerances() Tolerances {
	return Tolerances{Knife: 0.15, Apple: 0.20}
}

// Resolution describes what a knife landing at Impact did.
type Resolution struct {
	Outcome    Outcome
	Impact     float64
	AppleIndex int // -1 when no apple was collected
}

// CollectedApple reports whether the hit took an apple.
func (r Resolution) CollectedApple() bool {
	return r.Outcome == OutcomeHit && r.AppleIndex >= 0
}

// Resolve decides the outcome of a knife landing at impact. It never mutates
// its inputs. A miss ends resolution before apples are considered; on a hit
// only the first apple within tolerance is reported.
func Resolve(impact float64, stuck, apples []float64, tol Tolerances) Resolution {
	res := Resolution{Outcome: OutcomeHit, Impact: impact, AppleIndex: -1}

	for _, a := range stuck {
		if core.WithinTolerance(a, impact, tol.Knife) {
			res.Outcome = OutcomeMiss
			return res
		}
	}

	for i, a := range apples {
		if core.WithinTolerance(a, impact, tol.Apple) {
			res.AppleIndex = i
			break
		}
	}
	return res
}
