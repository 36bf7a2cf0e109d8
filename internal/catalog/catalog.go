// Package catalog lists the knives a player can own and implements the shop
// purchase rules.
package catalog

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/knife-master/internal/games/knife"
	"github.com/vovakirdan/knife-master/internal/profile"
)

// ErrUnknownKnife is returned for ids that are not in the catalog.
var ErrUnknownKnife = errors.New("catalog: unknown knife")

// Knife is a purchasable skin. It changes how the knife looks, never how it
// plays.
type Knife struct {
	ID          string
	Name        string
	Color       string
	Cost        int
	BladeWidth  float64
	BladeLength float64
}

// Visual returns the look handed to the renderer.
func (k Knife) Visual() knife.KnifeVisual {
	return knife.KnifeVisual{Color: k.Color, BladeWidth: k.BladeWidth, BladeLength: k.BladeLength}
}

var knives = []Knife{
	{ID: profile.DefaultKnifeID, Name: "Standard Issue", Color: "#cbd5e0", Cost: 0, BladeWidth: 10, BladeLength: 40},
	{ID: "knife_gold", Name: "Midas Touch", Color: "#ecc94b", Cost: 50, BladeWidth: 12, BladeLength: 45},
	{ID: "knife_blood", Name: "Crimson Edge", Color: "#e53e3e", Cost: 100, BladeWidth: 8, BladeLength: 50},
	{ID: "knife_void", Name: "Void Walker", Color: "#805ad5", Cost: 200, BladeWidth: 14, BladeLength: 55},
	{ID: "knife_neon", Name: "Cyber Blade", Color: "#0bc5ea", Cost: 300, BladeWidth: 6, BladeLength: 40},
	{ID: "knife_emerald", Name: "Forest Keeper", Color: "#48bb78", Cost: 500, BladeWidth: 16, BladeLength: 35},
	{ID: "knife_obsidian", Name: "Obsidian Shard", Color: "#1a202c", Cost: 1000, BladeWidth: 20, BladeLength: 60},
}

// All returns every knife in shop order.
func All() []Knife {
	return append([]Knife(nil), knives...)
}

// Lookup returns the knife with id.
func Lookup(id string) (Knife, bool) {
	for _, k := range knives {
		if k.ID == id {
			return k, true
		}
	}
	return Knife{}, false
}

// Find returns the knife with id, or the default knife when id is unknown.
func Find(id string) Knife {
	if k, ok := Lookup(id); ok {
		return k
	}
	return knives[0]
}

// Result is the outcome of a shop action.
type Result int

const (
	ResultSelected     Result = iota // already owned, now equipped
	ResultPurchased                  // bought and equipped
	ResultInsufficient               // not enough apples
)

func (r Result) String() string {
	switch r {
	case ResultSelected:
		return "selected"
	case ResultPurchased:
		return "purchased"
	case ResultInsufficient:
		return "insufficient"
	default:
		return "unknown"
	}
}

// Buy applies the shop action for id to p: an owned knife is equipped, an
// affordable one is paid for in apples, unlocked and equipped.
func Buy(p *profile.Profile, id string) (Result, error) {
	k, ok := Lookup(id)
	if !ok {
		return ResultInsufficient, fmt.Errorf("%w: %q", ErrUnknownKnife, id)
	}

	if p.IsUnlocked(k.ID) {
		p.SelectedKnifeID = k.ID
		return ResultSelected, nil
	}
	if p.Apples < k.Cost {
		return ResultInsufficient, nil
	}

	p.Apples -= k.Cost
	p.Unlock(k.ID)
	p.SelectedKnifeID = k.ID
	return ResultPurchased, nil
}
