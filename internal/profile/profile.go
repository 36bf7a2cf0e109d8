// Package profile holds the persisted player record and its repair rules.
package profile

import (
	"fmt"
	"slices"

	json "github.com/goccy/go-json"
)

// StorageKey is the record key of the local player.
const StorageKey = "SHINWAR_KNIFE_MASTER_V1"

// DefaultKnifeID is the knife every player owns.
const DefaultKnifeID = "knife_default"

// Language is a UI language.
type Language string

const (
	English Language = "English"
	Urdu    Language = "Urdu"
	Pashto  Language = "Pashto"
)

var languages = []Language{English, Urdu, Pashto}

// Languages returns the supported languages in cycle order.
func Languages() []Language {
	return slices.Clone(languages)
}

// Next returns the language after l: English → Urdu → Pashto → English.
func (l Language) Next() Language {
	i := slices.Index(languages, l)
	return languages[(i+1)%len(languages)]
}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return slices.Contains(languages, l)
}

// Tag returns the BCP 47 tag for l.
func (l Language) Tag() string {
	switch l {
	case Urdu:
		return "ur"
	case Pashto:
		return "ps"
	default:
		return "en"
	}
}

// Profile is the player record that survives between sessions.
type Profile struct {
	HighScore       int      `json:"highScore"`
	Apples          int      `json:"apples"`
	UnlockedKnives  []string `json:"unlockedKnives"`
	SelectedKnifeID string   `json:"selectedKnifeId"`
	SoundEnabled    bool     `json:"soundEnabled"`
	Language        Language `json:"language"`
}

// Defaults returns the record of a first-time player.
func Defaults() Profile {
	return Profile{
		UnlockedKnives:  []string{DefaultKnifeID},
		SelectedKnifeID: DefaultKnifeID,
		SoundEnabled:    true,
		Language:        English,
	}
}

// KeyFor returns the record key for a named player. An empty name is the
// local player.
func KeyFor(user string) string {
	if user == "" {
		return StorageKey
	}
	return StorageKey + ":" + user
}

// Normalize repairs a record in place.
func (p *Profile) Normalize() {
	p.HighScore = max(p.HighScore, 0)
	p.Apples = max(p.Apples, 0)
	if !p.Language.Valid() {
		p.Language = English
	}

	unlocked := []string{DefaultKnifeID}
	for _, id := range p.UnlockedKnives {
		if id != "" && !slices.Contains(unlocked, id) {
			unlocked = append(unlocked, id)
		}
	}
	p.UnlockedKnives = unlocked

	if !p.IsUnlocked(p.SelectedKnifeID) {
		p.SelectedKnifeID = DefaultKnifeID
	}
}

// IsUnlocked reports whether the player owns knife id.
func (p *Profile) IsUnlocked(id string) bool {
	return slices.Contains(p.UnlockedKnives, id)
}

// Unlock adds id to the owned knives.
func (p *Profile) Unlock(id string) {
	if !p.IsUnlocked(id) {
		p.UnlockedKnives = append(p.UnlockedKnives, id)
	}
}

// RecordScore raises the high score and reports whether score beat it.
func (p *Profile) RecordScore(score int) bool {
	if score > p.HighScore {
		p.HighScore = score
		return true
	}
	return false
}

// Clone returns a deep copy.
func (p Profile) Clone() Profile {
	p.UnlockedKnives = slices.Clone(p.UnlockedKnives)
	return p
}

// Marshal encodes the record.
func Marshal(p Profile) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("profile: cannot encode: %w", err)
	}
	return data, nil
}

// Unmarshal decodes data over the defaults, so fields missing from older
// records keep their default values, then repairs the result. On a decode
// error the defaults are returned together with the error.
func Unmarshal(data []byte) (Profile, error) {
	p := Defaults()
	if err := json.Unmarshal(data, &p); err != nil {
		return Defaults(), fmt.Errorf("profile: cannot decode: %w", err)
	}
	p.Normalize()
	return p, nil
}
