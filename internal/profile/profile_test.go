package profile

import (
	"reflect"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	p := Defaults()

	if p.HighScore != 0 || p.Apples != 0 {
		t.Errorf("defaults = %+v, want zero scores", p)
	}
	if !reflect.DeepEqual(p.UnlockedKnives, []string{DefaultKnifeID}) {
		t.Errorf("UnlockedKnives = %v", p.UnlockedKnives)
	}
	if p.SelectedKnifeID != DefaultKnifeID || !p.SoundEnabled || p.Language != English {
		t.Errorf("defaults = %+v", p)
	}
}

func TestLanguageCycle(t *testing.T) {
	l := English
	want := []Language{Urdu, Pashto, English, Urdu}
	for _, w := range want {
		l = l.Next()
		if l != w {
			t.Fatalf("Next() = %v, want %v", l, w)
		}
	}

	if Language("KLINGON").Valid() {
		t.Error("unknown language reported valid")
	}
	if got := Pashto.Tag(); got != "ps" {
		t.Errorf("Pashto.Tag() = %q", got)
	}
}

func TestUnmarshalMergesOverDefaults(t *testing.T) {
	p, err := Unmarshal([]byte(`{"apples": 120, "unknownField": true}`))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if p.Apples != 120 {
		t.Errorf("Apples = %d, want 120", p.Apples)
	}
	if !p.SoundEnabled || p.Language != English || p.SelectedKnifeID != DefaultKnifeID {
		t.Errorf("missing fields did not keep defaults: %+v", p)
	}
}

func TestUnmarshalRepairs(t *testing.T) {
	data := `{
		"highScore": -4,
		"unlockedKnives": ["knife_gold", "knife_gold", ""],
		"selectedKnifeId": "knife_void",
		"soundEnabled": false,
		"language": "KLINGON"
	}`
	p, err := Unmarshal([]byte(data))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if p.HighScore != 0 {
		t.Errorf("HighScore = %d, want clamped to 0", p.HighScore)
	}
	if !reflect.DeepEqual(p.UnlockedKnives, []string{DefaultKnifeID, "knife_gold"}) {
		t.Errorf("UnlockedKnives = %v", p.UnlockedKnives)
	}
	if p.SelectedKnifeID != DefaultKnifeID {
		t.Errorf("selected locked knife kept: %q", p.SelectedKnifeID)
	}
	if p.SoundEnabled {
		t.Error("stored soundEnabled=false was overwritten")
	}
	if p.Language != English {
		t.Errorf("Language = %q, want fallback to English", p.Language)
	}
}

func TestUnmarshalCorrupt(t *testing.T) {
	p, err := Unmarshal([]byte(`{not json`))
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !strings.Contains(err.Error(), "profile: cannot decode") {
		t.Errorf("error = %v", err)
	}
	if !reflect.DeepEqual(p, Defaults()) {
		t.Errorf("corrupt record should yield defaults, got %+v", p)
	}
}

func TestMarshalRoundTripKeepsFieldNames(t *testing.T) {
	p := Defaults()
	p.Unlock("knife_neon")
	p.SelectedKnifeID = "knife_neon"

	data, err := Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for _, field := range []string{`"highScore"`, `"selectedKnifeId":"knife_neon"`, `"language":"English"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("encoded record %s missing %s", data, field)
		}
	}

	back, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(back, p) {
		t.Errorf("round trip = %+v, want %+v", back, p)
	}
}

func TestRecordScore(t *testing.T) {
	p := Defaults()
	if !p.RecordScore(12) || p.HighScore != 12 {
		t.Fatalf("first score not recorded: %+v", p)
	}
	if p.RecordScore(12) || p.RecordScore(3) {
		t.Error("non-improving score reported as a new high score")
	}
}

func TestKeyFor(t *testing.T) {
	if KeyFor("") != StorageKey {
		t.Errorf("KeyFor(\"\") = %q", KeyFor(""))
	}
	if got := KeyFor("alice"); got != "SHINWAR_KNIFE_MASTER_V1:alice" {
		t.Errorf("KeyFor(alice) = %q", got)
	}
}
