package session

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/knife-master/internal/catalog"
	"github.com/vovakirdan/knife-master/internal/core"
	"github.com/vovakirdan/knife-master/internal/games/knife"
	"github.com/vovakirdan/knife-master/internal/profile"
)

type savedRun struct {
	player       string
	score, level int
}

type memStore struct {
	profiles map[string]profile.Profile
	runs     []savedRun
	loadErr  error
	saves    int
}

func newMemStore() *memStore {
	return &memStore{profiles: map[string]profile.Profile{}}
}

func (m *memStore) LoadProfile(key string) (profile.Profile, error) {
	if m.loadErr != nil {
		return profile.Defaults(), m.loadErr
	}
	p, ok := m.profiles[key]
	if !ok {
		return profile.Defaults(), nil
	}
	return p.Clone(), nil
}

func (m *memStore) SaveProfile(key string, p profile.Profile) error {
	m.profiles[key] = p.Clone()
	m.saves++
	return nil
}

func (m *memStore) SaveScore(player string, score, level int) (string, error) {
	m.runs = append(m.runs, savedRun{player, score, level})
	return "run-1", nil
}

type fakeAudio struct {
	knife.NopAudio
	enabled        bool
	hits, unlocks  int
	fails, throwsN int
}

func (a *fakeAudio) SetEnabled(e bool) { a.enabled = e }
func (a *fakeAudio) PlayHit()          { a.hits++ }
func (a *fakeAudio) PlayUnlock()       { a.unlocks++ }
func (a *fakeAudio) PlayFail()         { a.fails++ }
func (a *fakeAudio) PlayThrow()        { a.throwsN++ }

func newTestSession(t *testing.T, store *memStore, player string) (*Session, *fakeAudio) {
	t.Helper()
	audio := &fakeAudio{}
	s := New(Options{
		Player:  player,
		Store:   store,
		Audio:   audio,
		Runtime: core.RuntimeConfig{TickRate: 60, Seed: 7},
	})
	return s, audio
}

// throwUntilGameOver holds the throw key. Knives thrown back to back land
// too close together, so the second one always misses.
func throwUntilGameOver(t *testing.T, s *Session) {
	t.Helper()
	in := core.NewInputFrame()
	in.Set(core.ActionThrow)
	for range 100 {
		s.Tick(in)
		if s.Phase() == knife.PhaseGameOver {
			return
		}
	}
	t.Fatal("run never ended")
}

func TestNewUsesStoredProfile(t *testing.T) {
	store := newMemStore()
	p := profile.Defaults()
	p.Apples = 33
	p.SoundEnabled = false
	store.profiles[profile.StorageKey] = p

	s, audio := newTestSession(t, store, "")

	if s.Profile().Apples != 33 {
		t.Errorf("Apples = %d, want 33", s.Profile().Apples)
	}
	if audio.enabled {
		t.Error("audio enabled although the profile muted it")
	}
	if s.Game().Run().Apples != 33 {
		t.Error("game apple balance not seeded from the profile")
	}
	if s.Phase() != knife.PhaseMenu {
		t.Errorf("phase = %v, want MENU", s.Phase())
	}
}

func TestNewSurvivesUnreadableProfile(t *testing.T) {
	store := newMemStore()
	store.loadErr = errors.New("disk on fire")

	s, audio := newTestSession(t, store, "")

	if s.Profile().SelectedKnifeID != profile.DefaultKnifeID {
		t.Error("unreadable profile should fall back to defaults")
	}
	if !audio.enabled {
		t.Error("default profile should enable sound")
	}
}

func TestGameOverRecordsRun(t *testing.T) {
	store := newMemStore()
	s, _ := newTestSession(t, store, "alice")

	s.Play()
	throwUntilGameOver(t, s)

	run := s.LastRun()
	if run.Score != 1 || run.Level != 1 || !run.NewHighScore || run.RunID != "run-1" {
		t.Errorf("LastRun = %+v", run)
	}
	if len(store.runs) != 1 || store.runs[0] != (savedRun{"alice", 1, 1}) {
		t.Errorf("stored runs = %+v", store.runs)
	}
	saved := store.profiles[profile.KeyFor("alice")]
	if saved.HighScore != 1 {
		t.Errorf("saved high score = %d, want 1", saved.HighScore)
	}

	s.Retry()
	if s.Phase() != knife.PhasePlaying || s.Game().Run().Score != 0 || s.Game().Run().Level != 1 {
		t.Errorf("Retry did not reset the run: %+v", s.Game().Run())
	}
	throwUntilGameOver(t, s)
	if s.LastRun().NewHighScore {
		t.Error("equal score reported as a new high score")
	}
}

func TestApplesDeltaPersists(t *testing.T) {
	store := newMemStore()
	s, _ := newTestSession(t, store, "")

	s.handle(knife.Event{Kind: knife.EventApplesDelta, Delta: 2})

	if s.Profile().Apples != 2 {
		t.Errorf("Apples = %d, want 2", s.Profile().Apples)
	}
	if store.profiles[profile.StorageKey].Apples != 2 {
		t.Error("apple change not saved")
	}
}

func TestBuy(t *testing.T) {
	store := newMemStore()
	p := profile.Defaults()
	p.Apples = 60
	store.profiles[profile.StorageKey] = p

	s, audio := newTestSession(t, store, "")
	s.OpenShop()

	res, err := s.Buy("knife_gold")
	if err != nil || res != catalog.ResultPurchased {
		t.Fatalf("Buy = %v, %v", res, err)
	}
	if audio.unlocks != 1 {
		t.Errorf("unlock sound played %d times", audio.unlocks)
	}
	if got := s.Game().Snapshot().Knife.Color; got != "#ecc94b" {
		t.Errorf("equipped knife color = %q", got)
	}
	if s.Game().Run().Apples != 10 {
		t.Errorf("game apples = %d, want 10", s.Game().Run().Apples)
	}
	if saved := store.profiles[profile.StorageKey]; saved.Apples != 10 || saved.SelectedKnifeID != "knife_gold" {
		t.Errorf("saved profile = %+v", saved)
	}

	res, _ = s.Buy("knife_blood")
	if res != catalog.ResultInsufficient || audio.fails != 1 {
		t.Errorf("unaffordable buy = %v, fails = %d", res, audio.fails)
	}

	res, _ = s.Buy(profile.DefaultKnifeID)
	if res != catalog.ResultSelected || audio.hits != 1 {
		t.Errorf("owned buy = %v, hits = %d", res, audio.hits)
	}

	if _, err := s.Buy("knife_nope"); !errors.Is(err, catalog.ErrUnknownKnife) {
		t.Errorf("unknown knife err = %v", err)
	}
}

func TestSettings(t *testing.T) {
	store := newMemStore()
	s, audio := newTestSession(t, store, "")
	s.OpenSettings()

	if got := s.CycleLanguage(); got != profile.Urdu {
		t.Errorf("CycleLanguage = %v, want Urdu", got)
	}
	if store.profiles[profile.StorageKey].Language != profile.Urdu {
		t.Error("language not saved")
	}
	if got := s.Printer().Language(); got != profile.Urdu {
		t.Errorf("printer language = %v", got)
	}

	if s.ToggleSound() {
		t.Error("ToggleSound should turn sound off first")
	}
	if audio.enabled {
		t.Error("audio still enabled")
	}
	if store.profiles[profile.StorageKey].SoundEnabled {
		t.Error("sound setting not saved")
	}

	s.BackToMenu()
	if s.Phase() != knife.PhaseMenu {
		t.Errorf("phase = %v, want MENU", s.Phase())
	}
}

func TestCloseSaves(t *testing.T) {
	store := newMemStore()
	s, _ := newTestSession(t, store, "")
	s.Play()

	s.Close()

	if store.saves == 0 {
		t.Error("Close did not save the profile")
	}
	if s.Phase() != knife.PhaseMenu || s.Game().LevelCompletePending() {
		t.Error("Close left the game running")
	}
}

func TestZeroOptions(t *testing.T) {
	s := New(Options{})
	s.Play()
	s.Tick(core.NewInputFrame())

	if s.Phase() != knife.PhasePlaying {
		t.Errorf("phase = %v, want PLAYING", s.Phase())
	}
	s.Close()
}

func TestAdvanceCoversWallTime(t *testing.T) {
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50, Seed: 1}
	s := New(Options{Runtime: rc})
	s.Play()

	s.Advance(core.NewInputFrame(), 300*time.Millisecond)
	s.Tick(core.NewInputFrame())

	if got, want := s.Game().Elapsed(), 300*time.Millisecond+rc.TickInterval(); got != want {
		t.Errorf("Elapsed() = %v, want %v", got, want)
	}
}
