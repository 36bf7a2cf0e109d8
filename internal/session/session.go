// Package session is the application around one player's game: it owns the
// profile, routes driver events into it, runs the shop and settings and
// persists everything. Persistence failures are logged, never fatal.
package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/knife-master/internal/catalog"
	"github.com/vovakirdan/knife-master/internal/config"
	"github.com/vovakirdan/knife-master/internal/core"
	"github.com/vovakirdan/knife-master/internal/games/knife"
	"github.com/vovakirdan/knife-master/internal/i18n"
	"github.com/vovakirdan/knife-master/internal/profile"
)

// Store persists profiles and finished runs.
type Store interface {
	LoadProfile(key string) (profile.Profile, error)
	SaveProfile(key string, p profile.Profile) error
	SaveScore(player string, score, level int) (string, error)
}

// Audio is a sound device that can be muted.
type Audio interface {
	knife.Audio
	SetEnabled(enabled bool)
}

type nopAudio struct{ knife.NopAudio }

func (nopAudio) SetEnabled(bool) {}

// Options configures a Session. Zero values are usable: no store keeps the
// profile in memory and no audio is silent.
type Options struct {
	Player  string // empty for the local player
	Store   Store
	Audio   Audio
	Logger  *log.Logger
	Tuning  config.KnifeConfig
	Runtime core.RuntimeConfig
}

// RunSummary describes the last finished run.
type RunSummary struct {
	RunID        string
	Score        int
	Level        int
	NewHighScore bool
}

// Session is one player's application state. Like the game it wraps, it is
// not safe for concurrent use.
type Session struct {
	player  string
	key     string
	store   Store
	audio   Audio
	logger  *log.Logger
	game    *knife.Game
	profile profile.Profile
	lastRun RunSummary
}

// New loads the player's profile and prepares a game in the menu.
func New(opts Options) *Session {
	s := &Session{
		player: opts.Player,
		key:    profile.KeyFor(opts.Player),
		store:  opts.Store,
		audio:  opts.Audio,
		logger: opts.Logger,
	}
	if s.audio == nil {
		s.audio = nopAudio{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	s.profile = profile.Defaults()
	if s.store != nil {
		p, err := s.store.LoadProfile(s.key)
		if err != nil {
			s.logger.Warn("profile unreadable, using defaults", "key", s.key, "err", err)
		}
		s.profile = p
	}
	s.audio.SetEnabled(s.profile.SoundEnabled)

	tuning := opts.Tuning
	if tuning == (config.KnifeConfig{}) {
		tuning = config.DefaultKnifeConfig()
	}
	s.game = knife.New(tuning)
	s.game.Reset(opts.Runtime)
	s.game.SetAudio(s.audio)
	s.syncGame()

	return s
}

// syncGame pushes profile values the driver mirrors.
func (s *Session) syncGame() {
	s.game.SetApples(s.profile.Apples)
	s.game.SetKnife(catalog.Find(s.profile.SelectedKnifeID).Visual())
}

// Phase returns the current screen.
func (s *Session) Phase() knife.Phase {
	return s.game.Phase()
}

// Game exposes the driver for rendering.
func (s *Session) Game() *knife.Game {
	return s.game
}

// Player returns the player name, empty for the local player.
func (s *Session) Player() string {
	return s.player
}

// Profile returns a copy of the player's record.
func (s *Session) Profile() profile.Profile {
	return s.profile.Clone()
}

// Printer returns a printer for the player's language.
func (s *Session) Printer() *i18n.Printer {
	return i18n.For(s.profile.Language)
}

// LastRun returns the most recent finished run.
func (s *Session) LastRun() RunSummary {
	return s.lastRun
}

// Play starts a fresh run from level 1.
func (s *Session) Play() {
	s.PlayFrom(1)
}

// PlayFrom starts a fresh run at level.
func (s *Session) PlayFrom(level int) {
	s.game.Start(level)
	s.logger.Debug("run started", "player", s.player, "level", s.game.Run().Level)
}

// Retry starts over after a game over.
func (s *Session) Retry() {
	s.Play()
}

// OpenShop shows the knife shop.
func (s *Session) OpenShop() {
	s.game.SetPhase(knife.PhaseShop)
}

// OpenSettings shows the settings screen.
func (s *Session) OpenSettings() {
	s.game.SetPhase(knife.PhaseSettings)
}

// BackToMenu returns to the main menu. Abandoning a run does not record it.
func (s *Session) BackToMenu() {
	s.game.SetPhase(knife.PhaseMenu)
}

// Tick advances the game by one fixed-rate tick and applies its events.
func (s *Session) Tick(in core.InputFrame) knife.StepResult {
	return s.apply(s.game.Step(in))
}

// Advance advances the game by one tick covering dt of wall time and applies
// its events.
func (s *Session) Advance(in core.InputFrame, dt time.Duration) knife.StepResult {
	return s.apply(s.game.Advance(in, dt))
}

func (s *Session) apply(res knife.StepResult) knife.StepResult {
	for _, ev := range res.Events {
		s.handle(ev)
	}
	return res
}

func (s *Session) handle(ev knife.Event) {
	switch ev.Kind {
	case knife.EventApplesDelta:
		s.profile.Apples += ev.Delta
		s.save()

	case knife.EventGameOver:
		s.finishRun(ev)

	case knife.EventLevelComplete:
		s.logger.Info("level complete", "player", s.player, "level", ev.Level, "score", ev.Score)
	}
}

func (s *Session) finishRun(ev knife.Event) {
	best := s.profile.RecordScore(ev.Score)
	s.lastRun = RunSummary{Score: ev.Score, Level: ev.Level, NewHighScore: best}

	if s.store != nil {
		runID, err := s.store.SaveScore(s.player, ev.Score, ev.Level)
		if err != nil {
			s.logger.Error("cannot record run", "player", s.player, "err", err)
		}
		s.lastRun.RunID = runID
	}
	s.save()

	s.logger.Info("game over",
		"player", s.player,
		"score", ev.Score,
		"level", ev.Level,
		"high_score", s.profile.HighScore,
		"run", s.lastRun.RunID,
	)
}

// Buy runs the shop action for knife id and plays the matching sound.
func (s *Session) Buy(id string) (catalog.Result, error) {
	res, err := catalog.Buy(&s.profile, id)
	if err != nil {
		s.audio.PlayFail()
		return res, err
	}

	switch res {
	case catalog.ResultSelected:
		s.audio.PlayHit()
	case catalog.ResultPurchased:
		s.audio.PlayUnlock()
		s.logger.Info("knife unlocked", "player", s.player, "knife", id, "apples", s.profile.Apples)
	case catalog.ResultInsufficient:
		s.audio.PlayFail()
		return res, nil
	}

	s.syncGame()
	s.save()
	return res, nil
}

// CycleLanguage switches to the next UI language and returns it.
func (s *Session) CycleLanguage() profile.Language {
	s.profile.Language = s.profile.Language.Next()
	s.save()
	return s.profile.Language
}

// ToggleSound flips sound effects on or off and returns the new setting.
func (s *Session) ToggleSound() bool {
	s.profile.SoundEnabled = !s.profile.SoundEnabled
	s.audio.SetEnabled(s.profile.SoundEnabled)
	s.save()
	return s.profile.SoundEnabled
}

// Close cancels pending game events and saves the profile.
func (s *Session) Close() {
	s.game.Close()
	s.save()
}

func (s *Session) save() {
	if s.store == nil {
		return
	}
	if err := s.store.SaveProfile(s.key, s.profile); err != nil {
		s.logger.Error("cannot save profile", "key", s.key, "err", err)
	}
}
