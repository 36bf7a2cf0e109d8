package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/knife-master/internal/audio"
	"github.com/vovakirdan/knife-master/internal/config"
	"github.com/vovakirdan/knife-master/internal/core"
	"github.com/vovakirdan/knife-master/internal/platform/tui"
	"github.com/vovakirdan/knife-master/internal/session"
	"github.com/vovakirdan/knife-master/internal/storage"
)

// app is everything a local game needs, set up from flags and environment.
type app struct {
	env    config.Env
	tuning config.KnifeConfig
	logger *log.Logger
	logOut io.Closer
	store  *storage.Store
	sound  *audio.SoundManager
}

// loadEnv reads .env and KNIFE_MASTER_* variables.
func loadEnv() config.Env {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		env, _ = config.ParseEnv()
	}
	return env
}

// dbPath resolves --db over the environment.
func dbPath(env config.Env) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return env.DBPath
}

// newLogger writes to w with the level named by the environment.
func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "knifemaster",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// openLogFile opens the log file in append mode. The alt screen owns the
// terminal, so local games never log to stderr.
func openLogFile(path string) (*os.File, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// setupApp prepares logging, tuning, storage and sound for a local game.
func setupApp() *app {
	a := &app{env: loadEnv()}

	a.logger = newLogger(io.Discard, a.env.LogLevel)
	if f, err := openLogFile(a.env.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
	} else {
		a.logger = newLogger(f, a.env.LogLevel)
		a.logOut = f
	}

	configPath := flagConfig
	if configPath == "" {
		configPath = a.env.ConfigPath
	}
	tuning, err := config.LoadKnife(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
	}
	if err := tuning.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		tuning = config.DefaultKnifeConfig()
	}
	a.tuning = tuning

	store, err := storage.Open(dbPath(a.env))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		a.logger.Warn("running without persistence", "err", err)
	} else {
		a.store = store
	}

	a.sound = audio.NewSoundManager(a.env.SampleRate, a.env.Volume)
	if a.env.AudioEnabled {
		if err := a.sound.Initialize(); err != nil {
			a.logger.Warn("audio unavailable", "err", err)
		}
	}
	return a
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// newSession builds the local player's session.
func (a *app) newSession(cfg core.RuntimeConfig) *session.Session {
	opts := session.Options{
		Audio:   a.sound,
		Logger:  a.logger,
		Tuning:  a.tuning,
		Runtime: cfg,
	}
	if a.store != nil {
		opts.Store = a.store
	}
	return session.New(opts)
}

// scores returns the leaderboard source, nil without a database.
func (a *app) scores() tui.ScoreSource {
	if a.store == nil {
		return nil
	}
	return a.store
}

func (a *app) close() {
	a.sound.Cleanup()
	if a.store != nil {
		a.store.Close()
	}
	if a.logOut != nil {
		a.logOut.Close()
	}
}
