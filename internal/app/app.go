// Package app wires process-wide state for the validator CLI.
package app

import (
	"time"

	"github.com/rs/zerolog"

	"terminology-submission-validator/internal/config"
	"terminology-submission-validator/internal/logging"
	"terminology-submission-validator/internal/track"
)

// Application holds process-wide state for one validator invocation.
type Application struct {
	StartupTime time.Time
	Logger      zerolog.Logger
	Cfg         *config.Configuration
}

// New constructs a new Application from the provided configuration.
func New(cfg *config.Configuration) *Application {
	a := &Application{
		Cfg:         cfg,
		StartupTime: time.Now().UTC(),
	}
	a.setupLogger()

	a.Logger.Debug().
		Time("startupTime", a.StartupTime).
		Msg("terminology submission validator starting")
	return a
}

// setupLogger configures zerolog for the run.
func (a *Application) setupLogger() {
	format := "json"
	if a.Cfg.Env == "dev" {
		format = "console"
	}
	logging.Init(logging.Config{
		Level:  a.Cfg.LogLevel,
		Format: format,
	})
	a.Logger = logging.Logger().With().
		Str("service", "terminology-submission-validator").
		Logger()
}

// Schedule resolves the completeness schedule for the run: the flag path
// wins over the environment path; with neither set, the built-in WMT2025
// schedule is used.
func (a *Application) Schedule(flagPath string) (track.Schedule, error) {
	path := flagPath
	if path == "" {
		path = a.Cfg.SchedulePath
	}
	if path == "" {
		return track.Default(), nil
	}
	sched, err := track.Load(path)
	if err != nil {
		return track.Schedule{}, err
	}
	a.Logger.Info().Str("schedule", path).Msg("loaded schedule override")
	return sched, nil
}
