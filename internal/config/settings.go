// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings are the runtime knobs read from the environment (and an optional .env).
type Settings struct {
	DataDir                    string  `env:"ARPG_DATA_DIR"`
	Seed                       int64   `env:"ARPG_SEED" envDefault:"0"`
	CameraYaw                  float64 `env:"ARPG_CAMERA_YAW" envDefault:"0"`
	IFrameDuration             float64 `env:"ARPG_IFRAME_DURATION" envDefault:"0.5"`
	IFrameFlickerRate          float64 `env:"ARPG_IFRAME_FLICKER_RATE" envDefault:"0.1"`
	TransitionStoppingDistance float64 `env:"ARPG_TRANSITION_STOPPING_DISTANCE" envDefault:"0.25"`
	MinionFollowDistance       float64 `env:"ARPG_MINION_FOLLOW_DISTANCE" envDefault:"1.5"`
	StartInMenu                bool    `env:"ARPG_START_IN_MENU" envDefault:"false"`
	DebugAddr                  string  `env:"ARPG_DEBUG_ADDR"`
}

// Default returns the settings used when nothing is configured.
func Default() *Settings {
	return &Settings{
		IFrameDuration:             DefaultIFrameDuration,
		IFrameFlickerRate:          DefaultIFrameFlickerRate,
		TransitionStoppingDistance: TransitionStoppingDistance,
		MinionFollowDistance:       MinionFollowDistance,
	}
}

// Load reads the given .env files (missing files are ignored) and then parses
// the process environment into Settings.
func Load(envFiles ...string) (*Settings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		log.Printf("Config: loaded %s", path)
	}

	cfg, err := env.ParseAs[Settings]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (s *Settings) Validate() error {
	if s.IFrameDuration < 0 {
		return fmt.Errorf("ARPG_IFRAME_DURATION must not be negative")
	}
	if s.IFrameFlickerRate <= 0 {
		return fmt.Errorf("ARPG_IFRAME_FLICKER_RATE must be positive")
	}
	if s.TransitionStoppingDistance <= 0 {
		return fmt.Errorf("ARPG_TRANSITION_STOPPING_DISTANCE must be positive")
	}
	if s.MinionFollowDistance < 0 {
		return fmt.Errorf("ARPG_MINION_FOLLOW_DISTANCE must not be negative")
	}
	return nil
}
