// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/olivia-tucker23/bevy-space-rts/internal/types"
)

// Settings are the runtime knobs read from the environment.
type Settings struct {
	LocalPlayer    types.PlayerID `env:"RTS_LOCAL_PLAYER" envDefault:"0"`
	UnitsFile      string         `env:"RTS_UNITS_FILE"` // Empty means the built-in table
	HardpointOwner HardpointOwner `env:"RTS_HARDPOINT_OWNER" envDefault:"local"`
	SpawnQueueSize int            `env:"RTS_SPAWN_QUEUE_SIZE" envDefault:"1024"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// spawnbench only
	ProfileMode    string  `env:"RTS_PROFILE_MODE" envDefault:"cpu"`
	BenchProducers int     `env:"RTS_BENCH_PRODUCERS" envDefault:"8"`
	BenchRequests  int     `env:"RTS_BENCH_REQUESTS" envDefault:"10000"`
	BenchRate      float64 `env:"RTS_BENCH_RATE" envDefault:"0"` // Requests per second per producer, 0 = unlimited
}

// UnmarshalText validates the owner policy while the environment is parsed.
func (o *HardpointOwner) UnmarshalText(text []byte) error {
	switch v := HardpointOwner(text); v {
	case HardpointOwnerLocal, HardpointOwnerParent:
		*o = v
		return nil
	default:
		return fmt.Errorf("unknown hardpoint owner policy %q", string(text))
	}
}

// LoadSettings reads the given .env files (missing files are skipped) and then
// parses the process environment. Values already set in the environment win
// over the files.
func LoadSettings(envFiles ...string) (Settings, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	s, err := env.ParseAs[Settings]()
	if err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	if s.SpawnQueueSize <= 0 {
		return Settings{}, fmt.Errorf("RTS_SPAWN_QUEUE_SIZE must be positive, got %d", s.SpawnQueueSize)
	}
	return s, nil
}
