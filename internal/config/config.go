package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golfr-rankings/internal/archive"
	"golfr-rankings/internal/components/chrono"
	"golfr-rankings/internal/components/telemetry"
	"golfr-rankings/internal/notify"
	"golfr-rankings/internal/scrapers/owgr"
	"golfr-rankings/lib/configutil"
)

const DefaultName = "rankings.json5"

type Source struct {
	Url              string         `json:"url"`
	UserAgent        string         `json:"user_agent"`
	TimeoutSeconds   int            `json:"timeout_seconds"`
	Selectors        owgr.Selectors `json:"selectors"`
	CloudflareBypass bool           `json:"cloudflare_bypass"`
}

func (s Source) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

const (
	TimeServiceWorldTime = "worldtime"
	TimeServiceLocal     = "local"
)

type TimeService struct {
	// Kind is either "worldtime" or "local".
	Kind string `json:"kind"`
	Url  string `json:"url"`
}

type Config struct {
	Debug       bool                 `json:"debug"`
	Output      string               `json:"output"`
	Source      Source               `json:"source"`
	TimeService TimeService          `json:"time_service"`
	Archive     archive.Config       `json:"archive"`
	Notify      notify.Config        `json:"notify"`
	Otlp        telemetry.OtlpConfig `json:"otlp"`
}

func Default() Config {
	return Config{
		Output: "rankings.json",
		Source: Source{
			Url:            owgr.DefaultUrl,
			UserAgent:      owgr.DefaultUserAgent,
			TimeoutSeconds: int(owgr.DefaultTimeout / time.Second),
			Selectors:      owgr.DefaultSelectors(),
		},
		TimeService: TimeService{
			Kind: TimeServiceWorldTime,
			Url:  chrono.DefaultWorldTimeUrl,
		},
	}
}

func (c Config) Validate() error {
	switch c.TimeService.Kind {
	case TimeServiceWorldTime, TimeServiceLocal:
	default:
		return fmt.Errorf("unknown time service kind %q", c.TimeService.Kind)
	}
	if c.Output == "" {
		return fmt.Errorf("output path is empty")
	}
	return c.Source.Selectors.Validate()
}

// Load reads the configuration at `path`, a bare file name is searched for
// from the working directory upwards. A missing file means the defaults.
func Load(path string) (Config, error) {
	var cfg Config
	var err error
	if filepath.Base(path) == path {
		cfg, err = configutil.ReadRecursively[Config](path)
	} else {
		cfg, err = configutil.ReadConfig[Config](path)
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err = configutil.WithDefaults(cfg, Default())
	if err != nil {
		return Config{}, err
	}
	err = cfg.Validate()
	if err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
