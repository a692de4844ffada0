package app

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"mad-maze/internal/core"
	"mad-maze/pkg/maze"
)

// EnvPrefix marks the environment variables LoadEnv understands, e.g.
// MAZE_ALGORITHM or MAZE_WIDTH.
const EnvPrefix = "MAZE_"

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Algorithm string
	Width     int
	Height    int
	Scale     int
	TPS       int
	Speed     int
	Seed      int64
	Instant   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Algorithm: maze.Backtracking.String(),
		Width:     core.DefaultGridSize,
		Height:    core.DefaultGridSize,
		Scale:     12,
		TPS:       60,
		Speed:     core.DefaultSpeed,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Algorithm, "algo", c.Algorithm, "generation algorithm (backtracking, prim, kruskal, wilson, division)")
	fs.IntVar(&c.Width, "width", c.Width, "maze width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "maze height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Speed, "speed", c.Speed, "animation speed, 1..100")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for a fresh one")
	fs.BoolVar(&c.Instant, "instant", c.Instant, "generate without animating")
}

// LoadEnv applies MAZE_* values from the dotenv file at path, if it exists,
// and then from the process environment, which wins.
func (c *Config) LoadEnv(path string) error {
	values := map[string]string{}
	if path != "" {
		fileValues, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read %s: %w", path, err)
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, EnvPrefix) {
			values[k] = v
		}
	}

	settings := map[string]string{}
	for k, v := range values {
		if name, ok := strings.CutPrefix(k, EnvPrefix); ok {
			settings[strings.ToLower(name)] = v
		}
	}
	return c.apply(settings)
}

// FromMap builds a Config from defaults overridden by cfg. Keys match the
// flag names without the dash, plus "algorithm".
func FromMap(cfg map[string]string) (*Config, error) {
	c := NewConfig()
	if err := c.apply(cfg); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) apply(cfg map[string]string) error {
	for key, raw := range cfg {
		raw = strings.TrimSpace(raw)
		var err error
		switch key {
		case "algo", "algorithm":
			c.Algorithm = raw
		case "width":
			c.Width, err = strconv.Atoi(raw)
		case "height":
			c.Height, err = strconv.Atoi(raw)
		case "scale":
			c.Scale, err = strconv.Atoi(raw)
		case "tps":
			c.TPS, err = strconv.Atoi(raw)
		case "speed":
			c.Speed, err = strconv.Atoi(raw)
		case "seed":
			c.Seed, err = strconv.ParseInt(raw, 10, 64)
		case "instant":
			c.Instant, err = strconv.ParseBool(raw)
		}
		if err != nil {
			return fmt.Errorf("config %s=%q: %w", key, raw, err)
		}
	}
	return nil
}

// Normalize clamps every field into its usable range.
func (c *Config) Normalize() {
	c.Width = core.ClampGridSize(c.Width)
	c.Height = core.ClampGridSize(c.Height)
	c.Speed = core.ClampSpeed(c.Speed)
	if c.Scale < 2 {
		c.Scale = 2
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
}

// Kind resolves the configured algorithm name.
func (c *Config) Kind() (maze.Kind, error) {
	return maze.ParseKind(c.Algorithm)
}

// Session converts the configuration into session settings.
func (c *Config) Session() (core.SessionConfig, error) {
	kind, err := c.Kind()
	if err != nil {
		return core.SessionConfig{}, err
	}
	return core.SessionConfig{
		Kind:    kind,
		Width:   c.Width,
		Height:  c.Height,
		Speed:   c.Speed,
		Seed:    c.Seed,
		Instant: c.Instant,
	}, nil
}
