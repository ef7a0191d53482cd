package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"lights-out/internal/render"
	"lights-out/pkg/core"
	"lights-out/pkg/lightsout"
)

// Config holds the settings shared by the command-line front ends.
type Config struct {
	Rows   int     `yaml:"rows"`
	Cols   int     `yaml:"cols"`
	Chance float64 `yaml:"chance"`
	// Seed fixes the starting board; 0 seeds from the clock.
	Seed  int64  `yaml:"seed"`
	Scale int    `yaml:"scale"`
	Theme string `yaml:"theme"`
}

// DefaultConfig returns the standard 5x7 game at half density.
func DefaultConfig() Config {
	g := lightsout.DefaultConfig()
	return Config{
		Rows:   g.Rows,
		Cols:   g.Cols,
		Chance: g.ChanceLightStartsOn,
		Scale:  64,
		Theme:  "classic",
	}
}

// Override applies flag-style key/value pairs on top of c. Unparseable or
// out-of-range values keep the current setting.
func (c Config) Override(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Chance = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if v, ok := cfg["theme"]; ok && v != "" {
		c.Theme = v
	}
	return c
}

// ParseSet turns repeated key=value arguments into an override map. Keys
// must name one of the settings listed by Parameters.
func ParseSet(pairs []string) (map[string]string, error) {
	known := make(map[string]bool)
	for _, p := range DefaultConfig().Parameters() {
		known[p.Key] = true
	}
	out := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("override %q: want key=value", kv)
		}
		if !known[parts[0]] {
			return nil, fmt.Errorf("override %q: unknown key %q", kv, parts[0])
		}
		out[parts[0]] = parts[1]
	}
	return out, nil
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "number of board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "number of board columns")
	fs.Float64Var(&c.Chance, "chance", c.Chance, "chance each light starts on, 0..1")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the starting board (0 uses the clock)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel size of one cell in the GUI")
	fs.StringVar(&c.Theme, "theme", c.Theme, "colour theme: "+strings.Join(render.Names(), ", "))
}

// Merge copies into c every field whose flag was set explicitly on fs.
func (c *Config) Merge(fs *pflag.FlagSet, from Config) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "rows":
			c.Rows = from.Rows
		case "cols":
			c.Cols = from.Cols
		case "chance":
			c.Chance = from.Chance
		case "seed":
			c.Seed = from.Seed
		case "scale":
			c.Scale = from.Scale
		case "theme":
			c.Theme = from.Theme
		}
	})
}

// Validate rejects settings the front ends cannot start a game with.
func (c Config) Validate() error {
	var errs []error
	if c.Rows <= 0 || c.Cols <= 0 {
		errs = append(errs, fmt.Errorf("%w: %dx%d", lightsout.ErrInvalidShape, c.Rows, c.Cols))
	}
	if c.Chance < 0 || c.Chance > 1 {
		errs = append(errs, fmt.Errorf("chance %v outside [0,1]", c.Chance))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %d must be positive", c.Scale))
	}
	if _, ok := render.Lookup(c.Theme); !ok {
		errs = append(errs, fmt.Errorf("unknown theme %q, want one of %s", c.Theme, strings.Join(render.Names(), ", ")))
	}
	return errors.Join(errs...)
}

// Game returns the game parameters.
func (c Config) Game() lightsout.Config {
	return lightsout.Config{Rows: c.Rows, Cols: c.Cols, ChanceLightStartsOn: c.Chance}
}

// EffectiveSeed returns Seed, or a clock-derived seed when Seed is 0.
func (c Config) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Source returns a deterministic RNG for the effective seed.
func (c Config) Source() *core.RNG {
	return core.NewRNG(c.EffectiveSeed())
}
