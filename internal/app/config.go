package app

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	Sim      string            `yaml:"sim"`
	Scale    int               `yaml:"scale"`
	TPS      int               `yaml:"tps"`
	Seed     int64             `yaml:"seed"`
	Label    string            `yaml:"label"`
	Scenario string            `yaml:"scenario"`
	Log      string            `yaml:"log"`
	Palette  []uint32          `yaml:"palette"`
	Params   map[string]string `yaml:"params"`

	ConfigPath string `yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "sand", Scale: 4, TPS: 60, Seed: 42, Label: "hi", Log: "dev"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML config file applied before flags")
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Label, "label", c.Label, "text drawn in the top-left corner")
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "YAML scenario applied after reset")
	fs.StringVar(&c.Log, "log", c.Log, "log mode: dev, prod or silence")
	fs.Var((*paramList)(c), "set", "sim parameter override in key=value form (repeatable)")
}

// Load parses args into a fresh Config. When -config names a file, the file
// is applied over the defaults and the flags are parsed again so they win.
func Load(name string, args []string) (*Config, error) {
	c := NewConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.ConfigPath == "" {
		return c, nil
	}

	path := c.ConfigPath
	c = NewConfig()
	if err := c.LoadFile(path); err != nil {
		return nil, err
	}
	fs = flag.NewFlagSet(name, flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile overlays the YAML file at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	return nil
}

// paramList adapts Config.Params to flag.Value.
type paramList Config

func (p *paramList) String() string {
	if p == nil || len(p.Params) == 0 {
		return ""
	}
	parts := make([]string, 0, len(p.Params))
	for k, v := range p.Params {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

func (p *paramList) Set(value string) error {
	k, v, ok := strings.Cut(value, "=")
	if !ok || k == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	if p.Params == nil {
		p.Params = map[string]string{}
	}
	p.Params[k] = v
	return nil
}
