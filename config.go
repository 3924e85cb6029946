package tilde

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config holds the rendering defaults threaded through evaluation. The zero
// value is not usable; start from [DefaultConfig] or [ConfigFromYAML].
type Config struct {
	// GroupSeparator is inserted between digit groups by ~:d.
	GroupSeparator string `yaml:"group_separator"`
	// GroupSize is the number of digits per group.
	GroupSize int `yaml:"group_size"`
	// PadChar is the default fill character for padding directives.
	PadChar string `yaml:"pad_char"`
	// DecimalPoint separates the integer and fraction parts in ~f output.
	DecimalPoint string `yaml:"decimal_point"`
}

// DefaultConfig returns the standard English conventions: comma-separated
// groups of three digits, space padding, and a period decimal point.
func DefaultConfig() Config {
	return Config{
		GroupSeparator: ",",
		GroupSize:      3,
		PadChar:        " ",
		DecimalPoint:   ".",
	}
}

// ConfigFromYAML reads a YAML document from r and applies it on top of
// [DefaultConfig]. Omitted fields keep their defaults.
func ConfigFromYAML(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg.normalized(), nil
}

func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.GroupSeparator == "" {
		c.GroupSeparator = def.GroupSeparator
	}
	if c.GroupSize <= 0 {
		c.GroupSize = def.GroupSize
	}
	if c.PadChar == "" {
		c.PadChar = def.PadChar
	}
	if c.DecimalPoint == "" {
		c.DecimalPoint = def.DecimalPoint
	}
	return c
}

// Parse parses a template bound to this configuration.
func (c Config) Parse(src string) (*Template, error) {
	body, err := parseTemplate(src)
	if err != nil {
		return nil, err
	}
	return &Template{src: src, body: body, cfg: c.normalized()}, nil
}

func (c Config) padRune() rune {
	for _, r := range c.PadChar {
		return r
	}
	return ' '
}
