// Package config loads the optional motion.yaml demo configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// Config represents the optional motion.yaml configuration.
type Config struct {
	Demo   DemoConfig   `yaml:"demo"`
	Colors ColorsConfig `yaml:"colors"`
}

// DemoConfig controls the width-animation demo.
type DemoConfig struct {
	Title      string  `yaml:"title,omitempty"`
	DurationMS int64   `yaml:"duration_ms,omitempty"`
	RateHz     int     `yaml:"rate_hz,omitempty"`
	From       float64 `yaml:"from,omitempty"`
	To         float64 `yaml:"to,omitempty"`
}

// ColorsConfig controls the color-sweep demo. From and To are CSS color
// names resolved against golang.org/x/image/colornames.
type ColorsConfig struct {
	From string `yaml:"from,omitempty"`
	To   string `yaml:"to,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	Title      string
	DurationMS int64
	RateHz     int
	From       float64
	To         float64
	ColorFrom  string
	ColorTo    string
}

// LoadOptional reads motion.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "motion.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read motion.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse motion.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads motion.yaml (if present) and resolves defaults. The demo
// title defaults to the last segment of the enclosing module path.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(cfg.Demo.Title)
	if title == "" {
		title = defaultTitle(dir)
	}

	r := &Resolved{
		Root:       dir,
		Title:      title,
		DurationMS: cfg.Demo.DurationMS,
		RateHz:     cfg.Demo.RateHz,
		From:       cfg.Demo.From,
		To:         cfg.Demo.To,
		ColorFrom:  strings.ToLower(strings.TrimSpace(cfg.Colors.From)),
		ColorTo:    strings.ToLower(strings.TrimSpace(cfg.Colors.To)),
	}
	if path, err := modulePath(dir); err == nil {
		r.ModulePath = path
	}

	if r.DurationMS <= 0 {
		r.DurationMS = 250
	}
	if r.RateHz <= 0 {
		r.RateHz = 120
	}
	if r.To == 0 && r.From == 0 {
		r.To = 500.64
	}
	if r.ColorFrom == "" {
		r.ColorFrom = "red"
	}
	if r.ColorTo == "" {
		r.ColorTo = "blue"
	}
	return r, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
// When no module encloses the working directory, the working directory
// itself is used and defaults apply.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	start := dir
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start, nil
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultTitle(dir string) string {
	base := filepath.Base(dir)
	path, err := modulePath(dir)
	if err != nil {
		return base
	}
	modName, _, ok := module.SplitPathVersion(path)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 && parts[len(parts)-1] != "" {
			base = parts[len(parts)-1]
		}
	}
	return base
}
