// Package shellapp wires the individual components (tokenizer, parser,
// alias/env tables, virtual filesystem, persistence, executor, history,
// autocompletion, editor) into a runnable session, and owns the ambient
// concerns (profile, config, logging) that sit above all of them.
package shellapp

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Profile names a preconfigured home directory, selected by
// `cmd/ishell --profile` (spec §9 Open Question: "home is a single field on
// the Profile struct, consumed uniformly by cd, ~-expansion, and the
// history file path").
type Profile struct {
	Name string   `json:"name"`
	Home []string `json:"home"`
}

// Profiles are the built-in, selectable home layouts.
var Profiles = map[string]Profile{
	"default":   {Name: "default", Home: []string{"home", "user"}},
	"portfolio": {Name: "portfolio", Home: []string{"about"}},
}

// ResolveProfile returns the named profile, or the default profile if name
// is empty, or an error if name does not match any known profile.
func ResolveProfile(name string) (Profile, error) {
	if name == "" {
		return Profiles["default"], nil
	}
	p, ok := Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q", name)
	}
	return p, nil
}

// Config is the ConfigFile-shaped JSON configuration for one session,
// grounded on the teacher's internal/cli/config.go ConfigFile/DefaultConfig
// pattern: a flat struct of tunables loaded via encoding/json, with a
// DefaultConfig constructor and a strict-unknown-fields loader. No
// ecosystem config library replaces this (see DESIGN.md): the teacher loads
// its own ConfigFile this way and nothing in the pack models a shell
// session's config more specifically than that.
type Config struct {
	Profile          string        `json:"profile"`
	PerFileCap       int64         `json:"per_file_cap"`
	PerDirCap        int           `json:"per_dir_cap"`
	TotalCap         int64         `json:"total_cap"`
	PersistenceDir   string        `json:"persistence_dir"` // empty means in-memory only
	SaveDebounce     time.Duration `json:"save_debounce_ms"`
	MaxVisibleLines  int           `json:"max_visible_lines"` // editor viewport height
	HistoryFile      string        `json:"-"`                // not loaded from JSON; not set by shellapp
}

// DefaultConfig returns the configuration a fresh session starts with
// absent a config file.
func DefaultConfig() *Config {
	return &Config{
		Profile:         "default",
		PerFileCap:      5 * 1024 * 1024,
		PerDirCap:       1000,
		TotalCap:        50 * 1024 * 1024,
		SaveDebounce:    500 * time.Millisecond,
		MaxVisibleLines: 24,
	}
}

// LoadConfigFile loads a Config from a JSON file at path. A missing file is
// not an error when explicit is false (the caller asked for the default
// path rather than naming one directly); an explicitly-named missing file,
// or a file that fails to parse, fails immediately -- mirroring the
// teacher's LoadConfigFile's "explicit file must exist, default file may
// not" contract.
func LoadConfigFile(path string, explicit bool) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return nil, fmt.Errorf("explicitly specified config file does not exist: %s", path)
		}
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := validate(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return config, nil
}

func validate(c *Config) error {
	if c.PerFileCap <= 0 {
		return fmt.Errorf("per_file_cap must be positive, got %d", c.PerFileCap)
	}
	if c.PerDirCap <= 0 {
		return fmt.Errorf("per_dir_cap must be positive, got %d", c.PerDirCap)
	}
	if c.TotalCap <= 0 {
		return fmt.Errorf("total_cap must be positive, got %d", c.TotalCap)
	}
	if c.MaxVisibleLines <= 0 {
		return fmt.Errorf("max_visible_lines must be positive, got %d", c.MaxVisibleLines)
	}
	if _, err := ResolveProfile(c.Profile); err != nil {
		return err
	}
	return nil
}
