package config

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"slices"

	"boxgrip/internal/domain"
	"boxgrip/internal/eventbus"
	"boxgrip/internal/selection"

	"github.com/pelletier/go-toml/v2"
)

// Modifier key names accepted in the canvas settings
var ModifierNames = []string{"shift", "ctrl", "alt"}

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	LogFile string         `toml:"log_file"`
	Canvas  CanvasSettings `toml:"canvas"`
	Boxes   []BoxConfig    `toml:"boxes"`
}

// CanvasSettings represents canvas-related configuration
type CanvasSettings struct {
	AdditiveModifier string `toml:"additive_modifier"`
	ToggleModifier   string `toml:"toggle_modifier"`
	AutosaveLayout   bool   `toml:"autosave_layout"`
}

// BoxConfig is one box of the saved layout, in canvas cells
type BoxConfig struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
	X     int    `toml:"x"`
	Y     int    `toml:"y"`
	W     int    `toml:"w"`
	H     int    `toml:"h"`
}

// Validate checks the modifier names and the box list
func (c *Config) Validate() error {
	var errs []error
	for _, name := range []string{c.Canvas.AdditiveModifier, c.Canvas.ToggleModifier} {
		if !slices.Contains(ModifierNames, name) {
			errs = append(errs, fmt.Errorf("unknown modifier %q, want one of %v", name, ModifierNames))
		}
	}
	if c.Canvas.AdditiveModifier == c.Canvas.ToggleModifier {
		errs = append(errs, fmt.Errorf("additive and toggle modifiers are both %q", c.Canvas.ToggleModifier))
	}
	seen := make(map[string]bool, len(c.Boxes))
	for i, b := range c.Boxes {
		switch {
		case b.ID == "":
			errs = append(errs, fmt.Errorf("box %d: empty id", i))
		case seen[b.ID]:
			errs = append(errs, fmt.Errorf("box %d: duplicate id %q", i, b.ID))
		case b.W <= 0 || b.H <= 0:
			errs = append(errs, fmt.Errorf("box %q: size %dx%d must be positive", b.ID, b.W, b.H))
		}
		seen[b.ID] = true
	}
	return errors.Join(errs...)
}

// Layout converts the configured boxes to domain boxes
func (c *Config) Layout() domain.Layout {
	l := domain.Layout{Boxes: make([]domain.Box, 0, len(c.Boxes))}
	for _, b := range c.Boxes {
		l.Boxes = append(l.Boxes, domain.Box{
			ID:     selection.ElementID(b.ID),
			Label:  b.Label,
			Bounds: image.Rect(b.X, b.Y, b.X+b.W, b.Y+b.H),
		})
	}
	return l
}

// SetLayout replaces the configured boxes with a layout snapshot
func (c *Config) SetLayout(l domain.Layout) {
	c.Boxes = make([]BoxConfig, 0, len(l.Boxes))
	for _, b := range l.Boxes {
		c.Boxes = append(c.Boxes, BoxConfig{
			ID:    string(b.ID),
			Label: b.Label,
			X:     b.Bounds.Min.X,
			Y:     b.Bounds.Min.Y,
			W:     b.Bounds.Dx(),
			H:     b.Bounds.Dy(),
		})
	}
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns $XDG_CONFIG_HOME/boxgrip/config.toml or its platform
// equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "boxgrip", "config.toml")
}

// NewConfigServiceAt creates a config service for the file at path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	return &configService{bus: bus, filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, or the defaults if there is none
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	// Publish ConfigSaved event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Missing settings
// keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Boxes = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// write then rename so a crash never leaves a truncated layout
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration with a small demo layout
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		LogFile: "boxgrip.log",
		Canvas: CanvasSettings{
			AdditiveModifier: "shift",
			ToggleModifier:   "ctrl",
			AutosaveLayout:   false,
		},
		Boxes: []BoxConfig{
			{ID: "box-1", Label: "alpha", X: 2, Y: 1, W: 14, H: 4},
			{ID: "box-2", Label: "beta", X: 22, Y: 3, W: 14, H: 4},
			{ID: "box-3", Label: "gamma", X: 6, Y: 9, W: 14, H: 4},
			{ID: "box-4", Label: "delta", X: 30, Y: 11, W: 14, H: 4},
		},
	}
}
