package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"tuiselect/internal/domain"
	"tuiselect/internal/eventbus"
)

// ErrInvalidConfig is wrapped by every validation error
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version int           `toml:"version"`
	UI      UISettings    `toml:"ui"`
	Fields  []FieldConfig `toml:"fields"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Autosave  bool `toml:"autosave"`   // persist selections on every change
	ShowHelp  bool `toml:"show_help"`  // key help bar at the bottom
	MaxHeight int  `toml:"max_height"` // visible option rows, 0 for all
	Mouse     bool `toml:"mouse"`
}

// FieldConfig is one dropdown of the form
type FieldConfig struct {
	Name        string         `toml:"name"`
	Multiple    bool           `toml:"multiple"`
	Placeholder string         `toml:"placeholder,omitempty"`
	Selected    []any          `toml:"selected"` // option values, string or integer
	Options     []OptionConfig `toml:"options"`
}

// OptionConfig is one candidate of a field. Value is a string or a number.
type OptionConfig struct {
	Label string `toml:"label"`
	Value any    `toml:"value"`
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

// NewConfigService creates a config service reading path. An empty path
// selects the user config directory.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// DefaultPath returns $XDG_CONFIG_HOME/tuiselect/config.toml or its
// platform equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "tuiselect", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields the default
// configuration.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publish(eventbus.ConfigLoadedEvent{Path: "", Fields: len(cfg.Fields)})
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	cs.publish(eventbus.ConfigLoadedEvent{Path: cs.filePath, Fields: len(cfg.Fields)})
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	cs.publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	return nil
}

// LoadFromPath loads and validates configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (cs *configService) publish(event eventbus.DomainEvent) {
	if cs.bus != nil {
		cs.bus.Publish(event)
	}
}

// Validate checks the form definition
func (c *Config) Validate() error {
	names := make(map[string]bool)
	for i, f := range c.Fields {
		if f.Name == "" {
			return fmt.Errorf("%w: field %d has no name", ErrInvalidConfig, i+1)
		}
		if names[f.Name] {
			return fmt.Errorf("%w: duplicate field %q", ErrInvalidConfig, f.Name)
		}
		names[f.Name] = true

		values := make(map[string]bool)
		for _, o := range f.Options {
			v, _, err := formatValue(o.Value)
			if err != nil {
				return fmt.Errorf("%w: field %q option %q: %v", ErrInvalidConfig, f.Name, o.Label, err)
			}
			if values[v] {
				return fmt.Errorf("%w: field %q has duplicate option value %q", ErrInvalidConfig, f.Name, v)
			}
			values[v] = true
		}

		if !f.Multiple && len(f.Selected) > 1 {
			return fmt.Errorf("%w: single field %q selects %d options", ErrInvalidConfig, f.Name, len(f.Selected))
		}
		for _, s := range f.Selected {
			v, _, err := formatValue(s)
			if err != nil {
				return fmt.Errorf("%w: field %q selection: %v", ErrInvalidConfig, f.Name, err)
			}
			if !values[v] {
				return fmt.Errorf("%w: field %q selects unknown value %q", ErrInvalidConfig, f.Name, v)
			}
		}
	}
	return nil
}

// DomainFields converts the form definition into domain fields
func (c *Config) DomainFields() ([]domain.Field, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	fields := make([]domain.Field, 0, len(c.Fields))
	for _, f := range c.Fields {
		field := domain.Field{Name: f.Name, Multiple: f.Multiple, Placeholder: f.Placeholder}
		for _, o := range f.Options {
			v, numeric, _ := formatValue(o.Value)
			field.Choices = append(field.Choices, domain.Choice{Label: o.Label, Value: v, Numeric: numeric})
		}
		for _, s := range f.Selected {
			v, _, _ := formatValue(s)
			field.Selected = append(field.Selected, v)
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// SetSelected stores the selected values of a field, keeping the option's
// own value type. Unknown fields and values are ignored.
func (c *Config) SetSelected(field string, values []string) {
	for i := range c.Fields {
		f := &c.Fields[i]
		if f.Name != field {
			continue
		}
		selected := make([]any, 0, len(values))
		for _, want := range values {
			for _, o := range f.Options {
				if v, _, _ := formatValue(o.Value); v == want {
					selected = append(selected, o.Value)
					break
				}
			}
		}
		f.Selected = selected
		return
	}
}

// formatValue renders a decoded option value as its identity string
func formatValue(v any) (string, bool, error) {
	switch v := v.(type) {
	case string:
		return v, false, nil
	case int64:
		return strconv.FormatInt(v, 10), true, nil
	case int:
		return strconv.Itoa(v), true, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true, nil
	case nil:
		return "", false, errors.New("missing value")
	default:
		return "", false, fmt.Errorf("unsupported value type %T", v)
	}
}

// DefaultConfig returns the default configuration: a small sample form
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UI: UISettings{
			Autosave:  false,
			ShowHelp:  true,
			MaxHeight: 8,
			Mouse:     true,
		},
		Fields: []FieldConfig{
			{
				Name:     "Language",
				Selected: []any{},
				Options: []OptionConfig{
					{Label: "Go", Value: "go"},
					{Label: "Rust", Value: "rust"},
					{Label: "TypeScript", Value: "ts"},
					{Label: "Python", Value: "py"},
				},
			},
			{
				Name:        "Tags",
				Multiple:    true,
				Placeholder: "Add tags...",
				Selected:    []any{"cli"},
				Options: []OptionConfig{
					{Label: "cli", Value: "cli"},
					{Label: "tui", Value: "tui"},
					{Label: "network", Value: "net"},
					{Label: "storage", Value: "store"},
					{Label: "testing", Value: "test"},
				},
			},
			{
				Name:     "Priority",
				Selected: []any{int64(2)},
				Options: []OptionConfig{
					{Label: "Low", Value: int64(1)},
					{Label: "Medium", Value: int64(2)},
					{Label: "High", Value: int64(3)},
				},
			},
		},
	}
}
