package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"courtside/internal/eventbus"
)

const (
	// DefaultServerURL is where the Flask prediction app listens in development
	DefaultServerURL = "http://127.0.0.1:5000"
	// DefaultRequestTimeout bounds every request; the web pages had none
	DefaultRequestTimeout = 10 * time.Second
	// DefaultInitialOffset matches the five players rendered with the page
	DefaultInitialOffset = 5
	// DefaultLogFile lives next to the config file
	DefaultLogFile = "courtside.log"
)

// Config represents the application configuration
type Config struct {
	Version        int         `toml:"version"`
	ServerURL      string      `toml:"server_url"`
	RequestTimeout Duration    `toml:"request_timeout"`
	InitialOffset  int         `toml:"initial_offset"`
	InitialQuery   string      `toml:"initial_query"`
	MetricsAddr    string      `toml:"metrics_addr"`
	Log            LogSettings `toml:"log"`
	UISettings     UISettings  `toml:"ui"`
}

// LogSettings controls the file logger
type LogSettings struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text, json
	File   string `toml:"file"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	DefaultConference string `toml:"default_conference"` // East or West
	ShowPositions     bool   `toml:"show_positions"`
}

// Duration is a time.Duration that reads and writes as "10s" in TOML
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
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

// NewConfigService creates a new config service rooted in the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "courtside", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	if path != "" {
		cs.filePath = path
	}
	return cs
}

// Path returns the file Load and Save operate on
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when
// the file does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{ServerURL: cfg.ServerURL})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// start from defaults so missing keys keep sane values
	cfg := DefaultConfig()
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

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate rejects values the client cannot run with
func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return errors.New("server_url must not be empty")
	}
	if c.RequestTimeout.Duration < 0 {
		return fmt.Errorf("request_timeout must not be negative, got %s", c.RequestTimeout)
	}
	if c.InitialOffset < 0 {
		return fmt.Errorf("initial_offset must not be negative, got %d", c.InitialOffset)
	}
	switch c.UISettings.DefaultConference {
	case "", "East", "West":
	default:
		return fmt.Errorf("ui.default_conference must be East or West, got %q", c.UISettings.DefaultConference)
	}
	return nil
}

// Timeout returns the request timeout, using the default when unset
func (c *Config) Timeout() time.Duration {
	if c.RequestTimeout.Duration <= 0 {
		return DefaultRequestTimeout
	}
	return c.RequestTimeout.Duration
}

// LogPath resolves the log file against the directory of configPath.
// An empty file means the default courtside.log next to the config;
// "stderr", "discard" and absolute paths are returned as is.
func (c *Config) LogPath(configPath string) string {
	file := c.Log.File
	switch {
	case file == "":
		file = DefaultLogFile
	case file == "stderr", file == "discard", filepath.IsAbs(file):
		return file
	}
	return filepath.Join(filepath.Dir(configPath), file)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:        1,
		ServerURL:      DefaultServerURL,
		RequestTimeout: Duration{DefaultRequestTimeout},
		InitialOffset:  DefaultInitialOffset,
		Log: LogSettings{
			Level:  "info",
			Format: "text",
			File:   DefaultLogFile,
		},
		UISettings: UISettings{
			DefaultConference: "East",
			ShowPositions:     true,
		},
	}
}
