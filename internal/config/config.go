// Package config provides configuration loading from YAML files.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/jscyril/mock_music_player/api"
	"github.com/jscyril/mock_music_player/internal/player"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	DataDir  string         `yaml:"data_dir" default:"./data" validate:"required"`
	Playback PlaybackConfig `yaml:"playback"`
	UI       UIConfig       `yaml:"ui"`
	Log      LogConfig      `yaml:"log"`
}

// PlaybackConfig tunes the progress simulation.
type PlaybackConfig struct {
	TickInterval    time.Duration `yaml:"tick_interval" default:"200ms" validate:"gte=10ms,lte=10s"`
	ProgressStep    float64       `yaml:"progress_step" default:"0.5" validate:"gt=0,lte=100"`
	InitialProgress *float64      `yaml:"initial_progress" default:"25" validate:"required,gte=0,lte=100"`
	AutoAdvance     bool          `yaml:"auto_advance"`
}

// UIConfig represents terminal UI configuration.
type UIConfig struct {
	StartScreen      string      `yaml:"start_screen" default:"player" validate:"oneof=player playlist favorites"`
	TimeLabel        string      `yaml:"time_label" default:"derived" validate:"oneof=static derived"`
	InitialTimeLabel string      `yaml:"initial_time_label" default:"01:04"`
	Mouse            *bool       `yaml:"mouse" default:"true"`
	Theme            ThemeConfig `yaml:"theme"`
	KeyBindings      KeyMap      `yaml:"key_bindings"`
}

// ThemeConfig holds lipgloss colours (ANSI 256 codes or hex).
type ThemeConfig struct {
	Accent    string `yaml:"accent" default:"212"`
	Text      string `yaml:"text" default:"255"`
	Muted     string `yaml:"muted" default:"240"`
	Highlight string `yaml:"highlight" default:"62"`
	Badge     string `yaml:"badge" default:"204"`
	Border    string `yaml:"border" default:"62"`
}

// KeyMap defines keyboard shortcuts. Each action accepts several keys.
type KeyMap struct {
	PlayPause []string `yaml:"play_pause" default:"[\" \"]" validate:"min=1,dive,required"`
	Next      []string `yaml:"next" default:"[\"n\",\"right\"]" validate:"min=1,dive,required"`
	Previous  []string `yaml:"previous" default:"[\"p\",\"left\"]" validate:"min=1,dive,required"`
	Favorite  []string `yaml:"favorite" default:"[\"f\"]" validate:"min=1,dive,required"`
	Select    []string `yaml:"select" default:"[\"enter\"]" validate:"min=1,dive,required"`
	Up        []string `yaml:"up" default:"[\"up\",\"k\"]" validate:"min=1,dive,required"`
	Down      []string `yaml:"down" default:"[\"down\",\"j\"]" validate:"min=1,dive,required"`
	Back      []string `yaml:"back" default:"[\"esc\",\"backspace\"]" validate:"min=1,dive,required"`
	Player    []string `yaml:"player" default:"[\"1\"]" validate:"min=1,dive,required"`
	Playlist  []string `yaml:"playlist" default:"[\"2\",\"l\"]" validate:"min=1,dive,required"`
	Favorites []string `yaml:"favorites" default:"[\"3\",\"h\"]" validate:"min=1,dive,required"`
	Quit      []string `yaml:"quit" default:"[\"q\",\"ctrl+c\"]" validate:"min=1,dive,required"`
}

// LogConfig represents logging configuration.
type LogConfig struct {
	Output string `yaml:"output" default:"file" validate:"oneof=stdout stderr file none"`
	Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn warning error"`
	File   string `yaml:"file"`
}

// Default returns the default configuration
func Default() *Config {
	var cfg Config
	// defaults.Set only fails on malformed tags
	if err := defaults.Set(&cfg); err != nil {
		panic(err)
	}
	cfg.resolvePaths()
	return &cfg
}

// Load loads configuration from a YAML file.
// Environment variables take precedence over file values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	return Parse(data)
}

// Parse decodes YAML, applies environment overrides and defaults, and
// validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	cfg.overrideFromEnv()

	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}
	cfg.resolvePaths()

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// Save marshals and saves configuration to file
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

// LoadOrCreate loads config from path or writes the defaults there first
func LoadOrCreate(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := Save(Default(), path); err != nil {
			return nil, errors.Wrap(err, "failed to save default config")
		}
	}
	return Load(path)
}

// Path returns the default config file path
func Path() string {
	if path := os.Getenv("MOCK_PLAYER_CONFIG"); path != "" {
		return path
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "mockplayer", "config.yaml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.yaml"
	}

	return filepath.Join(home, ".config", "mockplayer", "config.yaml")
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}
	return nil
}

// PlayerOptions converts the playback and UI sections into state options
func (c *Config) PlayerOptions() (player.Options, error) {
	screen, err := api.ParseScreen(c.UI.StartScreen)
	if err != nil {
		return player.Options{}, errors.Wrap(err, "invalid start_screen")
	}

	opts := player.DefaultOptions()
	opts.Step = c.Playback.ProgressStep
	if c.Playback.InitialProgress != nil {
		opts.InitialProgress = *c.Playback.InitialProgress
	}
	opts.AutoAdvance = c.Playback.AutoAdvance
	opts.TimeLabel = player.TimeLabelMode(c.UI.TimeLabel)
	opts.InitialTimeLabel = c.UI.InitialTimeLabel
	opts.StartScreen = screen
	return opts, nil
}

// MouseEnabled reports whether mouse clicks are captured
func (c *Config) MouseEnabled() bool {
	return c.UI.Mouse == nil || *c.UI.Mouse
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("MOCK_PLAYER_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("MOCK_PLAYER_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("MOCK_PLAYER_LOG_OUTPUT"); v != "" {
		c.Log.Output = v
	}
	if v := os.Getenv("MOCK_PLAYER_START_SCREEN"); v != "" {
		c.UI.StartScreen = v
	}
	if v := os.Getenv("MOCK_PLAYER_TIME_LABEL"); v != "" {
		c.UI.TimeLabel = v
	}
}

func (c *Config) resolvePaths() {
	if c.Log.File == "" {
		c.Log.File = filepath.Join(c.DataDir, "player.log")
	}
}
