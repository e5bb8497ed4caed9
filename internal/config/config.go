// Package config provides Viper-based configuration loading for the
// simulation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// WorldConfig holds world generation settings.
type WorldConfig struct {
	// Seed is the deterministic world seed.
	Seed uint64 `mapstructure:"seed"`
	// BiomeCellSize is the side length of the square biome cells.
	BiomeCellSize int `mapstructure:"biome_cell_size"`
	// ChunkSize is the side length of the tile chunks generated at once.
	ChunkSize int `mapstructure:"chunk_size"`
	// GenerationRadius is how far from the focus tiles are pre-generated.
	GenerationRadius int `mapstructure:"generation_radius"`
}

// PlayerConfig holds starting player settings.
type PlayerConfig struct {
	// MovementPoints is the per-turn movement budget.
	MovementPoints int `mapstructure:"movement_points"`
	// MaxMovementPoints caps banked movement points.
	MaxMovementPoints int `mapstructure:"max_movement_points"`
	// StartingLevel is the level new players begin at.
	StartingLevel int `mapstructure:"starting_level"`
}

// EventsConfig holds event template settings.
type EventsConfig struct {
	// TemplatesPath points to a YAML template file. Empty uses the
	// built-in templates.
	TemplatesPath string `mapstructure:"templates_path"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	World   WorldConfig   `mapstructure:"world"`
	Player  PlayerConfig  `mapstructure:"player"`
	Events  EventsConfig  `mapstructure:"events"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateWorld(c.World); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validatePlayer(c.Player); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateWorld(w WorldConfig) error {
	var errs []string
	if w.BiomeCellSize < 1 {
		errs = append(errs, fmt.Sprintf("world.biome_cell_size must be >= 1, got %d", w.BiomeCellSize))
	}
	if w.ChunkSize < 1 {
		errs = append(errs, fmt.Sprintf("world.chunk_size must be >= 1, got %d", w.ChunkSize))
	}
	if w.GenerationRadius < 0 {
		errs = append(errs, fmt.Sprintf("world.generation_radius must be >= 0, got %d", w.GenerationRadius))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validatePlayer(p PlayerConfig) error {
	var errs []string
	if p.MovementPoints < 1 {
		errs = append(errs, fmt.Sprintf("player.movement_points must be >= 1, got %d", p.MovementPoints))
	}
	if p.MaxMovementPoints < p.MovementPoints {
		errs = append(errs, "player.max_movement_points must not be below player.movement_points")
	}
	if p.StartingLevel < 1 {
		errs = append(errs, fmt.Sprintf("player.starting_level must be >= 1, got %d", p.StartingLevel))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	applyEnv(v)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadDefaults builds a Config without a file, from defaults and
// environment overrides only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func LoadDefaults() (Config, error) {
	v := viper.New()
	applyEnv(v)
	setDefaults(v)
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	if v == nil {
		return Config{}, errors.New("nil viper instance")
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv wires environment variable overrides with the SPACELOOTER_ prefix.
func applyEnv(v *viper.Viper) {
	v.SetEnvPrefix("SPACELOOTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("world.seed", 12345)
	v.SetDefault("world.biome_cell_size", 16)
	v.SetDefault("world.chunk_size", 16)
	v.SetDefault("world.generation_radius", 25)

	v.SetDefault("player.movement_points", 3)
	v.SetDefault("player.max_movement_points", 20)
	v.SetDefault("player.starting_level", 1)

	v.SetDefault("events.templates_path", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
