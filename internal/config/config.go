// Package config loads the YAML configuration shared by the command-line
// tools and the query service.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/narrowphase/internal/core/collision"
	"github.com/zeusync/narrowphase/internal/core/observability/log"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Log      LogConfig      `json:"log" yaml:"log"`
	Detector DetectorConfig `json:"detector" yaml:"detector"`
	Server   ServerConfig   `json:"server" yaml:"server"`
	Scene    SceneConfig    `json:"scene" yaml:"scene"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

// DetectorConfig mirrors collision.Options. CircleFastPath is a pointer so an
// omitted key keeps the default.
type DetectorConfig struct {
	MaxGJKIterations int     `json:"max_gjk_iterations" yaml:"max_gjk_iterations"`
	MaxEPAIterations int     `json:"max_epa_iterations" yaml:"max_epa_iterations"`
	EPATolerance     float64 `json:"epa_tolerance" yaml:"epa_tolerance"`
	CircleFastPath   *bool   `json:"circle_fast_path,omitempty" yaml:"circle_fast_path,omitempty"`
}

type ServerConfig struct {
	ListenAddr      string        `json:"listen_addr" yaml:"listen_addr"`
	ReadTimeout     time.Duration `json:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	MaxMessageSize  int64         `json:"max_message_size" yaml:"max_message_size"`
}

type SceneConfig struct {
	Workers     int  `json:"workers" yaml:"workers"`
	Penetration bool `json:"penetration" yaml:"penetration"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	fast := true
	return Config{
		Log: LogConfig{Level: "info"},
		Detector: DetectorConfig{
			MaxGJKIterations: collision.DefaultMaxGJKIterations,
			MaxEPAIterations: collision.DefaultMaxEPAIterations,
			EPATolerance:     collision.DefaultEPATolerance,
			CircleFastPath:   &fast,
		},
		Server: ServerConfig{
			ListenAddr:      "127.0.0.1:8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			MaxMessageSize:  1 << 20,
		},
		Scene: SceneConfig{
			Penetration: true,
		},
	}
}

// Load reads a YAML file on top of Default.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	c, err := LoadYAML(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadYAML decodes r on top of Default and validates the result. An empty
// document yields the defaults.
func LoadYAML(r io.Reader) (Config, error) {
	c := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	if c.Detector.MaxGJKIterations < 0 {
		return fmt.Errorf("%w: detector.max_gjk_iterations must not be negative", ErrInvalidConfig)
	}
	if c.Detector.MaxEPAIterations < 0 {
		return fmt.Errorf("%w: detector.max_epa_iterations must not be negative", ErrInvalidConfig)
	}
	if c.Detector.EPATolerance < 0 {
		return fmt.Errorf("%w: detector.epa_tolerance must not be negative", ErrInvalidConfig)
	}
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("%w: server.listen_addr is empty", ErrInvalidConfig)
	}
	if c.Server.MaxMessageSize <= 0 {
		return fmt.Errorf("%w: server.max_message_size must be positive", ErrInvalidConfig)
	}
	if c.Scene.Workers < 0 {
		return fmt.Errorf("%w: scene.workers must not be negative", ErrInvalidConfig)
	}
	return nil
}

// LogLevel returns the parsed log level; Validate guarantees it parses.
func (c Config) LogLevel() log.Level {
	level, _ := log.ParseLevel(c.Log.Level)
	return level
}

// Options converts the section into detector options. Zero values fall back
// to the collision defaults.
func (d DetectorConfig) Options() []collision.Option {
	opts := []collision.Option{
		collision.WithMaxGJKIterations(d.MaxGJKIterations),
		collision.WithMaxEPAIterations(d.MaxEPAIterations),
		collision.WithEPATolerance(d.EPATolerance),
	}
	if d.CircleFastPath != nil {
		opts = append(opts, collision.WithCircleFastPath(*d.CircleFastPath))
	}
	return opts
}
