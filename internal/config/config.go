package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/radiowaves/internal/effects"
	"github.com/llehouerou/radiowaves/internal/player"
)

// Defaults.
const (
	DefaultStreamURL    = "https://myradio24.org/61673"
	DefaultStation      = "Radio Waves"
	DefaultVolume       = 0.7
	DefaultStartTimeout = 10 * time.Second
	DefaultCadence      = 100 * time.Millisecond
	DefaultFFTSize      = 2048
	DefaultCryBand      = 3
)

type Config struct {
	StreamURL     string  `koanf:"stream_url"`
	Station       string  `koanf:"station"`
	Icons         string  `koanf:"icons"` // "nerd", "unicode", or "none"
	Demo          bool    `koanf:"demo"`  // synthetic audio analysis, no network
	Notifications bool    `koanf:"notifications"`
	Volume        float64 `koanf:"volume"` // initial volume when none was saved

	Stats    StatsConfig    `koanf:"stats"`
	Audio    AudioConfig    `koanf:"audio"`
	Analysis AnalysisConfig `koanf:"analysis"`
	Effects  EffectsConfig  `koanf:"effects"`
	Log      LogConfig      `koanf:"log"`
}

// StatsConfig holds the listener counters shown in the panel.
type StatsConfig struct {
	Listeners int `koanf:"listeners"`
	Likes     int `koanf:"likes"`
	Dislikes  int `koanf:"dislikes"`
}

// AudioConfig holds stream playback settings.
type AudioConfig struct {
	Preload      string        `koanf:"preload"`      // "auto", "metadata", "none"
	CrossOrigin  string        `koanf:"cross_origin"` // "anonymous", "use-credentials"
	StartTimeout time.Duration `koanf:"start_timeout"`
}

// AnalysisConfig holds band sampler settings.
type AnalysisConfig struct {
	Cadence time.Duration `koanf:"cadence"`
	FFTSize int           `koanf:"fft_size"`
}

// EffectsConfig holds effect lifetimes and placement.
type EffectsConfig struct {
	FireworkTTL time.Duration `koanf:"firework_ttl"`
	HeartTTL    time.Duration `koanf:"heart_ttl"`
	CryingTTL   time.Duration `koanf:"crying_ttl"`
	CryBand     int           `koanf:"cry_band"` // rows crying emoji fall in
}

// LogConfig holds log settings.
type LogConfig struct {
	Level string `koanf:"level"`
	File  string `koanf:"file"` // empty means the XDG state directory
}

// Default returns the configuration used when no file sets a value.
func Default() *Config {
	ttl := effects.DefaultTTL()
	return &Config{
		StreamURL:     DefaultStreamURL,
		Station:       DefaultStation,
		Icons:         "unicode",
		Notifications: true,
		Volume:        DefaultVolume,
		Audio: AudioConfig{
			Preload:      string(player.PreloadAuto),
			CrossOrigin:  string(player.CrossOriginAnonymous),
			StartTimeout: DefaultStartTimeout,
		},
		Analysis: AnalysisConfig{
			Cadence: DefaultCadence,
			FFTSize: DefaultFFTSize,
		},
		Effects: EffectsConfig{
			FireworkTTL: ttl.Firework,
			HeartTTL:    ttl.Heart,
			CryingTTL:   ttl.Crying,
			CryBand:     DefaultCryBand,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the configuration files in the standard locations.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given files in order, later files overriding earlier
// ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize replaces invalid values with defaults.
func (c *Config) normalize() {
	d := Default()

	c.StreamURL = strings.TrimSpace(c.StreamURL)
	if u, err := url.Parse(c.StreamURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		c.StreamURL = d.StreamURL
	}
	if strings.TrimSpace(c.Station) == "" {
		c.Station = d.Station
	}
	if c.Volume < 0 || c.Volume > 1 {
		c.Volume = d.Volume
	}

	c.Stats.Listeners = max(c.Stats.Listeners, 0)
	c.Stats.Likes = max(c.Stats.Likes, 0)
	c.Stats.Dislikes = max(c.Stats.Dislikes, 0)

	if _, err := player.ParsePreload(c.Audio.Preload); err != nil {
		c.Audio.Preload = d.Audio.Preload
	}
	if _, err := player.ParseCrossOrigin(c.Audio.CrossOrigin); err != nil {
		c.Audio.CrossOrigin = d.Audio.CrossOrigin
	}
	if c.Audio.StartTimeout <= 0 {
		c.Audio.StartTimeout = d.Audio.StartTimeout
	}

	if c.Analysis.Cadence <= 0 {
		c.Analysis.Cadence = d.Analysis.Cadence
	}
	if c.Analysis.FFTSize < 64 || c.Analysis.FFTSize > 32768 {
		c.Analysis.FFTSize = d.Analysis.FFTSize
	}

	if c.Effects.FireworkTTL <= 0 {
		c.Effects.FireworkTTL = d.Effects.FireworkTTL
	}
	if c.Effects.HeartTTL <= 0 {
		c.Effects.HeartTTL = d.Effects.HeartTTL
	}
	if c.Effects.CryingTTL <= 0 {
		c.Effects.CryingTTL = d.Effects.CryingTTL
	}
	if c.Effects.CryBand <= 0 {
		c.Effects.CryBand = d.Effects.CryBand
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		c.Log.Level = d.Log.Level
	}
	if c.Log.File != "" {
		c.Log.File = expandPath(c.Log.File)
	}
}

// Hints returns the playback hints.
func (c *Config) Hints() player.Hints {
	preload, _ := player.ParsePreload(c.Audio.Preload)
	cross, _ := player.ParseCrossOrigin(c.Audio.CrossOrigin)
	return player.Hints{Preload: preload, CrossOrigin: cross}
}

// TTL returns the effect lifetimes.
func (c *Config) TTL() effects.TTL {
	return effects.TTL{
		Firework: c.Effects.FireworkTTL,
		Heart:    c.Effects.HeartTTL,
		Crying:   c.Effects.CryingTTL,
	}
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// LogPath returns the log file location.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(filepath.Join("radiowaves", "radiowaves.log"))
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/radiowaves/config.toml
		filepath.Join(xdg.ConfigHome, "radiowaves", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
