package main

import (
	"flag"
	"fmt"
	"io"
)

const (
	defaultSamplePath   = "data/bass-guitar-stab.wav"
	defaultWindowWidth  = 1024
	defaultWindowHeight = 768
)

type Config struct {
	SamplePath string
	Tempo      int
	LogLevel   string
	LogFormat  string
	Width      int
	Height     int
	Fullscreen bool
	Seed       int64
}

func DefaultConfig() *Config {
	return &Config{
		SamplePath: defaultSamplePath,
		Tempo:      defaultTempo,
		LogLevel:   "info",
		LogFormat:  "text",
		Width:      defaultWindowWidth,
		Height:     defaultWindowHeight,
	}
}

// ParseConfig reads command line flags on top of DefaultConfig. Usage and
// flag errors go to output.
func ParseConfig(args []string, output io.Writer) (*Config, error) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("audiosphere", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.SamplePath, "sample", cfg.SamplePath, "sample file to retrigger (.wav, .mp3 or .ogg)")
	fs.IntVar(&cfg.Tempo, "tempo", cfg.Tempo, fmt.Sprintf("initial tempo in BPM, clamped to [%d,%d]", minTempo, maxTempo))
	fs.StringVar(&cfg.LogLevel, "loglevel", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "logformat", cfg.LogFormat, "log format: text or json")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "window width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "window height")
	fs.BoolVar(&cfg.Fullscreen, "fullscreen", cfg.Fullscreen, "open a fullscreen window on the primary monitor")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed of the deformation noise")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the program cannot start with and clamps the
// tempo into range.
func (cfg *Config) Validate() error {
	if cfg.SamplePath == "" {
		return fmt.Errorf("sample path must not be empty")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if _, err := ResolveLogLevel(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}
	cfg.Tempo = min(max(cfg.Tempo, minTempo), maxTempo)
	return nil
}
