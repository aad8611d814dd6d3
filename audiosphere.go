package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
)

func run(args []string) error {
	cfg, err := ParseConfig(args, os.Stderr)
	if err != nil {
		return err
	}
	if err := InitLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}
	sample, err := LoadSample(cfg.SamplePath, SampleRate)
	if err != nil {
		return fmt.Errorf("load sample: %w", err)
	}
	logger.Info("sample loaded", "sample", sample.String(), "duration", sample.Duration())
	state := NewSharedState(cfg.Tempo)
	engine := NewEngine(state, sample, SampleRate)
	app, err := CreateApp(cfg, state, engine)
	if err != nil {
		return err
	}
	return WithGL(WindowOptions{
		Title:      fmt.Sprintf("audiosphere : %s", sample.Path),
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
	}, app)
}

func main() {
	err := run(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("%v\n", err)
	}
	logger.Info("bye")
}
