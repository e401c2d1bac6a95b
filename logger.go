package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type logOptions struct {
	Level string
	// File receives every event as JSON in addition to the console.
	File string
	// Deferred replaces the console while the picker is on screen.
	Deferred io.Writer
}

// setupLogger replaces the global logger.
func setupLogger(opts logOptions) error {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	var console io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if opts.Deferred != nil {
		console = opts.Deferred
	}

	writers := []io.Writer{console}
	if opts.File != "" {
		f, err := openLogFile(opts.File)
		if err != nil {
			return err
		}
		writers = append(writers, f)
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	return nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
