package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// setupLogging sends logs to path, or discards them when path is empty.
// The terminal belongs to the table, so logs never go to stdout or stderr.
func setupLogging(path string, level log.Level) (func(), error) {
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
		DisableColors: true,
	})

	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)

	return func() {
		log.SetOutput(io.Discard)
		f.Close()
	}, nil
}
