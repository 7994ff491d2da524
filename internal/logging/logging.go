// Package logging configures the process-wide logrus logger and provides
// operation timing in the "action: x | result: y" message style.
package logging

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ctxKey string

// RunIDKey tags log lines of one pipeline run.
const RunIDKey ctxKey = "run_id"

// WithRunID returns a copy of ctx carrying id for Time.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RunIDKey, id)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init sets the level and formatter of the standard logrus logger. When
// file is not empty, output goes to both stdout and a size-rotated file.
// The returned Closer releases the file; it is a no-op otherwise.
func Init(level, file string) (io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	log.SetLevel(lvl)

	if file == "" {
		log.SetOutput(os.Stdout)
		return nopCloser{}, nil
	}

	if err = os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, err
	}
	fileLogger := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    100, // MB
		MaxBackups: 7,
		MaxAge:     30, // days
		Compress:   true,
	}
	log.SetOutput(io.MultiWriter(os.Stdout, fileLogger))

	return fileLogger, nil
}

// Time starts a timer for op and returns a func that logs its outcome.
// Use it as: defer logging.Time(ctx, "store.Save")(&err).
func Time(ctx context.Context, op string) func(errp *error) {
	start := time.Now()
	runID, _ := ctx.Value(RunIDKey).(string)

	return func(errp *error) {
		entry := log.WithFields(log.Fields{
			"run_id": runID,
			"dur_ms": time.Since(start).Milliseconds(),
		})
		if errp != nil && *errp != nil {
			entry.Errorf("action: %s | result: fail | error: %v", op, *errp)
			return
		}
		entry.Debugf("action: %s | result: success", op)
	}
}
