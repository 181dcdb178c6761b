// Package logging builds the process logger. Terminal front ends own the
// screen, so their log output must go to a file or nowhere.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Options controls where and how much is logged.
type Options struct {
	Level string // logrus level name; empty means "info"
	File  string // path to append to; empty means Fallback
	// Fallback is used when File is empty. nil discards output.
	Fallback io.Writer
}

// New creates a logger from opts. The returned closer releases the log file,
// if one was opened.
func New(opts Options) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableColors: opts.File != "",
	})

	level := logrus.InfoLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, err
		}
		level = parsed
	}
	log.SetLevel(level)

	var closer io.Closer = nopCloser{}
	switch {
	case opts.File != "":
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		log.SetOutput(f)
		closer = f
	case opts.Fallback != nil:
		log.SetOutput(opts.Fallback)
	default:
		log.SetOutput(io.Discard)
	}

	return log, closer, nil
}

// Discard returns a logger that drops everything; handy in tests.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
