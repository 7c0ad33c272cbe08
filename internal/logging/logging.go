package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	rotatelogs "github.com/lestrrat/go-file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

const rotationTime = 24 * time.Hour

var (
	logger = newLogger(os.Stderr, logrus.InfoLevel, "text")
	mu     sync.RWMutex
)

func newLogger(out io.Writer, level logrus.Level, format string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	if format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}

// Init configures the process logger. Unknown levels fall back to info.
func Init(out io.Writer, level, format string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	mu.Lock()
	logger = newLogger(out, lvl, format)
	mu.Unlock()
}

// AddFileHook copies every entry as JSON to path, rotated daily.
// Rotated files older than maxAge are removed.
func AddFileHook(path string, maxAge time.Duration) error {
	w, err := rotatelogs.New(
		path+".%Y%m%d",
		rotatelogs.WithLinkName(path),
		rotatelogs.WithRotationTime(rotationTime),
		rotatelogs.WithMaxAge(maxAge),
	)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	Logger().AddHook(lfshook.NewHook(w, &logrus.JSONFormatter{}))
	return nil
}

// Logger returns the process logger
func Logger() *logrus.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Component returns an entry tagged with the component name
func Component(name string) *logrus.Entry {
	return Logger().WithField("component", name)
}

// Discard returns an entry that drops everything, for tests
func Discard() *logrus.Entry {
	return logrus.NewEntry(newLogger(io.Discard, logrus.PanicLevel, "text"))
}
