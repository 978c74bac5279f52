// Package logger provides leveled, printf-style logging for the whole
// process. All output goes to stderr: stdout is reserved for the MCP stdio
// transport.
package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Level mirrors zerolog's levels with the names accepted by --log.
type Level = zerolog.Level

const (
	TraceLevel = zerolog.TraceLevel
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	FatalLevel = zerolog.FatalLevel
	PanicLevel = zerolog.PanicLevel
)

var (
	mu  sync.RWMutex
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
)

// ParseLevel converts a level name ("trace".."panic") to a Level.
func ParseLevel(s string) (Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

// SetLevel sets the global log level.
func SetLevel(lvl Level) {
	mu.Lock()
	defer mu.Unlock()
	log = log.Level(lvl)
}

func Trace(format string, args ...any) { emit(TraceLevel, format, args...) }
func Debug(format string, args ...any) { emit(DebugLevel, format, args...) }
func Info(format string, args ...any)  { emit(InfoLevel, format, args...) }
func Warn(format string, args ...any)  { emit(WarnLevel, format, args...) }
func Error(format string, args ...any) { emit(ErrorLevel, format, args...) }

// Fatal logs and exits with status 1.
func Fatal(format string, args ...any) {
	emit(FatalLevel, format, args...)
	os.Exit(1)
}

func emit(lvl Level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	log.WithLevel(lvl).Msgf(format, args...)
}
