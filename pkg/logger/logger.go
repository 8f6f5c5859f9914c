package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Leveled logger shared by the store, the CLI and main.
// - zap underneath, console encoding by default
// - Debug/Info/Warn/Error/Fatal variants and Init(level)

var (
	mu       sync.RWMutex
	level    = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	out      zapcore.WriteSyncer = zapcore.Lock(os.Stderr)
	encoding                     = "console"
	sugar    *zap.SugaredLogger  = build()
)

func build() *zap.SugaredLogger {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		MessageKey:     "msg",
		NameKey:        "logger",
		CallerKey:      zapcore.OmitKey,
		StacktraceKey:  zapcore.OmitKey,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	var enc zapcore.Encoder
	if encoding == "json" {
		enc = zapcore.NewJSONEncoder(cfg)
	} else {
		enc = zapcore.NewConsoleEncoder(cfg)
	}
	return zap.New(zapcore.NewCore(enc, out, level)).Sugar()
}

// Init sets the global log level (case-insensitive: debug, info, warn, error, fatal).
// Call early during startup. Default level is Info.
func Init(l string) {
	s := strings.ToLower(strings.TrimSpace(l))
	switch s {
	case "debug":
		level.SetLevel(zapcore.DebugLevel)
	case "warn", "warning":
		level.SetLevel(zapcore.WarnLevel)
	case "error":
		level.SetLevel(zapcore.ErrorLevel)
	case "fatal":
		level.SetLevel(zapcore.FatalLevel)
	default:
		level.SetLevel(zapcore.InfoLevel)
	}
}

// SetFormat switches between "console" and "json" encoding.
func SetFormat(f string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.EqualFold(strings.TrimSpace(f), "json") {
		encoding = "json"
	} else {
		encoding = "console"
	}
	sugar = build()
}

// SetOutput redirects log output, mostly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = zapcore.Lock(zapcore.AddSync(w))
	sugar = build()
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

// With returns a logger carrying the given key/value pairs on every entry.
func With(keysAndValues ...interface{}) *zap.SugaredLogger {
	return current().With(keysAndValues...)
}

func Debugf(format string, v ...interface{}) { current().Debugf(format, v...) }
func Infof(format string, v ...interface{})  { current().Infof(format, v...) }
func Warnf(format string, v ...interface{})  { current().Warnf(format, v...) }
func Errorf(format string, v ...interface{}) { current().Errorf(format, v...) }

// Fatalf logs and exits with status 1.
func Fatalf(format string, v ...interface{}) { current().Fatalf(format, v...) }

// Println kept for brief messages (maps to Info)
func Println(v ...interface{}) {
	current().Info(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

// Debug/Info/Warn/Error helpers that accept a single string
func Debug(v string) { current().Debug(v) }
func Info(v string)  { current().Info(v) }
func Warn(v string)  { current().Warn(v) }
func Error(v string) { current().Error(v) }

// Sync flushes buffered entries.
func Sync() {
	_ = current().Sync()
}

// LevelString returns the current level as text.
func LevelString() string {
	switch level.Level() {
	case zapcore.DebugLevel:
		return "debug"
	case zapcore.InfoLevel:
		return "info"
	case zapcore.WarnLevel:
		return "warn"
	case zapcore.ErrorLevel:
		return "error"
	case zapcore.FatalLevel:
		return "fatal"
	}
	return "info"
}
