package logger

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config controls the process-wide logger.
type Config struct {
	// Level is the minimum level: debug, info, warn, error.
	Level string
	// Format is json (default) or console.
	Format string
	// RedactSecrets masks credential-like values. Defaults to true via Init.
	RedactSecrets bool
	// Output defaults to os.Stderr.
	Output io.Writer
}

// Logger provides structured logging with optional secret redaction.
type Logger struct {
	mu            sync.RWMutex
	zl            zerolog.Logger
	redactSecrets bool
}

var defaultLogger = newLogger(Config{Level: "info", Format: "json", RedactSecrets: true})

func newLogger(cfg Config) *Logger {
	l := &Logger{}
	l.configure(cfg)
	return l
}

func (l *Logger) configure(cfg Config) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}
	zl := zerolog.New(out).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()

	l.mu.Lock()
	l.zl = zl
	l.redactSecrets = cfg.RedactSecrets
	l.mu.Unlock()
}

// Init reconfigures the default logger. Call it once from main before
// serving traffic.
func Init(cfg Config) {
	zerolog.TimeFieldFormat = time.RFC3339
	defaultLogger.configure(cfg)
}

// Zerolog exposes the underlying logger for libraries that want one.
func Zerolog() zerolog.Logger {
	defaultLogger.mu.RLock()
	defer defaultLogger.mu.RUnlock()
	return defaultLogger.zl
}

// Debug emits a DEBUG-level structured log entry.
func Debug(msg string, fields ...interface{}) { defaultLogger.log(zerolog.DebugLevel, msg, fields...) }

// Info emits an INFO-level structured log entry.
func Info(msg string, fields ...interface{}) { defaultLogger.log(zerolog.InfoLevel, msg, fields...) }

// Warn emits a WARN-level structured log entry.
func Warn(msg string, fields ...interface{}) { defaultLogger.log(zerolog.WarnLevel, msg, fields...) }

// Error emits an ERROR-level structured log entry.
func Error(msg string, fields ...interface{}) { defaultLogger.log(zerolog.ErrorLevel, msg, fields...) }

func (l *Logger) log(level zerolog.Level, msg string, fields ...interface{}) {
	l.mu.RLock()
	zl := l.zl
	redact := l.redactSecrets
	l.mu.RUnlock()

	ev := zl.WithLevel(level)
	if ev == nil {
		return
	}

	// Fields are key/value pairs; a trailing key without a value is dropped.
	for i := 0; i < len(fields)-1; i += 2 {
		key := fmt.Sprintf("%v", fields[i])
		if err, ok := fields[i+1].(error); ok && !redact {
			ev = ev.AnErr(key, err)
			continue
		}
		val := fmt.Sprintf("%v", fields[i+1])
		if redact {
			val = redactValue(key, val)
		}
		ev = ev.Str(key, val)
	}
	ev.Msg(msg)
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

var emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

func redactValue(key, val string) string {
	if IsSecretKey(key) {
		return RedactSecret(val)
	}
	if strings.Contains(strings.ToLower(key), "email") {
		return RedactEmail(val)
	}
	return emailRegex.ReplaceAllStringFunc(val, RedactEmail)
}
