// Package logging wraps zap with the key/value helpers and net/http
// middleware used by the promptgen binaries.
package logging

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type Logger struct {
	SugaredLogger *zap.SugaredLogger
}

// New builds a logger for mode: "prod"/"production" emits JSON at info
// level, anything else the development console encoder at debug level.
func New(mode string) (*Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	zapLogger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build: %w", err)
	}
	return FromZap(zapLogger), nil
}

// FromZap wraps an existing zap logger.
func FromZap(l *zap.Logger) *Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return &Logger{SugaredLogger: l.Sugar()}
}

// Nop discards everything.
func Nop() *Logger {
	return FromZap(zap.NewNop())
}

func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}

func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.SugaredLogger.Debugw(msg, sanitizeKVs(keysAndValues)...)
}

func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.SugaredLogger.Infow(msg, sanitizeKVs(keysAndValues)...)
}

func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.SugaredLogger.Warnw(msg, sanitizeKVs(keysAndValues)...)
}

func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.SugaredLogger.Errorw(msg, sanitizeKVs(keysAndValues)...)
}

func (l *Logger) With(keysAndValues ...any) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(sanitizeKVs(keysAndValues)...)}
}

// sanitizeKVs redacts secrets and hashes session ids so log lines never carry
// a value that could replay a session.
func sanitizeKVs(kv []any) []any {
	if len(kv) == 0 {
		return kv
	}
	out := make([]any, 0, len(kv))
	for i := 0; i < len(kv); i += 2 {
		if i == len(kv)-1 {
			out = append(out, kv[i])
			break
		}
		key := toString(kv[i])
		out = append(out, key, sanitizeValue(strings.ToLower(strings.TrimSpace(key)), kv[i+1]))
	}
	return out
}

func sanitizeValue(key string, val any) any {
	switch {
	case isRedactKey(key):
		return "[REDACTED]"
	case isHashKey(key):
		return hashValue(val)
	default:
		return val
	}
}

func isRedactKey(key string) bool {
	for _, marker := range []string{"token", "csrf", "cookie", "password", "secret", "authorization"} {
		if strings.Contains(key, marker) {
			return true
		}
	}
	return false
}

func isHashKey(key string) bool {
	return strings.Contains(key, "session_id")
}

func hashValue(val any) string {
	raw := toString(val)
	if raw == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(raw))
	return "hash:" + hex.EncodeToString(sum[:])[:12]
}

func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
