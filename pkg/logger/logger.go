package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin wrapper over zap that stamps every entry with the
// service name, hostname and the current action.
type Logger struct {
	s *zap.SugaredLogger
}

func New(service, level string) (*Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))

	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	hostname, _ := os.Hostname()
	return &Logger{
		s: z.Sugar().With("service", service, "hostname", hostname),
	}, nil
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Action returns a child logger tagged with the given action name.
func (l *Logger) Action(action string) *Logger {
	return &Logger{s: l.s.With("action", action)}
}

// With returns a child logger carrying extra key/value pairs.
func (l *Logger) With(kv ...any) *Logger {
	return &Logger{s: l.s.With(kv...)}
}

func (l *Logger) Debug(msg string, kv ...any) {
	l.s.Debugw(msg, kv...)
}

func (l *Logger) Info(msg string, kv ...any) {
	l.s.Infow(msg, kv...)
}

func (l *Logger) Warn(msg string, kv ...any) {
	l.s.Warnw(msg, kv...)
}

func (l *Logger) Error(msg string, err error) {
	l.s.Errorw(msg, "error", err)
}

// Sync flushes buffered entries. Called on shutdown.
func (l *Logger) Sync() {
	_ = l.s.Sync()
}
