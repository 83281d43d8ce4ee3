// Package logging wraps zap behind a slog-style key/value API and stamps
// request and trace ids taken from the context.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Options configures New. The zero value logs JSON to stdout at info level.
type Options struct {
	Level   Level
	Format  string
	Output  io.Writer
	Service string
	Env     string
}

type Logger struct {
	zap    *zap.Logger
	synced *atomic.Bool
}

var defaultLogger atomic.Pointer[Logger]

var encoderConfig = zapcore.EncoderConfig{
	TimeKey:        "time",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	FunctionKey:    zapcore.OmitKey,
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.CapitalLevelEncoder,
	EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
	EncodeDuration: zapcore.StringDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
}

func New(opts Options) *Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	encoder := zapcore.NewJSONEncoder(encoderConfig)
	if opts.Format == FormatConsole {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	// Skip log and the exported level method so caller points at user code.
	z := zap.New(
		zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(out)), opts.Level),
		zap.AddCaller(),
		zap.AddCallerSkip(2),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)

	var fields []zap.Field
	if service := strings.TrimSpace(opts.Service); service != "" {
		fields = append(fields, zap.String("service", service))
	}
	if env := strings.TrimSpace(opts.Env); env != "" {
		fields = append(fields, zap.String("env", env))
	}
	return FromZap(z.With(fields...))
}

func NewNop() *Logger {
	return FromZap(zap.NewNop())
}

func FromZap(z *zap.Logger) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{zap: z, synced: new(atomic.Bool)}
}

// Default returns the process logger set by SetDefault, or a no-op logger.
func Default() *Logger {
	if logger := defaultLogger.Load(); logger != nil {
		return logger
	}
	return nop
}

var nop = NewNop()

func SetDefault(logger *Logger) {
	defaultLogger.Store(logger)
}

// ParseLevel accepts debug, info, warn/warning and error.
func ParseLevel(raw string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unsupported log level %q", raw)
	}
}

// ParseFormat accepts json and console; empty means json.
func ParseFormat(raw string) (string, error) {
	switch format := strings.ToLower(strings.TrimSpace(raw)); format {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatConsole:
		return FormatConsole, nil
	default:
		return "", fmt.Errorf("unsupported log format %q", raw)
	}
}

func (l *Logger) Zap() *zap.Logger {
	return l.orDefault().zap
}

// Sync flushes buffered entries once; loggers derived through With share the
// flag with their parent.
func (l *Logger) Sync() error {
	if l == nil || l.zap == nil || !l.synced.CompareAndSwap(false, true) {
		return nil
	}
	return l.zap.Sync()
}

func (l *Logger) With(args ...any) *Logger {
	base := l.orDefault()
	return &Logger{zap: base.zap.With(zapFields(args)...), synced: base.synced}
}

func (l *Logger) Debug(msg string, args ...any) { l.log(nil, LevelDebug, msg, args) }
func (l *Logger) Info(msg string, args ...any)  { l.log(nil, LevelInfo, msg, args) }
func (l *Logger) Warn(msg string, args ...any)  { l.log(nil, LevelWarn, msg, args) }
func (l *Logger) Error(msg string, args ...any) { l.log(nil, LevelError, msg, args) }

func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LevelDebug, msg, args)
}

func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LevelInfo, msg, args)
}

func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LevelWarn, msg, args)
}

func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LevelError, msg, args)
}

func (l *Logger) orDefault() *Logger {
	if l == nil || l.zap == nil {
		return Default()
	}
	return l
}

func (l *Logger) log(ctx context.Context, level Level, msg string, args []any) {
	entry := l.orDefault().zap.Check(level, msg)
	if entry == nil {
		return
	}
	entry.Write(append(zapFields(args), contextFields(ctx)...)...)
}
