package logger

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timestampLayout = "2006-01-02T15-04-05.000"

type Logger struct {
	appEnv  string
	appName string
	l       *zap.Logger
}

// Options configures New.
type Options struct {
	AppName string
	AppEnv  string
	// Level is one of debug, info, warn, error. Empty means debug.
	Level string
	// Format is json or console. Empty means json.
	Format  string
	Writers []io.Writer
}

// NewZapLogger returns a JSON logger at debug level writing to writers, or stdout if none are given.
func NewZapLogger(appName string, writers ...io.Writer) *Logger {
	l, _ := New(Options{AppName: appName, Writers: writers})
	return l
}

func New(opts Options) (*Logger, error) {
	level := zapcore.DebugLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = timeEncoder(timestampLayout, time.UTC)
	cfg.TimeKey = "timestamp"

	var encoder zapcore.Encoder
	switch opts.Format {
	case "", "json":
		encoder = zapcore.NewJSONEncoder(cfg)
	case "console":
		encoder = zapcore.NewConsoleEncoder(cfg)
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	var multiWriters []zapcore.WriteSyncer
	if len(opts.Writers) == 0 {
		multiWriters = append(multiWriters, os.Stdout)
	} else {
		for _, writer := range opts.Writers {
			multiWriters = append(multiWriters, zapcore.AddSync(writer))
		}
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(multiWriters...), level)

	return &Logger{
		appEnv:  opts.AppEnv,
		appName: opts.AppName,
		l:       zap.New(core),
	}, nil
}

func (l *Logger) Stop() error {
	return l.l.Sync()
}

func (l *Logger) Error(err error, fields ...map[string]any) {
	l.l.With(fieldsOf(fields)...).Error(
		err.Error(),
		append(l.common(), zap.String("error", err.Error()), zap.Stack("stack"))...,
	)
}

func (l *Logger) Info(msg string, fields ...map[string]any) {
	l.l.With(fieldsOf(fields)...).Info(msg, l.common()...)
}

func (l *Logger) Warning(msg string, fields ...map[string]any) {
	l.l.With(fieldsOf(fields)...).Warn(msg, l.common()...)
}

func (l *Logger) Debug(msg string, fields ...map[string]any) {
	l.l.With(fieldsOf(fields)...).Debug(msg, l.common()...)
}

func (l *Logger) Fatal(msg string, fields ...map[string]any) {
	l.l.With(fieldsOf(fields)...).Fatal(msg, l.common()...)
}

// common must be called directly from a level method: the caller lookup skips
// getRuntimeParams, common and the level method itself.
func (l *Logger) common() []zap.Field {
	file, line, funcName := getRuntimeParams()
	return []zap.Field{
		zap.String("app_zone", l.appEnv),
		zap.String("app_name", l.appName),
		zap.String("caller_file", file),
		zap.Int("caller_line", line),
		zap.String("caller_func", funcName),
	}
}

func fieldsOf(fields []map[string]any) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	return mapToZapFields(fields[0])
}

func mapToZapFields(data map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(data))

	for k, v := range data {
		zapFields = append(zapFields, zap.Any(k, v))
	}

	return zapFields
}

func getRuntimeParams() (file string, line int, funcName string) {
	pc, file, line, ok := runtime.Caller(3)
	if !ok {
		return "not_defined", 0, "not_defined"
	}
	return file, line, runtime.FuncForPC(pc).Name()
}

func timeEncoder(layout string, location *time.Location) func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		t = t.In(location)
		type appendTimeEncoder interface {
			AppendTimeLayout(time.Time, string)
		}
		if enc, ok := enc.(appendTimeEncoder); ok {
			enc.AppendTimeLayout(t, layout)
			return
		}
		enc.AppendString(t.Format(layout))
	}
}
