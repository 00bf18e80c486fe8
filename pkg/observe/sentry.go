package observe

import (
	"encoding/json"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

const (
	_sentryMaxErrorDepth        int           = 9
	_sentryFlushTimeout         time.Duration = 5 * time.Second
	_sentryServerRequestTimeout time.Duration = 5 * time.Second

	_timestampLayout = "2006-01-02T15-04-05.000"
)

// SentryHook is an io.Writer for the logger. It decodes each JSON log line and
// reports error, panic and fatal entries as Sentry events; everything else is dropped.
type SentryHook struct {
	appEnv  string
	appName string
	capture func(*sentry.Event) *sentry.EventID
}

// logLine mirrors the fields written by pkg/logger.
type logLine struct {
	Level      string `json:"level"`
	CallerFile string `json:"caller_file"`
	CallerLine int    `json:"caller_line"`
	CallerFunc string `json:"caller_func"`
	Stack      string `json:"stack"`
	Message    string `json:"msg"`
	Error      string `json:"error"`
	Timestamp  string `json:"timestamp"`
}

// NewSentryHook initialises the Sentry client. Init failures are logged and the
// hook still works as a sink so logging never breaks because of error reporting.
func NewSentryHook(appEnv, appName, dsn string, isDebug bool) *SentryHook {
	sentryTransport := sentry.NewHTTPTransport()
	sentryTransport.Timeout = _sentryServerRequestTimeout

	if err := sentry.Init(sentry.ClientOptions{
		AttachStacktrace: true,
		Debug:            isDebug,
		Dsn:              dsn,
		Environment:      appEnv,
		MaxErrorDepth:    _sentryMaxErrorDepth,
		ServerName:       appName,
		Transport:        sentryTransport,
	}); err != nil {
		log.Println("sentry init error:", err.Error())
	}

	return &SentryHook{
		appEnv:  appEnv,
		appName: appName,
		capture: sentry.CaptureEvent,
	}
}

func (*SentryHook) mapLevel(zl zapcore.Level) sentry.Level {
	switch zl {
	case zapcore.InfoLevel:
		return sentry.LevelInfo
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return sentry.LevelFatal
	}

	return sentry.LevelDebug
}

func (h *SentryHook) Write(p []byte) (n int, err error) {
	event, err := h.eventFor(p)
	if err != nil {
		log.Println(err.Error())
	} else if event != nil {
		h.capture(event)
	}

	// never fail the logger
	return len(p), nil
}

// eventFor returns nil without error for entries below error level.
func (h *SentryHook) eventFor(p []byte) (*sentry.Event, error) {
	var line logLine
	if err := json.Unmarshal(p, &line); err != nil {
		return nil, errors.Wrap(err, "[SentryHook] decode log line")
	}

	level, err := zapcore.ParseLevel(line.Level)
	if err != nil {
		return nil, errors.Wrap(err, "[SentryHook] parse zap level")
	}
	if level < zapcore.ErrorLevel || line.Message == "" {
		return nil, nil
	}

	event := sentry.NewEvent()
	event.Environment = h.appEnv
	event.Level = h.mapLevel(level)
	event.Message = line.Message
	if ts, err := time.ParseInLocation(_timestampLayout, line.Timestamp, time.UTC); err == nil {
		event.Timestamp = ts
	}
	event.Extra["AppName"] = h.appName
	event.Extra["Error"] = line.Error
	event.Extra["CallerFile"] = line.CallerFile
	event.Extra["CallerLine"] = line.CallerLine
	event.Extra["CallerFunc"] = line.CallerFunc
	event.Extra["Stack"] = line.Stack
	event.Exception = append(event.Exception, sentry.Exception{
		Type:  line.Message,
		Value: line.Error,
	})

	return event, nil
}

// Flush waits for buffered events to be delivered.
func (h *SentryHook) Flush() bool {
	return sentry.Flush(_sentryFlushTimeout)
}
