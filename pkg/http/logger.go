package http

import (
	"classy-weather/pkg/log"

	"go.uber.org/zap"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a transport failure or an error HTTP status
	LogResponseError(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64, err error)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string) {}

func (noopLogger) LogResponseSuccess(string, string, map[string]string, int, string, int64) {}

func (noopLogger) LogResponseError(string, string, map[string]string, int, string, int64, error) {
}

// ZapLogger writes outgoing request traces to the application logger at debug level, failures at warn.
type ZapLogger struct {
	Name string
}

// NewZapLogger creates an HTTPLogger tagging every entry with the client name.
func NewZapLogger(name string) *ZapLogger {
	return &ZapLogger{Name: name}
}

func (l *ZapLogger) LogRequest(method, url string, _ map[string]string) {
	log.Debug("outgoing request",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url))
}

func (l *ZapLogger) LogResponseSuccess(method, url string, _ map[string]string, httpStatus int, _ string, latency int64) {
	log.Debug("outgoing request finished",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (l *ZapLogger) LogResponseError(method, url string, _ map[string]string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("outgoing request failed",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.String("response", responseBody),
		zap.Int64("latency_ms", latency),
		zap.Error(err))
}
