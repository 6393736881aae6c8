package middleware

import "time"

type MetricsRecorder interface {
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
