package arenaapi

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics учет вызовов бэкенда арены
type Metrics interface {
	ObserveBackend(endpoint, outcome string, started time.Time)
}

type noopMetrics struct{}

func (noopMetrics) ObserveBackend(string, string, time.Time) {}
