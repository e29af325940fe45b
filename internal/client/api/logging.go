package api

import (
	"log/slog"
	"net/http"
	"time"
)

// loggingTransport логирует исходящие HTTP запросы.
// Логирует метод, путь, статус, время выполнения.
// НЕ логирует заголовки переопределения хранилища (строка подключения содержит пароль).
type loggingTransport struct {
	next   http.RoundTripper
	logger *slog.Logger
}

func newLoggingTransport(next http.RoundTripper, logger *slog.Logger) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{next: next, logger: logger}
}

// RoundTrip выполняет запрос и пишет одну запись лога
func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(start)
	attrs := []any{
		"method", req.Method,
		"path", req.URL.Path,
		"request_id", req.Header.Get(HeaderRequestID),
		"override", req.Header.Get(HeaderDatabaseName) != "",
		"duration_ms", duration.Milliseconds(),
	}

	if err != nil {
		t.logger.Log(req.Context(), slog.LevelWarn, "HTTP request failed", append(attrs, "error", err)...)
		return nil, err
	}

	// Уровень логирования зависит от статуса
	logLevel := slog.LevelDebug
	if resp.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if resp.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}

	t.logger.Log(req.Context(), logLevel, "HTTP request", append(attrs, "status", resp.StatusCode)...)

	return resp, nil
}
