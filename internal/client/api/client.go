package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/resorg/pkg/api"
)

const (
	// DefaultTimeout таймаут HTTP запросов по умолчанию
	DefaultTimeout = 30 * time.Second

	// HeaderRequestID заголовок для корреляции запроса в логах клиента и сервера
	HeaderRequestID = "X-Request-ID"
	// HeaderConnectionString заголовок с альтернативной строкой подключения
	HeaderConnectionString = "X-Connection-String"
	// HeaderDatabaseName заголовок с именем альтернативной БД
	HeaderDatabaseName = "X-Database-Name"

	maxRedirects = 10
)

// ErrNotFound возвращается, когда сервер ответил 404
var ErrNotFound = errors.New("not found")

// HeaderSource поставляет дополнительные заголовки для каждого запроса.
// Используется для переопределения хранилища бэкенда.
type HeaderSource interface {
	Headers(ctx context.Context) (map[string]string, error)
}

// Option настраивает Client
type Option func(*Client)

// WithTimeout задает таймаут HTTP клиента
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger включает логирование запросов
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHeaderSource задает источник дополнительных заголовков
func WithHeaderSource(src HeaderSource) Option {
	return func(c *Client) {
		c.headers = src
	}
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	headers    HeaderSource
	logger     *slog.Logger
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент.
// baseURL базовый путь REST API, например http://localhost:8080/api/
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:       DefaultTimeout,
			CheckRedirect: checkRedirect,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger != nil {
		c.httpClient.Transport = newLoggingTransport(http.DefaultTransport, c.logger)
	}

	return c
}

// checkRedirect ограничивает количество редиректов и не передает
// строку подключения на чужой хост
func checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("stopped after %d redirects", maxRedirects)
	}
	if len(via) > 0 && req.URL.Host != via[0].URL.Host {
		req.Header.Del(HeaderConnectionString)
		req.Header.Del(HeaderDatabaseName)
	}
	return nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + "/" + strings.TrimLeft(path, "/")

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, uuid.New().String())

	if c.headers != nil {
		extra, err := c.headers.Headers(ctx)
		if err != nil {
			// Без переопределения запрос уходит в хранилище по умолчанию
			if c.logger != nil {
				c.logger.Warn("failed to load request headers, using default storage", "error", err)
			}
		}
		for k, v := range extra {
			req.Header.Set(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, respBody)
	}

	// Декодируем успешный ответ
	if result != nil {
		if len(bytes.TrimSpace(respBody)) == 0 {
			return fmt.Errorf("failed to decode response: empty body")
		}
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// statusError превращает неуспешный ответ в ошибку.
// 404 оборачивает ErrNotFound, чтобы вызывающий мог отличить отсутствие записи.
func statusError(code int, body []byte) error {
	msg := strings.TrimSpace(string(body))
	fromServer := false

	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch {
		case errResp.Message != "":
			msg, fromServer = errResp.Message, true
		case errResp.Error != "":
			msg, fromServer = errResp.Error, true
		}
	}

	if code == http.StatusNotFound {
		if msg == "" {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	}

	if fromServer {
		return fmt.Errorf("server error (%d): %s", code, msg)
	}
	return fmt.Errorf("request failed with status %d: %s", code, msg)
}
