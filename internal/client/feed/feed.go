// Package feed загружает внешнюю ленту рекомендованных ресурсов.
// Лента это статический JSON вне основного бэкенда, поэтому запрос
// идет напрямую, без заголовков переопределения хранилища.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/iudanet/resorg/internal/models"
	"github.com/iudanet/resorg/pkg/api"
)

const (
	// DefaultTTL время жизни загруженной ленты в памяти
	DefaultTTL = 10 * time.Minute

	cacheKey = "recommended"
)

// Client загружает и кеширует ленту рекомендаций
type Client struct {
	httpClient *http.Client
	cache      *cache.Cache
	logger     *slog.Logger
	url        string
}

// NewClient создает клиент ленты.
// ttl <= 0 означает DefaultTTL.
func NewClient(url string, httpClient *http.Client, ttl time.Duration, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Client{
		url:        url,
		httpClient: httpClient,
		cache:      cache.New(ttl, 2*ttl),
		logger:     logger,
	}
}

// Recommended возвращает ленту рекомендаций, используя кеш при наличии
func (c *Client) Recommended(ctx context.Context) ([]models.Recommendation, error) {
	if x, found := c.cache.Get(cacheKey); found {
		return x.([]models.Recommendation), nil
	}

	items, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.cache.Set(cacheKey, items, cache.DefaultExpiration)
	c.logger.Debug("recommended feed loaded", "count", len(items))

	return items, nil
}

// Invalidate сбрасывает закешированную ленту
func (c *Client) Invalidate() {
	c.cache.Delete(cacheKey)
}

func (c *Client) fetch(ctx context.Context) ([]models.Recommendation, error) {
	if c.url == "" {
		return nil, fmt.Errorf("recommended feed url is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed request failed with status %d", resp.StatusCode)
	}

	var raw []api.RecommendedResource
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}

	items := make([]models.Recommendation, 0, len(raw))
	for _, r := range raw {
		resType, err := models.ParseResourceType(r.Type)
		if err != nil {
			// Пропускаем записи неизвестного типа
			c.logger.Debug("skipping feed item", "name", r.Name, "error", err)
			continue
		}
		items = append(items, models.Recommendation{
			Name:        r.Name,
			Description: r.Description,
			Type:        resType,
			Value:       r.Value,
		})
	}

	return items, nil
}
