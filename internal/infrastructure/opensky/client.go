package opensky

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/airport-tracker/internal/config"
	"github.com/airport-tracker/internal/domain"
	"github.com/airport-tracker/internal/domain/repository"
	"github.com/airport-tracker/internal/pkg/errors"
	"go.uber.org/zap"
)

const (
	departuresPath = "/flights/departure"
	arrivalsPath   = "/flights/arrival"

	// OpenSky принимает интервал не длиннее 7 дней
	maxLookbackHours = 7 * 24

	maxErrorBody = 512
)

// cachedFlights - сырые ответы обоих эндпоинтов, чтобы после кеша сохранялся payload
type cachedFlights struct {
	Departures json.RawMessage `json:"departures"`
	Arrivals   json.RawMessage `json:"arrivals"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	password   string
	cache      repository.CacheRepository
	cacheTTL   time.Duration
	retry      retryConfig
	now        func() time.Time
	logger     *zap.Logger
}

// Option настраивает Client
type Option func(*Client)

// WithHTTPClient подменяет HTTP клиент
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL подменяет адрес API
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithCache включает кеширование ответов на ttl
func WithCache(cache repository.CacheRepository, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// WithRetryDelay задаёт начальную задержку между повторами
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) { c.retry.InitialDelay = d }
}

// WithClock подменяет источник текущего времени
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// NewClient создает клиент OpenSky Network
func NewClient(cfg *config.OpenSkyConfig, logger *zap.Logger, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		username:   cfg.Username,
		password:   cfg.Password,
		retry: retryConfig{
			MaxRetries:   max(cfg.MaxRetries, 0),
			InitialDelay: time.Second,
			MaxDelay:     10 * time.Second,
		},
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ repository.FlightProvider = (*Client)(nil)

// FetchRecent возвращает вылеты и прилёты аэропорта за последние lookbackHours часов.
// Любая ошибка оборачивается в ErrProviderUnavailable.
func (c *Client) FetchRecent(ctx context.Context, code string, lookbackHours int) (*domain.ProviderFlights, error) {
	code = domain.NormalizeCode(code)
	if code == "" {
		return nil, errors.ErrInvalidAirportCode
	}
	if lookbackHours <= 0 {
		return nil, errors.ErrInvalidInput.WithDetails(map[string]interface{}{"lookback_hours": "must be positive"})
	}
	lookbackHours = min(lookbackHours, maxLookbackHours)

	cacheKey := fmt.Sprintf("opensky:flights:%s:%d", code, lookbackHours)
	if raw, ok := c.fromCache(ctx, cacheKey); ok {
		return decodeFlights(raw)
	}

	end := c.now().Unix()
	begin := end - int64(lookbackHours)*3600

	var raw cachedFlights
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		body, err := c.fetch(gctx, departuresPath, code, begin, end)
		raw.Departures = body
		return err
	})
	g.Go(func() error {
		body, err := c.fetch(gctx, arrivalsPath, code, begin, end)
		raw.Arrivals = body
		return err
	})
	if err := g.Wait(); err != nil {
		c.logger.Warn("OpenSky request failed", zap.String("icao", code), zap.Error(err))
		return nil, errors.ErrProviderUnavailable.Wrap(err)
	}

	flights, err := decodeFlights(raw)
	if err != nil {
		c.logger.Warn("Failed to decode OpenSky response", zap.String("icao", code), zap.Error(err))
		return nil, err
	}

	c.toCache(ctx, cacheKey, raw)

	c.logger.Debug("OpenSky flights fetched",
		zap.String("icao", code),
		zap.Int("hours", lookbackHours),
		zap.Int("departures", len(flights.Departures)),
		zap.Int("arrivals", len(flights.Arrivals)))

	return flights, nil
}

// fetch выполняет GET с повторами. 404 означает отсутствие рейсов.
func (c *Client) fetch(ctx context.Context, path, code string, begin, end int64) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("airport", code)
	params.Set("begin", strconv.FormatInt(begin, 10))
	params.Set("end", strconv.FormatInt(end, 10))
	reqURL := c.baseURL + path + "?" + params.Encode()

	return withRetry(ctx, c.retry, func() (json.RawMessage, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		if c.username != "" && c.password != "" {
			req.SetBasicAuth(c.username, c.password)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, retryable(fmt.Errorf("failed to execute request: %w", err))
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return json.RawMessage("[]"), nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
			return nil, retryable(fmt.Errorf("opensky %s: status %d, body: %s", path, resp.StatusCode, body))
		case resp.StatusCode != http.StatusOK:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
			return nil, fmt.Errorf("opensky %s: status %d, body: %s", path, resp.StatusCode, body)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, retryable(fmt.Errorf("failed to read response: %w", err))
		}
		return body, nil
	})
}

func (c *Client) fromCache(ctx context.Context, key string) (cachedFlights, bool) {
	var raw cachedFlights
	if c.cache == nil {
		return raw, false
	}

	data, err := c.cache.Get(ctx, key)
	if err != nil || data == nil {
		return raw, false
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		c.logger.Warn("Corrupted OpenSky cache entry", zap.String("key", key), zap.Error(err))
		_ = c.cache.Delete(ctx, key)
		return raw, false
	}

	c.logger.Debug("OpenSky cache hit", zap.String("key", key))
	return raw, true
}

func (c *Client) toCache(ctx context.Context, key string, raw cachedFlights) {
	if c.cache == nil || c.cacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, key, data, c.cacheTTL); err != nil {
		c.logger.Warn("Failed to cache OpenSky response", zap.String("key", key), zap.Error(err))
	}
}

func decodeFlights(raw cachedFlights) (*domain.ProviderFlights, error) {
	departures, err := decodeList(raw.Departures)
	if err != nil {
		return nil, errors.ErrProviderUnavailable.Wrap(fmt.Errorf("decode departures: %w", err))
	}
	arrivals, err := decodeList(raw.Arrivals)
	if err != nil {
		return nil, errors.ErrProviderUnavailable.Wrap(fmt.Errorf("decode arrivals: %w", err))
	}
	return &domain.ProviderFlights{Departures: departures, Arrivals: arrivals}, nil
}

// decodeList разбирает массив рейсов; каждый элемент в компактном виде сохраняется в Raw
func decodeList(body json.RawMessage) ([]domain.ProviderFlight, error) {
	if len(body) == 0 || string(body) == "null" {
		return []domain.ProviderFlight{}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, err
	}

	flights := make([]domain.ProviderFlight, 0, len(items))
	for _, item := range items {
		var f domain.ProviderFlight
		if err := json.Unmarshal(item, &f); err != nil {
			return nil, err
		}
		f.Callsign = strings.TrimSpace(f.Callsign)
		f.ICAO24 = strings.TrimSpace(f.ICAO24)
		f.EstDepartureAirport = domain.NormalizeCode(f.EstDepartureAirport)
		f.EstArrivalAirport = domain.NormalizeCode(f.EstArrivalAirport)
		var compact bytes.Buffer
		if err := json.Compact(&compact, item); err != nil {
			return nil, err
		}
		f.Raw = compact.Bytes()
		flights = append(flights, f)
	}
	return flights, nil
}
