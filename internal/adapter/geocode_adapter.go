package adapter

import (
	"CivicConnectAPI/internal/config"
	"CivicConnectAPI/internal/helper"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
)

// GeocodeAdapter resolves coordinates to human-readable addresses via a
// Nominatim-compatible reverse endpoint. Lookups are best-effort: every
// call carries its own timeout and a failure returns an error the caller
// is expected to log and ignore. Results are cached in redis since a
// coordinate pair never changes its address between report submissions.
type GeocodeAdapter struct {
	httpClient   *http.Client
	redisAdapter *RedisAdapter
	baseURL      string
	cacheTTL     time.Duration
}

func NewGeocodeAdapter(cfg *config.AppConfig, httpClient *http.Client, redisAdapter *RedisAdapter) *GeocodeAdapter {
	return &GeocodeAdapter{
		httpClient:   httpClient,
		redisAdapter: redisAdapter,
		baseURL:      cfg.GeocodeBaseURL,
		cacheTTL:     time.Duration(cfg.GeocodeCacheSeconds) * time.Second,
	}
}

type reverseGeocodeResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

func (g *GeocodeAdapter) Reverse(ctx context.Context, latitude, longitude float64) (string, error) {
	cacheKey := fmt.Sprintf("geocode:%.6f:%.6f", latitude, longitude)

	if g.redisAdapter != nil {
		if cached, err := g.redisAdapter.Get(ctx, cacheKey); err == nil && cached != "" {
			return cached, nil
		} else if err != nil && err != redis.Nil {
			slog.Warn("Geocode cache lookup failed", "error", err)
		}
	}

	reqCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	endpoint := fmt.Sprintf("%s/reverse?format=jsonv2&lat=%s&lon=%s",
		g.baseURL,
		url.QueryEscape(fmt.Sprintf("%f", latitude)),
		url.QueryEscape(fmt.Sprintf("%f", longitude)),
	)

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", "CivicConnectAPI/1.0")

	resp, err := helper.RetryWithBackoff(func() (*http.Response, bool, error) {
		resp, err := g.httpClient.Do(req)
		if err != nil {
			return nil, helper.ShouldRetryHTTP(nil, err), fmt.Errorf("geocode request failed: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			retry := helper.ShouldRetryHTTP(resp, nil)
			resp.Body.Close()
			return nil, retry, fmt.Errorf("geocode request returned status %d", resp.StatusCode)
		}
		return resp, false, nil
	}, 2, 500*time.Millisecond)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read geocode response: %w", err)
	}

	var geoResp reverseGeocodeResponse
	if err := json.Unmarshal(body, &geoResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal geocode response: %w", err)
	}

	if geoResp.Error != "" || geoResp.DisplayName == "" {
		return "", fmt.Errorf("no address found for %f,%f", latitude, longitude)
	}

	if g.redisAdapter != nil {
		if err := g.redisAdapter.Set(ctx, cacheKey, geoResp.DisplayName, g.cacheTTL); err != nil {
			slog.Warn("Failed to cache geocode result", "error", err)
		}
	}

	return geoResp.DisplayName, nil
}
