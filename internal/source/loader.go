package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/yungbote/catalog-backend/internal/domain"
	"github.com/yungbote/catalog-backend/internal/platform/apierr"
	"github.com/yungbote/catalog-backend/internal/platform/logger"
)

// Loader fetches raw records from the upstream catalog and brand sources.
// The remote-vs-local decision is made once at construction, not per call.
// Fetches apply a fixed timeout and surface failure immediately; there are
// no retries.
type Loader struct {
	log        *logger.Logger
	client     *http.Client
	productURL string
	brandURL   string
	samplePath string
}

type Config struct {
	ProductURL string // optional; falls back to SamplePath when empty
	BrandURL   string // optional; brand fetches fail without it
	SamplePath string
	Timeout    time.Duration
}

func NewLoader(cfg Config, baseLog *logger.Logger) *Loader {
	return &Loader{
		log:        baseLog.With("service", "SourceLoader"),
		client:     &http.Client{Timeout: cfg.Timeout},
		productURL: cfg.ProductURL,
		brandURL:   cfg.BrandURL,
		samplePath: cfg.SamplePath,
	}
}

// Products returns the raw product payload as a slice of untyped items.
// Items are not inspected here; the pipeline's clean pass decides what is
// usable.
func (l *Loader) Products(ctx context.Context) ([]any, error) {
	if l.productURL != "" {
		return l.fetchList(ctx, l.productURL)
	}
	return l.readSample()
}

// Brands returns the raw brand payload. There is no local fallback for
// brands: an unconfigured brand source is a configuration failure.
func (l *Loader) Brands(ctx context.Context) ([]domain.BrandRecord, error) {
	if l.brandURL == "" {
		return nil, apierr.ConfigurationMissing(errors.New("brand source URL is not configured"))
	}
	items, err := l.fetchList(ctx, l.brandURL)
	if err != nil {
		return nil, err
	}
	out := make([]domain.BrandRecord, 0, len(items))
	for _, item := range items {
		if rec, ok := item.(map[string]any); ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (l *Loader) fetchList(ctx context.Context, url string) ([]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apierr.UpstreamUnavailable(fmt.Errorf("build source request: %w", err))
	}
	resp, err := l.client.Do(req)
	if err != nil {
		l.log.Warn("source fetch failed", "url", url, "error", err)
		return nil, apierr.UpstreamUnavailable(fmt.Errorf("fetch source: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		l.log.Warn("source returned non-2xx", "url", url, "status", resp.StatusCode)
		return nil, apierr.UpstreamUnavailable(fmt.Errorf("source returned status %d", resp.StatusCode))
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apierr.UpstreamUnavailable(fmt.Errorf("decode source payload: %w", err))
	}
	return asList(payload)
}

func (l *Loader) readSample() ([]any, error) {
	data, err := os.ReadFile(l.samplePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apierr.ConfigurationMissing(fmt.Errorf("local sample file not found at %q", l.samplePath))
		}
		return nil, apierr.ConfigurationMissing(fmt.Errorf("read local sample file: %w", err))
	}
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, apierr.UpstreamUnavailable(fmt.Errorf("decode local sample file: %w", err))
	}
	return asList(payload)
}

func asList(payload any) ([]any, error) {
	items, ok := payload.([]any)
	if !ok {
		return nil, apierr.UpstreamUnavailable(errors.New("source did not return a list"))
	}
	return items, nil
}
