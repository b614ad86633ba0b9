package seed

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Clark-Hu/movie-catalog/internal/domain"
)

// HTTPSource fetches a snapshot from a remote catalog endpoint.
type HTTPSource struct {
	baseURL *url.URL
	apiKey  string
	client  *http.Client
	logger  *log.Logger
}

// NewHTTPSource constructs a source reading <baseURL>/catalog.
func NewHTTPSource(baseURL, apiKey string, timeout time.Duration, logger *log.Logger) (*HTTPSource, error) {
	if logger == nil {
		logger = log.Default()
	}
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse seed url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("parse seed url: unsupported scheme %q", parsed.Scheme)
	}
	return &HTTPSource{
		baseURL: parsed,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   timeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   timeout,
				ResponseHeaderTimeout: timeout,
			},
		},
		logger: logger,
	}, nil
}

// Load implements Source.
func (s *HTTPSource) Load(ctx context.Context) (domain.Snapshot, error) {
	endpoint := s.baseURL.JoinPath("catalog")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if s.apiKey != "" {
		req.Header.Set("X-API-Key", s.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("fetch seed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		snap, err := Decode(resp.Body)
		if err != nil {
			return domain.Snapshot{}, err
		}
		s.logger.Printf("seed: fetched %d movies and %d collections from %s", len(snap.Movies), len(snap.Collections), endpoint.Redacted())
		return snap, nil
	case http.StatusNotFound:
		return domain.Snapshot{}, ErrNotFound
	default:
		s.logger.Printf("seed: unexpected status %d from %s", resp.StatusCode, endpoint.Redacted())
		return domain.Snapshot{}, fmt.Errorf("seed: upstream returned %d", resp.StatusCode)
	}
}
