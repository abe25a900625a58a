// pkg/fetcher/fetcher.go
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/NivBraz/trendstats/internal/constants"
)

// ErrStatus is returned when the API answers with anything but 200 OK.
var ErrStatus = errors.New("unexpected status code")

const (
	defaultUserAgent = "trendstats/1.0"
	maxBodyBytes     = 16 << 20
	maxErrorBody     = 512
)

type Fetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	config    FetcherConfig
	userAgent string
}

type FetcherConfig struct {
	RequestsPerSecond float64
	Burst             int
	Timeout           time.Duration
	UserAgent         string
	// Client is used as is apart from Timeout. Pass the OAuth signing client here.
	Client *http.Client
}

func New(config FetcherConfig) *Fetcher {
	if config.RequestsPerSecond <= 0 {
		config.RequestsPerSecond = 1
	}
	if config.Burst <= 0 {
		config.Burst = 1
	}
	if config.UserAgent == "" {
		config.UserAgent = defaultUserAgent
	}

	var client http.Client
	if config.Client != nil {
		client = *config.Client
	} else {
		client.Transport = &http.Transport{
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   100,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 30 * time.Second,
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
		}
	}
	if config.Timeout > 0 {
		client.Timeout = config.Timeout
	}

	return &Fetcher{
		client:    &client,
		limiter:   rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.Burst),
		config:    config,
		userAgent: config.UserAgent,
	}
}

// Fetch performs one paced GET and returns the body of a 200 response.
func (f *Fetcher) Fetch(ctx context.Context, urlStr string) ([]byte, error) {
	// Wait for rate limiter
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json")

	log.Debug().Str(constants.LogURL, urlStr).Msg("Fetching")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Debug().
			Str(constants.LogURL, urlStr).
			Int(constants.LogStatusCode, resp.StatusCode).
			Msg("Request rejected")
		return nil, fmt.Errorf("%w %d: %s", ErrStatus, resp.StatusCode, string(snippet))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}
	return body, nil
}
