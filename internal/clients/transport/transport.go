// Package transport performs single JSON GET requests against the upstream API
package transport

//go:generate mockgen -destination=mock/mock_fetcher.go -package=transportmock github.com/KirkDiggler/pokedex-cli/internal/clients/transport Fetcher

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/KirkDiggler/pokedex-cli/internal/errors"
	"github.com/KirkDiggler/pokedex-cli/internal/pkg/clock"
)

const (
	// DefaultHTTPTimeout bounds every upstream call
	DefaultHTTPTimeout = 5 * time.Second
	// DefaultUserAgent is sent when Config.UserAgent is empty
	DefaultUserAgent = "pokedex-cli"

	// evolution chains and type listings are the largest bodies, well under this
	maxBodyBytes = 8 << 20
	// how much of an error body we read so the connection closes cleanly
	maxDrainBytes = 4 << 10
)

// Fetcher issues one GET per call and classifies the outcome
type Fetcher interface {
	// Fetch returns the raw JSON body of a 200 response.
	// 404 is a NotFound error, any other status a Service error carrying the
	// status, network and timeout failures a Transport error.
	Fetch(ctx context.Context, url string) (json.RawMessage, error)
}

// Config contains configuration options for the transport
type Config struct {
	// HTTPTimeout for each request (optional, defaults to 5 seconds)
	HTTPTimeout time.Duration
	// UserAgent header value (optional, defaults to "pokedex-cli")
	UserAgent string
	// HTTPClient overrides the default client (optional). Its Timeout is
	// replaced by HTTPTimeout when unset.
	HTTPClient *http.Client
	// Clock used to time requests (optional, defaults to the system clock)
	Clock clock.Clock
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.HTTPTimeout < 0 {
		return errors.InvalidArgumentf("http timeout must not be negative, got %s", cfg.HTTPTimeout)
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	return nil
}

type fetcher struct {
	httpClient *http.Client
	userAgent  string
	clock      clock.Clock
}

// New creates a Fetcher with the given configuration.
func New(cfg *Config) (Fetcher, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var httpClient *http.Client
	if cfg.HTTPClient != nil {
		c := *cfg.HTTPClient
		if c.Timeout == 0 {
			c.Timeout = cfg.HTTPTimeout
		}
		httpClient = &c
	} else {
		// one connection per call, released as soon as the body is closed
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
			Transport: &http.Transport{
				Proxy:             http.ProxyFromEnvironment,
				DisableKeepAlives: true,
			},
		}
	}

	return &fetcher{
		httpClient: httpClient,
		userAgent:  cfg.UserAgent,
		clock:      cfg.Clock,
	}, nil
}

func (f *fetcher) Fetch(ctx context.Context, url string) (json.RawMessage, error) {
	if err := errors.CheckAbsoluteURL(url); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to build request for %s", url)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", f.userAgent)

	start := f.clock.Now()
	resp, err := f.httpClient.Do(req)
	if err != nil {
		slog.DebugContext(ctx, "upstream request failed",
			"url", url,
			"duration", f.clock.Now().Sub(start),
			"error", err)
		return nil, classifyTransportError(err, url)
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // nothing useful to do on close failure
	}()

	slog.DebugContext(ctx, "upstream response",
		"url", url,
		"status", resp.StatusCode,
		"duration", f.clock.Now().Sub(start))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		drain(resp.Body)
		return nil, errors.NotFoundf("no resource at %s", url).WithMeta(errors.MetaURL, url)
	case resp.StatusCode != http.StatusOK:
		drain(resp.Body)
		return nil, errors.Servicef(resp.StatusCode, "upstream returned status %d", resp.StatusCode).
			WithMeta(errors.MetaURL, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, classifyTransportError(err, url)
	}
	if !json.Valid(body) {
		return nil, errors.MalformedDataf("response from %s is not valid JSON", url).
			WithMeta(errors.MetaURL, url)
	}

	return json.RawMessage(body), nil
}

func drain(body io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxDrainBytes))
}

func classifyTransportError(err error, url string) error {
	timeout := stderrors.Is(err, context.DeadlineExceeded)
	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		timeout = true
	}

	message := "request failed"
	switch {
	case timeout:
		message = "request timed out"
	case stderrors.Is(err, context.Canceled):
		message = "request canceled"
	}

	return errors.Transport(err, message).
		WithMeta(errors.MetaURL, url).
		WithMeta(errors.MetaTimeout, timeout)
}
