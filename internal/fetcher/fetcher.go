package fetcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/MichalMitros/car-tracker/internal/platform/clock"
	"github.com/rs/zerolog"
	"golang.org/x/net/html/charset"
)

const (
	// DefaultMaxAttempts is default number of attempts made for single page.
	DefaultMaxAttempts = 3

	rateLimitBackoff = 5 * time.Second
	failureBackoff   = 2 * time.Second
)

// DefaultUserAgents are browser user agents rotated between requests.
var DefaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 14.4; rv:125.0) Gecko/20100101 Firefox/125.0",
}

// Sleeper waits between attempts.
type Sleeper interface {
	// Sleep blocks for provided duration or until context is done.
	Sleep(ctx context.Context, d time.Duration) error
}

// Option is custom configuration of Fetcher.
type Option func(f *Fetcher)

// Fetcher fetches marketplace pages via http, retrying transient failures.
type Fetcher struct {
	client      *http.Client
	userAgents  []string
	maxAttempts int
	sleeper     Sleeper
	logger      *zerolog.Logger
}

// NewFetcher returns new Fetcher.
func NewFetcher(client *http.Client, logger *zerolog.Logger, ops ...Option) *Fetcher {
	fet := &Fetcher{
		client:      client,
		userAgents:  DefaultUserAgents,
		maxAttempts: DefaultMaxAttempts,
		sleeper:     clock.ContextSleeper{},
		logger:      logger,
	}

	for _, op := range ops {
		op(fet)
	}

	return fet
}

// FetchPage returns UTF-8 body of page under provided url.
// Rate limited attempts are retried after attempt*5s, other failures after attempt*2s.
// When all attempts fail returned error wraps ErrFetchExhausted and the last failure.
func (f *Fetcher) FetchPage(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= f.maxAttempts; attempt++ {
		body, err := f.fetchOnce(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, fmt.Errorf("can't fetch page: %w", ctx.Err())
		}

		if attempt == f.maxAttempts {
			break
		}

		wait := time.Duration(attempt) * failureBackoff
		if errors.Is(err, ErrRateLimited) {
			wait = time.Duration(attempt) * rateLimitBackoff
		}

		f.logger.Warn().
			Err(err).
			Str("url", url).
			Int("attempt", attempt).
			Dur("backoff", wait).
			Msg("page fetch failed, retrying")

		if err := f.sleeper.Sleep(ctx, wait); err != nil {
			return nil, fmt.Errorf("can't fetch page: %w", err)
		}
	}

	return nil, fmt.Errorf("%w: %s after %d attempts: %w", ErrFetchExhausted, url, f.maxAttempts, lastErr)
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "it-IT,it;q=0.8,en-US;q=0.5,en;q=0.3")
	req.Header.Set("DNT", "1")
	req.Header.Set("Upgrade-Insecure-Requests", "1")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("can't get http response: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: retry after %q", ErrRateLimited, resp.Header.Get("Retry-After"))
	default:
		return nil, fmt.Errorf("%w: got %d", ErrStatusNotOK, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("can't read response body: %w", err)
	}

	return toUTF8(body, resp.Header.Get("Content-Type"))
}

func (f *Fetcher) userAgent() string {
	return f.userAgents[rand.IntN(len(f.userAgents))]
}

// toUTF8 converts body to UTF-8 using encoding from content type header or body itself.
func toUTF8(body []byte, contentType string) ([]byte, error) {
	encoding, name, _ := charset.DetermineEncoding(body, contentType)
	if name == "utf-8" {
		return body, nil
	}

	converted, err := io.ReadAll(encoding.NewDecoder().Reader(bytes.NewReader(body)))
	if err != nil {
		return nil, fmt.Errorf("can't convert response body to UTF-8: %w", err)
	}

	return converted, nil
}

// WithUserAgents sets Fetcher's user agents pool. Empty pool is ignored.
func WithUserAgents(userAgents []string) Option {
	return func(f *Fetcher) {
		if len(userAgents) > 0 {
			f.userAgents = userAgents
		}
	}
}

// WithMaxAttempts sets Fetcher's number of attempts per page.
func WithMaxAttempts(attempts int) Option {
	return func(f *Fetcher) {
		if attempts > 0 {
			f.maxAttempts = attempts
		}
	}
}

// WithSleeper sets Fetcher's custom Sleeper.
func WithSleeper(s Sleeper) Option {
	return func(f *Fetcher) {
		f.sleeper = s
	}
}
