package podplay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Client is a PodPlay catalog API client.
type Client struct {
	baseURL    string
	userAgent  string
	language   Language
	timeout    time.Duration
	httpClient *http.Client
	ownsClient bool
	logger     zerolog.Logger

	closeOnce sync.Once

	categoryMu    sync.RWMutex
	categoryRoots []*Category
	categoryGroup singleflight.Group
}

// NewClient creates a new PodPlay catalog client. The zero configuration
// talks to the public API in English with a 10 second request timeout.
func NewClient(logger zerolog.Logger, opts ...Option) (*Client, error) {
	options := clientOptions{
		baseURL:   DefaultAPIURL,
		userAgent: DefaultUserAgent,
		language:  DefaultLanguage,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&options)
	}

	if _, err := url.Parse(options.baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", options.baseURL, err)
	}
	if _, err := ParseLanguage(string(options.language)); err != nil {
		return nil, err
	}

	client := &Client{
		baseURL:   strings.TrimRight(options.baseURL, "/"),
		userAgent: options.userAgent,
		language:  options.language,
		timeout:   options.timeout,
		logger:    logger,
	}

	if options.httpClient != nil {
		client.httpClient = options.httpClient
	} else {
		client.httpClient = &http.Client{}
		client.ownsClient = true
	}

	return client, nil
}

// request performs a single API request and returns the raw JSON body.
// A non-nil headers argument replaces the default headers for this call.
func (c *Client) request(ctx context.Context, method, path string, params url.Values, headers http.Header) (json.RawMessage, error) {
	target := fmt.Sprintf("%s/%s/%s", c.baseURL, c.language, path)
	if query := compactQuery(params); len(query) > 0 {
		target += "?" + query.Encode()
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if headers == nil {
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", c.userAgent)
	} else {
		req.Header = headers.Clone()
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", target).
		Msg("Executing PodPlay API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeoutError(err) {
			return nil, &ConnectionTimeoutError{URL: target, Err: err}
		}
		return nil, &ConnectionError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeoutError(err) {
			return nil, &ConnectionTimeoutError{URL: target, Err: err}
		}
		return nil, &ConnectionError{URL: target, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &ConnectionError{URL: target, StatusCode: resp.StatusCode}
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return nil, &APIError{ContentType: contentType, Body: string(body)}
	}
	if !json.Valid(body) {
		return nil, &APIError{
			ContentType: contentType,
			Body:        string(body),
			Err:         errors.New("response body is not valid JSON"),
		}
	}

	return json.RawMessage(body), nil
}

// Close releases the connection pool when the client owns it. A pool supplied
// through WithHTTPClient stays under the caller's control.
func (c *Client) Close() {
	if !c.ownsClient {
		return
	}
	c.closeOnce.Do(func() {
		c.httpClient.CloseIdleConnections()
	})
}

// decode unmarshals a raw API body into v.
func decode(raw json.RawMessage, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return &APIError{ContentType: "application/json", Body: string(raw), Err: err}
	}
	return nil
}

// compactQuery copies params, dropping empty values. A key whose values are
// all empty is omitted entirely.
func compactQuery(params url.Values) url.Values {
	query := url.Values{}
	for key, values := range params {
		for _, value := range values {
			if value == "" {
				continue
			}
			query.Add(key, value)
		}
	}
	return query
}

func isTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
