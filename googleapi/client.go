// Package googleapi implements sheets.Transport against the Google
// Sheets v4 REST API using a service-account token source.
package googleapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/thewellington00/google-sheets-helper/sheets"
)

const (
	defaultBaseURL        = "https://sheets.googleapis.com"
	defaultRequestTimeout = 60 * time.Second
	defaultMaxAttempts    = 3
	defaultBaseBackoff    = 200 * time.Millisecond
	defaultMaxBackoff     = 2 * time.Second
	defaultUserAgent      = "google-sheets-helper/dev"

	spreadsheetsScope = "https://www.googleapis.com/auth/spreadsheets"
)

// Client is a Google Sheets API client bound to one spreadsheet.
type Client struct {
	BaseURL       string
	SpreadsheetID string
	UserAgent     string
	HTTPClient    *http.Client
	TokenSource   oauth2.TokenSource

	requestTimeout time.Duration
	maxAttempts    int
	baseBackoff    time.Duration
	maxBackoff     time.Duration
	sleep          func(time.Duration)
	randInt63n     func(int64) int64
	now            func() time.Time
}

type rawResponse struct {
	StatusCode int
	RetryAfter string
	Body       []byte
}

// New builds a client for one spreadsheet from service-account key JSON.
func New(ctx context.Context, spreadsheetID string, serviceAccountJSON []byte) (*Client, error) {
	cfg, err := google.JWTConfigFromJSON(serviceAccountJSON, spreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parsing service account key: %w", err)
	}
	return NewWithTokenSource(spreadsheetID, cfg.TokenSource(ctx)), nil
}

// NewWithTokenSource builds a client with an existing token source. A
// nil source sends unauthenticated requests, which is useful in tests.
func NewWithTokenSource(spreadsheetID string, ts oauth2.TokenSource) *Client {
	return &Client{
		BaseURL:        defaultBaseURL,
		SpreadsheetID:  spreadsheetID,
		UserAgent:      defaultUserAgent,
		HTTPClient:     &http.Client{},
		TokenSource:    ts,
		requestTimeout: defaultRequestTimeout,
		maxAttempts:    defaultMaxAttempts,
		baseBackoff:    defaultBaseBackoff,
		maxBackoff:     defaultMaxBackoff,
		sleep:          time.Sleep,
		randInt63n:     rand.Int63n,
		now:            time.Now,
	}
}

// doJSON performs one API call with retries: the request body and
// response are both JSON. out may be nil when the response body is not
// needed.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	raw, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		u, err := url.Parse(strings.TrimRight(c.BaseURL, "/") + path)
		if err != nil {
			return nil, fmt.Errorf("building URL: %w", err)
		}
		if query != nil {
			u.RawQuery = query.Encode()
		}

		var rdr io.Reader
		if body != nil {
			data, err := json.Marshal(body)
			if err != nil {
				return nil, fmt.Errorf("encoding request: %w", err)
			}
			rdr = bytes.NewReader(data)
		}

		req, err := http.NewRequest(method, u.String(), rdr)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if err := c.setCommonHeaders(req); err != nil {
			return nil, err
		}
		return req, nil
	})
	if err != nil {
		return err
	}
	if raw.StatusCode != 200 {
		return parseAPIError(raw.StatusCode, raw.Body, raw.RetryAfter)
	}
	if out != nil {
		if err := json.Unmarshal(raw.Body, out); err != nil {
			return fmt.Errorf("parsing response: %w", err)
		}
	}
	return nil
}

func (c *Client) doWithRetry(ctx context.Context, makeRequest func() (*http.Request, error)) (*rawResponse, error) {
	maxAttempts := c.maxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		req, err := makeRequest()
		if err != nil {
			return nil, err
		}

		timeout := c.requestTimeout
		if timeout <= 0 {
			timeout = defaultRequestTimeout
		}
		reqCtx, cancel := context.WithTimeout(ctx, timeout)
		req = req.WithContext(reqCtx)

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			cancel()
			if attempt < maxAttempts && isRetryableTransportError(err) {
				c.sleepWithBackoff(attempt, "")
				continue
			}
			return nil, fmt.Errorf("API request failed after %d attempt(s): %w", attempt, err)
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		cancel()
		if readErr != nil {
			if attempt < maxAttempts && isRetryableTransportError(readErr) {
				c.sleepWithBackoff(attempt, "")
				continue
			}
			return nil, fmt.Errorf("reading response after %d attempt(s): %w", attempt, readErr)
		}

		if attempt < maxAttempts && shouldRetryStatus(resp.StatusCode) {
			c.sleepWithBackoff(attempt, resp.Header.Get("Retry-After"))
			continue
		}

		return &rawResponse{
			StatusCode: resp.StatusCode,
			RetryAfter: resp.Header.Get("Retry-After"),
			Body:       body,
		}, nil
	}

	return nil, fmt.Errorf("API request failed after %d attempt(s)", maxAttempts)
}

func isRetryableTransportError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}

func shouldRetryStatus(status int) bool {
	switch status {
	case http.StatusRequestTimeout, http.StatusTooManyRequests, http.StatusInternalServerError,
		http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func (c *Client) sleepWithBackoff(attempt int, retryAfterHeader string) {
	if d, ok := c.parseRetryAfter(retryAfterHeader); ok {
		c.sleep(d)
		return
	}

	base := c.baseBackoff
	if base <= 0 {
		base = defaultBaseBackoff
	}
	delay := base
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay <= 0 {
			delay = defaultMaxBackoff
			break
		}
	}

	maxBackoff := c.maxBackoff
	if maxBackoff <= 0 {
		maxBackoff = defaultMaxBackoff
	}
	if delay > maxBackoff {
		delay = maxBackoff
	}
	if delay <= 0 {
		return
	}

	// Full jitter in [0, delay).
	if c.randInt63n != nil {
		delay = time.Duration(c.randInt63n(int64(delay)))
	}
	c.sleep(delay)
}

func (c *Client) parseRetryAfter(headerValue string) (time.Duration, bool) {
	v := strings.TrimSpace(headerValue)
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs <= 0 {
			return 0, false
		}
		return time.Duration(secs) * time.Second, true
	}
	if t, err := http.ParseTime(v); err == nil {
		now := time.Now
		if c.now != nil {
			now = c.now
		}
		d := t.Sub(now())
		if d > 0 {
			return d, true
		}
	}
	return 0, false
}

func (c *Client) setCommonHeaders(req *http.Request) error {
	userAgent := strings.TrimSpace(c.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	req.Header.Set("User-Agent", userAgent)

	if c.TokenSource == nil {
		return nil
	}
	tok, err := c.TokenSource.Token()
	if err != nil {
		return fmt.Errorf("fetching access token: %w", err)
	}
	tok.SetAuthHeader(req)
	return nil
}

// APIError is a typed error returned by API calls, with the HTTP status
// code and the Sheets API status string (e.g. NOT_FOUND).
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	RetryAfter string
}

func (e *APIError) Error() string {
	if friendly := friendlyErrorMessage(e.StatusCode, e.Status, e.Message, e.RetryAfter); friendly != "" {
		return friendly
	}
	if e.Status != "" {
		return fmt.Sprintf("API error %d: %s — %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}

// Is maps 404 responses onto sheets.ErrNotFound so callers can use
// errors.Is without knowing the transport.
func (e *APIError) Is(target error) bool {
	return target == sheets.ErrNotFound && e.StatusCode == http.StatusNotFound
}

// friendlyErrorMessage translates known API statuses into user-facing messages.
func friendlyErrorMessage(statusCode int, status, message, retryAfter string) string {
	if statusCode == http.StatusTooManyRequests {
		if retryAfter != "" {
			return fmt.Sprintf("rate limited by API; retry after %s", retryAfter)
		}
		return "rate limited by API; retry in a moment"
	}

	switch status {
	case "NOT_FOUND", "INVALID_ARGUMENT", "FAILED_PRECONDITION":
		return message // already human-readable, e.g. "Unable to parse range"
	case "PERMISSION_DENIED":
		return "access denied — share the spreadsheet with the service account's client_email"
	case "UNAUTHENTICATED":
		return "authentication failed — check the service account key"
	default:
		return ""
	}
}

func parseAPIError(statusCode int, body []byte, retryAfter string) error {
	var resp errorResponse
	if json.Unmarshal(body, &resp) == nil && resp.Error.Message != "" {
		return &APIError{
			StatusCode: statusCode,
			Status:     resp.Error.Status,
			Message:    resp.Error.Message,
			RetryAfter: retryAfter,
		}
	}
	return &APIError{StatusCode: statusCode, Message: string(body), RetryAfter: retryAfter}
}
