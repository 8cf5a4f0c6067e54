package googleapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/thewellington00/google-sheets-helper/sheets"
)

type transportResult struct {
	status  int
	body    string
	headers map[string]string
	err     error
}

type sequenceTransport struct {
	results []transportResult
	calls   int
}

func (s *sequenceTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	s.calls++
	i := s.calls - 1
	if i >= len(s.results) {
		i = len(s.results) - 1
	}
	r := s.results[i]
	if r.err != nil {
		return nil, r.err
	}

	h := make(http.Header)
	for k, v := range r.headers {
		h.Set(k, v)
	}

	return &http.Response{
		StatusCode: r.status,
		Header:     h,
		Body:       io.NopCloser(strings.NewReader(r.body)),
		Request:    req,
	}, nil
}

func newTestClient(t *testing.T, tr http.RoundTripper) *Client {
	t.Helper()
	c := NewWithTokenSource("sheet-id", nil)
	c.BaseURL = "https://api.test.local"
	c.HTTPClient = &http.Client{Transport: tr}
	c.sleep = func(time.Duration) {}
	c.randInt63n = func(n int64) int64 { return 0 }
	return c
}

func TestDoWithRetry_RetriesTransientStatusThenSuccess(t *testing.T) {
	tr := &sequenceTransport{
		results: []transportResult{
			{status: http.StatusServiceUnavailable, body: "busy"},
			{status: http.StatusBadGateway, body: "gateway"},
			{status: http.StatusOK, body: `{"sheets":[]}`},
		},
	}
	c := newTestClient(t, tr)

	if _, err := c.ListWorksheets(context.Background()); err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if tr.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", tr.calls)
	}
}

func TestDoWithRetry_DoesNotRetryClientError(t *testing.T) {
	tr := &sequenceTransport{
		results: []transportResult{
			{status: http.StatusBadRequest, body: `{"error":{"code":400,"message":"Unable to parse range","status":"INVALID_ARGUMENT"}}`},
		},
	}
	c := newTestClient(t, tr)

	_, err := c.FetchGrid(context.Background(), "Data")
	if err == nil {
		t.Fatal("expected error")
	}
	if tr.calls != 1 {
		t.Fatalf("expected 1 attempt, got %d", tr.calls)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Status != "INVALID_ARGUMENT" {
		t.Errorf("status = %q", apiErr.Status)
	}
	if apiErr.Error() != "Unable to parse range" {
		t.Errorf("message = %q", apiErr.Error())
	}
}

func TestAPIError_NotFoundMapsToSentinel(t *testing.T) {
	tr := &sequenceTransport{
		results: []transportResult{
			{status: http.StatusNotFound, body: `{"error":{"code":404,"message":"Requested entity was not found.","status":"NOT_FOUND"}}`},
		},
	}
	c := newTestClient(t, tr)

	_, err := c.FetchGrid(context.Background(), "Data")
	if !errors.Is(err, sheets.ErrNotFound) {
		t.Fatalf("expected errors.Is(err, sheets.ErrNotFound), got %v", err)
	}
}

func TestAPIError_RateLimitMessage(t *testing.T) {
	err := &APIError{StatusCode: http.StatusTooManyRequests, RetryAfter: "30"}
	if got := err.Error(); got != "rate limited by API; retry after 30" {
		t.Errorf("message = %q", got)
	}
}

func TestParseRetryAfterSeconds(t *testing.T) {
	c := newTestClient(t, &sequenceTransport{})
	d, ok := c.parseRetryAfter("5")
	if !ok || d != 5*time.Second {
		t.Errorf("parseRetryAfter(5) = (%v, %v)", d, ok)
	}
	if _, ok := c.parseRetryAfter(""); ok {
		t.Error("empty header should not parse")
	}
	if _, ok := c.parseRetryAfter("0"); ok {
		t.Error("zero seconds should not parse")
	}
}

func TestSleepWithBackoffCapped(t *testing.T) {
	var slept []time.Duration
	c := newTestClient(t, &sequenceTransport{})
	c.sleep = func(d time.Duration) { slept = append(slept, d) }
	c.randInt63n = nil // no jitter: observe the raw delay

	c.baseBackoff = 100 * time.Millisecond
	c.maxBackoff = 300 * time.Millisecond
	for attempt := 1; attempt <= 4; attempt++ {
		c.sleepWithBackoff(attempt, "")
	}

	want := []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		300 * time.Millisecond,
		300 * time.Millisecond,
	}
	if len(slept) != len(want) {
		t.Fatalf("slept %v, want %v", slept, want)
	}
	for i := range want {
		if slept[i] != want[i] {
			t.Errorf("delay[%d] = %v, want %v", i, slept[i], want[i])
		}
	}
}
