// Package scryfall is a small client for the two Scryfall endpoints the
// dataset tools need: paginated card search and batched collection lookup.
package scryfall

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
)

// DefaultBaseURL is the production Scryfall API root.
const DefaultBaseURL = "https://api.scryfall.com"

// collectionBatchLimit is Scryfall's cap on identifiers per /cards/collection
// request.
const collectionBatchLimit = 75

const maxRetries = 4

// Client talks to the Scryfall API. The zero value is not usable; call New.
type Client struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
	// Progressf, when set, receives one line per page or batch fetched.
	Progressf func(format string, v ...interface{})
	// backoff returns the delay before retry attempt n (n >= 1). Tests
	// shrink it; nil means the default exponential schedule.
	backoff func(attempt int) time.Duration
}

func New() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		UserAgent:  "mtgslop/dataset-tools",
		HTTPClient: http.DefaultClient,
	}
}

// APIError is a non-retryable 4xx response, with Scryfall's details field when
// the body carried one.
type APIError struct {
	StatusCode int
	Details    string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("scryfall error %d: %s", e.StatusCode, e.Details)
	}
	return fmt.Sprintf("scryfall error %d", e.StatusCode)
}

type searchPage struct {
	Data     []json.RawMessage `json:"data"`
	HasMore  bool              `json:"has_more"`
	NextPage string            `json:"next_page"`
}

// Search walks /cards/search for query, following next_page links, and
// returns the raw card objects in API order. unique defaults to "cards".
func (c *Client) Search(ctx context.Context, query, unique string) ([]json.RawMessage, error) {
	if unique == "" {
		unique = "cards"
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("unique", unique)
	params.Set("order", "name")
	next := c.BaseURL + "/cards/search?" + params.Encode()

	var out []json.RawMessage
	for pageNum := 1; next != ""; pageNum++ {
		c.progressf("fetching page %d...", pageNum)
		var page searchPage
		if err := c.doJSON(ctx, http.MethodGet, next, nil, &page); err != nil {
			return nil, err
		}
		out = append(out, page.Data...)
		if !page.HasMore {
			break
		}
		next = page.NextPage
	}
	return out, nil
}

type collectionRequest struct {
	Identifiers []nameIdentifier `json:"identifiers"`
}

type nameIdentifier struct {
	Name string `json:"name"`
}

type collectionResponse struct {
	Data     []json.RawMessage `json:"data"`
	NotFound []nameIdentifier  `json:"not_found"`
}

// Collection fetches card objects for names via /cards/collection, batching
// up to 75 identifiers per request. Names that resolve are keyed by the name
// Scryfall returns; split-card names that miss are retried once by their
// front face. Unresolved input names come back in notFound.
func (c *Client) Collection(ctx context.Context, names []string) (found map[string]json.RawMessage, notFound []string, err error) {
	found = make(map[string]json.RawMessage, len(names))
	var missed []string
	for start := 0; start < len(names); start += collectionBatchLimit {
		end := start + collectionBatchLimit
		if end > len(names) {
			end = len(names)
		}
		c.progressf("fetching batch %d (%d names)...", start/collectionBatchLimit+1, end-start)
		m, err := c.collectionBatch(ctx, names[start:end], found)
		if err != nil {
			return nil, nil, err
		}
		missed = append(missed, m...)
	}

	// Retry split cards ("Front // Back") by front face only.
	var retry []string
	retryFor := make(map[string]string)
	for _, n := range missed {
		if i := strings.Index(n, " // "); i > 0 {
			front := strings.TrimSpace(n[:i])
			if front != "" {
				retry = append(retry, front)
				retryFor[front] = n
				continue
			}
		}
		notFound = append(notFound, n)
	}
	for start := 0; start < len(retry); start += collectionBatchLimit {
		end := start + collectionBatchLimit
		if end > len(retry) {
			end = len(retry)
		}
		m, err := c.collectionBatch(ctx, retry[start:end], found)
		if err != nil {
			return nil, nil, err
		}
		for _, front := range m {
			notFound = append(notFound, retryFor[front])
		}
	}
	return found, notFound, nil
}

// collectionBatch fetches one batch into found and returns the names Scryfall
// reported as not found.
func (c *Client) collectionBatch(ctx context.Context, names []string, found map[string]json.RawMessage) ([]string, error) {
	req := collectionRequest{Identifiers: make([]nameIdentifier, len(names))}
	for i, n := range names {
		req.Identifiers[i] = nameIdentifier{Name: n}
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	var resp collectionResponse
	if err := c.doJSON(ctx, http.MethodPost, c.BaseURL+"/cards/collection", body, &resp); err != nil {
		return nil, err
	}
	for _, raw := range resp.Data {
		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil || obj.Name == "" {
			continue
		}
		found[obj.Name] = raw
	}
	missed := make([]string, 0, len(resp.NotFound))
	for _, id := range resp.NotFound {
		missed = append(missed, id.Name)
	}
	return missed, nil
}

// doJSON performs one API call with retries. Rate limiting (429) honors
// Retry-After; network errors and 5xx responses back off exponentially; other
// 4xx responses fail immediately with an APIError.
func (c *Client) doJSON(ctx context.Context, method, u string, body []byte, out interface{}) error {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			if err := sleepCtx(ctx, c.retryDelay(attempt)); err != nil {
				return err
			}
		}
		var rd io.Reader
		if body != nil {
			rd = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, u, rd)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", c.UserAgent)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			delay := retryAfter(resp)
			resp.Body.Close()
			lastErr = &APIError{StatusCode: resp.StatusCode, Details: "rate limited"}
			if err := sleepCtx(ctx, delay); err != nil {
				return err
			}
			continue
		case resp.StatusCode >= 500:
			resp.Body.Close()
			lastErr = &APIError{StatusCode: resp.StatusCode}
			continue
		case resp.StatusCode >= 400:
			details := decodeDetails(resp)
			resp.Body.Close()
			return &APIError{StatusCode: resp.StatusCode, Details: details}
		}
		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		if err != nil {
			return err
		}
		return nil
	}
	return lastErr
}

func (c *Client) progressf(format string, v ...interface{}) {
	if c.Progressf != nil {
		c.Progressf(format, v...)
	}
}

func (c *Client) retryDelay(attempt int) time.Duration {
	if c.backoff != nil {
		return c.backoff(attempt)
	}
	return time.Duration(1<<uint(attempt-1)) * 500 * time.Millisecond
}

func retryAfter(resp *http.Response) time.Duration {
	if s := resp.Header.Get("Retry-After"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Second
}

func decodeDetails(resp *http.Response) string {
	var e struct {
		Details string `json:"details"`
		Warning string `json:"warning"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
		return ""
	}
	if e.Details != "" {
		return e.Details
	}
	return e.Warning
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// WithTimeout creates a child context with the specified timeout, defaulting
// to 5s if d==0.
func WithTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = 5 * time.Second
	}
	return context.WithTimeout(parent, d)
}
