// Package client is a typed client for the summaries API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const maxResponseBodySize = 10 * 1024 * 1024 // 10 MB

type SummaryRequest struct {
	Text string `json:"text"`
}

// SummaryResult is the decoded server response plus a locally derived word count.
type SummaryResult struct {
	Summary   string
	Timestamp string
	WordCount int
}

type summaryResponse struct {
	Summary   string `json:"summary"`
	Timestamp string `json:"timestamp"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: transport,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateSummary posts req to {baseURL}/summaries. WordCount is always
// recomputed from the returned summary rather than trusted from the server.
func (c *Client) CreateSummary(ctx context.Context, req SummaryRequest) (*SummaryResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("failed to encode request: %w", err)}
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/summaries", bytes.NewReader(payload))
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("failed to create http request: %w", err)}
	}
	httpRequest.Header.Set("Content-Type", "application/json")

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("failed to execute request: %w", err)}
	}
	defer httpResponse.Body.Close()

	limitedReader := &io.LimitedReader{R: httpResponse.Body, N: maxResponseBodySize}
	body, err := io.ReadAll(limitedReader)

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode > 299 {
		// a partial body is still useful in the error message
		return nil, &Error{
			StatusCode: httpResponse.StatusCode,
			Status:     statusText(httpResponse),
			Body:       string(body),
			Err:        err,
		}
	}
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	var decoded summaryResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &Error{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return &SummaryResult{
		Summary:   decoded.Summary,
		Timestamp: decoded.Timestamp,
		WordCount: CountWords(decoded.Summary),
	}, nil
}

// CountWords counts maximal runs of non-whitespace characters in s.
func CountWords(s string) int {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0
	}
	return len(strings.Fields(trimmed))
}

// statusText returns the reason phrase of resp, e.g. "Internal Server Error".
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
