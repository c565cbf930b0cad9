package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/backedfi/fiat-bridge/internal/observability/metrics"
)

// HttpClient is implemented by the concrete service clients so SendRequest
// can stay generic over them.
type HttpClient interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() time.Duration
	GetHttpClient() *http.Client
}

type HttpClientOptions struct {
	Path string
	// TemplatePath is the path with parameters unexpanded, used as the
	// metrics label to keep its cardinality bounded
	TemplatePath string
	Headers      map[string]string
}

// HttpClientError carries the status and machine-readable error code of a
// non-2xx response.
type HttpClientError struct {
	StatusCode int
	ErrorCode  string
	Message    string
}

func (e *HttpClientError) Error() string {
	return fmt.Sprintf("http client error: status %d, code %s: %s", e.StatusCode, e.ErrorCode, e.Message)
}

type errorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

// SendRequest sends a JSON request to the client's service and decodes the
// JSON response into R. Non-2xx responses are returned as *HttpClientError.
func SendRequest[I any, R any](
	ctx context.Context,
	c HttpClient,
	method string,
	opts *HttpClientOptions,
	input *I,
) (*R, error) {
	url := c.GetBaseURL() + opts.Path

	var body io.Reader
	if input != nil {
		payload, err := json.Marshal(input)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	ctx, cancel := context.WithTimeout(ctx, c.GetDefaultRequestTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	timer := metrics.StartClientRequestDurationTimer(c.GetBaseURL(), method, opts.TemplatePath)

	resp, err := c.GetHttpClient().Do(req)
	if err != nil {
		timer(0)
		return nil, fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer func() {
		//nolint:errcheck
		resp.Body.Close()
	}()

	timer(resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errResp errorResponse
		//nolint:errcheck
		json.NewDecoder(resp.Body).Decode(&errResp)
		return nil, &HttpClientError{
			StatusCode: resp.StatusCode,
			ErrorCode:  errResp.ErrorCode,
			Message:    errResp.Message,
		}
	}

	var result R
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}
