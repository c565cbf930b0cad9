package ledgerclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/backedfi/fiat-bridge/internal/clients/client"
	"github.com/backedfi/fiat-bridge/internal/config"
)

const (
	balanceEndpoint   = "/v1/accounts/{account}/balance"
	allowanceEndpoint = "/v1/accounts/{owner}/allowance/{spender}"
	statusEndpoint    = "/v1/status"
	batchEndpoint     = "/v1/operations/batch"
)

type Client struct {
	httpClient *http.Client
	cfg        *config.LedgerConfig
}

func NewClient(cfg *config.LedgerConfig) *Client {
	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
	}
}

func (c *Client) GetBaseURL() string {
	return c.cfg.Endpoint
}

func (c *Client) GetDefaultRequestTimeout() time.Duration {
	return c.cfg.Timeout
}

func (c *Client) GetHttpClient() *http.Client {
	return c.httpClient
}

func (c *Client) BalanceOf(ctx context.Context, account string) (sdkmath.Int, error) {
	type empty struct{}

	call := func() (sdkmath.Int, error) {
		opts := &client.HttpClientOptions{
			Path:         "/v1/accounts/" + url.PathEscape(account) + "/balance",
			TemplatePath: balanceEndpoint,
		}

		resp, err := client.SendRequest[empty, balanceResponse](ctx, c, http.MethodGet, opts, nil)
		if err != nil {
			return sdkmath.Int{}, err
		}
		return resp.Balance, nil
	}

	result, err := clientCallWithRetry(ctx, call, c.cfg)
	if err != nil {
		return sdkmath.Int{}, fmt.Errorf("failed to get balance of %s: %w", account, err)
	}
	return result, nil
}

func (c *Client) Allowance(ctx context.Context, owner string, spender string) (sdkmath.Int, error) {
	type empty struct{}

	call := func() (sdkmath.Int, error) {
		opts := &client.HttpClientOptions{
			Path: "/v1/accounts/" + url.PathEscape(owner) +
				"/allowance/" + url.PathEscape(spender),
			TemplatePath: allowanceEndpoint,
		}

		resp, err := client.SendRequest[empty, allowanceResponse](ctx, c, http.MethodGet, opts, nil)
		if err != nil {
			return sdkmath.Int{}, err
		}
		return resp.Allowance, nil
	}

	result, err := clientCallWithRetry(ctx, call, c.cfg)
	if err != nil {
		return sdkmath.Int{}, fmt.Errorf("failed to get allowance of %s for %s: %w", owner, spender, err)
	}
	return result, nil
}

func (c *Client) Paused(ctx context.Context) (bool, error) {
	type empty struct{}

	call := func() (bool, error) {
		opts := &client.HttpClientOptions{
			Path:         statusEndpoint,
			TemplatePath: statusEndpoint,
		}

		resp, err := client.SendRequest[empty, statusResponse](ctx, c, http.MethodGet, opts, nil)
		if err != nil {
			return false, err
		}
		return resp.Paused, nil
	}

	result, err := clientCallWithRetry(ctx, call, c.cfg)
	if err != nil {
		return false, fmt.Errorf("failed to get ledger status: %w", err)
	}
	return result, nil
}

// SubmitBatch sends the batch exactly once. A rejected batch is mapped to
// the package sentinels so callers can distinguish precondition failures
// from transport errors.
func (c *Client) SubmitBatch(ctx context.Context, operations []Operation) error {
	opts := &client.HttpClientOptions{
		Path:         batchEndpoint,
		TemplatePath: batchEndpoint,
	}
	input := &batchRequest{Operations: operations}

	_, err := client.SendRequest[batchRequest, batchResponse](ctx, c, http.MethodPost, opts, input)
	if err != nil {
		var httpErr *client.HttpClientError
		if errors.As(err, &httpErr) {
			switch httpErr.ErrorCode {
			case errCodeInsufficientBalanceOrAllowance:
				return ErrInsufficientBalanceOrAllowance
			case errCodePaused:
				return ErrLedgerPaused
			}
		}
		return fmt.Errorf("failed to submit ledger batch: %w", err)
	}

	return nil
}

func clientCallWithRetry[T any](
	ctx context.Context,
	call retry.RetryableFuncWithData[T],
	cfg *config.LedgerConfig,
) (T, error) {
	result, err := retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(cfg.MaxRetryTimes),
		retry.Delay(cfg.RetryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			// Retry only transport failures and server errors on
			// read-only calls; 4xx responses are authoritative
			var httpErr *client.HttpClientError
			if errors.As(err, &httpErr) {
				return httpErr.StatusCode >= http.StatusInternalServerError
			}
			return err != nil
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", cfg.MaxRetryTimes).
				Err(err).
				Msg("ledger call failed, retrying with exponential backoff")
		}))
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
