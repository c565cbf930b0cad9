package ledgerclient

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/backedfi/fiat-bridge/internal/observability/metrics"
)

type ledgerClientWithMetrics struct {
	ledger LedgerInterface
}

func NewLedgerClientWithMetrics(ledger LedgerInterface) *ledgerClientWithMetrics {
	return &ledgerClientWithMetrics{ledger: ledger}
}

func (l *ledgerClientWithMetrics) BalanceOf(ctx context.Context, account string) (sdkmath.Int, error) {
	return runLedgerClientMethodWithMetrics("BalanceOf", func() (sdkmath.Int, error) {
		return l.ledger.BalanceOf(ctx, account)
	})
}

func (l *ledgerClientWithMetrics) Allowance(ctx context.Context, owner string, spender string) (sdkmath.Int, error) {
	return runLedgerClientMethodWithMetrics("Allowance", func() (sdkmath.Int, error) {
		return l.ledger.Allowance(ctx, owner, spender)
	})
}

func (l *ledgerClientWithMetrics) Paused(ctx context.Context) (bool, error) {
	return runLedgerClientMethodWithMetrics("Paused", func() (bool, error) {
		return l.ledger.Paused(ctx)
	})
}

func (l *ledgerClientWithMetrics) SubmitBatch(ctx context.Context, operations []Operation) error {
	_, err := runLedgerClientMethodWithMetrics("SubmitBatch", func() (struct{}, error) {
		return struct{}{}, l.ledger.SubmitBatch(ctx, operations)
	})
	return err
}

func runLedgerClientMethodWithMetrics[T any](method string, f func() (T, error)) (T, error) {
	start := time.Now()
	result, err := f()
	metrics.RecordLedgerClientLatency(time.Since(start), method, err != nil)
	return result, err
}
