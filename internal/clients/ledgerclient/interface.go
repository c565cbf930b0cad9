package ledgerclient

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

//go:generate mockery --name=LedgerInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_ledger_client.go
type LedgerInterface interface {
	BalanceOf(ctx context.Context, account string) (sdkmath.Int, error)
	Allowance(ctx context.Context, owner string, spender string) (sdkmath.Int, error)
	Paused(ctx context.Context) (bool, error)
	// SubmitBatch applies all operations atomically: either every leg is
	// applied or none is. Callers must not retry a failed batch.
	SubmitBatch(ctx context.Context, operations []Operation) error
}
