package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/backedfi/fiat-bridge/consumer"
	"github.com/backedfi/fiat-bridge/internal/clients/ledgerclient"
	"github.com/backedfi/fiat-bridge/internal/fee"
	"github.com/backedfi/fiat-bridge/internal/observability/metrics"
	"github.com/backedfi/fiat-bridge/internal/types"
)

// BridgeBurn burns tokens from the caller's balance towards the off-ramp
// account. The burn fee is paid in kind: fee shares move from the caller to
// the fee recipients and only the remainder is burned. The caller must have
// approved the service to move the fee shares on its behalf.
func (s *Service) BridgeBurn(
	ctx context.Context,
	caller types.Caller,
	account string,
	amount sdkmath.Int,
) *types.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	err := s.bridgeBurn(ctx, caller, account, amount)
	metrics.RecordBridgeOperationDuration(time.Since(start), "bridge_burn", err != nil)
	return err
}

func (s *Service) bridgeBurn(
	ctx context.Context,
	caller types.Caller,
	account string,
	amount sdkmath.Int,
) *types.Error {
	if account == "" {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "account must not be empty",
		)
	}
	if amount.IsNil() || amount.IsNegative() {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "amount must not be negative",
		)
	}

	approved, err := s.db.IsAccountApproved(ctx, account)
	if err != nil {
		return types.NewError(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Errorf("failed to check account approval: %w", err),
		)
	}
	if !approved {
		return types.NewErrorWithMsg(
			http.StatusForbidden, types.AccountNotApproved, "account is not approved for burning",
		)
	}

	params, err := s.db.GetBridgeParams(ctx)
	if err != nil {
		return types.NewError(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Errorf("failed to get bridge params: %w", err),
		)
	}

	minimumBurn, err := params.MinimumBurnInt()
	if err != nil {
		return types.NewError(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Errorf("invalid stored minimum burn: %w", err),
		)
	}
	if amount.LT(minimumBurn) {
		return types.NewErrorWithMsg(
			http.StatusUnprocessableEntity, types.BelowMinimumBurn, "amount is below the minimum burn",
		)
	}

	burnFee, err := params.BurnFee.ToFeeConfig()
	if err != nil {
		return types.NewError(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Errorf("invalid stored burn fee: %w", err),
		)
	}

	feeAmount, err := burnFee.ComputeFee(amount)
	if err != nil {
		if errors.Is(err, fee.ErrFeeExceedsAmount) {
			return types.NewErrorWithMsg(
				http.StatusUnprocessableEntity, types.FeeExceedsAmount, "burn fee exceeds amount",
			)
		}
		return types.NewError(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Errorf("failed to compute burn fee: %w", err),
		)
	}

	recipients, recErr := s.feeRecipients(ctx)
	if recErr != nil {
		return recErr
	}

	shares := fee.Split(feeAmount, recipients)
	// the split remainder is burned with the net amount
	net := amount.Sub(fee.SumShares(shares))

	operations := make([]ledgerclient.Operation, 0, len(shares)+1)
	for _, share := range shares {
		if share.Amount.IsPositive() {
			operations = append(operations, ledgerclient.TransferFromOperation(caller.ID, share.Address, share.Amount))
		}
	}
	if net.IsPositive() {
		operations = append(operations, ledgerclient.BurnOperation(caller.ID, net))
	}

	if len(operations) > 0 {
		if err := s.submitBatch(ctx, operations); err != nil {
			return err
		}
	}
	metrics.IncBurn()

	burnEvent := &consumer.BridgeBurnEvent{
		Account: account,
		From:    caller.ID,
		Amount:  net,
	}
	s.publishEvents(ctx, []pendingEvent{
		func(ctx context.Context) error {
			return s.eventConsumer.PushBridgeBurnEvent(ctx, burnEvent)
		},
	})
	return nil
}
