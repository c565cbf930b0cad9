package services_test

import (
	"context"
	"net/http"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/backedfi/fiat-bridge/consumer"
	"github.com/backedfi/fiat-bridge/internal/clients/ledgerclient"
	"github.com/backedfi/fiat-bridge/internal/db/model"
	"github.com/backedfi/fiat-bridge/internal/fee"
	"github.com/backedfi/fiat-bridge/internal/types"
)

var holder = types.NewCaller("holder-1")

func TestBridgeBurnRejectsUnapprovedAccount(t *testing.T) {
	f := newFixture(t)

	f.db.On("IsAccountApproved", mock.Anything, "offramp-1").Return(false, nil)

	err := f.svc.BridgeBurn(context.Background(), holder, "offramp-1", sdkmath.NewInt(100))
	require.NotNil(t, err)
	require.Equal(t, types.AccountNotApproved, err.ErrorCode)
	require.Equal(t, http.StatusForbidden, err.StatusCode)
}

func TestBridgeBurnRejectsBelowMinimum(t *testing.T) {
	f := newFixture(t)

	params := bridgeParams(2, true)
	params.MinimumBurn = "500"

	f.db.On("IsAccountApproved", mock.Anything, "offramp-1").Return(true, nil)
	f.db.On("GetBridgeParams", mock.Anything).Return(params, nil)

	err := f.svc.BridgeBurn(context.Background(), holder, "offramp-1", sdkmath.NewInt(499))
	require.NotNil(t, err)
	require.Equal(t, types.BelowMinimumBurn, err.ErrorCode)
	f.ledger.AssertNotCalled(t, "SubmitBatch", mock.Anything, mock.Anything)
}

func TestBridgeBurnAtMinimumIsAccepted(t *testing.T) {
	f := newFixture(t)

	params := bridgeParams(2, true)
	params.MinimumBurn = "500"

	f.db.On("IsAccountApproved", mock.Anything, "offramp-1").Return(true, nil)
	f.db.On("GetBridgeParams", mock.Anything).Return(params, nil)
	f.db.On("GetFeeRecipients", mock.Anything).Return(recipientsDoc(), nil)
	f.ledger.On("Paused", mock.Anything).Return(false, nil)
	f.ledger.On("SubmitBatch", mock.Anything, []ledgerclient.Operation{
		ledgerclient.BurnOperation(holder.ID, sdkmath.NewInt(500)),
	}).Return(nil)
	f.consumer.On("PushBridgeBurnEvent", mock.Anything, mock.Anything).Return(nil)

	err := f.svc.BridgeBurn(context.Background(), holder, "offramp-1", sdkmath.NewInt(500))
	require.Nil(t, err)
}

func TestBridgeBurnChargesFeeInKind(t *testing.T) {
	f := newFixture(t)

	params := bridgeParams(2, true)
	params.BurnFee = model.FromFeeConfig(mustFeeConfig(t, 10, 1, 4))

	f.db.On("IsAccountApproved", mock.Anything, "offramp-1").Return(true, nil)
	f.db.On("GetBridgeParams", mock.Anything).Return(params, nil)
	f.db.On("GetFeeRecipients", mock.Anything).Return(recipientsDoc(
		fee.Recipient{Address: "fee-a", Shares: sdkmath.NewInt(4)},
		fee.Recipient{Address: "fee-b", Shares: sdkmath.NewInt(6)},
		fee.Recipient{Address: "fee-c", Shares: sdkmath.NewInt(10)},
	), nil)
	f.ledger.On("Paused", mock.Anything).Return(false, nil)
	// fee(150) = 10 + (150-10)/4 = 45, split 4:6:10 of 45 = 9/13/22,
	// the rounding remainder is burned with the net amount
	f.ledger.On("SubmitBatch", mock.Anything, []ledgerclient.Operation{
		ledgerclient.TransferFromOperation(holder.ID, "fee-a", sdkmath.NewInt(9)),
		ledgerclient.TransferFromOperation(holder.ID, "fee-b", sdkmath.NewInt(13)),
		ledgerclient.TransferFromOperation(holder.ID, "fee-c", sdkmath.NewInt(22)),
		ledgerclient.BurnOperation(holder.ID, sdkmath.NewInt(106)),
	}).Return(nil)
	f.consumer.On("PushBridgeBurnEvent", mock.Anything, &consumer.BridgeBurnEvent{
		Account: "offramp-1",
		From:    holder.ID,
		Amount:  sdkmath.NewInt(106),
	}).Return(nil)

	err := f.svc.BridgeBurn(context.Background(), holder, "offramp-1", sdkmath.NewInt(150))
	require.Nil(t, err)
}

func TestBridgeBurnFeeExceedsAmount(t *testing.T) {
	f := newFixture(t)

	params := bridgeParams(2, true)
	params.BurnFee = model.FromFeeConfig(mustFeeConfig(t, 200, 0, 1))

	f.db.On("IsAccountApproved", mock.Anything, "offramp-1").Return(true, nil)
	f.db.On("GetBridgeParams", mock.Anything).Return(params, nil)

	err := f.svc.BridgeBurn(context.Background(), holder, "offramp-1", sdkmath.NewInt(150))
	require.NotNil(t, err)
	require.Equal(t, types.FeeExceedsAmount, err.ErrorCode)
}

func TestBridgeBurnInsufficientBalanceOrAllowance(t *testing.T) {
	f := newFixture(t)

	f.db.On("IsAccountApproved", mock.Anything, "offramp-1").Return(true, nil)
	f.db.On("GetBridgeParams", mock.Anything).Return(bridgeParams(2, true), nil)
	f.db.On("GetFeeRecipients", mock.Anything).Return(recipientsDoc(), nil)
	f.ledger.On("Paused", mock.Anything).Return(false, nil)
	f.ledger.On("SubmitBatch", mock.Anything, mock.Anything).
		Return(ledgerclient.ErrInsufficientBalanceOrAllowance)

	err := f.svc.BridgeBurn(context.Background(), holder, "offramp-1", sdkmath.NewInt(100))
	require.NotNil(t, err)
	require.Equal(t, types.InsufficientBalanceOrAllowance, err.ErrorCode)
	require.Equal(t, http.StatusUnprocessableEntity, err.StatusCode)
	f.consumer.AssertNotCalled(t, "PushBridgeBurnEvent", mock.Anything, mock.Anything)
}

func TestBridgeBurnWhileLedgerPaused(t *testing.T) {
	f := newFixture(t)

	f.db.On("IsAccountApproved", mock.Anything, "offramp-1").Return(true, nil)
	f.db.On("GetBridgeParams", mock.Anything).Return(bridgeParams(2, true), nil)
	f.db.On("GetFeeRecipients", mock.Anything).Return(recipientsDoc(), nil)
	f.ledger.On("Paused", mock.Anything).Return(true, nil)

	err := f.svc.BridgeBurn(context.Background(), holder, "offramp-1", sdkmath.NewInt(100))
	require.NotNil(t, err)
	require.Equal(t, types.LedgerPaused, err.ErrorCode)
	f.ledger.AssertNotCalled(t, "SubmitBatch", mock.Anything, mock.Anything)
}

func TestBridgeBurnZeroAmountWithZeroFee(t *testing.T) {
	f := newFixture(t)

	f.db.On("IsAccountApproved", mock.Anything, "offramp-1").Return(true, nil)
	f.db.On("GetBridgeParams", mock.Anything).Return(bridgeParams(2, true), nil)
	f.db.On("GetFeeRecipients", mock.Anything).Return(recipientsDoc(), nil)
	f.consumer.On("PushBridgeBurnEvent", mock.Anything, &consumer.BridgeBurnEvent{
		Account: "offramp-1",
		From:    holder.ID,
		Amount:  sdkmath.ZeroInt(),
	}).Return(nil)

	// nothing to move: no ledger batch is submitted at all
	err := f.svc.BridgeBurn(context.Background(), holder, "offramp-1", sdkmath.ZeroInt())
	require.Nil(t, err)
	f.ledger.AssertNotCalled(t, "Paused", mock.Anything)
	f.ledger.AssertNotCalled(t, "SubmitBatch", mock.Anything, mock.Anything)
}
