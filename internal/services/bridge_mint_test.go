package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/backedfi/fiat-bridge/consumer"
	"github.com/backedfi/fiat-bridge/internal/clients/ledgerclient"
	"github.com/backedfi/fiat-bridge/internal/config"
	"github.com/backedfi/fiat-bridge/internal/db"
	"github.com/backedfi/fiat-bridge/internal/db/model"
	"github.com/backedfi/fiat-bridge/internal/fee"
	"github.com/backedfi/fiat-bridge/internal/observability/metrics"
	"github.com/backedfi/fiat-bridge/internal/proposal"
	"github.com/backedfi/fiat-bridge/internal/services"
	"github.com/backedfi/fiat-bridge/internal/types"
	"github.com/backedfi/fiat-bridge/tests/mocks"
)

type serviceFixture struct {
	svc      *services.Service
	db       *mocks.DbInterface
	ledger   *mocks.LedgerInterface
	consumer *mocks.EventConsumer
}

func newFixture(t *testing.T) *serviceFixture {
	metrics.Init(9998)
	dbMock := mocks.NewDbInterface(t)
	ledgerMock := mocks.NewLedgerInterface(t)
	consumerMock := mocks.NewEventConsumer(t)
	return &serviceFixture{
		svc:      services.NewService(&config.Config{}, dbMock, ledgerMock, consumerMock),
		db:       dbMock,
		ledger:   ledgerMock,
		consumer: consumerMock,
	}
}

func bridgeParams(threshold uint64, autoMint bool) *model.BridgeParamsDocument {
	params := model.DefaultBridgeParams()
	params.VoteThreshold = threshold
	params.AutoMint = autoMint
	return params
}

func mustFeeConfig(t *testing.T, fixed, num, den int64) fee.Config {
	cfg, err := fee.NewConfig(sdkmath.NewInt(fixed), sdkmath.NewInt(num), sdkmath.NewInt(den))
	require.NoError(t, err)
	return cfg
}

func recipientsDoc(recipients ...fee.Recipient) *model.FeeRecipientsDocument {
	return model.NewFeeRecipientsDocument(recipients)
}

func proposalDigest(to string, amount sdkmath.Int, transactionID string) string {
	return proposal.NewKey(to, amount, transactionID).Digest()
}

var (
	bridger  = types.NewCaller("bridger-1", types.RoleBridger)
	notFound = &db.NotFoundError{Key: "missing", Message: "not found"}
)

func TestBridgeMintRequiresBridgerRole(t *testing.T) {
	f := newFixture(t)

	err := f.svc.BridgeMint(
		context.Background(), types.NewCaller("someone"), "acct-1", sdkmath.NewInt(100), "tx-1",
	)
	require.NotNil(t, err)
	require.Equal(t, types.Unauthorized, err.ErrorCode)
	require.Equal(t, http.StatusForbidden, err.StatusCode)
}

func TestBridgeMintRejectsUnconfiguredThreshold(t *testing.T) {
	f := newFixture(t)

	f.db.On("GetBridgeParams", mock.Anything).Return(bridgeParams(0, true), nil)
	f.db.On("GetTransaction", mock.Anything, "tx-1").Return(nil, notFound)

	err := f.svc.BridgeMint(context.Background(), bridger, "acct-1", sdkmath.NewInt(100), "tx-1")
	require.NotNil(t, err)
	require.Equal(t, types.InvalidThreshold, err.ErrorCode)
}

func TestBridgeMintRejectsMintedTransaction(t *testing.T) {
	f := newFixture(t)

	f.db.On("GetBridgeParams", mock.Anything).Return(bridgeParams(2, true), nil)
	f.db.On("GetTransaction", mock.Anything, "tx-1").Return(&model.TransactionDocument{
		TransactionID: "tx-1",
		State:         types.StateMinted,
	}, nil)

	err := f.svc.BridgeMint(context.Background(), bridger, "acct-1", sdkmath.NewInt(100), "tx-1")
	require.NotNil(t, err)
	require.Equal(t, types.TransactionAlreadyMinted, err.ErrorCode)
}

func TestBridgeMintRejectsMintedTransactionEvenWithoutThreshold(t *testing.T) {
	f := newFixture(t)

	// The minted guard wins over the threshold guard.
	f.db.On("GetBridgeParams", mock.Anything).Return(bridgeParams(0, true), nil)
	f.db.On("GetTransaction", mock.Anything, "tx-1").Return(&model.TransactionDocument{
		TransactionID: "tx-1",
		State:         types.StateMinted,
	}, nil)

	err := f.svc.BridgeMint(context.Background(), bridger, "acct-1", sdkmath.NewInt(100), "tx-1")
	require.NotNil(t, err)
	require.Equal(t, types.TransactionAlreadyMinted, err.ErrorCode)
}

func TestBridgeMintRejectsPassedTransaction(t *testing.T) {
	f := newFixture(t)

	f.db.On("GetBridgeParams", mock.Anything).Return(bridgeParams(2, true), nil)
	f.db.On("GetTransaction", mock.Anything, "tx-1").Return(&model.TransactionDocument{
		TransactionID: "tx-1",
		State:         types.StatePassed,
	}, nil)

	err := f.svc.BridgeMint(context.Background(), bridger, "acct-1", sdkmath.NewInt(100), "tx-1")
	require.NotNil(t, err)
	require.Equal(t, types.AlreadyFinalized, err.ErrorCode)
}

func TestBridgeMintBelowThresholdRecordsVote(t *testing.T) {
	f := newFixture(t)

	amount := sdkmath.NewInt(100)
	digest := proposalDigest("acct-1", amount, "tx-1")

	f.db.On("GetBridgeParams", mock.Anything).Return(bridgeParams(3, true), nil)
	f.db.On("GetTransaction", mock.Anything, "tx-1").Return(nil, notFound)
	f.db.On("AddVote", mock.Anything, mock.MatchedBy(func(doc *model.ProposalDocument) bool {
		return doc.Digest == digest && doc.TransactionID == "tx-1"
	}), bridger.ID).Return(&model.ProposalDocument{
		Digest:        digest,
		Recipient:     "acct-1",
		Amount:        amount.String(),
		TransactionID: "tx-1",
		Voters:        []string{bridger.ID},
	}, nil)
	f.consumer.On("PushProposalVoteEvent", mock.Anything, &consumer.ProposalVoteEvent{
		To:            "acct-1",
		Amount:        amount,
		TransactionID: "tx-1",
		Voter:         bridger.ID,
		Count:         1,
		Threshold:     3,
	}).Return(nil)

	err := f.svc.BridgeMint(context.Background(), bridger, "acct-1", amount, "tx-1")
	require.Nil(t, err)
}

func TestBridgeMintRejectsDuplicateVote(t *testing.T) {
	f := newFixture(t)

	f.db.On("GetBridgeParams", mock.Anything).Return(bridgeParams(3, true), nil)
	f.db.On("GetTransaction", mock.Anything, "tx-1").Return(nil, notFound)
	f.db.On("AddVote", mock.Anything, mock.Anything, bridger.ID).
		Return(nil, &db.DuplicateKeyError{Key: "digest", Message: "voter already voted on this proposal"})

	err := f.svc.BridgeMint(context.Background(), bridger, "acct-1", sdkmath.NewInt(100), "tx-1")
	require.NotNil(t, err)
	require.Equal(t, types.AlreadyVoted, err.ErrorCode)
	require.Equal(t, http.StatusConflict, err.StatusCode)
}

func TestBridgeMintPassWithAutoMintSubmitsBatch(t *testing.T) {
	f := newFixture(t)

	amount := sdkmath.NewInt(100)
	digest := proposalDigest("acct-1", amount, "tx-1")

	params := bridgeParams(2, true)
	params.MintFee = model.FromFeeConfig(mustFeeConfig(t, 50, 1, 10))

	f.db.On("GetBridgeParams", mock.Anything).Return(params, nil)
	f.db.On("GetTransaction", mock.Anything, "tx-1").Return(nil, notFound)
	f.db.On("AddVote", mock.Anything, mock.Anything, bridger.ID).Return(&model.ProposalDocument{
		Digest:        digest,
		Recipient:     "acct-1",
		Amount:        amount.String(),
		TransactionID: "tx-1",
		Voters:        []string{"bridger-0", bridger.ID},
	}, nil)
	f.db.On("SaveTransactionPassed", mock.Anything, "tx-1", digest).Return(nil)
	f.db.On("GetFeeRecipients", mock.Anything).Return(recipientsDoc(
		fee.Recipient{Address: "fee-a", Shares: sdkmath.NewInt(1)},
		fee.Recipient{Address: "fee-b", Shares: sdkmath.NewInt(2)},
		fee.Recipient{Address: "fee-c", Shares: sdkmath.NewInt(7)},
	), nil)
	f.ledger.On("Paused", mock.Anything).Return(false, nil)
	// fee(100) = 50 + (100-50)/10 = 55, split 1:2:7 of 55 = 5/11/38,
	// remainder 1 goes to the recipient with the net amount
	f.ledger.On("SubmitBatch", mock.Anything, []ledgerclient.Operation{
		ledgerclient.MintOperation("acct-1", sdkmath.NewInt(46)),
		ledgerclient.MintOperation("fee-a", sdkmath.NewInt(5)),
		ledgerclient.MintOperation("fee-b", sdkmath.NewInt(11)),
		ledgerclient.MintOperation("fee-c", sdkmath.NewInt(38)),
	}).Return(nil)
	f.db.On("UpdateTransactionState", mock.Anything, "tx-1",
		types.QualifiedStatesForMinted(), types.StateMinted).Return(nil)

	f.consumer.On("PushProposalVoteEvent", mock.Anything, mock.Anything).Return(nil)
	f.consumer.On("PushProposalPassedEvent", mock.Anything, &consumer.ProposalPassedEvent{
		To:            "acct-1",
		Amount:        amount,
		TransactionID: "tx-1",
	}).Return(nil)
	f.consumer.On("PushBridgeMintEvent", mock.Anything, &consumer.BridgeMintEvent{
		To:            "acct-1",
		Amount:        amount,
		TransactionID: "tx-1",
	}).Return(nil)

	err := f.svc.BridgeMint(context.Background(), bridger, "acct-1", amount, "tx-1")
	require.Nil(t, err)
}

func TestBridgeMintRollsBackWhenLedgerRejects(t *testing.T) {
	f := newFixture(t)

	amount := sdkmath.NewInt(1000)
	digest := proposalDigest("acct-1", amount, "tx-1")

	f.db.On("GetBridgeParams", mock.Anything).Return(bridgeParams(1, true), nil)
	f.db.On("GetTransaction", mock.Anything, "tx-1").Return(nil, notFound)
	f.db.On("AddVote", mock.Anything, mock.Anything, bridger.ID).Return(&model.ProposalDocument{
		Digest:        digest,
		TransactionID: "tx-1",
		Voters:        []string{bridger.ID},
	}, nil)
	f.db.On("SaveTransactionPassed", mock.Anything, "tx-1", digest).Return(nil)
	f.db.On("GetFeeRecipients", mock.Anything).Return(recipientsDoc(), nil)
	f.ledger.On("Paused", mock.Anything).Return(false, nil)
	f.ledger.On("SubmitBatch", mock.Anything, mock.Anything).Return(errors.New("connection reset"))
	// the failed pass is compensated: both the marker and the vote go away
	f.db.On("DeleteTransaction", mock.Anything, "tx-1").Return(nil)
	f.db.On("RemoveVote", mock.Anything, digest, bridger.ID).Return(nil)

	err := f.svc.BridgeMint(context.Background(), bridger, "acct-1", amount, "tx-1")
	require.NotNil(t, err)
	require.Equal(t, types.InternalServiceError, err.ErrorCode)
	// no event reaches the queue for a rolled-back operation
	f.consumer.AssertNotCalled(t, "PushProposalVoteEvent", mock.Anything, mock.Anything)
	f.consumer.AssertNotCalled(t, "PushProposalPassedEvent", mock.Anything, mock.Anything)
	f.consumer.AssertNotCalled(t, "PushBridgeMintEvent", mock.Anything, mock.Anything)
}

func TestBridgeMintRollsBackWhenLedgerPaused(t *testing.T) {
	f := newFixture(t)

	amount := sdkmath.NewInt(100)
	digest := proposalDigest("acct-1", amount, "tx-1")

	f.db.On("GetBridgeParams", mock.Anything).Return(bridgeParams(1, true), nil)
	f.db.On("GetTransaction", mock.Anything, "tx-1").Return(nil, notFound)
	f.db.On("AddVote", mock.Anything, mock.Anything, bridger.ID).Return(&model.ProposalDocument{
		Digest:        digest,
		TransactionID: "tx-1",
		Voters:        []string{bridger.ID},
	}, nil)
	f.db.On("SaveTransactionPassed", mock.Anything, "tx-1", digest).Return(nil)
	f.db.On("GetFeeRecipients", mock.Anything).Return(recipientsDoc(), nil)
	f.ledger.On("Paused", mock.Anything).Return(true, nil)
	f.db.On("DeleteTransaction", mock.Anything, "tx-1").Return(nil)
	f.db.On("RemoveVote", mock.Anything, digest, bridger.ID).Return(nil)

	err := f.svc.BridgeMint(context.Background(), bridger, "acct-1", amount, "tx-1")
	require.NotNil(t, err)
	require.Equal(t, types.LedgerPaused, err.ErrorCode)
	require.Equal(t, http.StatusServiceUnavailable, err.StatusCode)
	f.ledger.AssertNotCalled(t, "SubmitBatch", mock.Anything, mock.Anything)
}

func TestBridgeMintPassWithoutAutoMintDefersExecution(t *testing.T) {
	f := newFixture(t)

	amount := sdkmath.NewInt(100)
	digest := proposalDigest("acct-1", amount, "tx-1")

	f.db.On("GetBridgeParams", mock.Anything).Return(bridgeParams(1, false), nil)
	f.db.On("GetTransaction", mock.Anything, "tx-1").Return(nil, notFound)
	f.db.On("AddVote", mock.Anything, mock.Anything, bridger.ID).Return(&model.ProposalDocument{
		Digest:        digest,
		TransactionID: "tx-1",
		Voters:        []string{bridger.ID},
	}, nil)
	f.db.On("SaveTransactionPassed", mock.Anything, "tx-1", digest).Return(nil)
	f.consumer.On("PushProposalVoteEvent", mock.Anything, mock.Anything).Return(nil)
	f.consumer.On("PushProposalPassedEvent", mock.Anything, mock.Anything).Return(nil)

	err := f.svc.BridgeMint(context.Background(), bridger, "acct-1", amount, "tx-1")
	require.Nil(t, err)
	f.ledger.AssertNotCalled(t, "Paused", mock.Anything)
	f.ledger.AssertNotCalled(t, "SubmitBatch", mock.Anything, mock.Anything)
}

func TestPassBridgeMintNotPassableBelowThreshold(t *testing.T) {
	f := newFixture(t)

	amount := sdkmath.NewInt(100)
	digest := proposalDigest("acct-1", amount, "tx-1")

	f.db.On("GetBridgeParams", mock.Anything).Return(bridgeParams(3, true), nil)
	f.db.On("GetTransaction", mock.Anything, "tx-1").Return(nil, notFound)
	// one recorded vote plus the caller's own cannot reach three
	f.db.On("GetProposal", mock.Anything, digest).Return(&model.ProposalDocument{
		Digest: digest,
		Voters: []string{"bridger-0"},
	}, nil)

	err := f.svc.PassBridgeMint(context.Background(), bridger, "acct-1", amount, "tx-1")
	require.NotNil(t, err)
	require.Equal(t, types.NotPassable, err.ErrorCode)
	f.db.AssertNotCalled(t, "AddVote", mock.Anything, mock.Anything, mock.Anything)
}

func TestPassBridgeMintNotPassableWhenNoVotesYet(t *testing.T) {
	f := newFixture(t)

	amount := sdkmath.NewInt(100)
	digest := proposalDigest("acct-1", amount, "tx-1")

	f.db.On("GetBridgeParams", mock.Anything).Return(bridgeParams(2, true), nil)
	f.db.On("GetTransaction", mock.Anything, "tx-1").Return(nil, notFound)
	f.db.On("GetProposal", mock.Anything, digest).Return(nil, notFound)

	err := f.svc.PassBridgeMint(context.Background(), bridger, "acct-1", amount, "tx-1")
	require.NotNil(t, err)
	require.Equal(t, types.NotPassable, err.ErrorCode)
}

func TestPassBridgeMintFinalVoteReachesThreshold(t *testing.T) {
	f := newFixture(t)

	amount := sdkmath.NewInt(100)
	digest := proposalDigest("acct-1", amount, "tx-1")

	f.db.On("GetBridgeParams", mock.Anything).Return(bridgeParams(2, false), nil)
	f.db.On("GetTransaction", mock.Anything, "tx-1").Return(nil, notFound)
	f.db.On("GetProposal", mock.Anything, digest).Return(&model.ProposalDocument{
		Digest: digest,
		Voters: []string{"bridger-0"},
	}, nil)
	f.db.On("AddVote", mock.Anything, mock.Anything, bridger.ID).Return(&model.ProposalDocument{
		Digest:        digest,
		TransactionID: "tx-1",
		Voters:        []string{"bridger-0", bridger.ID},
	}, nil)
	f.db.On("SaveTransactionPassed", mock.Anything, "tx-1", digest).Return(nil)
	f.consumer.On("PushProposalVoteEvent", mock.Anything, mock.Anything).Return(nil)
	f.consumer.On("PushProposalPassedEvent", mock.Anything, mock.Anything).Return(nil)

	err := f.svc.PassBridgeMint(context.Background(), bridger, "acct-1", amount, "tx-1")
	require.Nil(t, err)
}

func TestPassBridgeMintToleratesCallersEarlierVote(t *testing.T) {
	f := newFixture(t)

	amount := sdkmath.NewInt(100)
	digest := proposalDigest("acct-1", amount, "tx-1")
	// the caller voted before and a later threshold decrease made the
	// proposal passable with the existing tally
	tally := &model.ProposalDocument{
		Digest:        digest,
		TransactionID: "tx-1",
		Voters:        []string{bridger.ID, "bridger-0"},
	}

	f.db.On("GetBridgeParams", mock.Anything).Return(bridgeParams(2, false), nil)
	f.db.On("GetTransaction", mock.Anything, "tx-1").Return(nil, notFound)
	f.db.On("GetProposal", mock.Anything, digest).Return(tally, nil)
	f.db.On("AddVote", mock.Anything, mock.Anything, bridger.ID).
		Return(nil, &db.DuplicateKeyError{Key: digest, Message: "voter already voted on this proposal"})
	f.db.On("SaveTransactionPassed", mock.Anything, "tx-1", digest).Return(nil)
	f.consumer.On("PushProposalPassedEvent", mock.Anything, mock.Anything).Return(nil)

	err := f.svc.PassBridgeMint(context.Background(), bridger, "acct-1", amount, "tx-1")
	require.Nil(t, err)
	// no new vote was recorded, so no vote event is published
	f.consumer.AssertNotCalled(t, "PushProposalVoteEvent", mock.Anything, mock.Anything)
}

func TestPerformMintRequiresPassedTransaction(t *testing.T) {
	f := newFixture(t)

	f.db.On("GetBridgeParams", mock.Anything).Return(bridgeParams(2, false), nil)
	f.db.On("GetTransaction", mock.Anything, "tx-1").Return(nil, notFound)

	err := f.svc.PerformMint(context.Background(), "acct-1", sdkmath.NewInt(100), "tx-1")
	require.NotNil(t, err)
	require.Equal(t, types.NotPassable, err.ErrorCode)
}

func TestPerformMintRejectsMismatchedProposal(t *testing.T) {
	f := newFixture(t)

	amount := sdkmath.NewInt(100)
	digest := proposalDigest("acct-1", amount, "tx-1")

	f.db.On("GetBridgeParams", mock.Anything).Return(bridgeParams(2, false), nil)
	f.db.On("GetTransaction", mock.Anything, "tx-1").Return(&model.TransactionDocument{
		TransactionID: "tx-1",
		State:         types.StatePassed,
		Digest:        digest,
	}, nil)

	err := f.svc.PerformMint(context.Background(), "acct-1", sdkmath.NewInt(999), "tx-1")
	require.NotNil(t, err)
	require.Equal(t, types.NotPassable, err.ErrorCode)
}

func TestPerformMintExecutesPassedProposal(t *testing.T) {
	f := newFixture(t)

	amount := sdkmath.NewInt(100)
	digest := proposalDigest("acct-1", amount, "tx-1")

	f.db.On("GetBridgeParams", mock.Anything).Return(bridgeParams(2, false), nil)
	f.db.On("GetTransaction", mock.Anything, "tx-1").Return(&model.TransactionDocument{
		TransactionID: "tx-1",
		State:         types.StatePassed,
		Digest:        digest,
	}, nil)
	f.db.On("GetFeeRecipients", mock.Anything).Return(recipientsDoc(), nil)
	f.ledger.On("Paused", mock.Anything).Return(false, nil)
	f.ledger.On("SubmitBatch", mock.Anything, []ledgerclient.Operation{
		ledgerclient.MintOperation("acct-1", amount),
	}).Return(nil)
	f.db.On("UpdateTransactionState", mock.Anything, "tx-1",
		types.QualifiedStatesForMinted(), types.StateMinted).Return(nil)
	f.consumer.On("PushBridgeMintEvent", mock.Anything, &consumer.BridgeMintEvent{
		To:            "acct-1",
		Amount:        amount,
		TransactionID: "tx-1",
	}).Return(nil)

	err := f.svc.PerformMint(context.Background(), "acct-1", amount, "tx-1")
	require.Nil(t, err)
}

func TestPerformMintFailureKeepsPassIntact(t *testing.T) {
	f := newFixture(t)

	amount := sdkmath.NewInt(100)
	digest := proposalDigest("acct-1", amount, "tx-1")

	f.db.On("GetBridgeParams", mock.Anything).Return(bridgeParams(2, false), nil)
	f.db.On("GetTransaction", mock.Anything, "tx-1").Return(&model.TransactionDocument{
		TransactionID: "tx-1",
		State:         types.StatePassed,
		Digest:        digest,
	}, nil)
	f.db.On("GetFeeRecipients", mock.Anything).Return(recipientsDoc(), nil)
	f.ledger.On("Paused", mock.Anything).Return(false, nil)
	f.ledger.On("SubmitBatch", mock.Anything, mock.Anything).
		Return(ledgerclient.ErrInsufficientBalanceOrAllowance)

	err := f.svc.PerformMint(context.Background(), "acct-1", amount, "tx-1")
	require.NotNil(t, err)
	require.Equal(t, types.InsufficientBalanceOrAllowance, err.ErrorCode)
	// the pass stays in place so the mint can be retried
	f.db.AssertNotCalled(t, "DeleteTransaction", mock.Anything, mock.Anything)
	f.db.AssertNotCalled(t, "RemoveVote", mock.Anything, mock.Anything, mock.Anything)
}

func TestPerformMintFeeExceedsAmount(t *testing.T) {
	f := newFixture(t)

	amount := sdkmath.NewInt(40)
	digest := proposalDigest("acct-1", amount, "tx-1")

	params := bridgeParams(2, false)
	params.MintFee = model.FromFeeConfig(mustFeeConfig(t, 50, 1, 10))

	f.db.On("GetBridgeParams", mock.Anything).Return(params, nil)
	f.db.On("GetTransaction", mock.Anything, "tx-1").Return(&model.TransactionDocument{
		TransactionID: "tx-1",
		State:         types.StatePassed,
		Digest:        digest,
	}, nil)

	err := f.svc.PerformMint(context.Background(), "acct-1", amount, "tx-1")
	require.NotNil(t, err)
	require.Equal(t, types.FeeExceedsAmount, err.ErrorCode)
}
