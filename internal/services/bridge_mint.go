package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/backedfi/fiat-bridge/consumer"
	"github.com/backedfi/fiat-bridge/internal/clients/ledgerclient"
	"github.com/backedfi/fiat-bridge/internal/db"
	"github.com/backedfi/fiat-bridge/internal/db/model"
	"github.com/backedfi/fiat-bridge/internal/fee"
	"github.com/backedfi/fiat-bridge/internal/observability/metrics"
	"github.com/backedfi/fiat-bridge/internal/proposal"
	"github.com/backedfi/fiat-bridge/internal/types"
)

// BridgeMint casts the caller's vote on the (to, amount, transactionID)
// proposal. The vote that reaches the threshold passes the proposal and,
// with auto-mint on, executes the mint in the same operation; a mint
// failure rolls the vote and the pass back so it can be cast again after
// the cause is fixed.
func (s *Service) BridgeMint(
	ctx context.Context,
	caller types.Caller,
	to string,
	amount sdkmath.Int,
	transactionID string,
) *types.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	err := s.castVote(ctx, caller, to, amount, transactionID, false)
	metrics.RecordBridgeOperationDuration(time.Since(start), "bridge_mint", err != nil)
	return err
}

// PassBridgeMint casts the caller's final vote: it fails with NotPassable
// unless the tally reaches the threshold counting the caller's vote once,
// whether or not it was already recorded.
func (s *Service) PassBridgeMint(
	ctx context.Context,
	caller types.Caller,
	to string,
	amount sdkmath.Int,
	transactionID string,
) *types.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	err := s.castVote(ctx, caller, to, amount, transactionID, true)
	metrics.RecordBridgeOperationDuration(time.Since(start), "pass_bridge_mint", err != nil)
	return err
}

func (s *Service) castVote(
	ctx context.Context,
	caller types.Caller,
	to string,
	amount sdkmath.Int,
	transactionID string,
	final bool,
) *types.Error {
	if !caller.HasRole(types.RoleBridger) {
		return types.NewErrorWithMsg(
			http.StatusForbidden, types.Unauthorized, "caller is not a bridger",
		)
	}
	if err := validateMintRequest(to, amount, transactionID); err != nil {
		return err
	}

	params, err := s.db.GetBridgeParams(ctx)
	if err != nil {
		return types.NewError(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Errorf("failed to get bridge params: %w", err),
		)
	}

	transactionDoc, txErr := s.getTransaction(ctx, transactionID)
	if txErr != nil {
		return txErr
	}
	if transactionDoc != nil && transactionDoc.State == types.StateMinted {
		return types.NewErrorWithMsg(
			http.StatusConflict, types.TransactionAlreadyMinted, "transaction already minted",
		)
	}
	if params.VoteThreshold == 0 {
		return types.NewErrorWithMsg(
			http.StatusUnprocessableEntity, types.InvalidThreshold, "vote threshold is not configured",
		)
	}
	if transactionDoc != nil {
		return types.NewErrorWithMsg(
			http.StatusConflict, types.AlreadyFinalized, "transaction already passed",
		)
	}

	key := proposal.NewKey(to, amount, transactionID)
	digest := key.Digest()

	if final {
		count, hasVoted, err := s.tallyFor(ctx, digest, caller.ID)
		if err != nil {
			return err
		}
		if !proposal.Passable(count, hasVoted, params.VoteThreshold) {
			return types.NewErrorWithMsg(
				http.StatusUnprocessableEntity, types.NotPassable, "final vote cannot reach the threshold",
			)
		}
	}

	var events []pendingEvent

	proposalDoc, voteRecorded, voteErr := s.recordVote(ctx, key, caller.ID, final)
	if voteErr != nil {
		return voteErr
	}
	if voteRecorded {
		voteEvent := &consumer.ProposalVoteEvent{
			To:            to,
			Amount:        amount,
			TransactionID: transactionID,
			Voter:         caller.ID,
			Count:         proposalDoc.VoteCount(),
			Threshold:     params.VoteThreshold,
		}
		events = append(events, func(ctx context.Context) error {
			return s.eventConsumer.PushProposalVoteEvent(ctx, voteEvent)
		})
	}

	if proposalDoc.VoteCount() < params.VoteThreshold {
		s.publishEvents(ctx, events)
		return nil
	}

	// Threshold reached: lock the transaction id to this proposal.
	if err := s.db.SaveTransactionPassed(ctx, transactionID, digest); err != nil {
		if db.IsDuplicateKeyError(err) {
			return types.NewErrorWithMsg(
				http.StatusConflict, types.AlreadyFinalized, "transaction already passed",
			)
		}
		return types.NewError(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Errorf("failed to mark transaction passed: %w", err),
		)
	}
	metrics.IncProposalPassed()

	passedEvent := &consumer.ProposalPassedEvent{
		To:            to,
		Amount:        amount,
		TransactionID: transactionID,
	}
	events = append(events, func(ctx context.Context) error {
		return s.eventConsumer.PushProposalPassedEvent(ctx, passedEvent)
	})

	if !params.AutoMint {
		// Deferred mode: minting happens through PerformMint.
		s.publishEvents(ctx, events)
		return nil
	}

	mintEvents, ledgerApplied, mintErr := s.executeMint(ctx, params, to, amount, transactionID)
	if mintErr != nil {
		if !ledgerApplied {
			s.rollbackPass(ctx, digest, transactionID, caller.ID, voteRecorded)
		}
		return mintErr
	}

	events = append(events, mintEvents...)
	s.publishEvents(ctx, events)
	return nil
}

// PerformMint executes the mint of a proposal that already passed while
// auto-mint was off. It requires no role: the quorum has spoken, execution
// is mechanical. A failed attempt leaves the pass intact and can be retried.
func (s *Service) PerformMint(
	ctx context.Context,
	to string,
	amount sdkmath.Int,
	transactionID string,
) *types.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	err := s.performMint(ctx, to, amount, transactionID)
	metrics.RecordBridgeOperationDuration(time.Since(start), "perform_mint", err != nil)
	return err
}

func (s *Service) performMint(
	ctx context.Context,
	to string,
	amount sdkmath.Int,
	transactionID string,
) *types.Error {
	if err := validateMintRequest(to, amount, transactionID); err != nil {
		return err
	}

	params, err := s.db.GetBridgeParams(ctx)
	if err != nil {
		return types.NewError(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Errorf("failed to get bridge params: %w", err),
		)
	}

	transactionDoc, txErr := s.getTransaction(ctx, transactionID)
	if txErr != nil {
		return txErr
	}
	if transactionDoc == nil {
		return types.NewErrorWithMsg(
			http.StatusUnprocessableEntity, types.NotPassable, "transaction has not passed",
		)
	}
	if transactionDoc.State == types.StateMinted {
		return types.NewErrorWithMsg(
			http.StatusConflict, types.TransactionAlreadyMinted, "transaction already minted",
		)
	}
	if transactionDoc.Digest != proposal.NewKey(to, amount, transactionID).Digest() {
		return types.NewErrorWithMsg(
			http.StatusUnprocessableEntity, types.NotPassable, "proposal does not match the passed transaction",
		)
	}

	events, _, mintErr := s.executeMint(ctx, params, to, amount, transactionID)
	if mintErr != nil {
		return mintErr
	}

	s.publishEvents(ctx, events)
	return nil
}

// executeMint charges the mint fee, splits it over the fee recipients and
// submits the mint legs as one atomic ledger batch. The returned flag
// reports whether the ledger was reached with effect: once it is true the
// mint must not be compensated.
func (s *Service) executeMint(
	ctx context.Context,
	params *model.BridgeParamsDocument,
	to string,
	amount sdkmath.Int,
	transactionID string,
) ([]pendingEvent, bool, *types.Error) {
	mintFee, err := params.MintFee.ToFeeConfig()
	if err != nil {
		return nil, false, types.NewError(
			http.StatusInternalServerError, types.InternalServiceError,
			fmt.Errorf("invalid stored mint fee: %w", err),
		)
	}

	feeAmount, err := mintFee.ComputeFee(amount)
	if err != nil {
		if errors.Is(err, fee.ErrFeeExceedsAmount) {
			return nil, false, types.NewErrorWithMsg(
				http.StatusUnprocessableEntity, types.FeeExceedsAmount, "mint fee exceeds amount",
			)
		}
		return nil, false, types.NewError(
			http.StatusInternalServerError, types.InternalServiceError,
			fmt.Errorf("failed to compute mint fee: %w", err),
		)
	}

	recipients, recErr := s.feeRecipients(ctx)
	if recErr != nil {
		return nil, false, recErr
	}

	shares := fee.Split(feeAmount, recipients)
	// the split remainder stays with the recipient
	net := amount.Sub(fee.SumShares(shares))

	operations := make([]ledgerclient.Operation, 0, len(shares)+1)
	if net.IsPositive() {
		operations = append(operations, ledgerclient.MintOperation(to, net))
	}
	for _, share := range shares {
		if share.Amount.IsPositive() {
			operations = append(operations, ledgerclient.MintOperation(share.Address, share.Amount))
		}
	}

	if len(operations) > 0 {
		if err := s.submitBatch(ctx, operations); err != nil {
			return nil, false, err
		}
	}

	// The ledger applied the batch; from here on failures must not trigger
	// compensation.
	if err := s.db.UpdateTransactionState(
		ctx, transactionID, types.QualifiedStatesForMinted(), types.StateMinted,
	); err != nil {
		log.Ctx(ctx).Error().Err(err).
			Str("transactionId", transactionID).
			Msg("Mint applied on ledger but transaction state update failed")
		return nil, true, types.NewError(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Errorf("failed to mark transaction minted: %w", err),
		)
	}
	metrics.IncMint()

	mintEvent := &consumer.BridgeMintEvent{
		To:            to,
		Amount:        amount,
		TransactionID: transactionID,
	}
	events := []pendingEvent{
		func(ctx context.Context) error {
			return s.eventConsumer.PushBridgeMintEvent(ctx, mintEvent)
		},
	}
	return events, true, nil
}

// recordVote adds the caller's vote. On a final vote an already recorded
// vote is tolerated and the existing tally is returned instead.
func (s *Service) recordVote(
	ctx context.Context, key proposal.Key, voter string, final bool,
) (*model.ProposalDocument, bool, *types.Error) {
	proposalDoc, err := s.db.AddVote(ctx, model.FromProposalKey(key), voter)
	if err == nil {
		return proposalDoc, true, nil
	}

	if db.IsDuplicateKeyError(err) {
		if !final {
			return nil, false, types.NewErrorWithMsg(
				http.StatusConflict, types.AlreadyVoted, "voter already voted on this proposal",
			)
		}
		existingDoc, getErr := s.db.GetProposal(ctx, key.Digest())
		if getErr != nil {
			return nil, false, types.NewError(
				http.StatusInternalServerError,
				types.InternalServiceError,
				fmt.Errorf("failed to load proposal after duplicate vote: %w", getErr),
			)
		}
		return existingDoc, false, nil
	}

	return nil, false, types.NewError(
		http.StatusInternalServerError,
		types.InternalServiceError,
		fmt.Errorf("failed to record vote: %w", err),
	)
}

// rollbackPass compensates a failed pass-time mint: the pass marker and,
// when it was newly recorded, the final vote are taken back so the proposal
// returns to the state before the failed call.
func (s *Service) rollbackPass(
	ctx context.Context, digest string, transactionID string, voter string, voteRecorded bool,
) {
	if err := s.db.DeleteTransaction(ctx, transactionID); err != nil {
		log.Ctx(ctx).Error().Err(err).
			Str("transactionId", transactionID).
			Msg("Failed to roll back transaction pass marker")
	}
	if voteRecorded {
		if err := s.db.RemoveVote(ctx, digest, voter); err != nil {
			log.Ctx(ctx).Error().Err(err).
				Str("digest", digest).
				Msg("Failed to roll back recorded vote")
		}
	}
}

// tallyFor loads the current vote count of a proposal digest and whether
// the voter is already on it. A missing tally is an empty one.
func (s *Service) tallyFor(
	ctx context.Context, digest string, voter string,
) (uint64, bool, *types.Error) {
	proposalDoc, err := s.db.GetProposal(ctx, digest)
	if err != nil {
		if db.IsNotFoundError(err) {
			return 0, false, nil
		}
		return 0, false, types.NewError(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Errorf("failed to get proposal: %w", err),
		)
	}

	hasVoted := false
	for _, v := range proposalDoc.Voters {
		if v == voter {
			hasVoted = true
			break
		}
	}
	return proposalDoc.VoteCount(), hasVoted, nil
}

func (s *Service) getTransaction(
	ctx context.Context, transactionID string,
) (*model.TransactionDocument, *types.Error) {
	transactionDoc, err := s.db.GetTransaction(ctx, transactionID)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, types.NewError(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Errorf("failed to get transaction: %w", err),
		)
	}
	return transactionDoc, nil
}

func (s *Service) feeRecipients(ctx context.Context) ([]fee.Recipient, *types.Error) {
	recipientsDoc, err := s.db.GetFeeRecipients(ctx)
	if err != nil {
		return nil, types.NewError(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Errorf("failed to get fee recipients: %w", err),
		)
	}
	recipients, err := recipientsDoc.ToRecipients()
	if err != nil {
		return nil, types.NewError(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Errorf("invalid stored fee recipients: %w", err),
		)
	}
	return recipients, nil
}

// submitBatch checks the pausable gate and submits the batch, mapping
// ledger rejections to their error codes.
func (s *Service) submitBatch(ctx context.Context, operations []ledgerclient.Operation) *types.Error {
	paused, err := s.ledger.Paused(ctx)
	if err != nil {
		return types.NewError(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Errorf("failed to check ledger status: %w", err),
		)
	}
	if paused {
		return types.NewErrorWithMsg(
			http.StatusServiceUnavailable, types.LedgerPaused, "ledger is paused",
		)
	}

	if err := s.ledger.SubmitBatch(ctx, operations); err != nil {
		switch {
		case errors.Is(err, ledgerclient.ErrInsufficientBalanceOrAllowance):
			return types.NewErrorWithMsg(
				http.StatusUnprocessableEntity,
				types.InsufficientBalanceOrAllowance,
				"insufficient balance or allowance",
			)
		case errors.Is(err, ledgerclient.ErrLedgerPaused):
			return types.NewErrorWithMsg(
				http.StatusServiceUnavailable, types.LedgerPaused, "ledger is paused",
			)
		default:
			return types.NewError(
				http.StatusInternalServerError,
				types.InternalServiceError,
				fmt.Errorf("ledger batch failed: %w", err),
			)
		}
	}
	return nil
}

func validateMintRequest(to string, amount sdkmath.Int, transactionID string) *types.Error {
	if to == "" {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "recipient must not be empty",
		)
	}
	if transactionID == "" {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "transaction id must not be empty",
		)
	}
	if amount.IsNil() || amount.IsNegative() {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "amount must not be negative",
		)
	}
	return nil
}
