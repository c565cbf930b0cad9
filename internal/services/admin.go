package services

import (
	"context"
	"fmt"
	"net/http"

	sdkmath "cosmossdk.io/math"

	"github.com/backedfi/fiat-bridge/consumer"
	"github.com/backedfi/fiat-bridge/internal/db/model"
	"github.com/backedfi/fiat-bridge/internal/fee"
	"github.com/backedfi/fiat-bridge/internal/types"
)

// SetMinimumBurn sets the smallest amount a burn request may carry.
func (s *Service) SetMinimumBurn(
	ctx context.Context, caller types.Caller, minimum sdkmath.Int,
) *types.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requireAdmin(caller); err != nil {
		return err
	}
	if minimum.IsNil() || minimum.IsNegative() {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "minimum burn must not be negative",
		)
	}

	params, paramsErr := s.bridgeParams(ctx)
	if paramsErr != nil {
		return paramsErr
	}
	previous, err := params.MinimumBurnInt()
	if err != nil {
		return types.NewError(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Errorf("invalid stored minimum burn: %w", err),
		)
	}

	params.MinimumBurn = minimum.String()
	if err := s.saveBridgeParams(ctx, params); err != nil {
		return err
	}

	ev := &consumer.MinimumBurnChangedEvent{PreviousMinimum: previous, Minimum: minimum}
	s.publishEvents(ctx, []pendingEvent{
		func(ctx context.Context) error {
			return s.eventConsumer.PushParamsEvent(ctx, types.EventMinimumBurnChanged.String(), ev)
		},
	})
	return nil
}

// SetVoteThreshold sets the number of votes a mint proposal needs to pass.
// Zero is a valid value: it disables all voting until an admin raises the
// threshold again.
func (s *Service) SetVoteThreshold(
	ctx context.Context, caller types.Caller, threshold uint64,
) *types.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requireAdmin(caller); err != nil {
		return err
	}

	params, paramsErr := s.bridgeParams(ctx)
	if paramsErr != nil {
		return paramsErr
	}
	previous := params.VoteThreshold

	params.VoteThreshold = threshold
	if err := s.saveBridgeParams(ctx, params); err != nil {
		return err
	}

	ev := &consumer.ProposalThresholdChangedEvent{PreviousThreshold: previous, Threshold: threshold}
	s.publishEvents(ctx, []pendingEvent{
		func(ctx context.Context) error {
			return s.eventConsumer.PushParamsEvent(ctx, types.EventProposalThresholdChanged.String(), ev)
		},
	})
	return nil
}

// SetMintFee sets the fee charged on minted amounts.
func (s *Service) SetMintFee(
	ctx context.Context, caller types.Caller, fixed, ratioNumerator, ratioDenominator sdkmath.Int,
) *types.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setFee(ctx, caller, fixed, ratioNumerator, ratioDenominator, types.EventMintFeeChange,
		func(params *model.BridgeParamsDocument, cfg fee.Config) {
			params.MintFee = model.FromFeeConfig(cfg)
		})
}

// SetBurnFee sets the fee charged on burned amounts.
func (s *Service) SetBurnFee(
	ctx context.Context, caller types.Caller, fixed, ratioNumerator, ratioDenominator sdkmath.Int,
) *types.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.setFee(ctx, caller, fixed, ratioNumerator, ratioDenominator, types.EventBurnFeeChange,
		func(params *model.BridgeParamsDocument, cfg fee.Config) {
			params.BurnFee = model.FromFeeConfig(cfg)
		})
}

func (s *Service) setFee(
	ctx context.Context,
	caller types.Caller,
	fixed, ratioNumerator, ratioDenominator sdkmath.Int,
	eventType types.EventTypes,
	apply func(*model.BridgeParamsDocument, fee.Config),
) *types.Error {
	if err := requireAdmin(caller); err != nil {
		return err
	}

	cfg, err := fee.NewConfig(fixed, ratioNumerator, ratioDenominator)
	if err != nil {
		return types.NewError(http.StatusBadRequest, types.ValidationError, err)
	}

	params, paramsErr := s.bridgeParams(ctx)
	if paramsErr != nil {
		return paramsErr
	}
	apply(params, cfg)
	if err := s.saveBridgeParams(ctx, params); err != nil {
		return err
	}

	ev := &consumer.FeeChangeEvent{
		FixedFee:         cfg.Fixed,
		RatioNumerator:   cfg.RatioNumerator,
		RatioDenominator: cfg.RatioDenominator,
	}
	s.publishEvents(ctx, []pendingEvent{
		func(ctx context.Context) error {
			return s.eventConsumer.PushParamsEvent(ctx, eventType.String(), ev)
		},
	})
	return nil
}

// SetAutoMint switches between pass-time minting and deferred minting
// through PerformMint.
func (s *Service) SetAutoMint(
	ctx context.Context, caller types.Caller, autoMint bool,
) *types.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requireAdmin(caller); err != nil {
		return err
	}

	params, paramsErr := s.bridgeParams(ctx)
	if paramsErr != nil {
		return paramsErr
	}
	params.AutoMint = autoMint
	if err := s.saveBridgeParams(ctx, params); err != nil {
		return err
	}

	ev := &consumer.AutoMintChangedEvent{AutoMint: autoMint}
	s.publishEvents(ctx, []pendingEvent{
		func(ctx context.Context) error {
			return s.eventConsumer.PushParamsEvent(ctx, types.EventAutoMintChanged.String(), ev)
		},
	})
	return nil
}

// SetFeeRecipients replaces the whole recipient set. The event stream
// mirrors the replacement: every previous entry is reported zeroed with the
// running total decreasing, then a cleared marker, then every new entry
// with the running total increasing.
func (s *Service) SetFeeRecipients(
	ctx context.Context, caller types.Caller, recipients []fee.Recipient,
) *types.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requireAdmin(caller); err != nil {
		return err
	}
	if err := fee.ValidateRecipients(recipients); err != nil {
		return types.NewError(http.StatusUnprocessableEntity, types.InvalidRecipientConfig, err)
	}

	previous, prevErr := s.feeRecipients(ctx)
	if prevErr != nil {
		return prevErr
	}

	if err := s.db.SaveFeeRecipients(ctx, model.NewFeeRecipientsDocument(recipients)); err != nil {
		return types.NewError(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Errorf("failed to save fee recipients: %w", err),
		)
	}

	events := make([]pendingEvent, 0, len(previous)+len(recipients)+1)
	runningTotal := fee.TotalShares(previous)
	for _, r := range previous {
		runningTotal = runningTotal.Sub(r.Shares)
		events = append(events, shareChangeEvent(s, r.Address, sdkmath.ZeroInt(), runningTotal))
	}
	events = append(events, func(ctx context.Context) error {
		return s.eventConsumer.PushParamsEvent(
			ctx, types.EventFeeRecipientsCleared.String(), &consumer.FeeRecipientsClearedEvent{},
		)
	})
	runningTotal = sdkmath.ZeroInt()
	for _, r := range recipients {
		runningTotal = runningTotal.Add(r.Shares)
		events = append(events, shareChangeEvent(s, r.Address, r.Shares, runningTotal))
	}

	s.publishEvents(ctx, events)
	return nil
}

// SetFeeRecipientShares updates a single recipient. Zero shares removes the
// recipient, nonzero shares updates it in place or appends it.
func (s *Service) SetFeeRecipientShares(
	ctx context.Context, caller types.Caller, address string, shares sdkmath.Int,
) *types.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := requireAdmin(caller); err != nil {
		return err
	}
	if address == "" {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "recipient address must not be empty",
		)
	}
	if shares.IsNil() || shares.IsNegative() {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "shares must not be negative",
		)
	}

	recipients, recErr := s.feeRecipients(ctx)
	if recErr != nil {
		return recErr
	}

	updated := make([]fee.Recipient, 0, len(recipients)+1)
	found := false
	for _, r := range recipients {
		if r.Address == address {
			found = true
			if shares.IsZero() {
				continue
			}
			updated = append(updated, fee.Recipient{Address: address, Shares: shares})
			continue
		}
		updated = append(updated, r)
	}
	if !found {
		if shares.IsZero() {
			return types.NewErrorWithMsg(
				http.StatusUnprocessableEntity, types.InvalidRecipientConfig, "recipient not found",
			)
		}
		updated = append(updated, fee.Recipient{Address: address, Shares: shares})
	}

	if err := s.db.SaveFeeRecipients(ctx, model.NewFeeRecipientsDocument(updated)); err != nil {
		return types.NewError(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Errorf("failed to save fee recipients: %w", err),
		)
	}

	s.publishEvents(ctx, []pendingEvent{
		shareChangeEvent(s, address, shares, fee.TotalShares(updated)),
	})
	return nil
}

// SetAccountApproval approves or revokes off-ramp accounts for burning.
func (s *Service) SetAccountApproval(
	ctx context.Context, caller types.Caller, accounts []string, approved bool,
) *types.Error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !caller.HasRole(types.RoleApprover) {
		return types.NewErrorWithMsg(
			http.StatusForbidden, types.Unauthorized, "caller is not an approver",
		)
	}
	if len(accounts) == 0 {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "accounts must not be empty",
		)
	}
	for _, account := range accounts {
		if account == "" {
			return types.NewErrorWithMsg(
				http.StatusBadRequest, types.ValidationError, "account must not be empty",
			)
		}
	}

	events := make([]pendingEvent, 0, len(accounts))
	for _, account := range accounts {
		if err := s.db.SaveAccountApproval(ctx, account, approved); err != nil {
			return types.NewError(
				http.StatusInternalServerError,
				types.InternalServiceError,
				fmt.Errorf("failed to save account approval: %w", err),
			)
		}
		ev := &consumer.AccountApprovalChangedEvent{Account: account, Approved: approved}
		events = append(events, func(ctx context.Context) error {
			return s.eventConsumer.PushParamsEvent(ctx, types.EventAccountApprovalChanged.String(), ev)
		})
	}

	s.publishEvents(ctx, events)
	return nil
}

func shareChangeEvent(s *Service, address string, shares, total sdkmath.Int) pendingEvent {
	ev := &consumer.FeeRecipientSharesChangeEvent{
		Recipient:   address,
		Shares:      shares,
		TotalShares: total,
	}
	return func(ctx context.Context) error {
		return s.eventConsumer.PushParamsEvent(ctx, types.EventFeeRecipientSharesChange.String(), ev)
	}
}

func requireAdmin(caller types.Caller) *types.Error {
	if !caller.HasRole(types.RoleAdmin) {
		return types.NewErrorWithMsg(
			http.StatusForbidden, types.Unauthorized, "caller is not an admin",
		)
	}
	return nil
}

func (s *Service) bridgeParams(ctx context.Context) (*model.BridgeParamsDocument, *types.Error) {
	params, err := s.db.GetBridgeParams(ctx)
	if err != nil {
		return nil, types.NewError(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Errorf("failed to get bridge params: %w", err),
		)
	}
	return params, nil
}

func (s *Service) saveBridgeParams(ctx context.Context, params *model.BridgeParamsDocument) *types.Error {
	if err := s.db.SaveBridgeParams(ctx, params); err != nil {
		return types.NewError(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Errorf("failed to save bridge params: %w", err),
		)
	}
	return nil
}
