package services

import (
	"context"
	"fmt"
	"net/http"

	sdkmath "cosmossdk.io/math"

	"github.com/backedfi/fiat-bridge/internal/db"
	"github.com/backedfi/fiat-bridge/internal/fee"
	"github.com/backedfi/fiat-bridge/internal/proposal"
	"github.com/backedfi/fiat-bridge/internal/types"
)

// FeeView is the externally visible shape of a fee configuration: the ratio
// is normalized to parts per 1e20 regardless of how it was configured.
type FeeView struct {
	Fixed sdkmath.Int `json:"fixed"`
	Ratio sdkmath.Int `json:"ratio"`
}

type BridgeParamsView struct {
	VoteThreshold uint64      `json:"vote_threshold"`
	MinimumBurn   sdkmath.Int `json:"minimum_burn"`
	AutoMint      bool        `json:"auto_mint"`
	MintFee       FeeView     `json:"mint_fee"`
	BurnFee       FeeView     `json:"burn_fee"`
}

type FeeRecipientView struct {
	Address string      `json:"address"`
	Shares  sdkmath.Int `json:"shares"`
}

type FeeRecipientsView struct {
	Recipients  []FeeRecipientView `json:"recipients"`
	TotalShares sdkmath.Int        `json:"total_shares"`
}

type ProposalView struct {
	To            string      `json:"to"`
	Amount        sdkmath.Int `json:"amount"`
	TransactionID string      `json:"transaction_id"`
	Voters        []string    `json:"voters"`
	Count         uint64      `json:"count"`
}

// TransactionMinted reports whether the transaction id was minted.
func (s *Service) TransactionMinted(ctx context.Context, transactionID string) (bool, *types.Error) {
	transactionDoc, err := s.getTransaction(ctx, transactionID)
	if err != nil {
		return false, err
	}
	return transactionDoc != nil && transactionDoc.State == types.StateMinted, nil
}

// TransactionPassed reports whether the transaction id passed, minted or
// not.
func (s *Service) TransactionPassed(ctx context.Context, transactionID string) (bool, *types.Error) {
	transactionDoc, err := s.getTransaction(ctx, transactionID)
	if err != nil {
		return false, err
	}
	return transactionDoc != nil, nil
}

// GetProposalVotes returns the current tally for a proposal, or a nil view
// when nobody voted on it yet.
func (s *Service) GetProposalVotes(
	ctx context.Context, to string, amount sdkmath.Int, transactionID string,
) (*ProposalView, *types.Error) {
	if err := validateMintRequest(to, amount, transactionID); err != nil {
		return nil, err
	}

	proposalDoc, err := s.db.GetProposal(ctx, proposal.NewKey(to, amount, transactionID).Digest())
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, types.NewError(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Errorf("failed to get proposal: %w", err),
		)
	}

	return &ProposalView{
		To:            proposalDoc.Recipient,
		Amount:        amount,
		TransactionID: proposalDoc.TransactionID,
		Voters:        proposalDoc.Voters,
		Count:         proposalDoc.VoteCount(),
	}, nil
}

// GetBridgeParams returns the configured bridge parameters.
func (s *Service) GetBridgeParams(ctx context.Context) (*BridgeParamsView, *types.Error) {
	params, paramsErr := s.bridgeParams(ctx)
	if paramsErr != nil {
		return nil, paramsErr
	}

	minimumBurn, err := params.MinimumBurnInt()
	if err != nil {
		return nil, types.NewError(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Errorf("invalid stored minimum burn: %w", err),
		)
	}
	mintFee, err := params.MintFee.ToFeeConfig()
	if err != nil {
		return nil, types.NewError(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Errorf("invalid stored mint fee: %w", err),
		)
	}
	burnFee, err := params.BurnFee.ToFeeConfig()
	if err != nil {
		return nil, types.NewError(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Errorf("invalid stored burn fee: %w", err),
		)
	}

	return &BridgeParamsView{
		VoteThreshold: params.VoteThreshold,
		MinimumBurn:   minimumBurn,
		AutoMint:      params.AutoMint,
		MintFee:       FeeView{Fixed: mintFee.Fixed, Ratio: mintFee.Ratio()},
		BurnFee:       FeeView{Fixed: burnFee.Fixed, Ratio: burnFee.Ratio()},
	}, nil
}

// GetFeeRecipients returns the ordered fee recipient set.
func (s *Service) GetFeeRecipients(ctx context.Context) (*FeeRecipientsView, *types.Error) {
	recipients, recErr := s.feeRecipients(ctx)
	if recErr != nil {
		return nil, recErr
	}

	views := make([]FeeRecipientView, 0, len(recipients))
	for _, r := range recipients {
		views = append(views, FeeRecipientView{Address: r.Address, Shares: r.Shares})
	}
	return &FeeRecipientsView{
		Recipients:  views,
		TotalShares: fee.TotalShares(recipients),
	}, nil
}

// IsAccountApproved reports whether an off-ramp account may be burned to.
func (s *Service) IsAccountApproved(ctx context.Context, account string) (bool, *types.Error) {
	approved, err := s.db.IsAccountApproved(ctx, account)
	if err != nil {
		return false, types.NewError(
			http.StatusInternalServerError,
			types.InternalServiceError,
			fmt.Errorf("failed to check account approval: %w", err),
		)
	}
	return approved, nil
}
