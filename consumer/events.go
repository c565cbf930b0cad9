package consumer

import (
	sdkmath "cosmossdk.io/math"
)

// ProposalVoteEvent is published for every accepted vote, including the one
// that passes the proposal.
type ProposalVoteEvent struct {
	To            string      `json:"to"`
	Amount        sdkmath.Int `json:"amount"`
	TransactionID string      `json:"transaction_id"`
	Voter         string      `json:"voter"`
	Count         uint64      `json:"count"`
	Threshold     uint64      `json:"threshold"`
}

type ProposalPassedEvent struct {
	To            string      `json:"to"`
	Amount        sdkmath.Int `json:"amount"`
	TransactionID string      `json:"transaction_id"`
}

// BridgeMintEvent reports the gross requested amount; the fee split is
// observable on the ledger itself.
type BridgeMintEvent struct {
	To            string      `json:"to"`
	Amount        sdkmath.Int `json:"amount"`
	TransactionID string      `json:"transaction_id"`
}

// BridgeBurnEvent reports the net amount destroyed, after fee shares were
// redirected to the fee recipients.
type BridgeBurnEvent struct {
	Account string      `json:"account"`
	From    string      `json:"from"`
	Amount  sdkmath.Int `json:"amount"`
}

type MinimumBurnChangedEvent struct {
	PreviousMinimum sdkmath.Int `json:"previous_minimum"`
	Minimum         sdkmath.Int `json:"minimum"`
}

type ProposalThresholdChangedEvent struct {
	PreviousThreshold uint64 `json:"previous_threshold"`
	Threshold         uint64 `json:"threshold"`
}

type FeeChangeEvent struct {
	FixedFee         sdkmath.Int `json:"fixed_fee"`
	RatioNumerator   sdkmath.Int `json:"ratio_numerator"`
	RatioDenominator sdkmath.Int `json:"ratio_denominator"`
}

type FeeRecipientSharesChangeEvent struct {
	Recipient   string      `json:"recipient"`
	Shares      sdkmath.Int `json:"shares"`
	TotalShares sdkmath.Int `json:"total_shares"`
}

type FeeRecipientsClearedEvent struct{}

type AccountApprovalChangedEvent struct {
	Account  string `json:"account"`
	Approved bool   `json:"approved"`
}

type AutoMintChangedEvent struct {
	AutoMint bool `json:"auto_mint"`
}
