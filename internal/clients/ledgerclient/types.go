package ledgerclient

import (
	"errors"

	sdkmath "cosmossdk.io/math"
)

// Ledger error codes surfaced on rejected operations.
const (
	errCodeInsufficientBalanceOrAllowance = "INSUFFICIENT_BALANCE_OR_ALLOWANCE"
	errCodePaused                         = "LEDGER_PAUSED"
)

var (
	// ErrInsufficientBalanceOrAllowance is returned when the ledger rejects
	// a batch for lack of balance or allowance. The ledger keeps the
	// distinction opaque and so does the bridge.
	ErrInsufficientBalanceOrAllowance = errors.New("insufficient balance or allowance")
	// ErrLedgerPaused is returned while the ledger's pausable gate is closed
	ErrLedgerPaused = errors.New("ledger is paused")
)

type OperationType string

const (
	OperationMint         OperationType = "mint"
	OperationBurn         OperationType = "burn"
	OperationTransferFrom OperationType = "transfer_from"
)

// Operation is one leg of a ledger batch. Mint legs carry To, burn legs
// carry From, transfer-from legs carry both.
type Operation struct {
	Type   OperationType `json:"type"`
	From   string        `json:"from,omitempty"`
	To     string        `json:"to,omitempty"`
	Amount sdkmath.Int   `json:"amount"`
}

func MintOperation(to string, amount sdkmath.Int) Operation {
	return Operation{Type: OperationMint, To: to, Amount: amount}
}

func BurnOperation(from string, amount sdkmath.Int) Operation {
	return Operation{Type: OperationBurn, From: from, Amount: amount}
}

func TransferFromOperation(from, to string, amount sdkmath.Int) Operation {
	return Operation{Type: OperationTransferFrom, From: from, To: to, Amount: amount}
}

type batchRequest struct {
	Operations []Operation `json:"operations"`
}

type batchResponse struct {
	BatchID string `json:"batch_id"`
}

type balanceResponse struct {
	Balance sdkmath.Int `json:"balance"`
}

type allowanceResponse struct {
	Allowance sdkmath.Int `json:"allowance"`
}

type statusResponse struct {
	Paused bool `json:"paused"`
}
