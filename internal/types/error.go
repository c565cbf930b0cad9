package types

import "errors"

type ErrorCode string

func (e ErrorCode) String() string {
	return string(e)
}

const (
	// InternalServiceError is the error code for internal service errors
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
	// ValidationError is the error code for validation errors of request payloads
	ValidationError ErrorCode = "VALIDATION_ERROR"
	// NotFound is the error code for missing resources on query endpoints
	NotFound ErrorCode = "NOT_FOUND"
	// Unauthorized is returned when the caller lacks the role an operation requires
	Unauthorized ErrorCode = "UNAUTHORIZED"
	// InvalidThreshold is returned when the vote threshold is zero
	InvalidThreshold ErrorCode = "INVALID_THRESHOLD"
	// AlreadyVoted is returned when a voter re-votes on the same proposal key
	AlreadyVoted ErrorCode = "ALREADY_VOTED"
	// AlreadyFinalized is returned when a transaction id already passed
	AlreadyFinalized ErrorCode = "ALREADY_FINALIZED"
	// NotPassable is returned when a final vote cannot bring a proposal to its threshold
	NotPassable ErrorCode = "NOT_PASSABLE"
	// TransactionAlreadyMinted is returned when a transaction id was already minted
	TransactionAlreadyMinted ErrorCode = "TRANSACTION_ALREADY_MINTED"
	// AccountNotApproved is returned on burns towards an unapproved account
	AccountNotApproved ErrorCode = "ACCOUNT_NOT_APPROVED"
	// BelowMinimumBurn is returned when the burn amount is under the configured minimum
	BelowMinimumBurn ErrorCode = "BELOW_MINIMUM_BURN"
	// FeeExceedsAmount is returned when the computed fee is larger than the amount
	FeeExceedsAmount ErrorCode = "FEE_EXCEEDS_AMOUNT"
	// InsufficientBalanceOrAllowance is surfaced unchanged from the ledger
	InsufficientBalanceOrAllowance ErrorCode = "INSUFFICIENT_BALANCE_OR_ALLOWANCE"
	// InvalidRecipientConfig is returned on malformed fee recipient sets
	InvalidRecipientConfig ErrorCode = "INVALID_RECIPIENT_CONFIG"
	// LedgerPaused is returned when the ledger rejects operations while paused
	LedgerPaused ErrorCode = "LEDGER_PAUSED"
)

// Error wraps an error with an HTTP status code and a machine-readable error code
type Error struct {
	Err        error
	StatusCode int
	ErrorCode  ErrorCode
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.ErrorCode.String()
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	return &Error{
		Err:        err,
		StatusCode: statusCode,
		ErrorCode:  errorCode,
	}
}

func NewErrorWithMsg(statusCode int, errorCode ErrorCode, msg string) *Error {
	return NewError(statusCode, errorCode, errors.New(msg))
}
