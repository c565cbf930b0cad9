package db

import (
	"context"

	"github.com/backedfi/fiat-bridge/internal/db/model"
	"github.com/backedfi/fiat-bridge/internal/types"
)

//go:generate mockery --name=DbInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_db_client.go
type DbInterface interface {
	Ping(ctx context.Context) error

	AddVote(
		ctx context.Context, proposalDoc *model.ProposalDocument, voter string,
	) (*model.ProposalDocument, error)
	RemoveVote(ctx context.Context, digest string, voter string) error
	GetProposal(ctx context.Context, digest string) (*model.ProposalDocument, error)

	SaveTransactionPassed(ctx context.Context, transactionID string, digest string) error
	UpdateTransactionState(
		ctx context.Context,
		transactionID string,
		qualifiedPreviousStates []types.TransactionState,
		newState types.TransactionState,
	) error
	DeleteTransaction(ctx context.Context, transactionID string) error
	GetTransaction(ctx context.Context, transactionID string) (*model.TransactionDocument, error)

	SaveBridgeParams(ctx context.Context, params *model.BridgeParamsDocument) error
	GetBridgeParams(ctx context.Context) (*model.BridgeParamsDocument, error)

	SaveFeeRecipients(ctx context.Context, recipientsDoc *model.FeeRecipientsDocument) error
	GetFeeRecipients(ctx context.Context) (*model.FeeRecipientsDocument, error)

	SaveAccountApproval(ctx context.Context, account string, approved bool) error
	IsAccountApproved(ctx context.Context, account string) (bool, error)
}
