package db

import (
	"context"
	"time"

	"github.com/backedfi/fiat-bridge/internal/db/model"
	"github.com/backedfi/fiat-bridge/internal/observability/metrics"
	"github.com/backedfi/fiat-bridge/internal/types"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) AddVote(ctx context.Context, proposalDoc *model.ProposalDocument, voter string) (result *model.ProposalDocument, err error) {
	//nolint:errcheck
	d.run("AddVote", func() error {
		result, err = d.db.AddVote(ctx, proposalDoc, voter)
		return err
	})
	return
}

func (d *DbWithMetrics) RemoveVote(ctx context.Context, digest string, voter string) error {
	return d.run("RemoveVote", func() error {
		return d.db.RemoveVote(ctx, digest, voter)
	})
}

func (d *DbWithMetrics) GetProposal(ctx context.Context, digest string) (result *model.ProposalDocument, err error) {
	//nolint:errcheck
	d.run("GetProposal", func() error {
		result, err = d.db.GetProposal(ctx, digest)
		return err
	})
	return
}

func (d *DbWithMetrics) SaveTransactionPassed(ctx context.Context, transactionID string, digest string) error {
	return d.run("SaveTransactionPassed", func() error {
		return d.db.SaveTransactionPassed(ctx, transactionID, digest)
	})
}

func (d *DbWithMetrics) UpdateTransactionState(ctx context.Context, transactionID string, qualifiedPreviousStates []types.TransactionState, newState types.TransactionState) error {
	return d.run("UpdateTransactionState", func() error {
		return d.db.UpdateTransactionState(ctx, transactionID, qualifiedPreviousStates, newState)
	})
}

func (d *DbWithMetrics) DeleteTransaction(ctx context.Context, transactionID string) error {
	return d.run("DeleteTransaction", func() error {
		return d.db.DeleteTransaction(ctx, transactionID)
	})
}

func (d *DbWithMetrics) GetTransaction(ctx context.Context, transactionID string) (result *model.TransactionDocument, err error) {
	//nolint:errcheck
	d.run("GetTransaction", func() error {
		result, err = d.db.GetTransaction(ctx, transactionID)
		return err
	})
	return
}

func (d *DbWithMetrics) SaveBridgeParams(ctx context.Context, params *model.BridgeParamsDocument) error {
	return d.run("SaveBridgeParams", func() error {
		return d.db.SaveBridgeParams(ctx, params)
	})
}

func (d *DbWithMetrics) GetBridgeParams(ctx context.Context) (result *model.BridgeParamsDocument, err error) {
	//nolint:errcheck
	d.run("GetBridgeParams", func() error {
		result, err = d.db.GetBridgeParams(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) SaveFeeRecipients(ctx context.Context, recipientsDoc *model.FeeRecipientsDocument) error {
	return d.run("SaveFeeRecipients", func() error {
		return d.db.SaveFeeRecipients(ctx, recipientsDoc)
	})
}

func (d *DbWithMetrics) GetFeeRecipients(ctx context.Context) (result *model.FeeRecipientsDocument, err error) {
	//nolint:errcheck
	d.run("GetFeeRecipients", func() error {
		result, err = d.db.GetFeeRecipients(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) SaveAccountApproval(ctx context.Context, account string, approved bool) error {
	return d.run("SaveAccountApproval", func() error {
		return d.db.SaveAccountApproval(ctx, account, approved)
	})
}

func (d *DbWithMetrics) IsAccountApproved(ctx context.Context, account string) (result bool, err error) {
	//nolint:errcheck
	d.run("IsAccountApproved", func() error {
		result, err = d.db.IsAccountApproved(ctx, account)
		return err
	})
	return
}

func (d *DbWithMetrics) run(method string, f func() error) error {
	start := time.Now()
	err := f()
	metrics.RecordDbLatency(time.Since(start), method, err != nil)
	return err
}
