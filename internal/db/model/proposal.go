package model

import (
	sdkmath "cosmossdk.io/math"

	"github.com/backedfi/fiat-bridge/internal/proposal"
)

const ProposalCollection = "proposals"

// ProposalDocument is one vote tally, keyed by the digest of the proposal
// key so that concurrent proposals for the same transaction id stay apart.
type ProposalDocument struct {
	Digest        string   `bson:"_id"`
	Recipient     string   `bson:"recipient"`
	Amount        string   `bson:"amount"`
	TransactionID string   `bson:"transaction_id"`
	Voters        []string `bson:"voters"`
}

func FromProposalKey(key proposal.Key) *ProposalDocument {
	return &ProposalDocument{
		Digest:        key.Digest(),
		Recipient:     key.Recipient,
		Amount:        key.Amount.String(),
		TransactionID: key.TransactionID,
	}
}

func (d *ProposalDocument) VoteCount() uint64 {
	return uint64(len(d.Voters))
}

func (d *ProposalDocument) AmountInt() (sdkmath.Int, error) {
	return parseIntField(d.Amount, "amount")
}
