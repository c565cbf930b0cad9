package model

import (
	"github.com/backedfi/fiat-bridge/internal/fee"
)

const FeeRecipientsCollection = "fee_recipients"

// feeRecipientsDocID keys the single ordered recipient set document, which
// is always replaced whole so readers never observe a partial update.
const feeRecipientsDocID = "fee_recipients"

type FeeRecipientEntry struct {
	Address string `bson:"address"`
	Shares  string `bson:"shares"`
}

type FeeRecipientsDocument struct {
	ID         string              `bson:"_id"`
	Recipients []FeeRecipientEntry `bson:"recipients"`
}

func NewFeeRecipientsDocument(recipients []fee.Recipient) *FeeRecipientsDocument {
	entries := make([]FeeRecipientEntry, 0, len(recipients))
	for _, r := range recipients {
		entries = append(entries, FeeRecipientEntry{
			Address: r.Address,
			Shares:  r.Shares.String(),
		})
	}
	return &FeeRecipientsDocument{
		ID:         feeRecipientsDocID,
		Recipients: entries,
	}
}

func (d *FeeRecipientsDocument) ToRecipients() ([]fee.Recipient, error) {
	recipients := make([]fee.Recipient, 0, len(d.Recipients))
	for _, entry := range d.Recipients {
		shares, err := parseIntField(entry.Shares, "shares")
		if err != nil {
			return nil, err
		}
		recipients = append(recipients, fee.Recipient{
			Address: entry.Address,
			Shares:  shares,
		})
	}
	return recipients, nil
}
