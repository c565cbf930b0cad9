package model

import (
	"github.com/backedfi/fiat-bridge/internal/types"
)

const TransactionCollection = "transactions"

// TransactionDocument pins a transaction id to the proposal digest that won
// it. The document is created when the proposal passes; ids still open for
// voting have no document.
type TransactionDocument struct {
	TransactionID string                 `bson:"_id"`
	State         types.TransactionState `bson:"state"`
	Digest        string                 `bson:"digest"`
}
