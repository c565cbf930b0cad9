package types

// Enum values for the per-transaction-id state machine. A transaction id has
// no document at all while voting is still open; the first recorded state is
// PASSED and the only transition out of it is MINTED. Both states are
// terminal with respect to further voting.
type TransactionState string

const (
	StatePassed TransactionState = "PASSED"
	StateMinted TransactionState = "MINTED"
)

func (s TransactionState) String() string {
	return string(s)
}

// QualifiedStatesForMinted returns the qualified current states for marking
// a transaction id as minted
func QualifiedStatesForMinted() []TransactionState {
	return []TransactionState{StatePassed}
}
