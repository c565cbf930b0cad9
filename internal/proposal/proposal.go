package proposal

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	sdkmath "cosmossdk.io/math"
)

// Key identifies one bridge mint proposal. Two proposals agree only when all
// three components agree; distinct keys sharing a transaction id compete for
// the same finalization slot.
type Key struct {
	Recipient     string
	Amount        sdkmath.Int
	TransactionID string
}

func NewKey(recipient string, amount sdkmath.Int, transactionID string) Key {
	return Key{
		Recipient:     recipient,
		Amount:        amount,
		TransactionID: transactionID,
	}
}

// Digest returns the hex-encoded SHA-256 digest of the key. Components are
// length-prefixed so no two distinct keys can serialize to the same bytes.
func (k Key) Digest() string {
	h := sha256.New()
	writeField(h, []byte(k.Recipient))
	writeField(h, []byte(k.Amount.String()))
	writeField(h, []byte(k.TransactionID))
	return hex.EncodeToString(h.Sum(nil))
}

func writeField(h interface{ Write([]byte) (int, error) }, field []byte) {
	var length [8]byte
	binary.BigEndian.PutUint64(length[:], uint64(len(field)))
	//nolint:errcheck
	h.Write(length[:])
	//nolint:errcheck
	h.Write(field)
}

// Passable reports whether a final vote can bring the tally to the
// threshold: the caller's own vote counts once whether or not it was
// already recorded.
func Passable(voteCount uint64, hasVoted bool, threshold uint64) bool {
	effective := voteCount
	if !hasVoted {
		effective++
	}
	return effective >= threshold
}
