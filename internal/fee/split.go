package fee

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// Recipient is one entry of the ordered fee recipient set.
type Recipient struct {
	Address string
	Shares  sdkmath.Int
}

// Share is one recipient's portion of a concrete fee amount.
type Share struct {
	Address string
	Amount  sdkmath.Int
}

// ValidateRecipients checks a candidate recipient set: addresses must be
// non-empty and unique, share weights strictly positive.
func ValidateRecipients(recipients []Recipient) error {
	seen := make(map[string]struct{}, len(recipients))
	for _, r := range recipients {
		if r.Address == "" {
			return fmt.Errorf("fee recipient address must not be empty")
		}
		if _, ok := seen[r.Address]; ok {
			return fmt.Errorf("fee recipient %s repeated", r.Address)
		}
		seen[r.Address] = struct{}{}
		if r.Shares.IsNil() || !r.Shares.IsPositive() {
			return fmt.Errorf("fee recipient %s must have shares > 0", r.Address)
		}
	}
	return nil
}

// TotalShares sums the share weights of the recipient set.
func TotalShares(recipients []Recipient) sdkmath.Int {
	total := sdkmath.ZeroInt()
	for _, r := range recipients {
		total = total.Add(r.Shares)
	}
	return total
}

// Split distributes feeAmount over the recipients proportionally to their
// share weights, in registration order. Every share is floored
// independently, so the rounding remainder is not paid to any recipient.
// An empty recipient set yields no shares.
func Split(feeAmount sdkmath.Int, recipients []Recipient) []Share {
	if len(recipients) == 0 {
		return nil
	}

	total := TotalShares(recipients)
	if !total.IsPositive() {
		return nil
	}

	shares := make([]Share, 0, len(recipients))
	for _, r := range recipients {
		shares = append(shares, Share{
			Address: r.Address,
			Amount:  feeAmount.Mul(r.Shares).Quo(total),
		})
	}
	return shares
}

// SumShares adds up the amounts of a computed split.
func SumShares(shares []Share) sdkmath.Int {
	total := sdkmath.ZeroInt()
	for _, s := range shares {
		total = total.Add(s.Amount)
	}
	return total
}
