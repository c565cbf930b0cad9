package fee

import (
	"errors"
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// ErrFeeExceedsAmount is returned when the computed fee cannot be covered by
// the amount it is charged on.
var ErrFeeExceedsAmount = errors.New("fee exceeds amount")

// ratioPrecision is the fixed-point denominator of the reported fee ratio:
// a ratio of 1.0 is reported as 1e20.
var ratioPrecision = sdkmath.NewIntWithDecimal(1, 20)

// Config holds one direction's fee parameters: a fixed fee charged up front
// plus a rational ratio applied to the remainder of the amount.
type Config struct {
	Fixed            sdkmath.Int
	RatioNumerator   sdkmath.Int
	RatioDenominator sdkmath.Int
}

func NewConfig(fixed, ratioNumerator, ratioDenominator sdkmath.Int) (Config, error) {
	cfg := Config{
		Fixed:            fixed,
		RatioNumerator:   ratioNumerator,
		RatioDenominator: ratioDenominator,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ZeroConfig returns a fee configuration that charges nothing.
func ZeroConfig() Config {
	return Config{
		Fixed:            sdkmath.ZeroInt(),
		RatioNumerator:   sdkmath.ZeroInt(),
		RatioDenominator: sdkmath.OneInt(),
	}
}

func (c Config) Validate() error {
	if c.Fixed.IsNil() || c.RatioNumerator.IsNil() || c.RatioDenominator.IsNil() {
		return fmt.Errorf("fee config fields must be set")
	}
	if c.Fixed.IsNegative() {
		return fmt.Errorf("fixed fee must not be negative")
	}
	if c.RatioNumerator.IsNegative() {
		return fmt.Errorf("fee ratio numerator must not be negative")
	}
	if !c.RatioDenominator.IsPositive() {
		return fmt.Errorf("fee ratio denominator must be positive")
	}
	if c.RatioNumerator.GT(c.RatioDenominator) {
		return fmt.Errorf("fee ratio must not exceed 1")
	}
	return nil
}

// Ratio reports the variable part of the fee as a fixed-point number with
// denominator 1e20. This form is for queries and events only; ComputeFee
// always uses the exact rational, which the truncated fixed-point is not.
func (c Config) Ratio() sdkmath.Int {
	return c.RatioNumerator.Mul(ratioPrecision).Quo(c.RatioDenominator)
}

// ComputeFee computes the fee charged on amount: the fixed fee plus the
// ratio applied to whatever remains above it, floored. The result never
// exceeds amount; amounts below the fixed fee fail with ErrFeeExceedsAmount.
func (c Config) ComputeFee(amount sdkmath.Int) (sdkmath.Int, error) {
	if amount.IsNegative() {
		return sdkmath.Int{}, fmt.Errorf("amount must not be negative")
	}
	if amount.LT(c.Fixed) {
		return sdkmath.Int{}, ErrFeeExceedsAmount
	}

	variable := amount.Sub(c.Fixed).Mul(c.RatioNumerator).Quo(c.RatioDenominator)
	fee := c.Fixed.Add(variable)
	if fee.GT(amount) {
		return sdkmath.Int{}, ErrFeeExceedsAmount
	}
	return fee, nil
}
