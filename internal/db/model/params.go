package model

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	"github.com/backedfi/fiat-bridge/internal/fee"
)

const BridgeParamsCollection = "bridge_params"

// BridgeParamsType is the single params document discriminator. The value is
// hardcoded as there is exactly one bridge configuration per deployment, but
// the type field keeps the collection extensible.
const BridgeParamsType = "BRIDGE"

type FeeConfigDocument struct {
	Fixed            string `bson:"fixed"`
	RatioNumerator   string `bson:"ratio_numerator"`
	RatioDenominator string `bson:"ratio_denominator"`
}

// BridgeParamsDocument holds the admin-configured bridge parameters.
type BridgeParamsDocument struct {
	Type          string            `bson:"type"`
	VoteThreshold uint64            `bson:"vote_threshold"`
	MinimumBurn   string            `bson:"minimum_burn"`
	AutoMint      bool              `bson:"auto_mint"`
	MintFee       FeeConfigDocument `bson:"mint_fee"`
	BurnFee       FeeConfigDocument `bson:"burn_fee"`
}

// DefaultBridgeParams is the state of a freshly deployed bridge: no quorum
// configured yet (all votes fail until an admin sets a threshold), zero
// fees, no minimum burn, minting executed at pass time.
func DefaultBridgeParams() *BridgeParamsDocument {
	return &BridgeParamsDocument{
		Type:          BridgeParamsType,
		VoteThreshold: 0,
		MinimumBurn:   "0",
		AutoMint:      true,
		MintFee:       FromFeeConfig(fee.ZeroConfig()),
		BurnFee:       FromFeeConfig(fee.ZeroConfig()),
	}
}

func FromFeeConfig(cfg fee.Config) FeeConfigDocument {
	return FeeConfigDocument{
		Fixed:            cfg.Fixed.String(),
		RatioNumerator:   cfg.RatioNumerator.String(),
		RatioDenominator: cfg.RatioDenominator.String(),
	}
}

func (d FeeConfigDocument) ToFeeConfig() (fee.Config, error) {
	fixed, err := parseIntField(d.Fixed, "fixed")
	if err != nil {
		return fee.Config{}, err
	}
	num, err := parseIntField(d.RatioNumerator, "ratio_numerator")
	if err != nil {
		return fee.Config{}, err
	}
	den, err := parseIntField(d.RatioDenominator, "ratio_denominator")
	if err != nil {
		return fee.Config{}, err
	}
	return fee.NewConfig(fixed, num, den)
}

func (d *BridgeParamsDocument) MinimumBurnInt() (sdkmath.Int, error) {
	return parseIntField(d.MinimumBurn, "minimum_burn")
}

func parseIntField(value, field string) (sdkmath.Int, error) {
	parsed, ok := sdkmath.NewIntFromString(value)
	if !ok {
		return sdkmath.Int{}, fmt.Errorf("invalid integer in field %s: %q", field, value)
	}
	return parsed, nil
}
