package config

import (
	"fmt"
)

// AccessConfig declares which caller ids hold which bridge role. The API
// layer resolves these lists into the capability set passed to every
// operation; the ids themselves are opaque to the bridge.
type AccessConfig struct {
	Admins    []string `mapstructure:"admins"`
	Approvers []string `mapstructure:"approvers"`
	Bridgers  []string `mapstructure:"bridgers"`
}

func (cfg *AccessConfig) Validate() error {
	if len(cfg.Admins) == 0 {
		return fmt.Errorf("at least one admin must be configured")
	}
	for _, list := range [][]string{cfg.Admins, cfg.Approvers, cfg.Bridgers} {
		for _, id := range list {
			if id == "" {
				return fmt.Errorf("access lists must not contain empty caller ids")
			}
		}
	}

	return nil
}
