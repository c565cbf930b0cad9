package config

import (
	"fmt"
	"time"
)

// LedgerConfig points the bridge at the ledger service that owns the
// managed token balances.
type LedgerConfig struct {
	Endpoint      string        `mapstructure:"endpoint"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
}

func (cfg *LedgerConfig) Validate() error {
	if cfg.Endpoint == "" {
		return fmt.Errorf("ledger endpoint is required")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("ledger timeout must be positive")
	}
	if cfg.MaxRetryTimes == 0 {
		return fmt.Errorf("ledger max-retry-times must be positive")
	}
	if cfg.RetryInterval <= 0 {
		return fmt.Errorf("ledger retry-interval must be positive")
	}

	return nil
}
