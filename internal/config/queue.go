package config

import (
	"fmt"
	"time"
)

type QueueConfig struct {
	User              string        `mapstructure:"user"`
	Password          string        `mapstructure:"password"`
	Url               string        `mapstructure:"url"`
	ProcessingTimeout time.Duration `mapstructure:"processing-timeout"`
	MaxRetryTimes     uint          `mapstructure:"max-retry-times"`
	RetryInterval     time.Duration `mapstructure:"retry-interval"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.User == "" {
		return fmt.Errorf("missing queue user")
	}
	if cfg.Password == "" {
		return fmt.Errorf("missing queue password")
	}
	if cfg.Url == "" {
		return fmt.Errorf("missing queue url")
	}
	if cfg.ProcessingTimeout <= 0 {
		return fmt.Errorf("queue processing-timeout must be positive")
	}
	if cfg.MaxRetryTimes == 0 {
		return fmt.Errorf("queue max-retry-times must be positive")
	}
	if cfg.RetryInterval <= 0 {
		return fmt.Errorf("queue retry-interval must be positive")
	}

	return nil
}
