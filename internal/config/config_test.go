package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Db: DbConfig{
			Username: "test",
			Password: "test",
			Address:  "mongodb://localhost:27017",
			DbName:   "test",
		},
		Api: ApiConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Ledger: LedgerConfig{
			Endpoint:      "http://localhost:8090",
			Timeout:       15 * time.Second,
			MaxRetryTimes: 3,
			RetryInterval: 1 * time.Second,
		},
		Queue: QueueConfig{
			User:              "test",
			Password:          "test",
			Url:               "localhost:5672",
			ProcessingTimeout: 5 * time.Second,
			MaxRetryTimes:     3,
			RetryInterval:     1 * time.Second,
		},
		Metrics: MetricsConfig{
			Host: "0.0.0.0",
			Port: 2112,
		},
		Access: AccessConfig{
			Admins:    []string{"admin-1"},
			Approvers: []string{"approver-1"},
			Bridgers:  []string{"bridger-1", "bridger-2"},
		},
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())

	t.Run("invalid db scheme", func(t *testing.T) {
		cfg := validConfig()
		cfg.Db.Address = "postgres://localhost:5432"
		require.Error(t, cfg.Validate())
	})

	t.Run("missing ledger endpoint", func(t *testing.T) {
		cfg := validConfig()
		cfg.Ledger.Endpoint = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("privileged api port", func(t *testing.T) {
		cfg := validConfig()
		cfg.Api.Port = 80
		require.Error(t, cfg.Validate())
	})

	t.Run("zero queue retry attempts", func(t *testing.T) {
		cfg := validConfig()
		cfg.Queue.MaxRetryTimes = 0
		require.Error(t, cfg.Validate())
	})

	t.Run("no admins", func(t *testing.T) {
		cfg := validConfig()
		cfg.Access.Admins = nil
		require.Error(t, cfg.Validate())
	})

	t.Run("empty caller id in access list", func(t *testing.T) {
		cfg := validConfig()
		cfg.Access.Bridgers = []string{""}
		require.Error(t, cfg.Validate())
	})
}

func TestApiAddress(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, "0.0.0.0:8080", cfg.Api.Address())
}
