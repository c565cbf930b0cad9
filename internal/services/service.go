package services

import (
	"context"
	"sync"

	"github.com/backedfi/fiat-bridge/consumer"
	"github.com/backedfi/fiat-bridge/internal/clients/ledgerclient"
	"github.com/backedfi/fiat-bridge/internal/config"
	"github.com/backedfi/fiat-bridge/internal/db"
)

type Service struct {
	cfg           *config.Config
	db            db.DbInterface
	ledger        ledgerclient.LedgerInterface
	eventConsumer consumer.EventConsumer

	// mu serializes every state-mutating bridge operation. Each operation
	// observes the committed effects of all operations admitted before it;
	// queries read committed state without the lock.
	mu sync.Mutex
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	ledger ledgerclient.LedgerInterface,
	eventConsumer consumer.EventConsumer,
) *Service {
	return &Service{
		cfg:           cfg,
		db:            db,
		ledger:        ledger,
		eventConsumer: eventConsumer,
	}
}

// Ping verifies the storage connection, used by the health endpoint.
func (s *Service) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
