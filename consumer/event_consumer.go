package consumer

import (
	"context"
)

//go:generate mockery --name=EventConsumer --output=../tests/mocks --outpkg=mocks --filename=mock_event_consumer.go
type EventConsumer interface {
	Start() error
	PushProposalVoteEvent(ctx context.Context, ev *ProposalVoteEvent) error
	PushProposalPassedEvent(ctx context.Context, ev *ProposalPassedEvent) error
	PushBridgeMintEvent(ctx context.Context, ev *BridgeMintEvent) error
	PushBridgeBurnEvent(ctx context.Context, ev *BridgeBurnEvent) error
	PushParamsEvent(ctx context.Context, eventType string, ev any) error
	Stop() error
}
