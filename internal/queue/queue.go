package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/backedfi/fiat-bridge/consumer"
	"github.com/backedfi/fiat-bridge/internal/config"
	"github.com/backedfi/fiat-bridge/internal/observability/metrics"
	"github.com/backedfi/fiat-bridge/internal/types"
)

const (
	ProposalEventsQueue = "bridge_proposal_events"
	TransferEventsQueue = "bridge_transfer_events"
	ParamsEventsQueue   = "bridge_params_events"
)

// messageEnvelope wraps every published event with an id for consumer-side
// deduplication and the event type for dispatch.
type messageEnvelope struct {
	EventID   string `json:"event_id"`
	EventType string `json:"event_type"`
	Payload   any    `json:"payload"`
}

type QueueManager struct {
	cfg     *config.QueueConfig
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewQueueManager(cfg *config.QueueConfig) *QueueManager {
	return &QueueManager{cfg: cfg}
}

func (qm *QueueManager) Start() error {
	url := fmt.Sprintf("amqp://%s:%s@%s", qm.cfg.User, qm.cfg.Password, qm.cfg.Url)
	conn, err := retry.DoWithData(func() (*amqp.Connection, error) {
		return amqp.Dial(url)
	},
		retry.Attempts(qm.cfg.MaxRetryTimes),
		retry.Delay(qm.cfg.RetryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", qm.cfg.MaxRetryTimes).
				Err(err).
				Msg("queue connection failed, retrying with exponential backoff")
		}))
	if err != nil {
		return fmt.Errorf("failed to connect to queue: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		//nolint:errcheck
		conn.Close()
		return fmt.Errorf("failed to open queue channel: %w", err)
	}

	for _, queueName := range []string{ProposalEventsQueue, TransferEventsQueue, ParamsEventsQueue} {
		_, err := channel.QueueDeclare(
			queueName,
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,
		)
		if err != nil {
			//nolint:errcheck
			conn.Close()
			return fmt.Errorf("failed to declare queue %s: %w", queueName, err)
		}
	}

	qm.conn = conn
	qm.channel = channel
	return nil
}

func (qm *QueueManager) PushProposalVoteEvent(ctx context.Context, ev *consumer.ProposalVoteEvent) error {
	return qm.publish(ctx, ProposalEventsQueue, types.EventProposalVote.String(), ev)
}

func (qm *QueueManager) PushProposalPassedEvent(ctx context.Context, ev *consumer.ProposalPassedEvent) error {
	return qm.publish(ctx, ProposalEventsQueue, types.EventProposalPassed.String(), ev)
}

func (qm *QueueManager) PushBridgeMintEvent(ctx context.Context, ev *consumer.BridgeMintEvent) error {
	return qm.publish(ctx, TransferEventsQueue, types.EventBridgeMint.String(), ev)
}

func (qm *QueueManager) PushBridgeBurnEvent(ctx context.Context, ev *consumer.BridgeBurnEvent) error {
	return qm.publish(ctx, TransferEventsQueue, types.EventBridgeBurn.String(), ev)
}

func (qm *QueueManager) PushParamsEvent(ctx context.Context, eventType string, ev any) error {
	return qm.publish(ctx, ParamsEventsQueue, eventType, ev)
}

func (qm *QueueManager) publish(ctx context.Context, queueName string, eventType string, payload any) error {
	envelope := messageEnvelope{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Payload:   payload,
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", eventType, err)
	}

	ctx, cancel := context.WithTimeout(ctx, qm.cfg.ProcessingTimeout)
	defer cancel()

	err = qm.channel.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    envelope.EventID,
			Type:         eventType,
			Body:         body,
		},
	)
	if err != nil {
		metrics.RecordQueueSendError()
		return fmt.Errorf("failed to publish event %s: %w", eventType, err)
	}

	return nil
}

// Stop gracefully stops the interaction with the queue, ensuring all resources are properly released.
func (qm *QueueManager) Stop() error {
	log.Info().Msg("Shutting down queue manager")

	if qm.channel != nil {
		if err := qm.channel.Close(); err != nil {
			return err
		}
	}
	if qm.conn != nil {
		if err := qm.conn.Close(); err != nil {
			return err
		}
	}
	return nil
}
