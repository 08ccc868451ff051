package service

import (
	"context"

	"gift-recommender-be/internal/metrics"
	"gift-recommender-be/internal/pkg/logger"
	"gift-recommender-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process event topic and forwards each event
// to the cross-service bus. A nil forward only logs.
type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	forward    events.Publisher
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	forward events.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		forward:    forward,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var event events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("Consumer", "Failed to unmarshal event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		metrics.EventsPublished.WithLabelValues("unknown", "invalid").Inc()
		msg.Ack() // redelivery cannot fix a bad payload
		return
	}

	cs.logger.Debug("Consumer", "Event received", map[string]interface{}{
		"type":        event.Type,
		"occurred_at": event.OccurredAt,
	})

	if cs.forward == nil {
		metrics.EventsPublished.WithLabelValues(event.Type, "local").Inc()
		msg.Ack()
		return
	}

	if err := cs.forward.Publish(ctx, event); err != nil {
		// the bus is best effort; a retry loop here would stall the channel
		cs.logger.Warn("Consumer", "Failed to forward event", map[string]interface{}{
			"type":  event.Type,
			"error": err.Error(),
		})
		metrics.EventsPublished.WithLabelValues(event.Type, "error").Inc()
		msg.Ack()
		return
	}

	metrics.EventsPublished.WithLabelValues(event.Type, "forwarded").Inc()
	msg.Ack()
}
