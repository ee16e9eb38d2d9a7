package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"mm-voicenote-be/internal/dto"
	"mm-voicenote-be/internal/pkg/logger"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the activity topic and writes the activity log.
// It is auxiliary: a lost message never affects stored notes or reports.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	log       logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		log:       log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.ActivityMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("activity_consumer", "failed to unmarshal activity message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payloads would retry forever otherwise
		return
	}

	cs.log.Info("activity_consumer", payload.Type, map[string]interface{}{
		"data":        payload.Data,
		"occurred_at": payload.OccurredAt,
	})
	msg.Ack()
}
