package service

import (
	"context"
	"encoding/json"
	"log"

	"smart-summary-be/internal/dto"
	"smart-summary-be/pkg/identity"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	identityClient *identity.Client
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	identityClient *identity.Client,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		identityClient: identityClient,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
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
	var payload dto.SaveProfileMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Saving profile metadata for user: %s", payload.UserId)

	if cs.identityClient == nil {
		log.Printf("[WARN] Identity client not configured, dropping profile save for %s", payload.UserId)
		msg.Ack()
		return
	}

	patch := map[string]interface{}{
		identity.KeyCompanyName:   payload.CompanyName,
		identity.KeyNAICSCode:     payload.NaicsCode,
		identity.KeySelectedState: payload.State,
		identity.KeyKeywords:      payload.Keywords,
	}

	if err := cs.identityClient.SaveMetadata(ctx, payload.UserId, patch); err != nil {
		log.Printf("[ERROR] Failed to save profile metadata for %s: %v", payload.UserId, err)
		msg.Nack() // Retry
		return
	}

	msg.Ack()
}
