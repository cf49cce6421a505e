package experience

import (
	"context"

	"go.uber.org/zap"

	"github.com/devhubio/profile-service/adapters/event"
	"github.com/devhubio/profile-service/pkg/logger"
)

func publishExperienceEvent(client *event.KafkaProducerClient, log logger.Logger, payload event.ProfileEventPayload) {
	if client == nil {
		return
	}
	go func() {
		if err := client.PublishProfileEvent(context.Background(), payload); err != nil {
			log.Error("Failed to publish Kafka experience event", err,
				zap.String("event_type", string(payload.EventType)),
				zap.String("user_id", payload.UserID.String()),
			)
		}
	}()
}
