package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/devhubio/profile-service/internal/config"
)

const TopicProfileEvents = "profile.events"

type ProfileEventType string

const (
	ProfileEventTypeInfoUpdated       ProfileEventType = "profile.info_updated"
	ProfileEventTypeLinksUpdated      ProfileEventType = "profile.links_updated"
	ProfileEventTypeMediaUpdated      ProfileEventType = "profile.media_updated"
	ProfileEventTypeResumeDeleted     ProfileEventType = "profile.resume_deleted"
	ProfileEventTypeExperienceCreated ProfileEventType = "profile.experience_created"
	ProfileEventTypeExperienceUpdated ProfileEventType = "profile.experience_updated"
	ProfileEventTypeExperienceDeleted ProfileEventType = "profile.experience_deleted"
)

type ProfileEventPayload struct {
	EventType    ProfileEventType `json:"event_type"`
	UserID       uuid.UUID        `json:"user_id"`
	ExperienceID *uuid.UUID       `json:"experience_id,omitempty"`
	OccurredAt   time.Time        `json:"occurred_at"`
}

type KafkaProducerClient struct {
	ProfileEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	profileWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicProfileEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{ProfileEventsWriter: profileWriter}, nil
}

func (c *KafkaProducerClient) PublishProfileEvent(ctx context.Context, payload ProfileEventPayload) error {
	if payload.OccurredAt.IsZero() {
		payload.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot marshal profile event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(payload.UserID.String()),
		Value: value,
	}
	if err := c.ProfileEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("cannot publish profile event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ProfileEventsWriter != nil {
		c.ProfileEventsWriter.Close()
	}
}
