package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sanketgaikwad/portfolio-api/internal/config"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/portfolio"
)

const (
	TopicContentEvents = "content.events"
	TopicContactEvents = "contact.events"
)

type ContentEventType string

const (
	ContentEventTypeCreated ContentEventType = "content.created"
	ContentEventTypeUpdated ContentEventType = "content.updated"
	ContentEventTypeDeleted ContentEventType = "content.deleted"
	ContentEventTypeSeeded  ContentEventType = "content.seeded"
)

// ContentEventPayload announces a committed mutation on a collection.
type ContentEventPayload struct {
	EventType  ContentEventType     `json:"event_type"`
	Collection portfolio.Collection `json:"collection"`
	ResourceID uuid.UUID            `json:"resource_id"`
}

// ContactEventPayload carries a visitor submission to the relay worker.
type ContactEventPayload struct {
	ContactID uuid.UUID `json:"contact_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Received  string    `json:"received"`
}

type KafkaProducerClient struct {
	ContentEventsWriter *kafka.Writer
	ContactEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	contentWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicContentEvents,
		Balancer: &kafka.LeastBytes{},
	}

	contactWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicContactEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		ContentEventsWriter: contentWriter,
		ContactEventsWriter: contactWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishContentEvent(ctx context.Context, payload ContentEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot marshal content event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(payload.Collection),
		Value: value,
	}
	return c.ContentEventsWriter.WriteMessages(ctx, msg)
}

func (c *KafkaProducerClient) PublishContactEvent(ctx context.Context, payload ContactEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot marshal contact event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(payload.ContactID.String()),
		Value: value,
	}
	return c.ContactEventsWriter.WriteMessages(ctx, msg)
}

func (c *KafkaProducerClient) Close() {
	if c.ContentEventsWriter != nil {
		c.ContentEventsWriter.Close()
	}
	if c.ContactEventsWriter != nil {
		c.ContactEventsWriter.Close()
	}
}
