package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/sanketgaikwad/portfolio-api/adapters/event"
	relayUC "github.com/sanketgaikwad/portfolio-api/internal/application/usecase/relay"
	"github.com/sanketgaikwad/portfolio-api/internal/config"
	"github.com/sanketgaikwad/portfolio-api/pkg/logger"
)

func main() {
	fmt.Println("Starting Portfolio Notification Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Worker Use Case
	relayContactUC := relayUC.NewRelayContactUseCase(cfg.Relay.Endpoint, appLogger)

	// Kafka Consumer
	contactConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicContactEvents,
		GroupID:  "contact-relay-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer contactConsumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicContactEvents)

	ctx := context.Background()
	for {
		msg, err := contactConsumer.FetchMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		log.Printf("Received message from [Topic: %s], [Key: %s]", msg.Topic, string(msg.Key))

		var payload event.ContactEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal event: %v. Skipping.", err)
			commitMessage(contactConsumer, msg)
			continue
		}

		// Delivery is best effort: a failed relay is logged and the
		// message committed anyway, never redelivered.
		if err := relayContactUC.Execute(ctx, payload); err != nil {
			log.Printf("ERROR: Failed to relay contact %s: %v", payload.ContactID, err)
		}

		commitMessage(contactConsumer, msg)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
