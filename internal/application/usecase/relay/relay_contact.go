package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/sanketgaikwad/portfolio-api/adapters/event"
	"github.com/sanketgaikwad/portfolio-api/pkg/logger"
)

// RelayContactUseCase forwards a contact submission to the owner's
// notification endpoint. Best effort: a failed delivery is logged and the
// message is still considered handled, so it never blocks the queue.
type RelayContactUseCase struct {
	endpoint string
	client   *http.Client
	logger   logger.Logger
}

func NewRelayContactUseCase(endpoint string, log logger.Logger) *RelayContactUseCase {
	return &RelayContactUseCase{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   log,
	}
}

func (uc *RelayContactUseCase) Execute(ctx context.Context, payload event.ContactEventPayload) error {
	if uc.endpoint == "" {
		uc.logger.Warn("No relay endpoint configured, dropping contact notification",
			zap.String("contact_id", payload.ContactID.String()))
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal contact payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uc.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := uc.client.Do(req)
	if err != nil {
		return fmt.Errorf("deliver contact notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("relay endpoint returned status %d", resp.StatusCode)
	}

	uc.logger.Info("Contact notification relayed",
		zap.String("contact_id", payload.ContactID.String()),
		zap.String("email", payload.Email),
	)
	return nil
}
