package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"glossify/models"
	"glossify/utils"

	"go.uber.org/zap"
)

// NotificationService hands composed notifications to the external
// dispatcher. Delivery, templating and retries on the provider side are the
// dispatcher's problem; callers only decide what to send.
type NotificationService interface {
	Dispatch(ctx context.Context, req models.NotificationRequest) error
}

// DefaultNotificationService is the production implementation, backed by the
// dispatcher's HTTP API.
type DefaultNotificationService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewDefaultNotificationService(baseURL, apiKey string) (*DefaultNotificationService, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("notification service initialization error: base URL is empty")
	}
	return &DefaultNotificationService{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// dispatchResponse is the dispatcher's response envelope.
type dispatchResponse struct {
	Success bool `json:"success"`
	Error   *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

// Dispatch posts a notification to the dispatcher. A non-2xx status or a
// success=false envelope both count as failure.
func (s *DefaultNotificationService) Dispatch(ctx context.Context, req models.NotificationRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("Dispatch: failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/notifications", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("Dispatch: failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("Dispatch: request failed: %w", err)
	}
	defer resp.Body.Close()

	var envelope dispatchResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("Dispatch: failed to decode response (status %d): %w", resp.StatusCode, err)
	}
	if !envelope.Success {
		msg := "dispatcher rejected the notification"
		if envelope.Error != nil {
			msg = envelope.Error.Message
		}
		return fmt.Errorf("Dispatch: %s (status %d)", msg, resp.StatusCode)
	}

	utils.GetLogger().Debug("notification dispatched",
		zap.String("templateId", req.TemplateID),
		zap.String("channel", string(req.Channel)))
	return nil
}
