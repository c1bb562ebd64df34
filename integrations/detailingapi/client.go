package detailingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"glossify/models"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// Client talks to the backend detailing API over HTTP. Every response uses
// the envelope {success, data?, error?}; success=false or missing data is a
// failure regardless of the HTTP status.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *APIError       `json:"error,omitempty"`
}

// GetAvailability fetches open slots for the given month.
func (c *Client) GetAvailability(ctx context.Context, req models.AvailabilityRequest) (*models.AvailabilityResponse, error) {
	var out models.AvailabilityResponse
	if err := c.post(ctx, "/v1/availability", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateVehicle persists a vehicle entered during booking and returns it
// with its assigned ID.
func (c *Client) CreateVehicle(ctx context.Context, vehicle models.Vehicle) (*models.Vehicle, error) {
	var out models.Vehicle
	if err := c.post(ctx, "/v1/vehicles", vehicle, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBooking submits a completed booking record.
func (c *Client) CreateBooking(ctx context.Context, record models.BookingRecord) (*models.BookingCreationResponse, error) {
	var out models.BookingCreationResponse
	if err := c.post(ctx, "/v1/bookings", record, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// post sends the request with retries on transport errors and 5xx responses,
// then unwraps the envelope into out. Envelope rejections and 4xx responses
// are not retried.
func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = 30 * time.Second
	retryPolicy.MaxInterval = 5 * time.Second

	var env envelope
	err = backoff.RetryNotify(
		func() error {
			return c.doOnce(ctx, path, body, &env)
		},
		backoff.WithContext(retryPolicy, ctx),
		func(err error, duration time.Duration) {
			c.logger.Warn("detailing API request failed, retrying",
				zap.String("path", path),
				zap.Error(err),
				zap.Duration("next_attempt_in", duration))
		},
	)
	if err != nil {
		return err
	}

	if !env.Success || env.Data == nil {
		if env.Error != nil {
			return fmt.Errorf("%w: %v", ErrInvalidResponse, env.Error)
		}
		return fmt.Errorf("%w: backend reported failure without detail", ErrInvalidResponse)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: failed to decode data: %v", ErrInvalidResponse, err)
	}
	return nil
}

func (c *Client) doOnce(ctx context.Context, path string, body []byte, env *envelope) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return backoff.Permanent(fmt.Errorf("%w: failed to create request: %v", ErrInternal, err))
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(env); err != nil {
		return backoff.Permanent(fmt.Errorf("%w: failed to decode response (status %d): %v", ErrInvalidResponse, resp.StatusCode, err))
	}
	return nil
}
