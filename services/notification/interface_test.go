package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"glossify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDispatcher(t *testing.T, handler http.HandlerFunc) *DefaultNotificationService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	svc, err := NewDefaultNotificationService(server.URL, "notify-key")
	require.NoError(t, err)
	return svc
}

func TestDispatchSuccess(t *testing.T) {
	svc := newDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/notifications", r.URL.Path)
		assert.Equal(t, "Bearer notify-key", r.Header.Get("Authorization"))

		var req models.NotificationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "booking_confirmation_email", req.TemplateID)

		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	err := svc.Dispatch(context.Background(), models.NotificationRequest{
		TemplateID: "booking_confirmation_email",
		Recipient:  models.Recipient{Email: "dana@example.com"},
		Channel:    models.ChannelEmail,
	})
	assert.NoError(t, err)
}

func TestDispatchRejected(t *testing.T) {
	svc := newDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   map[string]string{"message": "unknown template", "code": "template_not_found"},
		})
	})

	err := svc.Dispatch(context.Background(), models.NotificationRequest{TemplateID: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown template")
}

func TestNewServiceRequiresBaseURL(t *testing.T) {
	_, err := NewDefaultNotificationService("", "key")
	assert.Error(t, err)
}
