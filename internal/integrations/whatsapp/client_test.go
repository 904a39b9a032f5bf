package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(Config{
		BaseURL:              server.URL,
		Token:                "test-token",
		PhoneNumberID:        "1234567890",
		ConfirmationTemplate: "appointment_confirmation",
		CancellationTemplate: "appointment_cancellation",
		DefaultCountryCode:   "+91",
		Timeout:              5 * time.Second,
	}, nopLogger{})
}

func TestSendConfirmation(t *testing.T) {
	var got templateMessage

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/1234567890/messages", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"messages":[{"id":"wamid.test"}]}`))
	})

	result, err := client.SendConfirmation(context.Background(), "9876543210", "Dr. Arun Mehta", "15-04-2026", "09:20 AM")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)

	assert.Equal(t, "whatsapp", got.MessagingProduct)
	assert.Equal(t, "+919876543210", got.To)
	assert.Equal(t, "appointment_confirmation", got.Template.Name)
	require.Len(t, got.Template.Components, 1)
	params := got.Template.Components[0].Parameters
	require.Len(t, params, 3)
	assert.Equal(t, "Dr. Arun Mehta", params[0].Text)
	assert.Equal(t, "15-04-2026", params[1].Text)
	assert.Equal(t, "09:20 AM", params[2].Text)
}

func TestSendCancellation_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid token"}}`))
	})

	result, err := client.SendCancellation(context.Background(), "9876543210", "Dr. Arun Mehta", "15-04-2026", "09:20 AM")
	assert.ErrorIs(t, err, ErrSendFailed)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusUnauthorized, result.StatusCode)
	assert.Contains(t, result.Body, "invalid token")
}

func TestNormalizePhone(t *testing.T) {
	client := NewClient(Config{DefaultCountryCode: "+91"}, nopLogger{})

	tests := []struct {
		input string
		want  string
	}{
		{"9876543210", "+919876543210"},
		{"09876543210", "+919876543210"},
		{"+449876543210", "+449876543210"},
		{" 9876543210 ", "+919876543210"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, client.normalizePhone(tt.input))
	}
}
