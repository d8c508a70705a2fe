package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOtpSenderFallsBackToLog(t *testing.T) {
	assert.IsType(t, LogOtpSender{}, NewOtpSender("", "token"))
	assert.IsType(t, &WebhookOtpSender{}, NewOtpSender("http://sms.local", ""))
	assert.NoError(t, LogOtpSender{}.SendOtp(context.Background(), "+1555", "123456"))
}

func TestWebhookOtpSenderPostsPayload(t *testing.T) {
	var got otpWebhookPayload
	var auth, contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	sender := NewOtpSender(server.URL, "secret")
	require.NoError(t, sender.SendOtp(context.Background(), "+15550100", "654321"))

	assert.Equal(t, "+15550100", got.Phone)
	assert.Equal(t, "654321", got.Code)
	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, "application/json", contentType)
}

func TestWebhookOtpSenderWithoutToken(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
	}))
	defer server.Close()

	require.NoError(t, NewOtpSender(server.URL, "").SendOtp(context.Background(), "+1", "111111"))
	assert.Empty(t, auth)
}

func TestWebhookOtpSenderNon2xxFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	err := NewOtpSender(server.URL, "").SendOtp(context.Background(), "+1", "111111")
	assert.ErrorContains(t, err, "502")
}
