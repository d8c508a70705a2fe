package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// OtpSender delivers a one-time code to a phone.
type OtpSender interface {
	SendOtp(ctx context.Context, phone, code string) error
}

// NewOtpSender returns a webhook sender when a URL is configured and a log
// sender otherwise.
func NewOtpSender(webhookURL, token string) OtpSender {
	if webhookURL == "" {
		return LogOtpSender{}
	}
	return &WebhookOtpSender{
		URL:    webhookURL,
		Token:  token,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// LogOtpSender writes the code to the server log. Development only.
type LogOtpSender struct{}

func (LogOtpSender) SendOtp(ctx context.Context, phone, code string) error {
	slog.InfoContext(ctx, fmt.Sprintf("OTP for %s: %s", phone, code))
	return nil
}

// WebhookOtpSender posts {"phone","code"} to an SMS gateway.
type WebhookOtpSender struct {
	URL    string
	Token  string
	Client *http.Client
}

type otpWebhookPayload struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

func (s *WebhookOtpSender) SendOtp(ctx context.Context, phone, code string) error {
	body, err := json.Marshal(otpWebhookPayload{Phone: phone, Code: code})
	if err != nil {
		return fmt.Errorf("encode otp payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build otp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("call otp webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("otp webhook returned %s", resp.Status)
	}
	return nil
}
