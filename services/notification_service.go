package services

import (
	"StarBoard/models"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"firebase.google.com/go/v4/messaging"
)

// MessageSender is the part of *messaging.Client the service needs.
type MessageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// NotificationService pushes achievement notifications through FCM.
type NotificationService struct {
	FCMClient MessageSender
}

func NewNotificationService(client MessageSender) *NotificationService {
	return &NotificationService{FCMClient: client}
}

// SendNotification pushes one FCM message to a device token.
func (s *NotificationService) SendNotification(ctx context.Context, deviceToken, title, body string, data map[string]string) error {
	if deviceToken == "" {
		return ErrDeviceTokenEmpty
	}

	message := &messaging.Message{
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data:  data,
		Token: deviceToken,
	}

	resp, err := s.FCMClient.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("fcm send: %w", err)
	}

	slog.DebugContext(ctx, "FCM notification sent", "message_id", resp, "title", title)
	return nil
}

// NotifyAchievements sends one push summarising the unlocked achievements.
// Parents without a registered device are skipped silently.
func (s *NotificationService) NotifyAchievements(ctx context.Context, parent *models.Parent, child *models.Child, unlocked []models.Achievement) error {
	if parent == nil || parent.DeviceToken == "" || len(unlocked) == 0 {
		return nil
	}

	titles := make([]string, 0, len(unlocked))
	for _, a := range unlocked {
		titles = append(titles, a.Title)
	}

	title := fmt.Sprintf("%s unlocked an achievement!", child.Name)
	if len(unlocked) > 1 {
		title = fmt.Sprintf("%s unlocked %d achievements!", child.Name, len(unlocked))
	}
	data := map[string]string{
		"type":     "achievement",
		"child_id": child.ID,
		"count":    strconv.Itoa(len(unlocked)),
	}
	return s.SendNotification(ctx, parent.DeviceToken, title, strings.Join(titles, ", "), data)
}
