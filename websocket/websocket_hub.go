package websocket

import (
	"StarBoard/models"
	"log/slog"

	"github.com/goccy/go-json"
)

// PublishStars sends a stars_logged event to every connection of the parent.
func (h *Hub) PublishStars(parentID string, event models.StarEvent) {
	if event.Type == "" {
		event.Type = models.StarEventType
	}
	if event.Achievements == nil {
		event.Achievements = []models.Achievement{}
	}
	event.ParentID = parentID

	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("Failed to encode star event", "parent_id", parentID, "error", err)
		return
	}
	h.Broadcast(&Message{ParentID: parentID, Data: data})
}
