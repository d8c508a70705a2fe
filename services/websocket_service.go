package services

import "StarBoard/models"

// StarEventPublisher fans star events out to a parent's live connections.
// websocket.Hub implements it.
type StarEventPublisher interface {
	PublishStars(parentID string, event models.StarEvent)
}
