package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eco4-survey-crm/lib/realtime"
	"github.com/eco4-survey-crm/utils"
)

// EventsController handles the persistent push channel to dashboard clients
type EventsController struct {
	hub *realtime.Hub
}

// NewEventsController creates a new events controller instance
func NewEventsController(hub *realtime.Hub) *EventsController {
	return &EventsController{hub: hub}
}

// Stream handles GET /api/events
// Holds the connection open and forwards every broadcast as a server-sent event.
func (c *EventsController) Stream(ctx *gin.Context) {
	// Set headers for streaming
	ctx.Writer.Header().Set("Content-Type", "text/event-stream")
	ctx.Writer.Header().Set("Cache-Control", "no-cache")
	ctx.Writer.Header().Set("Connection", "keep-alive")

	flusher, ok := ctx.Writer.(http.Flusher)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Streaming not supported"})
		return
	}

	events := c.hub.Subscribe()
	defer c.hub.Unsubscribe(events)

	log.Printf("Client connected: %s (%d connected)", ctx.ClientIP(), c.hub.SubscriberCount())
	defer log.Printf("Client disconnected: %s", ctx.ClientIP())

	// Tell the client the stream is live before the first event arrives
	utils.WriteSSEComment(ctx.Writer, "connected")
	flusher.Flush()

	for {
		select {
		case <-ctx.Request.Context().Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := utils.WriteSSEEvent(ctx.Writer, event.Name, event); err != nil {
				continue
			}
			flusher.Flush()
		}
	}
}
