package websocket

import (
	"log"

	"github.com/advisor-calendar/backend/internal/storage/models"
)

// EventBroadcaster handles broadcasting WebSocket events.
type EventBroadcaster struct {
	hub *Hub
}

// NewEventBroadcaster creates a new event broadcaster.
func NewEventBroadcaster(hub *Hub) *EventBroadcaster {
	return &EventBroadcaster{hub: hub}
}

// BroadcastEventCreated announces a newly created calendar event.
func (b *EventBroadcaster) BroadcastEventCreated(ev models.CalendarEvent) {
	b.broadcastChange(TypeEventCreated, ev)
}

// BroadcastEventUpdated announces an updated calendar event.
func (b *EventBroadcaster) BroadcastEventUpdated(ev models.CalendarEvent) {
	b.broadcastChange(TypeEventUpdated, ev)
}

// BroadcastEventDeleted announces a soft-deleted calendar event.
func (b *EventBroadcaster) BroadcastEventDeleted(ev models.CalendarEvent) {
	b.broadcastChange(TypeEventDeleted, ev)
}

// BroadcastNotification sends a notification to all connected clients.
func (b *EventBroadcaster) BroadcastNotification(level, title, message string) {
	payload := NotificationPayload{
		Level:       level,
		Title:       title,
		Message:     message,
		Dismissible: true,
	}

	b.broadcast(NewMessage(TypeNotification, payload))
}

func (b *EventBroadcaster) broadcastChange(msgType MessageType, ev models.CalendarEvent) {
	payload := EventChangePayload{
		EventID:   ev.ID,
		AdvisorID: ev.AdvisorID,
		Title:     ev.Title,
	}

	b.broadcast(NewMessage(msgType, payload))
}

// broadcast sends a message to all connected clients.
func (b *EventBroadcaster) broadcast(msg Message) {
	data, err := msg.JSON()
	if err != nil {
		log.Printf("Error encoding WebSocket message: %v", err)
		return
	}

	b.hub.Broadcast(data)
}
