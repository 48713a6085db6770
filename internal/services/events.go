package services

import "encoding/json"

// Event routing keys published by the services.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventMessageSent        = "message.sent"
	EventModRequestCreated  = "modification_request.created"
	EventModRequestAnswered = "modification_request.answered"
)

// EventPublisher is the slice of the RabbitMQ client the services need.
// Keeping it an interface lets tests swap in a recorder.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// Event is the JSON body of every published domain event. UserID names the
// user the resulting notification belongs to.
type Event struct {
	Type    string            `json:"type"`
	UserID  uint              `json:"userId"`
	Title   string            `json:"title"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data,omitempty"`
}

// publishEvent marshals and publishes ev, tolerating a nil publisher so
// services keep working when the broker is down or not configured.
func publishEvent(pub EventPublisher, ev Event) error {
	if pub == nil {
		return nil
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return pub.Publish(ev.Type, body)
}
