package websockets

import "context"

// NoOpPublisher drops every message. Processes without connected clients, such as
// the relay Lambda and handler tests, use it.
type NoOpPublisher struct{}

var _ Publisher = (*NoOpPublisher)(nil)

// Publish discards message.
func (*NoOpPublisher) Publish(context.Context, Message) error {
	return nil
}
