package mailer

import (
	"context"
	"log"
)

// ConsoleDispatcher logs messages instead of sending them. Used in
// local development when no provider credential is configured.
type ConsoleDispatcher struct{}

func NewConsoleDispatcher() *ConsoleDispatcher {
	return &ConsoleDispatcher{}
}

func (d *ConsoleDispatcher) Send(_ context.Context, msg Message) error {
	log.Printf("[DEV MAIL] to=%v subject=%q", msg.To, msg.Subject)
	return nil
}
