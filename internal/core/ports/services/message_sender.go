package services

import "context"

// MessageSender delivers outbound text to a messaging recipient.
// Delivery is at-least-once on the provider side; a failed send is logged
// by the caller and not retried here.
type MessageSender interface {
	SendText(ctx context.Context, phoneKey, text string) error
}
