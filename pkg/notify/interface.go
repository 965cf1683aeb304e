// Package notify defines the abstraction used to deliver monitoring alerts
// to users over an out-of-band channel.
package notify

import "context"

// Notifier delivers a message to the chat identified by chatID.
//
//go:generate mockgen -package mocknotify -source=interface.go -destination=mock/mocknotify.go *
type Notifier interface {
	// Notify sends text to the given chat. Implementations must treat the
	// call as fire-and-forget: a returned error means the message was not
	// delivered and the caller may retry later.
	Notify(ctx context.Context, chatID int64, text string) error
}
