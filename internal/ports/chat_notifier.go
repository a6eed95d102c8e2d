package ports

import "context"

// ChatNotifier defines the contract for posting a plain text alert to a chat
type ChatNotifier interface {
	SendMessage(ctx context.Context, text string) error
	Enabled() bool
}
