package notification

import "context"

// Service delivers user-facing messages over the chat transport.
type Service interface {
	Send(ctx context.Context, chatId int64, text string) error
}
