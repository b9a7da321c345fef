package chat

import "errors"

var (
	// ErrNotConnected is returned when an emit happens before the
	// channel finished its handshake or after it closed.
	ErrNotConnected = errors.New("realtime channel is not connected")

	// ErrNoActiveConversation guards operations that need a focused
	// conversation.
	ErrNoActiveConversation = errors.New("no active conversation selected")
)
