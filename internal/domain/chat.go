package domain

import "context"

// Message represents a chat message stored under the realtime tree's chats
// path. Timestamp is epoch milliseconds; the tree orders children by it.
type Message struct {
	ID        string `json:"id"` // Push key (store-assigned)
	Username  string `json:"username"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// ChatRepository is the realtime-tree surface the chat endpoints need.
type ChatRepository interface {
	PushMessage(ctx context.Context, msg *Message) (string, error)
	ListMessages(ctx context.Context) ([]Message, error)
}
