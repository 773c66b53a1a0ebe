package firebase

import (
	"context"
	"fmt"

	"github.com/locvowork/taskchat_backend/internal/domain"
)

const chatsPath = "chats"

// chatRecord is the shape stored under the chats node. The push key is the
// record's identity and is never duplicated inside the value.
type chatRecord struct {
	Username  string `json:"username"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// PushMessage appends a message under the chats node and returns the
// store-assigned push key.
func (c *Client) PushMessage(ctx context.Context, msg *domain.Message) (string, error) {
	rec := chatRecord{
		Username:  msg.Username,
		Message:   msg.Message,
		Timestamp: msg.Timestamp,
	}
	ref, err := c.rtdb.NewRef(chatsPath).Push(ctx, rec)
	if err != nil {
		return "", fmt.Errorf("failed to push chat message: %w", err)
	}
	return ref.Key, nil
}

// ListMessages fetches every message under the chats node ordered by the
// timestamp child. The push key is copied onto each message after decoding.
func (c *Client) ListMessages(ctx context.Context) ([]domain.Message, error) {
	nodes, err := c.rtdb.NewRef(chatsPath).OrderByChild("timestamp").GetOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat messages: %w", err)
	}

	var messages []domain.Message
	for _, node := range nodes {
		var rec chatRecord
		if err := node.Unmarshal(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode chat message %s: %w", node.Key(), err)
		}
		messages = append(messages, domain.Message{
			ID:        node.Key(),
			Username:  rec.Username,
			Message:   rec.Message,
			Timestamp: rec.Timestamp,
		})
	}
	return messages, nil
}
