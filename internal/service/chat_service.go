package service

import (
	"context"
	"time"

	"github.com/locvowork/taskchat_backend/internal/domain"
)

type ChatService interface {
	Post(ctx context.Context, msg *domain.Message) (string, error)
	List(ctx context.Context) ([]domain.Message, error)
}

type chatService struct {
	repo domain.ChatRepository
}

func NewChatService(repo domain.ChatRepository) ChatService {
	return &chatService{repo: repo}
}

// Post stamps the message with the current time in epoch milliseconds
// before appending it to the store.
func (s *chatService) Post(ctx context.Context, msg *domain.Message) (string, error) {
	msg.Timestamp = time.Now().UnixMilli()
	return s.repo.PushMessage(ctx, msg)
}

func (s *chatService) List(ctx context.Context) ([]domain.Message, error) {
	messages, err := s.repo.ListMessages(ctx)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, domain.ErrNoResults
	}
	return messages, nil
}
