package messages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Recorder receives activity-feed entries for message events.
type Recorder interface {
	Record(ctx context.Context, kind, description, actor string)
}

// Service contains message thread logic.
type Service struct {
	Repo     *MemoryRepo
	Activity Recorder
	Now      func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// Send appends a message to the client's thread.
func (s *Service) Send(ctx context.Context, clientID, sender, role, content string) (Message, error) {
	content = strings.TrimSpace(content)
	if content == "" || clientID == "" {
		return Message{}, ErrInvalidInput
	}

	msg := Message{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		Sender:    sender,
		Role:      role,
		Content:   content,
		Timestamp: s.now(),
	}
	if err := s.Repo.Append(ctx, msg); err != nil {
		return Message{}, err
	}
	if s.Activity != nil {
		s.Activity.Record(ctx, "message", fmt.Sprintf("New message from %s", sender), sender)
	}
	return msg, nil
}

// Thread returns a client's messages in chronological order.
func (s *Service) Thread(ctx context.Context, clientID string) ([]Message, error) {
	return s.Repo.List(ctx, clientID)
}
