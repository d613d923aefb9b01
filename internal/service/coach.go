package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/arlo/stride/internal/api"
	"github.com/arlo/stride/internal/database/repository"
)

const historyWindow = 20

// offlineReply is shown when the backend is unreachable. The chat
// must stay usable; the failure is a log line, not a user error.
const offlineReply = "I can't reach the coaching service right now. Your message is saved and I'll catch up when you're back online."

// CoachClient is the slice of the backend client the coach needs.
type CoachClient interface {
	CoachReply(ctx context.Context, turns []api.ChatTurn) (string, error)
}

// CoachService runs one chat round-trip: persist the user's message,
// ask the backend, persist the reply.
type CoachService struct {
	Chat   *repository.ChatRepo
	Client CoachClient
}

// History returns the recent conversation, oldest first.
func (s *CoachService) History(ctx context.Context, userID string) ([]repository.ChatMessage, error) {
	return s.Chat.History(ctx, userID, 50)
}

// Send appends the user's message, fetches a coach reply and appends
// that too. The returned slice holds both new messages in order.
func (s *CoachService) Send(ctx context.Context, userID, text string) ([]repository.ChatMessage, error) {
	userMsg := repository.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		Role:      "user",
		Body:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Chat.Append(ctx, userMsg); err != nil {
		return nil, err
	}

	turns, err := s.recentTurns(ctx, userID)
	if err != nil {
		return nil, err
	}

	reply, err := s.Client.CoachReply(ctx, turns)
	if err != nil {
		reply = offlineReply
	}

	coachMsg := repository.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		Role:      "coach",
		Body:      reply,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Chat.Append(ctx, coachMsg); err != nil {
		return nil, err
	}
	return []repository.ChatMessage{userMsg, coachMsg}, nil
}

func (s *CoachService) recentTurns(ctx context.Context, userID string) ([]api.ChatTurn, error) {
	history, err := s.Chat.History(ctx, userID, historyWindow)
	if err != nil {
		return nil, err
	}
	turns := make([]api.ChatTurn, 0, len(history))
	for _, m := range history {
		turns = append(turns, api.ChatTurn{Role: m.Role, Content: m.Body})
	}
	return turns, nil
}
